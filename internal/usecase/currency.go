package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sailing-search/sailing-route-service/internal/domain"
)

// scaledRateTable is the exchange-rate table with every multiplier converted
// to a fixed-point integer at load time. Scaling once up front keeps all
// later cost calculations in exact integer arithmetic, so comparisons are
// deterministic across queries and runs.
type scaledRateTable struct {
	scale  int64
	byDate map[string]map[string]int64
}

// newScaledRateTable scales the raw multipliers via round(multiplier * scale).
// Missing or non-positive entries are discarded; looking them up later
// reports the currency/date pair as unconvertible.
func newScaledRateTable(raw domain.ExchangeRates, scale int64) scaledRateTable {
	byDate := make(map[string]map[string]int64, len(raw))
	for date, multipliers := range raw {
		scaled := make(map[string]int64, len(multipliers))
		for currency, m := range multipliers {
			s := int64(math.Round(m * float64(scale)))
			if s <= 0 {
				continue
			}
			scaled[strings.ToLower(currency)] = s
		}
		if len(scaled) > 0 {
			byDate[date] = scaled
		}
	}
	return scaledRateTable{scale: scale, byDate: byDate}
}

// multiplier returns the scaled multiplier for a currency on a date.
func (t scaledRateTable) multiplier(date, currency string) (int64, bool) {
	m, ok := t.byDate[date][strings.ToLower(currency)]
	return m, ok
}

// parseDecimalCents converts a decimal amount string into integer minor
// units (cents), rounding half up at the third decimal place. The string
// never passes through floating point.
func parseDecimalCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("malformed amount %q", s)
	}

	var whole int64
	if intPart != "" {
		var err error
		whole, err = strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed amount %q: %w", s, err)
		}
	}

	cents := whole * 100
	if fracPart != "" {
		for _, d := range fracPart {
			if d < '0' || d > '9' {
				return 0, fmt.Errorf("malformed amount %q", s)
			}
		}
		digits := fracPart
		if len(digits) > 0 {
			cents += int64(digits[0]-'0') * 10
		}
		if len(digits) > 1 {
			cents += int64(digits[1] - '0')
		}
		// Round half up on the first dropped digit.
		if len(digits) > 2 && digits[2] >= '5' {
			cents++
		}
	}

	if negative {
		cents = -cents
	}
	return cents, nil
}

// currencyNormalizer converts rates into exact integer costs denominated in
// the base currency's minor units. Results are cached per sailing code for
// the lifetime of the engine, since a sailing's cost never changes.
type currencyNormalizer struct {
	base  string
	table scaledRateTable
	cache map[string]int64
}

func newCurrencyNormalizer(raw domain.ExchangeRates, base string, scale int64) *currencyNormalizer {
	return &currencyNormalizer{
		base:  base,
		table: newScaledRateTable(raw, scale),
		cache: make(map[string]int64),
	}
}

// costCents returns the normalized cost of a sailing in base minor units.
// The second return value is false when the amount is malformed or the
// currency cannot be converted on the departure date; the caller treats
// that sailing as absent from the network, never as an error.
func (n *currencyNormalizer) costCents(sailingCode, amount, currency, departureDate string) (int64, bool) {
	if cached, ok := n.cache[sailingCode]; ok {
		return cached, true
	}

	cents, err := parseDecimalCents(amount)
	if err != nil {
		return 0, false
	}

	if !strings.EqualFold(currency, n.base) {
		m, ok := n.table.multiplier(departureDate, currency)
		if !ok {
			return 0, false
		}
		// Exact fixed-point division, truncating.
		cents = cents * n.table.scale / m
	}

	n.cache[sailingCode] = cents
	return cents, true
}
