// Package usecase contains the route search engine: currency normalization,
// the connection index, and the priority-queue search over it.
package usecase

// Default engine settings.
const (
	// DefaultMaxPathLegs is the leg count at which search branches are
	// deferred behind shallower ones. It is a scheduling hint, not a cap.
	DefaultMaxPathLegs = 10

	// DefaultBaseCurrency is the currency all costs are normalized into.
	DefaultBaseCurrency = "EUR"

	// DefaultCurrencyScale is the fixed-point scale applied to exchange-rate
	// multipliers.
	DefaultCurrencyScale = 10_000
)

// Options holds the tunable settings of a RoutePlanner.
type Options struct {
	// MaxPathLegs is the leg count after which a search branch is deferred.
	MaxPathLegs int

	// BaseCurrency is the currency costs are normalized into. Rates already
	// in this currency never consult the exchange-rate table.
	BaseCurrency string

	// CurrencyScale is the fixed-point scale for exchange-rate multipliers.
	CurrencyScale int64
}

// DefaultOptions returns the default engine settings.
func DefaultOptions() Options {
	return Options{
		MaxPathLegs:   DefaultMaxPathLegs,
		BaseCurrency:  DefaultBaseCurrency,
		CurrencyScale: DefaultCurrencyScale,
	}
}

// Option customizes a RoutePlanner at construction time.
type Option func(*Options)

// WithMaxPathLegs sets the leg count at which search branches are deferred.
// Values below 1 are ignored.
func WithMaxPathLegs(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxPathLegs = n
		}
	}
}

// WithBaseCurrency sets the base currency costs are normalized into.
func WithBaseCurrency(currency string) Option {
	return func(o *Options) {
		if currency != "" {
			o.BaseCurrency = currency
		}
	}
}

// WithCurrencyScale sets the fixed-point scale for exchange-rate multipliers.
// Values below 1 are ignored.
func WithCurrencyScale(scale int64) Option {
	return func(o *Options) {
		if scale > 0 {
			o.CurrencyScale = scale
		}
	}
}
