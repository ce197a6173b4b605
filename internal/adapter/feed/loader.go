// Package feed loads sailing network snapshots from JSON sources and hands
// the engine already-parsed collections. It checks structural shape only;
// semantic gaps such as missing rates are the engine's silent-exclusion
// concern.
package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sailing-search/sailing-route-service/internal/domain"
)

// Snapshot is a static snapshot of the sailing network: scheduled sailings,
// their rates, and the daily exchange-rate table.
type Snapshot struct {
	Sailings      []domain.Sailing     `json:"sailings"`
	Rates         []domain.Rate        `json:"rates"`
	ExchangeRates domain.ExchangeRates `json:"exchange_rates"`
}

// Load reads and parses a snapshot from a JSON file.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	snapshot, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return snapshot, nil
}

// Parse decodes a snapshot from a JSON stream and verifies that all three
// collections are present. A collection of the wrong shape fails decoding;
// a missing collection is reported as a validation failure so construction
// never starts on a partial snapshot.
func Parse(r io.Reader) (*Snapshot, error) {
	var snapshot Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if snapshot.Sailings == nil {
		return nil, fmt.Errorf("%w: sailings collection is missing", domain.ErrInvalidInput)
	}
	if snapshot.Rates == nil {
		return nil, fmt.Errorf("%w: rates collection is missing", domain.ErrInvalidInput)
	}
	if snapshot.ExchangeRates == nil {
		return nil, fmt.Errorf("%w: exchange_rates table is missing", domain.ErrInvalidInput)
	}

	return &snapshot, nil
}
