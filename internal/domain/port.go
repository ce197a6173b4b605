// Package domain contains the core business entities and rules for the sailing
// route search system. These entities are feed-agnostic and form the foundation
// upon which the route planner and its adapters are built.
package domain

import (
	"fmt"
	"regexp"
)

// PortCode uniquely identifies a seaport in the sailing network.
// It is five characters long: two uppercase letters followed by three
// characters drawn from uppercase letters or the digits 2-9. The digits 0
// and 1 are excluded because they are easily confused with the letters O
// and I in printed schedules.
type PortCode string

// portCodeRegex matches valid port codes (e.g., "NLRTM", "BRSSZ").
var portCodeRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z2-9]{3}$`)

// ParsePortCode validates a raw string and returns it as a PortCode.
// Returns a wrapped ErrInvalidPortCode error if the format is invalid.
func ParsePortCode(raw string) (PortCode, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: port code is required", ErrInvalidPortCode)
	}
	if !portCodeRegex.MatchString(raw) {
		return "", fmt.Errorf("%w: %q is not a valid port code", ErrInvalidPortCode, raw)
	}
	return PortCode(raw), nil
}

// String returns the port code as a plain string.
func (p PortCode) String() string {
	return string(p)
}
