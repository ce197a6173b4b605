// Package timeutil provides time-related utilities for testability and
// day-granularity date handling.
package timeutil

import (
	"fmt"
	"time"

	"github.com/sailing-search/sailing-route-service/internal/domain"
)

// ParseISODate parses a date string in the feed layout (domain.ISODate)
// into a UTC time at midnight.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.ISODate, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatISODate formats a time as a YYYY-MM-DD date string.
func FormatISODate(t time.Time) string {
	return t.Format(domain.ISODate)
}

// DaysBetween returns the number of whole calendar days from one date to
// another. Both times are expected at day granularity (midnight UTC), as
// produced by ParseISODate. The result is negative when to precedes from.
func DaysBetween(from, to time.Time) int64 {
	return int64(to.Sub(from).Hours() / 24)
}
