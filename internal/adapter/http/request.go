// Package http provides the HTTP handler layer for the route search API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sailing-search/sailing-route-service/internal/domain"
)

// SearchRoutesRequest represents the request body for a route search.
type SearchRoutesRequest struct {
	// Origin is the port code the itinerary must start from (e.g., "CNSHA")
	Origin string `json:"origin"`

	// Destination is the port code the itinerary must end at (e.g., "NLRTM")
	Destination string `json:"destination"`

	// Criteria selects the objective: cheapest-direct, cheapest, or fastest
	Criteria string `json:"criteria"`
}

// ValidationErrors collects field-level validation failures so the API can
// report all of them in one response.
type ValidationErrors struct {
	fields map[string]string
}

// Error implements the error interface. Fields are sorted so the message
// is deterministic across runs.
func (v *ValidationErrors) Error() string {
	fields := make([]string, 0, len(v.fields))
	for field := range v.fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v.fields[field]))
	}
	return strings.Join(parts, "; ")
}

// ToMap returns the field-to-message mapping for response details.
func (v *ValidationErrors) ToMap() map[string]string {
	return v.fields
}

func (v *ValidationErrors) add(field, msg string) {
	if v.fields == nil {
		v.fields = make(map[string]string)
	}
	v.fields[field] = msg
}

// Validate checks the request for well-formedness. It returns a
// *ValidationErrors carrying every failing field, or nil when valid.
func (r *SearchRoutesRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Origin == "" {
		errs.add("origin", "origin is required")
	} else if _, err := domain.ParsePortCode(r.Origin); err != nil {
		errs.add("origin", fmt.Sprintf("%q is not a valid port code", r.Origin))
	}

	if r.Destination == "" {
		errs.add("destination", "destination is required")
	} else if _, err := domain.ParsePortCode(r.Destination); err != nil {
		errs.add("destination", fmt.Sprintf("%q is not a valid port code", r.Destination))
	}

	if r.Criteria == "" {
		errs.add("criteria", "criteria is required")
	} else if !domain.ValidCriteria(r.Criteria) {
		errs.add("criteria", fmt.Sprintf("criteria must be one of: %s, %s, %s",
			domain.CriteriaCheapestDirect, domain.CriteriaCheapest, domain.CriteriaFastest))
	}

	if len(errs.fields) > 0 {
		return errs
	}
	return nil
}

// ToDomainQuery converts the request to a domain RouteQuery.
func (r *SearchRoutesRequest) ToDomainQuery() domain.RouteQuery {
	return domain.RouteQuery{
		Origin:      r.Origin,
		Destination: r.Destination,
		Criteria:    r.Criteria,
	}
}
