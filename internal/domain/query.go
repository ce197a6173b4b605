package domain

import "fmt"

// Query criteria accepted by the route search API.
const (
	// CriteriaCheapestDirect selects the single cheapest direct sailing.
	CriteriaCheapestDirect = "cheapest-direct"

	// CriteriaCheapest selects the cheapest route, direct or multi-leg.
	CriteriaCheapest = "cheapest"

	// CriteriaFastest selects the route with the fewest elapsed days.
	CriteriaFastest = "fastest"
)

// validCriteria defines the allowed query criteria.
var validCriteria = map[string]bool{
	CriteriaCheapestDirect: true,
	CriteriaCheapest:       true,
	CriteriaFastest:        true,
}

// ValidCriteria reports whether s names a supported query criteria.
func ValidCriteria(s string) bool {
	return validCriteria[s]
}

// RouteQuery defines the parameters of a route search request.
type RouteQuery struct {
	// Origin is the port code the itinerary must start from.
	Origin string `json:"origin"`

	// Destination is the port code the itinerary must end at.
	Destination string `json:"destination"`

	// Criteria selects the objective: cheapest-direct, cheapest, or fastest.
	Criteria string `json:"criteria"`
}

// Validate checks the query for well-formedness. An origin equal to the
// destination is accepted here; such a query yields an empty result rather
// than an error.
func (q *RouteQuery) Validate() error {
	if _, err := ParsePortCode(q.Origin); err != nil {
		return fmt.Errorf("origin: %w", err)
	}
	if _, err := ParsePortCode(q.Destination); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if q.Criteria == "" {
		return fmt.Errorf("%w: criteria is required", ErrInvalidInput)
	}
	if !validCriteria[q.Criteria] {
		return fmt.Errorf("%w: criteria must be one of: cheapest-direct, cheapest, fastest; got %q",
			ErrInvalidInput, q.Criteria)
	}
	return nil
}
