package http

import (
	"github.com/sailing-search/sailing-route-service/internal/domain"
)

// ToSearchResponseDTO assembles the full response body from the query, the
// resulting legs, and the measured search duration.
func ToSearchResponseDTO(query domain.RouteQuery, legs []domain.Leg, searchTimeMs int64) SearchResponseDTO {
	itinerary := domain.Itinerary{Legs: legs}

	legDTOs := make([]LegDTO, 0, len(legs))
	for _, leg := range legs {
		legDTOs = append(legDTOs, ToLegDTO(leg))
	}

	var currency string
	if len(legs) > 0 {
		currency = legs[0].Currency
	}

	return SearchResponseDTO{
		Query: QueryDTO{
			Origin:      query.Origin,
			Destination: query.Destination,
			Criteria:    query.Criteria,
		},
		Metadata: MetadataDTO{
			TotalLegs:      len(legs),
			TotalCostCents: itinerary.TotalCostCents(),
			ElapsedDays:    itinerary.ElapsedDays(),
			Currency:       currency,
			SearchTimeMs:   searchTimeMs,
		},
		Legs: legDTOs,
	}
}
