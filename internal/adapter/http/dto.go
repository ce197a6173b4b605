package http

import (
	"github.com/sailing-search/sailing-route-service/internal/domain"
)

// SearchResponseDTO is the data transfer object for route search responses.
// It matches the expected API output format with snake_case fields.
type SearchResponseDTO struct {
	Query    QueryDTO    `json:"query"`
	Metadata MetadataDTO `json:"metadata"`
	Legs     []LegDTO    `json:"legs"`
}

// QueryDTO echoes the search query back in the response.
type QueryDTO struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Criteria    string `json:"criteria"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	TotalLegs      int    `json:"total_legs"`
	TotalCostCents int64  `json:"total_cost_cents"`
	ElapsedDays    int64  `json:"elapsed_days"`
	Currency       string `json:"currency,omitempty"`
	SearchTimeMs   int64  `json:"search_time_ms"`
}

// LegDTO is the data transfer object for one itinerary leg.
type LegDTO struct {
	OriginPort      string `json:"origin_port"`
	DestinationPort string `json:"destination_port"`
	DepartureDate   string `json:"departure_date"`
	ArrivalDate     string `json:"arrival_date"`
	SailingCode     string `json:"sailing_code"`
	CostCents       int64  `json:"cost_cents"`
	Currency        string `json:"currency"`
}

// ToLegDTO converts a domain leg to its transfer representation.
func ToLegDTO(leg domain.Leg) LegDTO {
	return LegDTO{
		OriginPort:      leg.OriginPort.String(),
		DestinationPort: leg.DestinationPort.String(),
		DepartureDate:   leg.DepartureDate,
		ArrivalDate:     leg.ArrivalDate,
		SailingCode:     leg.SailingCode,
		CostCents:       leg.CostCents,
		Currency:        leg.Currency,
	}
}
