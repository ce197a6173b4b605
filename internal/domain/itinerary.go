package domain

import "time"

// ISODate is the date layout used throughout the sailing network feeds.
const ISODate = "2006-01-02"

// Leg describes one sailing used within an itinerary, annotated with its
// normalized cost in base-currency minor units.
type Leg struct {
	// OriginPort is the port the leg departs from.
	OriginPort PortCode `json:"origin_port"`

	// DestinationPort is the port the leg arrives at.
	DestinationPort PortCode `json:"destination_port"`

	// DepartureDate is the departure date in YYYY-MM-DD format.
	DepartureDate string `json:"departure_date"`

	// ArrivalDate is the arrival date in YYYY-MM-DD format.
	ArrivalDate string `json:"arrival_date"`

	// SailingCode identifies the underlying sailing.
	SailingCode string `json:"sailing_code"`

	// CostCents is the normalized cost in base-currency minor units.
	CostCents int64 `json:"cost_cents"`

	// Currency is the base currency the cost is denominated in.
	Currency string `json:"currency"`
}

// Itinerary is an ordered sequence of legs connecting an origin to a
// destination. Consecutive legs always satisfy
// leg[i+1].DepartureDate > leg[i].ArrivalDate.
type Itinerary struct {
	Legs []Leg `json:"legs"`
}

// IsEmpty reports whether the itinerary contains no legs.
func (i Itinerary) IsEmpty() bool {
	return len(i.Legs) == 0
}

// TotalCostCents returns the summed normalized cost of all legs.
func (i Itinerary) TotalCostCents() int64 {
	var total int64
	for _, l := range i.Legs {
		total += l.CostCents
	}
	return total
}

// InitialDeparturePort returns the origin of the itinerary, or the empty
// port code when the itinerary is empty.
func (i Itinerary) InitialDeparturePort() PortCode {
	if i.IsEmpty() {
		return PortCode("")
	}
	return i.Legs[0].OriginPort
}

// FinalArrivalPort returns the destination of the itinerary, or the empty
// port code when the itinerary is empty.
func (i Itinerary) FinalArrivalPort() PortCode {
	if i.IsEmpty() {
		return PortCode("")
	}
	return i.Legs[len(i.Legs)-1].DestinationPort
}

// ElapsedDays returns the number of calendar days from the first departure
// to the last arrival, or zero for an empty itinerary or unparseable dates.
func (i Itinerary) ElapsedDays() int64 {
	if i.IsEmpty() {
		return 0
	}
	start, err := time.Parse(ISODate, i.Legs[0].DepartureDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(ISODate, i.Legs[len(i.Legs)-1].ArrivalDate)
	if err != nil {
		return 0
	}
	return int64(end.Sub(start).Hours() / 24)
}
