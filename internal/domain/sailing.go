package domain

// Sailing represents one scheduled voyage between two ports: a single
// directed edge in the sailing network. Dates are ISO strings (YYYY-MM-DD)
// exactly as they appear in the feed; parsing happens when the connection
// index is built, and a sailing with an unparseable date is silently
// excluded from the network rather than failing construction.
type Sailing struct {
	// OriginPort is the port code the sailing departs from.
	OriginPort string `json:"origin_port"`

	// DestinationPort is the port code the sailing arrives at.
	DestinationPort string `json:"destination_port"`

	// DepartureDate is the scheduled departure date in YYYY-MM-DD format.
	DepartureDate string `json:"departure_date"`

	// ArrivalDate is the scheduled arrival date in YYYY-MM-DD format.
	// It must not precede the departure date; a same-day arrival is valid.
	ArrivalDate string `json:"arrival_date"`

	// SailingCode uniquely identifies this sailing and links it to its rate.
	SailingCode string `json:"sailing_code"`
}

// Rate is the price of one sailing in an arbitrary currency. The amount is
// kept as a decimal string so it can be converted to exact integer minor
// units without passing through floating point.
type Rate struct {
	// SailingCode identifies the sailing this rate belongs to.
	SailingCode string `json:"sailing_code"`

	// Amount is the price as a decimal string (e.g., "589.30").
	Amount string `json:"rate"`

	// Currency is the three-letter currency code, case-insensitive.
	Currency string `json:"rate_currency"`
}

// ExchangeRates maps an ISO date string to the multipliers that convert a
// currency into the base currency on that date. Currency keys are lowercase.
// Base-currency sailings never consult this table; a non-base sailing whose
// departure date has no usable multiplier is excluded from the network.
type ExchangeRates map[string]map[string]float64
