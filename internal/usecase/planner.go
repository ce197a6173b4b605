package usecase

import (
	"fmt"

	"github.com/sailing-search/sailing-route-service/internal/domain"
	"github.com/sailing-search/sailing-route-service/internal/infrastructure/timeutil"
)

// RouteFinder defines the query interface of the route search engine.
// Transport adapters depend on this interface, never on the concrete
// planner.
type RouteFinder interface {
	// FindCheapestDirect returns the single cheapest direct sailing between
	// two ports as a one-leg itinerary, or an empty slice when none exists.
	FindCheapestDirect(origin, destination string) ([]domain.Leg, error)

	// FindFastestDirect returns the direct sailing with the fewest elapsed
	// days, or an empty slice when none exists.
	FindFastestDirect(origin, destination string) ([]domain.Leg, error)

	// FindCheapestRoute returns the cheapest itinerary, direct or
	// multi-leg, or an empty slice when the destination is unreachable.
	FindCheapestRoute(origin, destination string) ([]domain.Leg, error)

	// FindFastestRoute returns the itinerary with the fewest elapsed days,
	// preferring the earlier arrival on ties, or an empty slice when the
	// destination is unreachable.
	FindFastestRoute(origin, destination string) ([]domain.Leg, error)
}

// RoutePlanner answers direct and multi-leg route queries over a static
// snapshot of sailings, rates, and exchange rates. It is constructed once
// per dataset; the connection index and cost cache built at construction
// are immutable afterward, so a single planner may serve concurrent
// queries.
type RoutePlanner struct {
	index *connectionIndex
	opts  Options
}

// NewRoutePlanner builds the engine from already-parsed feed collections.
// It fails with a validation error when a required collection is nil.
// Individual records with missing rates, unusable exchange rates, or
// malformed dates are silently excluded from the network; that is expected
// data quality, not an error.
func NewRoutePlanner(sailings []domain.Sailing, rates []domain.Rate, exchangeRates domain.ExchangeRates, opts ...Option) (*RoutePlanner, error) {
	if sailings == nil {
		return nil, fmt.Errorf("%w: sailings collection is required", domain.ErrInvalidInput)
	}
	if rates == nil {
		return nil, fmt.Errorf("%w: rates collection is required", domain.ErrInvalidInput)
	}
	if exchangeRates == nil {
		return nil, fmt.Errorf("%w: exchange rates table is required", domain.ErrInvalidInput)
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	normalizer := newCurrencyNormalizer(exchangeRates, options.BaseCurrency, options.CurrencyScale)
	return &RoutePlanner{
		index: buildConnectionIndex(sailings, rates, normalizer),
		opts:  options,
	}, nil
}

// FindCheapestDirect implements RouteFinder.
func (p *RoutePlanner) FindCheapestDirect(origin, destination string) (legs []domain.Leg, err error) {
	defer p.recoverQuery("find cheapest direct", &legs, &err)

	o, d, err := p.checkQuery(origin, destination)
	if err != nil {
		return nil, err
	}
	best := p.findBestDirect(o, d, cheapestObjective{}.directMetric)
	if best == nil {
		return []domain.Leg{}, nil
	}
	return []domain.Leg{p.newLeg(best)}, nil
}

// FindFastestDirect implements RouteFinder.
func (p *RoutePlanner) FindFastestDirect(origin, destination string) (legs []domain.Leg, err error) {
	defer p.recoverQuery("find fastest direct", &legs, &err)

	o, d, err := p.checkQuery(origin, destination)
	if err != nil {
		return nil, err
	}
	best := p.findBestDirect(o, d, fastestObjective{}.directMetric)
	if best == nil {
		return []domain.Leg{}, nil
	}
	return []domain.Leg{p.newLeg(best)}, nil
}

// FindCheapestRoute implements RouteFinder.
func (p *RoutePlanner) FindCheapestRoute(origin, destination string) (legs []domain.Leg, err error) {
	defer p.recoverQuery("find cheapest route", &legs, &err)

	o, d, err := p.checkQuery(origin, destination)
	if err != nil {
		return nil, err
	}
	if o == d {
		return []domain.Leg{}, nil
	}
	return p.legsFromNode(p.searchRoute(o, d, cheapestObjective{})), nil
}

// FindFastestRoute implements RouteFinder.
func (p *RoutePlanner) FindFastestRoute(origin, destination string) (legs []domain.Leg, err error) {
	defer p.recoverQuery("find fastest route", &legs, &err)

	o, d, err := p.checkQuery(origin, destination)
	if err != nil {
		return nil, err
	}
	if o == d {
		return []domain.Leg{}, nil
	}
	return p.legsFromNode(p.searchRoute(o, d, fastestObjective{})), nil
}

// checkQuery validates both port codes and requires the origin to have at
// least one outbound connection.
func (p *RoutePlanner) checkQuery(origin, destination string) (domain.PortCode, domain.PortCode, error) {
	o, err := domain.ParsePortCode(origin)
	if err != nil {
		return "", "", fmt.Errorf("origin: %w", err)
	}
	d, err := domain.ParsePortCode(destination)
	if err != nil {
		return "", "", fmt.Errorf("destination: %w", err)
	}
	if !p.index.hasOutbound(o) {
		return "", "", fmt.Errorf("%w: %s", domain.ErrNoOutboundSailings, o)
	}
	return o, d, nil
}

// newLeg converts an indexed connection into a result leg annotated with
// its normalized cost.
func (p *RoutePlanner) newLeg(c *connection) domain.Leg {
	return domain.Leg{
		OriginPort:      c.origin,
		DestinationPort: c.destination,
		DepartureDate:   timeutil.FormatISODate(c.departure),
		ArrivalDate:     timeutil.FormatISODate(c.arrival),
		SailingCode:     c.sailingCode,
		CostCents:       c.costCents,
		Currency:        p.opts.BaseCurrency,
	}
}

// legsFromNode reconstructs the winning itinerary by walking the
// predecessor chain back to the origin. A nil or initial node yields an
// empty itinerary.
func (p *RoutePlanner) legsFromNode(n *searchNode) []domain.Leg {
	if n == nil || n.prev == nil {
		return []domain.Leg{}
	}

	var conns []*connection
	for cur := n; cur.prev != nil; cur = cur.prev {
		conns = append(conns, cur.via)
	}

	legs := make([]domain.Leg, 0, len(conns))
	for i := len(conns) - 1; i >= 0; i-- {
		legs = append(legs, p.newLeg(conns[i]))
	}
	return legs
}

// recoverQuery converts an unexpected panic during a query into a single
// wrapped application error, so callers never see internal faults or
// partial results.
func (p *RoutePlanner) recoverQuery(op string, legs *[]domain.Leg, err *error) {
	if r := recover(); r != nil {
		*legs = nil
		*err = domain.NewQueryError(op, fmt.Errorf("%v", r))
	}
}

// Ensure RoutePlanner implements RouteFinder at compile time.
var _ RouteFinder = (*RoutePlanner)(nil)
