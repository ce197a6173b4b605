package usecase

import (
	"sort"
	"time"

	"github.com/sailing-search/sailing-route-service/internal/domain"
	"github.com/sailing-search/sailing-route-service/internal/infrastructure/timeutil"
)

// connection is one sailing admitted into the network: a directed edge with
// parsed dates and a normalized cost attached at construction time.
type connection struct {
	origin      domain.PortCode
	destination domain.PortCode
	departure   time.Time
	arrival     time.Time
	sailingCode string
	costCents   int64
}

// connectionIndex maps each origin port to its outbound connections, sorted
// ascending by departure date. Built once when the engine is constructed and
// read-only afterward, so it is safe to share across concurrent queries.
type connectionIndex struct {
	outbound map[domain.PortCode][]*connection
}

// buildConnectionIndex assembles the index from raw sailings and rates.
// A sailing is admitted only if it has a rate, parseable departure and
// arrival dates in order, and a convertible cost. Anything else is skipped
// silently: missing rate data is expected in real feeds and must not abort
// construction.
func buildConnectionIndex(sailings []domain.Sailing, rates []domain.Rate, norm *currencyNormalizer) *connectionIndex {
	rateBySailing := make(map[string]domain.Rate, len(rates))
	for _, r := range rates {
		rateBySailing[r.SailingCode] = r
	}

	outbound := make(map[domain.PortCode][]*connection)
	for _, s := range sailings {
		rate, ok := rateBySailing[s.SailingCode]
		if !ok {
			continue
		}
		departure, err := timeutil.ParseISODate(s.DepartureDate)
		if err != nil {
			continue
		}
		arrival, err := timeutil.ParseISODate(s.ArrivalDate)
		if err != nil {
			continue
		}
		if arrival.Before(departure) {
			continue
		}
		cost, ok := norm.costCents(s.SailingCode, rate.Amount, rate.Currency, s.DepartureDate)
		if !ok {
			continue
		}

		origin := domain.PortCode(s.OriginPort)
		outbound[origin] = append(outbound[origin], &connection{
			origin:      origin,
			destination: domain.PortCode(s.DestinationPort),
			departure:   departure,
			arrival:     arrival,
			sailingCode: s.SailingCode,
			costCents:   cost,
		})
	}

	// Stable sort keeps feed order among same-day departures.
	for _, conns := range outbound {
		sort.SliceStable(conns, func(i, j int) bool {
			return conns[i].departure.Before(conns[j].departure)
		})
	}

	return &connectionIndex{outbound: outbound}
}

// outboundOf returns all connections departing the given port, in ascending
// departure-date order.
func (ix *connectionIndex) outboundOf(port domain.PortCode) []*connection {
	return ix.outbound[port]
}

// hasOutbound reports whether the port has at least one outbound connection.
func (ix *connectionIndex) hasOutbound(port domain.PortCode) bool {
	return len(ix.outbound[port]) > 0
}

// departingAfter returns the connections leaving port strictly after t.
// The departure-sorted order turns this into a binary search plus a slice,
// instead of a scan over the whole outbound list.
func (ix *connectionIndex) departingAfter(port domain.PortCode, t time.Time) []*connection {
	conns := ix.outbound[port]
	i := sort.Search(len(conns), func(i int) bool {
		return conns[i].departure.After(t)
	})
	return conns[i:]
}
