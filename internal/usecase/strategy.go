package usecase

import (
	"time"

	"github.com/sailing-search/sailing-route-service/internal/domain"
	"github.com/sailing-search/sailing-route-service/internal/infrastructure/timeutil"
)

// searchNode is the ephemeral per-query state of the route search: the port
// reached so far, the accumulated objective metric, and the predecessor
// chain used to reconstruct the winning itinerary. Nodes are never mutated
// after being pushed; deferral re-inserts a flagged copy instead.
type searchNode struct {
	port     domain.PortCode
	metric   int64
	arrival  time.Time
	start    time.Time // first departure of the itinerary
	legs     int
	deferred bool
	prev     *searchNode
	via      *connection
}

// deferredCopy clones the node with the deferred flag set. The copy shares
// the immutable predecessor chain.
func (n *searchNode) deferredCopy() *searchNode {
	copied := *n
	copied.deferred = true
	return &copied
}

// objective supplies the search engine with node creation, queue ordering,
// pruning, and is-better rules for one optimization goal. The engine itself
// is objective-agnostic.
type objective interface {
	// start creates the initial node at the origin port.
	start(origin domain.PortCode) *searchNode

	// successor extends a node with one more connection. The second return
	// value is false when the branch must be abandoned.
	successor(n *searchNode, c *connection) (*searchNode, bool)

	// directMetric evaluates a single connection for the direct-route scan.
	directMetric(c *connection) int64

	// less orders the priority queue below the deferral tier.
	less(a, b *searchNode) bool

	// prune reports whether a popped node cannot improve on the current
	// best solution and should be discarded. best may be nil.
	prune(n, best *searchNode) bool

	// better reports whether a candidate solution strictly improves on the
	// current best. best may be nil.
	better(candidate, best *searchNode) bool

	// improves reports whether a successor strictly improves on the best
	// metric previously recorded for its port. prior may be nil.
	improves(candidate, prior *searchNode) bool
}

// cheapestObjective minimizes the summed normalized cost in base minor
// units. There is no secondary metric; equal-cost itineraries are resolved
// by queue insertion order.
type cheapestObjective struct{}

func (cheapestObjective) start(origin domain.PortCode) *searchNode {
	return &searchNode{port: origin}
}

func (cheapestObjective) successor(n *searchNode, c *connection) (*searchNode, bool) {
	start := n.start
	if n.prev == nil {
		start = c.departure
	}
	return &searchNode{
		port:    c.destination,
		metric:  n.metric + c.costCents,
		arrival: c.arrival,
		start:   start,
		legs:    n.legs + 1,
		prev:    n,
		via:     c,
	}, true
}

func (cheapestObjective) directMetric(c *connection) int64 {
	return c.costCents
}

func (cheapestObjective) less(a, b *searchNode) bool {
	return a.metric < b.metric
}

func (cheapestObjective) prune(n, best *searchNode) bool {
	return best != nil && n.metric >= best.metric
}

func (cheapestObjective) better(candidate, best *searchNode) bool {
	return best == nil || candidate.metric < best.metric
}

func (cheapestObjective) improves(candidate, prior *searchNode) bool {
	return prior == nil || candidate.metric < prior.metric
}

// fastestObjective minimizes elapsed calendar days from the itinerary's
// first departure to the current arrival. The arrival date is a strict
// secondary sort key: when two itineraries tie on elapsed days, the one
// arriving earlier wins, which keeps results deterministic.
type fastestObjective struct{}

func (fastestObjective) start(origin domain.PortCode) *searchNode {
	return &searchNode{port: origin}
}

func (fastestObjective) successor(n *searchNode, c *connection) (*searchNode, bool) {
	start := n.start
	if n.prev == nil {
		start = c.departure
	}
	return &searchNode{
		port:    c.destination,
		metric:  timeutil.DaysBetween(start, c.arrival),
		arrival: c.arrival,
		start:   start,
		legs:    n.legs + 1,
		prev:    n,
		via:     c,
	}, true
}

func (fastestObjective) directMetric(c *connection) int64 {
	return timeutil.DaysBetween(c.departure, c.arrival)
}

func (fastestObjective) less(a, b *searchNode) bool {
	if a.metric != b.metric {
		return a.metric < b.metric
	}
	return a.arrival.Before(b.arrival)
}

func (fastestObjective) prune(n, best *searchNode) bool {
	if best == nil {
		return false
	}
	if n.metric != best.metric {
		return n.metric > best.metric
	}
	return !n.arrival.Before(best.arrival)
}

func (fastestObjective) better(candidate, best *searchNode) bool {
	if best == nil {
		return true
	}
	if candidate.metric != best.metric {
		return candidate.metric < best.metric
	}
	return candidate.arrival.Before(best.arrival)
}

func (fastestObjective) improves(candidate, prior *searchNode) bool {
	if prior == nil {
		return true
	}
	if candidate.metric != prior.metric {
		return candidate.metric < prior.metric
	}
	return candidate.arrival.Before(prior.arrival)
}

// Ensure both strategies satisfy the objective contract.
var (
	_ objective = cheapestObjective{}
	_ objective = fastestObjective{}
)
