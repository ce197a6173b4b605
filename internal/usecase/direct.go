package usecase

import (
	"github.com/sailing-search/sailing-route-service/internal/domain"
)

// findBestDirect scans only origin's outbound connections for the single
// best destination-bound sailing under the given metric. Ties keep the
// first-encountered candidate, which is the earliest departure because the
// index is departure-sorted. Returns nil when no direct sailing exists.
func (p *RoutePlanner) findBestDirect(origin, destination domain.PortCode, metric func(*connection) int64) *connection {
	var best *connection
	var bestMetric int64
	for _, c := range p.index.outboundOf(origin) {
		if c.destination != destination {
			continue
		}
		m := metric(c)
		if best == nil || m < bestMetric {
			best = c
			bestMetric = m
		}
	}
	return best
}

// bestDirectNode expresses the best direct sailing as a single-leg search
// node so it can seed the multi-leg search as the initial pruning bound.
// Returns nil when no direct sailing exists, leaving the bound unbounded.
func (p *RoutePlanner) bestDirectNode(origin, destination domain.PortCode, obj objective) *searchNode {
	direct := p.findBestDirect(origin, destination, obj.directMetric)
	if direct == nil {
		return nil
	}
	node, ok := obj.successor(obj.start(origin), direct)
	if !ok {
		return nil
	}
	return node
}
