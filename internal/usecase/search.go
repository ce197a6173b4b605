package usecase

import (
	"container/heap"

	"github.com/sailing-search/sailing-route-service/internal/domain"
)

// nodeQueue is a min-heap of search nodes with a two-level priority key:
// the deferral tier first, then the objective's ordering. Deferred nodes
// therefore always come out after every non-deferred node, which lets the
// engine finish short itineraries before spending effort on long ones
// without ever excluding a long-but-optimal itinerary.
type nodeQueue struct {
	nodes []*searchNode
	obj   objective
}

func newNodeQueue(obj objective) *nodeQueue {
	return &nodeQueue{obj: obj}
}

func (q *nodeQueue) Len() int { return len(q.nodes) }

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.nodes[i], q.nodes[j]
	if a.deferred != b.deferred {
		return !a.deferred
	}
	return q.obj.less(a, b)
}

func (q *nodeQueue) Swap(i, j int) {
	q.nodes[i], q.nodes[j] = q.nodes[j], q.nodes[i]
}

func (q *nodeQueue) Push(x any) {
	q.nodes = append(q.nodes, x.(*searchNode))
}

func (q *nodeQueue) Pop() any {
	old := q.nodes
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	q.nodes = old[:n-1]
	return node
}

func (q *nodeQueue) push(n *searchNode) {
	heap.Push(q, n)
}

func (q *nodeQueue) pop() *searchNode {
	return heap.Pop(q).(*searchNode)
}

// searchRoute runs the multi-leg shortest-path search from origin to
// destination under the given objective. The best direct sailing seeds the
// pruning bound; the queue, visited table, and predecessor chains are
// private to this call, so one planner serves concurrent queries.
func (p *RoutePlanner) searchRoute(origin, destination domain.PortCode, obj objective) *searchNode {
	best := p.bestDirectNode(origin, destination, obj)

	// Best metric recorded per port; only strictly improving arrivals are
	// accepted, which bounds the queue and prevents cycling.
	visited := make(map[domain.PortCode]*searchNode)

	queue := newNodeQueue(obj)
	queue.push(obj.start(origin))

	for queue.Len() > 0 {
		node := queue.pop()

		if obj.prune(node, best) {
			continue
		}

		// A destination node is a candidate solution, never expanded
		// further. The initial node has no predecessors and is not a
		// solution, so an origin equal to the destination finds nothing.
		if node.port == destination && node.prev != nil {
			if obj.better(node, best) {
				best = node
			}
			continue
		}

		// Deep branches are deferred behind shallower ones once, then
		// processed normally. Scheduling only; no itinerary is excluded.
		if node.legs >= p.opts.MaxPathLegs && !node.deferred {
			queue.push(node.deferredCopy())
			continue
		}

		// A connection must depart strictly after the prior arrival;
		// same-day transfers are not permitted.
		for _, conn := range p.index.departingAfter(node.port, node.arrival) {
			succ, ok := obj.successor(node, conn)
			if !ok {
				continue
			}
			if prior := visited[succ.port]; prior != nil && !obj.improves(succ, prior) {
				continue
			}
			visited[succ.port] = succ
			queue.push(succ)
		}
	}

	return best
}
