package pathfinder

import (
	"container/heap"

	"github.com/sbilibin2017/gw-currency-router/internal/models"
)

// Result holds the search state: predecessors and best accumulated cost per reached node.
type Result struct {
	Start     models.Currency
	Goal      models.Currency
	CameFrom  map[models.Currency]models.Currency
	CostSoFar map[models.Currency]float64
}

// Found reports whether the goal was reached.
func (r Result) Found() bool {
	if r.Start == r.Goal {
		_, ok := r.CostSoFar[r.Goal]
		return ok
	}
	_, ok := r.CameFrom[r.Goal]
	return ok
}

// Cost returns the accumulated cost of the goal.
func (r Result) Cost() (float64, bool) {
	if !r.Found() {
		return 0, false
	}
	return r.CostSoFar[r.Goal], true
}

// Search runs a best-first search from start to goal. Queue priority is the
// accumulated effective cost plus h(node, goal). A node is re-enqueued whenever
// it is reached with a strictly lower cost, and the search stops when the goal
// is popped or the queue is empty. ErrNoPathFound is returned together with the
// partial result when the goal is not reached.
func Search(g Graph, start, goal models.Currency, h Heuristic) (Result, error) {
	if h == nil {
		h = ZeroHeuristic
	}

	res := Result{
		Start:     start,
		Goal:      goal,
		CameFrom:  make(map[models.Currency]models.Currency),
		CostSoFar: make(map[models.Currency]float64),
	}
	if !g.Contains(start) || !g.Contains(goal) {
		return res, ErrNoPathFound
	}

	res.CostSoFar[start] = 0

	pq := &priorityQueue{}
	heap.Init(pq)
	var seq uint64
	heap.Push(pq, &pqItem{node: start, cost: 0, priority: h(start, goal), seq: seq})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		current := item.node

		// stale entry: a cheaper route to current was queued after this one
		if item.cost > res.CostSoFar[current] {
			continue
		}
		if current == goal {
			return res, nil
		}

		for _, next := range g.Targets(current) {
			edge, ok := g.Edge(current, next)
			if !ok {
				continue
			}
			tentative := res.CostSoFar[current] + edge.EffectiveCost

			if old, ok := res.CostSoFar[next]; !ok || tentative < old {
				res.CostSoFar[next] = tentative
				res.CameFrom[next] = current
				seq++
				heap.Push(pq, &pqItem{
					node:     next,
					cost:     tentative,
					priority: tentative + h(next, goal),
					seq:      seq,
				})
			}
		}
	}

	return res, ErrNoPathFound
}

// Reconstruct walks predecessors back from goal to start.
func Reconstruct(cameFrom map[models.Currency]models.Currency, start, goal models.Currency) (models.Path, error) {
	if start == goal {
		return models.Path{start}, nil
	}

	path := models.Path{goal}
	current := goal
	for current != start {
		prev, ok := cameFrom[current]
		if !ok || len(path) > len(cameFrom) {
			return nil, ErrMissingPath
		}
		path = append(path, prev)
		current = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

type pqItem struct {
	node     models.Currency
	cost     float64
	priority float64
	seq      uint64
}

// priorityQueue pops the lowest priority first; ties go to the earliest insertion.
type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority == pq[j].priority {
		return pq[i].seq < pq[j].seq
	}
	return pq[i].priority < pq[j].priority
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*pqItem))
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[0 : n-1]
	return item
}
