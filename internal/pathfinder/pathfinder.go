package pathfinder

import (
	"errors"
	"math"

	"github.com/sbilibin2017/gw-currency-router/internal/models"
)

var (
	// ErrNoPathFound is returned when the goal cannot be reached from the start.
	ErrNoPathFound = errors.New("no conversion path found")
	// ErrMissingPath is returned when a path is reconstructed for a goal that was never reached.
	ErrMissingPath = errors.New("missing predecessor for path reconstruction")
)

// Graph is the read-only view of a conversion graph used by the path finder.
type Graph interface {
	Contains(c models.Currency) bool
	Targets(c models.Currency) []models.Currency
	Edge(from, to models.Currency) (models.Edge, bool)
}

// Heuristic estimates the remaining cost from node to goal.
type Heuristic func(node, goal models.Currency) float64

// ZeroHeuristic turns Search into a plain cheapest-cost search.
func ZeroHeuristic(_, _ models.Currency) float64 {
	return 0
}

// RateHeuristic estimates the remaining cost as the distance between the inverse
// base rates of node and goal. It ignores volatility and tax and is not a proven
// lower bound, so Search results are best-found rather than optimal.
func RateHeuristic(rates models.RateTable) Heuristic {
	return func(node, goal models.Currency) float64 {
		if node == goal {
			return 0
		}
		n, ok := rates[node]
		if !ok || n == 0 {
			return 0
		}
		g, ok := rates[goal]
		if !ok || g == 0 {
			return 0
		}
		return math.Abs(1/n - 1/g)
	}
}
