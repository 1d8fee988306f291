package models

import "strings"

// Path is a simple path of currencies: first element is the start, last is the goal.
type Path []Currency

// String renders the path as "USD -> EUR -> JPY".
func (p Path) String() string {
	return strings.Join(p, " -> ")
}

// Hops returns the number of edges in the path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// EdgeDetail carries per-edge diagnostics of a ranked path.
type EdgeDetail struct {
	From          Currency `json:"from"`
	To            Currency `json:"to"`
	BaseRate      float64  `json:"base_rate"`
	VolatileRate  float64  `json:"volatile_rate"`
	VolatilityPct float64  `json:"volatility_pct"`
	TaxPct        float64  `json:"tax_pct"`
	EffectiveCost float64  `json:"effective_cost"`
	// Amount is the running converted amount of one unit of the start currency after this edge.
	Amount float64 `json:"amount"`
}

// RankedPath is a path with its aggregated cost and per-edge diagnostics.
type RankedPath struct {
	Path Path `json:"path"`
	// TotalCost is the sum of effective costs along the path.
	TotalCost float64 `json:"total_cost"`
	// ConvertedAmount is the product of effective costs along the path.
	ConvertedAmount float64      `json:"converted_amount"`
	Edges           []EdgeDetail `json:"edges"`
}

// RouteResult is the answer to a single start/goal query.
type RouteResult struct {
	From   Currency     `json:"from"`
	To     Currency     `json:"to"`
	Best   RankedPath   `json:"best"`
	Ranked []RankedPath `json:"ranked"`
}
