package ranker

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/sbilibin2017/gw-currency-router/internal/models"
)

// ErrMissingEdge is returned when a ranked path uses a pair that is not an edge of the graph.
var ErrMissingEdge = errors.New("path uses a missing edge")

// Aggregation selects how edge costs are combined into the ranking key.
type Aggregation int

const (
	// Sum ranks by the sum of effective costs.
	Sum Aggregation = iota
	// Product ranks by the product of effective costs.
	Product
)

// ParseAggregation maps "sum" and "product" to an Aggregation.
func ParseAggregation(s string) (Aggregation, error) {
	switch s {
	case "", "sum":
		return Sum, nil
	case "product":
		return Product, nil
	default:
		return Sum, fmt.Errorf("unknown aggregation %q", s)
	}
}

// EdgeGetter looks up edges by endpoints.
type EdgeGetter interface {
	Edge(from, to models.Currency) (models.Edge, bool)
}

// width of the buckets ranking keys are rounded into before comparison
const tolerance = 1e-9

// Rank computes cost diagnostics for every path and orders them cheapest first.
// Keys falling into the same 1e-9 bucket are ordered by hop count and then by
// the rendered path, so the order is total and reproducible.
func Rank(g EdgeGetter, rates models.RateTable, paths []models.Path, by Aggregation) ([]models.RankedPath, error) {
	ranked := make([]models.RankedPath, 0, len(paths))
	for _, p := range paths {
		rp, err := Describe(g, rates, p)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, rp)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return Less(ranked[i], ranked[j], by)
	})
	return ranked, nil
}

// Describe computes the aggregated cost and per-edge diagnostics of a single path.
func Describe(g EdgeGetter, rates models.RateTable, p models.Path) (models.RankedPath, error) {
	rp := models.RankedPath{
		Path:            p,
		ConvertedAmount: 1,
		Edges:           make([]models.EdgeDetail, 0, p.Hops()),
	}

	for i := 0; i+1 < len(p); i++ {
		from, to := p[i], p[i+1]
		edge, ok := g.Edge(from, to)
		if !ok {
			return models.RankedPath{}, fmt.Errorf("%w: %s -> %s", ErrMissingEdge, from, to)
		}

		baseRate := edge.BaseRate
		if fr, ok := rates[from]; ok && fr > 0 {
			if tr, ok := rates[to]; ok {
				baseRate = tr / fr
			}
		}
		volatility := 0.0
		if baseRate != 0 {
			volatility = edge.VolatileRate/baseRate - 1
		}

		rp.TotalCost += edge.EffectiveCost
		rp.ConvertedAmount *= edge.EffectiveCost
		rp.Edges = append(rp.Edges, models.EdgeDetail{
			From:          from,
			To:            to,
			BaseRate:      baseRate,
			VolatileRate:  edge.VolatileRate,
			VolatilityPct: volatility * 100,
			TaxPct:        edge.Tax * 100,
			EffectiveCost: edge.EffectiveCost,
			Amount:        rp.ConvertedAmount,
		})
	}

	return rp, nil
}

// Less reports whether a ranks before b.
func Less(a, b models.RankedPath, by Aggregation) bool {
	ka, kb := bucket(key(a, by)), bucket(key(b, by))
	if ka != kb {
		return ka < kb
	}
	if a.Path.Hops() != b.Path.Hops() {
		return a.Path.Hops() < b.Path.Hops()
	}
	return a.Path.String() < b.Path.String()
}

func key(rp models.RankedPath, by Aggregation) float64 {
	if by == Product {
		return rp.ConvertedAmount
	}
	return rp.TotalCost
}

// bucket rounds a key to a multiple of tolerance. Comparing buckets keeps Less
// transitive, which a pairwise tolerance check does not.
func bucket(k float64) float64 {
	return math.Round(k / tolerance)
}
