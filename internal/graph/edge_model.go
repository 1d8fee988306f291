package graph

import (
	"github.com/sbilibin2017/gw-currency-router/internal/models"
	"github.com/sbilibin2017/gw-currency-router/internal/random"
)

// Default ranges of the randomized edge components.
const (
	DefaultVolatilityMin = 0.95
	DefaultVolatilityMax = 1.05
	DefaultTaxMin        = 0.01
	DefaultTaxMax        = 0.05
)

// EdgeModel computes randomized edge costs from a rate table.
type EdgeModel struct {
	source random.Source

	VolatilityMin float64
	VolatilityMax float64
	TaxMin        float64
	TaxMax        float64
}

// NewEdgeModel creates an EdgeModel with the default volatility and tax ranges.
func NewEdgeModel(source random.Source) *EdgeModel {
	return &EdgeModel{
		source:        source,
		VolatilityMin: DefaultVolatilityMin,
		VolatilityMax: DefaultVolatilityMax,
		TaxMin:        DefaultTaxMin,
		TaxMax:        DefaultTaxMax,
	}
}

// NewNeutralEdgeModel creates an EdgeModel whose edges carry no volatility and no tax.
func NewNeutralEdgeModel() *EdgeModel {
	return &EdgeModel{
		source:        random.NewSequence(),
		VolatilityMin: 1,
		VolatilityMax: 1,
	}
}

// BuildEdge computes the edge from -> to. The second result is false when either
// currency is missing from rates or has a non-positive rate.
// The volatility factor is drawn before the tax.
func (m *EdgeModel) BuildEdge(from, to models.Currency, rates models.RateTable) (models.Edge, bool) {
	fromRate, ok := rates[from]
	if !ok || fromRate <= 0 {
		return models.Edge{}, false
	}
	toRate, ok := rates[to]
	if !ok || toRate <= 0 {
		return models.Edge{}, false
	}

	baseRate := toRate / fromRate
	volatileRate := baseRate * m.source.Uniform(m.VolatilityMin, m.VolatilityMax)
	tax := m.source.Uniform(m.TaxMin, m.TaxMax)

	return models.Edge{
		From:          from,
		To:            to,
		BaseRate:      baseRate,
		VolatileRate:  volatileRate,
		Tax:           tax,
		EffectiveCost: volatileRate * (1 + tax),
	}, true
}
