package models

// Edge is a directed conversion step with its randomized cost components.
type Edge struct {
	From Currency
	To   Currency

	// BaseRate is rates[To]/rates[From] before volatility is applied.
	BaseRate float64
	// VolatileRate is BaseRate multiplied by the per-edge volatility factor.
	VolatileRate float64
	// Tax is the per-edge tax fraction, e.g. 0.03 for 3%.
	Tax float64
	// EffectiveCost is VolatileRate * (1 + Tax), the weight minimized by the path finder.
	EffectiveCost float64
}

// Volatility returns the relative deviation of the volatile rate from the base rate.
func (e Edge) Volatility() float64 {
	if e.BaseRate == 0 {
		return 0
	}
	return e.VolatileRate/e.BaseRate - 1
}
