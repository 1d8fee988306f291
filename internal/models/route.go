package models

// RouteResponse represents a successful route query
// swagger:model RouteResponse
type RouteResponse struct {
	// Start currency
	// example: USD
	From string `json:"from"`

	// Goal currency
	// example: JPY
	To string `json:"to"`

	// Path found by the best-first search
	Best RankedPath `json:"best"`

	// All simple paths ordered by cost, cheapest first
	Ranked []RankedPath `json:"ranked"`
}

// RouteErrorResponse represents an error response for a route query
// swagger:model RouteErrorResponse
type RouteErrorResponse struct {
	// Error message
	// example: no conversion path found
	Error string `json:"error"`
}

// CurrenciesResponse lists currencies known to the conversion graph
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	// Currency codes
	// example: ["AUD","CAD","CHF","CNY","EUR","GBP","JPY","USD"]
	Currencies []string `json:"currencies"`
}
