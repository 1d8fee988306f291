package models

// Currency is an uppercase ISO-like currency code, e.g. "USD".
type Currency = string

// Currencies of the built-in adjacency list.
const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	JPY Currency = "JPY"
	GBP Currency = "GBP"
	CHF Currency = "CHF"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	CNY Currency = "CNY"
)

// RateTable maps a currency to its rate against the base currency of the rate source.
// It is built once per run and treated as read-only afterwards.
type RateTable map[Currency]float64

// AdjacencyList maps a currency to the ordered list of currencies it may be converted into.
type AdjacencyList map[Currency][]Currency

// DefaultAdjacencyList returns the built-in list of tradable currency pairs.
// A fresh copy is returned on each call.
func DefaultAdjacencyList() AdjacencyList {
	return AdjacencyList{
		USD: {EUR, JPY, CNY, AUD},
		EUR: {GBP, AUD, CNY},
		JPY: {USD, EUR, CNY, GBP},
		GBP: {USD, EUR, CHF, JPY, CAD, AUD},
		CHF: {EUR, GBP, USD, CAD, AUD},
		CAD: {JPY, GBP, AUD, CHF},
		AUD: {EUR, CAD, GBP, CHF, CNY},
		CNY: {USD, JPY, AUD, CAD},
	}
}
