package graph

import (
	"sort"

	"github.com/sbilibin2017/gw-currency-router/internal/models"
)

// Graph is a directed weighted conversion graph. It is immutable once built
// and safe for concurrent reads.
type Graph struct {
	rates   models.RateTable
	nodes   map[models.Currency]struct{}
	targets map[models.Currency][]models.Currency
	edges   map[models.Currency]map[models.Currency]models.Edge
}

// Build assembles a graph from the rate table and the adjacency list.
// Currencies are visited in sorted order and targets in adjacency order, so a
// deterministic random source yields identical edges across builds.
// Pairs whose target is missing from rates are skipped.
func Build(rates models.RateTable, adjacency models.AdjacencyList, model *EdgeModel) *Graph {
	g := &Graph{
		rates:   make(models.RateTable, len(rates)),
		nodes:   make(map[models.Currency]struct{}),
		targets: make(map[models.Currency][]models.Currency),
		edges:   make(map[models.Currency]map[models.Currency]models.Edge),
	}
	for c, r := range rates {
		g.rates[c] = r
	}

	currencies := make([]models.Currency, 0, len(rates))
	for c := range rates {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)

	for _, from := range currencies {
		candidates, ok := adjacency[from]
		if !ok {
			continue
		}
		g.nodes[from] = struct{}{}

		for _, to := range candidates {
			if _, seen := g.edges[from][to]; seen {
				continue
			}
			edge, ok := model.BuildEdge(from, to, rates)
			if !ok {
				continue
			}
			if g.edges[from] == nil {
				g.edges[from] = make(map[models.Currency]models.Edge)
			}
			g.edges[from][to] = edge
			g.targets[from] = append(g.targets[from], to)
			g.nodes[to] = struct{}{}
		}
	}

	return g
}

// Contains reports whether c is a node of the graph.
func (g *Graph) Contains(c models.Currency) bool {
	_, ok := g.nodes[c]
	return ok
}

// Neighbors returns the outgoing edges of c keyed by target.
// The map is empty when c has no outgoing edges and must not be modified.
func (g *Graph) Neighbors(c models.Currency) map[models.Currency]models.Edge {
	if n, ok := g.edges[c]; ok {
		return n
	}
	return map[models.Currency]models.Edge{}
}

// Targets returns the targets of c in adjacency order.
func (g *Graph) Targets(c models.Currency) []models.Currency {
	return g.targets[c]
}

// Edge returns the edge from -> to.
func (g *Graph) Edge(from, to models.Currency) (models.Edge, bool) {
	e, ok := g.edges[from][to]
	return e, ok
}

// Rate returns the rate of c against the base currency.
func (g *Graph) Rate(c models.Currency) (float64, bool) {
	r, ok := g.rates[c]
	return r, ok
}

// Rates returns a copy of the rate table the graph was built from.
func (g *Graph) Rates() models.RateTable {
	out := make(models.RateTable, len(g.rates))
	for c, r := range g.rates {
		out[c] = r
	}
	return out
}

// Nodes returns all nodes in sorted order.
func (g *Graph) Nodes() []models.Currency {
	out := make([]models.Currency, 0, len(g.nodes))
	for c := range g.nodes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, m := range g.edges {
		n += len(m)
	}
	return n
}
