package pathfinder

import (
	"github.com/sbilibin2017/gw-currency-router/internal/models"
)

type enumerateOptions struct {
	maxDepth int
}

// EnumerateOption configures EnumerateAllSimplePaths.
type EnumerateOption func(*enumerateOptions)

// WithMaxDepth limits enumerated paths to at most depth edges. Zero means unlimited.
func WithMaxDepth(depth int) EnumerateOption {
	return func(o *enumerateOptions) {
		o.maxDepth = depth
	}
}

type frame struct {
	node models.Currency
	path models.Path
}

// EnumerateAllSimplePaths returns every simple path from start to goal in
// depth-first order, visiting targets in adjacency order. The traversal uses an
// explicit stack. The number of paths grows exponentially with graph size, so
// this is meant for small currency universes only.
func EnumerateAllSimplePaths(g Graph, start, goal models.Currency, opts ...EnumerateOption) []models.Path {
	var o enumerateOptions
	for _, opt := range opts {
		opt(&o)
	}

	if !g.Contains(start) {
		return nil
	}

	var paths []models.Path
	stack := []frame{{node: start, path: models.Path{start}}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node == goal {
			paths = append(paths, f.path)
			continue
		}
		if o.maxDepth > 0 && f.path.Hops() >= o.maxDepth {
			continue
		}

		targets := g.Targets(f.node)
		// pushed in reverse so the first target is expanded first
		for i := len(targets) - 1; i >= 0; i-- {
			next := targets[i]
			if contains(f.path, next) {
				continue
			}
			if _, ok := g.Edge(f.node, next); !ok {
				continue
			}
			path := make(models.Path, len(f.path), len(f.path)+1)
			copy(path, f.path)
			stack = append(stack, frame{node: next, path: append(path, next)})
		}
	}

	return paths
}

func contains(path models.Path, c models.Currency) bool {
	for _, p := range path {
		if p == c {
			return true
		}
	}
	return false
}
