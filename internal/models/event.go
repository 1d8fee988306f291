package models

import "time"

// RouteEvent is published after a route query has been answered.
type RouteEvent struct {
	EventID   string    `json:"event_id"`
	From      Currency  `json:"from"`
	To        Currency  `json:"to"`
	BestPath  []string  `json:"best_path"`
	BestCost  float64   `json:"best_cost"`
	PathCount int       `json:"path_count"`
	CreatedAt time.Time `json:"created_at"`
}
