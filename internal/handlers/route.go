package handlers

//go:generate mockgen -source=route.go -destination=mock_route.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-currency-router/internal/logger"
	"github.com/sbilibin2017/gw-currency-router/internal/models"
	"github.com/sbilibin2017/gw-currency-router/internal/pathfinder"
	"github.com/sbilibin2017/gw-currency-router/internal/services"
)

// RouteFinder defines the interface that the service must implement.
type RouteFinder interface {
	FindRoutes(ctx context.Context, fromCurrency, toCurrency string) (*models.RouteResult, error)
}

// CurrencyLister defines the interface that the service must implement.
type CurrencyLister interface {
	Currencies(ctx context.Context) ([]string, error)
}

// NewFindRoutesHandler returns an HTTP handler that finds conversion paths between two currencies.
// @Summary Find conversion routes
// @Description Finds the best conversion path with A* search and ranks every simple path between two currencies.
// @Description A currency missing from the graph is a client input error and returns 400; 404 is reserved for known currencies with no connecting path.
// @Tags routes
// @Produce json
// @Param from query string true "Start currency" default(USD)
// @Param to query string true "Goal currency" default(JPY)
// @Success 200 {object} models.RouteResponse "Best path and ranked paths"
// @Failure 400 {object} models.RouteErrorResponse "Missing or unknown currency"
// @Failure 401 {object} models.RouteErrorResponse "Unauthorized"
// @Failure 404 {object} models.RouteErrorResponse "No conversion path found"
// @Failure 500 {object} models.RouteErrorResponse "Internal server error"
// @Router /routes [get]
// @Security BearerAuth
func NewFindRoutesHandler(svc RouteFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if from == "" || to == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.RouteErrorResponse{
				Error: "Query parameters 'from' and 'to' are required",
			})
			return
		}

		result, err := svc.FindRoutes(r.Context(), from, to)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownCurrency):
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(models.RouteErrorResponse{
					Error: "Unknown currency",
				})
			case errors.Is(err, pathfinder.ErrNoPathFound):
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(models.RouteErrorResponse{
					Error: "No conversion path found",
				})
			default:
				logger.Log.Errorw("failed to find routes", "from", from, "to", to, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(models.RouteErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.RouteResponse{
			From:   result.From,
			To:     result.To,
			Best:   result.Best,
			Ranked: result.Ranked,
		})
	}
}

// RegisterFindRoutesHandler registers the route search endpoint
func RegisterFindRoutesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/routes", h)
}
