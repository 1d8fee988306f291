package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-currency-router/internal/logger"
	"github.com/sbilibin2017/gw-currency-router/internal/models"
)

// NewGetCurrenciesHandler returns an HTTP handler listing currencies of the conversion graph.
// @Summary List currencies
// @Description Returns every currency known to the conversion graph in sorted order
// @Tags routes
// @Produce json
// @Success 200 {object} models.CurrenciesResponse "Currencies"
// @Failure 500 {object} models.RouteErrorResponse "Internal server error"
// @Router /currencies [get]
func NewGetCurrenciesHandler(svc CurrencyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		currencies, err := svc.Currencies(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list currencies", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.RouteErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.CurrenciesResponse{
			Currencies: currencies,
		})
	}
}

// RegisterGetCurrenciesHandler registers the currency listing endpoint
func RegisterGetCurrenciesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/currencies", h)
}
