package facades

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-currency-router/internal/logger"
	"github.com/sbilibin2017/gw-currency-router/internal/models"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
)

// ErrRatesUnavailable is returned when a rate source cannot supply a rate table.
var ErrRatesUnavailable = errors.New("rates unavailable")

// ExchangeRatesGRPCFacade reads the rate table from the exchanger gRPC service.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// GetRateTable fetches all exchange rates against the exchanger's base currency.
func (f *ExchangeRatesGRPCFacade) GetRateTable(ctx context.Context) (models.RateTable, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrRatesUnavailable, err)
	}

	rates := make(models.RateTable, len(resp.Rates))
	for currency, rate := range resp.Rates {
		if rate <= 0 {
			logger.Log.Warnw("skipping non-positive rate", "currency", currency, "rate", rate)
			continue
		}
		rates[currency] = float64(rate)
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: empty rate table", ErrRatesUnavailable)
	}

	return rates, nil
}
