package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-currency-router/internal/logger"
	"github.com/sbilibin2017/gw-currency-router/internal/models"
)

// DefaultRatesAPIURL is the public exchangerate-api endpoint.
const DefaultRatesAPIURL = "https://v6.exchangerate-api.com"

// ExchangeRatesHTTPFacade reads the rate table from an exchangerate-api compatible REST endpoint.
type ExchangeRatesHTTPFacade struct {
	url    string
	apiKey string
	base   string
	client *http.Client
}

// NewExchangeRatesHTTPFacade creates a facade for GET {url}/v6/{apiKey}/latest/{base}.
func NewExchangeRatesHTTPFacade(url, apiKey, base string) *ExchangeRatesHTTPFacade {
	return &ExchangeRatesHTTPFacade{
		url:    strings.TrimRight(url, "/"),
		apiKey: apiKey,
		base:   strings.ToUpper(base),
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// GetRateTable loads the latest rates against the configured base currency.
func (f *ExchangeRatesHTTPFacade) GetRateTable(ctx context.Context) (models.RateTable, error) {
	type response struct {
		Result          string             `json:"result"`
		BaseCode        string             `json:"base_code"`
		ErrorType       string             `json:"error-type"`
		ConversionRates map[string]float64 `json:"conversion_rates"`
	}

	url := fmt.Sprintf("%s/v6/%s/latest/%s", f.url, f.apiKey, f.base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}

	httpResp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via HTTP", "base", f.base, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrRatesUnavailable, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		logger.Log.Errorw("exchange rates request failed", "base", f.base, "status", httpResp.StatusCode)
		return nil, fmt.Errorf("%w: status code %d", ErrRatesUnavailable, httpResp.StatusCode)
	}

	var resp response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: decoding json: %v", ErrRatesUnavailable, err)
	}
	if resp.Result != "" && resp.Result != "success" {
		return nil, fmt.Errorf("%w: %s %s", ErrRatesUnavailable, resp.Result, resp.ErrorType)
	}

	rates := make(models.RateTable, len(resp.ConversionRates))
	for currency, rate := range resp.ConversionRates {
		if rate <= 0 {
			continue
		}
		rates[strings.ToUpper(currency)] = rate
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: empty rate table", ErrRatesUnavailable)
	}

	logger.Log.Infow("exchange rates loaded", "base", resp.BaseCode, "currencies", len(rates))
	return rates, nil
}
