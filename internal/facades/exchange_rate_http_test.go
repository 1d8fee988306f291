package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/gw-currency-router/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFacade_GetRateTable(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantRates models.RateTable
		wantErr   bool
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body: `{
				"result": "success",
				"base_code": "USD",
				"conversion_rates": {"USD": 1, "EUR": 0.9, "JPY": 140}
			}`,
			wantRates: models.RateTable{"USD": 1, "EUR": 0.9, "JPY": 140},
		},
		{
			name:    "non-success status",
			status:  http.StatusForbidden,
			body:    `{}`,
			wantErr: true,
		},
		{
			name:    "error result",
			status:  http.StatusOK,
			body:    `{"result": "error", "error-type": "invalid-key"}`,
			wantErr: true,
		},
		{
			name:    "invalid json",
			status:  http.StatusOK,
			body:    `{`,
			wantErr: true,
		},
		{
			name:    "empty rates",
			status:  http.StatusOK,
			body:    `{"result": "success", "conversion_rates": {}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v6/secret/latest/USD", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			facade := NewExchangeRatesHTTPFacade(server.URL+"/", "secret", "usd")

			rates, err := facade.GetRateTable(context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRatesUnavailable)
				assert.Nil(t, rates)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRates, rates)
		})
	}
}

func TestHTTPFacade_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewExchangeRatesHTTPFacade(url, "k", "USD").GetRateTable(context.Background())
	assert.ErrorIs(t, err, ErrRatesUnavailable)
}
