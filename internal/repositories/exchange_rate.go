package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-currency-router/internal/logger"
	"github.com/sbilibin2017/gw-currency-router/internal/models"
)

// ErrRatesNotCached is returned when no rate table is cached for a base currency.
var ErrRatesNotCached = errors.New("exchange rates not found in cache")

// ExchangeRateCacheRepository caches whole rate tables in Redis hashes
type ExchangeRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewExchangeRateCacheRepository creates a new repository instance with the given TTL
func NewExchangeRateCacheRepository(client *redis.Client, expiration time.Duration) *ExchangeRateCacheRepository {
	return &ExchangeRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func rateTableKey(base string) string {
	return fmt.Sprintf("exchange_rates:%s", base)
}

// GetRateTable fetches the cached rate table for a base currency
func (r *ExchangeRateCacheRepository) GetRateTable(ctx context.Context, base string) (models.RateTable, error) {
	key := rateTableKey(base)

	vals, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("rate cache read failed",
			"key", key,
			"error", err,
		)
		return nil, err
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRatesNotCached, base)
	}

	rates := make(models.RateTable, len(vals))
	for currency, val := range vals {
		rate, err := strconv.ParseFloat(val, 64)
		if err != nil {
			logger.Log.Infow("rate cache holds invalid value",
				"key", key,
				"currency", currency,
				"value", val,
				"error", err,
			)
			return nil, err
		}
		rates[currency] = rate
	}

	logger.Log.Infow("rate cache hit",
		"key", key,
		"currencies", len(rates),
	)

	return rates, nil
}

// SetRateTable replaces the cached rate table for a base currency and sets its expiration
func (r *ExchangeRateCacheRepository) SetRateTable(ctx context.Context, base string, rates models.RateTable) error {
	key := rateTableKey(base)

	fields := make(map[string]interface{}, len(rates))
	for currency, rate := range rates {
		fields[currency] = strconv.FormatFloat(rate, 'g', -1, 64)
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, r.exp)
		return nil
	})

	logger.Log.Infow("rate cache write",
		"key", key,
		"currencies", len(rates),
		"ttl", r.exp,
		"error", err,
	)

	return err
}
