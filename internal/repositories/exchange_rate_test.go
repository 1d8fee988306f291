package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-currency-router/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestExchangeRateCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Redis container test in short mode")
	}
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}
	defer redisC.Terminate(ctx)

	// Get container host and port
	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewExchangeRateCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get rate table", func(t *testing.T) {
		rates := models.RateTable{"USD": 1, "EUR": 0.9, "JPY": 140.25}

		err := repo.SetRateTable(ctx, "USD", rates)
		assert.NoError(t, err)

		got, err := repo.GetRateTable(ctx, "USD")
		assert.NoError(t, err)
		assert.Equal(t, rates, got)
	})

	t.Run("Set replaces previous table", func(t *testing.T) {
		assert.NoError(t, repo.SetRateTable(ctx, "EUR", models.RateTable{"USD": 1.1, "GBP": 0.85}))
		assert.NoError(t, repo.SetRateTable(ctx, "EUR", models.RateTable{"USD": 1.2}))

		got, err := repo.GetRateTable(ctx, "EUR")
		assert.NoError(t, err)
		assert.Equal(t, models.RateTable{"USD": 1.2}, got)
	})

	t.Run("Get missing key returns error", func(t *testing.T) {
		_, err := repo.GetRateTable(ctx, "XYZ")
		assert.ErrorIs(t, err, ErrRatesNotCached)
	})

	t.Run("Cached table expires", func(t *testing.T) {
		err := repo.SetRateTable(ctx, "GBP", models.RateTable{"USD": 1.5})
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.GetRateTable(ctx, "GBP")
		assert.ErrorIs(t, err, ErrRatesNotCached)
	})
}
