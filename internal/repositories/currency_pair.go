package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-currency-router/internal/logger"
	"github.com/sbilibin2017/gw-currency-router/internal/models"
)

// CurrencyPairReadRepository reads the tradable currency pairs that form the adjacency list.
type CurrencyPairReadRepository struct {
	db *sqlx.DB
}

func NewCurrencyPairReadRepository(db *sqlx.DB) *CurrencyPairReadRepository {
	return &CurrencyPairReadRepository{db: db}
}

// GetAdjacencyList returns enabled pairs grouped by source currency, targets in position order.
func (r *CurrencyPairReadRepository) GetAdjacencyList(ctx context.Context) (models.AdjacencyList, error) {
	const query = `
		SELECT from_currency, to_currency
		FROM currency_pairs
		WHERE enabled
		ORDER BY from_currency, position, to_currency
	`

	var pairs []struct {
		FromCurrency string `db:"from_currency"`
		ToCurrency   string `db:"to_currency"`
	}

	err := r.db.SelectContext(ctx, &pairs, query)

	// Log query, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(pairs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	adjacency := make(models.AdjacencyList)
	for _, p := range pairs {
		from := strings.ToUpper(strings.TrimSpace(p.FromCurrency))
		to := strings.ToUpper(strings.TrimSpace(p.ToCurrency))
		adjacency[from] = append(adjacency[from], to)
	}

	return adjacency, nil
}
