package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-currency-router/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyPairReadRepository_GetAdjacencyList(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewCurrencyPairReadRepository(sqlx.NewDb(db, "sqlmock"))

	rows := sqlmock.NewRows([]string{"from_currency", "to_currency"}).
		AddRow("EUR", "JPY").
		AddRow("USD", "EUR").
		AddRow("usd", "jpy ")
	mock.ExpectQuery(`SELECT from_currency, to_currency\s+FROM currency_pairs`).WillReturnRows(rows)

	got, err := repo.GetAdjacencyList(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, models.AdjacencyList{
		"EUR": {"JPY"},
		"USD": {"EUR", "JPY"},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrencyPairReadRepository_GetAdjacencyList_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewCurrencyPairReadRepository(sqlx.NewDb(db, "sqlmock"))

	mock.ExpectQuery(`SELECT from_currency, to_currency\s+FROM currency_pairs`).
		WillReturnError(errors.New("connection refused"))

	got, err := repo.GetAdjacencyList(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
