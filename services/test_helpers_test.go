package services

import (
	"context"
	"testing"

	"financetracker/backend/config"
	"financetracker/backend/database"
	"financetracker/backend/migrations"
	"financetracker/backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestService returns a service backed by a migrated in-memory database.
func newTestService(t *testing.T) *TransactionService {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.RunMigrations(db, database.SQLite))
	return NewTransactionService(db, database.SQLite)
}

func input(typ models.TransactionType, amount, category, date string) models.TransactionInput {
	d, err := models.ParseDate(date)
	if err != nil {
		panic(err)
	}
	a := decimal.RequireFromString(amount)
	return models.TransactionInput{
		Type:     &typ,
		Amount:   &a,
		Category: &category,
		Date:     &d,
	}
}

func mustCreate(t *testing.T, svc *TransactionService, in models.TransactionInput) *models.Transaction {
	t.Helper()
	created, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	return created
}

func dateRange(t *testing.T, start, end string) models.DateRange {
	t.Helper()
	r, err := ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func strPtr(s string) *string {
	return &s
}
