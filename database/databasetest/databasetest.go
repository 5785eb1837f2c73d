// Package databasetest provides throwaway in-memory catalog stores for tests.
package databasetest

import (
	"context"
	"fmt"
	"testing"

	"github.com/catalog-app/catalog/config"
	"github.com/catalog-app/catalog/database"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open returns an empty in-memory SQLite store private to the test.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBDSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}
	db, err := database.Open(cfg, zerolog.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

// New returns an in-memory store with the catalog schema in place.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db := Open(t)
	require.NoError(t, database.EnsureSchema(context.Background(), db))
	return db
}
