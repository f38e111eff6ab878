// Package testdb provides migrated in-memory SQLite databases for tests.
package testdb

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/yigit/enrollment/internal/app/migrations"
	"github.com/yigit/enrollment/internal/db"
)

// New returns a fresh, migrated in-memory database that is closed when t finishes
func New(t testing.TB) *db.Database {
	t.Helper()

	database, err := db.NewSQLiteDB(db.MemoryPath)
	require.NoError(t, err, "open in-memory sqlite")
	t.Cleanup(func() { _ = database.Close() })

	err = migrations.NewMigrator(database, zerolog.Nop()).Migrate(context.Background())
	require.NoError(t, err, "apply migrations")

	return database
}
