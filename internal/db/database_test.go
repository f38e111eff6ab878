package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/enrollment/internal/config"
)

func openMemory(t *testing.T) *Database {
	t.Helper()
	database, err := NewSQLiteDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	_, err = database.DB.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	require.NoError(t, err)
	return database
}

func countItems(t *testing.T, database *Database) int {
	t.Helper()
	var n int
	require.NoError(t, database.DB.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n))
	return n
}

func TestNewSQLiteDB_ForeignKeysEnabled(t *testing.T) {
	database := openMemory(t)

	var enabled int
	require.NoError(t, database.DB.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
	assert.Equal(t, DialectSQLite, database.Dialect)
	assert.Equal(t, squirrel.Question, database.Placeholder())
	assert.NoError(t, database.Ping(context.Background()))
}

func TestNewDatabase_FileAndUnknownDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "test.sqlite3")

	database, err := NewDatabase(cfg)
	require.NoError(t, err)
	assert.NoError(t, database.Close())
	assert.FileExists(t, cfg.Database.Path)

	cfg.Database.Driver = "oracle"
	_, err = NewDatabase(cfg)
	assert.Error(t, err)
}

func TestWithTransaction_Commit(t *testing.T) {
	database := openMemory(t)

	err := database.WithTransaction(context.Background(), func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO items (name) VALUES ('a')`)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countItems(t, database))
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	database := openMemory(t)
	boom := errors.New("boom")

	err := database.WithTransaction(context.Background(), func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO items (name) VALUES ('a')`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countItems(t, database))
}

func TestWithTransaction_RollbackOnPanic(t *testing.T) {
	database := openMemory(t)

	assert.Panics(t, func() {
		_ = database.WithTransaction(context.Background(), func(ctx context.Context, tx *sql.Tx) error {
			_, _ = tx.ExecContext(ctx, `INSERT INTO items (name) VALUES ('a')`)
			panic("boom")
		})
	})
	assert.Equal(t, 0, countItems(t, database))
}
