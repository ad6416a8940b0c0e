// Package repotest opens migrated in-memory SQLite databases for tests.
package repotest

import (
	"context"
	"database/sql"
	"testing"

	"TaskBoardService/config"
	"TaskBoardService/repository"

	"github.com/stretchr/testify/require"
)

// Open returns a migrated, empty in-memory database with foreign keys on.
// It is closed when the test ends.
func Open(t testing.TB) (*sql.DB, repository.Dialect) {
	t.Helper()
	ctx := context.Background()
	db, d, err := repository.Open(ctx, config.Database{
		Driver: "sqlite3",
		DSN:    "file::memory:?_foreign_keys=on",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repository.Migrate(ctx, db, d))
	return db, d
}

// Seed inserts users and categories named after their position, so ids
// start at 1, and returns db for chaining.
func Seed(t testing.TB, db *sql.DB, users, categories []string) *sql.DB {
	t.Helper()
	for _, name := range users {
		_, err := db.Exec("INSERT INTO users (username, email) VALUES (?, ?)", name, name+"@example.com")
		require.NoError(t, err)
	}
	for _, name := range categories {
		_, err := db.Exec("INSERT INTO categories (category) VALUES (?)", name)
		require.NoError(t, err)
	}
	return db
}
