package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/chatmux-tools/chatmux/internal/domain"
	"github.com/chatmux-tools/chatmux/internal/store"
	"github.com/chatmux-tools/chatmux/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestStore creates a Store backed by an in-memory database.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedGrants inserts a slice of grants into the test store.
func SeedGrants(t *testing.T, s *store.Store, grants []domain.Grant) {
	t.Helper()

	for _, g := range grants {
		err := s.Grant(g.Scenario, g.Persona, g.Permission)
		require.NoError(t, err, "failed to seed grant: %+v", g)
	}
}
