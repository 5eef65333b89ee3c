package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/anvil/internal/testutil"
)

// setupPool returns a migrated pool with an empty audit table.
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	pool := testutil.SetupTestDB(t)
	if _, err := pool.Exec(context.Background(), `TRUNCATE anvil_combinations`); err != nil {
		t.Fatalf("truncating anvil_combinations: %v", err)
	}
	return pool
}
