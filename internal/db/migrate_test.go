package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_Idempotent(t *testing.T) {
	pool := setupPool(t)
	dsn := pool.Config().ConnString()
	ctx := context.Background()

	// The pool is already migrated; running again only reports the version.
	version, err := RunMigrations(ctx, dsn)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	version, err = RunMigrations(ctx, dsn)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	var exists bool
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'anvil_combinations')`,
	).Scan(&exists))
	assert.True(t, exists)
}

func TestRunMigrations_BadDSN(t *testing.T) {
	_, err := RunMigrations(context.Background(), "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	assert.Error(t, err)
}
