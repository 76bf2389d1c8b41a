package options_test

import (
	"context"
	"os"
	"testing"

	"github.com/cyphera/store-admin/libs/go/client/options"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real database when DATABASE_URL is set
func TestPostgresBackend_Integration(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping Postgres integration test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	backend := options.NewPostgresBackend(pool)
	require.NoError(t, backend.EnsureSchema(ctx))
	require.NoError(t, backend.Ping(ctx))

	names := []string{"test_option_settings", "test_option_flag"}
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM store_options WHERE name = ANY($1)`, names)
	})

	err = backend.Save(ctx, map[string]interface{}{
		"test_option_settings": map[string]interface{}{"enabled": "yes", "title": "Stripe"},
		"test_option_flag":     "yes",
	})
	require.NoError(t, err)

	got, err := backend.Load(ctx, append(names, "test_option_missing"))
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"test_option_settings": map[string]interface{}{"enabled": "yes", "title": "Stripe"},
		"test_option_flag":     "yes",
	}, got)

	// upsert overwrites
	require.NoError(t, backend.Save(ctx, map[string]interface{}{"test_option_flag": "no"}))
	got, err = backend.Load(ctx, []string{"test_option_flag"})
	require.NoError(t, err)
	assert.Equal(t, "no", got["test_option_flag"])
}
