package catalog

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupCacheDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE catalog_products (
  id          INTEGER PRIMARY KEY,
  name        TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  image_url   TEXT NOT NULL DEFAULT '',
  price       REAL NOT NULL,
  category    TEXT NOT NULL DEFAULT ''
);`)
	require.NoError(t, err)
	return db
}

func sampleProducts() []Product {
	return []Product{
		{ID: 1, Name: "Elden Ring", Price: 59.99, Category: "games"},
		{ID: 2, Name: "DualSense", Price: 69.99, Category: "accessories"},
	}
}

func TestCache_UpsertAndList(t *testing.T) {
	r := NewCacheRepository(setupCacheDB(t))
	ctx := context.Background()

	require.NoError(t, r.UpsertProducts(ctx, sampleProducts()))

	got, err := r.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Elden Ring", got[0].Name)
	assert.Equal(t, "DualSense", got[1].Name)
}

func TestCache_UpsertOverwritesByID(t *testing.T) {
	r := NewCacheRepository(setupCacheDB(t))
	ctx := context.Background()

	require.NoError(t, r.UpsertProducts(ctx, sampleProducts()))
	require.NoError(t, r.UpsertProducts(ctx, []Product{
		{ID: 1, Name: "Elden Ring", Price: 39.99, Category: "games"}, // price drop
	}))

	got, err := r.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 39.99, got[0].Price, 0.001)
}

func TestCache_Clear(t *testing.T) {
	r := NewCacheRepository(setupCacheDB(t))
	ctx := context.Background()

	require.NoError(t, r.UpsertProducts(ctx, sampleProducts()))
	require.NoError(t, r.Clear(ctx))

	got, err := r.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
