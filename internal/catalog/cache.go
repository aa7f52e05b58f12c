package catalog

import (
	"context"
	"fmt"

	"github.com/levelup-gaming/levelup/internal/dbx"
)

// CacheRepository stores the last fetched product list in the local database
// so the store screen can render offline.
type CacheRepository struct {
	db dbx.DBTX
}

func NewCacheRepository(db dbx.DBTX) *CacheRepository {
	return &CacheRepository{db: db}
}

// UpsertProducts replaces or inserts each product by id.
func (r *CacheRepository) UpsertProducts(ctx context.Context, products []Product) error {
	query := `INSERT INTO catalog_products (id, name, description, image_url, price, category)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name,
			description = excluded.description,
			image_url = excluded.image_url,
			price = excluded.price,
			category = excluded.category`
	for _, p := range products {
		_, err := r.db.ExecContext(ctx, query,
			p.ID, p.Name, p.Description, p.ImageURL, p.Price, p.Category)
		if err != nil {
			return fmt.Errorf("failed to upsert product %d: %w", p.ID, err)
		}
	}
	return nil
}

// ListProducts returns the cached product list ordered by id.
func (r *CacheRepository) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, image_url, price, category FROM catalog_products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select cached products: %w", err)
	}
	defer rows.Close()

	var result []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.Price, &p.Category); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Clear empties the product cache.
func (r *CacheRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM catalog_products`); err != nil {
		return fmt.Errorf("failed to clear product cache: %w", err)
	}
	return nil
}
