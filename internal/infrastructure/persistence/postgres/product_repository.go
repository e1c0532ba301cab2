package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bannerstore/internal/domain/catalog"
)

const productsTable = `
	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT,
		category_id TEXT,
		description TEXT,
		base_price NUMERIC,
		sizes JSONB NOT NULL DEFAULT '[]',
		materials JSONB NOT NULL DEFAULT '[]',
		finishings JSONB NOT NULL DEFAULT '[]',
		lead_times JSONB NOT NULL DEFAULT '[]',
		tier_pricing JSONB NOT NULL DEFAULT '[]',
		addons JSONB NOT NULL DEFAULT '[]',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Upsert(ctx context.Context, p *catalog.Product) error {
	if p == nil {
		return fmt.Errorf("product is nil")
	}

	const query = `
		INSERT INTO products (id, name, slug, category_id, description, base_price,
			sizes, materials, finishings, lead_times, tier_pricing, addons, is_active, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			slug = EXCLUDED.slug,
			category_id = EXCLUDED.category_id,
			description = EXCLUDED.description,
			base_price = EXCLUDED.base_price,
			sizes = EXCLUDED.sizes,
			materials = EXCLUDED.materials,
			finishings = EXCLUDED.finishings,
			lead_times = EXCLUDED.lead_times,
			tier_pricing = EXCLUDED.tier_pricing,
			addons = EXCLUDED.addons,
			is_active = EXCLUDED.is_active,
			updated_at = now();
	`

	cols, err := marshalCollections(p)
	if err != nil {
		return err
	}

	var basePrice *float64
	if p.BasePrice.IsSet() {
		v := p.BasePrice.Value()
		basePrice = &v
	}

	_, err = r.pool.Exec(ctx, query,
		p.ID,
		p.Name,
		p.Slug,
		p.CategoryID,
		p.Description,
		basePrice,
		cols[0], cols[1], cols[2], cols[3], cols[4], cols[5],
		p.Active,
	)
	return err
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	const query = `
		SELECT id, name, COALESCE(slug, ''), COALESCE(category_id, ''), COALESCE(description, ''),
			base_price::float8, sizes, materials, finishings, lead_times, tier_pricing, addons,
			is_active, updated_at
		FROM products
		WHERE id = $1;
	`

	var (
		p         catalog.Product
		basePrice *float64
		cols      [6][]byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.CategoryID,
		&p.Description,
		&basePrice,
		&cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &cols[5],
		&p.Active,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if basePrice != nil {
		p.BasePrice = catalog.P(*basePrice)
	}
	if err := unmarshalCollections(&p, cols); err != nil {
		return nil, fmt.Errorf("decode product %s: %w", id, err)
	}
	return &p, nil
}

// collection order matches the column order of the products table
func marshalCollections(p *catalog.Product) ([6][]byte, error) {
	var out [6][]byte
	values := []interface{}{p.Sizes, p.Materials, p.Finishings, p.LeadTimes, p.TierPricing, p.Addons}
	for i, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return out, fmt.Errorf("encode product %s: %w", p.ID, err)
		}
		out[i] = b
	}
	return out, nil
}

func unmarshalCollections(p *catalog.Product, cols [6][]byte) error {
	targets := []interface{}{&p.Sizes, &p.Materials, &p.Finishings, &p.LeadTimes, &p.TierPricing, &p.Addons}
	for i, target := range targets {
		if len(cols[i]) == 0 {
			continue
		}
		if err := json.Unmarshal(cols[i], target); err != nil {
			return err
		}
	}
	return nil
}
