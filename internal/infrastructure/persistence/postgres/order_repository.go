package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "bannerstore/internal/domain/order"
)

const ordersTable = `
	CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		selection JSONB NOT NULL,
		breakdown JSONB NOT NULL,
		total NUMERIC NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
`

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("order is nil")
	}

	const query = `
		INSERT INTO orders (id, customer_id, product_id, selection, breakdown, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	selection, err := json.Marshal(order.Selection)
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}
	breakdown, err := json.Marshal(order.Breakdown)
	if err != nil {
		return fmt.Errorf("encode breakdown: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		order.ID,
		order.CustomerID,
		order.ProductID,
		selection,
		breakdown,
		order.Breakdown.Total,
		string(order.Status),
		order.CreatedAt,
		order.UpdatedAt,
	)
	return err
}

// UpdateStatus is a compare-and-set on status, so two transitions loaded
// from the same state cannot both land.
func (r *OrderRepository) UpdateStatus(ctx context.Context, order *domain.Order, from domain.StatusID) error {
	if order == nil {
		return fmt.Errorf("order is nil")
	}

	const query = `
		UPDATE orders
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status = $4;
	`
	tag, err := r.pool.Exec(ctx, query, order.ID, string(order.Status), order.UpdatedAt, string(from))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrentUpdate
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	const query = `
		SELECT id, customer_id, product_id, selection, breakdown, status, created_at, updated_at
		FROM orders
		WHERE id = $1;
	`
	var (
		o                    domain.Order
		status               string
		selection, breakdown []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&o.CustomerID,
		&o.ProductID,
		&selection,
		&breakdown,
		&status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	o.Status = domain.StatusID(status)
	if err := json.Unmarshal(selection, &o.Selection); err != nil {
		return nil, fmt.Errorf("decode selection: %w", err)
	}
	if err := json.Unmarshal(breakdown, &o.Breakdown); err != nil {
		return nil, fmt.Errorf("decode breakdown: %w", err)
	}
	return &o, nil
}
