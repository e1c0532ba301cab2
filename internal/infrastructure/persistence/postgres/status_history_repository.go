package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "bannerstore/internal/domain/order"
)

const historyTable = `
	CREATE TABLE IF NOT EXISTS order_status_history (
		event_id TEXT PRIMARY KEY,
		seq BIGSERIAL NOT NULL,
		order_id TEXT NOT NULL,
		from_status TEXT,
		to_status TEXT NOT NULL,
		occurred_at TIMESTAMPTZ NOT NULL
	);
`

// historySeq upgrades tables created before seq existed.
const historySeq = `
	ALTER TABLE order_status_history ADD COLUMN IF NOT EXISTS seq BIGSERIAL NOT NULL;
`

const historyIndex = `
	CREATE INDEX IF NOT EXISTS order_status_history_order_seq_idx
		ON order_status_history (order_id, occurred_at, seq);
`

type StatusHistoryRepository struct {
	pool *pgxpool.Pool
}

func NewStatusHistoryRepository(pool *pgxpool.Pool) *StatusHistoryRepository {
	return &StatusHistoryRepository{pool: pool}
}

func (r *StatusHistoryRepository) Append(ctx context.Context, e domain.HistoryEntry) error {
	const query = `
		INSERT INTO order_status_history (event_id, order_id, from_status, to_status, occurred_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		ON CONFLICT (event_id) DO NOTHING;
	`
	_, err := r.pool.Exec(ctx, query,
		e.EventID,
		e.OrderID,
		string(e.FromStatus),
		string(e.ToStatus),
		e.OccurredAt,
	)
	return err
}

func (r *StatusHistoryRepository) ListByOrder(ctx context.Context, orderID string) ([]domain.HistoryEntry, error) {
	const query = `
		SELECT event_id, order_id, COALESCE(from_status, ''), to_status, occurred_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY occurred_at, seq;
	`
	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.HistoryEntry, error) {
		var (
			e        domain.HistoryEntry
			from, to string
		)
		err := row.Scan(&e.EventID, &e.OrderID, &from, &to, &e.OccurredAt)
		e.FromStatus = domain.StatusID(from)
		e.ToStatus = domain.StatusID(to)
		return e, err
	})
}
