package repository

import (
	"context"

	"bannerstore/internal/domain/order"
)

// OrderRepository returns a nil order and nil error from FindByID when the
// id does not exist.
type OrderRepository interface {
	// Save inserts a new order.
	Save(ctx context.Context, order *order.Order) error
	FindByID(ctx context.Context, id string) (*order.Order, error)
	// UpdateStatus writes order.Status only if the stored status is still
	// from, and returns order.ErrConcurrentUpdate otherwise.
	UpdateStatus(ctx context.Context, order *order.Order, from order.StatusID) error
}

// StatusHistoryRepository stores the status history projection. Append is
// idempotent on EventID so redelivered events are harmless.
type StatusHistoryRepository interface {
	Append(ctx context.Context, entry order.HistoryEntry) error
	ListByOrder(ctx context.Context, orderID string) ([]order.HistoryEntry, error)
}
