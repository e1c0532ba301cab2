package order

import (
	"fmt"
	"time"

	"bannerstore/internal/domain/catalog"
)

type Order struct {
	ID         string                 `json:"id"`
	CustomerID string                 `json:"customer_id"`
	ProductID  string                 `json:"product_id"`
	Selection  catalog.Selection      `json:"selection"`
	Breakdown  catalog.PriceBreakdown `json:"breakdown"`
	Status     StatusID               `json:"status"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// Transition records a status change applied to an order.
type Transition struct {
	OrderID string
	From    StatusID
	To      StatusID
	At      time.Time
}

func NewOrder(id, customerID, productID string, sel catalog.Selection, breakdown catalog.PriceBreakdown) (*Order, error) {
	if id == "" || customerID == "" || productID == "" {
		return nil, ErrMissingField
	}

	now := time.Now().UTC()
	return &Order{
		ID:         id,
		CustomerID: customerID,
		ProductID:  productID,
		Selection:  sel,
		Breakdown:  breakdown,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Advance moves the order one stage forward along the pipeline.
func (o *Order) Advance() (Transition, error) {
	if IsTerminal(o.Status) {
		return Transition{}, fmt.Errorf("advance from %s: %w", o.Status, ErrTerminalStatus)
	}
	next, ok := NextStatus(o.Status)
	if !ok {
		return Transition{}, fmt.Errorf("advance from %s: %w", o.Status, ErrNoNextStatus)
	}
	return o.move(next), nil
}

// Revert moves the order one stage back along the pipeline.
func (o *Order) Revert() (Transition, error) {
	if IsTerminal(o.Status) {
		return Transition{}, fmt.Errorf("revert from %s: %w", o.Status, ErrTerminalStatus)
	}
	prev, ok := PreviousStatus(o.Status)
	if !ok {
		return Transition{}, fmt.Errorf("revert from %s: %w", o.Status, ErrNoPreviousStatus)
	}
	return o.move(prev), nil
}

// Cancel exits the pipeline from any non-terminal status.
func (o *Order) Cancel() (Transition, error) {
	if IsTerminal(o.Status) {
		return Transition{}, fmt.Errorf("cancel from %s: %w", o.Status, ErrTerminalStatus)
	}
	return o.move(StatusCancelled), nil
}

// Assign sets the status directly, bypassing pipeline adjacency. This is
// the back-office override and the only way an order becomes refunded.
// A terminal order can only be moved to refunded.
func (o *Order) Assign(status StatusID) (Transition, error) {
	if !IsKnown(status) {
		return Transition{}, fmt.Errorf("assign %q: %w", status, ErrUnknownStatus)
	}
	if status == o.Status {
		return Transition{}, fmt.Errorf("assign %s: %w", status, ErrStatusUnchanged)
	}
	if IsTerminal(o.Status) && status != StatusRefunded {
		return Transition{}, fmt.Errorf("assign %s from %s: %w", status, o.Status, ErrTerminalStatus)
	}
	return o.move(status), nil
}

func (o *Order) move(to StatusID) Transition {
	t := Transition{
		OrderID: o.ID,
		From:    o.Status,
		To:      to,
		At:      time.Now().UTC(),
	}
	o.Status = to
	o.UpdatedAt = t.At
	return t
}
