package order

import "time"

// HistoryEntry is one row of an order's status history, projected from
// consumed order events.
type HistoryEntry struct {
	EventID    string    `json:"event_id"`
	OrderID    string    `json:"order_id"`
	FromStatus StatusID  `json:"from_status,omitempty"`
	ToStatus   StatusID  `json:"to_status"`
	OccurredAt time.Time `json:"occurred_at"`
}
