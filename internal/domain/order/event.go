package order

import "time"

type EventType string

const (
	EventPlaced        EventType = "order.placed"
	EventStatusChanged EventType = "order.status_changed"
)

// Event is published for every persisted order change.
type Event struct {
	ID         string
	Type       EventType
	OrderID    string
	CustomerID string
	FromStatus StatusID
	ToStatus   StatusID
	Total      float64
	OccurredAt time.Time
}

// PlacedEvent describes the creation of o.
func PlacedEvent(id string, o *Order) Event {
	return Event{
		ID:         id,
		Type:       EventPlaced,
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		ToStatus:   o.Status,
		Total:      o.Breakdown.Total,
		OccurredAt: o.CreatedAt,
	}
}

// StatusChangedEvent describes t applied to o.
func StatusChangedEvent(id string, o *Order, t Transition) Event {
	return Event{
		ID:         id,
		Type:       EventStatusChanged,
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		FromStatus: t.From,
		ToStatus:   t.To,
		Total:      o.Breakdown.Total,
		OccurredAt: t.At,
	}
}

// HistoryEntry projects the event onto the status history.
func (e Event) HistoryEntry() HistoryEntry {
	return HistoryEntry{
		EventID:    e.ID,
		OrderID:    e.OrderID,
		FromStatus: e.FromStatus,
		ToStatus:   e.ToStatus,
		OccurredAt: e.OccurredAt,
	}
}
