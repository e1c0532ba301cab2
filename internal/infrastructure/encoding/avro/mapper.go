package avro

import (
	"fmt"
	"time"

	domain "bannerstore/internal/domain/order"
)

var eventTypeSymbols = map[domain.EventType]string{
	domain.EventPlaced:        "PLACED",
	domain.EventStatusChanged: "STATUS_CHANGED",
}

// toNative builds the goavro native form. Union values must be wrapped as
// map[string]interface{}{"<type>": value}.
func toNative(evt domain.Event) (map[string]interface{}, error) {
	symbol, ok := eventTypeSymbols[evt.Type]
	if !ok {
		return nil, fmt.Errorf("unknown event type %q", evt.Type)
	}

	var from interface{}
	if evt.FromStatus != "" {
		from = map[string]interface{}{"string": string(evt.FromStatus)}
	}

	return map[string]interface{}{
		"event_id":    evt.ID,
		"event_type":  symbol,
		"order_id":    evt.OrderID,
		"customer_id": evt.CustomerID,
		"from_status": from,
		"to_status":   string(evt.ToStatus),
		"total":       evt.Total,
		"occurred_at": evt.OccurredAt.UTC(),
	}, nil
}

func fromNative(rec map[string]interface{}) (domain.Event, error) {
	var evt domain.Event

	symbol, _ := rec["event_type"].(string)
	for t, s := range eventTypeSymbols {
		if s == symbol {
			evt.Type = t
		}
	}
	if evt.Type == "" {
		return domain.Event{}, fmt.Errorf("unknown event type symbol %q", symbol)
	}

	evt.ID, _ = rec["event_id"].(string)
	evt.OrderID, _ = rec["order_id"].(string)
	evt.CustomerID, _ = rec["customer_id"].(string)
	if to, ok := rec["to_status"].(string); ok {
		evt.ToStatus = domain.StatusID(to)
	}
	if union, ok := rec["from_status"].(map[string]interface{}); ok {
		if s, ok := union["string"].(string); ok {
			evt.FromStatus = domain.StatusID(s)
		}
	}
	evt.Total, _ = rec["total"].(float64)
	if ts, ok := rec["occurred_at"].(time.Time); ok {
		evt.OccurredAt = ts.UTC()
	}
	return evt, nil
}
