package avro

// OrderEventSchema is the Avro schema of order events on the event topic.
// from_status is null for order.placed. occurred_at keeps microseconds so
// transitions of one order stay ordered in the history projection.
const OrderEventSchema = `{
	"type": "record",
	"name": "OrderEvent",
	"namespace": "com.bannerstore.order",
	"fields": [
		{"name": "event_id", "type": "string"},
		{"name": "event_type", "type": {"type": "enum", "name": "OrderEventType", "symbols": ["PLACED", "STATUS_CHANGED"]}},
		{"name": "order_id", "type": "string"},
		{"name": "customer_id", "type": "string"},
		{"name": "from_status", "type": ["null", "string"], "default": null},
		{"name": "to_status", "type": "string"},
		{"name": "total", "type": "double"},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-micros"}}
	]
}`
