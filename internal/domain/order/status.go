package order

// StatusID identifies an order status.
type StatusID string

const (
	StatusPending      StatusID = "pending"
	StatusConfirmed    StatusID = "confirmed"
	StatusProcessing   StatusID = "processing"
	StatusPrinting     StatusID = "printing"
	StatusQualityCheck StatusID = "quality_check"
	StatusShipped      StatusID = "shipped"
	StatusDelivered    StatusID = "delivered"
	StatusCancelled    StatusID = "cancelled"

	// StatusRefunded is display-only: it is never reached through the
	// pipeline and is only set by direct assignment.
	StatusRefunded StatusID = "refunded"
)

func (s StatusID) String() string {
	return string(s)
}

// StatusMeta is presentation data attached to a status.
type StatusMeta struct {
	ID    StatusID `json:"id"`
	Label string   `json:"label"`
	Icon  string   `json:"icon"`
	Color string   `json:"color"`
}

// pipeline is the forward fulfilment order. Never mutated after init.
var pipeline = [...]StatusMeta{
	{ID: StatusPending, Label: "Pending", Icon: "clock", Color: "yellow"},
	{ID: StatusConfirmed, Label: "Confirmed", Icon: "check-circle", Color: "blue"},
	{ID: StatusProcessing, Label: "Processing", Icon: "settings", Color: "indigo"},
	{ID: StatusPrinting, Label: "Printing", Icon: "printer", Color: "purple"},
	{ID: StatusQualityCheck, Label: "Quality Check", Icon: "search", Color: "orange"},
	{ID: StatusShipped, Label: "Shipped", Icon: "truck", Color: "cyan"},
	{ID: StatusDelivered, Label: "Delivered", Icon: "package-check", Color: "green"},
}

var cancelledMeta = StatusMeta{ID: StatusCancelled, Label: "Cancelled", Icon: "x-circle", Color: "red"}

var refundedMeta = StatusMeta{ID: StatusRefunded, Label: "Refunded", Icon: "rotate-ccw", Color: "gray"}

// Pipeline returns the forward stages in order.
func Pipeline() []StatusMeta {
	out := make([]StatusMeta, len(pipeline))
	copy(out, pipeline[:])
	return out
}

// Statuses returns every status an order can hold through the pipeline or
// cancellation: the pipeline stages followed by cancelled.
func Statuses() []StatusMeta {
	return append(Pipeline(), cancelledMeta)
}

func pipelineIndex(id StatusID) int {
	for i, s := range pipeline {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// NextStatus returns the stage after current. ok is false when current is
// the last stage or not a pipeline stage at all.
func NextStatus(current StatusID) (StatusID, bool) {
	i := pipelineIndex(current)
	if i < 0 || i == len(pipeline)-1 {
		return "", false
	}
	return pipeline[i+1].ID, true
}

// PreviousStatus returns the stage before current. ok is false when current
// is the first stage or not a pipeline stage at all.
func PreviousStatus(current StatusID) (StatusID, bool) {
	i := pipelineIndex(current)
	if i <= 0 {
		return "", false
	}
	return pipeline[i-1].ID, true
}

// StatusByID looks a status up among the pipeline stages and cancelled.
func StatusByID(id StatusID) (StatusMeta, bool) {
	if i := pipelineIndex(id); i >= 0 {
		return pipeline[i], true
	}
	if id == StatusCancelled {
		return cancelledMeta, true
	}
	return StatusMeta{}, false
}

// DisplayStatus is StatusByID extended with refunded, for rendering orders
// that were refunded out of band.
func DisplayStatus(id StatusID) (StatusMeta, bool) {
	if id == StatusRefunded {
		return refundedMeta, true
	}
	return StatusByID(id)
}

// IsTerminal reports whether no transition is defined out of s.
func IsTerminal(s StatusID) bool {
	switch s {
	case StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// IsKnown reports whether s can be stored on an order.
func IsKnown(s StatusID) bool {
	_, ok := DisplayStatus(s)
	return ok
}
