package order

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPipeline_Order(t *testing.T) {
	var ids []StatusID
	for _, s := range Pipeline() {
		ids = append(ids, s.ID)
	}

	want := []StatusID{
		StatusPending, StatusConfirmed, StatusProcessing, StatusPrinting,
		StatusQualityCheck, StatusShipped, StatusDelivered,
	}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("Pipeline() mismatch (-want +got):\n%s", diff)
	}
}

func TestPipeline_ReturnsCopy(t *testing.T) {
	p := Pipeline()
	p[0].Label = "Tampered"
	p[1].ID = "bogus"

	meta, ok := StatusByID(StatusPending)
	assert.True(t, ok)
	assert.Equal(t, "Pending", meta.Label)

	next, ok := NextStatus(StatusPending)
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, next)
}

func TestNextStatus(t *testing.T) {
	tests := []struct {
		current StatusID
		want    StatusID
		ok      bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusConfirmed, StatusProcessing, true},
		{StatusProcessing, StatusPrinting, true},
		{StatusPrinting, StatusQualityCheck, true},
		{StatusQualityCheck, StatusShipped, true},
		{StatusShipped, StatusDelivered, true},
		{StatusDelivered, "", false},
		{StatusCancelled, "", false},
		{StatusRefunded, "", false},
		{"unknown_status", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			got, ok := NextStatus(tt.current)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreviousStatus(t *testing.T) {
	tests := []struct {
		current StatusID
		want    StatusID
		ok      bool
	}{
		{StatusPending, "", false},
		{StatusConfirmed, StatusPending, true},
		{StatusQualityCheck, StatusPrinting, true},
		{StatusDelivered, StatusShipped, true},
		{StatusCancelled, "", false},
		{"unknown_status", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			got, ok := PreviousStatus(tt.current)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusByID(t *testing.T) {
	for _, s := range Statuses() {
		meta, ok := StatusByID(s.ID)
		assert.True(t, ok, s.ID)
		assert.Equal(t, s, meta)
	}
	assert.Len(t, Statuses(), 8)

	cancelled, ok := StatusByID(StatusCancelled)
	assert.True(t, ok)
	assert.Equal(t, "Cancelled", cancelled.Label)

	_, ok = StatusByID(StatusRefunded)
	assert.False(t, ok)

	_, ok = StatusByID("shipping")
	assert.False(t, ok)
}

func TestDisplayStatus(t *testing.T) {
	meta, ok := DisplayStatus(StatusRefunded)
	assert.True(t, ok)
	assert.Equal(t, "Refunded", meta.Label)

	meta, ok = DisplayStatus(StatusPrinting)
	assert.True(t, ok)
	assert.Equal(t, "Printing", meta.Label)
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusDelivered))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.True(t, IsTerminal(StatusRefunded))
	for _, s := range Pipeline()[:6] {
		assert.False(t, IsTerminal(s.ID), s.ID)
	}
}
