package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CountersAreIndependent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	a.Quotes.WithLabelValues(QuoteOK).Inc()
	a.Quotes.WithLabelValues(QuoteOK).Inc()

	assert.Equal(t, float64(2), testutil.ToFloat64(a.Quotes.WithLabelValues(QuoteOK)))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.Quotes.WithLabelValues(QuoteOK)))
}

func TestRegistry_Handler(t *testing.T) {
	r := NewRegistry()
	r.OrdersPlaced.Inc()
	r.StatusChanges.WithLabelValues("confirmed").Inc()

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "bannerstore_orders_placed_total 1")
	assert.Contains(t, string(body), `bannerstore_order_status_changes_total{to="confirmed"} 1`)
}
