package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	QuoteOK         = "ok"
	QuoteIncomplete = "incomplete"
	QuoteNotFound   = "not_found"
	QuoteInactive   = "inactive"
)

// Registry owns a private prometheus registry so tests can build as many
// as they like without colliding on the default one.
type Registry struct {
	reg              *prometheus.Registry
	Quotes           *prometheus.CounterVec
	QuoteTotal       prometheus.Histogram
	OrdersPlaced     prometheus.Counter
	StatusChanges    *prometheus.CounterVec
	EventsPublished  prometheus.Counter
	EventsFailed     prometheus.Counter
	EventsProjected  prometheus.Counter
	ProductsImported *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bannerstore_quotes_total",
		Help: "Price quotes served, by result.",
	}, []string{"result"})
	quoteTotal := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "bannerstore_quote_total_amount",
		Help:    "Quoted order totals.",
		Buckets: prometheus.ExponentialBuckets(10, 2, 12),
	})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{Name: "bannerstore_orders_placed_total"})
	statusChanges := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bannerstore_order_status_changes_total",
	}, []string{"to"})
	published := prometheus.NewCounter(prometheus.CounterOpts{Name: "bannerstore_events_published_total"})
	failed := prometheus.NewCounter(prometheus.CounterOpts{Name: "bannerstore_events_publish_failed_total"})
	projected := prometheus.NewCounter(prometheus.CounterOpts{Name: "bannerstore_events_projected_total"})
	imported := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bannerstore_products_imported_total",
	}, []string{"result"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bannerstore_http_request_duration_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	r.MustRegister(quotes, quoteTotal, ordersPlaced, statusChanges, published, failed, projected, imported, httpDuration)
	return &Registry{
		reg:              r,
		Quotes:           quotes,
		QuoteTotal:       quoteTotal,
		OrdersPlaced:     ordersPlaced,
		StatusChanges:    statusChanges,
		EventsPublished:  published,
		EventsFailed:     failed,
		EventsProjected:  projected,
		ProductsImported: imported,
		HTTPDuration:     httpDuration,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }
