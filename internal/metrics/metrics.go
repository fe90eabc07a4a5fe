package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	ordersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_orders_created_total",
			Help: "Orders placed through checkout.",
		},
		[]string{"payment_method"},
	)

	emailsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_emails_total",
			Help: "Transactional emails by template and delivery outcome.",
		},
		[]string{"template", "status"},
	)

	complaintsFiledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_complaints_filed_total",
			Help: "Customer complaints filed.",
		},
		[]string{"category"},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

func OrderCreated(paymentMethod string) {
	ordersCreatedTotal.WithLabelValues(paymentMethod).Inc()
}

func EmailDelivered(template, status string) {
	emailsTotal.WithLabelValues(template, status).Inc()
}

func ComplaintFiled(category string) {
	complaintsFiledTotal.WithLabelValues(category).Inc()
}

// Instrument records request count, latency and in-flight requests for one
// route. The path label is the mux pattern, so ids never leak into label
// values. Method and code labels follow promhttp's normalisation ("get", "200").
func Instrument(pattern string, next http.Handler) http.Handler {
	route := prometheus.Labels{"path": pattern}

	return promhttp.InstrumentHandlerInFlight(httpRequestsInFlight,
		promhttp.InstrumentHandlerDuration(httpRequestsDuration.MustCurryWith(route),
			promhttp.InstrumentHandlerCounter(httpRequestsTotal.MustCurryWith(route), next),
		),
	)
}

// Handler serves the default registry for the /metrics scrape.
func Handler() http.Handler {
	return promhttp.Handler()
}
