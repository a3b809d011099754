// Package metrics provides Prometheus collectors for siteintel.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Vendor outcome labels.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeInvalid = "invalid"
)

var (
	// VendorRequests counts outbound vendor calls by outcome.
	VendorRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "siteintel",
			Name:      "vendor_requests_total",
			Help:      "Total number of vendor API calls",
		},
		[]string{"vendor", "outcome"},
	)

	// VendorDuration measures vendor call latency.
	VendorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "siteintel",
			Name:      "vendor_request_duration_seconds",
			Help:      "Duration of vendor API calls in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 300},
		},
		[]string{"vendor"},
	)

	// Fallbacks counts stage results substituted with fixture data.
	Fallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "siteintel",
			Name:      "fallback_total",
			Help:      "Total number of fallback substitutions per stage",
		},
		[]string{"stage"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "siteintel",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "siteintel",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordVendor records one vendor call.
func RecordVendor(vendor, outcome string, started time.Time) {
	VendorRequests.WithLabelValues(vendor, outcome).Inc()
	VendorDuration.WithLabelValues(vendor).Observe(time.Since(started).Seconds())
}

// RecordInvalid counts a vendor response that arrived but failed
// validation. The call itself was already recorded by RecordVendor.
func RecordInvalid(vendor string) {
	VendorRequests.WithLabelValues(vendor, OutcomeInvalid).Inc()
}

// RecordFallback records a fixture substitution for a stage.
func RecordFallback(stage string) {
	Fallbacks.WithLabelValues(stage).Inc()
}

// Middleware records request counts and latency labelled by chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
