package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"siteintel/internal/metrics"
)

func TestRecordFallback(t *testing.T) {
	before := testutil.ToFloat64(metrics.Fallbacks.WithLabelValues("traffic"))
	metrics.RecordFallback("traffic")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.Fallbacks.WithLabelValues("traffic")))
}

func TestRecordVendor(t *testing.T) {
	before := testutil.ToFloat64(metrics.VendorRequests.WithLabelValues("apify", metrics.OutcomeOK))
	metrics.RecordVendor("apify", metrics.OutcomeOK, time.Now().Add(-time.Second))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.VendorRequests.WithLabelValues("apify", metrics.OutcomeOK)))
}

func TestRecordInvalid(t *testing.T) {
	counter := metrics.VendorRequests.WithLabelValues("dataforseo", metrics.OutcomeInvalid)
	before := testutil.ToFloat64(counter)
	metrics.RecordInvalid("dataforseo")
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Get("/api/session/{sessionID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/api/session/{sessionID}", "404")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/session/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
