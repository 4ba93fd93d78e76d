package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "campaign_manager"

var requestLabels = []string{"method", "route", "status"}

var (
	requestsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "API requests served, by route template and response code.",
	}, requestLabels)

	requestSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time spent serving API requests.",
		Buckets:   prometheus.DefBuckets,
	}, requestLabels)

	// Requests that have entered the router and not yet returned.
	requestsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "requests_active",
		Help:      "API requests currently in progress.",
	})
)

// collectMetrics records request count, latency and in-flight requests.
// The route label uses the chi pattern to keep cardinality low.
func collectMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestsActive.Inc()
		defer requestsActive.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := routePattern(r)
		if route == "" {
			route = "unmatched"
		}
		labels := prometheus.Labels{
			"method": r.Method,
			"route":  route,
			"status": strconv.Itoa(ww.Status()),
		}
		requestsServed.With(labels).Inc()
		requestSeconds.With(labels).Observe(time.Since(start).Seconds())
	})
}
