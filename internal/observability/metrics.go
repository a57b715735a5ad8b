package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTPRequestsTotal counts HTTP requests by route, method and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	// HTTPRequestDuration tracks HTTP request latency.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"route", "method"},
	)

	// TierAttemptsTotal counts scoring tier attempts by tier and outcome.
	TierAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_tier_attempts_total",
			Help: "Total number of scoring tier attempts by tier and outcome",
		},
		[]string{"tier", "outcome"},
	)
	// TierRequestDuration tracks remote scoring tier latency.
	TierRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scoring_tier_duration_seconds",
			Help:    "Scoring tier request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"tier"},
	)

	// FitScoreHistogram records the distribution of composite fit scores.
	FitScoreHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analysis_fit_score",
			Help:    "Distribution of composite fit scores [0,100]",
			Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
		[]string{"provenance"},
	)
)

// InitMetrics registers all Prometheus collectors once per process.
func InitMetrics() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(TierAttemptsTotal)
	prometheus.MustRegister(TierRequestDuration)
	prometheus.MustRegister(FitScoreHistogram)
}

// HTTPMetricsMiddleware records Prometheus metrics for each request.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		dur := time.Since(start).Seconds()
		// Route pattern may be unavailable outside chi router; guard nil
		var route string
		if rc := chi.RouteContext(r.Context()); rc != nil {
			route = rc.RoutePattern()
		}
		if route == "" {
			route = r.URL.Path
		}
		HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(dur)
	})
}

// RecordTierAttempt counts one scoring tier attempt.
func RecordTierAttempt(tier string, ok bool) {
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	TierAttemptsTotal.WithLabelValues(tier, outcome).Inc()
}

// ObserveTierDuration records remote tier latency.
func ObserveTierDuration(tier string, d time.Duration) {
	TierRequestDuration.WithLabelValues(tier).Observe(d.Seconds())
}

// RecordFitScore records a served composite score by provenance.
func RecordFitScore(provenance string, score int) {
	if score >= 0 && score <= 100 {
		FitScoreHistogram.WithLabelValues(provenance).Observe(float64(score))
	}
}
