package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studygroup_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studygroup_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	SessionsStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studygroup_sessions_started_total",
			Help: "Study sessions started, by generation mode",
		},
		[]string{"mode"}, // "sim" or "llm"
	)

	ScoreRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studygroup_score_requests_total",
			Help: "Scoring requests served, by aggregate outcome",
		},
		[]string{"outcome"}, // "pass" or "fail"
	)

	PhraseReloads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "studygroup_phrase_reloads_total",
			Help: "Successful phrase-table reloads",
		},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry. Safe to call
// more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(SessionsStarted)
		prometheus.MustRegister(ScoreRequests)
		prometheus.MustRegister(PhraseReloads)
	})
}

// MetricsMiddleware records request counts and latencies per route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

// PrometheusHandler exposes the default registry for scraping.
func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// SessionMode labels a session start by how its turns are produced.
func SessionMode(simulate bool) string {
	if simulate {
		return "sim"
	}
	return "llm"
}

// ScoreOutcome labels a score request by its aggregate result.
func ScoreOutcome(pass bool) string {
	if pass {
		return "pass"
	}
	return "fail"
}
