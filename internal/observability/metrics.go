package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bagdasarian/timetrack/internal/domain"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "timetrack",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route pattern and status.",
	}, []string{"method", "route", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "timetrack",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	segmentsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "timetrack",
		Subsystem: "activity",
		Name:      "segments_created_total",
		Help:      "Day segments persisted, by activity source.",
	}, []string{"source"})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, segmentsCreated)
}

func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func RecordSegmentsCreated(source domain.Source, count int) {
	if count <= 0 {
		return
	}
	segmentsCreated.WithLabelValues(string(source)).Add(float64(count))
}
