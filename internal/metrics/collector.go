package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	SnapshotBuilds        prometheus.Counter
	SnapshotInvalidations prometheus.Counter
	SnapshotBuildDuration prometheus.Histogram

	RawRows   prometheus.Gauge
	CleanRows prometheus.Gauge

	Requests        *prometheus.CounterVec // method, path, status labels
	RequestDuration prometheus.Histogram
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		SnapshotBuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taxi_snapshot_builds_total",
			Help: "Total clean dataset snapshot builds.",
		}),
		SnapshotInvalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taxi_snapshot_invalidations_total",
			Help: "Total snapshot cache invalidations.",
		}),
		SnapshotBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "taxi_snapshot_build_duration_seconds",
			Help:    "Duration of load, derive and sanitize per build.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		RawRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "taxi_dataset_raw_rows",
			Help: "Rows in the raw trip file at the last build.",
		}),
		CleanRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "taxi_dataset_clean_rows",
			Help: "Rows surviving sanitization at the last build.",
		}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taxi_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "taxi_http_request_duration_seconds",
			Help:    "HTTP request handling duration.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15),
		}),
	}

	// Register
	reg.MustRegister(
		c.SnapshotBuilds, c.SnapshotInvalidations, c.SnapshotBuildDuration,
		c.RawRows, c.CleanRows,
		c.Requests, c.RequestDuration,
	)

	return c
}

// SnapshotBuilt records one completed snapshot build
func (c *Collector) SnapshotBuilt(rawRows, cleanRows int, d time.Duration) {
	c.SnapshotBuilds.Inc()
	c.SnapshotBuildDuration.Observe(d.Seconds())
	c.RawRows.Set(float64(rawRows))
	c.CleanRows.Set(float64(cleanRows))
}

// SnapshotInvalidated records one cache invalidation
func (c *Collector) SnapshotInvalidated() {
	c.SnapshotInvalidations.Inc()
}

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }

// Middleware records request counts and durations. Routes are labeled by
// their template so path parameters do not blow up the cardinality.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		c.Requests.WithLabelValues(
			ctx.Request.Method,
			path,
			strconv.Itoa(ctx.Writer.Status()),
		).Inc()
		c.RequestDuration.Observe(time.Since(start).Seconds())
	}
}
