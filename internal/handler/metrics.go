package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds all Prometheus collectors for the Creator Catalyst backend.
var Metrics = struct {
	ReconcileRuns     prometheus.Counter
	MatchedRows       *prometheus.CounterVec
	PostsIngested     *prometheus.CounterVec
	PayoutsFinalized  prometheus.Counter
	RequestDuration   *prometheus.HistogramVec
	ReconcileDuration prometheus.Histogram
	DBPoolActive      prometheus.GaugeFunc
	DBPoolIdle        prometheus.GaugeFunc
	RequestsInFlight  prometheus.Gauge
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
func InitMetrics(pool *pgxpool.Pool) {
	Metrics.ReconcileRuns = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalyst_reconcile_runs_total",
			Help: "Total reconciliation passes served.",
		},
	)

	Metrics.MatchedRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalyst_matched_rows_total",
			Help: "Total matched pairs produced, by match type.",
		},
		[]string{"match_type"},
	)

	Metrics.PostsIngested = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalyst_posts_ingested_total",
			Help: "Total posts upserted by the sync pipeline, by platform.",
		},
		[]string{"platform"},
	)

	Metrics.PayoutsFinalized = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalyst_payouts_finalized_total",
			Help: "Total payout records finalized.",
		},
	)

	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalyst_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.ReconcileDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalyst_reconcile_duration_seconds",
			Help:    "Duration of full reconciliation passes.",
			Buckets: prometheus.DefBuckets,
		},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalyst_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	// DB pool gauges — read live stats from pgxpool
	if pool != nil {
		Metrics.DBPoolActive = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "catalyst_db_connection_pool_active",
				Help: "Number of active database connections.",
			},
			func() float64 {
				return float64(pool.Stat().AcquiredConns())
			},
		)

		Metrics.DBPoolIdle = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "catalyst_db_connection_pool_idle",
				Help: "Number of idle database connections.",
			},
			func() float64 {
				return float64(pool.Stat().IdleConns())
			},
		)

		prometheus.MustRegister(Metrics.DBPoolActive)
		prometheus.MustRegister(Metrics.DBPoolIdle)
	}

	prometheus.MustRegister(
		Metrics.ReconcileRuns,
		Metrics.MatchedRows,
		Metrics.PostsIngested,
		Metrics.PayoutsFinalized,
		Metrics.RequestDuration,
		Metrics.ReconcileDuration,
		Metrics.RequestsInFlight,
	)
}

// MetricsMiddleware records request duration and in-flight count for Prometheus.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers (especially fasthttpadaptor).
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))
		endpoint := sanitizeEndpoint(path)

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// sanitizeEndpoint normalizes paths to avoid cardinality explosion.
func sanitizeEndpoint(path string) string {
	switch {
	case len(path) > 14 && path[:14] == "/api/creators/":
		return "/api/creators/:creatorId"
	case len(path) > 11 && path[:11] == "/api/posts/":
		return "/api/posts/:postId"
	case len(path) > 12 && path[:12] == "/api/cycles/":
		return "/api/cycles/:cycleId"
	default:
		return path
	}
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}
