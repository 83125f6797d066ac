package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/AscendAI/creator-catalyst-sub001/internal/handler"
	"github.com/AscendAI/creator-catalyst-sub001/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Earnings *handler.EarningsHandler
	Post     *handler.PostHandler
	Ingest   *handler.IngestHandler
	Creator  *handler.CreatorHandler
	Payout   *handler.PayoutHandler
	Stats    *handler.StatsHandler
	Health   *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Probes and metrics (before API group, no rate limits)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	earningsLimit := middleware.NewEarningsRateLimiter()
	relevanceLimit := middleware.NewRelevanceRateLimiter()
	ingestLimit := middleware.NewIngestRateLimiter()
	payoutLimit := middleware.NewPayoutRateLimiter()
	statsLimit := middleware.NewStatsRateLimiter()
	exportLimit := middleware.NewExportRateLimiter()

	// API routes
	api := app.Group("/api")

	// Creator routes
	api.Get("/creators/:creatorId", h.Creator.GetByCreatorID, statsLimit.Handler())
	api.Get("/creators/:creatorId/cycles/:cycleId/earnings", h.Earnings.GetForCycle, earningsLimit.Handler())

	// Payout routes
	api.Get("/creators/:creatorId/cycles/:cycleId/payout", h.Payout.GetRecord, payoutLimit.Handler())
	api.Post("/creators/:creatorId/cycles/:cycleId/payout/finalize", h.Payout.Finalize, payoutLimit.Handler())
	api.Get("/cycles/:cycleId/payouts/export", h.Payout.ExportCycle, exportLimit.Handler())

	// Post routes
	api.Patch("/posts/:postId/relevance", h.Post.SetRelevance, relevanceLimit.Handler())

	// Ingest routes
	api.Post("/ingest/posts", h.Ingest.UpsertPosts, ingestLimit.Handler())

	// Stats routes
	api.Get("/stats", h.Stats.GetStats, statsLimit.Handler())
}
