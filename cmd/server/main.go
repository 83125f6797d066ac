package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/AscendAI/creator-catalyst-sub001/internal/config"
	"github.com/AscendAI/creator-catalyst-sub001/internal/db"
	"github.com/AscendAI/creator-catalyst-sub001/internal/handler"
	"github.com/AscendAI/creator-catalyst-sub001/internal/middleware"
	"github.com/AscendAI/creator-catalyst-sub001/internal/recon"
	"github.com/AscendAI/creator-catalyst-sub001/internal/repository"
	"github.com/AscendAI/creator-catalyst-sub001/internal/router"
	"github.com/AscendAI/creator-catalyst-sub001/internal/service"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "creator-catalyst")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	handler.InitMetrics(pool)

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	// Repositories
	postRepo := repository.NewPostRepo(pool)
	cycleRepo := repository.NewCycleRepo(pool)
	creatorRepo := repository.NewCreatorRepo(pool)
	payoutRepo := repository.NewPayoutRepo(pool)

	// Reconciliation engine
	engine := recon.NewEngine(recon.Options{
		SimilarityThreshold: cfg.SimilarityThreshold,
		MatchWindow:         time.Duration(cfg.MatchWindowHours) * time.Hour,
		DurationTolerance:   cfg.DurationToleranceSecs,
	})

	// Services
	earningsSvc := service.NewEarningsService(postRepo, cycleRepo, engine, cache)
	payoutSvc := service.NewPayoutService(earningsSvc, payoutRepo)
	postSvc := service.NewPostService(postRepo, cycleRepo, cache)
	ingestSvc := service.NewIngestService(postRepo, cache)
	creatorSvc := service.NewCreatorService(creatorRepo, postRepo)

	// Background workers
	payoutWorker := service.NewPayoutWorker(pool, payoutSvc, cache)
	go payoutWorker.Start(ctx)

	cycleWorker := service.NewCycleWorker(cycleRepo, payoutSvc, 15*time.Minute)
	go cycleWorker.Start(ctx)

	app := fiber.New(fiber.Config{
		AppName:      "Creator Catalyst API",
		ServerHeader: "CreatorCatalyst",
	})

	router.Setup(app, &router.Handlers{
		Earnings: handler.NewEarningsHandler(earningsSvc),
		Post:     handler.NewPostHandler(postSvc),
		Ingest:   handler.NewIngestHandler(ingestSvc),
		Creator:  handler.NewCreatorHandler(creatorSvc),
		Payout:   handler.NewPayoutHandler(payoutSvc),
		Stats:    handler.NewStatsHandler(creatorSvc),
		Health:   handler.NewHealthHandler(pool, cache.Client()),
	}, cfg.CORSOrigins)

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("shutdown signal received")
		cancel()
		cycleWorker.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown error: %v", err)
		}
	}()

	log.Printf("creator-catalyst backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
