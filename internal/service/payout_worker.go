package service

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PayoutWorker listens for PostgreSQL NOTIFY on the 'post_changes' channel
// and batches payout refreshes. If an ingest run touches a creator's cycle
// fifty times in one window, the payout record is recomputed once.
type PayoutWorker struct {
	pool      *pgxpool.Pool
	payoutSvc *PayoutService
	cache     *CacheService
	batchMs   time.Duration

	mu      sync.Mutex
	pending map[string]struct{} // "creatorId:cycleId" keys awaiting refresh
}

// NewPayoutWorker creates a payout refresh worker.
func NewPayoutWorker(pool *pgxpool.Pool, payoutSvc *PayoutService, cache *CacheService) *PayoutWorker {
	return &PayoutWorker{
		pool:      pool,
		payoutSvc: payoutSvc,
		cache:     cache,
		batchMs:   5 * time.Second,
		pending:   make(map[string]struct{}),
	}
}

// Start begins listening for post_changes notifications and processing
// batches. It reconnects on listen errors until the context is cancelled.
func (w *PayoutWorker) Start(ctx context.Context) {
	log.Printf("payout-worker: starting (batch window=%s)", w.batchMs)

	for {
		if err := w.listenLoop(ctx); err != nil {
			if ctx.Err() != nil {
				log.Println("payout-worker: stopping (context cancelled)")
				return
			}
			log.Printf("payout-worker: listen error, reconnecting in 5s: %v", err)
			select {
			case <-time.After(5 * time.Second):
			case <-ctx.Done():
				log.Println("payout-worker: stopping (context cancelled)")
				return
			}
		}
	}
}

// listenLoop acquires a dedicated connection, LISTENs on post_changes, and
// collects notifications into the pending set.
func (w *PayoutWorker) listenLoop(ctx context.Context) error {
	conn, err := w.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, "LISTEN post_changes")
	if err != nil {
		return err
	}
	log.Println("payout-worker: listening on post_changes")

	flushCtx, flushCancel := context.WithCancel(ctx)
	defer flushCancel()
	go w.flushLoop(flushCtx)

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		key := notification.Payload
		if key == "" || !strings.Contains(key, ":") {
			continue
		}

		w.mu.Lock()
		w.pending[key] = struct{}{}
		w.mu.Unlock()
	}
}

// flushLoop periodically drains the pending set and refreshes payouts.
func (w *PayoutWorker) flushLoop(ctx context.Context) {
	ticker := time.NewTicker(w.batchMs)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.flush(ctx)
		case <-ctx.Done():
			// Final flush before exit
			w.flush(context.Background())
			return
		}
	}
}

// flush drains the pending set, recomputes each creator/cycle payout, and
// drops the matching cached earnings views.
func (w *PayoutWorker) flush(ctx context.Context) {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}

	// Swap out the pending map
	batch := w.pending
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	refreshed := 0
	for key := range batch {
		creatorID, cycleID, ok := strings.Cut(key, ":")
		if !ok {
			continue
		}

		if _, err := w.payoutSvc.Refresh(ctx, creatorID, cycleID); err != nil {
			log.Printf("payout-worker: refresh error for %s: %v", key, err)
			continue
		}

		if w.cache != nil {
			if err := w.cache.InvalidateEarnings(ctx, creatorID, cycleID); err != nil {
				log.Printf("payout-worker: cache invalidate error for %s: %v", key, err)
			}
		}

		refreshed++
	}

	if refreshed > 0 {
		log.Printf("payout-worker: batch complete — %d payouts refreshed (from %d notifications)",
			refreshed, len(batch))
	}
}
