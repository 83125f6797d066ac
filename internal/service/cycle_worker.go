package service

import (
	"context"
	"log"
	"time"

	"github.com/AscendAI/creator-catalyst-sub001/internal/repository"
)

// CycleWorker is a periodic background job that closes out ended billing
// cycles: for every creator with posts in an ended cycle, it finalizes the
// payout record, then marks the cycle closed so relevance toggles stop.
type CycleWorker struct {
	cycles    *repository.CycleRepo
	payoutSvc *PayoutService
	interval  time.Duration
	stopCh    chan struct{}
}

// NewCycleWorker creates a worker that ticks every interval.
func NewCycleWorker(cycles *repository.CycleRepo, payoutSvc *PayoutService, interval time.Duration) *CycleWorker {
	return &CycleWorker{
		cycles:    cycles,
		payoutSvc: payoutSvc,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the periodic close-out loop. It runs one tick immediately,
// then every interval.
func (w *CycleWorker) Start(ctx context.Context) {
	log.Printf("cycle-worker: starting (interval=%s)", w.interval)

	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Println("cycle-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("cycle-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *CycleWorker) Stop() {
	close(w.stopCh)
}

// tick runs one close-out pass over all ended, unclosed cycles.
func (w *CycleWorker) tick(ctx context.Context) {
	start := time.Now()

	cycles, err := w.cycles.ListEndedUnclosed(ctx)
	if err != nil {
		log.Printf("cycle-worker: error listing cycles: %v", err)
		return
	}
	if len(cycles) == 0 {
		return
	}

	closed, finalized := 0, 0
	for _, cycle := range cycles {
		n, err := w.closeOut(ctx, cycle.CycleID)
		if err != nil {
			log.Printf("cycle-worker: error closing %s: %v", cycle.CycleID, err)
			continue
		}
		closed++
		finalized += n
	}

	elapsed := time.Since(start)
	log.Printf("cycle-worker: tick complete — %d cycles closed, %d payouts finalized (%s)",
		closed, finalized, elapsed.Round(time.Millisecond))
}

// closeOut finalizes every creator payout in the cycle, then marks it closed.
func (w *CycleWorker) closeOut(ctx context.Context, cycleID string) (int, error) {
	creatorIDs, err := w.cycles.ListCreatorIDs(ctx, cycleID)
	if err != nil {
		return 0, err
	}

	finalized := 0
	for _, creatorID := range creatorIDs {
		if _, err := w.payoutSvc.Finalize(ctx, creatorID, cycleID); err != nil {
			log.Printf("cycle-worker: finalize error for %s/%s: %v", creatorID, cycleID, err)
			continue
		}
		finalized++
	}

	// Only mark closed when every payout went through; a partial close
	// would strand unfinalized creators.
	if finalized == len(creatorIDs) {
		if err := w.cycles.MarkClosedOut(ctx, cycleID); err != nil {
			return finalized, err
		}
	}

	return finalized, nil
}
