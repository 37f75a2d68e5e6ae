// Package jobs defines River Queue job types for async processing.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"crewcycle.io/crewcycle/internal/cycle"
	"crewcycle.io/crewcycle/internal/pkg/logger"
)

// CycleSweepArgs runs the recruitment cycle sweep: align every active cycle
// with its stage windows and cascade application statuses across boundaries.
type CycleSweepArgs struct{}

// Kind returns the job kind identifier for the cycle sweep.
func (CycleSweepArgs) Kind() string { return "cycle_sweep" }

// InsertOpts ensures at most one sweep is enqueued within the same hour, so
// the daily periodic job and the admin trigger cannot pile up.
func (CycleSweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// CycleSweepWorker executes the sweep and enqueues decision notices for
// every cycle that changed stage.
type CycleSweepWorker struct {
	river.WorkerDefaults[CycleSweepArgs]
	sweeper     *cycle.Sweeper
	riverClient *river.Client[pgx.Tx]
}

// NewCycleSweepWorker creates a sweep worker.
func NewCycleSweepWorker(sweeper *cycle.Sweeper) *CycleSweepWorker {
	return &CycleSweepWorker{sweeper: sweeper}
}

// SetRiverClient wires the job client for follow-up notices. Set after the
// River client exists; the client itself needs the worker registry first.
func (w *CycleSweepWorker) SetRiverClient(rc *river.Client[pgx.Tx]) {
	w.riverClient = rc
}

// Work runs one sweep pass.
func (w *CycleSweepWorker) Work(ctx context.Context, _ *river.Job[CycleSweepArgs]) error {
	if w == nil || w.sweeper == nil {
		return fmt.Errorf("cycle sweep worker is not initialized")
	}

	res, err := w.sweeper.Run(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("cycle sweep: %w", err)
	}

	logger.Info("cycle sweep completed",
		zap.Int("cycles_checked", res.CyclesChecked),
		zap.Int("transitions", res.Transitions),
		zap.Int("failures", res.Failures),
	)

	if w.riverClient != nil {
		for _, cycleID := range res.TransitionedCycleIDs {
			if _, err := w.riverClient.Insert(ctx, DecisionNoticeArgs{CycleID: cycleID}, nil); err != nil {
				logger.Error("failed to enqueue decision notices",
					zap.String("cycle_id", cycleID),
					zap.Error(err),
				)
			}
		}
	}

	if res.Failures > 0 {
		return fmt.Errorf("cycle sweep finished with %d failed cycles", res.Failures)
	}
	return nil
}
