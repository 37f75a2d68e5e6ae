package jobs

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"

	"crewcycle.io/crewcycle/ent"
	"crewcycle.io/crewcycle/ent/application"
	"crewcycle.io/crewcycle/internal/notification"
	"crewcycle.io/crewcycle/internal/pkg/logger"
	"crewcycle.io/crewcycle/internal/pkg/worker"
)

// DefaultNoticeChunkSize bounds one outbound mail batch to respect external
// rate limits.
const DefaultNoticeChunkSize = 100

// DecisionNoticeArgs emails every applicant of a cycle their current
// application status, typically right after a sweep transition.
type DecisionNoticeArgs struct {
	CycleID string `json:"cycle_id"`
}

// Kind returns the job kind identifier for decision notices.
func (DecisionNoticeArgs) Kind() string { return "decision_notice" }

// InsertOpts deduplicates pending notices per cycle.
func (DecisionNoticeArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateRunning,
				rivertype.JobStateScheduled,
				rivertype.JobStateRetryable,
			},
		},
	}
}

// DecisionNoticeWorker sends status emails in sequential chunks through the
// mail pool, so notice bursts share SMTP capacity with invite dispatch. A
// chunk failure is logged and does not stop later chunks.
type DecisionNoticeWorker struct {
	river.WorkerDefaults[DecisionNoticeArgs]
	entClient *ent.Client
	mailer    notification.Mailer
	mailPool  *worker.Pool
	chunkSize int
}

// NewDecisionNoticeWorker creates a notice worker. Non-positive chunk sizes
// fall back to the default.
func NewDecisionNoticeWorker(entClient *ent.Client, mailer notification.Mailer, mailPool *worker.Pool, chunkSize int) *DecisionNoticeWorker {
	if chunkSize <= 0 {
		chunkSize = DefaultNoticeChunkSize
	}
	return &DecisionNoticeWorker{
		entClient: entClient,
		mailer:    mailer,
		mailPool:  mailPool,
		chunkSize: chunkSize,
	}
}

// Work emails the cycle's applicants chunk by chunk.
func (w *DecisionNoticeWorker) Work(ctx context.Context, job *river.Job[DecisionNoticeArgs]) error {
	if w == nil || w.entClient == nil || w.mailer == nil {
		return fmt.Errorf("decision notice worker is not initialized")
	}

	cyc, err := w.entClient.ApplicationCycle.Get(ctx, job.Args.CycleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("load cycle: %w", err)
	}

	apps, err := w.entClient.Application.Query().
		Where(application.CycleIDEQ(cyc.ID)).
		WithUser().
		All(ctx)
	if err != nil {
		return fmt.Errorf("query cycle applications: %w", err)
	}

	msgs := make([]notification.Message, 0, len(apps))
	for _, app := range apps {
		u := app.Edges.User
		if u == nil || u.Email == "" {
			continue
		}
		msgs = append(msgs, notification.Message{
			To:      u.Email,
			Subject: fmt.Sprintf("Your application status: %s", app.Status),
			Body: fmt.Sprintf(
				"Hello %s,\n\nThe recruitment cycle %q has moved on and the status of your application is now %s.\n",
				displayName(u), cyc.Name, app.Status,
			),
			IdempotencyKey: fmt.Sprintf("decision-%s-%s-%s", cyc.ID, cyc.Stage, app.ID),
		})
	}

	failed := w.dispatch(ctx, cyc.ID, msgs)

	logger.Info("decision notices dispatched",
		zap.String("cycle_id", cyc.ID),
		zap.Int("total", len(msgs)),
		zap.Int("failed", failed),
	)
	return nil
}

// dispatch sends the messages chunk by chunk, each chunk as one mail pool
// task, waiting for a chunk before starting the next. Returns the number of
// failed deliveries.
func (w *DecisionNoticeWorker) dispatch(ctx context.Context, cycleID string, msgs []notification.Message) int {
	var failed int
	for start := 0; start < len(msgs); start += w.chunkSize {
		end := min(start+w.chunkSize, len(msgs))
		chunk := msgs[start:end]

		errs := w.sendChunk(ctx, chunk)
		chunkFailed := 0
		for i, err := range errs {
			if err != nil {
				chunkFailed++
				logger.Error("decision notice delivery failed",
					zap.String("cycle_id", cycleID),
					zap.String("recipient", chunk[i].To),
					zap.Error(err),
				)
			}
		}
		failed += chunkFailed
		if chunkFailed > 0 {
			logger.Warn("decision notice chunk finished with failures",
				zap.String("cycle_id", cycleID),
				zap.Int("chunk_start", start),
				zap.Int("failed", chunkFailed),
			)
		}
	}
	return failed
}

func (w *DecisionNoticeWorker) sendChunk(ctx context.Context, chunk []notification.Message) []error {
	if w.mailPool == nil {
		return w.mailer.SendBatch(ctx, chunk)
	}

	done := make(chan []error, 1)
	if err := w.mailPool.Submit(ctx, func(ctx context.Context) {
		done <- w.mailer.SendBatch(ctx, chunk)
	}); err != nil {
		return chunkErrs(len(chunk), fmt.Errorf("submit mail chunk: %w", err))
	}

	select {
	case errs := <-done:
		return errs
	case <-ctx.Done():
		// The queued task is skipped on cancellation and never reports back.
		return chunkErrs(len(chunk), ctx.Err())
	}
}

func chunkErrs(n int, err error) []error {
	errs := make([]error, n)
	for i := range errs {
		errs[i] = err
	}
	return errs
}
