package cycle

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"crewcycle.io/crewcycle/ent"
	"crewcycle.io/crewcycle/ent/application"
	"crewcycle.io/crewcycle/ent/applicationcycle"
	"crewcycle.io/crewcycle/ent/cyclestage"
	"crewcycle.io/crewcycle/internal/notification"
	"crewcycle.io/crewcycle/internal/pkg/logger"
)

// Sweeper aligns active cycles with their stage windows and cascades
// application statuses over each boundary. It runs from the daily periodic
// job and from the admin endpoint.
type Sweeper struct {
	client *ent.Client
	sender notification.Sender
}

// NewSweeper creates a sweeper over the shared ent client.
func NewSweeper(client *ent.Client, sender notification.Sender) *Sweeper {
	return &Sweeper{client: client, sender: sender}
}

// Result summarizes one sweep run.
type Result struct {
	CyclesChecked int
	Transitions   int
	Failures      int

	// TransitionedCycleIDs lists the cycles that changed stage this run,
	// for follow-up decision notices.
	TransitionedCycleIDs []string
}

// Run sweeps every active cycle. A failure on one cycle is recorded and
// logged; the remaining cycles are still processed.
func (s *Sweeper) Run(ctx context.Context, now time.Time) (Result, error) {
	var res Result

	cycles, err := s.client.ApplicationCycle.Query().
		Where(
			applicationcycle.StartDateLTE(now),
			applicationcycle.EndDateGTE(now),
		).
		All(ctx)
	if err != nil {
		return res, fmt.Errorf("query active cycles: %w", err)
	}
	res.CyclesChecked = len(cycles)

	for _, c := range cycles {
		transitioned, err := s.sweepCycle(ctx, c, now)
		if err != nil {
			res.Failures++
			logger.Error("cycle sweep failed",
				zap.String("cycle_id", c.ID),
				zap.String("cycle", c.Name),
				zap.Error(err),
			)
			continue
		}
		if transitioned {
			res.Transitions++
			res.TransitionedCycleIDs = append(res.TransitionedCycleIDs, c.ID)
		}
	}
	return res, nil
}

// sweepCycle moves one cycle to the stage whose window contains now, if that
// differs from the current stage, and cascades its applications.
func (s *Sweeper) sweepCycle(ctx context.Context, c *ent.ApplicationCycle, now time.Time) (bool, error) {
	window, err := s.client.CycleStage.Query().
		Where(
			cyclestage.CycleIDEQ(c.ID),
			cyclestage.StartDateLTE(now),
			cyclestage.EndDateGTE(now),
			cyclestage.StageNEQ(cyclestage.Stage(c.Stage.String())),
		).
		Order(ent.Asc(cyclestage.FieldStartDate)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("query stage windows: %w", err)
	}

	target := Stage(window.Stage.String())
	logger.Info("cycle stage transition",
		zap.String("cycle_id", c.ID),
		zap.String("cycle", c.Name),
		zap.String("from", c.Stage.String()),
		zap.String("to", string(target)),
	)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("begin sweep tx: %w", err)
	}
	if err := s.transition(ctx, tx, c, target); err != nil {
		_ = tx.Rollback()
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit sweep tx: %w", err)
	}

	s.notifyStageChange(ctx, c, target)
	return true, nil
}

func (s *Sweeper) transition(ctx context.Context, tx *ent.Tx, c *ent.ApplicationCycle, target Stage) error {
	if err := tx.ApplicationCycle.UpdateOneID(c.ID).
		SetStage(applicationcycle.Stage(target)).
		Exec(ctx); err != nil {
		return fmt.Errorf("set cycle stage: %w", err)
	}

	apps, err := tx.Application.Query().
		Where(application.CycleIDEQ(c.ID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query cycle applications: %w", err)
	}

	// Stage boundary default: applications still waiting on a review survive
	// as NEEDS_REVIEW, everything else is rejected. Staff action before the
	// boundary is the way to avoid this.
	for _, app := range apps {
		status := application.StatusREJECTED
		if hasPendingReview(app) {
			status = application.StatusNEEDS_REVIEW
		}
		if err := tx.Application.UpdateOneID(app.ID).
			SetStatus(status).
			Exec(ctx); err != nil {
			return fmt.Errorf("cascade application %s: %w", app.ID, err)
		}
	}
	return nil
}

// hasPendingReview reports whether any per-system review entry is still PENDING.
func hasPendingReview(app *ent.Application) bool {
	for _, r := range app.Reviews {
		if r.Status == "PENDING" {
			return true
		}
	}
	return false
}

// notifyStageChange writes inbox notifications to the cycle's applicants.
// Best-effort: a delivery failure never unwinds the transition.
func (s *Sweeper) notifyStageChange(ctx context.Context, c *ent.ApplicationCycle, target Stage) {
	if s.sender == nil {
		return
	}
	apps, err := s.client.Application.Query().
		Where(application.CycleIDEQ(c.ID)).
		Select(application.FieldUserID).
		All(ctx)
	if err != nil {
		logger.Error("stage change notification query failed",
			zap.String("cycle_id", c.ID), zap.Error(err))
		return
	}
	recipients := make([]string, 0, len(apps))
	for _, a := range apps {
		recipients = append(recipients, a.UserID)
	}
	if err := s.sender.SendToMany(ctx, recipients, notification.Params{
		Type:         notification.TypeCycleStageChanged,
		Title:        fmt.Sprintf("%s entered the %s stage", c.Name, target),
		Message:      fmt.Sprintf("The recruitment cycle %q has moved to the %s stage. Check your application for its updated status.", c.Name, target),
		ResourceType: "application_cycle",
		ResourceID:   c.ID,
	}); err != nil {
		logger.Error("stage change notification failed",
			zap.String("cycle_id", c.ID), zap.Error(err))
	}
}
