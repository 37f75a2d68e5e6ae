// Package usecase provides application use cases.
//
// Use cases own their transactions and are reusable across HTTP and jobs.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"crewcycle.io/crewcycle/ent"
	"crewcycle.io/crewcycle/ent/interview"
	"crewcycle.io/crewcycle/internal/cycle"
	"crewcycle.io/crewcycle/internal/governance/audit"
	"crewcycle.io/crewcycle/internal/jobs"
	"crewcycle.io/crewcycle/internal/notification"
	apperrors "crewcycle.io/crewcycle/internal/pkg/errors"
	"crewcycle.io/crewcycle/internal/pkg/logger"
	"crewcycle.io/crewcycle/internal/scheduling"
)

// BookInterviewInput represents a booking request.
type BookInterviewInput struct {
	ActorID       string    `json:"-"`
	ApplicationID string    `json:"application_id"`
	SystemID      string    `json:"system_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Location      string    `json:"location"`
}

// BookInterviewOutput represents a persisted booking.
type BookInterviewOutput struct {
	InterviewID     string    `json:"interview_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location"`
}

// BookInterviewUseCase orchestrates the booking transaction: ordered
// precondition checks, a transactional write guarded by the
// (system_id, scheduled_at) unique index, then best-effort notification.
type BookInterviewUseCase struct {
	entClient   *ent.Client
	slotService *scheduling.SlotService
	triggers    *notification.Triggers
	riverClient *river.Client[pgx.Tx]
	auditLogger *audit.Logger
	now         func() time.Time
}

// NewBookInterviewUseCase creates a new BookInterviewUseCase.
func NewBookInterviewUseCase(
	entClient *ent.Client,
	slotService *scheduling.SlotService,
	triggers *notification.Triggers,
) *BookInterviewUseCase {
	return &BookInterviewUseCase{
		entClient:   entClient,
		slotService: slotService,
		triggers:    triggers,
		now:         time.Now,
	}
}

// WithRiverClient sets the job client used for invite dispatch (optional).
func (uc *BookInterviewUseCase) WithRiverClient(rc *river.Client[pgx.Tx]) *BookInterviewUseCase {
	uc.riverClient = rc
	return uc
}

// WithAuditLogger sets the audit logger (optional dependency).
func (uc *BookInterviewUseCase) WithAuditLogger(al *audit.Logger) *BookInterviewUseCase {
	uc.auditLogger = al
	return uc
}

// WithClock overrides the time source. Test hook.
func (uc *BookInterviewUseCase) WithClock(now func() time.Time) *BookInterviewUseCase {
	uc.now = now
	return uc
}

// Execute runs the booking. Preconditions are checked in a fixed order and
// each failure carries its own error code.
func (uc *BookInterviewUseCase) Execute(ctx context.Context, input BookInterviewInput) (*BookInterviewOutput, error) {
	// 1. Authenticated actor.
	if input.ActorID == "" {
		return nil, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required")
	}

	scheduledAt := input.ScheduledAt.Truncate(time.Minute)
	now := uc.now().Truncate(time.Minute)
	if !scheduledAt.After(now) {
		return nil, apperrors.UnprocessableEntity(apperrors.CodeSlotInPast, "interview slot must be in the future")
	}

	// 2. Application exists and belongs to the actor.
	app, err := uc.entClient.Application.Get(ctx, input.ApplicationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeApplicationNotFound, "application not found")
		}
		return nil, fmt.Errorf("load application: %w", err)
	}
	if app.UserID != input.ActorID {
		return nil, apperrors.Forbidden(apperrors.CodeForbidden, "application does not belong to you")
	}

	sys, err := uc.entClient.System.Get(ctx, input.SystemID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeSystemNotFound, "system not found")
		}
		return nil, fmt.Errorf("load system: %w", err)
	}

	// 3. Cycle and application must both sit at the interview stage.
	cyc, err := uc.entClient.ApplicationCycle.Get(ctx, app.CycleID)
	if err != nil {
		return nil, fmt.Errorf("load cycle: %w", err)
	}
	if cycle.Stage(cyc.Stage.String()) != cycle.StageInterview ||
		cycle.Stage(app.InternalStatus.String()) != cycle.StageInterview {
		return nil, apperrors.Conflict(apperrors.CodeStageMismatch,
			"interviews can only be booked while both the cycle and the application are in the interview stage")
	}

	// 4. Duplicate guard: one interview per (application, system), and one
	// interview per application unless the team allows multi-system interviews.
	if err := uc.checkDuplicates(ctx, app, input.SystemID); err != nil {
		return nil, err
	}

	// 5. Re-run the slot overlap test against currently persisted interviews.
	if err := uc.checkSlotFree(ctx, input.SystemID, scheduledAt, now); err != nil {
		return nil, err
	}

	interviewID := generateID()
	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		_, err := tx.Interview.Create().
			SetID(interviewID).
			SetApplicationID(app.ID).
			SetSystemID(input.SystemID).
			SetScheduledAt(scheduledAt).
			SetDurationMinutes(int(scheduling.SlotLength.Minutes())).
			SetLocation(input.Location).
			SetCreatedByID(input.ActorID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create interview: %w", err)
		}
		return nil
	})
	if txErr != nil {
		// The unique index on (system_id, scheduled_at) is the authoritative
		// conflict guard; losing the residual race surfaces here.
		if ent.IsConstraintError(txErr) {
			return nil, apperrors.Conflict(apperrors.CodeSlotConflict,
				"the selected slot was just booked by someone else")
		}
		return nil, fmt.Errorf("book interview: %w", txErr)
	}

	if uc.auditLogger != nil {
		_ = uc.auditLogger.LogBooking(ctx, interviewID, input.ActorID)
	}

	// Best-effort side effects: the booking stands even if these fail.
	uc.triggers.OnInterviewBooked(ctx, interviewID, app.UserID, sys.Name, scheduledAt)
	uc.enqueueInvite(ctx, interviewID)

	logger.Info("interview booked",
		zap.String("interview_id", interviewID),
		zap.String("application_id", app.ID),
		zap.String("system_id", input.SystemID),
		zap.Time("scheduled_at", scheduledAt),
	)

	return &BookInterviewOutput{
		InterviewID:     interviewID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: int(scheduling.SlotLength.Minutes()),
		Location:        input.Location,
	}, nil
}

func (uc *BookInterviewUseCase) checkDuplicates(ctx context.Context, app *ent.Application, systemID string) error {
	count, err := uc.entClient.Interview.Query().
		Where(
			interview.ApplicationIDEQ(app.ID),
			interview.SystemIDEQ(systemID),
			interview.StatusNEQ(interview.StatusCANCELLED),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count interviews: %w", err)
	}
	if count > 0 {
		return apperrors.Conflict(apperrors.CodeDuplicateBooking,
			"an interview with this system is already booked for this application")
	}

	team, err := uc.entClient.Team.Get(ctx, app.TeamID)
	if err != nil {
		return fmt.Errorf("load team: %w", err)
	}
	if team.AllowsMultipleSystemInterviews {
		return nil
	}

	count, err = uc.entClient.Interview.Query().
		Where(
			interview.ApplicationIDEQ(app.ID),
			interview.StatusNEQ(interview.StatusCANCELLED),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count interviews: %w", err)
	}
	if count > 0 {
		return apperrors.Conflict(apperrors.CodeDuplicateBooking,
			"this application already has an interview with another system")
	}
	return nil
}

// checkSlotFree replays the slot generation overlap test for the target day
// and requires the requested slot to appear and be available.
func (uc *BookInterviewUseCase) checkSlotFree(ctx context.Context, systemID string, scheduledAt, now time.Time) error {
	dayStart := time.Date(
		scheduledAt.Year(), scheduledAt.Month(), scheduledAt.Day(),
		0, 0, 0, 0, scheduledAt.Location(),
	)
	slots, err := uc.slotService.SlotsForDay(ctx, systemID, dayStart, now)
	if err != nil {
		return fmt.Errorf("regenerate slots: %w", err)
	}
	for _, s := range slots {
		if s.Start.Equal(scheduledAt) {
			if !s.Available {
				return apperrors.Conflict(apperrors.CodeSlotConflict, "the selected slot is already taken")
			}
			return nil
		}
	}
	return apperrors.Conflict(apperrors.CodeSlotConflict, "the selected slot is not offered for this system")
}

func (uc *BookInterviewUseCase) enqueueInvite(ctx context.Context, interviewID string) {
	if uc.riverClient == nil {
		return
	}
	if _, err := uc.riverClient.Insert(ctx, jobs.InterviewInviteArgs{InterviewID: interviewID}, nil); err != nil {
		logger.Error("failed to enqueue interview invite",
			zap.String("interview_id", interviewID),
			zap.Error(err),
		)
	}
}

// withTx executes a function within a transaction.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	return tx.Commit()
}

// generateID generates a unique UUID v7 (time-ordered, K-sortable).
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
