package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crewcycle.io/crewcycle/ent"
	entapp "crewcycle.io/crewcycle/ent/application"
	entcycle "crewcycle.io/crewcycle/ent/applicationcycle"
	"crewcycle.io/crewcycle/ent/hook"
	entiv "crewcycle.io/crewcycle/ent/interview"
	"crewcycle.io/crewcycle/internal/notification"
	apperrors "crewcycle.io/crewcycle/internal/pkg/errors"
	"crewcycle.io/crewcycle/internal/pkg/logger"
	"crewcycle.io/crewcycle/internal/scheduling"
	"crewcycle.io/crewcycle/internal/testutil"
)

// bookingFixture is a cycle at the interview stage with one system offering
// a 09:00-12:00 availability window on the fixture day.
type bookingFixture struct {
	client *ent.Client
	uc     *BookInterviewUseCase
	now    time.Time
	day    time.Time
}

func newBookingFixture(t *testing.T, multiSystemTeam bool) (*bookingFixture, context.Context) {
	t.Helper()
	_ = logger.Init("error", "console")
	ctx := context.Background()
	client := testutil.OpenEntPostgres(t, "book-interview")

	day := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	now := day.Add(8 * time.Hour)

	client.Team.Create().
		SetID("team-1").SetName("Avionics").
		SetAllowsMultipleSystemInterviews(multiSystemTeam).
		SaveX(ctx)
	for _, sysID := range []string{"sys-1", "sys-2"} {
		client.System.Create().
			SetID(sysID).SetName("System " + sysID).SetTeamID("team-1").
			SaveX(ctx)
	}

	client.User.Create().
		SetID("interviewer").SetUsername("interviewer").
		SetEmail("interviewer@example.com").
		SaveX(ctx)
	for _, sysID := range []string{"sys-1", "sys-2"} {
		client.Availability.Create().
			SetID("avail-" + sysID).
			SetUserID("interviewer").
			SetSystemID(sysID).
			SetStartAt(day.Add(9 * time.Hour)).
			SetEndAt(day.Add(12 * time.Hour)).
			SaveX(ctx)
	}

	client.ApplicationCycle.Create().
		SetID("cycle-1").SetName("Season One").
		SetStage(entcycle.StageINTERVIEW).
		SetStartDate(day.AddDate(0, -1, 0)).
		SetEndDate(day.AddDate(0, 1, 0)).
		SaveX(ctx)

	for _, userID := range []string{"alice", "bob"} {
		client.User.Create().
			SetID(userID).SetUsername(userID).
			SetEmail(userID + "@example.com").
			SaveX(ctx)
		client.Application.Create().
			SetID("app-" + userID).
			SetUserID(userID).
			SetTeamID("team-1").
			SetCycleID("cycle-1").
			SetStatus(entapp.StatusREVIEWED).
			SetInternalStatus(entapp.InternalStatusINTERVIEW).
			SaveX(ctx)
	}

	uc := NewBookInterviewUseCase(
		client,
		scheduling.NewSlotService(client),
		notification.NewTriggers(notification.NewInboxSender(client)),
	).WithClock(func() time.Time { return now })

	return &bookingFixture{client: client, uc: uc, now: now, day: day}, ctx
}

func requireAppCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
}

func TestBookInterview_Success(t *testing.T) {
	fx, ctx := newBookingFixture(t, false)

	out, err := fx.uc.Execute(ctx, BookInterviewInput{
		ActorID:       "alice",
		ApplicationID: "app-alice",
		SystemID:      "sys-1",
		ScheduledAt:   fx.day.Add(9 * time.Hour),
		Location:      "Room 4",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.InterviewID)
	require.Equal(t, 30, out.DurationMinutes)

	iv := fx.client.Interview.GetX(ctx, out.InterviewID)
	require.Equal(t, entiv.StatusSCHEDULED, iv.Status)
	require.Equal(t, "app-alice", iv.ApplicationID)
	require.True(t, iv.ScheduledAt.Equal(fx.day.Add(9*time.Hour)))

	// Booking leaves an inbox notification for the applicant.
	count := fx.client.Notification.Query().CountX(ctx)
	require.Equal(t, 1, count)
}

func TestBookInterview_SlotAlreadyTaken(t *testing.T) {
	fx, ctx := newBookingFixture(t, false)
	slot := fx.day.Add(9 * time.Hour)

	_, err := fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "alice", ApplicationID: "app-alice", SystemID: "sys-1", ScheduledAt: slot,
	})
	require.NoError(t, err)

	_, err = fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "bob", ApplicationID: "app-bob", SystemID: "sys-1", ScheduledAt: slot,
	})
	requireAppCode(t, err, apperrors.CodeSlotConflict)
}

func TestBookInterview_DuplicatePerApplication(t *testing.T) {
	fx, ctx := newBookingFixture(t, false)

	_, err := fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "alice", ApplicationID: "app-alice", SystemID: "sys-1",
		ScheduledAt: fx.day.Add(9 * time.Hour),
	})
	require.NoError(t, err)

	// Same system, different slot.
	_, err = fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "alice", ApplicationID: "app-alice", SystemID: "sys-1",
		ScheduledAt: fx.day.Add(10 * time.Hour),
	})
	requireAppCode(t, err, apperrors.CodeDuplicateBooking)

	// Other system: still one interview per application for a regular team.
	_, err = fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "alice", ApplicationID: "app-alice", SystemID: "sys-2",
		ScheduledAt: fx.day.Add(10 * time.Hour),
	})
	requireAppCode(t, err, apperrors.CodeDuplicateBooking)
}

func TestBookInterview_MultiSystemTeamAllowsSecondSystem(t *testing.T) {
	fx, ctx := newBookingFixture(t, true)

	_, err := fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "alice", ApplicationID: "app-alice", SystemID: "sys-1",
		ScheduledAt: fx.day.Add(9 * time.Hour),
	})
	require.NoError(t, err)

	_, err = fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "alice", ApplicationID: "app-alice", SystemID: "sys-2",
		ScheduledAt: fx.day.Add(10 * time.Hour),
	})
	require.NoError(t, err)

	// Still at most one per (application, system).
	_, err = fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "alice", ApplicationID: "app-alice", SystemID: "sys-2",
		ScheduledAt: fx.day.Add(11 * time.Hour),
	})
	requireAppCode(t, err, apperrors.CodeDuplicateBooking)
}

func TestBookInterview_RebookAfterCancellation(t *testing.T) {
	fx, ctx := newBookingFixture(t, false)
	slot := fx.day.Add(9 * time.Hour)

	out, err := fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "alice", ApplicationID: "app-alice", SystemID: "sys-1", ScheduledAt: slot,
	})
	require.NoError(t, err)

	fx.client.Interview.UpdateOneID(out.InterviewID).
		SetStatus(entiv.StatusCANCELLED).
		ExecX(ctx)

	// A cancelled interview releases both the per-system claim and the slot,
	// so the same application can book the same system and slot again.
	out2, err := fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "alice", ApplicationID: "app-alice", SystemID: "sys-1", ScheduledAt: slot,
	})
	require.NoError(t, err)
	require.NotEqual(t, out.InterviewID, out2.InterviewID)

	rebooked := fx.client.Interview.GetX(ctx, out2.InterviewID)
	require.Equal(t, entiv.StatusSCHEDULED, rebooked.Status)
}

func TestBookInterview_CancelledSlotOpensForOthers(t *testing.T) {
	fx, ctx := newBookingFixture(t, false)
	slot := fx.day.Add(9 * time.Hour)

	out, err := fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "alice", ApplicationID: "app-alice", SystemID: "sys-1", ScheduledAt: slot,
	})
	require.NoError(t, err)

	fx.client.Interview.UpdateOneID(out.InterviewID).
		SetStatus(entiv.StatusCANCELLED).
		ExecX(ctx)

	_, err = fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "bob", ApplicationID: "app-bob", SystemID: "sys-1", ScheduledAt: slot,
	})
	require.NoError(t, err)
}

func TestBookInterview_RaceLoserGetsSlotConflict(t *testing.T) {
	fx, ctx := newBookingFixture(t, false)
	slot := fx.day.Add(9 * time.Hour)

	// A rival booking lands between the availability re-check and the insert;
	// the unique index on (system_id, scheduled_at) decides the race.
	injected := false
	fx.client.Interview.Use(hook.On(func(next ent.Mutator) ent.Mutator {
		return hook.InterviewFunc(func(ctx context.Context, m *ent.InterviewMutation) (ent.Value, error) {
			if !injected {
				injected = true
				fx.client.Interview.Create().
					SetID("iv-rival").
					SetApplicationID("app-bob").
					SetSystemID("sys-1").
					SetScheduledAt(slot).
					SetCreatedByID("bob").
					SaveX(ctx)
			}
			return next.Mutate(ctx, m)
		})
	}, ent.OpCreate))

	_, err := fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "alice", ApplicationID: "app-alice", SystemID: "sys-1", ScheduledAt: slot,
	})
	requireAppCode(t, err, apperrors.CodeSlotConflict)

	// Exactly the rival row survives the rollback.
	ids := fx.client.Interview.Query().IDsX(ctx)
	require.Equal(t, []string{"iv-rival"}, ids)
}

func TestBookInterview_StageMismatch(t *testing.T) {
	fx, ctx := newBookingFixture(t, false)

	fx.client.ApplicationCycle.UpdateOneID("cycle-1").
		SetStage(entcycle.StageAPPLICATION).
		ExecX(ctx)

	_, err := fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "alice", ApplicationID: "app-alice", SystemID: "sys-1",
		ScheduledAt: fx.day.Add(9 * time.Hour),
	})
	requireAppCode(t, err, apperrors.CodeStageMismatch)
}

func TestBookInterview_NotOwner(t *testing.T) {
	fx, ctx := newBookingFixture(t, false)

	_, err := fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "bob", ApplicationID: "app-alice", SystemID: "sys-1",
		ScheduledAt: fx.day.Add(9 * time.Hour),
	})
	requireAppCode(t, err, apperrors.CodeForbidden)
}

func TestBookInterview_SlotInPast(t *testing.T) {
	fx, ctx := newBookingFixture(t, false)

	_, err := fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "alice", ApplicationID: "app-alice", SystemID: "sys-1",
		ScheduledAt: fx.now.Add(-time.Hour),
	})
	requireAppCode(t, err, apperrors.CodeSlotInPast)
}

func TestBookInterview_SlotNotOffered(t *testing.T) {
	fx, ctx := newBookingFixture(t, false)

	// 13:00 is outside the 09:00-12:00 availability window.
	_, err := fx.uc.Execute(ctx, BookInterviewInput{
		ActorID: "alice", ApplicationID: "app-alice", SystemID: "sys-1",
		ScheduledAt: fx.day.Add(13 * time.Hour),
	})
	requireAppCode(t, err, apperrors.CodeSlotConflict)
}
