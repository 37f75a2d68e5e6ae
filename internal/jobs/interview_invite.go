package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"

	"crewcycle.io/crewcycle/ent"
	"crewcycle.io/crewcycle/internal/notification"
	"crewcycle.io/crewcycle/internal/pkg/logger"
)

// InterviewInviteArgs dispatches the calendar invitation for one booked
// interview. Claim-check pattern: the job carries only the interview id.
type InterviewInviteArgs struct {
	InterviewID string `json:"interview_id"`
}

// Kind returns the job kind identifier for interview invites.
func (InterviewInviteArgs) Kind() string { return "interview_invite" }

// InsertOpts deduplicates invites for the same interview.
func (InterviewInviteArgs) InsertOpts() river.InsertOpts {
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

// InterviewInviteWorker builds the ICS artifact and dispatches the invite
// email to the applicant.
type InterviewInviteWorker struct {
	river.WorkerDefaults[InterviewInviteArgs]
	entClient       *ent.Client
	mailer          notification.Mailer
	defaultLocation string
}

// NewInterviewInviteWorker creates an invite worker.
func NewInterviewInviteWorker(entClient *ent.Client, mailer notification.Mailer, defaultLocation string) *InterviewInviteWorker {
	return &InterviewInviteWorker{
		entClient:       entClient,
		mailer:          mailer,
		defaultLocation: defaultLocation,
	}
}

// Work loads the interview chain and sends the invitation.
func (w *InterviewInviteWorker) Work(ctx context.Context, job *river.Job[InterviewInviteArgs]) error {
	if w == nil || w.entClient == nil || w.mailer == nil {
		return fmt.Errorf("interview invite worker is not initialized")
	}

	iv, err := w.entClient.Interview.Get(ctx, job.Args.InterviewID)
	if err != nil {
		if ent.IsNotFound(err) {
			// Interview gone; nothing to invite, do not retry.
			logger.Warn("interview vanished before invite dispatch",
				zap.String("interview_id", job.Args.InterviewID))
			return nil
		}
		return fmt.Errorf("load interview: %w", err)
	}

	app, err := w.entClient.Application.Get(ctx, iv.ApplicationID)
	if err != nil {
		return fmt.Errorf("load application: %w", err)
	}
	applicant, err := w.entClient.User.Get(ctx, app.UserID)
	if err != nil {
		return fmt.Errorf("load applicant: %w", err)
	}
	sys, err := w.entClient.System.Get(ctx, iv.SystemID)
	if err != nil {
		return fmt.Errorf("load system: %w", err)
	}

	location := iv.Location
	if location == "" {
		location = w.defaultLocation
	}
	duration := time.Duration(iv.DurationMinutes) * time.Minute

	ics := notification.BuildInvite(notification.InviteDetails{
		UID:         fmt.Sprintf("interview-%s@crewcycle.io", iv.ID),
		Summary:     fmt.Sprintf("Interview: %s", sys.Name),
		Description: fmt.Sprintf("Recruitment interview with the %s system.", sys.Name),
		Location:    location,
		Start:       iv.ScheduledAt,
		Duration:    duration,
		AttendeeTo:  applicant.Email,
	}, time.Now().UTC())

	msg := notification.Message{
		To:      applicant.Email,
		Subject: fmt.Sprintf("Interview invitation: %s", sys.Name),
		Body: fmt.Sprintf(
			"Hello %s,\n\nYour interview with %s is confirmed.\n\nDate: %s\nTime: %s\nDuration: %d minutes\nLocation: %s\n\nThe attached calendar file adds the appointment to your calendar.\n",
			displayName(applicant), sys.Name,
			iv.ScheduledAt.Format("Monday, 02 January 2006"),
			iv.ScheduledAt.Format("15:04 MST"),
			iv.DurationMinutes, location,
		),
		ICS:            ics,
		IdempotencyKey: fmt.Sprintf("invite-%s", iv.ID),
	}

	if err := w.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send invite for interview %s: %w", iv.ID, err)
	}

	logger.Info("interview invite dispatched",
		zap.String("interview_id", iv.ID),
		zap.String("recipient", applicant.Email),
	)
	return nil
}

func displayName(u *ent.User) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
