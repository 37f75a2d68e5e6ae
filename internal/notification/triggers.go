package notification

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"crewcycle.io/crewcycle/internal/pkg/logger"
)

// Triggers encapsulates inbox notification writes for recruitment events.
// Every trigger is best-effort: failures are logged, the triggering
// operation always stands.
type Triggers struct {
	sender Sender
}

// NewTriggers creates a new notification trigger service.
func NewTriggers(sender Sender) *Triggers {
	return &Triggers{sender: sender}
}

// OnInterviewBooked fires after a booking commits. Notifies the applicant.
func (t *Triggers) OnInterviewBooked(ctx context.Context, interviewID, applicantID, systemName string, scheduledAt time.Time) {
	params := Params{
		RecipientID:  applicantID,
		Type:         TypeInterviewBooked,
		Title:        fmt.Sprintf("Interview booked with %s", systemName),
		Message:      fmt.Sprintf("Your interview with %s is scheduled for %s.", systemName, scheduledAt.Format("Mon, 02 Jan 2006 15:04 MST")),
		ResourceType: "interview",
		ResourceID:   interviewID,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send INTERVIEW_BOOKED notification",
			zap.String("interview_id", interviewID),
			zap.String("applicant", applicantID),
			zap.Error(err),
		)
	}
}

// OnApplicationStatusChanged fires when staff change an application's
// externally visible status.
func (t *Triggers) OnApplicationStatusChanged(ctx context.Context, applicationID, applicantID, newStatus string) {
	params := Params{
		RecipientID:  applicantID,
		Type:         TypeApplicationStatus,
		Title:        fmt.Sprintf("Your application is now %s", newStatus),
		Message:      fmt.Sprintf("The status of your application changed to %s.", newStatus),
		ResourceType: "application",
		ResourceID:   applicationID,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send APPLICATION_STATUS notification",
			zap.String("application_id", applicationID),
			zap.String("applicant", applicantID),
			zap.Error(err),
		)
	}
}
