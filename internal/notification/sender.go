// Package notification implements the in-app inbox and the outbound mail
// collaborator.
//
// Inbox rows are synchronous DB writes in the caller's context; external
// email goes through River jobs and the Mailer interface, always best-effort.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"crewcycle.io/crewcycle/ent"
	entnotification "crewcycle.io/crewcycle/ent/notification"
	"crewcycle.io/crewcycle/internal/pkg/logger"
)

// Type constants matching ent/schema/notification.go enum values.
const (
	TypeInterviewBooked   = "INTERVIEW_BOOKED"
	TypeApplicationStatus = "APPLICATION_STATUS"
	TypeCycleStageChanged = "CYCLE_STAGE_CHANGED"
)

// Params holds the required fields for creating a notification.
type Params struct {
	RecipientID  string
	Type         string
	Title        string
	Message      string
	ResourceType string
	ResourceID   string
}

// Sender writes in-app notifications.
type Sender interface {
	// Send creates a notification for a single recipient.
	Send(ctx context.Context, params Params) error

	// SendToMany creates notifications for multiple recipients.
	// Best-effort: logs errors but does not abort on individual failures.
	SendToMany(ctx context.Context, recipientIDs []string, params Params) error
}

// InboxSender writes notifications to the database synchronously within the
// caller's context.
type InboxSender struct {
	client *ent.Client
}

// NewInboxSender creates a new inbox sender.
func NewInboxSender(client *ent.Client) *InboxSender {
	return &InboxSender{client: client}
}

// Send stores a single notification to the database.
func (s *InboxSender) Send(ctx context.Context, params Params) error {
	if err := validateParams(params); err != nil {
		return fmt.Errorf("notification params invalid: %w", err)
	}

	notifType, err := toEntType(params.Type)
	if err != nil {
		return err
	}

	_, err = s.client.Notification.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetType(notifType).
		SetTitle(params.Title).
		SetMessage(params.Message).
		SetResourceType(params.ResourceType).
		SetResourceID(params.ResourceID).
		SetRead(false).
		SetUserID(params.RecipientID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create notification for user %s: %w", params.RecipientID, err)
	}

	logger.Debug("notification sent",
		zap.String("recipient", params.RecipientID),
		zap.String("type", params.Type),
		zap.String("title", params.Title),
	)

	return nil
}

// SendToMany creates notifications for multiple recipients (best-effort).
// Failures are logged but do not prevent delivery to other recipients.
func (s *InboxSender) SendToMany(ctx context.Context, recipientIDs []string, params Params) error {
	if len(recipientIDs) == 0 {
		return nil
	}

	var failCount int
	for _, recipientID := range recipientIDs {
		p := params
		p.RecipientID = recipientID
		if err := s.Send(ctx, p); err != nil {
			failCount++
			logger.Error("notification delivery failed",
				zap.String("recipient", recipientID),
				zap.String("type", params.Type),
				zap.Error(err),
			)
		}
	}

	if failCount > 0 {
		return fmt.Errorf("notification delivery failed for %d/%d recipients", failCount, len(recipientIDs))
	}
	return nil
}

// compile-time check
var _ Sender = (*InboxSender)(nil)

func validateParams(p Params) error {
	if p.RecipientID == "" {
		return fmt.Errorf("recipient_id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

func toEntType(t string) (entnotification.Type, error) {
	switch t {
	case TypeInterviewBooked:
		return entnotification.TypeINTERVIEW_BOOKED, nil
	case TypeApplicationStatus:
		return entnotification.TypeAPPLICATION_STATUS, nil
	case TypeCycleStageChanged:
		return entnotification.TypeCYCLE_STAGE_CHANGED, nil
	default:
		return "", fmt.Errorf("unknown notification type: %s", t)
	}
}
