// Package audit implements the audit logging service.
//
// Audit logs are append-only compliance records. Hard-delete is NOT allowed.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"crewcycle.io/crewcycle/ent"
	"crewcycle.io/crewcycle/internal/pkg/logger"
)

// Logger writes audit records to the database.
type Logger struct {
	client *ent.Client
}

// NewLogger creates a new audit Logger.
func NewLogger(client *ent.Client) *Logger {
	return &Logger{client: client}
}

// LogAction records an auditable action.
func (l *Logger) LogAction(ctx context.Context, action, resourceType, resourceID, actor string, details map[string]interface{}) error {
	_, err := l.client.AuditLog.Create().
		SetID(generateAuditID()).
		SetAction(action).
		SetResourceType(resourceType).
		SetResourceID(resourceID).
		SetActor(actor).
		SetDetails(details).
		Save(ctx)
	if err != nil {
		logger.Error("Failed to write audit log",
			zap.String("action", action),
			zap.String("resource_type", resourceType),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// LogRoleChange records a user role or affiliation mutation.
func (l *Logger) LogRoleChange(ctx context.Context, userID, actor, oldRole, newRole string) error {
	return l.LogAction(ctx, "user.role_change", "user", userID, actor, map[string]interface{}{
		"old_role": oldRole,
		"new_role": newRole,
	})
}

// LogCycleOverride records an administrator stage override or reset.
func (l *Logger) LogCycleOverride(ctx context.Context, cycleID, actor, fromStage, toStage string) error {
	return l.LogAction(ctx, "cycle.stage_override", "application_cycle", cycleID, actor, map[string]interface{}{
		"from_stage": fromStage,
		"to_stage":   toStage,
	})
}

// LogBooking records an interview booking.
func (l *Logger) LogBooking(ctx context.Context, interviewID, actor string) error {
	return l.LogAction(ctx, "interview.book", "interview", interviewID, actor, nil)
}

func generateAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("audit-%s", id.String())
}
