package handlers

import (
	"time"

	"github.com/google/uuid"

	"crewcycle.io/crewcycle/ent"
	"crewcycle.io/crewcycle/ent/schema"
)

// UserInfo is the API view of a user.
type UserInfo struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name,omitempty"`
	Role        string     `json:"role"`
	TeamID      string     `json:"team_id,omitempty"`
	SystemID    string     `json:"system_id,omitempty"`
	Enabled     bool       `json:"enabled"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

func toUserInfo(u *ent.User) UserInfo {
	return UserInfo{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role.String(),
		TeamID:      u.TeamID,
		SystemID:    u.SystemID,
		Enabled:     u.Enabled,
		LastLoginAt: u.LastLoginAt,
	}
}

// TeamInfo is the API view of a team.
type TeamInfo struct {
	ID                             string `json:"id"`
	Name                           string `json:"name"`
	Description                    string `json:"description,omitempty"`
	AllowsMultipleSystemInterviews bool   `json:"allows_multiple_system_interviews"`
}

func toTeamInfo(t *ent.Team) TeamInfo {
	return TeamInfo{
		ID:                             t.ID,
		Name:                           t.Name,
		Description:                    t.Description,
		AllowsMultipleSystemInterviews: t.AllowsMultipleSystemInterviews,
	}
}

// SystemInfo is the API view of a system.
type SystemInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TeamID      string `json:"team_id"`
}

func toSystemInfo(s *ent.System) SystemInfo {
	return SystemInfo{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		TeamID:      s.TeamID,
	}
}

// StageWindow is one cycle stage window.
type StageWindow struct {
	Stage     string    `json:"stage"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// CycleInfo is the API view of a recruitment cycle.
type CycleInfo struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Stage     string        `json:"stage"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Stages    []StageWindow `json:"stages,omitempty"`
}

func toCycleInfo(c *ent.ApplicationCycle) CycleInfo {
	info := CycleInfo{
		ID:        c.ID,
		Name:      c.Name,
		Stage:     c.Stage.String(),
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
	}
	for _, st := range c.Edges.Stages {
		info.Stages = append(info.Stages, StageWindow{
			Stage:     st.Stage.String(),
			StartDate: st.StartDate,
			EndDate:   st.EndDate,
		})
	}
	return info
}

// ApplicationInfo is the API view of an application. Internal fields are
// only populated for staff viewers.
type ApplicationInfo struct {
	ID               string                 `json:"id"`
	UserID           string                 `json:"user_id"`
	TeamID           string                 `json:"team_id"`
	SystemID         string                 `json:"system_id,omitempty"`
	CycleID          string                 `json:"cycle_id"`
	Status           string                 `json:"status"`
	InternalStatus   string                 `json:"internal_status,omitempty"`
	InternalDecision string                 `json:"internal_decision,omitempty"`
	Data             map[string]interface{} `json:"data,omitempty"`
	Reviews          []schema.SystemReview  `json:"reviews,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}

func toApplicationInfo(a *ent.Application, includeInternal bool) ApplicationInfo {
	info := ApplicationInfo{
		ID:        a.ID,
		UserID:    a.UserID,
		TeamID:    a.TeamID,
		SystemID:  a.SystemID,
		CycleID:   a.CycleID,
		Status:    a.Status.String(),
		Data:      a.Data,
		CreatedAt: a.CreatedAt,
	}
	if includeInternal {
		info.InternalStatus = a.InternalStatus.String()
		info.InternalDecision = a.InternalDecision
		info.Reviews = a.Reviews
	}
	return info
}

// AvailabilityInfo is the API view of an availability window.
type AvailabilityInfo struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	SystemID string    `json:"system_id"`
	StartAt  time.Time `json:"start_at"`
	EndAt    time.Time `json:"end_at"`
}

func toAvailabilityInfo(a *ent.Availability) AvailabilityInfo {
	return AvailabilityInfo{
		ID:       a.ID,
		UserID:   a.UserID,
		SystemID: a.SystemID,
		StartAt:  a.StartAt,
		EndAt:    a.EndAt,
	}
}

// InterviewInfo is the API view of a booked interview.
type InterviewInfo struct {
	ID              string    `json:"id"`
	ApplicationID   string    `json:"application_id"`
	SystemID        string    `json:"system_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	Location        string    `json:"location,omitempty"`
}

func toInterviewInfo(iv *ent.Interview) InterviewInfo {
	return InterviewInfo{
		ID:              iv.ID,
		ApplicationID:   iv.ApplicationID,
		SystemID:        iv.SystemID,
		ScheduledAt:     iv.ScheduledAt,
		DurationMinutes: iv.DurationMinutes,
		Status:          iv.Status.String(),
		Notes:           iv.Notes,
		Location:        iv.Location,
	}
}

// NotificationInfo is the API view of an inbox notification.
type NotificationInfo struct {
	ID           string     `json:"id"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	ResourceType string     `json:"resource_type,omitempty"`
	ResourceID   string     `json:"resource_id,omitempty"`
	Read         bool       `json:"read"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toNotificationInfo(n *ent.Notification) NotificationInfo {
	return NotificationInfo{
		ID:           n.ID,
		Type:         n.Type.String(),
		Title:        n.Title,
		Message:      n.Message,
		ResourceType: n.ResourceType,
		ResourceID:   n.ResourceID,
		Read:         n.Read,
		ReadAt:       n.ReadAt,
		CreatedAt:    n.CreatedAt,
	}
}

// generateID generates a unique UUID v7 (time-ordered, K-sortable).
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
