package scheduling

import (
	"context"
	"fmt"
	"time"

	"crewcycle.io/crewcycle/ent"
	"crewcycle.io/crewcycle/ent/availability"
	"crewcycle.io/crewcycle/ent/interview"
)

// SlotService fetches availability and booked interviews and runs the slot
// generator over them.
type SlotService struct {
	client *ent.Client
}

// NewSlotService creates a slot service over the shared ent client.
func NewSlotService(client *ent.Client) *SlotService {
	return &SlotService{client: client}
}

// SlotsForDay returns the ordered slot list for a system on the day starting
// at dayStart. Interviews of every system count as busy time because an
// interviewer's calendar is date-scoped, not system-scoped.
func (s *SlotService) SlotsForDay(ctx context.Context, systemID string, dayStart time.Time, now time.Time) ([]Slot, error) {
	windows, err := s.WindowsForDay(ctx, systemID, dayStart)
	if err != nil {
		return nil, err
	}
	booked, err := s.BookedForDay(ctx, dayStart)
	if err != nil {
		return nil, err
	}
	return BuildSlots(windows, booked, dayStart, now), nil
}

// WindowsForDay fetches the system's availability rows overlapping the day.
func (s *SlotService) WindowsForDay(ctx context.Context, systemID string, dayStart time.Time) ([]Window, error) {
	dayEnd := dayStart.Add(24 * time.Hour)
	rows, err := s.client.Availability.Query().
		Where(
			availability.SystemIDEQ(systemID),
			availability.StartAtLT(dayEnd),
			availability.EndAtGT(dayStart),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query availability for system %s: %w", systemID, err)
	}

	windows := make([]Window, 0, len(rows))
	for _, r := range rows {
		windows = append(windows, Window{
			InterviewerID: r.UserID,
			Start:         r.StartAt,
			End:           r.EndAt,
		})
	}
	return windows, nil
}

// BookedForDay fetches non-cancelled interviews scheduled on the day.
func (s *SlotService) BookedForDay(ctx context.Context, dayStart time.Time) ([]Booked, error) {
	dayEnd := dayStart.Add(24 * time.Hour)
	rows, err := s.client.Interview.Query().
		Where(
			interview.ScheduledAtGTE(dayStart),
			interview.ScheduledAtLT(dayEnd),
			interview.StatusNEQ(interview.StatusCANCELLED),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query booked interviews: %w", err)
	}

	booked := make([]Booked, 0, len(rows))
	for _, r := range rows {
		booked = append(booked, Booked{
			Start: r.ScheduledAt,
			End:   r.ScheduledAt.Add(time.Duration(r.DurationMinutes) * time.Minute),
		})
	}
	return booked, nil
}
