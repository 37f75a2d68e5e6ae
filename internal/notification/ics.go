package notification

import (
	"time"

	ics "github.com/arran4/golang-ical"
)

// InviteDetails carries everything the calendar artifact needs.
type InviteDetails struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	Duration    time.Duration
	Organizer   string
	AttendeeTo  string
}

// BuildInvite renders an ICS calendar invitation for an interview.
func BuildInvite(d InviteDetails, now time.Time) []byte {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodRequest)
	cal.SetProductId("-//CrewCycle//Interview Scheduler//EN")

	event := cal.AddEvent(d.UID)
	event.SetCreatedTime(now)
	event.SetDtStampTime(now)
	event.SetStartAt(d.Start)
	event.SetEndAt(d.Start.Add(d.Duration))
	event.SetSummary(d.Summary)
	if d.Description != "" {
		event.SetDescription(d.Description)
	}
	if d.Location != "" {
		event.SetLocation(d.Location)
	}
	if d.Organizer != "" {
		event.SetOrganizer(d.Organizer)
	}
	if d.AttendeeTo != "" {
		event.AddAttendee(d.AttendeeTo, ics.ParticipationStatusNeedsAction)
	}

	return []byte(cal.Serialize())
}
