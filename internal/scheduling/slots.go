// Package scheduling generates bookable interview slots from interviewer
// availability windows and already-booked interviews.
package scheduling

import (
	"sort"
	"time"
)

// SlotLength is the fixed interview slot length. Not configurable per call.
const SlotLength = 30 * time.Minute

// Window is one interviewer availability window.
type Window struct {
	InterviewerID string
	Start         time.Time
	End           time.Time
}

// Booked is one already-scheduled interview occupying calendar time.
type Booked struct {
	Start time.Time
	End   time.Time
}

// Slot is one candidate interview slot.
type Slot struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Available     bool      `json:"available"`
	InterviewerID string    `json:"interviewer_id,omitempty"`
}

// BuildSlots generates the ordered slot list for one calendar day.
// Pure function: callers fetch windows and booked interviews first.
//
// Windows are clipped to [dayStart, dayEnd), slot starts are rounded up to
// 30-minute boundaries, slots whose start is not strictly after now are
// dropped, and duplicate start times from overlapping windows keep the first
// occurrence only. All comparisons are at whole-minute granularity.
func BuildSlots(windows []Window, booked []Booked, dayStart time.Time, now time.Time) []Slot {
	dayEnd := dayStart.Add(24 * time.Hour)
	now = now.Truncate(time.Minute)

	var slots []Slot
	for _, w := range windows {
		start := w.Start.Truncate(time.Minute)
		end := w.End.Truncate(time.Minute)
		if start.Before(dayStart) {
			start = dayStart
		}
		if end.After(dayEnd) {
			end = dayEnd
		}
		if !start.Before(end) {
			continue
		}
		start = roundUp(start, 30*time.Minute)

		for t := start; !t.Add(SlotLength).After(end); t = t.Add(SlotLength) {
			if !t.After(now) {
				continue
			}
			slots = append(slots, Slot{
				Start:         t,
				End:           t.Add(SlotLength),
				Available:     !overlapsAny(t, t.Add(SlotLength), booked),
				InterviewerID: w.InterviewerID,
			})
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	// Overlapping windows from multiple interviewers produce duplicate start
	// times; the first occurrence wins.
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if n := len(out); n > 0 && s.Start.Equal(out[n-1].Start) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// roundUp rounds t up to the next multiple of d, leaving exact boundaries alone.
func roundUp(t time.Time, d time.Duration) time.Time {
	rounded := t.Truncate(d)
	if rounded.Before(t) {
		rounded = rounded.Add(d)
	}
	return rounded
}

// overlapsAny applies the three-way interval test against every booked
// interview: slot start inside the interview, slot end inside it, or the
// slot fully containing it.
func overlapsAny(start, end time.Time, booked []Booked) bool {
	for _, b := range booked {
		bs := b.Start.Truncate(time.Minute)
		be := b.End.Truncate(time.Minute)
		startInside := !start.Before(bs) && start.Before(be)
		endInside := end.After(bs) && !end.After(be)
		contains := !start.After(bs) && !end.Before(be)
		if startInside || endInside || contains {
			return true
		}
	}
	return false
}
