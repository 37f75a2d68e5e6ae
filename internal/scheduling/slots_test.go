package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func at(d time.Time, hour, min int) time.Time {
	return d.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func TestBuildSlotsOneHourWindowWithBookedHalf(t *testing.T) {
	d := day(t)
	windows := []Window{{InterviewerID: "iv1", Start: at(d, 9, 0), End: at(d, 10, 0)}}
	booked := []Booked{{Start: at(d, 9, 30), End: at(d, 10, 0)}}

	slots := BuildSlots(windows, booked, d, d)

	require.Len(t, slots, 2)
	assert.Equal(t, at(d, 9, 0), slots[0].Start)
	assert.True(t, slots[0].Available)
	assert.Equal(t, at(d, 9, 30), slots[1].Start)
	assert.False(t, slots[1].Available)
}

func TestBuildSlotsRoundsStartUp(t *testing.T) {
	d := day(t)
	windows := []Window{{Start: at(d, 9, 10), End: at(d, 10, 30)}}

	slots := BuildSlots(windows, nil, d, d)

	require.Len(t, slots, 2)
	assert.Equal(t, at(d, 9, 30), slots[0].Start)
	assert.Equal(t, at(d, 10, 0), slots[1].Start)
}

func TestBuildSlotsDropsPast(t *testing.T) {
	d := day(t)
	windows := []Window{{Start: at(d, 9, 0), End: at(d, 11, 0)}}

	slots := BuildSlots(windows, nil, d, at(d, 9, 30))

	require.Len(t, slots, 2)
	assert.Equal(t, at(d, 10, 0), slots[0].Start, "a slot starting exactly now is not bookable")
	assert.Equal(t, at(d, 10, 30), slots[1].Start)
}

func TestBuildSlotsClipsToDay(t *testing.T) {
	d := day(t)
	windows := []Window{{Start: d.Add(-2 * time.Hour), End: at(d, 1, 0)}}

	slots := BuildSlots(windows, nil, d, d.Add(-3*time.Hour))

	require.Len(t, slots, 2)
	assert.Equal(t, at(d, 0, 0), slots[0].Start)
	assert.Equal(t, at(d, 0, 30), slots[1].Start)
}

func TestBuildSlotsDedupesOverlappingWindows(t *testing.T) {
	d := day(t)
	windows := []Window{
		{InterviewerID: "iv1", Start: at(d, 9, 0), End: at(d, 10, 0)},
		{InterviewerID: "iv2", Start: at(d, 9, 0), End: at(d, 10, 30)},
	}

	slots := BuildSlots(windows, nil, d, d)

	require.Len(t, slots, 3)
	assert.Equal(t, "iv1", slots[0].InterviewerID, "first occurrence wins")
	assert.Equal(t, "iv1", slots[1].InterviewerID)
	assert.Equal(t, "iv2", slots[2].InterviewerID)
	assert.Equal(t, at(d, 10, 0), slots[2].Start)
}

func TestBuildSlotsSortedAndStartUnique(t *testing.T) {
	d := day(t)
	windows := []Window{
		{InterviewerID: "b", Start: at(d, 14, 0), End: at(d, 16, 0)},
		{InterviewerID: "a", Start: at(d, 9, 0), End: at(d, 15, 0)},
	}

	slots := BuildSlots(windows, nil, d, at(d, 8, 0))

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start),
			"slots must be strictly ascending by start")
	}
	for _, s := range slots {
		assert.True(t, s.Start.After(at(d, 8, 0)))
		assert.Equal(t, SlotLength, s.End.Sub(s.Start))
	}
}

func TestBuildSlotsThreeWayOverlap(t *testing.T) {
	d := day(t)
	windows := []Window{{Start: at(d, 9, 0), End: at(d, 12, 0)}}
	// A long interview swallowing 10:00-11:00 entirely.
	booked := []Booked{{Start: at(d, 9, 45), End: at(d, 11, 15)}}

	slots := BuildSlots(windows, booked, d, d)

	byStart := map[string]bool{}
	for _, s := range slots {
		byStart[s.Start.Format("15:04")] = s.Available
	}
	assert.True(t, byStart["09:00"])
	assert.False(t, byStart["09:30"], "slot end falls inside the interview")
	assert.False(t, byStart["10:00"], "slot fully inside the interview")
	assert.False(t, byStart["10:30"])
	assert.False(t, byStart["11:00"], "slot start falls inside the interview")
	assert.True(t, byStart["11:30"])
}

func TestBuildSlotsSlotContainsInterview(t *testing.T) {
	d := day(t)
	windows := []Window{{Start: at(d, 9, 0), End: at(d, 10, 0)}}
	booked := []Booked{{Start: at(d, 9, 10), End: at(d, 9, 20)}}

	slots := BuildSlots(windows, booked, d, d)

	require.Len(t, slots, 2)
	assert.False(t, slots[0].Available, "slot containing a short interview is busy")
	assert.True(t, slots[1].Available)
}

func TestBuildSlotsEmptyInput(t *testing.T) {
	d := day(t)
	assert.Empty(t, BuildSlots(nil, nil, d, d))
	assert.Empty(t, BuildSlots([]Window{{Start: at(d, 9, 0), End: at(d, 9, 20)}}, nil, d, d),
		"window shorter than a slot emits nothing")
}
