package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	next, ok := Next(StagePreparation)
	assert.True(t, ok)
	assert.Equal(t, StageApplication, next)

	next, ok = Next(StageTrail)
	assert.True(t, ok)
	assert.Equal(t, StageFinal, next)

	_, ok = Next(StageFinal)
	assert.False(t, ok, "FINAL is terminal")

	_, ok = Next(Stage("ONBOARDING"))
	assert.False(t, ok)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StageApplication, StageInterview))
	assert.False(t, CanTransition(StageApplication, StageTrail), "no stage skipping")
	assert.False(t, CanTransition(StageInterview, StageApplication), "no regression")
	assert.False(t, CanTransition(StageFinal, StagePreparation))
}

func TestAdvanceAppBehindCycle(t *testing.T) {
	// Application at or behind the cycle moves to the stage after the cycle's.
	assert.Equal(t, StageTrail, Advance(StageInterview, StageApplication))
	assert.Equal(t, StageTrail, Advance(StageInterview, StageInterview))
}

func TestAdvanceAppAheadOfCycle(t *testing.T) {
	// Application ahead of the cycle moves one step of its own.
	assert.Equal(t, StageFinal, Advance(StageInterview, StageTrail))
	assert.Equal(t, StageInterview, Advance(StagePreparation, StageApplication))
}

func TestAdvanceClampedAtFinal(t *testing.T) {
	assert.Equal(t, StageFinal, Advance(StageFinal, StageFinal))
	assert.Equal(t, StageFinal, Advance(StageTrail, StageFinal))
}

func TestAdvanceNeverRegresses(t *testing.T) {
	for _, cs := range Stages {
		for _, as := range Stages {
			got := Advance(cs, as)
			assert.False(t, got.Before(as),
				"Advance(%s, %s) = %s regressed below %s", cs, as, got, as)
		}
	}
}

func TestStageOrdering(t *testing.T) {
	for i := 0; i < len(Stages)-1; i++ {
		assert.True(t, Stages[i].Before(Stages[i+1]))
		assert.False(t, Stages[i+1].Before(Stages[i]))
	}
	assert.False(t, StageFinal.Before(StageFinal))
}
