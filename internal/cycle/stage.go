// Package cycle implements the recruitment cycle stage state machine and the
// periodic sweep that keeps cycles aligned with their stage windows.
package cycle

// Stage is one phase of a recruitment cycle, totally ordered:
// PREPARATION < APPLICATION < INTERVIEW < TRAIL < FINAL.
type Stage string

const (
	StagePreparation Stage = "PREPARATION"
	StageApplication Stage = "APPLICATION"
	StageInterview   Stage = "INTERVIEW"
	StageTrail       Stage = "TRAIL"
	StageFinal       Stage = "FINAL"
)

// Stages lists all stages in order.
var Stages = []Stage{
	StagePreparation,
	StageApplication,
	StageInterview,
	StageTrail,
	StageFinal,
}

var stageRank = map[Stage]int{
	StagePreparation: 0,
	StageApplication: 1,
	StageInterview:   2,
	StageTrail:       3,
	StageFinal:       4,
}

// transitions is the explicit table of permitted forward moves. FINAL is
// terminal; the admin reset endpoint bypasses this table deliberately.
var transitions = map[Stage]Stage{
	StagePreparation: StageApplication,
	StageApplication: StageInterview,
	StageInterview:   StageTrail,
	StageTrail:       StageFinal,
}

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool {
	_, ok := stageRank[s]
	return ok
}

// Before reports whether s comes strictly before other.
func (s Stage) Before(other Stage) bool {
	sr, ok := stageRank[s]
	if !ok {
		return false
	}
	or, ok := stageRank[other]
	if !ok {
		return false
	}
	return sr < or
}

// Next returns the stage after s per the transition table. FINAL (and any
// unknown stage) has no successor.
func Next(s Stage) (Stage, bool) {
	next, ok := transitions[s]
	return next, ok
}

// CanTransition reports whether moving from one stage to another is a single
// permitted forward step.
func CanTransition(from, to Stage) bool {
	next, ok := transitions[from]
	return ok && next == to
}

// Advance computes an application's next internal stage given the cycle's
// current stage. An application at or behind the cycle moves to the stage
// after the cycle's; one ahead of the cycle moves one step of its own.
// The result is clamped at FINAL and never regresses.
func Advance(cycleStage, appStage Stage) Stage {
	base := appStage
	if !appStage.Valid() || !cycleStage.Before(appStage) {
		base = cycleStage
	}
	next, ok := Next(base)
	if !ok {
		return StageFinal
	}
	if next.Before(appStage) {
		return appStage
	}
	return next
}
