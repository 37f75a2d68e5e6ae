package cycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crewcycle.io/crewcycle/ent"
	entapp "crewcycle.io/crewcycle/ent/application"
	entcycle "crewcycle.io/crewcycle/ent/applicationcycle"
	entstage "crewcycle.io/crewcycle/ent/cyclestage"
	"crewcycle.io/crewcycle/ent/schema"
	"crewcycle.io/crewcycle/internal/pkg/logger"
	"crewcycle.io/crewcycle/internal/testutil"
)

func newSweepFixture(t *testing.T) (*ent.Client, context.Context) {
	t.Helper()
	_ = logger.Init("error", "console")
	client := testutil.OpenEntPostgres(t, "cycle-sweep")
	return client, context.Background()
}

// seedCycle creates a cycle at APPLICATION whose INTERVIEW window contains
// the given instant, plus a team and two applicants with applications.
func seedCycle(t *testing.T, ctx context.Context, client *ent.Client, now time.Time) *ent.ApplicationCycle {
	t.Helper()

	team := client.Team.Create().
		SetID("team-1").SetName("Platform").
		SaveX(ctx)

	cyc := client.ApplicationCycle.Create().
		SetID("cycle-1").SetName("Season One").
		SetStage(entcycle.StageAPPLICATION).
		SetStartDate(now.AddDate(0, -2, 0)).
		SetEndDate(now.AddDate(0, 2, 0)).
		SaveX(ctx)

	client.CycleStage.Create().
		SetID("stage-app").SetCycleID(cyc.ID).
		SetStage(entstage.StageAPPLICATION).
		SetStartDate(now.AddDate(0, -2, 0)).
		SetEndDate(now.AddDate(0, 0, -1)).
		SaveX(ctx)
	client.CycleStage.Create().
		SetID("stage-interview").SetCycleID(cyc.ID).
		SetStage(entstage.StageINTERVIEW).
		SetStartDate(now.AddDate(0, 0, -1)).
		SetEndDate(now.AddDate(0, 1, 0)).
		SaveX(ctx)

	for i, id := range []string{"alice", "bob"} {
		client.User.Create().
			SetID(id).SetUsername(id).SetEmail(id + "@example.com").
			SaveX(ctx)
		create := client.Application.Create().
			SetID("app-" + id).
			SetUserID(id).
			SetTeamID(team.ID).
			SetCycleID(cyc.ID).
			SetStatus(entapp.StatusSUBMITTED)
		if i == 0 {
			create.SetReviews([]schema.SystemReview{
				{SystemID: "sys-1", Status: "PENDING"},
			})
		}
		create.SaveX(ctx)
	}
	return cyc
}

func TestSweeperRun_TransitionsAndCascades(t *testing.T) {
	client, ctx := newSweepFixture(t)
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	cyc := seedCycle(t, ctx, client, now)

	res, err := NewSweeper(client, nil).Run(ctx, now)
	require.NoError(t, err)
	require.Equal(t, 1, res.CyclesChecked)
	require.Equal(t, 1, res.Transitions)
	require.Equal(t, 0, res.Failures)
	require.Equal(t, []string{cyc.ID}, res.TransitionedCycleIDs)

	got := client.ApplicationCycle.GetX(ctx, cyc.ID)
	require.Equal(t, entcycle.StageINTERVIEW, got.Stage)

	// Pending review survives the boundary, everything else is rejected.
	alice := client.Application.GetX(ctx, "app-alice")
	require.Equal(t, entapp.StatusNEEDS_REVIEW, alice.Status)
	bob := client.Application.GetX(ctx, "app-bob")
	require.Equal(t, entapp.StatusREJECTED, bob.Status)
}

func TestSweeperRun_NoTransitionWhenStageMatchesWindow(t *testing.T) {
	client, ctx := newSweepFixture(t)
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	cyc := seedCycle(t, ctx, client, now)

	client.ApplicationCycle.UpdateOneID(cyc.ID).
		SetStage(entcycle.StageINTERVIEW).
		ExecX(ctx)

	res, err := NewSweeper(client, nil).Run(ctx, now)
	require.NoError(t, err)
	require.Equal(t, 1, res.CyclesChecked)
	require.Equal(t, 0, res.Transitions)

	// The cascade only fires on a transition.
	bob := client.Application.GetX(ctx, "app-bob")
	require.Equal(t, entapp.StatusSUBMITTED, bob.Status)
}

func TestSweeperRun_IgnoresInactiveCycles(t *testing.T) {
	client, ctx := newSweepFixture(t)
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	seedCycle(t, ctx, client, now)

	// A full year before the cycle opens.
	res, err := NewSweeper(client, nil).Run(ctx, now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	require.Equal(t, 0, res.CyclesChecked)
	require.Equal(t, 0, res.Transitions)
}

func TestSweeperRun_IdempotentSecondPass(t *testing.T) {
	client, ctx := newSweepFixture(t)
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	seedCycle(t, ctx, client, now)

	sweeper := NewSweeper(client, nil)
	_, err := sweeper.Run(ctx, now)
	require.NoError(t, err)

	res, err := sweeper.Run(ctx, now)
	require.NoError(t, err)
	require.Equal(t, 0, res.Transitions)

	alice := client.Application.GetX(ctx, "app-alice")
	require.Equal(t, entapp.StatusNEEDS_REVIEW, alice.Status)
}
