package modules

import (
	"context"

	"github.com/riverqueue/river"

	"crewcycle.io/crewcycle/internal/api/handlers"
	"crewcycle.io/crewcycle/internal/cycle"
	"crewcycle.io/crewcycle/internal/jobs"
	"crewcycle.io/crewcycle/internal/notification"
)

// RecruitmentModule wires the cycle state machine and its background jobs:
// stage sweeps, decision notices and inbox retention cleanup.
type RecruitmentModule struct {
	infra       *Infrastructure
	sweeper     *cycle.Sweeper
	notifier    *notification.Triggers
	sweepWorker *jobs.CycleSweepWorker
}

// NewRecruitmentModule creates the recruitment module with explicit constructor wiring.
func NewRecruitmentModule(infra *Infrastructure) *RecruitmentModule {
	sweeper := cycle.NewSweeper(infra.EntClient, infra.Inbox)
	return &RecruitmentModule{
		infra:       infra,
		sweeper:     sweeper,
		notifier:    notification.NewTriggers(infra.Inbox),
		sweepWorker: jobs.NewCycleSweepWorker(sweeper),
	}
}

func (m *RecruitmentModule) Name() string { return "recruitment" }

// Notifier exposes the inbox trigger set for modules that fire
// notifications of their own.
func (m *RecruitmentModule) Notifier() *notification.Triggers { return m.notifier }

// ContributeServerDeps runs after River is initialized, so the sweep worker
// gets its enqueue client bound here rather than at construction.
func (m *RecruitmentModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	m.sweepWorker.SetRiverClient(m.infra.RiverClient)
	deps.Sweeper = m.sweeper
	deps.Notifier = m.notifier
}

func (m *RecruitmentModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, m.sweepWorker)
	river.AddWorker(workers, jobs.NewDecisionNoticeWorker(
		m.infra.EntClient, m.infra.Mailer, m.infra.Pools.Mail, m.infra.Config.Sweep.BatchSize,
	))
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(
		m.infra.EntClient, jobs.DefaultNotificationRetention,
	))
}

func (m *RecruitmentModule) Shutdown(context.Context) error { return nil }
