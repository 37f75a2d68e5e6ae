package modules

import (
	"context"

	"github.com/riverqueue/river"

	"crewcycle.io/crewcycle/internal/api/handlers"
	"crewcycle.io/crewcycle/internal/jobs"
	"crewcycle.io/crewcycle/internal/notification"
	"crewcycle.io/crewcycle/internal/scheduling"
	"crewcycle.io/crewcycle/internal/usecase"
)

// SchedulingModule wires slot generation, interview booking and the invite
// mail worker.
type SchedulingModule struct {
	infra       *Infrastructure
	slotService *scheduling.SlotService
	bookUC      *usecase.BookInterviewUseCase
}

// NewSchedulingModule creates the scheduling module with explicit constructor wiring.
func NewSchedulingModule(infra *Infrastructure, notifier *notification.Triggers) *SchedulingModule {
	slotSvc := scheduling.NewSlotService(infra.EntClient)
	bookUC := usecase.NewBookInterviewUseCase(infra.EntClient, slotSvc, notifier).
		WithAuditLogger(infra.AuditLogger)

	return &SchedulingModule{
		infra:       infra,
		slotService: slotSvc,
		bookUC:      bookUC,
	}
}

func (m *SchedulingModule) Name() string { return "scheduling" }

// ContributeServerDeps runs after River is initialized; the booking use case
// gets its enqueue client bound here.
func (m *SchedulingModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	m.bookUC.WithRiverClient(m.infra.RiverClient)
	deps.SlotService = m.slotService
	deps.BookUC = m.bookUC
}

func (m *SchedulingModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewInterviewInviteWorker(
		m.infra.EntClient, m.infra.Mailer, m.infra.Config.Mail.Location,
	))
}

func (m *SchedulingModule) Shutdown(context.Context) error { return nil }
