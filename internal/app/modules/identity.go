package modules

import (
	"context"

	"github.com/riverqueue/river"

	"crewcycle.io/crewcycle/internal/api/handlers"
	"crewcycle.io/crewcycle/internal/rbac"
)

// IdentityModule wires authentication and access-control dependencies.
// Permission sets are built per request by middleware; this module only
// owns the resource-level evaluator.
type IdentityModule struct {
	infra     *Infrastructure
	evaluator *rbac.Evaluator
}

// NewIdentityModule creates the identity module with explicit constructor wiring.
func NewIdentityModule(infra *Infrastructure) *IdentityModule {
	return &IdentityModule{
		infra:     infra,
		evaluator: rbac.NewEvaluator(infra.EntClient),
	}
}

func (m *IdentityModule) Name() string { return "identity" }

func (m *IdentityModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Evaluator = m.evaluator
}

func (m *IdentityModule) RegisterWorkers(_ *river.Workers) {}

func (m *IdentityModule) Shutdown(context.Context) error { return nil }
