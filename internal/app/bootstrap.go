// Package app is the composition root. Bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"crewcycle.io/crewcycle/internal/api/handlers"
	"crewcycle.io/crewcycle/internal/app/modules"
	"crewcycle.io/crewcycle/internal/config"
	"crewcycle.io/crewcycle/internal/infrastructure"
	"crewcycle.io/crewcycle/internal/jobs"
	"crewcycle.io/crewcycle/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *infrastructure.DatabaseClients
	Pools   *worker.Pools
	Modules []modules.Module
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	identity := modules.NewIdentityModule(infra)
	recruitment := modules.NewRecruitmentModule(infra)
	scheduling := modules.NewSchedulingModule(infra, recruitment.Notifier())

	allModules := []modules.Module{identity, recruitment, scheduling}

	workers := river.NewWorkers()
	for _, mod := range allModules {
		mod.RegisterWorkers(workers)
	}
	if err := infra.InitRiver(workers); err != nil {
		infra.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}
	registerPeriodicJobs(infra, cfg)

	serverDeps := modules.NewServerDeps(cfg, infra, allModules)
	server := handlers.NewServer(serverDeps)

	return &Application{
		Config:  cfg,
		Router:  newRouter(cfg, server, infra.EntClient, serverDeps.JWTCfg),
		DB:      infra.DB,
		Pools:   infra.Pools,
		Modules: allModules,
	}, nil
}

// registerPeriodicJobs schedules the recurring maintenance jobs: the daily
// cycle sweep (also run once on startup to catch boundaries crossed while
// the service was down) and the inbox retention cleanup.
func registerPeriodicJobs(infra *modules.Infrastructure, cfg *config.Config) {
	if infra.RiverClient == nil {
		return
	}

	sweepInterval := cfg.Sweep.Interval
	if sweepInterval <= 0 {
		sweepInterval = 24 * time.Hour
	}

	infra.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(sweepInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.CycleSweepArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)
	infra.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.NotificationCleanupArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)
}
