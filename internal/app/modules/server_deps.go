package modules

import (
	"crewcycle.io/crewcycle/internal/api/handlers"
	"crewcycle.io/crewcycle/internal/api/middleware"
	"crewcycle.io/crewcycle/internal/config"
)

// NewServerDeps builds base server deps then lets each module contribute
// explicit wiring. Must run after InitRiver so the enqueue client is live.
func NewServerDeps(cfg *config.Config, infra *Infrastructure, mods []Module) handlers.ServerDeps {
	deps := handlers.ServerDeps{
		EntClient: infra.EntClient,
		JWTCfg: middleware.JWTConfig{
			SigningKey: []byte(cfg.Security.JWTSigningKey),
			Issuer:     cfg.Security.JWTIssuer,
			ExpiresIn:  cfg.Security.JWTExpiresIn,
		},
		Audit:       infra.AuditLogger,
		RiverClient: infra.RiverClient,
		Pools:       infra.Pools,
		ReadyCheck: func() error {
			return infra.DB.DB.Ping()
		},
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		mod.ContributeServerDeps(&deps)
	}
	return deps
}
