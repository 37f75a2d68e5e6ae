package modules

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"crewcycle.io/crewcycle/ent"
	"crewcycle.io/crewcycle/internal/config"
	"crewcycle.io/crewcycle/internal/governance/audit"
	"crewcycle.io/crewcycle/internal/infrastructure"
	"crewcycle.io/crewcycle/internal/notification"
	"crewcycle.io/crewcycle/internal/pkg/logger"
	"crewcycle.io/crewcycle/internal/pkg/worker"
)

// Infrastructure holds shared cross-cutting dependencies for all modules.
// It is a provider, not a Module.
type Infrastructure struct {
	Config      *config.Config
	DB          *infrastructure.DatabaseClients
	Pools       *worker.Pools
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	RiverClient *river.Client[pgx.Tx]
	AuditLogger *audit.Logger
	Mailer      notification.Mailer
	Inbox       *notification.InboxSender
}

// NewInfrastructure initializes DB/pools and shared services.
func NewInfrastructure(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	// Dev-mode: auto-create Ent tables + River queue tables.
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
		MailPoolSize:    cfg.Worker.MailPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	mailer, err := newMailer(cfg.Mail)
	if err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init mailer: %w", err)
	}

	entClient := db.EntClient
	return &Infrastructure{
		Config:      cfg,
		DB:          db,
		Pools:       pools,
		EntClient:   entClient,
		Pool:        db.Pool,
		RiverClient: db.RiverClient,
		AuditLogger: audit.NewLogger(entClient),
		Mailer:      mailer,
		Inbox:       notification.NewInboxSender(entClient),
	}, nil
}

// newMailer picks the SMTP client when mail is enabled, otherwise a
// log-only fallback so notification jobs still complete in dev setups.
func newMailer(cfg config.MailConfig) (notification.Mailer, error) {
	if !cfg.Enabled {
		logger.Info("mail disabled, outbound messages will be logged only")
		return notification.NewLogMailer(), nil
	}
	m, err := notification.NewSMTPMailer(cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.From)
	if err != nil {
		return nil, err
	}
	logger.Info("SMTP mailer initialized",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
	)
	return m, nil
}

// InitRiver initializes River client on top of a prepared worker registry.
func (i *Infrastructure) InitRiver(workers *river.Workers) error {
	if i == nil || i.DB == nil || i.Config == nil {
		return fmt.Errorf("infrastructure is not initialized")
	}
	if err := i.DB.InitRiverClient(workers, i.Config.River); err != nil {
		return fmt.Errorf("init river: %w", err)
	}
	i.RiverClient = i.DB.RiverClient
	return nil
}

// Close releases infra resources in reverse dependency order.
func (i *Infrastructure) Close() {
	if i == nil {
		return
	}
	if i.Pools != nil {
		i.Pools.Shutdown()
	}
	if i.DB != nil {
		i.DB.Close()
	}
}
