// Package main provides data seeding for CrewCycle.
//
// Seeds a development dataset from a YAML fixture file: teams, systems,
// staff and applicant accounts, and one recruitment cycle with its five
// stage windows. Every insert is idempotent; existing rows are skipped.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"crewcycle.io/crewcycle/ent"
	entstage "crewcycle.io/crewcycle/ent/cyclestage"
	entuser "crewcycle.io/crewcycle/ent/user"
	"crewcycle.io/crewcycle/internal/api/handlers"
	"crewcycle.io/crewcycle/internal/config"
	"crewcycle.io/crewcycle/internal/infrastructure"
	"crewcycle.io/crewcycle/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

// fixtures is the YAML document shape.
type fixtures struct {
	Teams []struct {
		ID                             string `yaml:"id"`
		Name                           string `yaml:"name"`
		Description                    string `yaml:"description"`
		AllowsMultipleSystemInterviews bool   `yaml:"allows_multiple_system_interviews"`
	} `yaml:"teams"`
	Systems []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		TeamID      string `yaml:"team_id"`
	} `yaml:"systems"`
	Users []struct {
		ID          string `yaml:"id"`
		Username    string `yaml:"username"`
		Email       string `yaml:"email"`
		DisplayName string `yaml:"display_name"`
		Password    string `yaml:"password"`
		Role        string `yaml:"role"`
		TeamID      string `yaml:"team_id"`
		SystemID    string `yaml:"system_id"`
	} `yaml:"users"`
	Cycles []struct {
		ID        string `yaml:"id"`
		Name      string `yaml:"name"`
		StartDate string `yaml:"start_date"`
		EndDate   string `yaml:"end_date"`
		Stages    []struct {
			Stage     string `yaml:"stage"`
			StartDate string `yaml:"start_date"`
			EndDate   string `yaml:"end_date"`
		} `yaml:"stages"`
	} `yaml:"cycles"`
}

// defaultFixtures covers a local development setup: one regular team, one
// team with the per-system interview exception, and a cycle whose
// APPLICATION window is open right now.
const defaultFixtures = `
teams:
  - id: team-platform
    name: Platform
    description: Core platform team
  - id: team-avionics
    name: Avionics
    description: Avionics team, interviews per system
    allows_multiple_system_interviews: true
systems:
  - id: sys-telemetry
    name: Telemetry
    description: Telemetry ingestion and storage
    team_id: team-platform
  - id: sys-guidance
    name: Guidance
    description: Guidance and control software
    team_id: team-avionics
  - id: sys-sensors
    name: Sensors
    description: Sensor fusion stack
    team_id: team-avionics
users:
  - id: user-admin
    username: admin
    email: admin@localhost
    display_name: Administrator
    password: admin
    role: ADMIN
  - id: user-platform-lead
    username: platform-lead
    email: platform-lead@localhost
    password: changeme
    role: TEAM_MANAGEMENT
    team_id: team-platform
  - id: user-telemetry-lead
    username: telemetry-lead
    email: telemetry-lead@localhost
    password: changeme
    role: SYSTEM_LEADER
    team_id: team-platform
    system_id: sys-telemetry
  - id: user-applicant
    username: applicant
    email: applicant@localhost
    password: changeme
    role: APPLICANT
cycles:
  - id: cycle-dev
    name: Development Cycle
    start_date: 2026-01-01
    end_date: 2026-12-31
    stages:
      - { stage: PREPARATION, start_date: 2026-01-01, end_date: 2026-03-01 }
      - { stage: APPLICATION, start_date: 2026-03-01, end_date: 2026-10-01 }
      - { stage: INTERVIEW, start_date: 2026-10-01, end_date: 2026-11-01 }
      - { stage: TRAIL, start_date: 2026-11-01, end_date: 2026-12-01 }
      - { stage: FINAL, start_date: 2026-12-01, end_date: 2026-12-31 }
`

func run() error {
	fixturePath := flag.String("fixtures", "", "path to a YAML fixture file (built-in dev fixtures when empty)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	fx, err := loadFixtures(*fixturePath)
	if err != nil {
		return err
	}

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...")

	// Ent and River migrations are expected to have run before seeding.
	if err := seedTeams(ctx, client, fx); err != nil {
		return fmt.Errorf("seed teams: %w", err)
	}
	if err := seedSystems(ctx, client, fx); err != nil {
		return fmt.Errorf("seed systems: %w", err)
	}
	if err := seedUsers(ctx, client, fx); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedCycles(ctx, client, fx); err != nil {
		return fmt.Errorf("seed cycles: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

func loadFixtures(path string) (*fixtures, error) {
	raw := []byte(defaultFixtures)
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixtures %s: %w", path, err)
		}
		raw = b
	}

	var fx fixtures
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &fx, nil
}

func seedTeams(ctx context.Context, client *ent.Client, fx *fixtures) error {
	for _, t := range fx.Teams {
		_, err := client.Team.Create().
			SetID(t.ID).
			SetName(t.Name).
			SetDescription(t.Description).
			SetAllowsMultipleSystemInterviews(t.AllowsMultipleSystemInterviews).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Team already exists, skipping", zap.String("team", t.Name))
				continue
			}
			return fmt.Errorf("create team %s: %w", t.Name, err)
		}
		logger.Info("Seeded team", zap.String("team", t.Name))
	}
	return nil
}

func seedSystems(ctx context.Context, client *ent.Client, fx *fixtures) error {
	for _, s := range fx.Systems {
		_, err := client.System.Create().
			SetID(s.ID).
			SetName(s.Name).
			SetDescription(s.Description).
			SetTeamID(s.TeamID).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("System already exists, skipping", zap.String("system", s.Name))
				continue
			}
			return fmt.Errorf("create system %s: %w", s.Name, err)
		}
		logger.Info("Seeded system", zap.String("system", s.Name))
	}
	return nil
}

func seedUsers(ctx context.Context, client *ent.Client, fx *fixtures) error {
	for _, u := range fx.Users {
		hash, err := handlers.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Username, err)
		}

		create := client.User.Create().
			SetID(u.ID).
			SetUsername(u.Username).
			SetEmail(u.Email).
			SetDisplayName(u.DisplayName).
			SetPasswordHash(hash).
			SetRole(entuser.Role(u.Role))
		if u.TeamID != "" {
			create.SetTeamID(u.TeamID)
		}
		if u.SystemID != "" {
			create.SetSystemID(u.SystemID)
		}

		if _, err := create.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("User already exists, skipping", zap.String("username", u.Username))
				continue
			}
			return fmt.Errorf("create user %s: %w", u.Username, err)
		}
		logger.Info("Seeded user",
			zap.String("username", u.Username),
			zap.String("role", u.Role),
		)
	}
	return nil
}

func seedCycles(ctx context.Context, client *ent.Client, fx *fixtures) error {
	for _, c := range fx.Cycles {
		start, err := parseDate(c.StartDate)
		if err != nil {
			return fmt.Errorf("cycle %s start_date: %w", c.Name, err)
		}
		end, err := parseDate(c.EndDate)
		if err != nil {
			return fmt.Errorf("cycle %s end_date: %w", c.Name, err)
		}

		_, err = client.ApplicationCycle.Create().
			SetID(c.ID).
			SetName(c.Name).
			SetStartDate(start).
			SetEndDate(end).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Cycle already exists, skipping", zap.String("cycle", c.Name))
				continue
			}
			return fmt.Errorf("create cycle %s: %w", c.Name, err)
		}

		for _, st := range c.Stages {
			stStart, err := parseDate(st.StartDate)
			if err != nil {
				return fmt.Errorf("cycle %s stage %s start_date: %w", c.Name, st.Stage, err)
			}
			stEnd, err := parseDate(st.EndDate)
			if err != nil {
				return fmt.Errorf("cycle %s stage %s end_date: %w", c.Name, st.Stage, err)
			}

			_, err = client.CycleStage.Create().
				SetID(fmt.Sprintf("%s-%s", c.ID, st.Stage)).
				SetStage(entstage.Stage(st.Stage)).
				SetStartDate(stStart).
				SetEndDate(stEnd).
				SetCycleID(c.ID).
				Save(ctx)
			if err != nil {
				if ent.IsConstraintError(err) {
					continue
				}
				return fmt.Errorf("create stage %s for cycle %s: %w", st.Stage, c.Name, err)
			}
		}
		logger.Info("Seeded cycle",
			zap.String("cycle", c.Name),
			zap.Int("stages", len(c.Stages)),
		)
	}
	return nil
}

// parseDate accepts either a bare date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: want YYYY-MM-DD or RFC 3339", s)
	}
	return t.UTC(), nil
}
