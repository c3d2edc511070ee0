package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/typerace/go/internal/dbconfig"
	"github.com/mcdev12/typerace/go/internal/race/api"
	"github.com/mcdev12/typerace/go/internal/race/coordinator"
	"github.com/mcdev12/typerace/go/internal/race/gateway"
	"github.com/mcdev12/typerace/go/internal/race/prompt"
	"github.com/mcdev12/typerace/go/internal/race/publisher"
	"github.com/mcdev12/typerace/go/internal/race/results"
)

type Services struct {
	Manager     *coordinator.Manager
	Connections *gateway.ConnectionManager
	Gateway     *gateway.Service
	Admin       *api.Service
	Publisher   *publisher.JetStreamPublisher // nil unless NATS is enabled

	closers []io.Closer
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func setupServices(ctx context.Context, cfg *Config) (_ *Services, err error) {
	// Wire up dependency injection chain
	// Storage → Prompts/Sinks → Broadcasters → Manager → Gateway/API
	s := &Services{}
	defer func() {
		if err != nil {
			s.Close()
		}
	}()

	clock := clockwork.NewRealClock()

	bands, err := loadBands(cfg.FactionsPath)
	if err != nil {
		return nil, err
	}

	var db *sql.DB
	var pool *pgxpool.Pool
	needsPostgres := cfg.ResultsPostgres || cfg.PromptSource == "postgres"
	if needsPostgres {
		dbCfg := dbconfig.NewConfigFromEnv()
		if db, err = setupDatabase(ctx, dbCfg); err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db)
		if pool, err = setupPool(ctx, dbCfg); err != nil {
			return nil, err
		}
		s.closers = append(s.closers, closerFunc(func() error { pool.Close(); return nil }))
	}

	// Prompts
	genCfg := prompt.DefaultGeneratorConfig()
	genCfg.Count = cfg.PromptWords
	generator, err := prompt.NewGenerator(genCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt generator: %w", err)
	}
	var prompts coordinator.PromptProvider = generator
	if cfg.PromptSource == "postgres" {
		prompts = prompt.Fallback{prompt.NewRepository(pool), generator}
	}

	// Result sinks
	var sinks results.MultiSink
	if cfg.ResultsPostgres {
		repo := results.NewRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			return nil, err
		}
		sinks = append(sinks, repo)
	}
	if cfg.SQLitePath != "" {
		store, err := results.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open results store: %w", err)
		}
		s.closers = append(s.closers, store)
		sinks = append(sinks, store)
	}

	// Broadcast: local websocket clients first, then JetStream for other nodes.
	s.Connections = gateway.NewConnectionManager(gateway.DefaultConnectionConfig(), clock)
	broadcasters := coordinator.Broadcasters{s.Connections}
	if cfg.NATSEnabled {
		pubCfg := publisher.DefaultJetStreamConfig()
		pubCfg.URL = cfg.NATSURL
		if s.Publisher, err = publisher.NewJetStreamPublisher(ctx, pubCfg); err != nil {
			return nil, fmt.Errorf("failed to create publisher: %w", err)
		}
		s.closers = append(s.closers, s.Publisher)
		broadcasters = append(broadcasters, s.Publisher)
		sinks = append(sinks, s.Publisher)
	}

	deps := coordinator.Deps{
		Clock:       clock,
		Broadcaster: broadcasters,
		Prompts:     prompts,
		Speeds:      bands,
	}
	if len(sinks) > 0 {
		deps.Sink = sinks
	}
	s.Manager = coordinator.NewManager(deps, cfg.Manager)

	gwCfg := gateway.DefaultConfig()
	gwCfg.ConsumeJetStream = cfg.NATSEnabled
	gwCfg.JetStreamConfig.URL = cfg.NATSURL
	gwCfg.JetStreamConfig.ConsumerName = "race-gateway-" + cfg.NodeID
	if s.Gateway, err = gateway.NewService(ctx, gwCfg, s.Connections, s.Manager, clock); err != nil {
		return nil, err
	}

	s.Admin = api.NewService(s.Manager)

	log.Info().
		Str("prompt_source", cfg.PromptSource).
		Int("result_sinks", len(sinks)).
		Bool("nats", cfg.NATSEnabled).
		Int("factions", len(bands.Factions())).
		Msg("services initialized")
	return s, nil
}

// Run starts the background workers and blocks until ctx is done.
func (s *Services) Run(ctx context.Context) {
	go s.Manager.RunCleanup(ctx)
	if s.Publisher != nil {
		go func() {
			if err := s.Publisher.Run(ctx); err != nil {
				log.Error().Err(err).Msg("race event publisher failed")
			}
		}()
	}
	if err := s.Gateway.Start(ctx); err != nil {
		log.Error().Err(err).Msg("race gateway failed")
	}
}

// Close stops every session and releases storage and NATS connections.
func (s *Services) Close() {
	if s.Manager != nil {
		s.Manager.Shutdown()
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			log.Error().Err(err).Msg("failed to close resource")
		}
	}
	s.closers = nil
}
