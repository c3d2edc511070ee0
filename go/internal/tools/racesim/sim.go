package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/coordinator"
	"github.com/mcdev12/typerace/go/internal/race/events"
	"github.com/mcdev12/typerace/go/internal/race/mover"
	"github.com/mcdev12/typerace/go/internal/race/prompt"
	"github.com/mcdev12/typerace/go/internal/race/results"
)

// stepWait bounds how long one clock step waits for the coordinator.
const stepWait = 2 * time.Second

type ghost struct {
	ID         string
	Faction    string
	Difficulty models.Difficulty
}

type simConfig struct {
	Seed          int64
	Ghosts        []ghost
	PromptText    string
	PromptWords   int
	FactionsPath  string
	Countdown     int
	Tick          time.Duration
	MaxDuration   time.Duration
	Sink          results.Sink
	VerboseEvents bool
}

type simResult struct {
	SessionID    uuid.UUID           `json:"session_id"`
	Seed         int64               `json:"seed"`
	PromptLength int                 `json:"prompt_length"`
	Results      []models.RaceResult `json:"results"`
}

type eventLogger struct{}

func (eventLogger) Broadcast(_ context.Context, event *events.RaceEvent) error {
	log.Debug().
		Uint64("seq", event.Seq).
		Str("event_type", string(event.Type)).
		RawJSON("data", event.Data).
		Msg("race event")
	return nil
}

// simulate runs one race to completion on a fake clock, stepping the clock
// one tick at a time and waiting for the coordinator to react to each tick.
func simulate(ctx context.Context, cfg simConfig) (*simResult, error) {
	if cfg.Tick <= 0 {
		return nil, errors.New("tick must be positive")
	}

	p, err := racePrompt(ctx, cfg)
	if err != nil {
		return nil, err
	}
	bands := mover.NewBands()
	if cfg.FactionsPath != "" {
		if _, statErr := os.Stat(cfg.FactionsPath); statErr == nil {
			if bands, err = mover.LoadBands(cfg.FactionsPath); err != nil {
				return nil, err
			}
		}
	}

	fc := clockwork.NewFakeClock()
	deps := coordinator.Deps{
		Clock:  fc,
		Speeds: bands,
	}
	if cfg.VerboseEvents {
		deps.Broadcaster = eventLogger{}
	}
	if cfg.Sink != nil {
		deps.Sink = cfg.Sink
	}

	raceCfg := coordinator.DefaultConfig()
	raceCfg.RaceType = "sim"
	raceCfg.MaxPlayers = max(len(cfg.Ghosts), 1)
	raceCfg.ReadyPolicy = coordinator.ReadyPolicyHostStart
	raceCfg.CountdownTicks = cfg.Countdown
	raceCfg.ProgressTick = cfg.Tick
	raceCfg.MaxDuration = cfg.MaxDuration
	raceCfg.Seed = cfg.Seed

	session, err := coordinator.New(uuid.New(), p, raceCfg, deps)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		if err := session.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("simulated race failed")
		}
	}()

	for _, g := range cfg.Ghosts {
		if err := session.Submit(ctx, coordinator.Join{
			ParticipantID: g.ID,
			DisplayName:   fmt.Sprintf("%s (%s)", g.ID, g.Faction),
			Kind:          models.ParticipantKindSimulated,
			Faction:       g.Faction,
			Difficulty:    g.Difficulty,
		}); err != nil {
			return nil, fmt.Errorf("failed to add %s: %w", g.ID, err)
		}
	}
	if err := session.Submit(ctx, coordinator.StartRequest{Force: true}); err != nil {
		return nil, fmt.Errorf("failed to start race: %w", err)
	}
	if err := waitFor(ctx, session, func(s *models.RaceSession) bool {
		return s.Status != models.RaceStatusLobby
	}); err != nil {
		return nil, fmt.Errorf("race never left the lobby: %w", err)
	}

	for {
		snap := session.Snapshot()
		if snap.Status.Terminal() {
			break
		}
		step := cfg.Tick
		if snap.Status == models.RaceStatusCountdown {
			step = raceCfg.CountdownInterval
		}
		fc.Advance(step)

		// Every tick emits at least one event while the race is running.
		if err := waitFor(ctx, session, func(s *models.RaceSession) bool {
			return s.Seq != snap.Seq || s.Status.Terminal()
		}); err != nil {
			return nil, err
		}
	}

	select {
	case <-session.Done():
	case <-time.After(stepWait):
		return nil, errors.New("coordinator did not stop")
	}

	snap := session.Snapshot()
	return &simResult{
		SessionID:    snap.ID,
		Seed:         snap.Seed,
		PromptLength: snap.Prompt.Length,
		Results:      session.Results(),
	}, nil
}

func racePrompt(ctx context.Context, cfg simConfig) (models.RacePrompt, error) {
	if cfg.PromptText != "" {
		return models.RacePrompt{ID: "cli", Text: cfg.PromptText, Source: "cli"}, nil
	}
	genCfg := prompt.DefaultGeneratorConfig()
	genCfg.Seed = cfg.Seed
	if cfg.PromptWords > 0 {
		genCfg.Count = cfg.PromptWords
	}
	gen, err := prompt.NewGenerator(genCfg)
	if err != nil {
		return models.RacePrompt{}, err
	}
	return gen.NextPrompt(ctx)
}

func waitFor(ctx context.Context, session *coordinator.Coordinator, cond func(*models.RaceSession) bool) error {
	deadline := time.Now().Add(stepWait)
	for {
		if cond(session.Snapshot()) {
			return nil
		}
		if time.Now().After(deadline) {
			return errors.New("timed out waiting for coordinator")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Millisecond):
		}
	}
}
