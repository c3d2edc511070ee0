// Package coordinator runs race sessions. Each session is owned by one
// Coordinator goroutine that serializes every join, progress and finish
// message, so finish positions follow inbox order and nothing else mutates
// session state.
package coordinator

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/clock"
	"github.com/mcdev12/typerace/go/internal/race/evaluator"
	"github.com/mcdev12/typerace/go/internal/race/events"
	"github.com/mcdev12/typerace/go/internal/race/mover"
	"github.com/mcdev12/typerace/go/internal/random"
)

const inboxSize = 256

// Coordinator owns a single RaceSession.
type Coordinator struct {
	cfg         Config
	session     *models.RaceSession
	clock       *clock.RaceClock
	rng         *rand.Rand
	speeds      SpeedSource
	broadcaster Broadcaster
	sink        ResultSink

	inbox    chan Message
	done     chan struct{}
	snapshot atomic.Pointer[models.RaceSession]

	joinIndex    map[string]int
	joinCounter  int
	movers       map[string]*mover.Mover
	nextPosition int
	seq          uint64

	countdownLeft   int
	countdownTicker clockwork.Ticker
	moverTicker     clockwork.Ticker
	timeoutTimer    clockwork.Timer

	results atomic.Pointer[[]models.RaceResult]
}

// New creates a coordinator in the Lobby state. Call Run to start it.
func New(id uuid.UUID, prompt models.RacePrompt, cfg Config, deps Deps) (*Coordinator, error) {
	cfg = cfg.withDefaults()

	rng, seed, err := random.NewRand(cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to seed session rng: %w", err)
	}
	cfg.Seed = seed

	if prompt.Length == 0 {
		prompt.Length = evaluator.Length(prompt.Text)
	}

	rc := clock.New(deps.Clock)
	speeds := deps.Speeds
	if speeds == nil {
		speeds = mover.NewBands()
	}
	var broadcaster Broadcaster = nopBroadcaster{}
	if deps.Broadcaster != nil {
		broadcaster = deps.Broadcaster
	}

	c := &Coordinator{
		cfg: cfg,
		session: &models.RaceSession{
			ID:           id,
			Status:       models.RaceStatusLobby,
			RaceType:     cfg.RaceType,
			Participants: make(map[string]*models.Participant),
			Prompt:       prompt,
			MaxPlayers:   cfg.MaxPlayers,
			Seed:         seed,
			CreatedAt:    rc.Now(),
		},
		clock:       rc,
		rng:         rng,
		speeds:      speeds,
		broadcaster: broadcaster,
		sink:        deps.Sink,
		inbox:       make(chan Message, inboxSize),
		done:        make(chan struct{}),
		joinIndex:   make(map[string]int),
		movers:      make(map[string]*mover.Mover),
	}
	c.publishSnapshot()
	return c, nil
}

// ID returns the session ID.
func (c *Coordinator) ID() uuid.UUID { return c.session.ID }

// Config returns the effective session configuration.
func (c *Coordinator) Config() Config { return c.cfg }

// Prompt returns the race prompt.
func (c *Coordinator) Prompt() models.RacePrompt { return c.session.Prompt }

// Clock returns the race clock. It is safe for concurrent readers.
func (c *Coordinator) Clock() *clock.RaceClock { return c.clock }

// Snapshot returns the latest immutable copy of the session.
func (c *Coordinator) Snapshot() *models.RaceSession { return c.snapshot.Load() }

// Done is closed when Run returns.
func (c *Coordinator) Done() <-chan struct{} { return c.done }

// Submit queues a message for the session.
func (c *Coordinator) Submit(ctx context.Context, msg Message) error {
	select {
	case <-c.done:
		return ErrSessionClosed
	default:
	}

	select {
	case c.inbox <- msg:
		return nil
	case <-c.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes the inbox and timers until the session ends or ctx is done.
func (c *Coordinator) Run(ctx context.Context) error {
	defer close(c.done)
	defer c.stopTimers()

	log.Info().
		Str("session_id", c.session.ID.String()).
		Str("race_type", c.cfg.RaceType).
		Int64("seed", c.cfg.Seed).
		Msg("race coordinator started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("session_id", c.session.ID.String()).Msg("race coordinator stopping")
			return ctx.Err()
		case msg := <-c.inbox:
			c.handle(ctx, msg)
		case <-tickerChan(c.countdownTicker):
			c.onCountdownTick(ctx)
		case <-tickerChan(c.moverTicker):
			c.onMoverTick(ctx)
		case <-timerChan(c.timeoutTimer):
			c.onTimeout(ctx)
		}

		c.publishSnapshot()
		if c.session.Status.Terminal() {
			log.Info().
				Str("session_id", c.session.ID.String()).
				Str("status", string(c.session.Status)).
				Msg("race coordinator finished")
			return nil
		}
	}
}

// Results returns the final results, or nil until the race finished.
func (c *Coordinator) Results() []models.RaceResult {
	if r := c.results.Load(); r != nil {
		return *r
	}
	return nil
}

func (c *Coordinator) publishSnapshot() {
	c.snapshot.Store(c.session.Clone())
}

func (c *Coordinator) publish(ctx context.Context, eventType events.EventType, target string, payload any) {
	c.seq++
	c.session.Seq = c.seq
	event, err := events.NewRaceEvent(c.session.ID, c.seq, eventType, c.clock.Now(), payload)
	if err != nil {
		log.Error().Err(err).Str("session_id", c.session.ID.String()).Msg("failed to build race event")
		return
	}
	event.Target = target

	if err := c.broadcaster.Broadcast(ctx, event); err != nil {
		log.Warn().
			Err(err).
			Str("session_id", c.session.ID.String()).
			Str("event_type", string(eventType)).
			Msg("failed to broadcast race event")
	}
}

// ordered returns participants in join order.
func (c *Coordinator) ordered() []*models.Participant {
	out := make([]*models.Participant, 0, len(c.session.Participants))
	for _, p := range c.session.Participants {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return c.joinIndex[out[i].ID] < c.joinIndex[out[j].ID]
	})
	return out
}

func (c *Coordinator) allDone() bool {
	for _, p := range c.session.Participants {
		if !p.Done() {
			return false
		}
	}
	return true
}
