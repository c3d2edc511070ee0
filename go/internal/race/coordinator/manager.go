package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/typerace/go/internal/models"
)

// ManagerConfig controls session lifetime.
type ManagerConfig struct {
	Defaults        Config
	Retention       time.Duration // how long ended sessions stay queryable
	CleanupInterval time.Duration
}

// DefaultManagerConfig returns the standard manager settings.
func DefaultManagerConfig() ManagerConfig {
	return ManagerConfig{
		Defaults:        DefaultConfig(),
		Retention:       5 * time.Minute,
		CleanupInterval: 30 * time.Second,
	}
}

// Manager owns every live session and routes messages to them.
type Manager struct {
	deps   Deps
	config ManagerConfig

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Coordinator

	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewManager creates a session manager.
func NewManager(deps Deps, config ManagerConfig) *Manager {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		deps:     deps,
		config:   config,
		sessions: make(map[uuid.UUID]*Coordinator),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Defaults returns the configuration used for auto-formed sessions.
func (m *Manager) Defaults() Config { return m.config.Defaults }

// Open creates a session with a fresh prompt and starts its coordinator.
func (m *Manager) Open(ctx context.Context, cfg Config) (*Coordinator, error) {
	if m.deps.Prompts == nil {
		return nil, errors.New("no prompt provider configured")
	}
	prompt, err := m.deps.Prompts.NextPrompt(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}
	return m.OpenWithPrompt(cfg, prompt)
}

// OpenWithPrompt creates a session for a known prompt.
func (m *Manager) OpenWithPrompt(cfg Config, prompt models.RacePrompt) (*Coordinator, error) {
	c, err := New(uuid.New(), prompt, cfg, m.deps)
	if err != nil {
		return nil, fmt.Errorf("failed to create coordinator: %w", err)
	}

	m.mu.Lock()
	m.sessions[c.ID()] = c
	m.mu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := c.Run(m.ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Str("session_id", c.ID().String()).Msg("race coordinator failed")
		}
	}()

	log.Info().
		Str("session_id", c.ID().String()).
		Str("prompt_id", prompt.ID).
		Int("prompt_length", c.Prompt().Length).
		Msg("race session opened")

	return c, nil
}

// Lobby returns the oldest lobby of the default race type with free
// capacity, opening a new one when none is available.
func (m *Manager) Lobby(ctx context.Context) (*Coordinator, error) {
	if c := m.openLobby(m.config.Defaults.RaceType); c != nil {
		return c, nil
	}
	return m.Open(ctx, m.config.Defaults)
}

// AutoJoin places a participant into a lobby picked by Lobby. Two callers
// may race for the last seat; the loser receives JoinRejected.
func (m *Manager) AutoJoin(ctx context.Context, join Join) (*Coordinator, error) {
	c, err := m.Lobby(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.Submit(ctx, join); err != nil {
		return nil, fmt.Errorf("failed to submit join: %w", err)
	}
	return c, nil
}

func (m *Manager) openLobby(raceType string) *Coordinator {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var best *Coordinator
	var bestCreated time.Time
	for _, c := range m.sessions {
		snap := c.Snapshot()
		if snap.Status != models.RaceStatusLobby || snap.RaceType != raceType {
			continue
		}
		if len(snap.Participants) >= snap.MaxPlayers {
			continue
		}
		if best == nil || snap.CreatedAt.Before(bestCreated) {
			best, bestCreated = c, snap.CreatedAt
		}
	}
	return best
}

// Get returns the coordinator for a session.
func (m *Manager) Get(id uuid.UUID) (*Coordinator, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.sessions[id]
	return c, ok
}

// Submit routes a message to a session.
func (m *Manager) Submit(ctx context.Context, id uuid.UUID, msg Message) error {
	c, ok := m.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return c.Submit(ctx, msg)
}

// List returns snapshots of all sessions, newest first.
func (m *Manager) List() []*models.RaceSession {
	m.mu.RLock()
	out := make([]*models.RaceSession, 0, len(m.sessions))
	for _, c := range m.sessions {
		out = append(out, c.Snapshot())
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// RunCleanup removes ended sessions past retention until ctx is done.
func (m *Manager) RunCleanup(ctx context.Context) {
	interval := m.config.CleanupInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := m.deps.Clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			m.cleanup()
		}
	}
}

func (m *Manager) cleanup() int {
	now := m.deps.Clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, c := range m.sessions {
		snap := c.Snapshot()
		if !snap.Status.Terminal() || snap.FinishedAt == nil {
			continue
		}
		if now.Sub(*snap.FinishedAt) < m.config.Retention {
			continue
		}
		delete(m.sessions, id)
		removed++
	}
	if removed > 0 {
		log.Debug().Int("removed", removed).Int("remaining", len(m.sessions)).Msg("ended sessions cleaned up")
	}
	return removed
}

// Shutdown stops all coordinators and waits for them to exit. It is safe
// to call more than once.
func (m *Manager) Shutdown() {
	m.stopOnce.Do(func() {
		m.cancel()
		m.wg.Wait()
		log.Info().Msg("race manager stopped")
	})
}
