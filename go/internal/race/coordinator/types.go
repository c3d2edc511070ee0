package coordinator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/evaluator"
	"github.com/mcdev12/typerace/go/internal/race/events"
)

var (
	// ErrSessionClosed is returned when submitting to a coordinator that stopped.
	ErrSessionClosed = errors.New("session closed")
	// ErrSessionNotFound is returned for unknown session IDs.
	ErrSessionNotFound = errors.New("session not found")
)

// ReadyPolicy decides when a lobby moves to countdown.
type ReadyPolicy string

const (
	// ReadyPolicyAnyReady starts once one human is ready.
	ReadyPolicyAnyReady ReadyPolicy = "ANY_READY"
	// ReadyPolicyAllReady starts once every participant is ready.
	ReadyPolicyAllReady ReadyPolicy = "ALL_READY"
	// ReadyPolicyHostStart waits for an explicit start from the host.
	ReadyPolicyHostStart ReadyPolicy = "HOST_START"
)

// Config controls a single race session.
type Config struct {
	RaceType          string
	MaxPlayers        int
	MinParticipants   int
	ReadyPolicy       ReadyPolicy
	CountdownTicks    int
	CountdownInterval time.Duration
	ProgressTick      time.Duration
	MaxDuration       time.Duration // 0 disables the race timeout
	MaxPlausibleSpeed float64       // words per minute
	Seed              int64         // 0 draws a fresh seed
	Input             evaluator.Options
}

// DefaultConfig returns the standard five-player race.
func DefaultConfig() Config {
	return Config{
		RaceType:          "quick",
		MaxPlayers:        5,
		MinParticipants:   1,
		ReadyPolicy:       ReadyPolicyAnyReady,
		CountdownTicks:    3,
		CountdownInterval: time.Second,
		ProgressTick:      100 * time.Millisecond,
		MaxDuration:       3 * time.Minute,
		MaxPlausibleSpeed: 250,
		Input:             evaluator.DefaultOptions(),
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.RaceType == "" {
		c.RaceType = d.RaceType
	}
	if c.MaxPlayers <= 0 {
		c.MaxPlayers = d.MaxPlayers
	}
	if c.MinParticipants <= 0 {
		c.MinParticipants = d.MinParticipants
	}
	if c.MinParticipants > c.MaxPlayers {
		c.MinParticipants = c.MaxPlayers
	}
	if c.ReadyPolicy == "" {
		c.ReadyPolicy = d.ReadyPolicy
	}
	if c.CountdownTicks < 0 {
		c.CountdownTicks = 0
	}
	if c.CountdownInterval <= 0 {
		c.CountdownInterval = d.CountdownInterval
	}
	if c.ProgressTick <= 0 {
		c.ProgressTick = d.ProgressTick
	}
	if c.MaxDuration < 0 {
		c.MaxDuration = 0
	}
	if c.MaxPlausibleSpeed <= 0 {
		c.MaxPlausibleSpeed = d.MaxPlausibleSpeed
	}
	if c.Input.Policy == "" {
		c.Input.Policy = d.Input.Policy
	}
	return c
}

// Broadcaster delivers events to session participants. Events with a
// Target go only to that participant.
type Broadcaster interface {
	Broadcast(ctx context.Context, event *events.RaceEvent) error
}

// ResultSink receives race results once a race finishes.
type ResultSink interface {
	RecordResults(ctx context.Context, records []models.RaceRecord) error
}

// PromptProvider supplies the text for a new race.
type PromptProvider interface {
	NextPrompt(ctx context.Context) (models.RacePrompt, error)
}

// SpeedSource picks a speed for a simulated participant.
type SpeedSource interface {
	Draw(faction string, difficulty models.Difficulty, rng *rand.Rand) float64
}

// Deps are the collaborators shared by every coordinator.
type Deps struct {
	Clock       clockwork.Clock
	Broadcaster Broadcaster
	Sink        ResultSink
	Prompts     PromptProvider
	Speeds      SpeedSource
}

// Message is anything a coordinator accepts in its inbox.
type Message interface {
	participant() string
}

// Join asks to add a participant to the lobby.
type Join struct {
	ParticipantID string
	DisplayName   string
	Kind          models.ParticipantKind
	CosmeticRef   string
	Faction       string
	Difficulty    models.Difficulty
}

// Ready toggles a participant's ready flag in the lobby.
type Ready struct {
	ParticipantID string
	Ready         bool
}

// Leave reports a departure or a dropped connection.
type Leave struct {
	ParticipantID string
	Reason        string
}

// StartRequest asks to start the countdown. Only the host may start
// unless Force is set by an administrative caller.
type StartRequest struct {
	ParticipantID string
	Force         bool
}

// Progress reports a participant's latest metrics.
type Progress struct {
	ParticipantID   string
	ProgressPercent float64
	Speed           float64
	Accuracy        int
	ErrorCount      int
	TotalKeystrokes int
}

// Finish reports that a participant completed the prompt. ReportedElapsed
// is informational; finish order and time come from the coordinator.
type Finish struct {
	ParticipantID   string
	ReportedElapsed float64
	// Accuracy is nil when the finish carries none; the last reported
	// accuracy is kept then.
	Accuracy        *int
}

func (m Join) participant() string         { return m.ParticipantID }
func (m Ready) participant() string        { return m.ParticipantID }
func (m Leave) participant() string        { return m.ParticipantID }
func (m StartRequest) participant() string { return m.ParticipantID }
func (m Progress) participant() string     { return m.ParticipantID }
func (m Finish) participant() string       { return m.ParticipantID }

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(context.Context, *events.RaceEvent) error { return nil }

// Broadcasters fans each event out to every broadcaster in order.
type Broadcasters []Broadcaster

func (bs Broadcasters) Broadcast(ctx context.Context, event *events.RaceEvent) error {
	var errs []error
	for _, b := range bs {
		if err := b.Broadcast(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
