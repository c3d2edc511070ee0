package coordinator

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/events"
)

type recorder struct {
	mu     sync.Mutex
	events []*events.RaceEvent
	ch     chan *events.RaceEvent
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan *events.RaceEvent, 4096)}
}

func (r *recorder) Broadcast(_ context.Context, event *events.RaceEvent) error {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
	select {
	case r.ch <- event:
	default:
	}
	return nil
}

func (r *recorder) ofType(t events.EventType) []*events.RaceEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*events.RaceEvent
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// waitFor blocks until an event of type t arrives on the channel.
func (r *recorder) waitFor(t *testing.T, eventType events.EventType) *events.RaceEvent {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case e := <-r.ch:
			if e.Type == eventType {
				return e
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s event", eventType)
			return nil
		}
	}
}

type sinkRecorder struct {
	mu      sync.Mutex
	calls   int
	records []models.RaceRecord
}

func (s *sinkRecorder) RecordResults(_ context.Context, records []models.RaceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.records = append(s.records, records...)
	return nil
}

type fixedSpeeds map[string]float64

func (f fixedSpeeds) Draw(faction string, _ models.Difficulty, _ *rand.Rand) float64 {
	return f[faction]
}

type staticPrompts struct{ text string }

func (s staticPrompts) NextPrompt(context.Context) (models.RacePrompt, error) {
	return models.RacePrompt{ID: "static", Text: s.text}, nil
}

type harness struct {
	c     *Coordinator
	clock *clockwork.FakeClock
	rec   *recorder
	sink  *sinkRecorder
	ctx   context.Context
}

func newHarness(t *testing.T, cfg Config, promptLen int, speeds SpeedSource) *harness {
	t.Helper()
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	fc := clockwork.NewFakeClock()
	rec := newRecorder()
	sink := &sinkRecorder{}

	c, err := New(uuid.New(), models.RacePrompt{ID: "p", Text: strings.Repeat("a", promptLen)}, cfg, Deps{
		Clock:       fc,
		Broadcaster: rec,
		Sink:        sink,
		Speeds:      speeds,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return &harness{c: c, clock: fc, rec: rec, sink: sink, ctx: context.Background()}
}

// hostStartConfig starts racing as soon as the host asks, with no countdown.
func hostStartConfig() Config {
	cfg := DefaultConfig()
	cfg.ReadyPolicy = ReadyPolicyHostStart
	cfg.CountdownTicks = 0
	cfg.MaxDuration = 0
	return cfg
}

func (h *harness) join(ids ...string) {
	for _, id := range ids {
		h.c.handle(h.ctx, Join{ParticipantID: id, DisplayName: strings.ToUpper(id), Kind: models.ParticipantKindHuman})
	}
}

func (h *harness) start(t *testing.T) {
	t.Helper()
	h.c.handle(h.ctx, StartRequest{ParticipantID: h.c.session.HostID})
	if h.c.session.Status != models.RaceStatusActive {
		t.Fatalf("expected ACTIVE after start, got %s", h.c.session.Status)
	}
}

func (h *harness) position(t *testing.T, id string) int {
	t.Helper()
	p, ok := h.c.session.Participants[id]
	if !ok {
		t.Fatalf("participant %s not found", id)
	}
	if p.Position == nil {
		return 0
	}
	return *p.Position
}
