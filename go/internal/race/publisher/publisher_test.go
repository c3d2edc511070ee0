package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/events"
)

type fakeJetStream struct {
	mu       sync.Mutex
	failures int
	msgs     []*nats.Msg
	calls    int
	received chan *nats.Msg
}

func (f *fakeJetStream) PublishMsg(_ context.Context, msg *nats.Msg, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failures > 0 {
		f.failures--
		return nil, errors.New("nats: timeout")
	}
	f.msgs = append(f.msgs, msg)
	if f.received != nil {
		f.received <- msg
	}
	return &jetstream.PubAck{Stream: "RACE_EVENTS", Sequence: uint64(len(f.msgs))}, nil
}

func testConfig() JetStreamConfig {
	cfg := DefaultJetStreamConfig()
	cfg.RetryDelay = time.Millisecond
	cfg.QueueSize = 2
	return cfg
}

func TestRunPublishesQueuedEvents(t *testing.T) {
	js := &fakeJetStream{received: make(chan *nats.Msg, 4)}
	p := newPublisher(js, testConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	sessionID := uuid.New()
	event, err := events.NewRaceEvent(sessionID, 7, events.EventTypeParticipantFinished, time.Now(), events.ParticipantFinishedPayload{
		ParticipantID: "p1",
		Position:      1,
	})
	if err != nil {
		t.Fatalf("NewRaceEvent: %v", err)
	}
	if err := p.Broadcast(ctx, event); err != nil {
		t.Fatalf("Broadcast: %v", err)
	}

	var msg *nats.Msg
	select {
	case msg = <-js.received:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for publish")
	}

	if msg.Subject != "race.events.ParticipantFinished" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if msg.Header.Get("Session-ID") != sessionID.String() || msg.Header.Get("Event-Seq") != "7" {
		t.Fatalf("unexpected headers %v", msg.Header)
	}
	var decoded events.RaceEvent
	if err := json.Unmarshal(msg.Data, &decoded); err != nil {
		t.Fatalf("unmarshal published event: %v", err)
	}
	if decoded.ID != event.ID || decoded.Seq != 7 {
		t.Fatalf("expected published event to round-trip, got %+v", decoded)
	}
}

func TestBroadcastDropsWhenQueueFull(t *testing.T) {
	p := newPublisher(&fakeJetStream{}, testConfig(), nil)
	ctx := context.Background()
	event := &events.RaceEvent{ID: "e", SessionID: uuid.New().String(), Type: events.EventTypeProgress}

	for i := 0; i < 2; i++ {
		if err := p.Broadcast(ctx, event); err != nil {
			t.Fatalf("Broadcast %d: %v", i, err)
		}
	}
	if err := p.Broadcast(ctx, event); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
}

func TestRecordResultsRetries(t *testing.T) {
	js := &fakeJetStream{failures: 2}
	p := newPublisher(js, testConfig(), nil)

	sessionID := uuid.New()
	records := []models.RaceRecord{
		{Result: models.RaceResult{ParticipantID: "p1", Position: 1, RewardAmount: 120}, SessionID: sessionID, RaceType: "quick"},
		{Result: models.RaceResult{ParticipantID: "p2", DNF: true}, SessionID: sessionID, RaceType: "quick"},
	}
	if err := p.RecordResults(context.Background(), records); err != nil {
		t.Fatalf("RecordResults: %v", err)
	}

	if js.calls != 3 || len(js.msgs) != 1 {
		t.Fatalf("expected 3 attempts and 1 message, got %d attempts and %d messages", js.calls, len(js.msgs))
	}
	msg := js.msgs[0]
	if msg.Subject != "race.results."+sessionID.String() {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	var decoded []models.RaceRecord
	if err := json.Unmarshal(msg.Data, &decoded); err != nil {
		t.Fatalf("unmarshal results: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Result.RewardAmount != 120 {
		t.Fatalf("unexpected records %+v", decoded)
	}
}

func TestRecordResultsGivesUp(t *testing.T) {
	js := &fakeJetStream{failures: 10}
	p := newPublisher(js, testConfig(), nil)

	err := p.RecordResults(context.Background(), []models.RaceRecord{{SessionID: uuid.New()}})
	if err == nil {
		t.Fatal("expected error after retries exhausted")
	}
	if want := testConfig().MaxRetries + 1; js.calls != want {
		t.Fatalf("expected %d attempts, got %d", want, js.calls)
	}
}
