package gateway

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/events"
)

func mustEvent(t *testing.T, sessionID uuid.UUID, seq uint64, eventType events.EventType, payload any) *events.RaceEvent {
	t.Helper()
	e, err := events.NewRaceEvent(sessionID, seq, eventType, time.Unix(0, 0), payload)
	if err != nil {
		t.Fatalf("NewRaceEvent: %v", err)
	}
	return e
}

func TestProcessEventIsIdempotent(t *testing.T) {
	m := NewRaceStateManager()
	id := uuid.New()

	stream := []*events.RaceEvent{
		mustEvent(t, id, 1, events.EventTypeParticipantJoined, events.ParticipantJoinedPayload{
			Participant: models.Participant{ID: "p1", DisplayName: "Ann", Kind: models.ParticipantKindHuman, Status: models.ParticipantStatusRacing},
			HostID:      "p1",
		}),
		mustEvent(t, id, 2, events.EventTypeRaceStarted, events.RaceStartedPayload{
			Prompt:         models.RacePrompt{ID: "x", Text: "cat", Length: 3},
			StartTimestamp: time.Unix(100, 0),
		}),
		mustEvent(t, id, 3, events.EventTypeProgress, events.ProgressPayload{ParticipantID: "p1", ProgressPercent: 33.3, Speed: 20, Accuracy: 100}),
		mustEvent(t, id, 4, events.EventTypeParticipantFinished, events.ParticipantFinishedPayload{ParticipantID: "p1", Position: 1, FinishTime: 4.5, Speed: 8}),
	}

	for _, e := range stream {
		applied, err := m.ProcessEvent(e)
		if err != nil || !applied {
			t.Fatalf("expected seq %d applied, got applied=%v err=%v", e.Seq, applied, err)
		}
	}
	first, _ := m.GetState(id)

	// Redeliver everything, including an older progress after the finish.
	for _, e := range stream {
		applied, err := m.ProcessEvent(e)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if applied {
			t.Fatalf("expected redelivered seq %d to be dropped", e.Seq)
		}
	}
	second, _ := m.GetState(id)

	p1 := second.Participants["p1"]
	if p1.Position != 1 || p1.ProgressPercent != 100 || p1.Status != models.ParticipantStatusFinished {
		t.Fatalf("unexpected participant state after redelivery: %+v", p1)
	}
	if second.LastSeq != first.LastSeq || second.Status != models.RaceStatusActive {
		t.Fatalf("expected state unchanged by redelivery, got seq=%d status=%s", second.LastSeq, second.Status)
	}
}

func TestProcessEventLifecycle(t *testing.T) {
	m := NewRaceStateManager()
	id := uuid.New()

	seq := uint64(0)
	apply := func(eventType events.EventType, payload any) {
		t.Helper()
		seq++
		if _, err := m.ProcessEvent(mustEvent(t, id, seq, eventType, payload)); err != nil {
			t.Fatalf("ProcessEvent(%s): %v", eventType, err)
		}
	}

	apply(events.EventTypeParticipantJoined, events.ParticipantJoinedPayload{Participant: models.Participant{ID: "p1"}, HostID: "p1"})
	apply(events.EventTypeParticipantJoined, events.ParticipantJoinedPayload{Participant: models.Participant{ID: "p2"}, HostID: "p1"})
	apply(events.EventTypeReadyChanged, events.ReadyChangedPayload{ParticipantID: "p2", Ready: true})
	apply(events.EventTypeCountdownStarted, events.CountdownStartedPayload{Ticks: 3})
	apply(events.EventTypeCountdownTick, events.CountdownTickPayload{Remaining: 2})

	state, ok := m.GetState(id)
	if !ok {
		t.Fatal("expected state to exist")
	}
	if state.Status != models.RaceStatusCountdown || state.Countdown != 2 {
		t.Fatalf("expected countdown at 2, got %s/%d", state.Status, state.Countdown)
	}
	if !state.Participants["p2"].Ready {
		t.Fatal("expected p2 ready")
	}

	apply(events.EventTypeParticipantLeft, events.ParticipantLeftPayload{ParticipantID: "p1", HostID: "p2"})
	apply(events.EventTypeSessionDissolved, events.SessionDissolvedPayload{Reason: "not enough participants"})

	state, _ = m.GetState(id)
	if state.Status != models.RaceStatusDissolved || state.HostID != "p2" {
		t.Fatalf("expected dissolved with host p2, got %s host=%q", state.Status, state.HostID)
	}
	if _, ok := state.Participants["p1"]; ok {
		t.Fatal("expected p1 removed")
	}

	m.RemoveState(id)
	if _, ok := m.GetState(id); ok {
		t.Fatal("expected state removed")
	}
}

func TestPruneDropsEndedSessions(t *testing.T) {
	m := NewRaceStateManager()
	ended, live := uuid.New(), uuid.New()
	endedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	dissolved := mustEvent(t, ended, 1, events.EventTypeSessionDissolved, events.SessionDissolvedPayload{Reason: "empty"})
	dissolved.Timestamp = endedAt
	if _, err := m.ProcessEvent(dissolved); err != nil {
		t.Fatalf("ProcessEvent: %v", err)
	}
	if _, err := m.ProcessEvent(mustEvent(t, live, 1, events.EventTypeParticipantJoined, events.ParticipantJoinedPayload{
		Participant: models.Participant{ID: "p1"},
	})); err != nil {
		t.Fatalf("ProcessEvent: %v", err)
	}

	if n := m.Prune(endedAt); n != 0 {
		t.Fatalf("expected nothing pruned at the end time, got %d", n)
	}
	if n := m.Prune(endedAt.Add(time.Minute)); n != 1 {
		t.Fatalf("expected one session pruned, got %d", n)
	}
	if _, ok := m.GetState(ended); ok {
		t.Fatal("expected ended session forgotten")
	}
	if _, ok := m.GetState(live); !ok {
		t.Fatal("expected live session kept")
	}
}

func TestGetStateReturnsCopy(t *testing.T) {
	m := NewRaceStateManager()
	id := uuid.New()
	if _, err := m.ProcessEvent(mustEvent(t, id, 1, events.EventTypeParticipantJoined, events.ParticipantJoinedPayload{
		Participant: models.Participant{ID: "p1", DisplayName: "Ann"},
	})); err != nil {
		t.Fatalf("ProcessEvent: %v", err)
	}

	state, _ := m.GetState(id)
	state.Participants["p1"].DisplayName = "changed"

	again, _ := m.GetState(id)
	if again.Participants["p1"].DisplayName != "Ann" {
		t.Fatal("expected folded state to be unaffected by caller mutation")
	}
}

func TestMessageLimiter(t *testing.T) {
	fc := clockwork.NewFakeClock()
	b := newMessageLimiter(fc, 2, 3)

	for i := 0; i < 3; i++ {
		if !b.Allow() {
			t.Fatalf("expected burst token %d to be allowed", i)
		}
	}
	if b.Allow() {
		t.Fatal("expected empty bucket to deny")
	}

	fc.Advance(500 * time.Millisecond)
	if !b.Allow() {
		t.Fatal("expected one token after refill")
	}
	if b.Allow() {
		t.Fatal("expected bucket empty again")
	}

	fc.Advance(time.Hour)
	for i := 0; i < 3; i++ {
		if !b.Allow() {
			t.Fatal("expected refill capped at burst")
		}
	}
	if b.Allow() {
		t.Fatal("expected refill not to exceed burst")
	}

	unlimited := newMessageLimiter(fc, 0, 3)
	if unlimited != nil || !unlimited.Allow() {
		t.Fatal("expected a zero rate to disable limiting")
	}
}
