package gateway

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/coordinator"
	"github.com/mcdev12/typerace/go/internal/race/events"
)

type staticPrompts struct{ text string }

func (s staticPrompts) NextPrompt(context.Context) (models.RacePrompt, error) {
	return models.RacePrompt{ID: "static", Text: s.text}, nil
}

type testGateway struct {
	server  *httptest.Server
	manager *coordinator.Manager
	clock   *clockwork.FakeClock
	conns   *ConnectionManager
}

func newTestGateway(t *testing.T, prompt string) *testGateway {
	t.Helper()
	fc := clockwork.NewFakeClock()
	cm := NewConnectionManager(DefaultConnectionConfig(), fc)

	cfg := coordinator.DefaultManagerConfig()
	cfg.Defaults.CountdownTicks = 0
	cfg.Defaults.MaxDuration = 0
	manager := coordinator.NewManager(coordinator.Deps{
		Clock:       fc,
		Broadcaster: cm,
		Prompts:     staticPrompts{text: prompt},
	}, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	svc, err := NewService(ctx, DefaultConfig(), cm, manager, fc)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	go cm.Start(ctx)

	mux := http.NewServeMux()
	svc.RegisterRoutes(mux)
	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		cancel()
		manager.Shutdown()
	})
	return &testGateway{server: server, manager: manager, clock: fc, conns: cm}
}

func (g *testGateway) dial(t *testing.T, params url.Values) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(g.server.URL, "http") + "/ws/race?" + params.Encode()
	conn, resp, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		t.Fatalf("dial %s: %v (status %d)", u, err, status)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msgType events.ClientMessageType, data any) {
	t.Helper()
	msg := events.ClientMessage{Type: msgType}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			t.Fatalf("marshal %s: %v", msgType, err)
		}
		msg.Data = raw
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write %s: %v", msgType, err)
	}
}

// readUntil reads events until one of eventType arrives.
func readUntil(t *testing.T, conn *websocket.Conn, eventType events.EventType) *events.RaceEvent {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		var event events.RaceEvent
		if err := conn.ReadJSON(&event); err != nil {
			t.Fatalf("waiting for %s: %v", eventType, err)
		}
		if event.Type == eventType {
			return &event
		}
	}
}

// readProgress reads Progress events until one reports participantID at
// want percent.
func readProgress(t *testing.T, conn *websocket.Conn, participantID string, want float64) events.ProgressPayload {
	t.Helper()
	for {
		event := readUntil(t, conn, events.EventTypeProgress)
		var p events.ProgressPayload
		if err := json.Unmarshal(event.Data, &p); err != nil {
			t.Fatalf("unmarshal progress: %v", err)
		}
		if p.ParticipantID == participantID && math.Abs(p.ProgressPercent-want) < 0.01 {
			return p
		}
	}
}

func TestServerEvaluatedRace(t *testing.T) {
	g := newTestGateway(t, "cat")
	conn := g.dial(t, url.Values{"participant_id": {"p1"}, "display_name": {"Ann"}})

	sync := readUntil(t, conn, events.EventTypeStateSync)
	if sync.Target != "p1" {
		t.Fatalf("expected state sync targeted at p1, got %q", sync.Target)
	}

	send(t, conn, events.ClientReady, events.ReadyData{Ready: true})
	readUntil(t, conn, events.EventTypeRaceStarted)
	g.clock.Advance(10 * time.Second)

	for _, ch := range []string{"c", "x", "a", "t"} {
		send(t, conn, events.ClientKey, events.KeyData{Char: ch})
	}

	finished := readUntil(t, conn, events.EventTypeParticipantFinished)
	var fp events.ParticipantFinishedPayload
	if err := json.Unmarshal(finished.Data, &fp); err != nil {
		t.Fatalf("unmarshal finish: %v", err)
	}
	if fp.ParticipantID != "p1" || fp.Position != 1 {
		t.Fatalf("expected p1 in position 1, got %+v", fp)
	}

	result := readUntil(t, conn, events.EventTypeRaceResult)
	var rp events.RaceResultPayload
	if err := json.Unmarshal(result.Data, &rp); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if len(rp.Results) != 1 {
		t.Fatalf("expected one result, got %d", len(rp.Results))
	}
	r := rp.Results[0]
	if r.Accuracy != 75 || r.RewardAmount != 3 || r.Position != 1 {
		t.Fatalf("expected accuracy 75, reward 3, position 1; got %+v", r)
	}
}

func TestJoinRejectionGoesToRejectedParticipant(t *testing.T) {
	g := newTestGateway(t, "cat")
	cfg := g.manager.Defaults()
	cfg.MaxPlayers = 1
	cfg.ReadyPolicy = coordinator.ReadyPolicyHostStart
	session, err := g.manager.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	id := session.ID().String()

	first := g.dial(t, url.Values{"participant_id": {"p1"}, "session_id": {id}})
	readUntil(t, first, events.EventTypeParticipantJoined)

	second := g.dial(t, url.Values{"participant_id": {"p2"}, "session_id": {id}})
	rejected := readUntil(t, second, events.EventTypeJoinRejected)
	var payload events.JoinRejectedPayload
	if err := json.Unmarshal(rejected.Data, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.ParticipantID != "p2" || payload.Reason != events.RejectCapacityExceeded {
		t.Fatalf("unexpected rejection: %+v", payload)
	}
}

func TestDisconnectLeavesLobby(t *testing.T) {
	g := newTestGateway(t, "cat")
	conn := g.dial(t, url.Values{"participant_id": {"p1"}})
	readUntil(t, conn, events.EventTypeParticipantJoined)

	sessions := g.manager.List()
	if len(sessions) != 1 {
		t.Fatalf("expected one session, got %d", len(sessions))
	}
	session, _ := g.manager.Get(sessions[0].ID)

	conn.Close()

	select {
	case <-session.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("expected session to dissolve after the only participant disconnected")
	}
	if got := session.Snapshot().Status; got != models.RaceStatusDissolved {
		t.Fatalf("expected DISSOLVED, got %s", got)
	}
}

func TestUnknownSessionRejected(t *testing.T) {
	g := newTestGateway(t, "cat")

	resp, err := http.Get(g.server.URL + "/ws/race?session_id=3f8b1c52-0000-4000-8000-000000000000")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	resp, err = http.Get(g.server.URL + "/ws/race?session_id=not-a-uuid")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestStateEndpoints(t *testing.T) {
	g := newTestGateway(t, "cat")
	session, err := g.manager.Open(context.Background(), g.manager.Defaults())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	resp, err := http.Get(g.server.URL + "/api/races/" + session.ID().String() + "/state")
	if err != nil {
		t.Fatalf("GET state: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var state RaceStateResponse
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if state.Session.ID != session.ID() || state.Session.Status != models.RaceStatusLobby {
		t.Fatalf("unexpected state: %+v", state.Session)
	}

	missing, err := http.Get(g.server.URL + "/api/races/3f8b1c52-0000-4000-8000-000000000000/state")
	if err != nil {
		t.Fatalf("GET missing: %v", err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", missing.StatusCode)
	}

	active, err := http.Get(g.server.URL + "/api/races/active")
	if err != nil {
		t.Fatalf("GET active: %v", err)
	}
	defer active.Body.Close()
	var races []RaceSummary
	if err := json.NewDecoder(active.Body).Decode(&races); err != nil {
		t.Fatalf("decode active: %v", err)
	}
	if len(races) != 1 || races[0].SessionID != session.ID().String() {
		t.Fatalf("expected the open lobby listed, got %+v", races)
	}
}

func TestReconnectKeepsTypedPrefix(t *testing.T) {
	g := newTestGateway(t, "abcdef")
	first := g.dial(t, url.Values{"participant_id": {"p1"}, "display_name": {"Ann"}})
	sync := readUntil(t, first, events.EventTypeStateSync)

	send(t, first, events.ClientReady, events.ReadyData{Ready: true})
	readUntil(t, first, events.EventTypeRaceStarted)
	g.clock.Advance(10 * time.Second)

	for _, ch := range []string{"a", "b", "c"} {
		send(t, first, events.ClientKey, events.KeyData{Char: ch})
	}
	readProgress(t, first, "p1", 50)

	// A second connection for the same participant continues the same prefix.
	second := g.dial(t, url.Values{"participant_id": {"p1"}, "session_id": {sync.SessionID}})
	readUntil(t, second, events.EventTypeStateSync)
	send(t, second, events.ClientKey, events.KeyData{Char: "d"})
	if p := readProgress(t, second, "p1", 400.0/6); p.Accuracy != 100 {
		t.Fatalf("expected accuracy 100 after reconnect, got %d", p.Accuracy)
	}

	for _, ch := range []string{"e", "f"} {
		send(t, first, events.ClientKey, events.KeyData{Char: ch})
	}
	result := readUntil(t, second, events.EventTypeRaceResult)
	var rp events.RaceResultPayload
	if err := json.Unmarshal(result.Data, &rp); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if len(rp.Results) != 1 || rp.Results[0].Position != 1 || rp.Results[0].Accuracy != 100 {
		t.Fatalf("expected p1 to finish first with accuracy 100, got %+v", rp.Results)
	}
	if n := g.conns.typing.len(); n != 0 {
		t.Fatalf("expected typing state released after the race, got %d entries", n)
	}
}
