package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	racev1 "github.com/mcdev12/typerace/go/internal/genproto/race/v1"
	"github.com/mcdev12/typerace/go/internal/genproto/race/v1/racev1connect"
	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/coordinator"
)

type staticPrompts struct{}

func (staticPrompts) NextPrompt(context.Context) (models.RacePrompt, error) {
	return models.RacePrompt{ID: "static", Text: "the quick brown fox"}, nil
}

type testAPI struct {
	manager *coordinator.Manager
	client  racev1connect.RaceAdminServiceClient
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	cfg := coordinator.DefaultManagerConfig()
	cfg.Defaults.ReadyPolicy = coordinator.ReadyPolicyHostStart
	manager := coordinator.NewManager(coordinator.Deps{
		Clock:   clockwork.NewFakeClock(),
		Prompts: staticPrompts{},
	}, cfg)

	mux := http.NewServeMux()
	mux.Handle(racev1connect.NewRaceAdminServiceHandler(NewService(manager)))
	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		manager.Shutdown()
	})
	return &testAPI{
		manager: manager,
		client:  racev1connect.NewRaceAdminServiceClient(server.Client(), server.URL),
	}
}

func waitForStatus(t *testing.T, session *coordinator.Coordinator, want models.RaceStatus) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if session.Snapshot().Status == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected status %s, got %s", want, session.Snapshot().Status)
}

func TestCreateGhostRaceAndForceStart(t *testing.T) {
	a := newTestAPI(t)
	ctx := context.Background()
	ticks := int32(2)

	created, err := a.client.CreateRace(ctx, connect.NewRequest(&racev1.CreateRaceRequest{
		MaxPlayers:     3,
		CountdownTicks: &ticks,
		PromptText:     "  ghost text  ",
		Seed:           11,
	}))
	if err != nil {
		t.Fatalf("CreateRace: %v", err)
	}
	snap := created.Msg.GetSession()
	if snap.GetStatus() != string(models.RaceStatusLobby) || snap.GetMaxPlayers() != 3 || snap.GetSeed() != 11 {
		t.Fatalf("unexpected session %v", snap)
	}
	if snap.GetPrompt().GetText() != "ghost text" || snap.GetPrompt().GetLength() != int32(len("ghost text")) {
		t.Fatalf("expected trimmed custom prompt, got %v", snap.GetPrompt())
	}
	if snap.GetCreatedAt() == nil || snap.GetStartTimestamp() != nil {
		t.Fatalf("expected created_at only, got %v / %v", snap.GetCreatedAt(), snap.GetStartTimestamp())
	}

	ghost, err := a.client.AddGhost(ctx, connect.NewRequest(&racev1.AddGhostRequest{
		SessionId:  snap.GetId(),
		Faction:    "red",
		Difficulty: "hard",
	}))
	if err != nil {
		t.Fatalf("AddGhost: %v", err)
	}
	ghostID := ghost.Msg.GetParticipantId()
	if ghostID == "" {
		t.Fatal("expected a generated ghost id")
	}

	session, ok := a.manager.Get(uuid.MustParse(snap.GetId()))
	if !ok {
		t.Fatal("session missing from manager")
	}
	deadline := time.Now().Add(2 * time.Second)
	for len(session.Snapshot().Participants) == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	p := session.Snapshot().Participants[ghostID]
	if p == nil || p.Kind != models.ParticipantKindSimulated || p.Difficulty != models.DifficultyHard {
		t.Fatalf("expected hard simulated ghost, got %+v", p)
	}

	if _, err := a.client.StartRace(ctx, connect.NewRequest(&racev1.StartRaceRequest{
		SessionId: snap.GetId(),
		Force:     true,
	})); err != nil {
		t.Fatalf("StartRace: %v", err)
	}
	waitForStatus(t, session, models.RaceStatusCountdown)

	got, err := a.client.GetRace(ctx, connect.NewRequest(&racev1.GetRaceRequest{SessionId: snap.GetId()}))
	if err != nil {
		t.Fatalf("GetRace: %v", err)
	}
	if got.Msg.GetSession().GetStatus() != string(models.RaceStatusCountdown) || len(got.Msg.GetResults()) != 0 {
		t.Fatalf("unexpected race state %v", got.Msg)
	}
	participants := got.Msg.GetSession().GetParticipants()
	if len(participants) != 1 || participants[0].GetId() != ghostID || participants[0].GetKind() != string(models.ParticipantKindSimulated) {
		t.Fatalf("expected the ghost in the snapshot, got %v", participants)
	}

	listed, err := a.client.ListRaces(ctx, connect.NewRequest(&racev1.ListRacesRequest{}))
	if err != nil {
		t.Fatalf("ListRaces: %v", err)
	}
	if len(listed.Msg.GetSessions()) != 1 || listed.Msg.GetSessions()[0].GetId() != snap.GetId() {
		t.Fatalf("expected the created race listed, got %d sessions", len(listed.Msg.GetSessions()))
	}
}

func TestErrorCodes(t *testing.T) {
	a := newTestAPI(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		want connect.Code
	}{
		{
			name: "malformed session id",
			call: func() error {
				_, err := a.client.GetRace(ctx, connect.NewRequest(&racev1.GetRaceRequest{SessionId: "nope"}))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "unknown session",
			call: func() error {
				_, err := a.client.GetRace(ctx, connect.NewRequest(&racev1.GetRaceRequest{SessionId: "3f8b1c52-0000-4000-8000-000000000000"}))
				return err
			},
			want: connect.CodeNotFound,
		},
		{
			name: "unknown ready policy",
			call: func() error {
				_, err := a.client.CreateRace(ctx, connect.NewRequest(&racev1.CreateRaceRequest{ReadyPolicy: "WHENEVER"}))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "start without participant",
			call: func() error {
				created, err := a.client.CreateRace(ctx, connect.NewRequest(&racev1.CreateRaceRequest{}))
				if err != nil {
					return err
				}
				_, err = a.client.StartRace(ctx, connect.NewRequest(&racev1.StartRaceRequest{SessionId: created.Msg.GetSession().GetId()}))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var connectErr *connect.Error
			if !errors.As(err, &connectErr) {
				t.Fatalf("expected connect error, got %v", err)
			}
			if connectErr.Code() != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, connectErr.Code())
			}
		})
	}
}

func TestParticipantsToProtoOrdersByJoinTime(t *testing.T) {
	base := time.Unix(1000, 0)
	pos := 1
	finish := 12.5
	got := participantsToProto(map[string]*models.Participant{
		"b": {ID: "b", JoinedAt: base.Add(time.Second)},
		"a": {ID: "a", JoinedAt: base.Add(time.Second)},
		"z": {ID: "z", JoinedAt: base, Position: &pos, FinishTime: &finish},
	})

	ids := make([]string, len(got))
	for i, p := range got {
		ids[i] = p.GetId()
	}
	if diff := cmp.Diff([]string{"z", "a", "b"}, ids); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if got[0].GetPosition() != 1 || got[0].GetFinishTime() != 12.5 {
		t.Fatalf("expected finish details carried over, got %v", got[0])
	}
	if got[1].GetPosition() != 0 || got[1].GetFinishTime() != 0 {
		t.Fatalf("expected zero values for an unfinished participant, got %v", got[1])
	}
}
