// Package api exposes race administration over connect: creating races,
// adding ghosts, forcing starts and reading session state.
package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	racev1 "github.com/mcdev12/typerace/go/internal/genproto/race/v1"
	"github.com/mcdev12/typerace/go/internal/genproto/race/v1/racev1connect"
	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/coordinator"
)

// RaceManager is what the admin API needs from the session manager.
type RaceManager interface {
	Defaults() coordinator.Config
	Open(ctx context.Context, cfg coordinator.Config) (*coordinator.Coordinator, error)
	OpenWithPrompt(cfg coordinator.Config, prompt models.RacePrompt) (*coordinator.Coordinator, error)
	Get(id uuid.UUID) (*coordinator.Coordinator, bool)
	List() []*models.RaceSession
}

// Service implements the race admin API.
type Service struct {
	manager RaceManager
}

func NewService(manager RaceManager) *Service {
	return &Service{manager: manager}
}

var _ racev1connect.RaceAdminServiceHandler = (*Service)(nil)

// CreateRace opens a new lobby.
func (s *Service) CreateRace(ctx context.Context, req *connect.Request[racev1.CreateRaceRequest]) (*connect.Response[racev1.CreateRaceResponse], error) {
	cfg, err := s.configFrom(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	var session *coordinator.Coordinator
	if text := strings.TrimSpace(req.Msg.PromptText); text != "" {
		session, err = s.manager.OpenWithPrompt(cfg, models.RacePrompt{
			ID:     "custom-" + uuid.NewString(),
			Text:   text,
			Source: "admin",
		})
	} else {
		session, err = s.manager.Open(ctx, cfg)
	}
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	log.Info().
		Str("session_id", session.ID().String()).
		Str("race_type", cfg.RaceType).
		Int("max_players", cfg.MaxPlayers).
		Msg("race created via admin api")

	return connect.NewResponse(&racev1.CreateRaceResponse{Session: sessionToProto(session.Snapshot())}), nil
}

// GetRace returns a session snapshot and, once finished, its results.
func (s *Service) GetRace(ctx context.Context, req *connect.Request[racev1.GetRaceRequest]) (*connect.Response[racev1.GetRaceResponse], error) {
	session, err := s.lookup(req.Msg.SessionId)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&racev1.GetRaceResponse{
		Session: sessionToProto(session.Snapshot()),
		Results: resultsToProto(session.Results()),
	}), nil
}

// ListRaces returns live sessions, newest first.
func (s *Service) ListRaces(ctx context.Context, req *connect.Request[racev1.ListRacesRequest]) (*connect.Response[racev1.ListRacesResponse], error) {
	all := s.manager.List()
	sessions := make([]*racev1.RaceSession, 0, len(all))
	for _, snap := range all {
		if snap.Status.Terminal() && !req.Msg.IncludeEnded {
			continue
		}
		sessions = append(sessions, sessionToProto(snap))
	}
	return connect.NewResponse(&racev1.ListRacesResponse{Sessions: sessions}), nil
}

// AddGhost adds a simulated participant to a lobby.
func (s *Service) AddGhost(ctx context.Context, req *connect.Request[racev1.AddGhostRequest]) (*connect.Response[racev1.AddGhostResponse], error) {
	session, err := s.lookup(req.Msg.SessionId)
	if err != nil {
		return nil, err
	}
	difficulty, err := parseDifficulty(req.Msg.Difficulty)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if snap := session.Snapshot(); snap.Status != models.RaceStatusLobby {
		return nil, connect.NewError(connect.CodeFailedPrecondition, fmt.Errorf("session %s is %s", snap.ID, snap.Status))
	}

	participantID := req.Msg.ParticipantId
	if participantID == "" {
		participantID = "ghost-" + uuid.NewString()[:8]
	}
	displayName := req.Msg.DisplayName
	if displayName == "" {
		displayName = strings.TrimSpace(req.Msg.Faction + " ghost")
	}

	if err := session.Submit(ctx, coordinator.Join{
		ParticipantID: participantID,
		DisplayName:   displayName,
		Kind:          models.ParticipantKindSimulated,
		Faction:       req.Msg.Faction,
		Difficulty:    difficulty,
	}); err != nil {
		return nil, submitError(err)
	}
	return connect.NewResponse(&racev1.AddGhostResponse{ParticipantId: participantID}), nil
}

// StartRace asks the session to begin its countdown.
func (s *Service) StartRace(ctx context.Context, req *connect.Request[racev1.StartRaceRequest]) (*connect.Response[racev1.StartRaceResponse], error) {
	session, err := s.lookup(req.Msg.SessionId)
	if err != nil {
		return nil, err
	}
	if !req.Msg.Force && req.Msg.ParticipantId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("participant_id is required unless force is set"))
	}
	if err := session.Submit(ctx, coordinator.StartRequest{
		ParticipantID: req.Msg.ParticipantId,
		Force:         req.Msg.Force,
	}); err != nil {
		return nil, submitError(err)
	}
	return connect.NewResponse(&racev1.StartRaceResponse{}), nil
}

func (s *Service) lookup(rawID string) (*coordinator.Coordinator, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid session_id: %w", err))
	}
	session, ok := s.manager.Get(id)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("%w: %s", coordinator.ErrSessionNotFound, id))
	}
	return session, nil
}

func (s *Service) configFrom(req *racev1.CreateRaceRequest) (coordinator.Config, error) {
	cfg := s.manager.Defaults()
	if req.RaceType != "" {
		cfg.RaceType = req.RaceType
	}
	if req.MaxPlayers < 0 || req.MinParticipants < 0 {
		return cfg, errors.New("player counts must not be negative")
	}
	if req.MaxPlayers > 0 {
		cfg.MaxPlayers = int(req.MaxPlayers)
	}
	if req.MinParticipants > 0 {
		cfg.MinParticipants = int(req.MinParticipants)
	}
	if cfg.MinParticipants > cfg.MaxPlayers {
		return cfg, fmt.Errorf("min_participants %d exceeds max_players %d", cfg.MinParticipants, cfg.MaxPlayers)
	}
	switch policy := coordinator.ReadyPolicy(strings.ToUpper(req.ReadyPolicy)); policy {
	case "":
	case coordinator.ReadyPolicyAnyReady, coordinator.ReadyPolicyAllReady, coordinator.ReadyPolicyHostStart:
		cfg.ReadyPolicy = policy
	default:
		return cfg, fmt.Errorf("unknown ready_policy %q", req.ReadyPolicy)
	}
	if req.CountdownTicks != nil {
		if *req.CountdownTicks < 0 {
			return cfg, errors.New("countdown_ticks must not be negative")
		}
		cfg.CountdownTicks = int(*req.CountdownTicks)
	}
	if req.MaxDurationSecs != nil {
		if *req.MaxDurationSecs < 0 {
			return cfg, errors.New("max_duration_secs must not be negative")
		}
		cfg.MaxDuration = time.Duration(*req.MaxDurationSecs) * time.Second
	}
	cfg.Seed = req.Seed
	return cfg, nil
}

func parseDifficulty(raw string) (models.Difficulty, error) {
	switch d := models.Difficulty(strings.ToUpper(raw)); d {
	case "":
		return models.DifficultyMedium, nil
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", raw)
	}
}

func submitError(err error) error {
	if errors.Is(err, coordinator.ErrSessionClosed) {
		return connect.NewError(connect.CodeFailedPrecondition, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}
