package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/coordinator"
)

// SessionLister is the manager surface the state provider reads from.
type SessionLister interface {
	Get(id uuid.UUID) (*coordinator.Coordinator, bool)
	List() []*models.RaceSession
}

// ManagerStateProvider serves state from locally running coordinators, and
// falls back to the event fold for sessions owned by another node.
type ManagerStateProvider struct {
	sessions SessionLister
	folded   *RaceStateManager
	clock    clockwork.Clock
}

// NewManagerStateProvider creates a state provider. folded may be nil.
func NewManagerStateProvider(sessions SessionLister, folded *RaceStateManager, clock clockwork.Clock) *ManagerStateProvider {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ManagerStateProvider{sessions: sessions, folded: folded, clock: clock}
}

// GetRaceState returns the latest snapshot of a race.
func (p *ManagerStateProvider) GetRaceState(_ context.Context, sessionID uuid.UUID) (*RaceStateResponse, error) {
	if c, ok := p.sessions.Get(sessionID); ok {
		return &RaceStateResponse{
			Session:    c.Snapshot(),
			Elapsed:    c.Clock().Elapsed(),
			ServerTime: p.clock.Now().UTC(),
			Results:    c.Results(),
		}, nil
	}

	if p.folded != nil {
		if state, ok := p.folded.GetState(sessionID); ok {
			return p.fromFold(sessionID, state), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrStateNotFound, sessionID)
}

func (p *ManagerStateProvider) fromFold(sessionID uuid.UUID, state *RaceState) *RaceStateResponse {
	session := &models.RaceSession{
		ID:             sessionID,
		Status:         state.Status,
		HostID:         state.HostID,
		StartTimestamp: state.StartedAt,
		FinishedAt:     state.FinishedAt,
		Participants:   make(map[string]*models.Participant, len(state.Participants)),
	}
	if state.Prompt != nil {
		session.Prompt = *state.Prompt
	}
	for id, ps := range state.Participants {
		participant := &models.Participant{
			ID:              ps.ID,
			DisplayName:     ps.DisplayName,
			Kind:            ps.Kind,
			Status:          ps.Status,
			Ready:           ps.Ready,
			ProgressPercent: ps.ProgressPercent,
			Speed:           ps.Speed,
			Accuracy:        ps.Accuracy,
		}
		if ps.Position > 0 {
			pos, ft := ps.Position, ps.FinishTime
			participant.Position = &pos
			participant.FinishTime = &ft
		}
		session.Participants[id] = participant
	}

	resp := &RaceStateResponse{
		Session:    session,
		ServerTime: p.clock.Now().UTC(),
		Results:    state.Results,
	}
	if state.StartedAt != nil && state.FinishedAt == nil {
		resp.Elapsed = p.clock.Since(*state.StartedAt).Seconds()
	}
	return resp
}

// GetActiveRaces lists races that have not ended, newest first.
func (p *ManagerStateProvider) GetActiveRaces(_ context.Context) ([]RaceSummary, error) {
	var out []RaceSummary
	for _, s := range p.sessions.List() {
		if s.Status.Terminal() {
			continue
		}
		out = append(out, RaceSummary{
			SessionID:    s.ID.String(),
			RaceType:     s.RaceType,
			Status:       s.Status,
			Participants: len(s.Participants),
			MaxPlayers:   s.MaxPlayers,
			CreatedAt:    s.CreatedAt,
			StartedAt:    s.StartTimestamp,
		})
	}
	if out == nil {
		out = []RaceSummary{}
	}
	return out, nil
}
