package gateway

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/events"
)

// RaceState is a session view rebuilt purely from its event stream.
type RaceState struct {
	SessionID      string                       `json:"session_id"`
	Status         models.RaceStatus            `json:"status"`
	LastSeq        uint64                       `json:"last_seq"`
	HostID         string                       `json:"host_id,omitempty"`
	Prompt         *models.RacePrompt           `json:"prompt,omitempty"`
	StartedAt      *time.Time                   `json:"started_at,omitempty"`
	FinishedAt     *time.Time                   `json:"finished_at,omitempty"`
	Countdown      int                          `json:"countdown,omitempty"`
	Participants   map[string]*ParticipantState `json:"participants"`
	Results        []models.RaceResult          `json:"results,omitempty"`
	DissolveReason string                       `json:"dissolve_reason,omitempty"`

	endedAt time.Time
}

// ParticipantState is one participant's folded progress.
type ParticipantState struct {
	ID              string                   `json:"id"`
	DisplayName     string                   `json:"display_name"`
	Kind            models.ParticipantKind   `json:"kind"`
	Status          models.ParticipantStatus `json:"status"`
	Ready           bool                     `json:"ready"`
	ProgressPercent float64                  `json:"progress_percent"`
	Speed           float64                  `json:"speed"`
	Accuracy        int                      `json:"accuracy"`
	Position        int                      `json:"position,omitempty"`
	FinishTime      float64                  `json:"finish_time,omitempty"`
}

// RaceStateManager folds race events into per-session state. Folding is
// idempotent: an event with a Seq at or below the last applied one is
// ignored, so at-least-once delivery never double-applies.
type RaceStateManager struct {
	mu     sync.RWMutex
	states map[uuid.UUID]*RaceState
}

// NewRaceStateManager creates an empty state manager.
func NewRaceStateManager() *RaceStateManager {
	return &RaceStateManager{
		states: make(map[uuid.UUID]*RaceState),
	}
}

// GetState returns a copy of the folded state for a session.
func (m *RaceStateManager) GetState(sessionID uuid.UUID) (*RaceState, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.states[sessionID]
	if !ok {
		return nil, false
	}
	return state.clone(), true
}

// RemoveState forgets a session.
func (m *RaceStateManager) RemoveState(sessionID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, sessionID)
}

// Prune forgets sessions that ended before the cutoff and returns how many
// were removed.
func (m *RaceStateManager) Prune(before time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, state := range m.states {
		if !state.endedAt.IsZero() && state.endedAt.Before(before) {
			delete(m.states, id)
			removed++
		}
	}
	return removed
}

// ProcessEvent applies an event. It reports false for duplicates.
func (m *RaceStateManager) ProcessEvent(event *events.RaceEvent) (bool, error) {
	sessionID, err := uuid.Parse(event.SessionID)
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.states[sessionID]
	if state == nil {
		state = &RaceState{
			SessionID:    event.SessionID,
			Status:       models.RaceStatusLobby,
			Participants: make(map[string]*ParticipantState),
		}
		m.states[sessionID] = state
	}
	if event.Seq != 0 && event.Seq <= state.LastSeq {
		return false, nil
	}
	if event.Seq != 0 {
		state.LastSeq = event.Seq
	}

	// StateSync is addressed to one client and carries no new facts.
	if event.Type == events.EventTypeStateSync {
		return true, nil
	}

	payload, err := events.ParsePayload(event)
	if err != nil {
		// Still delivered: the sequence advanced even if the fold failed.
		return true, err
	}

	switch p := payload.(type) {
	case *events.ParticipantJoinedPayload:
		state.HostID = p.HostID
		state.Participants[p.Participant.ID] = &ParticipantState{
			ID:          p.Participant.ID,
			DisplayName: p.Participant.DisplayName,
			Kind:        p.Participant.Kind,
			Status:      p.Participant.Status,
			Ready:       p.Participant.Ready,
			Accuracy:    p.Participant.Accuracy,
		}

	case *events.ParticipantLeftPayload:
		state.HostID = p.HostID
		delete(state.Participants, p.ParticipantID)

	case *events.ReadyChangedPayload:
		if ps, ok := state.Participants[p.ParticipantID]; ok {
			ps.Ready = p.Ready
		}

	case *events.CountdownStartedPayload:
		state.Status = models.RaceStatusCountdown
		state.Countdown = p.Ticks

	case *events.CountdownTickPayload:
		state.Countdown = p.Remaining

	case *events.RaceStartedPayload:
		state.Status = models.RaceStatusActive
		prompt := p.Prompt
		state.Prompt = &prompt
		start := p.StartTimestamp
		state.StartedAt = &start
		state.Countdown = 0

	case *events.ProgressPayload:
		if ps, ok := state.Participants[p.ParticipantID]; ok {
			ps.ProgressPercent = max(ps.ProgressPercent, p.ProgressPercent)
			ps.Speed = p.Speed
			ps.Accuracy = p.Accuracy
		}

	case *events.ParticipantFinishedPayload:
		if ps, ok := state.Participants[p.ParticipantID]; ok {
			ps.Status = models.ParticipantStatusFinished
			ps.ProgressPercent = 100
			ps.Position = p.Position
			ps.FinishTime = p.FinishTime
			ps.Speed = p.Speed
		}

	case *events.ParticipantAbandonedPayload:
		if ps, ok := state.Participants[p.ParticipantID]; ok {
			ps.Status = models.ParticipantStatusAbandoned
			if p.Reason == "timeout" {
				ps.Status = models.ParticipantStatusDNF
			}
		}

	case *events.RaceResultPayload:
		state.Status = models.RaceStatusFinished
		finished := p.FinishedAt
		state.FinishedAt = &finished
		state.Results = p.Results
		state.endedAt = event.Timestamp

	case *events.SessionDissolvedPayload:
		state.Status = models.RaceStatusDissolved
		state.DissolveReason = p.Reason
		state.endedAt = event.Timestamp
	}

	return true, nil
}

func (s *RaceState) clone() *RaceState {
	c := *s
	c.Participants = make(map[string]*ParticipantState, len(s.Participants))
	for id, p := range s.Participants {
		ps := *p
		c.Participants[id] = &ps
	}
	if s.Results != nil {
		c.Results = append([]models.RaceResult(nil), s.Results...)
	}
	return &c
}
