package events

import (
	"time"

	"github.com/mcdev12/typerace/go/internal/models"
)

// Rejection reasons sent with JoinRejected.
const (
	RejectCapacityExceeded = "CAPACITY_EXCEEDED"
	RejectAlreadyStarted   = "ALREADY_STARTED"
)

// ParticipantJoinedPayload announces a new participant in the lobby.
type ParticipantJoinedPayload struct {
	Participant models.Participant `json:"participant"`
	HostID      string             `json:"host_id,omitempty"`
	Count       int                `json:"count"`
	MaxPlayers  int                `json:"max_players"`
}

// JoinRejectedPayload is sent only to the participant whose join failed.
type JoinRejectedPayload struct {
	ParticipantID string `json:"participant_id"`
	Reason        string `json:"reason"`
}

// ParticipantLeftPayload announces a lobby or countdown departure.
type ParticipantLeftPayload struct {
	ParticipantID string `json:"participant_id"`
	HostID        string `json:"host_id,omitempty"`
	Count         int    `json:"count"`
}

type ReadyChangedPayload struct {
	ParticipantID string `json:"participant_id"`
	Ready         bool   `json:"ready"`
}

type CountdownStartedPayload struct {
	Ticks        int       `json:"ticks"`
	IntervalMs   int64     `json:"interval_ms"`
	StartedAt    time.Time `json:"started_at"`
	Participants []string  `json:"participants"`
}

type CountdownTickPayload struct {
	Remaining int `json:"remaining"`
}

// RaceStartedPayload is the start signal: all participants begin typing.
type RaceStartedPayload struct {
	Prompt         models.RacePrompt `json:"prompt"`
	StartTimestamp time.Time         `json:"start_timestamp"`
	MaxDurationSec int               `json:"max_duration_sec,omitempty"`
}

// ProgressPayload relays a participant's latest metrics.
type ProgressPayload struct {
	ParticipantID   string  `json:"participant_id"`
	ProgressPercent float64 `json:"progress_percent"`
	Speed           float64 `json:"speed"`
	Accuracy        int     `json:"accuracy"`
}

type ParticipantFinishedPayload struct {
	ParticipantID string  `json:"participant_id"`
	Position      int     `json:"position"`
	FinishTime    float64 `json:"finish_time"`
	Speed         float64 `json:"speed"`
}

type ParticipantAbandonedPayload struct {
	ParticipantID string `json:"participant_id"`
	Reason        string `json:"reason"`
}

// RaceResultPayload is emitted exactly once when a race finishes.
type RaceResultPayload struct {
	RaceType   string              `json:"race_type"`
	PromptLen  int                 `json:"prompt_length"`
	Results    []models.RaceResult `json:"results"`
	FinishedAt time.Time           `json:"finished_at"`
	TimedOut   bool                `json:"timed_out"`
}

type SessionDissolvedPayload struct {
	Reason string `json:"reason"`
}

// StateSyncPayload carries a full session view to a (re)connecting client.
type StateSyncPayload struct {
	Session models.RaceSession `json:"session"`
	Elapsed float64            `json:"elapsed"`
}
