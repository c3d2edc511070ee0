package models

import (
	"time"

	"github.com/google/uuid"
)

// ParticipantKind distinguishes humans from simulated racers.
type ParticipantKind string

const (
	ParticipantKindHuman     ParticipantKind = "HUMAN"
	ParticipantKindSimulated ParticipantKind = "SIMULATED"
)

// ParticipantStatus is where a participant stands within a race.
type ParticipantStatus string

const (
	ParticipantStatusRacing    ParticipantStatus = "RACING"
	ParticipantStatusFinished  ParticipantStatus = "FINISHED"
	ParticipantStatusAbandoned ParticipantStatus = "ABANDONED"
	ParticipantStatusDNF       ParticipantStatus = "DNF"
)

// RaceStatus defines the lifecycle status of a race session.
type RaceStatus string

const (
	RaceStatusLobby     RaceStatus = "LOBBY"
	RaceStatusCountdown RaceStatus = "COUNTDOWN"
	RaceStatusActive    RaceStatus = "ACTIVE"
	RaceStatusFinished  RaceStatus = "FINISHED"
	RaceStatusDissolved RaceStatus = "DISSOLVED"
)

// Terminal reports whether no further transitions are possible.
func (s RaceStatus) Terminal() bool {
	return s == RaceStatusFinished || s == RaceStatusDissolved
}

// Difficulty selects a speed band for simulated participants.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Participant is one racer in a session.
type Participant struct {
	ID              string            `json:"id"`
	DisplayName     string            `json:"display_name"`
	Kind            ParticipantKind   `json:"kind"`
	CosmeticRef     string            `json:"cosmetic_ref,omitempty"`
	Faction         string            `json:"faction,omitempty"`
	Difficulty      Difficulty        `json:"difficulty,omitempty"`
	Ready           bool              `json:"ready"`
	Status          ParticipantStatus `json:"status"`
	ErrorCount      int               `json:"error_count"`
	TotalKeystrokes int               `json:"total_keystrokes"`
	ProgressPercent float64           `json:"progress_percent"`
	Speed           float64           `json:"speed"`
	Accuracy        int               `json:"accuracy"`
	FinishTime      *float64          `json:"finish_time,omitempty"`
	Position        *int              `json:"position,omitempty"`
	JoinedAt        time.Time         `json:"joined_at"`
}

// Finished reports whether a finish has been recorded.
func (p *Participant) Finished() bool {
	return p.FinishTime != nil
}

// Done reports whether the participant no longer races.
func (p *Participant) Done() bool {
	return p.Status != ParticipantStatusRacing
}

// Clone returns a deep copy safe to hand to other goroutines.
func (p *Participant) Clone() *Participant {
	c := *p
	if p.FinishTime != nil {
		ft := *p.FinishTime
		c.FinishTime = &ft
	}
	if p.Position != nil {
		pos := *p.Position
		c.Position = &pos
	}
	return &c
}

// RacePrompt is the text every participant reproduces.
type RacePrompt struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Length int    `json:"length"`
	Source string `json:"source,omitempty"`
}

// RaceSession is the state owned by a single coordinator.
type RaceSession struct {
	ID             uuid.UUID               `json:"id"`
	Status         RaceStatus              `json:"status"`
	RaceType       string                  `json:"race_type"`
	Participants   map[string]*Participant `json:"participants"`
	Prompt         RacePrompt              `json:"prompt"`
	StartTimestamp *time.Time              `json:"start_timestamp,omitempty"`
	MaxPlayers     int                     `json:"max_players"`
	HostID         string                  `json:"host_id,omitempty"`
	Seed           int64                   `json:"seed"`
	CreatedAt      time.Time               `json:"created_at"`
	FinishedAt     *time.Time              `json:"finished_at,omitempty"`
	// Seq is the sequence number of the last event emitted for the session.
	Seq uint64 `json:"seq"`
}

// Clone returns a deep copy of the session.
func (s *RaceSession) Clone() *RaceSession {
	c := *s
	c.Participants = make(map[string]*Participant, len(s.Participants))
	for id, p := range s.Participants {
		c.Participants[id] = p.Clone()
	}
	if s.StartTimestamp != nil {
		st := *s.StartTimestamp
		c.StartTimestamp = &st
	}
	if s.FinishedAt != nil {
		ft := *s.FinishedAt
		c.FinishedAt = &ft
	}
	return &c
}

// RaceResult is the per-participant outcome of a finished race.
// Position 0 means the participant did not finish.
type RaceResult struct {
	ParticipantID string          `json:"participant_id"`
	DisplayName   string          `json:"display_name"`
	Kind          ParticipantKind `json:"kind"`
	Faction       string          `json:"faction,omitempty"`
	Speed         float64         `json:"speed"`
	Accuracy      int             `json:"accuracy"`
	Position      int             `json:"position"`
	RewardAmount  int             `json:"reward_amount"`
	FinishTime    *float64        `json:"finish_time,omitempty"`
	DNF           bool            `json:"dnf"`
}

// RaceRecord is a result plus the context a stats store needs.
type RaceRecord struct {
	Result     RaceResult `json:"result"`
	SessionID  uuid.UUID  `json:"session_id"`
	RaceType   string     `json:"race_type"`
	PromptID   string     `json:"prompt_id"`
	PromptText string     `json:"prompt_text"`
	Seed       int64      `json:"seed"`
	RecordedAt time.Time  `json:"recorded_at"`
}
