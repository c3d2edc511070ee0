// Package events holds the race event envelope and payloads shared by the
// coordinator, the websocket gateway and the JetStream publisher.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType names a race event on the wire and in NATS subjects.
type EventType string

const (
	EventTypeParticipantJoined    EventType = "ParticipantJoined"
	EventTypeJoinRejected         EventType = "JoinRejected"
	EventTypeParticipantLeft      EventType = "ParticipantLeft"
	EventTypeReadyChanged         EventType = "ReadyChanged"
	EventTypeCountdownStarted     EventType = "CountdownStarted"
	EventTypeCountdownTick        EventType = "CountdownTick"
	EventTypeRaceStarted          EventType = "RaceStarted"
	EventTypeProgress             EventType = "Progress"
	EventTypeParticipantFinished  EventType = "ParticipantFinished"
	EventTypeParticipantAbandoned EventType = "ParticipantAbandoned"
	EventTypeRaceResult           EventType = "RaceResult"
	EventTypeSessionDissolved     EventType = "SessionDissolved"
	EventTypeStateSync            EventType = "StateSync"
)

// RaceEvent is the envelope for every server-to-client message.
// Seq increases per session so receivers can drop duplicates.
type RaceEvent struct {
	ID        string          `json:"id"`
	SessionID string          `json:"session_id"`
	Seq       uint64          `json:"seq"`
	Type      EventType       `json:"type"`
	Target    string          `json:"target,omitempty"` // participant ID for direct messages
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// NewRaceEvent marshals payload into a new envelope.
func NewRaceEvent(sessionID uuid.UUID, seq uint64, eventType EventType, ts time.Time, payload any) (*RaceEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return &RaceEvent{
		ID:        uuid.New().String(),
		SessionID: sessionID.String(),
		Seq:       seq,
		Type:      eventType,
		Timestamp: ts.UTC(),
		Data:      data,
	}, nil
}

// ParsePayload decodes the event data into its payload struct.
func ParsePayload(event *RaceEvent) (any, error) {
	var target any
	switch event.Type {
	case EventTypeParticipantJoined:
		target = &ParticipantJoinedPayload{}
	case EventTypeJoinRejected:
		target = &JoinRejectedPayload{}
	case EventTypeParticipantLeft:
		target = &ParticipantLeftPayload{}
	case EventTypeReadyChanged:
		target = &ReadyChangedPayload{}
	case EventTypeCountdownStarted:
		target = &CountdownStartedPayload{}
	case EventTypeCountdownTick:
		target = &CountdownTickPayload{}
	case EventTypeRaceStarted:
		target = &RaceStartedPayload{}
	case EventTypeProgress:
		target = &ProgressPayload{}
	case EventTypeParticipantFinished:
		target = &ParticipantFinishedPayload{}
	case EventTypeParticipantAbandoned:
		target = &ParticipantAbandonedPayload{}
	case EventTypeRaceResult:
		target = &RaceResultPayload{}
	case EventTypeSessionDissolved:
		target = &SessionDissolvedPayload{}
	case EventTypeStateSync:
		target = &StateSyncPayload{}
	default:
		return nil, fmt.Errorf("unknown event type: %s", event.Type)
	}

	if err := json.Unmarshal(event.Data, target); err != nil {
		return nil, fmt.Errorf("unmarshal %s payload: %w", event.Type, err)
	}
	return target, nil
}
