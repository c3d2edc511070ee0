package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/events"
)

// ErrQueueFull is returned by Broadcast when the publish queue is full.
var ErrQueueFull = errors.New("publish queue full")

// Broadcast queues an event for publishing. It never blocks the
// coordinator; Run does the network work.
func (p *JetStreamPublisher) Broadcast(_ context.Context, event *events.RaceEvent) error {
	select {
	case p.queue <- event:
		return nil
	default:
		log.Warn().
			Str("session_id", event.SessionID).
			Str("event_type", string(event.Type)).
			Msg("publish queue full, dropping event")
		return ErrQueueFull
	}
}

// Run publishes queued events until ctx is done, then flushes what is
// already queued.
func (p *JetStreamPublisher) Run(ctx context.Context) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return fmt.Errorf("publisher already running")
	}
	p.running = true
	p.mu.Unlock()

	log.Info().
		Str("stream", p.config.StreamName).
		Str("subject_prefix", p.config.SubjectPrefix).
		Msg("race event publisher started")

	for {
		select {
		case <-ctx.Done():
			p.flush()
			log.Info().Msg("race event publisher stopped")
			return nil
		case event := <-p.queue:
			p.publishEvent(ctx, event)
		}
	}
}

func (p *JetStreamPublisher) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), p.config.ReconnectWait)
	defer cancel()
	for {
		select {
		case event := <-p.queue:
			p.publishEvent(ctx, event)
		default:
			return
		}
	}
}

func (p *JetStreamPublisher) publishEvent(ctx context.Context, event *events.RaceEvent) {
	msg, err := p.eventMsg(event)
	if err != nil {
		log.Error().Err(err).Str("event_id", event.ID).Msg("failed to build event message")
		return
	}
	if err := p.publish(ctx, msg, event.ID); err != nil {
		log.Error().
			Err(err).
			Str("session_id", event.SessionID).
			Str("event_type", string(event.Type)).
			Msg("failed to publish race event")
	}
}

func (p *JetStreamPublisher) eventMsg(event *events.RaceEvent) (*nats.Msg, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return &nats.Msg{
		Subject: p.EventSubject(event.Type),
		Data:    data,
		Header: nats.Header{
			"Event-Type": []string{string(event.Type)},
			"Session-ID": []string{event.SessionID},
			"Event-ID":   []string{event.ID},
			"Event-Seq":  []string{strconv.FormatUint(event.Seq, 10)},
		},
	}, nil
}

// RecordResults publishes a finished race's records as one message.
func (p *JetStreamPublisher) RecordResults(ctx context.Context, records []models.RaceRecord) error {
	if len(records) == 0 {
		return nil
	}
	sessionID := records[0].SessionID.String()

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	msg := &nats.Msg{
		Subject: p.ResultSubject(sessionID),
		Data:    data,
		Header: nats.Header{
			"Session-ID": []string{sessionID},
			"Race-Type":  []string{records[0].RaceType},
		},
	}

	if err := p.publish(ctx, msg, "results-"+sessionID); err != nil {
		return fmt.Errorf("failed to publish results: %w", err)
	}

	log.Info().
		Str("session_id", sessionID).
		Int("records", len(records)).
		Msg("race results published")
	return nil
}
