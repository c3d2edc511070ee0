package coordinator

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/evaluator"
	"github.com/mcdev12/typerace/go/internal/race/events"
)

// maxUnfinishedProgress keeps reported progress below 100 until the finish
// itself is recorded, so 100 always means a finish time is set.
const maxUnfinishedProgress = 99.99

// handle routes one inbox message. Errors are logged and never stop the session.
func (c *Coordinator) handle(ctx context.Context, msg Message) {
	switch m := msg.(type) {
	case Join:
		c.handleJoin(ctx, m)
	case Ready:
		c.handleReady(ctx, m)
	case Leave:
		c.handleLeave(ctx, m)
	case StartRequest:
		c.handleStart(ctx, m)
	case Progress:
		c.handleProgress(ctx, m)
	case Finish:
		c.handleFinish(ctx, m)
	default:
		log.Warn().
			Str("session_id", c.session.ID.String()).
			Str("participant_id", msg.participant()).
			Msgf("unknown message type %T", msg)
	}
}

func (c *Coordinator) handleJoin(ctx context.Context, m Join) {
	if m.ParticipantID == "" {
		log.Warn().Str("session_id", c.session.ID.String()).Msg("join without participant id dropped")
		return
	}
	if _, exists := c.session.Participants[m.ParticipantID]; exists {
		log.Debug().
			Str("session_id", c.session.ID.String()).
			Str("participant_id", m.ParticipantID).
			Msg("participant already joined")
		return
	}
	if c.session.Status != models.RaceStatusLobby {
		c.rejectJoin(ctx, m.ParticipantID, events.RejectAlreadyStarted)
		return
	}
	if len(c.session.Participants) >= c.cfg.MaxPlayers {
		c.rejectJoin(ctx, m.ParticipantID, events.RejectCapacityExceeded)
		return
	}

	p := &models.Participant{
		ID:          m.ParticipantID,
		DisplayName: m.DisplayName,
		Kind:        m.Kind,
		CosmeticRef: m.CosmeticRef,
		Faction:     m.Faction,
		Difficulty:  m.Difficulty,
		Status:      models.ParticipantStatusRacing,
		Accuracy:    100,
		JoinedAt:    c.clock.Now(),
	}
	if p.Kind == "" {
		p.Kind = models.ParticipantKindHuman
	}
	if p.DisplayName == "" {
		p.DisplayName = p.ID
	}
	if p.Kind == models.ParticipantKindSimulated {
		p.Ready = true
		if p.Difficulty == "" {
			p.Difficulty = models.DifficultyMedium
		}
	}

	c.joinCounter++
	c.joinIndex[p.ID] = c.joinCounter
	c.session.Participants[p.ID] = p
	if c.session.HostID == "" && p.Kind == models.ParticipantKindHuman {
		c.session.HostID = p.ID
	}

	log.Info().
		Str("session_id", c.session.ID.String()).
		Str("participant_id", p.ID).
		Str("kind", string(p.Kind)).
		Int("count", len(c.session.Participants)).
		Msg("participant joined")

	c.publish(ctx, events.EventTypeParticipantJoined, "", events.ParticipantJoinedPayload{
		Participant: *p.Clone(),
		HostID:      c.session.HostID,
		Count:       len(c.session.Participants),
		MaxPlayers:  c.cfg.MaxPlayers,
	})

	c.maybeStartCountdown(ctx)
}

func (c *Coordinator) rejectJoin(ctx context.Context, participantID, reason string) {
	log.Info().
		Str("session_id", c.session.ID.String()).
		Str("participant_id", participantID).
		Str("reason", reason).
		Msg("join rejected")

	c.publish(ctx, events.EventTypeJoinRejected, participantID, events.JoinRejectedPayload{
		ParticipantID: participantID,
		Reason:        reason,
	})
}

func (c *Coordinator) handleReady(ctx context.Context, m Ready) {
	if c.session.Status != models.RaceStatusLobby {
		log.Debug().
			Str("session_id", c.session.ID.String()).
			Str("participant_id", m.ParticipantID).
			Msg("ready outside lobby ignored")
		return
	}
	p, ok := c.session.Participants[m.ParticipantID]
	if !ok {
		log.Warn().
			Str("session_id", c.session.ID.String()).
			Str("participant_id", m.ParticipantID).
			Msg("ready from unknown participant dropped")
		return
	}
	if p.Ready == m.Ready {
		return
	}
	p.Ready = m.Ready

	c.publish(ctx, events.EventTypeReadyChanged, "", events.ReadyChangedPayload{
		ParticipantID: p.ID,
		Ready:         p.Ready,
	})

	c.maybeStartCountdown(ctx)
}

func (c *Coordinator) handleLeave(ctx context.Context, m Leave) {
	p, ok := c.session.Participants[m.ParticipantID]
	if !ok {
		return
	}

	switch c.session.Status {
	case models.RaceStatusLobby, models.RaceStatusCountdown:
		delete(c.session.Participants, p.ID)
		delete(c.joinIndex, p.ID)
		if c.session.HostID == p.ID {
			c.session.HostID = c.nextHost()
		}

		log.Info().
			Str("session_id", c.session.ID.String()).
			Str("participant_id", p.ID).
			Str("status", string(c.session.Status)).
			Msg("participant left")

		c.publish(ctx, events.EventTypeParticipantLeft, "", events.ParticipantLeftPayload{
			ParticipantID: p.ID,
			HostID:        c.session.HostID,
			Count:         len(c.session.Participants),
		})

		if len(c.session.Participants) == 0 {
			c.dissolve(ctx, "empty")
			return
		}
		if c.session.Status == models.RaceStatusCountdown && len(c.session.Participants) < c.cfg.MinParticipants {
			c.dissolve(ctx, "not enough participants")
			return
		}
		c.maybeStartCountdown(ctx)

	case models.RaceStatusActive:
		if p.Done() {
			return
		}
		p.Status = models.ParticipantStatusAbandoned
		reason := m.Reason
		if reason == "" {
			reason = "left"
		}

		log.Info().
			Str("session_id", c.session.ID.String()).
			Str("participant_id", p.ID).
			Str("reason", reason).
			Msg("participant abandoned race")

		c.publish(ctx, events.EventTypeParticipantAbandoned, "", events.ParticipantAbandonedPayload{
			ParticipantID: p.ID,
			Reason:        reason,
		})

		if c.allDone() {
			c.finish(ctx, false)
		}
	}
}

// nextHost returns the earliest-joined remaining human, if any.
func (c *Coordinator) nextHost() string {
	for _, p := range c.ordered() {
		if p.Kind == models.ParticipantKindHuman {
			return p.ID
		}
	}
	return ""
}

func (c *Coordinator) handleStart(ctx context.Context, m StartRequest) {
	if c.session.Status != models.RaceStatusLobby {
		log.Debug().Str("session_id", c.session.ID.String()).Msg("start outside lobby ignored")
		return
	}
	if !m.Force && m.ParticipantID != c.session.HostID {
		log.Warn().
			Str("session_id", c.session.ID.String()).
			Str("participant_id", m.ParticipantID).
			Msg("start from non-host ignored")
		return
	}
	if len(c.session.Participants) < c.cfg.MinParticipants {
		log.Info().
			Str("session_id", c.session.ID.String()).
			Int("count", len(c.session.Participants)).
			Int("min", c.cfg.MinParticipants).
			Msg("start ignored, not enough participants")
		return
	}
	c.beginCountdown(ctx)
}

// maybeStartCountdown applies the ready policy after a lobby change.
func (c *Coordinator) maybeStartCountdown(ctx context.Context) {
	if c.session.Status != models.RaceStatusLobby {
		return
	}
	if len(c.session.Participants) < c.cfg.MinParticipants {
		return
	}

	switch c.cfg.ReadyPolicy {
	case ReadyPolicyAnyReady:
		// Simulated participants are always ready and never count here.
		for _, p := range c.session.Participants {
			if p.Ready && p.Kind == models.ParticipantKindHuman {
				c.beginCountdown(ctx)
				return
			}
		}
	case ReadyPolicyAllReady:
		for _, p := range c.session.Participants {
			if !p.Ready {
				return
			}
		}
		c.beginCountdown(ctx)
	case ReadyPolicyHostStart:
		// Waits for StartRequest.
	}
}

func (c *Coordinator) handleProgress(ctx context.Context, m Progress) {
	p, ok := c.activeParticipant(m.ParticipantID, "progress")
	if !ok {
		return
	}

	elapsed := c.clock.Elapsed()
	if p.Kind == models.ParticipantKindHuman && !c.plausible(m.ProgressPercent, m.Speed, elapsed) {
		log.Warn().
			Str("session_id", c.session.ID.String()).
			Str("participant_id", p.ID).
			Float64("progress", m.ProgressPercent).
			Float64("speed", m.Speed).
			Float64("elapsed", elapsed).
			Msg("implausible progress dropped")
		return
	}

	p.ProgressPercent = max(0, min(m.ProgressPercent, maxUnfinishedProgress))
	p.Speed = max(0, m.Speed)
	p.Accuracy = max(0, min(m.Accuracy, 100))
	if m.ErrorCount > p.ErrorCount {
		p.ErrorCount = m.ErrorCount
	}
	if m.TotalKeystrokes > p.TotalKeystrokes {
		p.TotalKeystrokes = m.TotalKeystrokes
	}

	c.publish(ctx, events.EventTypeProgress, "", events.ProgressPayload{
		ParticipantID:   p.ID,
		ProgressPercent: p.ProgressPercent,
		Speed:           p.Speed,
		Accuracy:        p.Accuracy,
	})
}

func (c *Coordinator) handleFinish(ctx context.Context, m Finish) {
	p, ok := c.activeParticipant(m.ParticipantID, "finish")
	if !ok {
		return
	}

	elapsed := c.clock.Elapsed()
	speed := evaluator.Speed(c.session.Prompt.Length, elapsed)
	if mv, ok := c.movers[p.ID]; ok {
		speed = mv.Speed()
	} else if !c.plausible(100, speed, elapsed) {
		log.Warn().
			Str("session_id", c.session.ID.String()).
			Str("participant_id", p.ID).
			Float64("elapsed", elapsed).
			Msg("implausible finish dropped")
		return
	}

	c.nextPosition++
	position := c.nextPosition
	p.Position = &position
	p.FinishTime = &elapsed
	p.ProgressPercent = 100
	p.Speed = speed
	p.Status = models.ParticipantStatusFinished
	if m.Accuracy != nil {
		p.Accuracy = max(0, min(*m.Accuracy, 100))
	}

	log.Info().
		Str("session_id", c.session.ID.String()).
		Str("participant_id", p.ID).
		Int("position", position).
		Float64("finish_time", elapsed).
		Float64("reported_elapsed", m.ReportedElapsed).
		Msg("participant finished")

	c.publish(ctx, events.EventTypeParticipantFinished, "", events.ParticipantFinishedPayload{
		ParticipantID: p.ID,
		Position:      position,
		FinishTime:    elapsed,
		Speed:         speed,
	})

	if c.allDone() {
		c.finish(ctx, false)
	}
}

// activeParticipant resolves a participant for an in-race message.
// Stale, unknown and already-finished senders are dropped.
func (c *Coordinator) activeParticipant(id, kind string) (*models.Participant, bool) {
	if c.session.Status != models.RaceStatusActive {
		log.Debug().
			Str("session_id", c.session.ID.String()).
			Str("participant_id", id).
			Str("status", string(c.session.Status)).
			Msgf("stale %s dropped", kind)
		return nil, false
	}
	p, ok := c.session.Participants[id]
	if !ok {
		log.Warn().
			Str("session_id", c.session.ID.String()).
			Str("participant_id", id).
			Msgf("%s from unknown participant dropped", kind)
		return nil, false
	}
	if p.Done() {
		log.Debug().
			Str("session_id", c.session.ID.String()).
			Str("participant_id", id).
			Str("participant_status", string(p.Status)).
			Msgf("duplicate %s ignored", kind)
		return nil, false
	}
	return p, true
}

// plausible rejects reports faster than any human can type.
func (c *Coordinator) plausible(progress, speed, elapsed float64) bool {
	if speed > c.cfg.MaxPlausibleSpeed {
		return false
	}
	chars := int(progress / 100 * float64(c.session.Prompt.Length))
	if chars == 0 {
		return true
	}
	return evaluator.Speed(chars, elapsed) <= c.cfg.MaxPlausibleSpeed && elapsed > 0
}
