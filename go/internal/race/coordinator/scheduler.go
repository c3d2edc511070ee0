package coordinator

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/events"
	"github.com/mcdev12/typerace/go/internal/race/mover"
)

func (c *Coordinator) beginCountdown(ctx context.Context) {
	c.session.Status = models.RaceStatusCountdown
	ids := make([]string, 0, len(c.session.Participants))
	for _, p := range c.ordered() {
		ids = append(ids, p.ID)
	}

	log.Info().
		Str("session_id", c.session.ID.String()).
		Int("participants", len(ids)).
		Int("ticks", c.cfg.CountdownTicks).
		Msg("countdown started")

	c.publish(ctx, events.EventTypeCountdownStarted, "", events.CountdownStartedPayload{
		Ticks:        c.cfg.CountdownTicks,
		IntervalMs:   c.cfg.CountdownInterval.Milliseconds(),
		StartedAt:    c.clock.Now().UTC(),
		Participants: ids,
	})

	if c.cfg.CountdownTicks <= 0 {
		c.startRace(ctx)
		return
	}
	c.countdownLeft = c.cfg.CountdownTicks
	c.countdownTicker = c.clock.NewTicker(c.cfg.CountdownInterval)
}

func (c *Coordinator) onCountdownTick(ctx context.Context) {
	if c.session.Status != models.RaceStatusCountdown {
		stopTicker(&c.countdownTicker)
		return
	}

	c.countdownLeft--
	c.publish(ctx, events.EventTypeCountdownTick, "", events.CountdownTickPayload{
		Remaining: c.countdownLeft,
	})

	if c.countdownLeft <= 0 {
		stopTicker(&c.countdownTicker)
		c.startRace(ctx)
	}
}

func (c *Coordinator) startRace(ctx context.Context) {
	start := c.clock.Start()
	c.session.StartTimestamp = &start
	c.session.Status = models.RaceStatusActive

	// Speeds are drawn in join order so a seed reproduces the race.
	for _, p := range c.ordered() {
		if p.Kind != models.ParticipantKindSimulated {
			continue
		}
		speed := c.speeds.Draw(p.Faction, p.Difficulty, c.rng)
		c.movers[p.ID] = mover.New(p.ID, speed, c.session.Prompt.Length)

		log.Debug().
			Str("session_id", c.session.ID.String()).
			Str("participant_id", p.ID).
			Str("faction", p.Faction).
			Float64("speed", speed).
			Msg("simulated participant speed drawn")
	}

	log.Info().
		Str("session_id", c.session.ID.String()).
		Int("participants", len(c.session.Participants)).
		Int("movers", len(c.movers)).
		Time("start", start).
		Msg("race started")

	// Readers must see the active session before clients hear RaceStarted,
	// otherwise their first keystrokes find the race still counting down.
	c.publishSnapshot()
	c.publish(ctx, events.EventTypeRaceStarted, "", events.RaceStartedPayload{
		Prompt:         c.session.Prompt,
		StartTimestamp: start.UTC(),
		MaxDurationSec: int(c.cfg.MaxDuration / time.Second),
	})

	if len(c.movers) > 0 {
		c.moverTicker = c.clock.NewTicker(c.cfg.ProgressTick)
	}
	if c.cfg.MaxDuration > 0 {
		c.timeoutTimer = c.clock.NewTimer(c.cfg.MaxDuration)
	}
}

// onMoverTick steps every simulated participant through the same message
// path humans use.
func (c *Coordinator) onMoverTick(ctx context.Context) {
	if c.session.Status != models.RaceStatusActive {
		stopTicker(&c.moverTicker)
		return
	}

	elapsed := c.clock.Elapsed()
	perfect := 100
	for _, p := range c.ordered() {
		m, ok := c.movers[p.ID]
		if !ok || m.Finished() || p.Done() {
			continue
		}
		progress, finished := m.Step(elapsed)
		if finished {
			c.handleFinish(ctx, Finish{ParticipantID: p.ID, ReportedElapsed: m.FinishTime(), Accuracy: &perfect})
		} else {
			c.handleProgress(ctx, Progress{
				ParticipantID:   p.ID,
				ProgressPercent: progress,
				Speed:           m.Speed(),
				Accuracy:        100,
			})
		}
		if c.session.Status != models.RaceStatusActive {
			return
		}
	}
}

func (c *Coordinator) onTimeout(ctx context.Context) {
	c.timeoutTimer = nil
	if c.session.Status != models.RaceStatusActive {
		return
	}

	for _, p := range c.ordered() {
		if p.Done() {
			continue
		}
		p.Status = models.ParticipantStatusDNF
		c.publish(ctx, events.EventTypeParticipantAbandoned, "", events.ParticipantAbandonedPayload{
			ParticipantID: p.ID,
			Reason:        "timeout",
		})
	}

	log.Info().
		Str("session_id", c.session.ID.String()).
		Dur("max_duration", c.cfg.MaxDuration).
		Msg("race timed out")

	c.finish(ctx, true)
}

func (c *Coordinator) dissolve(ctx context.Context, reason string) {
	c.stopTimers()
	now := c.clock.Now()
	c.session.Status = models.RaceStatusDissolved
	c.session.FinishedAt = &now

	log.Info().
		Str("session_id", c.session.ID.String()).
		Str("reason", reason).
		Msg("session dissolved")

	c.publish(ctx, events.EventTypeSessionDissolved, "", events.SessionDissolvedPayload{Reason: reason})
}

func (c *Coordinator) stopTimers() {
	stopTicker(&c.countdownTicker)
	stopTicker(&c.moverTicker)
	if c.timeoutTimer != nil {
		c.timeoutTimer.Stop()
		c.timeoutTimer = nil
	}
}

func stopTicker(t *clockwork.Ticker) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}

// tickerChan returns nil for a nil ticker so its select case never fires.
func tickerChan(t clockwork.Ticker) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.Chan()
}

func timerChan(t clockwork.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.Chan()
}
