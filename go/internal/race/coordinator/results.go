package coordinator

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/events"
	"github.com/mcdev12/typerace/go/internal/race/reward"
)

const recordTimeout = 10 * time.Second

// finish ends the race and emits results. It runs at most once because the
// session is terminal afterwards.
func (c *Coordinator) finish(ctx context.Context, timedOut bool) {
	if c.session.Status.Terminal() {
		return
	}
	c.stopTimers()

	now := c.clock.Now()
	c.session.Status = models.RaceStatusFinished
	c.session.FinishedAt = &now

	results := c.buildResults()
	c.results.Store(&results)

	log.Info().
		Str("session_id", c.session.ID.String()).
		Int("finishers", c.nextPosition).
		Int("participants", len(results)).
		Bool("timed_out", timedOut).
		Msg("race finished")

	c.publish(ctx, events.EventTypeRaceResult, "", events.RaceResultPayload{
		RaceType:   c.session.RaceType,
		PromptLen:  c.session.Prompt.Length,
		Results:    results,
		FinishedAt: now.UTC(),
		TimedOut:   timedOut,
	})

	c.recordResults(ctx, results, now)
}

// buildResults lists finishers by position, then everyone else in join order.
func (c *Coordinator) buildResults() []models.RaceResult {
	participants := c.ordered()
	sort.SliceStable(participants, func(i, j int) bool {
		pi, pj := participants[i].Position, participants[j].Position
		switch {
		case pi != nil && pj != nil:
			return *pi < *pj
		case pi != nil:
			return true
		default:
			return false
		}
	})

	results := make([]models.RaceResult, 0, len(participants))
	for _, p := range participants {
		r := models.RaceResult{
			ParticipantID: p.ID,
			DisplayName:   p.DisplayName,
			Kind:          p.Kind,
			Faction:       p.Faction,
			Speed:         p.Speed,
			Accuracy:      p.Accuracy,
			DNF:           p.Position == nil,
		}
		if p.Position != nil {
			r.Position = *p.Position
			r.RewardAmount = reward.Amount(c.session.Prompt.Length, r.Position)
			ft := *p.FinishTime
			r.FinishTime = &ft
		}
		results = append(results, r)
	}
	return results
}

func (c *Coordinator) recordResults(ctx context.Context, results []models.RaceResult, at time.Time) {
	if c.sink == nil || len(results) == 0 {
		return
	}

	records := make([]models.RaceRecord, 0, len(results))
	for _, r := range results {
		records = append(records, models.RaceRecord{
			Result:     r,
			SessionID:  c.session.ID,
			RaceType:   c.session.RaceType,
			PromptID:   c.session.Prompt.ID,
			PromptText: c.session.Prompt.Text,
			Seed:       c.session.Seed,
			RecordedAt: at.UTC(),
		})
	}

	// Results are recorded even when the caller is shutting down.
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := c.sink.RecordResults(recordCtx, records); err != nil {
		log.Error().
			Err(err).
			Str("session_id", c.session.ID.String()).
			Int("records", len(records)).
			Msg("failed to record race results")
		return
	}

	log.Debug().
		Str("session_id", c.session.ID.String()).
		Int("records", len(records)).
		Msg("race results recorded")
}
