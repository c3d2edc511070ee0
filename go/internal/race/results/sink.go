// Package results stores finished race results. Sinks are called once per
// race by the session coordinator, outside the race's critical path.
package results

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcdev12/typerace/go/internal/models"
)

// Sink receives a finished race's records.
type Sink interface {
	RecordResults(ctx context.Context, records []models.RaceRecord) error
}

// MultiSink records to every sink and reports all failures together. A
// failing sink does not stop the others.
type MultiSink []Sink

func (m MultiSink) RecordResults(ctx context.Context, records []models.RaceRecord) error {
	var errs []error
	for i, s := range m {
		if err := s.RecordResults(ctx, records); err != nil {
			errs = append(errs, fmt.Errorf("sink %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// metadata is the free-form context stored next to each result row.
type metadata struct {
	PromptID string `json:"prompt_id,omitempty"`
	Seed     int64  `json:"seed"`
}

func recordMetadata(r models.RaceRecord) metadata {
	return metadata{
		PromptID: r.PromptID,
		Seed:     r.Seed,
	}
}
