package prompt

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/typerace/go/internal/models"
)

// ErrNoPrompts is returned when the prompt table is empty.
var ErrNoPrompts = errors.New("no prompts available")

// Schema is the prompts table used by Repository and the seeding tool.
const Schema = `
CREATE TABLE IF NOT EXISTS prompts (
	id         TEXT PRIMARY KEY,
	text       TEXT NOT NULL,
	source     TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// Repository reads curated prompts from Postgres.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// NextPrompt returns a random stored prompt.
func (r *Repository) NextPrompt(ctx context.Context) (models.RacePrompt, error) {
	var p models.RacePrompt
	err := r.pool.QueryRow(ctx, `SELECT id, text, source FROM prompts ORDER BY random() LIMIT 1`).
		Scan(&p.ID, &p.Text, &p.Source)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.RacePrompt{}, ErrNoPrompts
	}
	if err != nil {
		return models.RacePrompt{}, fmt.Errorf("failed to load prompt: %w", err)
	}
	p.Length = utf8.RuneCountInString(p.Text)
	return p, nil
}

// Provider is anything that supplies prompts.
type Provider interface {
	NextPrompt(ctx context.Context) (models.RacePrompt, error)
}

// Fallback tries each provider in order and returns the first prompt.
type Fallback []Provider

func (f Fallback) NextPrompt(ctx context.Context) (models.RacePrompt, error) {
	var errs []error
	for _, p := range f {
		prompt, err := p.NextPrompt(ctx)
		if err == nil {
			return prompt, nil
		}
		log.Warn().Err(err).Msg("prompt provider failed, trying next")
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return models.RacePrompt{}, ErrNoPrompts
	}
	return models.RacePrompt{}, fmt.Errorf("all prompt providers failed: %w", errors.Join(errs...))
}
