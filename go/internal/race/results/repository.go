package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/sqlc-dev/pqtype"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/sqlutil"
)

const pgUniqueViolation = "23505"

// ErrAlreadyRecorded is returned when a session's results were stored before.
var ErrAlreadyRecorded = errors.New("race results already recorded")

const pgSchema = `
CREATE TABLE IF NOT EXISTS race_results (
	session_id     UUID        NOT NULL,
	participant_id TEXT        NOT NULL,
	display_name   TEXT        NOT NULL,
	kind           TEXT        NOT NULL,
	faction        TEXT,
	race_type      TEXT        NOT NULL,
	prompt_text    TEXT        NOT NULL,
	speed          DOUBLE PRECISION NOT NULL,
	accuracy       INTEGER     NOT NULL,
	position       INTEGER,
	reward_amount  INTEGER     NOT NULL,
	finish_time    DOUBLE PRECISION,
	dnf            BOOLEAN     NOT NULL,
	metadata       JSONB,
	recorded_at    TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (session_id, participant_id)
);
CREATE INDEX IF NOT EXISTS idx_race_results_participant ON race_results(participant_id, recorded_at DESC);
`

// Repository stores results in Postgres.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the results table if it does not exist.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, pgSchema); err != nil {
		return fmt.Errorf("failed to migrate race_results: %w", err)
	}
	return nil
}

// queries binds statements to one transaction.
type queries struct {
	tx *sql.Tx
}

func newQueries(tx *sql.Tx) *queries {
	return &queries{tx: tx}
}

func (q *queries) insertResult(ctx context.Context, rec models.RaceRecord) error {
	meta, err := json.Marshal(recordMetadata(rec))
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	res := rec.Result
	_, err = q.tx.ExecContext(ctx, `
		INSERT INTO race_results (
			session_id, participant_id, display_name, kind, faction, race_type, prompt_text,
			speed, accuracy, position, reward_amount, finish_time, dnf, metadata, recorded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		rec.SessionID,
		res.ParticipantID,
		res.DisplayName,
		string(res.Kind),
		sqlutil.ToSqlString(res.Faction),
		rec.RaceType,
		rec.PromptText,
		res.Speed,
		res.Accuracy,
		sqlutil.ToSqlInt32(res.Position),
		res.RewardAmount,
		sqlutil.ToSqlFloat64(res.FinishTime),
		res.DNF,
		pqtype.NullRawMessage{RawMessage: meta, Valid: len(meta) > 0},
		rec.RecordedAt,
	)
	return err
}

// RecordResults writes a race's records in one transaction. Redelivered
// results for the same session are ignored.
func (r *Repository) RecordResults(ctx context.Context, records []models.RaceRecord) error {
	if len(records) == 0 {
		return nil
	}

	err := sqlutil.Run(ctx, r.db, newQueries, func(q *queries) error {
		for _, rec := range records {
			if err := q.insertResult(ctx, rec); err != nil {
				if isUniqueViolation(err) {
					return ErrAlreadyRecorded
				}
				return fmt.Errorf("failed to insert result for %s: %w", rec.Result.ParticipantID, err)
			}
		}
		return nil
	})
	if errors.Is(err, ErrAlreadyRecorded) {
		log.Debug().
			Str("session_id", records[0].SessionID.String()).
			Msg("race results already recorded, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to record race results: %w", err)
	}
	return nil
}

// ListBySession returns a session's results, finishers first.
func (r *Repository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.RaceRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT session_id, participant_id, display_name, kind, faction, race_type, prompt_text,
		       speed, accuracy, position, reward_amount, finish_time, dnf, metadata, recorded_at
		FROM race_results
		WHERE session_id = $1
		ORDER BY dnf, position NULLS LAST, participant_id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results for session %s: %w", sessionID, err)
	}
	return scanRecords(rows)
}

// ListByParticipants returns the most recent results of the given
// participants, newest first.
func (r *Repository) ListByParticipants(ctx context.Context, participantIDs []string, limit int) ([]models.RaceRecord, error) {
	if len(participantIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT session_id, participant_id, display_name, kind, faction, race_type, prompt_text,
		       speed, accuracy, position, reward_amount, finish_time, dnf, metadata, recorded_at
		FROM race_results
		WHERE participant_id = ANY($1)
		ORDER BY recorded_at DESC
		LIMIT $2`, pq.Array(participantIDs), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results for participants: %w", err)
	}
	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]models.RaceRecord, error) {
	defer rows.Close()

	var records []models.RaceRecord
	for rows.Next() {
		var (
			rec        models.RaceRecord
			kind       string
			faction    sql.NullString
			position   sql.NullInt32
			finishTime sql.NullFloat64
			meta       pqtype.NullRawMessage
		)
		if err := rows.Scan(
			&rec.SessionID,
			&rec.Result.ParticipantID,
			&rec.Result.DisplayName,
			&kind,
			&faction,
			&rec.RaceType,
			&rec.PromptText,
			&rec.Result.Speed,
			&rec.Result.Accuracy,
			&position,
			&rec.Result.RewardAmount,
			&finishTime,
			&rec.Result.DNF,
			&meta,
			&rec.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan race result: %w", err)
		}
		rec.Result.Kind = models.ParticipantKind(kind)
		rec.Result.Faction = sqlutil.FromSqlString(faction, "")
		rec.Result.Position = sqlutil.FromSqlInt32(position)
		rec.Result.FinishTime = sqlutil.FromSqlFloat64(finishTime)
		applyMetadata(&rec, meta.RawMessage)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate race results: %w", err)
	}
	return records, nil
}

func applyMetadata(rec *models.RaceRecord, raw []byte) {
	if len(raw) == 0 {
		return
	}
	var m metadata
	if err := json.Unmarshal(raw, &m); err != nil {
		log.Warn().Err(err).Str("session_id", rec.SessionID.String()).Msg("invalid result metadata")
		return
	}
	rec.PromptID = m.PromptID
	rec.Seed = m.Seed
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
