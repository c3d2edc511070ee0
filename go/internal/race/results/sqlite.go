package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/sqlutil"

	_ "modernc.org/sqlite" // SQLite driver.
)

// SQLiteStore keeps results in a local SQLite file for development and
// offline simulation.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and applies migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create results dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer; SQLite serializes writes anyway.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS race_results (
			session_id TEXT NOT NULL,
			participant_id TEXT NOT NULL,
			display_name TEXT NOT NULL,
			kind TEXT NOT NULL,
			faction TEXT,
			race_type TEXT NOT NULL,
			prompt_text TEXT NOT NULL,
			speed REAL NOT NULL,
			accuracy INTEGER NOT NULL,
			position INTEGER,
			reward_amount INTEGER NOT NULL,
			finish_time REAL,
			dnf INTEGER NOT NULL,
			metadata TEXT,
			recorded_at TEXT NOT NULL,
			PRIMARY KEY (session_id, participant_id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_race_results_recorded_at ON race_results(recorded_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RecordResults stores a race's records in one transaction. Rows already
// present are left untouched so redelivery is harmless.
func (s *SQLiteStore) RecordResults(ctx context.Context, records []models.RaceRecord) error {
	if len(records) == 0 {
		return nil
	}
	err := sqlutil.Run(ctx, s.db, newQueries, func(q *queries) error {
		stmt, err := q.tx.PrepareContext(ctx, `
			INSERT OR IGNORE INTO race_results (
				session_id, participant_id, display_name, kind, faction, race_type, prompt_text,
				speed, accuracy, position, reward_amount, finish_time, dnf, metadata, recorded_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, rec := range records {
			meta, err := json.Marshal(recordMetadata(rec))
			if err != nil {
				return fmt.Errorf("marshal metadata: %w", err)
			}
			res := rec.Result
			if _, err := stmt.ExecContext(ctx,
				rec.SessionID.String(),
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
				string(meta),
				rec.RecordedAt.UTC().Format(time.RFC3339Nano),
			); err != nil {
				return fmt.Errorf("insert result for %s: %w", res.ParticipantID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record race results: %w", err)
	}
	return nil
}

// ListBySession returns a session's results, finishers first.
func (s *SQLiteStore) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.RaceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, participant_id, display_name, kind, faction, race_type, prompt_text,
		       speed, accuracy, position, reward_amount, finish_time, dnf, metadata, recorded_at
		FROM race_results
		WHERE session_id = ?
		ORDER BY dnf, position IS NULL, position, participant_id`, sessionID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list results for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	var records []models.RaceRecord
	for rows.Next() {
		var (
			rec        models.RaceRecord
			sid        string
			kind       string
			faction    sql.NullString
			position   sql.NullInt32
			finishTime sql.NullFloat64
			meta       sql.NullString
			recordedAt string
		)
		if err := rows.Scan(
			&sid,
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
			&recordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan race result: %w", err)
		}
		if rec.SessionID, err = uuid.Parse(sid); err != nil {
			return nil, fmt.Errorf("invalid session id %q: %w", sid, err)
		}
		if rec.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt); err != nil {
			return nil, fmt.Errorf("invalid recorded_at %q: %w", recordedAt, err)
		}
		rec.Result.Kind = models.ParticipantKind(kind)
		rec.Result.Faction = sqlutil.FromSqlString(faction, "")
		rec.Result.Position = sqlutil.FromSqlInt32(position)
		rec.Result.FinishTime = sqlutil.FromSqlFloat64(finishTime)
		applyMetadata(&rec, []byte(meta.String))
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate race results: %w", err)
	}
	return records, nil
}
