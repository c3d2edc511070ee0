package results

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mcdev12/typerace/go/internal/models"
)

func sampleRecords(sessionID uuid.UUID) []models.RaceRecord {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	first, second := 21.5, 30.25
	base := models.RaceRecord{
		SessionID:  sessionID,
		RaceType:   "quick",
		PromptID:   "p-1",
		PromptText: "the quick brown fox",
		Seed:       42,
		RecordedAt: at,
	}

	dnf := base
	dnf.Result = models.RaceResult{ParticipantID: "c", DisplayName: "Cy", Kind: models.ParticipantKindHuman, Speed: 12, Accuracy: 80, DNF: true}
	winner := base
	winner.Result = models.RaceResult{ParticipantID: "b", DisplayName: "Bo", Kind: models.ParticipantKindSimulated, Faction: "red", Speed: 60, Accuracy: 100, Position: 1, RewardAmount: 19, FinishTime: &first}
	runnerUp := base
	runnerUp.Result = models.RaceResult{ParticipantID: "a", DisplayName: "Al", Kind: models.ParticipantKindHuman, Speed: 45, Accuracy: 96, Position: 2, RewardAmount: 9, FinishTime: &second}

	return []models.RaceRecord{dnf, winner, runnerUp}
}

func TestSQLiteStoreRecordAndList(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "results.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	sessionID := uuid.New()
	records := sampleRecords(sessionID)
	if err := store.RecordResults(ctx, records); err != nil {
		t.Fatalf("RecordResults: %v", err)
	}

	got, err := store.ListBySession(ctx, sessionID)
	if err != nil {
		t.Fatalf("ListBySession: %v", err)
	}
	want := []models.RaceRecord{records[1], records[2], records[0]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLiteStoreIgnoresRedelivery(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	sessionID := uuid.New()
	records := sampleRecords(sessionID)
	for i := 0; i < 2; i++ {
		if err := store.RecordResults(ctx, records); err != nil {
			t.Fatalf("RecordResults #%d: %v", i+1, err)
		}
	}

	got, err := store.ListBySession(ctx, sessionID)
	if err != nil {
		t.Fatalf("ListBySession: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("expected %d rows, got %d", len(records), len(got))
	}
}

type failingSink struct{ err error }

func (f failingSink) RecordResults(context.Context, []models.RaceRecord) error { return f.err }

type countingSink struct{ calls int }

func (c *countingSink) RecordResults(context.Context, []models.RaceRecord) error {
	c.calls++
	return nil
}

func TestMultiSinkContinuesPastFailure(t *testing.T) {
	boom := errors.New("boom")
	counter := &countingSink{}
	sink := MultiSink{failingSink{err: boom}, counter}

	err := sink.RecordResults(context.Background(), sampleRecords(uuid.New()))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if counter.calls != 1 {
		t.Fatalf("expected second sink to be called once, got %d", counter.calls)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}
	if !isUniqueViolation(dup) {
		t.Fatal("expected 23505 to be a unique violation")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatal("expected foreign key violation not to match")
	}
	if isUniqueViolation(errors.New("plain")) {
		t.Fatal("expected plain error not to match")
	}
}
