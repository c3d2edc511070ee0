package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/coordinator"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RACE_MAX_PLAYERS", "8")
	t.Setenv("RACE_MAX_DURATION", "90s")
	t.Setenv("RACE_READY_POLICY", "all_ready")
	t.Setenv("NATS_ENABLED", "true")
	t.Setenv("RACE_COUNTDOWN_TICKS", "not-a-number")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	race := cfg.Manager.Defaults
	if cfg.Port != "9090" || race.MaxPlayers != 8 || race.MaxDuration != 90*time.Second {
		t.Fatalf("unexpected config: port=%s max_players=%d max_duration=%s", cfg.Port, race.MaxPlayers, race.MaxDuration)
	}
	if race.ReadyPolicy != coordinator.ReadyPolicyAllReady {
		t.Fatalf("expected ALL_READY, got %s", race.ReadyPolicy)
	}
	if !cfg.NATSEnabled {
		t.Fatal("expected NATS enabled")
	}
	if race.CountdownTicks != coordinator.DefaultConfig().CountdownTicks {
		t.Fatalf("expected invalid countdown to fall back to default, got %d", race.CountdownTicks)
	}
}

func TestLoadConfigRejectsUnknownPolicy(t *testing.T) {
	t.Setenv("RACE_READY_POLICY", "sometimes")
	if _, err := loadConfig(); err == nil {
		t.Fatal("expected error for unknown ready policy")
	}
}

func TestLoadBands(t *testing.T) {
	missing, err := loadBands(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("loadBands on missing file: %v", err)
	}
	if len(missing.Factions()) != 0 {
		t.Fatalf("expected only defaults, got factions %v", missing.Factions())
	}

	path := filepath.Join(t.TempDir(), "factions.yaml")
	data := []byte("factions:\n  hare:\n    MEDIUM: {min: 60, max: 60}\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	bands, err := loadBands(path)
	if err != nil {
		t.Fatalf("loadBands: %v", err)
	}
	if got := bands.Lookup("hare", models.DifficultyMedium); got.Min != 60 || got.Max != 60 {
		t.Fatalf("unexpected hare band %+v", got)
	}
}
