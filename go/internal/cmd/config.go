package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mcdev12/typerace/go/internal/race/coordinator"
	"github.com/mcdev12/typerace/go/internal/race/mover"
)

// Config is the server configuration, read from the environment.
type Config struct {
	Port     string
	LogLevel string
	NodeID   string

	FactionsPath string
	// PromptSource is "generator" or "postgres".
	PromptSource string
	PromptWords  int

	// ResultsPostgres stores results in Postgres; SQLitePath, when set,
	// stores them in a local SQLite file as well.
	ResultsPostgres bool
	SQLitePath      string

	NATSEnabled bool
	NATSURL     string

	Manager coordinator.ManagerConfig
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func loadConfig() (*Config, error) {
	hostname, _ := os.Hostname()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		NodeID:          getEnv("NODE_ID", hostname),
		FactionsPath:    getEnv("FACTIONS_CONFIG", "config/factions.yaml"),
		PromptSource:    strings.ToLower(getEnv("PROMPT_SOURCE", "generator")),
		PromptWords:     getEnvAsInt("PROMPT_WORDS", 25),
		ResultsPostgres: getEnvAsBool("RESULTS_POSTGRES", false),
		SQLitePath:      getEnv("RESULTS_SQLITE_PATH", ""),
		NATSEnabled:     getEnvAsBool("NATS_ENABLED", false),
		NATSURL:         getEnv("NATS_URL", "nats://localhost:4222"),
		Manager:         coordinator.DefaultManagerConfig(),
	}

	race := &cfg.Manager.Defaults
	race.MaxPlayers = getEnvAsInt("RACE_MAX_PLAYERS", race.MaxPlayers)
	race.MinParticipants = getEnvAsInt("RACE_MIN_PARTICIPANTS", race.MinParticipants)
	race.CountdownTicks = getEnvAsInt("RACE_COUNTDOWN_TICKS", race.CountdownTicks)
	race.MaxDuration = getEnvAsDuration("RACE_MAX_DURATION", race.MaxDuration)
	race.ProgressTick = getEnvAsDuration("RACE_PROGRESS_TICK", race.ProgressTick)
	race.ReadyPolicy = coordinator.ReadyPolicy(strings.ToUpper(getEnv("RACE_READY_POLICY", string(race.ReadyPolicy))))
	cfg.Manager.Retention = getEnvAsDuration("RACE_RETENTION", cfg.Manager.Retention)

	switch race.ReadyPolicy {
	case coordinator.ReadyPolicyAnyReady, coordinator.ReadyPolicyAllReady, coordinator.ReadyPolicyHostStart:
	default:
		return nil, fmt.Errorf("unknown RACE_READY_POLICY %q", race.ReadyPolicy)
	}
	switch cfg.PromptSource {
	case "generator", "postgres":
	default:
		return nil, fmt.Errorf("unknown PROMPT_SOURCE %q", cfg.PromptSource)
	}
	return cfg, nil
}

// loadBands reads faction speed bands, falling back to the built-in
// defaults when the file is missing.
func loadBands(path string) (*mover.Bands, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return mover.NewBands(), nil
	}
	bands, err := mover.LoadBands(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load factions config: %w", err)
	}
	return bands, nil
}
