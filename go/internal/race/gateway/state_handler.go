package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/typerace/go/internal/models"
)

// ErrStateNotFound is returned by a StateProvider for unknown sessions.
var ErrStateNotFound = errors.New("race state not found")

// StateProvider retrieves race state for the HTTP API.
type StateProvider interface {
	GetRaceState(ctx context.Context, sessionID uuid.UUID) (*RaceStateResponse, error)
	GetActiveRaces(ctx context.Context) ([]RaceSummary, error)
}

// RaceStateResponse is the complete state of a race.
type RaceStateResponse struct {
	Session    *models.RaceSession `json:"session"`
	Elapsed    float64             `json:"elapsed"`
	ServerTime time.Time           `json:"server_time"`
	Results    []models.RaceResult `json:"results,omitempty"`
}

// RaceSummary describes a race that has not ended.
type RaceSummary struct {
	SessionID    string            `json:"session_id"`
	RaceType     string            `json:"race_type"`
	Status       models.RaceStatus `json:"status"`
	Participants int               `json:"participants"`
	MaxPlayers   int               `json:"max_players"`
	CreatedAt    time.Time         `json:"created_at"`
	StartedAt    *time.Time        `json:"started_at,omitempty"`
}

// StateHandler handles HTTP requests for race state.
type StateHandler struct {
	stateProvider StateProvider
}

// NewStateHandler creates a new state handler.
func NewStateHandler(provider StateProvider) *StateHandler {
	return &StateHandler{
		stateProvider: provider,
	}
}

// HandleGetRaceState handles GET /api/races/{id}/state
func (h *StateHandler) HandleGetRaceState(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid race ID format", http.StatusBadRequest)
		return
	}

	state, err := h.stateProvider.GetRaceState(r.Context(), sessionID)
	if errors.Is(err, ErrStateNotFound) {
		http.Error(w, "Race not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID.String()).Msg("failed to get race state")
		http.Error(w, "Failed to get race state", http.StatusInternalServerError)
		return
	}

	writeJSON(w, state)
}

// HandleGetActiveRaces handles GET /api/races/active
func (h *StateHandler) HandleGetActiveRaces(w http.ResponseWriter, r *http.Request) {
	races, err := h.stateProvider.GetActiveRaces(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to get active races")
		http.Error(w, "Failed to get active races", http.StatusInternalServerError)
		return
	}

	writeJSON(w, races)
}

// RegisterStateRoutes registers state-related HTTP routes.
func (h *StateHandler) RegisterStateRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/races/active", h.HandleGetActiveRaces)
	mux.HandleFunc("GET /api/races/{id}/state", h.HandleGetRaceState)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
