package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/coordinator"
	"github.com/mcdev12/typerace/go/internal/race/events"
)

// WebSocketHandler handles websocket upgrade requests for race sessions.
type WebSocketHandler struct {
	connectionManager *ConnectionManager
	sessions          Sessions
}

// NewWebSocketHandler creates a new websocket handler.
func NewWebSocketHandler(cm *ConnectionManager, sessions Sessions) *WebSocketHandler {
	return &WebSocketHandler{
		connectionManager: cm,
		sessions:          sessions,
	}
}

// HandleRaceConnection upgrades the connection and joins the caller to a
// race. Without session_id the participant is placed in an open lobby.
//
//	GET /ws/race?participant_id=...&display_name=...[&session_id=...]
func (h *WebSocketHandler) HandleRaceConnection(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	participantID := query.Get("participant_id")
	if participantID == "" {
		participantID = uuid.New().String()
	}
	join := coordinator.Join{
		ParticipantID: participantID,
		DisplayName:   query.Get("display_name"),
		Kind:          models.ParticipantKindHuman,
		CosmeticRef:   query.Get("cosmetic_ref"),
	}

	var session *coordinator.Coordinator
	if sessionIDStr := query.Get("session_id"); sessionIDStr != "" {
		sessionID, err := uuid.Parse(sessionIDStr)
		if err != nil {
			http.Error(w, "invalid session_id format", http.StatusBadRequest)
			return
		}
		var ok bool
		if session, ok = h.sessions.Get(sessionID); !ok {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
	} else {
		var err error
		if session, err = h.sessions.Lobby(r.Context()); err != nil {
			log.Error().Err(err).Str("participant_id", participantID).Msg("failed to find a lobby")
			http.Error(w, "failed to join race", http.StatusServiceUnavailable)
			return
		}
	}

	cm := h.connectionManager
	limiter := newMessageLimiter(cm.clock, cm.config.RateLimit, cm.config.RateBurst)
	input := newInputHandler(participantID, session, limiter, cm.typing.get(session.ID(), participantID))
	conn, err := cm.upgrade(w, r, participantID, session.ID(), input)
	if err != nil {
		// The upgrader has already replied to the client.
		log.Error().
			Err(err).
			Str("session_id", session.ID().String()).
			Str("participant_id", participantID).
			Msg("failed to upgrade websocket connection")
		return
	}

	// The connection is registered before the join is submitted so the
	// client sees its own ParticipantJoined (or JoinRejected). Rejoining a
	// session the participant is already in is a no-op.
	h.sendStateSync(conn, session)
	input.submit(context.Background(), join)
}

// sendStateSync gives a (re)connecting client the full session view.
func (h *WebSocketHandler) sendStateSync(conn *Connection, session *coordinator.Coordinator) {
	snap := session.Snapshot()
	event, err := events.NewRaceEvent(snap.ID, 0, events.EventTypeStateSync, h.connectionManager.clock.Now(), events.StateSyncPayload{
		Session: *snap,
		Elapsed: session.Clock().Elapsed(),
	})
	if err != nil {
		log.Error().Err(err).Str("session_id", snap.ID.String()).Msg("failed to build state sync")
		return
	}
	event.Target = conn.ParticipantID
	h.connectionManager.sendDirect(conn, event)
}

// HandleConnectionStats returns statistics about active connections.
func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.connectionManager.Stats()); err != nil {
		log.Error().Err(err).Msg("failed to encode connection stats")
	}
}

// RegisterRoutes registers websocket routes with an HTTP mux.
func (h *WebSocketHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws/race", h.HandleRaceConnection)
	mux.HandleFunc("/ws/stats", h.HandleConnectionStats)
}
