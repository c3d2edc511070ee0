package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/typerace/go/internal/race/events"
)

// ConnectionManager manages websocket connections for race sessions and fans
// race events out to them.
type ConnectionManager struct {
	// Connection pools organized by session ID
	sessionConnections map[uuid.UUID]map[*Connection]bool
	mu                 sync.RWMutex

	upgrader websocket.Upgrader
	config   ConnectionConfig
	clock    clockwork.Clock

	// Deduplicates events delivered both locally and through JetStream
	state *RaceStateManager

	// Server-side evaluators, shared by a participant's connections
	typing *typingRegistry

	broadcastCh chan BroadcastMessage
}

// Connection is one participant's websocket.
type Connection struct {
	ID            string
	ParticipantID string
	SessionID     uuid.UUID
	Conn          *websocket.Conn
	Send          chan []byte
	Manager       *ConnectionManager

	ConnectedAt time.Time

	input  *inputHandler
	cancel context.CancelFunc
}

// ConnectionConfig holds configuration for websocket connections.
type ConnectionConfig struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	SendBuffer      int
	CheckOrigin     func(r *http.Request) bool

	// Token bucket applied to each connection's inbound messages
	RateLimit float64 // messages per second
	RateBurst int

	// How long folded state of an ended race is kept for late readers
	StateRetention time.Duration
}

// BroadcastMessage is one event queued for delivery.
type BroadcastMessage struct {
	SessionID uuid.UUID
	Event     *events.RaceEvent
}

// DefaultConnectionConfig returns default websocket configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  1024,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		SendBuffer:      256,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
		RateLimit:      30,
		RateBurst:      60,
		StateRetention: 10 * time.Minute,
	}
}

// NewConnectionManager creates a connection manager. A nil clock uses the
// real clock.
func NewConnectionManager(config ConnectionConfig, clock clockwork.Clock) *ConnectionManager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if config.SendBuffer <= 0 {
		config.SendBuffer = 256
	}
	return &ConnectionManager{
		sessionConnections: make(map[uuid.UUID]map[*Connection]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		config:      config,
		clock:       clock,
		state:       NewRaceStateManager(),
		typing:      newTypingRegistry(),
		broadcastCh: make(chan BroadcastMessage, 1000),
	}
}

// Start processes queued broadcasts until ctx is done.
func (cm *ConnectionManager) Start(ctx context.Context) {
	log.Info().Msg("connection manager started")

	retention := cm.config.StateRetention
	if retention <= 0 {
		retention = 10 * time.Minute
	}
	prune := cm.clock.NewTicker(retention)
	defer prune.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("connection manager shutting down")
			return
		case message := <-cm.broadcastCh:
			cm.handleBroadcast(message)
		case <-prune.Chan():
			if n := cm.state.Prune(cm.clock.Now().Add(-retention)); n > 0 {
				log.Debug().Int("sessions", n).Msg("pruned ended race state")
			}
		}
	}
}

// Broadcast queues a race event for the session's connections. It never
// blocks the caller; a full queue drops the event.
func (cm *ConnectionManager) Broadcast(_ context.Context, event *events.RaceEvent) error {
	sessionID, err := uuid.Parse(event.SessionID)
	if err != nil {
		return fmt.Errorf("parse session ID: %w", err)
	}

	applied, err := cm.state.ProcessEvent(event)
	if err != nil {
		log.Warn().Err(err).Str("session_id", event.SessionID).Msg("failed to fold race event")
	}
	if !applied {
		log.Debug().
			Str("session_id", event.SessionID).
			Uint64("seq", event.Seq).
			Msg("duplicate race event dropped")
		return nil
	}
	if event.Type == events.EventTypeRaceResult || event.Type == events.EventTypeSessionDissolved {
		if n := cm.typing.dropSession(sessionID); n > 0 {
			log.Debug().Str("session_id", event.SessionID).Int("participants", n).Msg("typing state released")
		}
	}

	select {
	case cm.broadcastCh <- BroadcastMessage{SessionID: sessionID, Event: event}:
		return nil
	default:
		log.Warn().Str("session_id", event.SessionID).Msg("broadcast channel full, dropping message")
		return fmt.Errorf("broadcast channel full")
	}
}

// State returns the folded event state.
func (cm *ConnectionManager) State() *RaceStateManager { return cm.state }

// upgrade upgrades an HTTP connection and starts its pumps.
func (cm *ConnectionManager) upgrade(w http.ResponseWriter, r *http.Request, participantID string, sessionID uuid.UUID, input *inputHandler) (*Connection, error) {
	conn, err := cm.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to upgrade connection: %w", err)
	}

	connection := &Connection{
		ID:            uuid.New().String(),
		ParticipantID: participantID,
		SessionID:     sessionID,
		Conn:          conn,
		Send:          make(chan []byte, cm.config.SendBuffer),
		Manager:       cm,
		ConnectedAt:   cm.clock.Now(),
		input:         input,
	}

	cm.registerConnection(connection)

	ctx, cancel := context.WithCancel(context.Background())
	connection.cancel = cancel
	go connection.writePump()
	go connection.readPump(ctx)

	log.Info().
		Str("connection_id", connection.ID).
		Str("participant_id", participantID).
		Str("session_id", sessionID.String()).
		Msg("websocket connection established")

	return connection, nil
}

func (cm *ConnectionManager) registerConnection(conn *Connection) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.sessionConnections[conn.SessionID] == nil {
		cm.sessionConnections[conn.SessionID] = make(map[*Connection]bool)
	}
	cm.sessionConnections[conn.SessionID][conn] = true

	log.Debug().
		Str("connection_id", conn.ID).
		Str("session_id", conn.SessionID.String()).
		Int("total_connections", len(cm.sessionConnections[conn.SessionID])).
		Msg("connection registered")
}

// unregisterConnection removes a connection. It reports whether the
// connection was still registered.
func (cm *ConnectionManager) unregisterConnection(conn *Connection) bool {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	connections, exists := cm.sessionConnections[conn.SessionID]
	if !exists {
		return false
	}
	if _, exists := connections[conn]; !exists {
		return false
	}

	delete(connections, conn)
	close(conn.Send)
	if len(connections) == 0 {
		delete(cm.sessionConnections, conn.SessionID)
	}

	log.Info().
		Str("connection_id", conn.ID).
		Str("participant_id", conn.ParticipantID).
		Str("session_id", conn.SessionID.String()).
		Msg("connection unregistered")
	return true
}

// participantConnected reports whether the participant still has an open
// connection to the session.
func (cm *ConnectionManager) participantConnected(sessionID uuid.UUID, participantID string) bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	for conn := range cm.sessionConnections[sessionID] {
		if conn.ParticipantID == participantID {
			return true
		}
	}
	return false
}

// sendDirect queues an event for a single connection.
func (cm *ConnectionManager) sendDirect(conn *Connection, event *events.RaceEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal direct event")
		return
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()
	if !cm.sessionConnections[conn.SessionID][conn] {
		return
	}
	select {
	case conn.Send <- data:
	default:
		log.Warn().Str("connection_id", conn.ID).Msg("connection send buffer full, direct event dropped")
	}
}

func (cm *ConnectionManager) handleBroadcast(message BroadcastMessage) {
	data, err := json.Marshal(message.Event)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal event for broadcast")
		return
	}

	// Sends are non-blocking; the read lock keeps Send from being closed
	// underneath them.
	var slow []*Connection
	sent := 0
	cm.mu.RLock()
	for conn := range cm.sessionConnections[message.SessionID] {
		if message.Event.Target != "" && conn.ParticipantID != message.Event.Target {
			continue
		}
		select {
		case conn.Send <- data:
			sent++
		default:
			slow = append(slow, conn)
		}
	}
	cm.mu.RUnlock()

	for _, conn := range slow {
		log.Warn().
			Str("connection_id", conn.ID).
			Str("participant_id", conn.ParticipantID).
			Msg("connection send buffer full, closing connection")
		cm.unregisterConnection(conn)
		conn.Conn.Close()
	}

	log.Debug().
		Str("event_type", string(message.Event.Type)).
		Str("session_id", message.SessionID.String()).
		Uint64("seq", message.Event.Seq).
		Int("connections", sent).
		Msg("event broadcasted")
}

// ConnectionStats summarizes open connections.
type ConnectionStats struct {
	TotalConnections   int            `json:"total_connections"`
	ActiveSessions     int            `json:"active_sessions"`
	SessionConnections map[string]int `json:"session_connections"`
}

// Stats returns statistics about active connections.
func (cm *ConnectionManager) Stats() ConnectionStats {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	stats := ConnectionStats{
		ActiveSessions:     len(cm.sessionConnections),
		SessionConnections: make(map[string]int, len(cm.sessionConnections)),
	}
	for sessionID, connections := range cm.sessionConnections {
		stats.TotalConnections += len(connections)
		stats.SessionConnections[sessionID.String()] = len(connections)
	}
	return stats
}

func (c *Connection) writePump() {
	ticker := c.Manager.clock.NewTicker(c.Manager.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
		c.Manager.unregisterConnection(c)
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Error().
					Err(err).
					Str("connection_id", c.ID).
					Msg("failed to write message to websocket")
				return
			}

		case <-ticker.Chan():
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Error().
					Err(err).
					Str("connection_id", c.ID).
					Msg("failed to send ping")
				return
			}
		}
	}
}

func (c *Connection) readPump(ctx context.Context) {
	defer func() {
		c.cancel()
		c.Manager.unregisterConnection(c)
		c.Conn.Close()
		if c.input != nil && !c.Manager.participantConnected(c.SessionID, c.ParticipantID) {
			c.input.disconnected()
		}
	}()

	c.Conn.SetReadLimit(c.Manager.config.MaxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().
					Err(err).
					Str("connection_id", c.ID).
					Msg("unexpected websocket close")
			}
			return
		}

		if c.input != nil {
			c.input.handle(ctx, message)
		}
		c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	}
}
