// Package gateway serves race sessions to websocket clients: it upgrades
// connections, feeds client input to the session coordinator and fans race
// events back out.
package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Config holds configuration for the gateway service.
type Config struct {
	ConnectionConfig ConnectionConfig
	JetStreamConfig  JetStreamConsumerConfig
	// ConsumeJetStream relays events from other nodes through JetStream.
	ConsumeJetStream bool
}

// DefaultConfig returns default configuration for the gateway.
func DefaultConfig() Config {
	return Config{
		ConnectionConfig: DefaultConnectionConfig(),
		JetStreamConfig:  DefaultJetStreamConsumerConfig(),
	}
}

// RaceSessions is everything the gateway needs from the session manager.
type RaceSessions interface {
	Sessions
	SessionLister
}

// Service is the race gateway: websocket connections, event broadcasting and
// the HTTP state endpoints.
type Service struct {
	connectionManager *ConnectionManager
	wsHandler         *WebSocketHandler
	eventConsumer     *EventConsumer
	stateHandler      *StateHandler
}

// NewService creates a gateway service around an existing connection
// manager, which the session manager already broadcasts to. The JetStream
// consumer is only connected when enabled in config.
func NewService(ctx context.Context, config Config, connectionManager *ConnectionManager, sessions RaceSessions, clock clockwork.Clock) (*Service, error) {
	provider := NewManagerStateProvider(sessions, connectionManager.State(), clock)

	s := &Service{
		connectionManager: connectionManager,
		wsHandler:         NewWebSocketHandler(connectionManager, sessions),
		stateHandler:      NewStateHandler(provider),
	}

	if config.ConsumeJetStream {
		consumer, err := NewEventConsumer(ctx, connectionManager, config.JetStreamConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create event consumer: %w", err)
		}
		s.eventConsumer = consumer
	}

	return s, nil
}

// Start runs the gateway until ctx is done.
func (s *Service) Start(ctx context.Context) error {
	log.Info().Bool("jetstream", s.eventConsumer != nil).Msg("starting race gateway service")

	go s.connectionManager.Start(ctx)

	if s.eventConsumer != nil {
		go func() {
			if err := s.eventConsumer.Start(ctx); err != nil {
				log.Error().Err(err).Msg("event consumer failed")
			}
		}()
	}

	<-ctx.Done()

	log.Info().Msg("race gateway service shutting down")
	return s.Stop()
}

// Stop shuts down the event consumer.
func (s *Service) Stop() error {
	if s.eventConsumer != nil {
		if err := s.eventConsumer.Stop(); err != nil {
			log.Error().Err(err).Msg("failed to stop event consumer")
		}
	}
	log.Info().Msg("race gateway service stopped")
	return nil
}

// RegisterRoutes registers the websocket and state routes.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.wsHandler.RegisterRoutes(mux)
	s.stateHandler.RegisterStateRoutes(mux)
	log.Info().Msg("race gateway routes registered")
}
