package gateway

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mcdev12/typerace/go/internal/race/evaluator"
)

// typingState is the server-side evaluator of one participant in one
// session. Every connection of that participant shares it, so a reconnect
// or a second tab continues from the accepted prefix.
type typingState struct {
	mu   sync.Mutex
	eval *evaluator.Evaluator
}

// evaluator returns the participant's evaluator, creating it on first use.
// The caller must hold mu.
func (s *typingState) evaluator(prompt string, opts evaluator.Options) *evaluator.Evaluator {
	if s.eval == nil {
		s.eval = evaluator.New(prompt, opts)
	}
	return s.eval
}

type typingKey struct {
	sessionID     uuid.UUID
	participantID string
}

// typingRegistry keys typing state by session and participant.
type typingRegistry struct {
	mu     sync.Mutex
	states map[typingKey]*typingState
}

func newTypingRegistry() *typingRegistry {
	return &typingRegistry{states: make(map[typingKey]*typingState)}
}

func (r *typingRegistry) get(sessionID uuid.UUID, participantID string) *typingState {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := typingKey{sessionID: sessionID, participantID: participantID}
	state, ok := r.states[key]
	if !ok {
		state = &typingState{}
		r.states[key] = state
	}
	return state
}

// dropSession forgets every participant of the session and returns how many
// entries were removed.
func (r *typingRegistry) dropSession(sessionID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for key := range r.states {
		if key.sessionID == sessionID {
			delete(r.states, key)
			n++
		}
	}
	return n
}

func (r *typingRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}
