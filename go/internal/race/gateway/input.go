package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/coordinator"
	"github.com/mcdev12/typerace/go/internal/race/evaluator"
	"github.com/mcdev12/typerace/go/internal/race/events"
)

const leaveTimeout = 5 * time.Second

// Sessions is the part of the race manager the gateway routes to.
type Sessions interface {
	Get(id uuid.UUID) (*coordinator.Coordinator, bool)
	Lobby(ctx context.Context) (*coordinator.Coordinator, error)
}

// inputHandler turns one connection's client messages into coordinator
// messages. It is used only from the connection's read goroutine.
type inputHandler struct {
	participantID string
	session       *coordinator.Coordinator
	limiter       *messageLimiter
	typing        *typingState
}

func newInputHandler(participantID string, session *coordinator.Coordinator, limiter *messageLimiter, typing *typingState) *inputHandler {
	return &inputHandler{
		participantID: participantID,
		session:       session,
		limiter:       limiter,
		typing:        typing,
	}
}

func (h *inputHandler) handle(ctx context.Context, raw []byte) {
	if !h.limiter.Allow() {
		log.Warn().
			Str("session_id", h.session.ID().String()).
			Str("participant_id", h.participantID).
			Msg("client message rate limited")
		return
	}

	var msg events.ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Warn().Err(err).Str("participant_id", h.participantID).Msg("malformed client message dropped")
		return
	}

	var out coordinator.Message
	var err error
	switch msg.Type {
	case events.ClientJoin:
		var data events.JoinData
		err = msg.DecodeData(&data)
		out = coordinator.Join{
			ParticipantID: h.participantID,
			DisplayName:   data.DisplayName,
			Kind:          models.ParticipantKindHuman,
			CosmeticRef:   data.CosmeticRef,
			Faction:       data.Faction,
			Difficulty:    data.Difficulty,
		}
	case events.ClientReady:
		data := events.ReadyData{Ready: true}
		err = msg.DecodeData(&data)
		out = coordinator.Ready{ParticipantID: h.participantID, Ready: data.Ready}
	case events.ClientLeave:
		out = coordinator.Leave{ParticipantID: h.participantID, Reason: "left"}
	case events.ClientStart:
		out = coordinator.StartRequest{ParticipantID: h.participantID}
	case events.ClientProgress:
		var data events.ProgressData
		err = msg.DecodeData(&data)
		out = coordinator.Progress{
			ParticipantID:   h.participantID,
			ProgressPercent: data.ProgressPercent,
			Speed:           data.Speed,
			Accuracy:        data.Accuracy,
			ErrorCount:      data.ErrorCount,
			TotalKeystrokes: data.TotalKeystrokes,
		}
	case events.ClientFinish:
		var data events.FinishData
		err = msg.DecodeData(&data)
		out = coordinator.Finish{
			ParticipantID:   h.participantID,
			ReportedElapsed: data.ElapsedSeconds,
			Accuracy:        data.Accuracy,
		}
	case events.ClientKey, events.ClientBackspace, events.ClientDelta:
		// Held through submit so a participant's tabs reach the session in
		// the order they were evaluated.
		h.typing.mu.Lock()
		defer h.typing.mu.Unlock()
		out, err = h.evaluate(msg)
	default:
		log.Warn().
			Str("participant_id", h.participantID).
			Str("type", string(msg.Type)).
			Msg("unknown client message type")
		return
	}

	if err != nil {
		log.Debug().
			Err(err).
			Str("session_id", h.session.ID().String()).
			Str("participant_id", h.participantID).
			Str("type", string(msg.Type)).
			Msg("client input rejected")
	}
	if out == nil {
		return
	}
	h.submit(ctx, out)
}

// evaluate applies server-evaluated input and returns the progress or
// finish it produced. Rejected input still yields updated metrics since the
// error count changed. The caller holds h.typing.mu.
func (h *inputHandler) evaluate(msg events.ClientMessage) (coordinator.Message, error) {
	snap := h.session.Snapshot()
	if snap.Status != models.RaceStatusActive {
		return nil, errors.New("race not active")
	}

	eval := h.typing.evaluator(snap.Prompt.Text, h.session.Config().Input)

	var err error
	switch msg.Type {
	case events.ClientKey:
		var data events.KeyData
		if err = msg.DecodeData(&data); err != nil {
			return nil, err
		}
		r, size := utf8.DecodeRuneInString(data.Char)
		if size == 0 || r == utf8.RuneError {
			return nil, evaluator.ErrInputRejected
		}
		err = eval.ApplyChar(r)
	case events.ClientBackspace:
		if !eval.ApplyBackspace() {
			return nil, nil
		}
	case events.ClientDelta:
		var data events.DeltaData
		if err = msg.DecodeData(&data); err != nil {
			return nil, err
		}
		err = eval.ApplyDelta(data.Text)
	}
	if errors.Is(err, evaluator.ErrComplete) {
		return nil, err
	}

	elapsed := h.session.Clock().Elapsed()
	m := eval.Metrics(elapsed)
	if eval.IsComplete() && eval.MarkFinishReported() {
		return coordinator.Finish{
			ParticipantID:   h.participantID,
			ReportedElapsed: elapsed,
			Accuracy:        &m.Accuracy,
		}, err
	}
	return coordinator.Progress{
		ParticipantID:   h.participantID,
		ProgressPercent: m.ProgressPercent,
		Speed:           m.Speed,
		Accuracy:        m.Accuracy,
		ErrorCount:      eval.ErrorCount(),
		TotalKeystrokes: eval.TotalKeystrokes(),
	}, err
}

func (h *inputHandler) submit(ctx context.Context, msg coordinator.Message) {
	if err := h.session.Submit(ctx, msg); err != nil {
		event := log.Warn()
		if errors.Is(err, coordinator.ErrSessionClosed) || errors.Is(err, context.Canceled) {
			event = log.Debug()
		}
		event.Err(err).
			Str("session_id", h.session.ID().String()).
			Str("participant_id", h.participantID).
			Msg("failed to submit client message")
	}
}

// disconnected tells the session the participant's last connection closed.
func (h *inputHandler) disconnected() {
	ctx, cancel := context.WithTimeout(context.Background(), leaveTimeout)
	defer cancel()
	h.submit(ctx, coordinator.Leave{ParticipantID: h.participantID, Reason: "disconnected"})
}
