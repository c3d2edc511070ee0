package events

import (
	"encoding/json"
	"fmt"

	"github.com/mcdev12/typerace/go/internal/models"
)

// ClientMessageType names a client-to-server message.
type ClientMessageType string

const (
	ClientJoin      ClientMessageType = "join"
	ClientReady     ClientMessageType = "ready"
	ClientLeave     ClientMessageType = "leave"
	ClientStart     ClientMessageType = "start"
	ClientProgress  ClientMessageType = "progress"
	ClientFinish    ClientMessageType = "finish"
	ClientKey       ClientMessageType = "key"
	ClientBackspace ClientMessageType = "backspace"
	ClientDelta     ClientMessageType = "delta"
)

// ClientMessage is the envelope clients send over the websocket.
type ClientMessage struct {
	Type ClientMessageType `json:"type"`
	Data json.RawMessage   `json:"data,omitempty"`
}

type JoinData struct {
	DisplayName string            `json:"display_name"`
	CosmeticRef string            `json:"cosmetic_ref,omitempty"`
	Faction     string            `json:"faction,omitempty"`
	Difficulty  models.Difficulty `json:"difficulty,omitempty"`
}

type ReadyData struct {
	Ready bool `json:"ready"`
}

// ProgressData is sent by clients that evaluate input locally.
type ProgressData struct {
	ProgressPercent float64 `json:"progress_percent"`
	Speed           float64 `json:"speed"`
	Accuracy        int     `json:"accuracy"`
	ErrorCount      int     `json:"error_count"`
	TotalKeystrokes int     `json:"total_keystrokes"`
}

type FinishData struct {
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Accuracy       *int    `json:"accuracy,omitempty"`
}

type KeyData struct {
	Char string `json:"char"`
}

type DeltaData struct {
	Text string `json:"text"`
}

// DecodeData unmarshals the message data into v. Missing data leaves v as is.
func (m ClientMessage) DecodeData(v any) error {
	if len(m.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(m.Data, v); err != nil {
		return fmt.Errorf("decode %s data: %w", m.Type, err)
	}
	return nil
}
