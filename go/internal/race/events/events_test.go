package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestParsePayloadRoundTrip(t *testing.T) {
	sessionID := uuid.New()
	want := &ParticipantFinishedPayload{ParticipantID: "p1", Position: 2, FinishTime: 31.5, Speed: 64}

	event, err := NewRaceEvent(sessionID, 9, EventTypeParticipantFinished, time.Unix(100, 0), want)
	if err != nil {
		t.Fatalf("NewRaceEvent: %v", err)
	}
	if event.SessionID != sessionID.String() || event.Seq != 9 || event.ID == "" {
		t.Fatalf("unexpected envelope: %+v", event)
	}
	if event.Timestamp.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp, got %s", event.Timestamp.Location())
	}

	got, err := ParsePayload(event)
	if err != nil {
		t.Fatalf("ParsePayload: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePayloadUnknownType(t *testing.T) {
	event := &RaceEvent{Type: "Teleported", Data: json.RawMessage(`{}`)}
	if _, err := ParsePayload(event); err == nil {
		t.Fatal("expected error for unknown event type")
	}
}

func TestDecodeData(t *testing.T) {
	ready := ReadyData{Ready: true}
	if err := (ClientMessage{Type: ClientReady}).DecodeData(&ready); err != nil {
		t.Fatalf("DecodeData without data: %v", err)
	}
	if !ready.Ready {
		t.Fatal("expected missing data to leave the default in place")
	}

	msg := ClientMessage{Type: ClientKey, Data: json.RawMessage(`{"char":"é"}`)}
	var key KeyData
	if err := msg.DecodeData(&key); err != nil {
		t.Fatalf("DecodeData: %v", err)
	}
	if key.Char != "é" {
		t.Fatalf("expected é, got %q", key.Char)
	}

	var finish FinishData
	if err := (ClientMessage{Type: ClientFinish, Data: json.RawMessage(`{"elapsed_seconds":3,"accuracy":0}`)}).DecodeData(&finish); err != nil {
		t.Fatalf("DecodeData finish: %v", err)
	}
	if finish.Accuracy == nil || *finish.Accuracy != 0 {
		t.Fatalf("expected an explicit zero accuracy, got %v", finish.Accuracy)
	}
	finish = FinishData{}
	if err := (ClientMessage{Type: ClientFinish, Data: json.RawMessage(`{"elapsed_seconds":3}`)}).DecodeData(&finish); err != nil {
		t.Fatalf("DecodeData finish: %v", err)
	}
	if finish.Accuracy != nil {
		t.Fatalf("expected missing accuracy to stay nil, got %d", *finish.Accuracy)
	}

	bad := ClientMessage{Type: ClientKey, Data: json.RawMessage(`[1,2]`)}
	if err := bad.DecodeData(&key); err == nil {
		t.Fatal("expected error for malformed data")
	}
}
