package api

import (
	"sort"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	racev1 "github.com/mcdev12/typerace/go/internal/genproto/race/v1"
	"github.com/mcdev12/typerace/go/internal/models"
)

func sessionToProto(snap *models.RaceSession) *racev1.RaceSession {
	if snap == nil {
		return nil
	}
	return &racev1.RaceSession{
		Id:             snap.ID.String(),
		Status:         string(snap.Status),
		RaceType:       snap.RaceType,
		Participants:   participantsToProto(snap.Participants),
		Prompt:         promptToProto(snap.Prompt),
		MaxPlayers:     int32(snap.MaxPlayers),
		HostId:         snap.HostID,
		Seed:           snap.Seed,
		Seq:            snap.Seq,
		CreatedAt:      timestamppb.New(snap.CreatedAt),
		StartTimestamp: optionalTimestamp(snap.StartTimestamp),
		FinishedAt:     optionalTimestamp(snap.FinishedAt),
	}
}

func promptToProto(prompt models.RacePrompt) *racev1.Prompt {
	return &racev1.Prompt{
		Id:     prompt.ID,
		Text:   prompt.Text,
		Length: int32(prompt.Length),
		Source: prompt.Source,
	}
}

// participantsToProto orders participants by join time so responses are stable.
func participantsToProto(participants map[string]*models.Participant) []*racev1.Participant {
	ordered := make([]*models.Participant, 0, len(participants))
	for _, p := range participants {
		ordered = append(ordered, p)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].JoinedAt.Equal(ordered[j].JoinedAt) {
			return ordered[i].JoinedAt.Before(ordered[j].JoinedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})

	out := make([]*racev1.Participant, len(ordered))
	for i, p := range ordered {
		out[i] = participantToProto(p)
	}
	return out
}

func participantToProto(p *models.Participant) *racev1.Participant {
	out := &racev1.Participant{
		Id:              p.ID,
		DisplayName:     p.DisplayName,
		Kind:            string(p.Kind),
		Faction:         p.Faction,
		Difficulty:      string(p.Difficulty),
		Ready:           p.Ready,
		Status:          string(p.Status),
		ProgressPercent: p.ProgressPercent,
		Speed:           p.Speed,
		Accuracy:        int32(p.Accuracy),
		CosmeticRef:     p.CosmeticRef,
	}
	if p.Position != nil {
		out.Position = int32(*p.Position)
	}
	if p.FinishTime != nil {
		out.FinishTime = *p.FinishTime
	}
	return out
}

func resultsToProto(results []models.RaceResult) []*racev1.RaceResult {
	out := make([]*racev1.RaceResult, len(results))
	for i, r := range results {
		out[i] = &racev1.RaceResult{
			ParticipantId: r.ParticipantID,
			DisplayName:   r.DisplayName,
			Kind:          string(r.Kind),
			Faction:       r.Faction,
			Speed:         r.Speed,
			Accuracy:      int32(r.Accuracy),
			Position:      int32(r.Position),
			RewardAmount:  int32(r.RewardAmount),
			Dnf:           r.DNF,
		}
		if r.FinishTime != nil {
			out[i].FinishTime = *r.FinishTime
		}
	}
	return out
}

func optionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}
