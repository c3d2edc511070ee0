package mover_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/mover"
)

func TestFasterMoverFinishesFirst(t *testing.T) {
	const promptLen = 100
	slow := mover.New("slow", 40, promptLen)
	fast := mover.New("fast", 60, promptLen)

	var order []string
	for tick := 1; tick <= 2000 && len(order) < 2; tick++ {
		elapsed := float64(tick) / 10
		for _, m := range []*mover.Mover{slow, fast} {
			if _, done := m.Step(elapsed); done {
				order = append(order, m.ParticipantID())
			}
		}
	}

	if len(order) != 2 || order[0] != "fast" || order[1] != "slow" {
		t.Fatalf("expected finish order [fast slow], got %v", order)
	}
	// 100 chars at 300 cpm.
	if got := fast.FinishTime(); got != 20 {
		t.Fatalf("expected fast finish at 20s, got %v", got)
	}
	if got := slow.FinishTime(); math.Abs(got-30) > 1e-9 {
		t.Fatalf("expected slow finish at 30s, got %v", got)
	}
}

func TestProgressFormula(t *testing.T) {
	m := mover.New("ghost", 60, 100)

	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, 0},
		{-3, 0},
		{10, 50},
		{20, 100},
		{45, 100},
	}
	for _, tt := range tests {
		if got := m.Progress(tt.elapsed); got != tt.want {
			t.Fatalf("Progress(%v): expected %v, got %v", tt.elapsed, tt.want, got)
		}
	}
}

func TestStepReportsFinishOnce(t *testing.T) {
	m := mover.New("ghost", 60, 10)

	finishes := 0
	for tick := 1; tick <= 100; tick++ {
		if _, done := m.Step(float64(tick)); done {
			finishes++
		}
	}
	if finishes != 1 {
		t.Fatalf("expected exactly one finish, got %d", finishes)
	}
	if !m.Finished() {
		t.Fatal("expected mover marked finished")
	}
}

func TestSpeedFixedForRace(t *testing.T) {
	m := mover.New("ghost", 47.5, 200)
	for tick := 0; tick < 50; tick++ {
		m.Step(float64(tick))
		if m.Speed() != 47.5 {
			t.Fatalf("expected speed to stay 47.5, got %v", m.Speed())
		}
	}
}

func TestDrawIsReproducibleFromSeed(t *testing.T) {
	bands := mover.NewBands()

	draw := func(seed int64) []float64 {
		rng := rand.New(rand.NewSource(seed))
		var out []float64
		for i := 0; i < 5; i++ {
			out = append(out, bands.Draw("red", models.DifficultyHard, rng))
		}
		return out
	}

	a, b := draw(7), draw(7)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected identical draws for same seed, got %v and %v", a, b)
		}
		hard := mover.DefaultBands[models.DifficultyHard]
		if a[i] < hard.Min || a[i] > hard.Max {
			t.Fatalf("expected draw within %v-%v, got %v", hard.Min, hard.Max, a[i])
		}
	}
}
