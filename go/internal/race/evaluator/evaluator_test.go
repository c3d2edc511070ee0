package evaluator_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/unicode/norm"

	"github.com/mcdev12/typerace/go/internal/race/evaluator"
)

func TestApplyCharBlocksOnMismatch(t *testing.T) {
	ev := evaluator.New("cat", evaluator.DefaultOptions())

	if err := ev.ApplyChar('c'); err != nil {
		t.Fatalf("expected 'c' accepted, got %v", err)
	}
	if err := ev.ApplyChar('x'); !errors.Is(err, evaluator.ErrInputRejected) {
		t.Fatalf("expected ErrInputRejected for 'x', got %v", err)
	}
	if got := ev.TypedPrefix(); got != "c" {
		t.Fatalf("expected prefix %q after mismatch, got %q", "c", got)
	}
	if ev.ErrorCount() != 1 || ev.TotalKeystrokes() != 2 {
		t.Fatalf("expected errors=1 keystrokes=2, got errors=%d keystrokes=%d", ev.ErrorCount(), ev.TotalKeystrokes())
	}

	// The rejected rune was never appended, so the next expected rune advances.
	for _, r := range "at" {
		if err := ev.ApplyChar(r); err != nil {
			t.Fatalf("expected %q accepted, got %v", r, err)
		}
	}

	want := evaluator.Metrics{Speed: 0, Accuracy: 75, ProgressPercent: 100, Complete: true}
	if diff := cmp.Diff(want, ev.Metrics(0)); diff != "" {
		t.Fatalf("metrics mismatch (-want +got):\n%s", diff)
	}
	if ev.TotalKeystrokes() != 4 {
		t.Fatalf("expected 4 keystrokes, got %d", ev.TotalKeystrokes())
	}
}

func TestApplyCharAfterCompletion(t *testing.T) {
	ev := evaluator.New("ab", evaluator.DefaultOptions())
	_ = ev.ApplyChar('a')
	_ = ev.ApplyChar('b')

	if err := ev.ApplyChar('c'); !errors.Is(err, evaluator.ErrComplete) {
		t.Fatalf("expected ErrComplete, got %v", err)
	}
	if ev.ApplyBackspace() {
		t.Fatal("expected backspace to be ignored after completion")
	}
	if ev.TotalKeystrokes() != 2 {
		t.Fatalf("expected keystrokes unchanged at 2, got %d", ev.TotalKeystrokes())
	}
}

func TestBackspaceKeepsErrorCount(t *testing.T) {
	ev := evaluator.New("dog", evaluator.DefaultOptions())
	_ = ev.ApplyChar('d')
	_ = ev.ApplyChar('x')
	_ = ev.ApplyChar('o')

	if !ev.ApplyBackspace() {
		t.Fatal("expected backspace to remove a rune")
	}
	if got := ev.TypedPrefix(); got != "d" {
		t.Fatalf("expected prefix %q, got %q", "d", got)
	}
	if ev.ErrorCount() != 1 {
		t.Fatalf("expected error count to stay at 1, got %d", ev.ErrorCount())
	}

	_ = ev.ApplyBackspace()
	if ev.ApplyBackspace() {
		t.Fatal("expected backspace on empty prefix to be a no-op")
	}
}

func TestPunctuationEquivalence(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		input  string
		curly  bool
		ok     bool
	}{
		{"em dash typed as hyphen", "a—b", "a-b", false, true},
		{"en dash typed as hyphen", "a–b", "a-b", false, true},
		{"hyphen typed as em dash", "a-b", "a—b", false, true},
		{"curly apostrophe disabled", "it’s", "it's", false, false},
		{"curly apostrophe enabled", "it’s", "it's", true, true},
		{"curly double quotes enabled", "“hi”", "\"hi\"", true, true},
		{"plain mismatch", "abc", "abd", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := evaluator.DefaultOptions()
			opts.CurlyQuotes = tt.curly
			ev := evaluator.New(tt.prompt, opts)
			for _, r := range tt.input {
				_ = ev.ApplyChar(r)
			}
			if ev.IsComplete() != tt.ok {
				t.Fatalf("expected complete=%v, got prefix %q errors=%d", tt.ok, ev.TypedPrefix(), ev.ErrorCount())
			}
			if !strings.HasPrefix(norm.NFC.String(tt.prompt), ev.TypedPrefix()) {
				t.Fatalf("expected prefix %q of prompt %q", ev.TypedPrefix(), tt.prompt)
			}
		})
	}
}

func TestEquivalentInputStoresPromptRunes(t *testing.T) {
	ev := evaluator.New("a-b", evaluator.DefaultOptions())
	for _, r := range "a—" {
		if err := ev.ApplyChar(r); err != nil {
			t.Fatalf("expected %q accepted, got %v", r, err)
		}
	}
	if got := ev.TypedPrefix(); got != "a-" {
		t.Fatalf("expected prompt runes %q, got %q", "a-", got)
	}

	delta := evaluator.New("it’s “fine”", evaluator.Options{Policy: evaluator.PolicyPrefixFilter, CurlyQuotes: true})
	if err := delta.ApplyDelta("it's \"fi"); err != nil {
		t.Fatalf("expected straight quotes accepted, got %v", err)
	}
	if got := delta.TypedPrefix(); got != "it’s “fi" {
		t.Fatalf("expected prompt runes %q, got %q", "it’s “fi", got)
	}
}

func TestNFCNormalization(t *testing.T) {
	// Prompt uses precomposed é, input uses e + combining acute.
	ev := evaluator.New("caf\u00e9", evaluator.Options{Policy: evaluator.PolicyPrefixFilter})
	if err := ev.ApplyDelta("cafe\u0301"); err != nil {
		t.Fatalf("expected decomposed input accepted, got %v", err)
	}
	if !ev.IsComplete() {
		t.Fatal("expected prompt complete")
	}
}

func TestApplyDeltaPrefixFilter(t *testing.T) {
	ev := evaluator.New("hello world", evaluator.Options{Policy: evaluator.PolicyPrefixFilter, MaxDeltaRunes: 8})

	if err := ev.ApplyDelta("hel"); err != nil {
		t.Fatalf("expected prefix accepted, got %v", err)
	}
	if err := ev.ApplyDelta("helx"); !errors.Is(err, evaluator.ErrInputRejected) {
		t.Fatalf("expected non-prefix rejected, got %v", err)
	}
	if got := ev.TypedPrefix(); got != "hel" {
		t.Fatalf("expected rejected delta dropped, got %q", got)
	}
	if err := ev.ApplyDelta("he"); err != nil {
		t.Fatalf("expected shrinking delta accepted, got %v", err)
	}
	if err := ev.ApplyDelta("hello world"); !errors.Is(err, evaluator.ErrPaste) {
		t.Fatalf("expected paste rejected, got %v", err)
	}
	if err := ev.ApplyDelta("hello wo"); err != nil {
		t.Fatalf("expected delta within limit accepted, got %v", err)
	}

	// 3 + 1 rejected + 1 paste + 6 grown
	if ev.TotalKeystrokes() != 11 || ev.ErrorCount() != 2 {
		t.Fatalf("expected keystrokes=11 errors=2, got keystrokes=%d errors=%d", ev.TotalKeystrokes(), ev.ErrorCount())
	}
}

func TestApplyDeltaRequiresPrefixPolicy(t *testing.T) {
	ev := evaluator.New("abc", evaluator.DefaultOptions())
	if err := ev.ApplyDelta("a"); !errors.Is(err, evaluator.ErrPolicy) {
		t.Fatalf("expected ErrPolicy, got %v", err)
	}
}

func TestMetricsFormulas(t *testing.T) {
	prompt := strings.Repeat("a", 50)
	ev := evaluator.New(prompt, evaluator.DefaultOptions())
	for i := 0; i < 25; i++ {
		_ = ev.ApplyChar('a')
	}

	m := ev.Metrics(30)
	// 25 chars = 5 words in half a minute.
	if m.Speed != 10 {
		t.Fatalf("expected speed 10, got %v", m.Speed)
	}
	if m.ProgressPercent != 50 {
		t.Fatalf("expected progress 50, got %v", m.ProgressPercent)
	}
	if m.Accuracy != 100 {
		t.Fatalf("expected accuracy 100, got %d", m.Accuracy)
	}
	if got := ev.Metrics(0).Speed; got != 0 {
		t.Fatalf("expected zero speed at zero elapsed, got %v", got)
	}
	if got := ev.Metrics(-1).Speed; got != 0 {
		t.Fatalf("expected zero speed at negative elapsed, got %v", got)
	}
}

func TestAccuracyRounding(t *testing.T) {
	tests := []struct {
		total, errs, want int
	}{
		{0, 0, 100},
		{3, 1, 67},
		{8, 1, 88},
		{200, 1, 100}, // 99.5 rounds away from zero
		{5, 5, 0},
	}
	for _, tt := range tests {
		if got := evaluator.Accuracy(tt.total, tt.errs); got != tt.want {
			t.Fatalf("Accuracy(%d, %d): expected %d, got %d", tt.total, tt.errs, tt.want, got)
		}
	}
}

func TestMarkFinishReportedOnce(t *testing.T) {
	ev := evaluator.New("ok", evaluator.DefaultOptions())
	if ev.MarkFinishReported() {
		t.Fatal("expected no finish before completion")
	}
	_ = ev.ApplyChar('o')
	_ = ev.ApplyChar('k')
	if !ev.MarkFinishReported() {
		t.Fatal("expected first finish report")
	}
	if ev.MarkFinishReported() {
		t.Fatal("expected finish reported only once")
	}
}

func TestRandomSequencesKeepBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	prompt := "the quick brown fox — jumps"
	alphabet := []rune("thequickbrownfxjmps -—x")

	for run := 0; run < 200; run++ {
		ev := evaluator.New(prompt, evaluator.DefaultOptions())
		completions := 0
		prevKeys := 0

		for step := 0; step < 300; step++ {
			if rng.Intn(6) == 0 {
				ev.ApplyBackspace()
			} else {
				_ = ev.ApplyChar(alphabet[rng.Intn(len(alphabet))])
			}
			if ev.MarkFinishReported() {
				completions++
			}

			m := ev.Metrics(float64(step+1) / 10)
			if m.Accuracy < 0 || m.Accuracy > 100 {
				t.Fatalf("accuracy out of range: %d", m.Accuracy)
			}
			if m.ProgressPercent < 0 || m.ProgressPercent > 100 {
				t.Fatalf("progress out of range: %v", m.ProgressPercent)
			}
			if !strings.HasPrefix(prompt, ev.TypedPrefix()) {
				t.Fatalf("typed prefix %q diverged from prompt", ev.TypedPrefix())
			}
			if ev.TotalKeystrokes() < prevKeys {
				t.Fatalf("keystrokes decreased from %d to %d", prevKeys, ev.TotalKeystrokes())
			}
			prevKeys = ev.TotalKeystrokes()
		}
		if completions > 1 {
			t.Fatalf("expected at most one completion, got %d", completions)
		}
	}
}
