// Package evaluator checks a participant's input against the race prompt
// and derives speed, accuracy and progress from it.
package evaluator

import (
	"errors"
	"math"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrInputRejected is returned when input does not extend the prompt.
	ErrInputRejected = errors.New("input rejected")
	// ErrPaste is returned when a delta adds more runes than allowed at once.
	ErrPaste = errors.New("input rejected: paste limit exceeded")
	// ErrPolicy is returned when an input method does not fit the policy.
	ErrPolicy = errors.New("input method not allowed by policy")
	// ErrComplete is returned for input after the prompt was completed.
	ErrComplete = errors.New("prompt already complete")
)

// Policy selects how non-matching input is handled.
type Policy string

const (
	// PolicyBlockOnError evaluates single keystrokes. A mismatch is counted
	// as an error and not appended, so the next matching key advances.
	PolicyBlockOnError Policy = "BLOCK_ON_ERROR"
	// PolicyPrefixFilter evaluates whole-text deltas from an input field and
	// accepts the new text only if it is still a prefix of the prompt.
	PolicyPrefixFilter Policy = "PREFIX_FILTER"
)

// DefaultMaxDeltaRunes bounds how much text a single delta may add.
const DefaultMaxDeltaRunes = 32

// Options configure an Evaluator.
type Options struct {
	Policy        Policy
	CurlyQuotes   bool
	MaxDeltaRunes int
}

// DefaultOptions returns block-on-error evaluation with the default paste limit.
func DefaultOptions() Options {
	return Options{
		Policy:        PolicyBlockOnError,
		MaxDeltaRunes: DefaultMaxDeltaRunes,
	}
}

// Metrics is a point-in-time view of a participant's performance.
type Metrics struct {
	Speed           float64 `json:"speed"`
	Accuracy        int     `json:"accuracy"`
	ProgressPercent float64 `json:"progress_percent"`
	Complete        bool    `json:"complete"`
}

// Evaluator tracks one participant's typed prefix. Accepted input is stored
// as the prompt's own runes, so the prefix always matches the prompt. It is
// not safe for concurrent use.
type Evaluator struct {
	prompt []rune
	typed  []rune
	opts   Options

	errorCount      int
	totalKeystrokes int
	finishReported  bool
}

// New returns an Evaluator for prompt. The prompt is NFC-normalized.
func New(prompt string, opts Options) *Evaluator {
	if opts.Policy == "" {
		opts.Policy = PolicyBlockOnError
	}
	p := []rune(norm.NFC.String(prompt))
	return &Evaluator{
		prompt: p,
		typed:  make([]rune, 0, len(p)),
		opts:   opts,
	}
}

// ApplyChar evaluates a single keystroke.
func (e *Evaluator) ApplyChar(r rune) error {
	if e.IsComplete() {
		return ErrComplete
	}
	e.totalKeystrokes++
	expected := e.prompt[len(e.typed)]
	if !Equivalent(r, expected, e.opts.CurlyQuotes) {
		e.errorCount++
		return ErrInputRejected
	}
	e.typed = append(e.typed, expected)
	return nil
}

// ApplyBackspace removes the last typed rune. Error counters are kept.
// It reports whether anything was removed.
func (e *Evaluator) ApplyBackspace() bool {
	if len(e.typed) == 0 || e.IsComplete() {
		return false
	}
	e.typed = e.typed[:len(e.typed)-1]
	return true
}

// ApplyDelta replaces the typed text with text if it is still a prefix of
// the prompt. Only valid under PolicyPrefixFilter.
func (e *Evaluator) ApplyDelta(text string) error {
	if e.opts.Policy != PolicyPrefixFilter {
		return ErrPolicy
	}
	if e.IsComplete() {
		return ErrComplete
	}

	next := []rune(norm.NFC.String(text))
	grown := len(next) - len(e.typed)

	if e.opts.MaxDeltaRunes > 0 && grown > e.opts.MaxDeltaRunes {
		e.totalKeystrokes++
		e.errorCount++
		return ErrPaste
	}
	if !e.isPrefix(next) {
		e.totalKeystrokes++
		e.errorCount++
		return ErrInputRejected
	}

	if grown > 0 {
		e.totalKeystrokes += grown
	}
	e.typed = append(e.typed[:0], e.prompt[:len(next)]...)
	return nil
}

func (e *Evaluator) isPrefix(text []rune) bool {
	if len(text) > len(e.prompt) {
		return false
	}
	for i, r := range text {
		if !Equivalent(r, e.prompt[i], e.opts.CurlyQuotes) {
			return false
		}
	}
	return true
}

// Metrics computes speed, accuracy and progress at elapsedSeconds.
func (e *Evaluator) Metrics(elapsedSeconds float64) Metrics {
	return Metrics{
		Speed:           Speed(len(e.typed), elapsedSeconds),
		Accuracy:        Accuracy(e.totalKeystrokes, e.errorCount),
		ProgressPercent: Progress(len(e.typed), len(e.prompt)),
		Complete:        e.IsComplete(),
	}
}

// IsComplete reports whether the whole prompt has been typed.
func (e *Evaluator) IsComplete() bool {
	return len(e.typed) == len(e.prompt)
}

// MarkFinishReported returns true exactly once, after completion.
func (e *Evaluator) MarkFinishReported() bool {
	if !e.IsComplete() || e.finishReported {
		return false
	}
	e.finishReported = true
	return true
}

// TypedPrefix returns the accepted part of the prompt.
func (e *Evaluator) TypedPrefix() string { return string(e.typed) }

// ErrorCount returns the number of rejected inputs.
func (e *Evaluator) ErrorCount() int { return e.errorCount }

// TotalKeystrokes returns the number of counted inputs.
func (e *Evaluator) TotalKeystrokes() int { return e.totalKeystrokes }

// PromptLength returns the prompt length in runes.
func (e *Evaluator) PromptLength() int { return len(e.prompt) }

// Speed returns words per minute with a word being five characters.
func Speed(chars int, elapsedSeconds float64) float64 {
	if elapsedSeconds <= 0 {
		return 0
	}
	return (float64(chars) / 5) / (elapsedSeconds / 60)
}

// Accuracy returns the rounded percentage of keystrokes that were correct.
func Accuracy(total, errs int) int {
	if total <= 0 {
		return 100
	}
	acc := int(math.Round(100 * float64(total-errs) / float64(total)))
	return max(0, min(100, acc))
}

// Progress returns the completed share of the prompt as a percentage.
func Progress(typed, promptLen int) float64 {
	if promptLen <= 0 {
		return 100
	}
	return 100 * float64(typed) / float64(promptLen)
}

// Length returns the rune length of text after normalization.
func Length(text string) int {
	return utf8.RuneCountInString(norm.NFC.String(text))
}
