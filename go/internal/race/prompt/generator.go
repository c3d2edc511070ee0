// Package prompt supplies the text participants race on.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"math/rand"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/random"
)

const SourceGenerated = "generated"

// DefaultWords is the built-in word list used when none is configured.
var DefaultWords = []string{
	"the", "of", "and", "to", "in", "is", "you", "that", "it", "he",
	"was", "for", "on", "are", "as", "with", "his", "they", "at", "be",
	"this", "have", "from", "or", "one", "had", "by", "word", "but", "not",
	"what", "all", "were", "we", "when", "your", "can", "said", "there", "use",
	"each", "which", "she", "do", "how", "their", "if", "will", "up", "other",
	"about", "out", "many", "then", "them", "these", "so", "some", "her", "would",
	"make", "like", "him", "into", "time", "has", "look", "two", "more", "write",
	"go", "see", "number", "no", "way", "could", "people", "my", "than", "first",
	"water", "been", "call", "who", "oil", "its", "now", "find", "long", "down",
	"day", "did", "get", "come", "made", "may", "part", "race", "track", "engine",
}

// GeneratorConfig controls generated prompts.
type GeneratorConfig struct {
	Words    []string
	Count    int     // words per prompt
	CapsPct  float64 // chance a word is capitalized
	PunctPct float64 // chance a word is followed by punctuation
	PunctSet []rune
	Seed     int64 // 0 draws a fresh seed
}

func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Words:    DefaultWords,
		Count:    25,
		CapsPct:  0.1,
		PunctPct: 0.08,
		PunctSet: []rune{',', '.', ';', '?', '!'},
	}
}

// Generator builds prompts from a word list with a seeded PRNG. It is safe
// for concurrent use.
type Generator struct {
	config GeneratorConfig
	seed   int64

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGenerator(config GeneratorConfig) (*Generator, error) {
	if len(config.Words) == 0 {
		return nil, errors.New("word list is empty")
	}
	if config.Count <= 0 {
		return nil, fmt.Errorf("invalid word count %d", config.Count)
	}
	rnd, seed, err := random.NewRand(config.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to seed generator: %w", err)
	}
	return &Generator{config: config, seed: seed, rnd: rnd}, nil
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 { return g.seed }

// NextPrompt returns a new prompt. Prompts always end in a letter so the
// final keystroke is unambiguous.
func (g *Generator) NextPrompt(_ context.Context) (models.RacePrompt, error) {
	g.mu.Lock()
	words := g.generate()
	g.mu.Unlock()

	text := strings.Join(words, " ")
	text = strings.TrimRightFunc(text, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })

	return models.RacePrompt{
		ID:     fmt.Sprintf("gen-%08x", crc32.ChecksumIEEE([]byte(text))),
		Text:   text,
		Length: utf8.RuneCountInString(text),
		Source: SourceGenerated,
	}, nil
}

func (g *Generator) generate() []string {
	cfg := g.config
	out := make([]string, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		word := cfg.Words[g.rnd.Intn(len(cfg.Words))]
		word = applyCaps(g.rnd, word, cfg.CapsPct)
		word = applyPunct(g.rnd, word, cfg.PunctPct, cfg.PunctSet)
		out = append(out, word)
	}
	return out
}

func applyCaps(rnd *rand.Rand, word string, pct float64) string {
	if pct <= 0 || rnd.Float64() > pct {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}

func applyPunct(rnd *rand.Rand, word string, pct float64, set []rune) string {
	if pct <= 0 || len(set) == 0 || rnd.Float64() > pct {
		return word
	}
	return word + string(set[rnd.Intn(len(set))])
}
