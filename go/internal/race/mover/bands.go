package mover

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mcdev12/typerace/go/internal/models"
)

// Band is an inclusive words-per-minute range.
type Band struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Draw returns a uniform speed within the band.
func (b Band) Draw(rng *rand.Rand) float64 {
	if b.Max <= b.Min {
		return b.Min
	}
	return b.Min + rng.Float64()*(b.Max-b.Min)
}

// DefaultBands are used for factions without their own entry.
var DefaultBands = map[models.Difficulty]Band{
	models.DifficultyEasy:   {Min: 25, Max: 35},
	models.DifficultyMedium: {Min: 40, Max: 55},
	models.DifficultyHard:   {Min: 60, Max: 80},
}

// Bands maps (faction, difficulty) to a speed band.
type Bands struct {
	mu       sync.RWMutex
	factions map[string]map[models.Difficulty]Band
	fallback map[models.Difficulty]Band
}

// NewBands returns a registry with only the default bands.
func NewBands() *Bands {
	fallback := make(map[models.Difficulty]Band, len(DefaultBands))
	for d, b := range DefaultBands {
		fallback[d] = b
	}
	return &Bands{
		factions: make(map[string]map[models.Difficulty]Band),
		fallback: fallback,
	}
}

// Register sets the band for a faction and difficulty.
func (b *Bands) Register(faction string, difficulty models.Difficulty, band Band) error {
	if band.Min <= 0 || band.Max < band.Min {
		return fmt.Errorf("invalid band %v-%v for faction %q", band.Min, band.Max, faction)
	}
	key := normalizeFaction(faction)

	b.mu.Lock()
	defer b.mu.Unlock()
	if key == "" {
		b.fallback[difficulty] = band
		return nil
	}
	if b.factions[key] == nil {
		b.factions[key] = make(map[models.Difficulty]Band)
	}
	b.factions[key][difficulty] = band
	return nil
}

// Lookup returns the band for a faction, falling back to the default for
// the difficulty and finally to the medium band.
func (b *Bands) Lookup(faction string, difficulty models.Difficulty) Band {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if byDiff, ok := b.factions[normalizeFaction(faction)]; ok {
		if band, ok := byDiff[difficulty]; ok {
			return band
		}
	}
	if band, ok := b.fallback[difficulty]; ok {
		return band
	}
	return b.fallback[models.DifficultyMedium]
}

// Draw picks a speed for a simulated participant from the session RNG.
func (b *Bands) Draw(faction string, difficulty models.Difficulty, rng *rand.Rand) float64 {
	return b.Lookup(faction, difficulty).Draw(rng)
}

// Factions lists the factions with explicit bands.
func (b *Bands) Factions() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.factions))
	for f := range b.factions {
		out = append(out, f)
	}
	return out
}

// bandsFile is the on-disk layout:
//
//	defaults:
//	  EASY: {min: 25, max: 35}
//	factions:
//	  red:
//	    HARD: {min: 70, max: 90}
type bandsFile struct {
	Defaults map[models.Difficulty]Band            `yaml:"defaults"`
	Factions map[string]map[models.Difficulty]Band `yaml:"factions"`
}

// ParseBands builds a registry from YAML.
func ParseBands(data []byte) (*Bands, error) {
	var f bandsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse bands: %w", err)
	}

	bands := NewBands()
	for d, band := range f.Defaults {
		if err := bands.Register("", normalizeDifficulty(d), band); err != nil {
			return nil, err
		}
	}
	for faction, byDiff := range f.Factions {
		for d, band := range byDiff {
			if err := bands.Register(faction, normalizeDifficulty(d), band); err != nil {
				return nil, err
			}
		}
	}
	return bands, nil
}

// LoadBands reads a YAML bands file.
func LoadBands(path string) (*Bands, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bands file: %w", err)
	}
	return ParseBands(data)
}

func normalizeFaction(f string) string {
	return strings.ToLower(strings.TrimSpace(f))
}

func normalizeDifficulty(d models.Difficulty) models.Difficulty {
	return models.Difficulty(strings.ToUpper(strings.TrimSpace(string(d))))
}
