// Package tuning holds the world-generation thresholds and loads optional
// overrides from a YAML file.
package tuning

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a tuning file parses but describes
// thresholds the generator cannot use.
var ErrInvalid = errors.New("invalid tuning")

// Thresholds are the named integer cut points used by the tile classifier.
// Rolls are drawn from [1,10000]; comparisons against these values are
// strict in both directions.
type Thresholds struct {
	Land    int `yaml:"land" json:"land"`       // Land if roll < Land
	Shore   int `yaml:"shore" json:"shore"`     // Shore if roll < Shore (overworld only)
	Shadow  int `yaml:"shadow" json:"shadow"`   // hermanos below, coral band above
	Coin    int `yaml:"coin" json:"coin"`       // coin if roll > Coin
	Fish    int `yaml:"fish" json:"fish"`       // Fish < roll < Coin
	Seaweed int `yaml:"seaweed" json:"seaweed"` // Seaweed < roll < Fish
	Coral   int `yaml:"coral" json:"coral"`     // Shadow < roll < Coral
	Bazar   int `yaml:"bazar" json:"bazar"`     // shore bazar if roll > Bazar
	Tree    int `yaml:"tree" json:"tree"`       // land tree if roll < Tree
	Hole    int `yaml:"hole" json:"hole"`       // land hole if roll > Hole
	Goal    int `yaml:"goal" json:"goal"`       // underworld goal if roll > Goal

	// IslandSeed is the cutoff for island seeds: a cell draws from [1,1000)
	// and becomes a seed when the draw is below this value.
	IslandSeed int `yaml:"island_seed" json:"island_seed"`

	// Re-roll ranges used when a neighbouring cell is an island seed.
	OverworldTouch  int `yaml:"overworld_touch" json:"overworld_touch"`
	UnderworldTouch int `yaml:"underworld_touch" json:"underworld_touch"`
}

// Default returns the stock thresholds. Note that Bazar is on a 900 scale
// while the water feature thresholds are on a 10000 scale; the values are
// compared literally.
func Default() Thresholds {
	return Thresholds{
		Land:            750,
		Shore:           900,
		Shadow:          902,
		Coin:            9970,
		Fish:            9350,
		Seaweed:         9100,
		Coral:           925,
		Bazar:           897,
		Tree:            1,
		Hole:            748,
		Goal:            9990,
		IslandSeed:      40,
		OverworldTouch:  1000,
		UnderworldTouch: 1500,
	}
}

// Validate checks the ordering constraints between thresholds.
func (t Thresholds) Validate() error {
	switch {
	case t.Land > t.Shore:
		return fmt.Errorf("%w: land (%d) above shore (%d)", ErrInvalid, t.Land, t.Shore)
	case t.Seaweed > t.Fish:
		return fmt.Errorf("%w: seaweed (%d) above fish (%d)", ErrInvalid, t.Seaweed, t.Fish)
	case t.Fish > t.Coin:
		return fmt.Errorf("%w: fish (%d) above coin (%d)", ErrInvalid, t.Fish, t.Coin)
	case t.Shadow > t.Coral:
		return fmt.Errorf("%w: shadow (%d) above coral (%d)", ErrInvalid, t.Shadow, t.Coral)
	case t.OverworldTouch <= 0 || t.UnderworldTouch <= 0:
		return fmt.Errorf("%w: touch ranges must be positive", ErrInvalid)
	case t.IslandSeed < 0 || t.IslandSeed > 1000:
		return fmt.Errorf("%w: island_seed %d outside [0,1000]", ErrInvalid, t.IslandSeed)
	}
	return nil
}

// Load reads a YAML tuning file. Keys that are absent keep their default
// values. An empty path returns the defaults.
func Load(path string) (Thresholds, error) {
	t := Default()
	if strings.TrimSpace(path) == "" {
		return t, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates YAML tuning content on top of the defaults.
func Parse(raw []byte) (Thresholds, error) {
	t := Default()

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if doc == nil {
		return t, nil
	}
	if err := validateDocument(doc); err != nil {
		return t, err
	}

	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Default(), err
	}
	return t, nil
}

// YAML encodes the thresholds, used by the -dump-tuning flag.
func (t Thresholds) YAML() ([]byte, error) {
	return yaml.Marshal(t)
}

// normalize turns a YAML-decoded document into the plain JSON value model
// the schema validator expects.
func normalize(doc any) (any, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
