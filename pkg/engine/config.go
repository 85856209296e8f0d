package engine

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Settings are the engine options, read once at startup and constant for the
// lifetime of a game.
type Settings struct {
	// EvalPrint logs the evaluation breakdown after each engine move.
	EvalPrint bool `toml:"eval_print"`
	// Pruning enables alpha-beta pruning in the search.
	Pruning bool `toml:"pruning"`
	// PositionalValueFactor weights the non-material evaluation terms, in
	// percent. Clamped to [0;100].
	PositionalValueFactor int `toml:"positional_value_factor"`
	// SearchDepth is the maximum ply depth of the search. At least 1.
	SearchDepth int `toml:"search_depth"`
}

// DefaultSettings returns the settings used when no settings file is given.
func DefaultSettings() Settings {
	return Settings{
		Pruning:               true,
		PositionalValueFactor: 100,
		SearchDepth:           4,
	}
}

// LoadSettings reads a TOML settings file and clamps the values into their
// valid ranges.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if _, err := toml.DecodeFile(path, &settings); err != nil {
		return Settings{}, fmt.Errorf("invalid settings file '%v': %w", path, err)
	}
	return settings.clamp(), nil
}

func (s Settings) clamp() Settings {
	if s.PositionalValueFactor < 0 {
		s.PositionalValueFactor = 0
	}
	if s.PositionalValueFactor > 100 {
		s.PositionalValueFactor = 100
	}
	if s.SearchDepth < 1 {
		s.SearchDepth = 1
	}
	return s
}

func (s Settings) String() string {
	return fmt.Sprintf("{depth=%v, pruning=%v, positional=%v%%, evalprint=%v}", s.SearchDepth, s.Pruning, s.PositionalValueFactor, s.EvalPrint)
}
