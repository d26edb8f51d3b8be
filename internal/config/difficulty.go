package config

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned for difficulty names other than the presets below.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. The empty string is allowed
// and means "use the config file as is".
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("%w %q (want easy, normal, hard or fixed)", ErrUnknownPreset, name)
}

// StartLevelForPreset returns the level a preset starts the game at.
// Unknown presets (including "fixed") keep the configured level.
func StartLevelForPreset(preset DifficultyPreset, configured int) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 6
	default:
		return configured
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Progression = false
		return
	}
	cfg.Difficulty.Progression = true
	cfg.Difficulty.StartLevel = StartLevelForPreset(preset, cfg.Difficulty.StartLevel)
}
