// Package config provides YAML-based game configuration loading and
// difficulty presets for the Tetris games.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Randomizer names accepted in the "randomizer" field.
const (
	RandomizerBag     = "bag"
	RandomizerUniform = "uniform"
)

// ErrUnknownRandomizer is returned by Validate for unsupported randomizer names.
var ErrUnknownRandomizer = errors.New("config: unknown randomizer")

// TetrisConfig contains all configuration for the Tetris engine.
type TetrisConfig struct {
	Board      TetrisBoard      `yaml:"board"`
	Gravity    TetrisGravity    `yaml:"gravity"`
	Scoring    TetrisScoring    `yaml:"scoring"`
	Randomizer string           `yaml:"randomizer"` // "bag" or "uniform"
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisBoard defines the playfield dimensions.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisGravity defines how fast pieces fall.
// The drop interval at level L is max(min, base - (L-1)*step).
type TetrisGravity struct {
	BaseIntervalMs int `yaml:"base_interval_ms"`
	StepMs         int `yaml:"step_ms"`
	MinIntervalMs  int `yaml:"min_interval_ms"`
}

// TetrisScoring defines point values.
type TetrisScoring struct {
	LinePoints    int `yaml:"line_points"`     // Per cleared line, multiplied by level
	TetrisBonus   int `yaml:"tetris_bonus"`    // Extra for a 4-line clear, multiplied by level
	SoftDrop      int `yaml:"soft_drop"`       // Per cell moved by a soft drop
	HardDrop      int `yaml:"hard_drop"`       // Per cell moved by a hard drop
	LinesPerLevel int `yaml:"lines_per_level"` // Cleared lines needed to gain a level
}

// DifficultyConfig defines the starting level and whether it progresses.
type DifficultyConfig struct {
	StartLevel  int  `yaml:"start_level"`
	Progression bool `yaml:"progression"`
}

// BaseInterval returns the level-1 gravity interval.
func (g TetrisGravity) BaseInterval() time.Duration {
	return time.Duration(g.BaseIntervalMs) * time.Millisecond
}

// Step returns how much the interval shrinks per level.
func (g TetrisGravity) Step() time.Duration {
	return time.Duration(g.StepMs) * time.Millisecond
}

// MinInterval returns the floor of the gravity interval.
func (g TetrisGravity) MinInterval() time.Duration {
	return time.Duration(g.MinIntervalMs) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < 4 || c.Board.Height < 4 {
		return fmt.Errorf("config: board must be at least 4x4, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Gravity.BaseIntervalMs <= 0 || c.Gravity.MinIntervalMs <= 0 {
		return fmt.Errorf("config: gravity intervals must be positive")
	}
	if c.Gravity.StepMs < 0 {
		return fmt.Errorf("config: gravity step must not be negative")
	}
	if c.Scoring.LinesPerLevel <= 0 {
		return fmt.Errorf("config: lines_per_level must be positive")
	}
	if c.Difficulty.StartLevel < 1 {
		return fmt.Errorf("config: start_level must be at least 1")
	}
	switch c.Randomizer {
	case RandomizerBag, RandomizerUniform:
	default:
		return fmt.Errorf("%w %q", ErrUnknownRandomizer, c.Randomizer)
	}
	return nil
}
