package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration:
// a 10x20 board, 1s gravity at level 1 shrinking 100ms per level down to
// 100ms, and a level every 10 lines.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  10,
			Height: 20,
		},
		Gravity: TetrisGravity{
			BaseIntervalMs: 1000,
			StepMs:         100,
			MinIntervalMs:  100,
		},
		Scoring: TetrisScoring{
			LinePoints:    100,
			TetrisBonus:   400,
			SoftDrop:      1,
			HardDrop:      2,
			LinesPerLevel: 10,
		},
		Randomizer: RandomizerBag,
		Difficulty: DifficultyConfig{
			StartLevel:  1,
			Progression: true,
		},
	}
}
