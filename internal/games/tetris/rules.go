package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Rules holds scoring and gravity parameters for a session.
type Rules struct {
	LinePoints    int
	TetrisBonus   int
	SoftDropBonus int
	HardDropBonus int
	LinesPerLevel int
	StartLevel    int
	Progression   bool

	BaseInterval time.Duration
	IntervalStep time.Duration
	MinInterval  time.Duration
}

// DefaultRules returns the classic rule set: 100 points per line times level,
// +400×level for a tetris, a level every 10 lines, and gravity from 1s down to 100ms.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultTetrisConfig())
}

// RulesFromConfig extracts the rule set from a loaded configuration.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	return Rules{
		LinePoints:    cfg.Scoring.LinePoints,
		TetrisBonus:   cfg.Scoring.TetrisBonus,
		SoftDropBonus: cfg.Scoring.SoftDrop,
		HardDropBonus: cfg.Scoring.HardDrop,
		LinesPerLevel: cfg.Scoring.LinesPerLevel,
		StartLevel:    cfg.Difficulty.StartLevel,
		Progression:   cfg.Difficulty.Progression,
		BaseInterval:  cfg.Gravity.BaseInterval(),
		IntervalStep:  cfg.Gravity.Step(),
		MinInterval:   cfg.Gravity.MinInterval(),
	}
}

// LineClearScore returns the points for clearing n lines in one lock at the given level.
func (r Rules) LineClearScore(n, level int) int {
	if n <= 0 {
		return 0
	}
	score := n * r.LinePoints * level
	if n == 4 {
		score += r.TetrisBonus * level
	}
	return score
}

// LevelForLines returns the level reached after clearing total lines.
func (r Rules) LevelForLines(total int) int {
	start := max(1, r.StartLevel)
	if !r.Progression || r.LinesPerLevel <= 0 {
		return start
	}
	return start + total/r.LinesPerLevel
}

// DropInterval returns the gravity interval at the given level.
// It never goes below MinInterval and is always positive.
func (r Rules) DropInterval(level int) time.Duration {
	d := r.BaseInterval - time.Duration(level-1)*r.IntervalStep
	if d < r.MinInterval {
		d = r.MinInterval
	}
	if d <= 0 {
		d = time.Millisecond
	}
	return d
}
