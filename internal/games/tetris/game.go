package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Registered game IDs.
const (
	IDBag     = "tetris"
	IDClassic = "tetris_classic"
)

// Layout constants (in screen cells).
const (
	cellW      = 2  // Each board cell is two characters wide
	panelW     = 16 // Side panel with preview and counters
	panelGap   = 2
	flashTicks = 45 // ~750ms at 60fps
)

// Package-level settings applied on the next Reset, set by the CLI.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom YAML config path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game adapts a Session to the platform's fixed-tick registry.Game interface.
type Game struct {
	id              string
	title           string
	forceRandomizer string

	session  *Session
	tick     uint64
	tickRate int

	screenW  int
	screenH  int
	tooSmall bool

	highScore  int
	newBest    bool
	rank       int
	flashLines int
	flashLeft  int
}

// New creates a Tetris game using the configured randomizer (7-bag by default).
func New() *Game {
	return &Game{id: IDBag, title: "Tetris"}
}

// NewClassic creates a Tetris game that always draws pieces uniformly at random.
func NewClassic() *Game {
	return &Game{id: IDClassic, title: "Tetris (Classic Random)", forceRandomizer: config.RandomizerUniform}
}

func init() {
	registry.Register(IDBag, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Reset builds a fresh session from the current config and waits for Start.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tc, err := config.LoadTetris(configPath)
	if err != nil {
		tc = config.DefaultTetrisConfig()
	}
	config.ApplyTetrisPreset(&tc, config.DifficultyPreset(difficultyPreset))

	opts := Options{
		Width:      tc.Board.Width,
		Height:     tc.Board.Height,
		Rules:      RulesFromConfig(tc),
		Randomizer: tc.Randomizer,
		Seed:       cfg.Seed,
	}
	if g.forceRandomizer != "" {
		opts.Randomizer = g.forceRandomizer
	}

	session, err := NewSession(opts)
	if err != nil {
		fallback := DefaultOptions(cfg.Seed)
		fallback.Randomizer = g.forceRandomizer
		session, _ = NewSession(fallback)
	}
	session.OnGameOver = g.onGameOver
	g.session = session

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.tick = 0
	g.newBest = false
	g.rank = 0
	g.flashLines = 0
	g.flashLeft = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the layout without touching the game in progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minSize()
	g.tooSmall = w < minW || h < minH
}

func (g *Game) minSize() (int, int) {
	b := g.session.Board()
	return b.Width()*cellW + 2 + panelGap + panelW, b.Height() + 2
}

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// SetRank sets the leaderboard position of the finished run.
func (g *Game) SetRank(rank int) {
	g.rank = rank
}

// HighScore returns the best score known to the game, including this run.
func (g *Game) HighScore() int {
	return max(g.highScore, g.session.Score())
}

// Session exposes the underlying engine.
func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) onGameOver(st Stats) {
	if st.Score > g.highScore {
		g.highScore = st.Score
		g.newBest = true
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.flashLeft > 0 {
		g.flashLeft--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	s := g.session
	switch s.State() {
	case StateReady:
		// The starting key press is consumed and not replayed as a move.
		if in.Has(core.ActionConfirm) || in.Has(core.ActionDrop) {
			s.Start()
		}
		return core.StepResult{State: g.State()}
	case StateRunning, StatePaused:
		if in.Has(core.ActionPause) {
			s.TogglePause()
		}
		if in.Has(core.ActionRestart) && s.State() == StatePaused {
			g.newBest = false
			g.rank = 0
			s.Restart()
		}
	}

	if s.State() == StateRunning {
		placed := s.Stats().PiecesPlaced
		g.applyInput(in)
		s.Tick(g.elapsed())
		if st := s.Stats(); st.PiecesPlaced != placed && st.LastClear > 0 {
			g.flashLines = st.LastClear
			g.flashLeft = flashTicks
		}
	}

	return core.StepResult{State: g.State()}
}

// elapsed returns the simulated time covered by the current tick. Each tick
// gets its share of the exact running total, so tickRate ticks always add up
// to one second even when a second does not divide evenly.
func (g *Game) elapsed() time.Duration {
	rate := time.Duration(g.tickRate)
	now := time.Duration(g.tick) * time.Second / rate
	prev := time.Duration(g.tick-1) * time.Second / rate
	return now - prev
}

// applyInput forwards this frame's key presses to the session in the order
// they were pressed.
func (g *Game) applyInput(in core.InputFrame) {
	s := g.session
	for _, a := range in.Actions {
		switch a {
		case core.ActionLeft:
			s.MoveLeft()
		case core.ActionRight:
			s.MoveRight()
		case core.ActionRotate:
			s.Rotate()
		case core.ActionDown:
			s.SoftDrop()
		case core.ActionDrop:
			s.HardDrop()
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Lines:    g.session.Lines(),
		GameOver: st == StateGameOver,
		Paused:   st == StatePaused || st == StateReady || g.tooSmall,
	}
}
