package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Options carries the collaborators a game screen needs besides the game itself.
type Options struct {
	Store    *storage.Store // nil disables score persistence
	Logger   *log.Logger    // nil discards log output
	Username string         // SSH user, empty for local play

	// AllowBack lets B return to the menu when the game is paused or over.
	AllowBack bool
}

// Model is the Bubble Tea model that drives one game at a fixed tick rate.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      string
	username   string
	allowBack  bool
	fixedSeed  bool // Seed came from the caller and is reused on restart
	standalone bool // Owns its tea.Program, so leaving quits it
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		runID:      uuid.NewString(),
		fixedSeed:  fixedSeed,
		username:   opts.Username,
		allowBack:  opts.AllowBack,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.loadHighScore()
	m.logger.Debug("run started", "game", m.game.ID(), "run", m.runID, "user", m.username)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		// Losing terminal focus pauses a running game.
		if !m.gameState.Paused && !m.gameState.GameOver && !m.inputFrame.Has(core.ActionPause) {
			m.inputFrame.Set(core.ActionPause)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if key.Matches(msg, m.keys.Keys().Back) {
		if m.allowBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.newRun()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// newRun resets the game with a new run ID. The seed is redrawn unless the
// caller pinned one, so a pinned seed replays the same pieces every run.
func (m *Model) newRun() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.runID = uuid.NewString()
	m.game.Reset(m.config)
	m.loadHighScore()
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.logger.Debug("run started", "game", m.game.ID(), "run", m.runID, "user", m.username)
}

// loadHighScore hands the persisted best score to games that display it.
func (m *Model) loadHighScore() {
	hs, ok := m.game.(registry.HighScoreAware)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "game", m.game.ID(), "err", err)
		return
	}
	hs.SetHighScore(best)
}

func (m *Model) saveScore() {
	st := m.gameState
	m.logger.Info("game over",
		"game", m.game.ID(), "run", m.runID, "user", m.username,
		"score", st.Score, "level", st.Level, "lines", st.Lines)

	if m.store == nil || st.Score <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		GameID: m.game.ID(),
		RunID:  m.runID,
		Score:  st.Score,
		Level:  st.Level,
		Lines:  st.Lines,
	})
	if err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "run", m.runID, "err", err)
		return
	}

	rank, err := m.store.RunRank(m.runID)
	if err != nil {
		m.logger.Warn("could not rank run", "game", m.game.ID(), "run", m.runID, "err", err)
		return
	}
	m.logger.Debug("run ranked", "game", m.game.ID(), "run", m.runID, "rank", rank)
	if ra, ok := m.game.(registry.RankAware); ok {
		ra.SetRank(rank)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// RunID identifies the current run; it changes on every restart.
func (m Model) RunID() string {
	return m.runID
}

// Run plays the game in its own Bubble Tea program.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Deliver BlurMsg so the game can auto-pause
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
