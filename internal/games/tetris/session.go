package tetris

import (
	"fmt"
	"math/rand"
	"time"
)

// State is the lifecycle stage of a session.
type State int

const (
	StateReady State = iota
	StateRunning
	StatePaused
	StateGameOver
)

// String returns a lowercase state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// transitions lists the legal state changes. Every edge into StateReady is a restart.
var transitions = map[State][]State{
	StateReady:    {StateRunning},
	StateRunning:  {StatePaused, StateGameOver, StateReady},
	StatePaused:   {StateRunning, StateReady},
	StateGameOver: {StateReady},
}

// kicks are the rotation offsets tried in order: in place, left 1, right 1,
// up 1 (floor kick), left 2, right 2.
var kicks = [...]Point{
	{X: 0, Y: 0},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -2, Y: 0},
	{X: 2, Y: 0},
}

// Options configures a new session.
type Options struct {
	Width      int
	Height     int
	Rules      Rules
	Randomizer string // "bag" or "uniform"
	Seed       int64
}

// DefaultOptions returns a 10x20 bag-randomized session with classic rules.
func DefaultOptions(seed int64) Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Rules:  DefaultRules(),
		Seed:   seed,
	}
}

// Stats is a point-in-time summary of a session.
type Stats struct {
	State        State
	Score        int
	Level        int
	Lines        int
	PiecesPlaced int
	Tetrises     int
	LastClear    int // Lines cleared by the most recent lock
}

// Session owns the board, the falling piece, the piece queue and the
// score counters of one game. It is not safe for concurrent use; the
// game loop drives it from a single goroutine.
type Session struct {
	opts          Options
	rules         Rules
	rng           *rand.Rand
	newRandomizer func() Randomizer

	board      *Board
	randomizer Randomizer
	active     *Piece
	next       PieceType

	state        State
	score        int
	level        int
	lines        int
	piecesPlaced int
	tetrises     int
	lastClear    int
	dropTimer    time.Duration

	// OnGameOver, if set, is called once when the session tops out.
	OnGameOver func(Stats)
}

// NewSession creates a session in StateReady with an empty board.
func NewSession(opts Options) (*Session, error) {
	if opts.Width < 4 || opts.Height < 4 {
		return nil, fmt.Errorf("tetris: board must be at least 4x4, got %dx%d", opts.Width, opts.Height)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	if _, err := NewRandomizer(opts.Randomizer, rng); err != nil {
		return nil, err
	}

	s := &Session{
		opts:  opts,
		rules: opts.Rules,
		rng:   rng,
	}
	s.newRandomizer = func() Randomizer {
		r, _ := NewRandomizer(s.opts.Randomizer, s.rng)
		return r
	}
	s.reset()
	return s, nil
}

// reset reinitializes board, counters and piece generator.
func (s *Session) reset() {
	s.board = NewBoard(s.opts.Width, s.opts.Height)
	s.randomizer = s.newRandomizer()
	s.active = nil
	s.next = s.randomizer.Next()
	s.state = StateReady
	s.score = 0
	s.lines = 0
	s.level = s.rules.LevelForLines(0)
	s.piecesPlaced = 0
	s.tetrises = 0
	s.lastClear = 0
	s.dropTimer = 0
}

// transition moves to the target state if the edge is legal.
func (s *Session) transition(to State) bool {
	for _, allowed := range transitions[s.state] {
		if allowed == to {
			s.state = to
			return true
		}
	}
	return false
}

// Start begins play from StateReady and spawns the first piece.
func (s *Session) Start() bool {
	if !s.transition(StateRunning) {
		return false
	}
	s.spawn()
	return true
}

// Pause freezes a running session.
func (s *Session) Pause() bool {
	return s.state == StateRunning && s.transition(StatePaused)
}

// Resume continues a paused session.
func (s *Session) Resume() bool {
	return s.state == StatePaused && s.transition(StateRunning)
}

// TogglePause pauses a running session or resumes a paused one.
func (s *Session) TogglePause() bool {
	if s.state == StatePaused {
		return s.Resume()
	}
	return s.Pause()
}

// Restart discards the current game and starts a fresh one.
// Board, counters and piece generator are all rebuilt.
func (s *Session) Restart() bool {
	if s.state != StateReady && !s.transition(StateReady) {
		return false
	}
	s.reset()
	return s.Start()
}

// Tick advances the gravity timer by elapsed. When the accumulated time
// reaches the drop interval the piece falls one row, or locks if it cannot;
// the timer then restarts from zero. Returns true if a gravity step ran.
func (s *Session) Tick(elapsed time.Duration) bool {
	if s.state != StateRunning {
		return false
	}
	s.dropTimer += elapsed
	if s.dropTimer < s.DropInterval() {
		return false
	}
	if !s.tryMove(0, 1) {
		s.lockActive()
	}
	s.dropTimer = 0
	return true
}

// MoveLeft shifts the piece one column left.
func (s *Session) MoveLeft() bool {
	return s.running() && s.tryMove(-1, 0)
}

// MoveRight shifts the piece one column right.
func (s *Session) MoveRight() bool {
	return s.running() && s.tryMove(1, 0)
}

// SoftDrop moves the piece one row down, scoring the soft-drop bonus.
// A blocked soft drop does not lock the piece; gravity does that.
func (s *Session) SoftDrop() bool {
	if !s.running() || !s.tryMove(0, 1) {
		return false
	}
	s.score += s.rules.SoftDropBonus
	return true
}

// HardDrop drops the piece as far as it goes, scoring the hard-drop bonus
// per row, and locks it immediately.
func (s *Session) HardDrop() bool {
	if !s.running() {
		return false
	}
	for s.tryMove(0, 1) {
		s.score += s.rules.HardDropBonus
	}
	s.lockActive()
	s.dropTimer = 0
	return true
}

// Rotate turns the piece clockwise, trying each kick offset in order.
// The first offset where the rotated shape fits is applied; if none fit
// the piece is left untouched.
func (s *Session) Rotate() bool {
	if !s.running() {
		return false
	}
	rotated := s.active.Shape.Rotate()
	for _, k := range kicks {
		x, y := s.active.X+k.X, s.active.Y+k.Y
		if s.board.IsValidPlacement(rotated, x, y) {
			s.active.Shape = rotated
			s.active.X = x
			s.active.Y = y
			return true
		}
	}
	return false
}

// Ghost returns where the active piece would land if hard-dropped.
func (s *Session) Ghost() (Point, bool) {
	if s.active == nil {
		return Point{}, false
	}
	y := s.active.Y
	for s.board.IsValidPlacement(s.active.Shape, s.active.X, y+1) {
		y++
	}
	return Point{X: s.active.X, Y: y}, true
}

func (s *Session) running() bool {
	return s.state == StateRunning && s.active != nil
}

func (s *Session) tryMove(dx, dy int) bool {
	x, y := s.active.X+dx, s.active.Y+dy
	if !s.board.IsValidPlacement(s.active.Shape, x, y) {
		return false
	}
	s.active.X = x
	s.active.Y = y
	return true
}

// lockActive merges the piece, clears lines, scores them and spawns the next piece.
func (s *Session) lockActive() {
	s.board.Lock(s.active)
	s.piecesPlaced++
	s.awardLines(s.board.ClearLines())
	s.spawn()
}

func (s *Session) awardLines(n int) {
	s.lastClear = n
	if n == 0 {
		return
	}
	s.score += s.rules.LineClearScore(n, s.level)
	s.lines += n
	if n == 4 {
		s.tetrises++
	}
	if lvl := s.rules.LevelForLines(s.lines); lvl > s.level {
		s.level = lvl
	}
}

// spawn promotes the queued piece to active and queues the next one.
// If the new piece does not fit, the session tops out.
func (s *Session) spawn() {
	s.active = NewPiece(s.next, s.board.Width())
	s.next = s.randomizer.Next()
	if !s.board.IsValidPlacement(s.active.Shape, s.active.X, s.active.Y) {
		s.transition(StateGameOver)
		if s.OnGameOver != nil {
			s.OnGameOver(s.Stats())
		}
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Board returns the live board. Callers must not modify it.
func (s *Session) Board() *Board { return s.board }

// Active returns the falling piece, or nil before the first spawn.
func (s *Session) Active() *Piece { return s.active }

// Next returns the queued piece type shown in the preview.
func (s *Session) Next() PieceType { return s.next }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// Lines returns the total lines cleared.
func (s *Session) Lines() int { return s.lines }

// DropInterval returns the gravity interval for the current level.
func (s *Session) DropInterval() time.Duration {
	return s.rules.DropInterval(s.level)
}

// Stats returns a summary of the session.
func (s *Session) Stats() Stats {
	return Stats{
		State:        s.state,
		Score:        s.score,
		Level:        s.level,
		Lines:        s.lines,
		PiecesPlaced: s.piecesPlaced,
		Tetrises:     s.tetrises,
		LastClear:    s.lastClear,
	}
}
