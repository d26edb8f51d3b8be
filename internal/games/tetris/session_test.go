package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// seqRandomizer deals a fixed, repeating sequence of pieces.
type seqRandomizer struct {
	seq []PieceType
	i   int
}

func (r *seqRandomizer) Next() PieceType {
	p := r.seq[r.i%len(r.seq)]
	r.i++
	return p
}

// newRunningSession returns a running session on a default board whose
// pieces come from seq in order.
func newRunningSession(t *testing.T, seq ...PieceType) *Session {
	t.Helper()
	s, err := NewSession(DefaultOptions(1))
	require.NoError(t, err)
	s.newRandomizer = func() Randomizer { return &seqRandomizer{seq: seq} }
	require.True(t, s.Restart())
	require.Equal(t, StateRunning, s.State())
	return s
}

func TestNewSessionRejectsBadOptions(t *testing.T) {
	_, err := NewSession(Options{Width: 3, Height: 20, Rules: DefaultRules()})
	assert.Error(t, err)

	opts := DefaultOptions(1)
	opts.Randomizer = "nope"
	_, err = NewSession(opts)
	assert.Error(t, err)
}

func TestNewSessionStartsReady(t *testing.T) {
	s, err := NewSession(DefaultOptions(1))
	require.NoError(t, err)

	assert.Equal(t, StateReady, s.State())
	assert.Nil(t, s.Active())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.Level())
	assert.True(t, s.Board().IsEmpty())

	// Nothing moves before Start.
	assert.False(t, s.MoveLeft())
	assert.False(t, s.Rotate())
	assert.False(t, s.HardDrop())
	assert.False(t, s.Tick(10*time.Second))
	assert.False(t, s.Pause())

	next := s.Next()
	require.True(t, s.Start())
	require.NotNil(t, s.Active())
	assert.Equal(t, next, s.Active().Type)
	assert.False(t, s.Start())
}

func TestHardDropO(t *testing.T) {
	s := newRunningSession(t, PieceO)
	p := s.Active()
	require.Equal(t, 4, p.X)
	require.Equal(t, 0, p.Y)

	require.True(t, s.HardDrop())

	b := s.Board()
	for _, pt := range []Point{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.Equal(t, core.ColorYellow, b.Cell(pt.X, pt.Y), "cell %v", pt)
	}
	assert.Equal(t, 36, s.Score())
	assert.Equal(t, 1, s.Stats().PiecesPlaced)
	assert.Equal(t, 0, s.Active().Y, "next piece should spawn at the top")
}

func TestSoftDrop(t *testing.T) {
	s := newRunningSession(t, PieceO)
	require.True(t, s.SoftDrop())
	assert.Equal(t, 1, s.Active().Y)
	assert.Equal(t, 1, s.Score())

	for s.SoftDrop() {
	}
	assert.Equal(t, 18, s.Active().Y)
	assert.Equal(t, 18, s.Score())
	assert.True(t, s.Board().IsEmpty(), "soft drop must not lock")
}

func TestMoveBlockedByWalls(t *testing.T) {
	s := newRunningSession(t, PieceO)
	for s.MoveLeft() {
	}
	assert.Equal(t, 0, s.Active().X)
	for s.MoveRight() {
	}
	assert.Equal(t, 8, s.Active().X)
}

func TestRotateKicksOffLeftWall(t *testing.T) {
	s := newRunningSession(t, PieceT)
	require.True(t, s.Rotate()) // pointing right, matrix column 0 empty
	for s.MoveLeft() {
	}
	require.Equal(t, -1, s.Active().X)

	// Pointing down needs matrix column 0, so the piece is pushed right by one.
	require.True(t, s.Rotate())
	assert.Equal(t, 0, s.Active().X)
	assert.Equal(t, 0, s.Active().Y)
	assert.True(t, s.Active().Shape.Equal(ParseShape("...", "###", ".#.")))
}

func TestRotateFailsLeavesPiece(t *testing.T) {
	s := newRunningSession(t, PieceI)
	// Box the spawn area in so no kick fits a vertical I.
	b := s.Board()
	for x := 0; x < b.Width(); x++ {
		b.set(x, 2, core.ColorGray)
	}
	before := s.Active().Clone()

	assert.False(t, s.Rotate())
	assert.Equal(t, before, s.Active())
}

func TestGravity(t *testing.T) {
	s := newRunningSession(t, PieceO)
	assert.False(t, s.Tick(500*time.Millisecond))
	assert.Equal(t, 0, s.Active().Y)
	assert.True(t, s.Tick(500*time.Millisecond))
	assert.Equal(t, 1, s.Active().Y)

	// A long frame still moves only one row.
	assert.True(t, s.Tick(5*time.Second))
	assert.Equal(t, 2, s.Active().Y)
}

func TestGravityLocksOnFloor(t *testing.T) {
	s := newRunningSession(t, PieceO, PieceT)
	for s.SoftDrop() {
	}
	require.True(t, s.Tick(time.Second))
	assert.Equal(t, 1, s.Stats().PiecesPlaced)
	assert.Equal(t, PieceT, s.Active().Type)
	assert.Equal(t, core.ColorYellow, s.Board().Cell(4, 19))
}

func TestClearTwoLines(t *testing.T) {
	s := newRunningSession(t, PieceO)
	fillRow(s.Board(), 18, 8, 9)
	fillRow(s.Board(), 19, 8, 9)

	for s.MoveRight() {
	}
	require.Equal(t, 8, s.Active().X)
	require.True(t, s.HardDrop())

	assert.Equal(t, 36+200, s.Score())
	assert.Equal(t, 2, s.Lines())
	assert.Equal(t, 2, s.Stats().LastClear)
	assert.True(t, s.Board().IsEmpty())
}

func TestClearTetris(t *testing.T) {
	s := newRunningSession(t, PieceI)
	for y := 16; y < 20; y++ {
		fillRow(s.Board(), y, 9)
	}

	require.True(t, s.Rotate())
	for s.MoveRight() {
	}
	require.Equal(t, 7, s.Active().X)
	require.True(t, s.HardDrop())

	assert.Equal(t, 32+800, s.Score())
	assert.Equal(t, 4, s.Lines())
	assert.Equal(t, 1, s.Stats().Tetrises)
	assert.True(t, s.Board().IsEmpty())
}

func TestLevelUpScoresAtPreviousLevel(t *testing.T) {
	s := newRunningSession(t, PieceO)
	s.lines = 8
	fillRow(s.Board(), 18, 8, 9)
	fillRow(s.Board(), 19, 8, 9)

	for s.MoveRight() {
	}
	require.True(t, s.HardDrop())

	assert.Equal(t, 10, s.Lines())
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, 36+200, s.Score())
	assert.Equal(t, 900*time.Millisecond, s.DropInterval())
}

func TestTopOut(t *testing.T) {
	s := newRunningSession(t, PieceO)
	for y := 2; y < 20; y++ {
		s.Board().set(4, y, core.ColorGray)
		s.Board().set(5, y, core.ColorGray)
	}

	var final *Stats
	s.OnGameOver = func(st Stats) { final = &st }

	require.True(t, s.HardDrop())
	assert.Equal(t, StateGameOver, s.State())
	require.NotNil(t, final)
	assert.Equal(t, StateGameOver, final.State)

	// Game over is terminal until restart.
	assert.False(t, s.Tick(10*time.Second))
	assert.False(t, s.MoveLeft())
	assert.False(t, s.HardDrop())
	assert.False(t, s.Pause())

	require.True(t, s.Restart())
	assert.Equal(t, StateRunning, s.State())
	assert.True(t, s.Board().IsEmpty())
}

func TestPauseResume(t *testing.T) {
	s := newRunningSession(t, PieceO)
	require.True(t, s.Pause())
	assert.Equal(t, StatePaused, s.State())

	assert.False(t, s.MoveLeft())
	assert.False(t, s.SoftDrop())
	assert.False(t, s.Tick(10*time.Second))
	assert.Equal(t, 0, s.Active().Y)

	require.True(t, s.TogglePause())
	assert.Equal(t, StateRunning, s.State())
	assert.False(t, s.Resume())
}

func TestRestartClearsEverything(t *testing.T) {
	s := newRunningSession(t, PieceO)
	require.True(t, s.HardDrop())
	require.NotZero(t, s.Score())

	require.True(t, s.Restart())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.Lines())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, s.Stats().PiecesPlaced)
	assert.True(t, s.Board().IsEmpty())
	assert.Equal(t, StateRunning, s.State())
}

func TestGhost(t *testing.T) {
	s := newRunningSession(t, PieceO)
	g, ok := s.Ghost()
	require.True(t, ok)
	assert.Equal(t, Point{X: 4, Y: 18}, g)

	s.Board().set(4, 10, core.ColorGray)
	g, _ = s.Ghost()
	assert.Equal(t, Point{X: 4, Y: 8}, g)
}

func TestSessionDeterministicPerSeed(t *testing.T) {
	play := func() []PieceType {
		s, err := NewSession(DefaultOptions(99))
		require.NoError(t, err)
		require.True(t, s.Start())
		var seq []PieceType
		for i := 0; i < 20 && s.State() == StateRunning; i++ {
			seq = append(seq, s.Active().Type)
			s.HardDrop()
		}
		return seq
	}
	assert.Equal(t, play(), play())
}
