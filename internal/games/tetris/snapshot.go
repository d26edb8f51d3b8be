package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	State  string
	Score  int
	Level  int
	Lines  int
	Next   string
	Piece  string // Active piece type, empty before the first spawn
	PieceX int
	PieceY int
	Board  [][]core.Color
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		Tick:  g.tick,
		State: s.State().String(),
		Score: s.Score(),
		Level: s.Level(),
		Lines: s.Lines(),
		Next:  s.Next().String(),
		Board: s.Board().Rows(),
	}
	if p := s.Active(); p != nil {
		snap.Piece = p.Type.String()
		snap.PieceX = p.X
		snap.PieceY = p.Y
	}
	return snap
}
