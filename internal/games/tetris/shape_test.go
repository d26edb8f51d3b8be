package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateClockwise(t *testing.T) {
	tee := PieceT.Shape()

	right := tee.Rotate()
	assert.True(t, right.Equal(ParseShape(".#.", ".##", ".#.")), "got\n%s", right)

	down := right.Rotate()
	assert.True(t, down.Equal(ParseShape("...", "###", ".#.")), "got\n%s", down)
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, p := range AllPieces {
		t.Run(p.String(), func(t *testing.T) {
			s := p.Shape()
			r := s.Rotate().Rotate().Rotate().Rotate()
			assert.True(t, s.Equal(r))
		})
	}
}

func TestRotateIVertical(t *testing.T) {
	v := PieceI.Shape().Rotate()
	cells := v.Cells()
	require.Len(t, cells, 4)
	for i, c := range cells {
		assert.Equal(t, Point{X: 2, Y: i}, c)
	}
}

func TestRotateDoesNotMutate(t *testing.T) {
	s := PieceL.Shape()
	before := s.String()
	_ = s.Rotate()
	assert.Equal(t, before, s.String())
}

func TestEveryPieceHasFourCells(t *testing.T) {
	for _, p := range AllPieces {
		assert.Len(t, p.Shape().Cells(), 4, "piece %s", p)
	}
}

func TestTemplatesAreNotShared(t *testing.T) {
	a := PieceS.Shape()
	a[0][0] = true
	assert.False(t, PieceS.Shape()[0][0])
}

func TestSpawnPosition(t *testing.T) {
	tests := []struct {
		piece PieceType
		wantX int
	}{
		{PieceI, 3},
		{PieceO, 4},
		{PieceT, 4},
		{PieceL, 4},
	}
	for _, tt := range tests {
		p := NewPiece(tt.piece, DefaultWidth)
		assert.Equal(t, tt.wantX, p.X, "piece %s", tt.piece)
		assert.Equal(t, 0, p.Y)
	}
}
