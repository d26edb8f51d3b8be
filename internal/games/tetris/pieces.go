package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// PieceType identifies one of the seven tetrominoes.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// PieceCount is the number of distinct tetrominoes.
const PieceCount = 7

// AllPieces lists every piece type in canonical order.
var AllPieces = [PieceCount]PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

type pieceTemplate struct {
	name  string
	shape Shape
	color core.Color
}

// templates is read-only; pieces always receive a clone of the shape.
var templates = [PieceCount]pieceTemplate{
	PieceI: {"I", ParseShape("....", "####", "....", "...."), core.ColorCyan},
	PieceO: {"O", ParseShape("##", "##"), core.ColorYellow},
	PieceT: {"T", ParseShape(".#.", "###", "..."), core.ColorMagenta},
	PieceS: {"S", ParseShape(".##", "##.", "..."), core.ColorGreen},
	PieceZ: {"Z", ParseShape("##.", ".##", "..."), core.ColorRed},
	PieceJ: {"J", ParseShape("#..", "###", "..."), core.ColorBlue},
	PieceL: {"L", ParseShape("..#", "###", "..."), core.ColorOrange},
}

// String returns the single-letter piece name.
func (t PieceType) String() string {
	if t < 0 || int(t) >= PieceCount {
		return "?"
	}
	return templates[t].name
}

// Shape returns a fresh copy of the piece's spawn orientation.
func (t PieceType) Shape() Shape {
	return templates[t].shape.Clone()
}

// Color returns the color the piece paints into the board.
func (t PieceType) Color() core.Color {
	return templates[t].color
}

// Piece is the currently falling tetromino.
// X, Y locate the top-left corner of its shape matrix on the board.
type Piece struct {
	Type  PieceType
	Shape Shape
	Color core.Color
	X, Y  int
}

// NewPiece creates a piece of the given type at its spawn position:
// horizontally centered on a board of the given width, at row 0.
func NewPiece(t PieceType, boardWidth int) *Piece {
	shape := t.Shape()
	return &Piece{
		Type:  t,
		Shape: shape,
		Color: t.Color(),
		X:     boardWidth/2 - shape.Width()/2,
		Y:     0,
	}
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	c.Shape = p.Shape.Clone()
	return &c
}

// Blocks returns the absolute board coordinates of the piece's cells.
func (p *Piece) Blocks() []Point {
	cells := p.Shape.Cells()
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}
