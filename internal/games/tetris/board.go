package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Default playfield dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Board is the grid of locked cells. Row 0 is the top.
// An empty cell holds core.ColorDefault; any other color is a locked block.
type Board struct {
	width  int
	height int
	cells  [][]core.Color
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]core.Color, height)
	for y := range b.cells {
		b.cells[y] = make([]core.Color, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Cell returns the color at (x, y), or ColorDefault when out of bounds.
func (b *Board) Cell(x, y int) core.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return core.ColorDefault
	}
	return b.cells[y][x]
}

func (b *Board) set(x, y int, c core.Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = c
}

// Rows returns a copy of the grid.
func (b *Board) Rows() [][]core.Color {
	out := make([][]core.Color, b.height)
	for y := range b.cells {
		out[y] = append([]core.Color(nil), b.cells[y]...)
	}
	return out
}

// IsValidPlacement reports whether shape fits with its top-left corner at (originX, originY).
// Every occupied cell must lie within [0, width) horizontally and above the floor.
// Cells above the top edge (y < 0) never collide with locked blocks, so pieces
// may spawn or rotate partially above the visible board.
func (b *Board) IsValidPlacement(shape Shape, originX, originY int) bool {
	for y := range shape {
		for x, filled := range shape[y] {
			if !filled {
				continue
			}
			bx, by := originX+x, originY+y
			if bx < 0 || bx >= b.width || by >= b.height {
				return false
			}
			if by >= 0 && !b.cells[by][bx].IsEmpty() {
				return false
			}
		}
	}
	return true
}

// Lock writes the piece's color into every cell it covers on the board.
// Cells still above the top edge are dropped.
func (b *Board) Lock(p *Piece) {
	for _, pt := range p.Blocks() {
		if pt.Y >= 0 {
			b.set(pt.X, pt.Y, p.Color)
		}
	}
}

// IsRowFull reports whether every cell in row y is occupied.
func (b *Board) IsRowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, c := range b.cells[y] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for y := 0; y < b.height; y++ {
		if b.IsRowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearLines removes every full row and inserts empty rows at the top.
// Full rows are collected in one pass before anything moves, so the result
// equals the number of rows that were full when the call began.
func (b *Board) ClearLines() int {
	full := b.FullRows()
	if len(full) == 0 {
		return 0
	}

	kept := make([][]core.Color, 0, b.height)
	for y := 0; y < len(full); y++ {
		kept = append(kept, make([]core.Color, b.width))
	}
	for y := 0; y < b.height; y++ {
		if !b.IsRowFull(y) {
			kept = append(kept, b.cells[y])
		}
	}
	b.cells = kept
	return len(full)
}

// IsEmpty reports whether no cell on the board is occupied.
func (b *Board) IsEmpty() bool {
	for y := range b.cells {
		for _, c := range b.cells[y] {
			if !c.IsEmpty() {
				return false
			}
		}
	}
	return true
}
