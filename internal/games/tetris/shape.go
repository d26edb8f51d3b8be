// Package tetris implements the falling-block puzzle: a fixed-size board,
// seven tetrominoes with wall-kicked rotation, line clearing with level-based
// scoring, and a ready/running/paused/game-over session driven by ticks.
package tetris

import "strings"

// Shape is a square occupancy matrix indexed as [row][col].
type Shape [][]bool

// ParseShape builds a shape from rows of '#' (filled) and '.' (empty).
func ParseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == '#'
		}
	}
	return s
}

// Size returns the side length of the bounding square.
func (s Shape) Size() int {
	return len(s)
}

// Width returns the width of the bounding box (used for spawn centering).
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotate returns the shape turned 90° clockwise.
// For an N×N matrix: rotated[y][x] = s[N-1-x][y].
func (s Shape) Rotate() Shape {
	n := len(s)
	out := make(Shape, n)
	for y := 0; y < n; y++ {
		out[y] = make([]bool, n)
		for x := 0; x < n; x++ {
			out[y][x] = s[n-1-x][y]
		}
	}
	return out
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y := range s {
		out[y] = append([]bool(nil), s[y]...)
	}
	return out
}

// Equal reports whether two shapes have identical occupancy.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Cells returns the offsets of all occupied cells in row-major order.
func (s Shape) Cells() []Point {
	var cells []Point
	for y := range s {
		for x, filled := range s[y] {
			if filled {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// String renders the shape with '#' and '.' rows, one per line.
func (s Shape) String() string {
	var b strings.Builder
	for y := range s {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, filled := range s[y] {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Point is a board or shape coordinate; y grows downward.
type Point struct {
	X, Y int
}
