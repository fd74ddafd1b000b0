package grid

import (
	"math/bits"
	"strings"
)

// Grid is an immutable Width×Height bitmap. The zero value is an empty
// 0×0 grid. Grids compare equal with == when dimensions and contents match.
type Grid struct {
	width, height int
	bits          string // row-major, 8 cells per byte, padding bits zero
}

// NewGrid returns an all-false grid of the given size.
// Returns ErrEmptyGrid if either dimension is not positive.
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, ErrEmptyGrid
	}
	return Grid{
		width:  width,
		height: height,
		bits:   string(make([]byte, (width*height+7)/8)),
	}, nil
}

// FromCells returns a grid of the given size with exactly cells set.
// Returns ErrOutOfBounds if any cell lies outside the grid.
func FromCells(width, height int, cells ...Cell) (Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return Grid{}, err
	}
	buf := []byte(g.bits)
	for _, c := range cells {
		if !g.InBounds(c) {
			return Grid{}, ErrOutOfBounds
		}
		i := g.index(c)
		buf[i>>3] |= 1 << (i & 7)
	}
	g.bits = string(buf)

	return g, nil
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index maps c to a row-major bit index: y*width + x.
func (g Grid) index(c Cell) int {
	return c.Y*g.width + c.X
}

// Get reports whether c is set. Out-of-bounds cells read as false.
func (g Grid) Get(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	i := g.index(c)
	return g.bits[i>>3]&(1<<(i&7)) != 0
}

// With returns a copy of g with c set to v. g itself is unchanged.
// Returns ErrOutOfBounds if c lies outside the grid.
func (g Grid) With(c Cell, v bool) (Grid, error) {
	if !g.InBounds(c) {
		return g, ErrOutOfBounds
	}
	return g.set(c, v), nil
}

// Without returns a copy of g with c cleared. Clearing an unset or
// out-of-bounds cell returns g unchanged without copying.
func (g Grid) Without(c Cell) Grid {
	if !g.Get(c) {
		return g
	}
	return g.set(c, false)
}

// set copies the bitmap and writes one bit; c must be in bounds.
func (g Grid) set(c Cell, v bool) Grid {
	buf := []byte(g.bits)
	i := g.index(c)
	if v {
		buf[i>>3] |= 1 << (i & 7)
	} else {
		buf[i>>3] &^= 1 << (i & 7)
	}
	g.bits = string(buf)
	return g
}

// Count returns the number of set cells.
func (g Grid) Count() int {
	n := 0
	for i := 0; i < len(g.bits); i++ {
		n += bits.OnesCount8(g.bits[i])
	}
	return n
}

// List returns the set cells ordered by X, then Y.
func (g Grid) List() []Cell {
	out := make([]Cell, 0, g.Count())
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if c := (Cell{x, y}); g.Get(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

// String renders the grid top row first, '#' for set and '.' for unset.
func (g Grid) String() string {
	var sb strings.Builder
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			if g.Get(Cell{x, y}) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
