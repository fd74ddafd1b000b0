package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid and layout operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrEmptyLayout indicates layout text with no rows.
	ErrEmptyLayout = errors.New("grid: layout has no rows")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownGlyph indicates a character the layout format does not define.
	ErrUnknownGlyph = errors.New("grid: unknown layout glyph")
	// ErrNoStart indicates a layout without a 'P' start cell.
	ErrNoStart = errors.New("grid: layout has no start position")
	// ErrMultipleStarts indicates a layout with more than one 'P'.
	ErrMultipleStarts = errors.New("grid: layout has more than one start position")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// Cell is a grid coordinate. X grows to the east, Y grows to the north.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c displaced by v.
func (c Cell) Add(v Vector) Cell {
	return Cell{X: c.X + v.DX, Y: c.Y + v.DY}
}

// Manhattan returns |c.X-o.X| + |c.Y-o.Y|.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Vector is a unit displacement.
type Vector struct {
	DX, DY int
}

// Direction is one move of the action vocabulary.
type Direction string

// The four cardinal moves plus the Stop sentinel. Stop is never produced by
// successor enumeration; it is what an agent plays once its plan runs out.
const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
	Stop  Direction = "Stop"
)
