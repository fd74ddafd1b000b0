package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Layout is an immutable environment snapshot: walls, food, capsules,
// ghost positions and the agent's start cell.
type Layout struct {
	walls    Grid
	food     Grid
	capsules Grid
	ghosts   []Cell
	start    Cell
}

// NewLayout assembles a layout from parts. walls and food must share
// dimensions; a zero capsules grid is replaced by an empty one.
func NewLayout(walls, food Grid, start Cell) (*Layout, error) {
	if walls.Width() == 0 || walls.Height() == 0 {
		return nil, ErrEmptyGrid
	}
	if food.Width() != walls.Width() || food.Height() != walls.Height() {
		return nil, ErrNonRectangular
	}
	if !walls.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	capsules, _ := NewGrid(walls.Width(), walls.Height())

	return &Layout{walls: walls, food: food, capsules: capsules, start: start}, nil
}

// ParseLayout reads the text layout format described in the package doc.
func ParseLayout(text string) (*Layout, error) {
	return ReadLayout(strings.NewReader(text))
}

// ReadLayout reads a layout from r. Trailing blank lines are ignored.
func ReadLayout(r io.Reader) (*Layout, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read layout: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}

	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	var walls, food, capsules []Cell
	var ghosts []Cell
	starts := 0
	var start Cell
	for i, row := range rows {
		y := h - 1 - i // first text row is the top
		for x := 0; x < w; x++ {
			c := Cell{x, y}
			switch ch := row[x]; ch {
			case '%':
				walls = append(walls, c)
			case '.':
				food = append(food, c)
			case 'o':
				capsules = append(capsules, c)
			case 'P':
				start = c
				starts++
			case 'G', '1', '2', '3', '4':
				ghosts = append(ghosts, c)
			case ' ':
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownGlyph, ch, c)
			}
		}
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, ErrMultipleStarts
	}

	l := &Layout{start: start, ghosts: ghosts}
	// cells come from the scanned rectangle, so bounds errors cannot occur
	l.walls, _ = FromCells(w, h, walls...)
	l.food, _ = FromCells(w, h, food...)
	l.capsules, _ = FromCells(w, h, capsules...)

	return l, nil
}

// Width returns the number of columns.
func (l *Layout) Width() int { return l.walls.Width() }

// Height returns the number of rows.
func (l *Layout) Height() int { return l.walls.Height() }

// Walls returns the obstacle map.
func (l *Layout) Walls() Grid { return l.walls }

// Food returns the food-presence map.
func (l *Layout) Food() Grid { return l.food }

// Capsules returns the capsule map.
func (l *Layout) Capsules() Grid { return l.capsules }

// Ghosts returns a copy of the ghost start cells.
func (l *Layout) Ghosts() []Cell {
	return append([]Cell(nil), l.ghosts...)
}

// Start returns the agent's start cell.
func (l *Layout) Start() Cell { return l.start }

// IsWall reports whether c is a wall. Cells outside the layout count as walls.
func (l *Layout) IsWall(c Cell) bool {
	return !l.walls.InBounds(c) || l.walls.Get(c)
}

// WithStart returns a copy of l with the agent at c.
func (l *Layout) WithStart(c Cell) *Layout {
	cp := *l
	cp.start = c
	return &cp
}

// WithFood returns a copy of l with food replaced by food.
func (l *Layout) WithFood(food Grid) *Layout {
	cp := *l
	cp.food = food
	return &cp
}

// Legal returns the cardinal directions that do not walk into a wall from c.
func (l *Layout) Legal(c Cell) []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Cardinal() {
		if !l.IsWall(c.Add(vectors[d])) {
			out = append(out, d)
		}
	}
	return out
}

// String renders the layout in its text format.
func (l *Layout) String() string {
	var sb strings.Builder
	ghosts := make(map[Cell]bool, len(l.ghosts))
	for _, g := range l.ghosts {
		ghosts[g] = true
	}
	for y := l.Height() - 1; y >= 0; y-- {
		for x := 0; x < l.Width(); x++ {
			c := Cell{x, y}
			switch {
			case l.walls.Get(c):
				sb.WriteByte('%')
			case c == l.start:
				sb.WriteByte('P')
			case ghosts[c]:
				sb.WriteByte('G')
			case l.food.Get(c):
				sb.WriteByte('.')
			case l.capsules.Get(c):
				sb.WriteByte('o')
			default:
				sb.WriteByte(' ')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
