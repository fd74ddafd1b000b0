package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/grid"
)

const tiny = `%%%%%%
%.  P%
% %%o%
%. G %
%%%%%%
`

func TestParseLayout(t *testing.T) {
	l, err := grid.ParseLayout(tiny)
	require.NoError(t, err)

	assert.Equal(t, 6, l.Width())
	assert.Equal(t, 5, l.Height())
	assert.Equal(t, grid.Cell{X: 4, Y: 3}, l.Start(), "first text row is the top")
	assert.Equal(t, []grid.Cell{{X: 1, Y: 1}, {X: 1, Y: 3}}, l.Food().List())
	assert.Equal(t, []grid.Cell{{X: 4, Y: 2}}, l.Capsules().List())
	assert.Equal(t, []grid.Cell{{X: 3, Y: 1}}, l.Ghosts())

	assert.True(t, l.IsWall(grid.Cell{X: 0, Y: 0}))
	assert.True(t, l.IsWall(grid.Cell{X: 2, Y: 2}))
	assert.False(t, l.IsWall(grid.Cell{X: 1, Y: 2}))
	assert.True(t, l.IsWall(grid.Cell{X: -1, Y: 2}), "outside counts as wall")

	assert.Equal(t, []grid.Direction{grid.South, grid.West}, l.Legal(l.Start()))
	assert.Equal(t, strings.TrimSuffix(tiny, "\n"), l.String())
}

func TestParseLayout_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", grid.ErrEmptyLayout},
		{"BlankLines", "\n\n", grid.ErrEmptyLayout},
		{"Ragged", "%%%\n%P\n", grid.ErrNonRectangular},
		{"Glyph", "%%%\n%P#\n%%%", grid.ErrUnknownGlyph},
		{"NoStart", "%%%\n% %\n%%%", grid.ErrNoStart},
		{"TwoStarts", "%%%%\n%PP%\n%%%%", grid.ErrMultipleStarts},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.ParseLayout(tc.text)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLayout_WithStartAndFood(t *testing.T) {
	l, err := grid.ParseLayout(tiny)
	require.NoError(t, err)

	moved := l.WithStart(grid.Cell{X: 1, Y: 3})
	assert.Equal(t, grid.Cell{X: 1, Y: 3}, moved.Start())
	assert.Equal(t, grid.Cell{X: 4, Y: 3}, l.Start(), "original untouched")

	eaten := l.WithFood(l.Food().Without(grid.Cell{X: 1, Y: 3}))
	assert.Equal(t, 1, eaten.Food().Count())
	assert.Equal(t, 2, l.Food().Count())
}

func TestNewLayout(t *testing.T) {
	walls, _ := grid.FromCells(3, 3, grid.Cell{X: 0, Y: 0})
	food, _ := grid.FromCells(3, 3, grid.Cell{X: 2, Y: 2})

	l, err := grid.NewLayout(walls, food, grid.Cell{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, l.Capsules().Count())
	assert.Equal(t, 3, l.Capsules().Width())

	small, _ := grid.NewGrid(2, 2)
	_, err = grid.NewLayout(walls, small, grid.Cell{X: 1, Y: 1})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = grid.NewLayout(walls, food, grid.Cell{X: 3, Y: 1})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = grid.NewLayout(grid.Grid{}, food, grid.Cell{})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}
