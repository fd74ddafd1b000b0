package maze_test

import (
	"bytes"
	"testing"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/grid"
	"github.com/katalvlaran/lvsearch/logging"
	"github.com/katalvlaran/lvsearch/search"
)

// open is a 3x3 room inside a wall ring: start (1,1), one food at (3,3).
const open = `%%%%%
%  .%
%   %
%P  %
%%%%%
`

// detour pins (1,3) as the Manhattan-nearest food although (5,3) is far
// closer by walking.
const detour = `%%%%%%%
%.%P .%
% %%% %
%     %
%%%%%%%
`

// row has two food cells ahead of the start on a single corridor.
const row = `%%%%%%%
%P . .%
%%%%%%%
`

// sealed has its only food behind a wall.
const sealed = `%%%%%%%
%P %. %
%%%%%%%
`

// tiny mixes every glyph.
const tiny = `%%%%%%
%.  P%
% %%o%
%. G %
%%%%%%
`

func layout(t testing.TB, text string) *grid.Layout {
	t.Helper()
	l, err := grid.ParseLayout(text)
	require.NoError(t, err)
	return l
}

// bufLogger returns a JSON logger writing into a buffer.
func bufLogger() (*bolt.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return logging.New(logging.Config{Level: "debug", Format: "json", Output: buf}), buf
}

// step applies one action to s through the problem's successor function.
func step[S comparable](t *testing.T, p search.Problem[S], s S, d grid.Direction) S {
	t.Helper()
	for _, succ := range p.Successors(s) {
		if succ.Action == search.Action(d) {
			return succ.State
		}
	}
	t.Fatalf("%v is not legal from %v", d, s)
	return s
}

func actions(dirs ...grid.Direction) []search.Action {
	out := make([]search.Action, len(dirs))
	for i, d := range dirs {
		out[i] = search.Action(d)
	}
	return out
}
