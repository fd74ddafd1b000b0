// Package grid models the maze environment consumed by the search problems:
// cells, the four-way direction vocabulary, immutable boolean grids and a
// text layout format.
//
//   - Cell is an (X, Y) coordinate; Y grows upward.
//   - Direction is North, South, East, West or Stop, each with a unit
//     displacement vector.
//   - Grid is an immutable, comparable bitmap over Width×Height cells.
//     Updates return a new Grid, so a Grid can sit inside a search state
//     and serve as a map key.
//   - Layout is an environment snapshot parsed from text:
//
//	%%%%%%
//	%.  P%
//	% %% %
//	%.   %
//	%%%%%%
//
//     '%' wall, '.' food, 'o' capsule, 'P' start, 'G' or '1'-'4' ghost,
//     ' ' open floor. The first text row is the top of the maze.
package grid
