package grid

import "fmt"

// vectors maps each direction to its displacement.
var vectors = map[Direction]Vector{
	North: {0, 1},
	South: {0, -1},
	East:  {1, 0},
	West:  {-1, 0},
	Stop:  {0, 0},
}

// reverse maps each direction to its opposite.
var reverse = map[Direction]Direction{
	North: South,
	South: North,
	East:  West,
	West:  East,
	Stop:  Stop,
}

// Cardinal returns the four moving directions in North, South, East, West order.
func Cardinal() []Direction {
	return []Direction{North, South, East, West}
}

// Vector returns the displacement of d. The second result is false for an
// unknown direction.
func (d Direction) Vector() (Vector, bool) {
	v, ok := vectors[d]
	return v, ok
}

// Reverse returns the opposite direction; Stop reverses to itself.
func (d Direction) Reverse() Direction {
	if r, ok := reverse[d]; ok {
		return r
	}
	return d
}

// Valid reports whether d belongs to the vocabulary.
func (d Direction) Valid() bool {
	_, ok := vectors[d]
	return ok
}

// ParseDirection converts a name into a Direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", fmt.Errorf("grid: unknown direction %q", s)
	}
	return d, nil
}

// DirectionTo returns the direction leading from a to an adjacent cell b.
func DirectionTo(a, b Cell) (Direction, bool) {
	for _, d := range Cardinal() {
		if a.Add(vectors[d]) == b {
			return d, true
		}
	}
	return "", false
}
