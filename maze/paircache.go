package maze

import (
	"sort"

	"github.com/katalvlaran/lvsearch/grid"
)

// Pair is an unordered pair of cells, stored with A before B.
type Pair struct {
	A, B grid.Cell
}

// NewPair returns the normalized pair of a and b.
func NewPair(a, b grid.Cell) Pair {
	if cellLess(b, a) {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

func cellLess(a, b grid.Cell) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func pairLess(p, q Pair) bool {
	if p.A != q.A {
		return cellLess(p.A, q.A)
	}
	return cellLess(p.B, q.B)
}

// PairCache memoizes the Manhattan distance of every unordered pair of a
// fixed cell set.
//
// Farthest removes entries whose endpoints are gone while it scans and puts
// them all back before returning, so the cache observed between calls never
// changes. A PairCache is not safe for concurrent use.
type PairCache struct {
	dist  map[Pair]int
	order []Pair // distance descending, then pair ascending
}

// NewPairCache computes the distance of every pair drawn from cells.
func NewPairCache(cells []grid.Cell) *PairCache {
	n := len(cells)
	c := &PairCache{
		dist:  make(map[Pair]int, n*(n-1)/2),
		order: make([]Pair, 0, n*(n-1)/2),
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := NewPair(cells[i], cells[j])
			if _, dup := c.dist[p]; dup || p.A == p.B {
				continue
			}
			c.dist[p] = cells[i].Manhattan(cells[j])
			c.order = append(c.order, p)
		}
	}
	sort.Slice(c.order, func(i, j int) bool {
		di, dj := c.dist[c.order[i]], c.dist[c.order[j]]
		if di != dj {
			return di > dj
		}
		return pairLess(c.order[i], c.order[j])
	})
	return c
}

// Len returns the number of cached pairs.
func (c *PairCache) Len() int { return len(c.dist) }

// Distance returns the cached distance between a and b.
func (c *PairCache) Distance(a, b grid.Cell) (int, bool) {
	d, ok := c.dist[NewPair(a, b)]
	return d, ok
}

// Snapshot returns a copy of the cache contents.
func (c *PairCache) Snapshot() map[Pair]int {
	out := make(map[Pair]int, len(c.dist))
	for p, d := range c.dist {
		out[p] = d
	}
	return out
}

// Farthest returns the cached pair with the largest distance whose both
// endpoints are set in remaining. Ties go to the smaller pair.
// ok is false when no such pair exists.
func (c *PairCache) Farthest(remaining grid.Grid) (pair Pair, dist int, ok bool) {
	evicted := make(map[Pair]int)
	defer func() {
		for p, d := range evicted {
			c.dist[p] = d
		}
	}()

	for _, p := range c.order {
		d, live := c.dist[p]
		if !live {
			continue
		}
		if remaining.Get(p.A) && remaining.Get(p.B) {
			return p, d, true
		}
		evicted[p] = d
		delete(c.dist, p)
	}
	return Pair{}, 0, false
}
