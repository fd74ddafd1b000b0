package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/frontier"
)

func TestStack_LIFO(t *testing.T) {
	s := frontier.NewStack[int]()
	assert.True(t, s.IsEmpty())

	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	assert.Equal(t, 3, s.Len())

	for _, want := range []int{3, 2, 1} {
		got, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := s.Pop()
	assert.False(t, ok, "pop on empty stack must report false")
	assert.True(t, s.IsEmpty())
}

func TestQueue_FIFO(t *testing.T) {
	q := frontier.NewQueue[string]()
	assert.True(t, q.IsEmpty())

	q.Push("a")
	q.Push("b")
	q.Push("c")

	for _, want := range []string{"a", "b", "c"} {
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := q.Pop()
	assert.False(t, ok)
}

// TestQueue_Compaction interleaves pushes and pops across the compaction
// threshold and checks order survives.
func TestQueue_Compaction(t *testing.T) {
	q := frontier.NewQueue[int]()
	next := 0
	for i := 0; i < 500; i++ {
		q.Push(i)
		if i%3 == 0 {
			got, ok := q.Pop()
			require.True(t, ok)
			require.Equal(t, next, got)
			next++
		}
	}
	for !q.IsEmpty() {
		got, _ := q.Pop()
		require.Equal(t, next, got)
		next++
	}
	assert.Equal(t, 500, next)
}

func TestPriorityQueue_MinFirst(t *testing.T) {
	pq := frontier.NewPriorityQueue[string]()
	pq.Push("five", 5)
	pq.Push("one", 1)
	pq.Push("three", 3)
	pq.Push("zero", 0)

	item, pri, ok := pq.Peek()
	require.True(t, ok)
	assert.Equal(t, "zero", item)
	assert.Equal(t, 0.0, pri)

	var order []string
	for !pq.IsEmpty() {
		v, _ := pq.Pop()
		order = append(order, v)
	}
	assert.Equal(t, []string{"zero", "one", "three", "five"}, order)

	_, ok = pq.Pop()
	assert.False(t, ok)
	_, _, ok = pq.Peek()
	assert.False(t, ok)
}

// TestPriorityQueue_TiesInInsertionOrder pins the documented tie-breaking rule.
func TestPriorityQueue_TiesInInsertionOrder(t *testing.T) {
	pq := frontier.NewPriorityQueue[int]()
	for i := 0; i < 20; i++ {
		pq.Push(i, float64(i%2)) // evens at 0, odds at 1
	}
	var got []int
	for !pq.IsEmpty() {
		v, _, _ := pq.PopWithPriority()
		got = append(got, v)
	}
	want := []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19}
	assert.Equal(t, want, got)
}

func TestPriorityFunc_UsesCallerPriority(t *testing.T) {
	type job struct {
		name string
		cost int
	}
	p := frontier.NewPriorityFunc(func(j job) float64 { return float64(j.cost) })
	p.Push(job{"b", 2})
	p.Push(job{"a", 1})
	p.Push(job{"c", 2})
	assert.Equal(t, 3, p.Len())

	var names []string
	for !p.IsEmpty() {
		j, ok := p.Pop()
		require.True(t, ok)
		names = append(names, j.name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestPriorityFunc_NilFnIsFIFO(t *testing.T) {
	p := frontier.NewPriorityFunc[int](nil)
	for i := 0; i < 5; i++ {
		p.Push(i)
	}
	for i := 0; i < 5; i++ {
		v, _ := p.Pop()
		assert.Equal(t, i, v)
	}
}
