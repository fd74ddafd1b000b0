package frontier_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/frontier"
)

// ExamplePriorityQueue shows minimum-first order with insertion-order ties.
func ExamplePriorityQueue() {
	pq := frontier.NewPriorityQueue[string]()
	pq.Push("west", 2)
	pq.Push("north", 1)
	pq.Push("east", 1)
	for !pq.IsEmpty() {
		v, _ := pq.Pop()
		fmt.Println(v)
	}
	// Output:
	// north
	// east
	// west
}

// ExampleStack contrasts LIFO with FIFO on the same input.
func ExampleStack() {
	s := frontier.NewStack[int]()
	q := frontier.NewQueue[int]()
	for i := 1; i <= 3; i++ {
		s.Push(i)
		q.Push(i)
	}
	for !s.IsEmpty() {
		a, _ := s.Pop()
		b, _ := q.Pop()
		fmt.Println(a, b)
	}
	// Output:
	// 3 1
	// 2 2
	// 1 3
}
