// Package frontier provides the exploration-order containers used by the
// search engine: a last-in-first-out Stack, a first-in-first-out Queue and a
// minimum-priority PriorityQueue.
//
// What
//
//   - Stack[T]: Push/Pop in LIFO order (depth-first exploration).
//   - Queue[T]: Push/Pop in FIFO order (breadth-first exploration).
//   - PriorityQueue[T]: Push(item, priority); Pop yields the smallest priority.
//   - PriorityFunc[T]: a PriorityQueue whose priority is computed by a
//     caller-supplied function at insertion time, so it satisfies Container.
//
// Determinism
//
//	PriorityQueue breaks ties by insertion order: among entries with equal
//	priority the one pushed first is popped first. Results that depend on
//	tie-breaking are therefore reproducible run to run.
//
// Complexity
//
//   - Stack, Queue: O(1) amortized Push and Pop.
//   - PriorityQueue, PriorityFunc: O(log n) Push and Pop.
//
// None of the containers are safe for concurrent use.
package frontier
