package frontier

// Container is the surface shared by every frontier the engine can drive.
// Pop reports false when the container is empty.
type Container[T any] interface {
	Push(item T)
	Pop() (T, bool)
	Len() int
	IsEmpty() bool
}

// PriorityFn computes the priority of an item when it is inserted.
// Smaller values are popped first.
type PriorityFn[T any] func(item T) float64

var (
	_ Container[int] = (*Stack[int])(nil)
	_ Container[int] = (*Queue[int])(nil)
	_ Container[int] = (*PriorityFunc[int])(nil)
)
