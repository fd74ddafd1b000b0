package logging

import (
	"strconv"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// RunID adds a planning-episode id.
func RunID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("run_id", id)
	}
}

// Algorithm adds the search algorithm name.
func Algorithm(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("algorithm", name)
	}
}

// Heuristic adds the heuristic name.
func Heuristic(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("heuristic", name)
	}
}

// ProblemKind adds the problem variant name.
func ProblemKind(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("problem", name)
	}
}

// Expanded adds the number of expanded search nodes.
func Expanded(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("expanded", n)
	}
}

// Found adds whether a goal was reached.
func Found(found bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("found", found)
	}
}

// Cost adds a path cost. Integral costs print without a fraction.
func Cost(c float64) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("cost", strconv.FormatFloat(c, 'f', -1, 64))
	}
}

// PathLength adds the number of actions in a path.
func PathLength(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("path_len", n)
	}
}

// Cell adds a grid coordinate as "x,y".
func Cell(key string, x, y int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, strconv.Itoa(x)+","+strconv.Itoa(y))
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}
