package seq

import (
	"errors"
	"fmt"
	"iter"
)

// Errors returned by Rollout.
var (
	ErrEmptyInput       = errors.New("rollout: empty input")
	ErrCapacityExceeded = errors.New("rollout: capacity exceeded")
)

// Rollout pushes the values produced by src onto tail, in the same way as
// [Build], using at most capacity nodes. The first value ends up next to tail
// and the last value becomes the head of the result.
//
// Storage for capacity-1 nodes is reserved before src is read, regardless of
// how many values it produces; the last node is the return value itself.
//
// Rollout reads src once. It returns an error wrapping ErrEmptyInput if src
// produces no values, and an error wrapping ErrCapacityExceeded as soon as src
// produces more than capacity values; in the latter case the rest of src is
// not read. A nil tail means the empty sequence.
func Rollout[T any](tail *Seq[T], capacity int, src iter.Seq[T]) (Seq[T], error) {
	slots := make([]Seq[T], max(capacity-1, 0))
	var (
		n       int
		pending T
	)
	for v := range src {
		if n >= capacity {
			return Seq[T]{}, fmt.Errorf("%w: more than %d values", ErrCapacityExceeded, capacity)
		}
		if n > 0 {
			slots[n-1] = Ref(pending, tail)
			tail = &slots[n-1]
		}
		pending = v
		n++
	}
	if n == 0 {
		return Seq[T]{}, ErrEmptyInput
	}
	return Ref(pending, tail), nil
}
