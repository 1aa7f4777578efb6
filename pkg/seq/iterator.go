package seq

import "iter"

// Iterator walks a sequence from the head. It can be used like this:
//
//	it := s.Iterator()
//	for v, ok := it.Next(); ok; v, ok = it.Next() {
//	    // do something with v...
//	}
//
// An Iterator cannot be restarted; call Iterator again on the sequence to walk
// it again.
type Iterator[T any] struct {
	cur *Seq[T]
}

// Iterator returns an iterator positioned at the head of s.
func (s *Seq[T]) Iterator() *Iterator[T] { return &Iterator[T]{s} }

// Next returns the value at the current position and advances to the tail. The
// second return value is false once the end has been reached, and stays false
// on subsequent calls.
func (it *Iterator[T]) Next() (T, bool) {
	if it.cur.IsEmpty() {
		it.cur = nil
		var zero T
		return zero, false
	}
	v := it.cur.head
	it.cur = it.cur.tail
	return v, true
}

// All returns an iterator over the values of s, suitable for range-over-func
// loops and the functions in the slices package. Each call to the returned
// function walks s from the head.
//
// All allocates once for the returned function. Iterator does not allocate,
// and is preferable where that matters.
func (s *Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iterator()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
