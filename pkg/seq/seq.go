// Package seq implements a persistent singly-linked sequence meant for deeply
// nested calls that accumulate immutable context.
//
// A sequence is either empty, or a node holding a head value and a tail. A
// caller extends a sequence by creating a new node that points to it, never by
// modifying it, so any number of sequences may share a common tail:
//
//	base := seq.Build(nil, 1, 2) // <2,1>
//	t := seq.Ref(3, &base)       // <3,2,1>
//	z := seq.Ref(33, &base)      // <33,2,1>
//
// The tail of a node is held in one of two ways. A node made with [Ref]
// borrows its tail: it stores a pointer to a Seq that lives somewhere else,
// typically a local variable in a calling function, and does not copy it. A
// node made with [Own] owns its tail: the tail is moved into a heap cell that
// no other node points to. Use Own when the tail would otherwise be a
// temporary, for example when returning a sequence from a function. The two
// representations are interchangeable for every operation in this package,
// including equality.
//
// The zero value of Seq is the empty sequence, and a nil *Seq is treated as
// empty by all methods. All methods have pointer receivers; in particular,
// pass &s rather than s to the fmt package to get the "<head,...>" form.
//
// Len, Equal and EqualFunc assume an acyclic sequence. A cycle can only be
// built by assigning through a pointer to a Seq that is already used as a
// tail; iterating such a ring is well-defined and never terminates by itself.
package seq

// Seq is a persistent sequence of values of type T. The zero value is the
// empty sequence.
//
// The == operator compares the representation of two Seq values, not their
// contents; use [Equal] or [EqualFunc] instead.
type Seq[T any] struct {
	head T
	tail *Seq[T]
	kind kind
}

type kind uint8

const (
	emptyKind kind = iota
	refKind
	ownKind
)

// Empty returns the empty sequence.
func Empty[T any]() Seq[T] { return Seq[T]{} }

// Ref returns a sequence with head v in front of tail. The tail is borrowed:
// the returned node stores the pointer and does not copy the tail, so later
// nodes built on the same tail share it. A nil tail means the empty sequence.
func Ref[T any](v T, tail *Seq[T]) Seq[T] {
	return Seq[T]{v, tail, refKind}
}

// Own returns a sequence with head v in front of tail. The tail value is moved
// into a newly allocated cell that only the returned node refers to, which
// makes the result independent of wherever tail was stored.
func Own[T any](v T, tail Seq[T]) Seq[T] {
	p := new(Seq[T])
	*p = tail
	return Seq[T]{v, p, ownKind}
}

// IsEmpty returns whether s is the empty sequence.
func (s *Seq[T]) IsEmpty() bool { return s == nil || s.kind == emptyKind }

// Owned returns whether s is a node that owns its tail.
func (s *Seq[T]) Owned() bool { return s != nil && s.kind == ownKind }

// Head returns the first value of s. The second return value is false if s is
// empty.
func (s *Seq[T]) Head() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	return s.head, true
}

// Tail returns the sequence after the first value of s. The second return value
// is false if s is empty. For an owned tail, the returned pointer refers to the
// cell owned by s; ownership is not transferred.
//
// When ok is true, t may be nil, which stands for the empty sequence.
func (s *Seq[T]) Tail() (t *Seq[T], ok bool) {
	if s.IsEmpty() {
		return nil, false
	}
	return s.tail, true
}

// Len returns the number of values in s. It walks the whole sequence and does
// not terminate on a cyclic one.
func (s *Seq[T]) Len() int {
	n := 0
	for ; !s.IsEmpty(); s = s.tail {
		n++
	}
	return n
}
