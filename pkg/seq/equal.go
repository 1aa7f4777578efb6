package seq

// Equal reports whether a and b contain equal values in the same order. Whether
// a tail is borrowed or owned does not matter.
//
// At least one of the sequences must be acyclic.
func Equal[T comparable](a, b *Seq[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but compares values with eq.
func EqualFunc[T1, T2 any](a *Seq[T1], b *Seq[T2], eq func(T1, T2) bool) bool {
	for {
		aEmpty, bEmpty := a.IsEmpty(), b.IsEmpty()
		if aEmpty || bEmpty {
			return aEmpty && bEmpty
		}
		if !eq(a.head, b.head) {
			return false
		}
		a, b = a.tail, b.tail
	}
}
