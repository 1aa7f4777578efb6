package seq

// Build returns the sequence obtained by pushing vals in order onto base, so
// that the last value becomes the head. It is equivalent to
//
//	s1 := Ref(vals[0], base)
//	s2 := Ref(vals[1], &s1)
//	...
//
// with the intermediate nodes stored in a single backing array. A nil base
// means the empty sequence. If vals is empty, Build returns a copy of *base.
func Build[T any](base *Seq[T], vals ...T) Seq[T] {
	if len(vals) == 0 {
		if base == nil {
			return Seq[T]{}
		}
		return *base
	}
	nodes := make([]Seq[T], len(vals)-1)
	tail := base
	for i, v := range vals[:len(vals)-1] {
		nodes[i] = Ref(v, tail)
		tail = &nodes[i]
	}
	return Ref(vals[len(vals)-1], tail)
}
