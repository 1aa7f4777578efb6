package seq

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sum(s *Seq[int]) int {
	total := 0
	for v := range s.All() {
		total += v
	}
	return total
}

func take[T any](n int, s *Seq[T]) []T {
	var vs []T
	for v := range s.All() {
		if len(vs) == n {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

func TestIterator(t *testing.T) {
	e := Empty[int]()
	s1 := Ref(1, &e)
	s2 := Ref(2, &s1)
	s3 := Ref(3, &s2)
	s4 := Ref(4, &s3)

	it := s4.Iterator()
	var got []int
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	if diff := cmp.Diff([]int{4, 3, 2, 1}, got); diff != "" {
		t.Errorf("iterated values (-want +got):\n%s", diff)
	}
	// Exhaustion is permanent.
	for i := 0; i < 3; i++ {
		if v, ok := it.Next(); ok {
			t.Errorf("Next() after end -> (%v, true)", v)
		}
	}
}

func TestIterator_Empty(t *testing.T) {
	var nilSeq *Seq[string]
	e := Empty[string]()
	for _, s := range []*Seq[string]{nilSeq, &e} {
		if v, ok := s.Iterator().Next(); ok {
			t.Errorf("Next() on %v -> (%q, true)", s, v)
		}
		if vs := slices.Collect(s.All()); len(vs) != 0 {
			t.Errorf("All() on %v yields %q", s, vs)
		}
	}
}

func TestAll_Fold(t *testing.T) {
	s := Build(nil, 1, 2, 3, 4)
	if got := sum(&s); got != 10 {
		t.Errorf("sum of %v = %d, want 10", &s, got)
	}

	o := prependOwned(1, nil)
	if got := sum(&o); got != 10 {
		t.Errorf("sum of %v = %d, want 10", &o, got)
	}
}

func TestAll_LenConsistency(t *testing.T) {
	e := Empty[int]()
	base := Build(&e, 5, 6)
	mixed := prependOwned(0, &base)
	seqs := []*Seq[int]{nil, &e, &base, &mixed}
	for _, s := range seqs {
		first := slices.Collect(s.All())
		second := slices.Collect(s.All())
		if len(first) != s.Len() {
			t.Errorf("%v: iterated %d values, Len() = %d", s, len(first), s.Len())
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%v: two walks differ (-first +second):\n%s", s, diff)
		}
	}
	if diff := cmp.Diff([]int{3, 2, 1, 0, 6, 5}, slices.Collect(mixed.All())); diff != "" {
		t.Errorf("mixed values (-want +got):\n%s", diff)
	}
}

func TestAll_Ring(t *testing.T) {
	// Four nodes referring to each other in a ring. Nothing in the package
	// detects the cycle, so the walk is infinite and only a prefix is taken.
	var ring [4]Seq[int]
	for i := range ring {
		ring[i] = Ref(i+1, &ring[(i+1)%len(ring)])
	}

	got := take(12, &ring[0])
	if len(got) != 12 {
		t.Fatalf("took %d values, want 12", len(got))
	}
	total := 0
	for _, v := range got {
		total += v * v
	}
	// 3 rounds of 1² + 2² + 3² + 4².
	if total != 3*30 {
		t.Errorf("sum of squares = %d, want %d", total, 3*30)
	}
	if diff := cmp.Diff([]int{2, 3, 4, 1}, take(4, &ring[1])); diff != "" {
		t.Errorf("walk from ring[1] (-want +got):\n%s", diff)
	}
}
