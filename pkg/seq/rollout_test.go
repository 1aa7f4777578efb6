package seq

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"example.com/seq/pkg/tt"
)

func repeat[T any](v T, n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < n; i++ {
			if !yield(v) {
				return
			}
		}
	}
}

func TestRollout(t *testing.T) {
	s, err := Rollout(nil, 4, slices.Values([]int{0, 1, 2, 3}))
	if err != nil {
		t.Fatalf("Rollout: %v", err)
	}
	if got := sum(&s); got != 6 {
		t.Errorf("sum = %d, want 6", got)
	}
	if diff := cmp.Diff([]int{3, 2, 1, 0}, slices.Collect(s.All())); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
}

func TestRollout_Large(t *testing.T) {
	s, err := Rollout(nil, 2000, repeat(42, 2000))
	if err != nil {
		t.Fatalf("Rollout: %v", err)
	}
	if got := sum(&s); got != 84000 {
		t.Errorf("sum = %d, want 84000", got)
	}
	if s.Len() != 2000 {
		t.Errorf("Len() = %d, want 2000", s.Len())
	}
}

func TestRollout_ThreadsOntoTail(t *testing.T) {
	base := Build(nil, "a", "b")
	s, err := Rollout(&base, 3, slices.Values([]string{"c", "d"}))
	if err != nil {
		t.Fatalf("Rollout: %v", err)
	}
	want := Build(nil, "a", "b", "c", "d")
	if !Equal(&s, &want) {
		t.Errorf("got %v, want equal to %v", slices.Collect(s.All()), slices.Collect(want.All()))
	}

	// The innermost rolled-out node borrows base rather than copying it.
	inner := &s
	for i := 0; i < 2; i++ {
		inner, _ = inner.Tail()
	}
	if inner != &base {
		t.Errorf("innermost tail is %p, want %p", inner, &base)
	}
}

func TestRollout_SingleValue(t *testing.T) {
	s, err := Rollout(nil, 1, repeat(7, 1))
	if err != nil {
		t.Fatalf("Rollout: %v", err)
	}
	if v, _ := s.Head(); v != 7 || s.Len() != 1 {
		t.Errorf("got %v with length %d, want <7,...> with length 1", &s, s.Len())
	}
}

func TestRollout_Errors(t *testing.T) {
	tt.Test(t, tt.Fn("Rollout", Rollout[int]).ArgsFmt("%v, %d, %p"), tt.Table{
		tt.Args(nil, 4, repeat(0, 0)).Rets(Seq[int]{}, tt.ErrorIs(ErrEmptyInput)),
		tt.Args(nil, 0, repeat(0, 0)).Rets(Seq[int]{}, tt.ErrorIs(ErrEmptyInput)),
		tt.Args(nil, 2000, repeat(0, 0)).Rets(Seq[int]{}, tt.ErrorIs(ErrEmptyInput)),
		tt.Args(nil, 4, slices.Values([]int{0, 1, 2, 3, 4})).
			Rets(Seq[int]{}, tt.ErrorIs(ErrCapacityExceeded)),
		tt.Args(nil, 0, repeat(1, 1)).Rets(Seq[int]{}, tt.ErrorIs(ErrCapacityExceeded)),
		tt.Args(nil, -3, repeat(1, 2)).Rets(Seq[int]{}, tt.ErrorIs(ErrCapacityExceeded)),
	})
}

func TestRollout_StopsReadingOnOverflow(t *testing.T) {
	read := 0
	src := func(yield func(int) bool) {
		for i := 0; i < 100; i++ {
			read++
			if !yield(i) {
				return
			}
		}
	}
	_, err := Rollout(nil, 4, src)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("got error %v, want ErrCapacityExceeded", err)
	}
	if read != 5 {
		t.Errorf("read %d values, want 5", read)
	}
}

func TestBuild(t *testing.T) {
	e := Empty[int]()
	if b := Build[int](nil); !b.IsEmpty() {
		t.Errorf("Build(nil) = %v, want <>", &b)
	}
	base := Build(&e, 1, 2)
	if same := Build(&base); !Equal(&same, &base) {
		t.Errorf("Build(base) = %v, want equal to base", &same)
	}

	s1 := Ref(1, &e)
	s2 := Ref(2, &s1)
	s3 := Ref(3, &s2)
	if built := Build(&e, 1, 2, 3); !Equal(&built, &s3) {
		t.Errorf("Build(&e, 1, 2, 3) = %v, want <3,2,1>", slices.Collect(built.All()))
	}

	ext := Build(&base, 3, 4)
	if diff := cmp.Diff([]int{4, 3, 2, 1}, slices.Collect(ext.All())); diff != "" {
		t.Errorf("Build onto base (-want +got):\n%s", diff)
	}
}
