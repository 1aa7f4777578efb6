// Package seqsum implements a program that sums a list of integers by stacking
// them into a [seq.Seq].
//
// By default the values are materialized with [seq.Rollout], bounded by the
// -cap flag. With -nested, each value is pushed by its own level of recursion
// instead, and the running sum is printed at each level.
package seqsum

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"
	"os"
	"slices"
	"strings"

	"example.com/seq/pkg/logutil"
	"example.com/seq/pkg/prog"
	"example.com/seq/pkg/seq"
	"example.com/seq/pkg/sys"
)

var logger = logutil.GetLogger("[seqsum] ")

// DefaultCapacity is the default value of the -cap flag.
const DefaultCapacity = 1024

// MaxCapacity is the largest value accepted for the -cap flag. Storage for
// -cap values is reserved before any input is read.
const MaxCapacity = 1 << 24

var errNoValues = errors.New("no values to sum")

// Program is the seqsum program.
type Program struct {
	capacity int
	format   string
	nested   bool
	json     *bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.IntVar(&p.capacity, "cap", DefaultCapacity,
		"maximum number of values")
	fs.StringVar(&p.format, "format", "text",
		"input format, one of "+strings.Join(slices.Sorted(maps.Keys(decoders)), ", "))
	fs.BoolVar(&p.nested, "nested", false,
		"push one value per level of recursion and print running sums")
	p.json = fs.JSON()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	decode, ok := decoders[p.format]
	if !ok {
		return prog.BadUsage(fmt.Sprintf("unknown format %q", p.format))
	}
	if p.capacity > MaxCapacity {
		return prog.BadUsage(fmt.Sprintf("-cap %d too large, maximum is %d", p.capacity, MaxCapacity))
	}
	if p.nested && *p.json {
		return prog.BadUsage("-json cannot be used with -nested")
	}
	if len(args) == 0 && sys.IsTerminal(fds[0]) {
		fmt.Fprintln(fds[2], "reading values from terminal, end with Ctrl-D")
	}

	src := &source{stdin: fds[0], files: args, decode: decode}
	if p.nested {
		return p.runNested(fds[1], src)
	}
	return p.runRollout(fds[1], src)
}

func (p *Program) runRollout(w io.Writer, src *source) error {
	logger.Printf("rolling out with capacity %d", p.capacity)
	s, err := seq.Rollout(nil, p.capacity, src.All())
	if src.err != nil {
		return src.err
	} else if err != nil {
		return p.convertError(err)
	}
	logger.Printf("rolled out %d values", src.n)

	r := report{Length: s.Len(), Sum: sum(&s), Top: s.String()}
	if *p.json {
		r.Values = slices.Collect(s.All())
		return json.NewEncoder(w).Encode(r)
	}
	fmt.Fprintf(w, "length: %d\nsum: %d\ntop: %s\n", r.Length, r.Sum, r.Top)
	return nil
}

func (p *Program) runNested(w io.Writer, src *source) error {
	next, stop := iter.Pull(src.All())
	defer stop()
	err := p.nest(w, next, 0, nil)
	if src.err != nil {
		return src.err
	}
	return err
}

// Each call stores one node in its own frame and passes a pointer to it down
// to the next level.
func (p *Program) nest(w io.Writer, next func() (int64, bool), depth int, tail *seq.Seq[int64]) error {
	v, ok := next()
	if !ok {
		if depth == 0 {
			return errNoValues
		}
		return nil
	}
	if depth >= p.capacity {
		return p.convertError(seq.ErrCapacityExceeded)
	}
	s := seq.Ref(v, tail)
	fmt.Fprintf(w, "depth %d: sum %d\n", depth+1, sum(&s))
	return p.nest(w, next, depth+1, &s)
}

func (p *Program) convertError(err error) error {
	switch {
	case errors.Is(err, seq.ErrEmptyInput):
		return errNoValues
	case errors.Is(err, seq.ErrCapacityExceeded):
		return fmt.Errorf("more than %d values, use -cap to raise the limit", p.capacity)
	}
	return err
}

type report struct {
	Length int     `json:"length"`
	Sum    int64   `json:"sum"`
	Top    string  `json:"top"`
	Values []int64 `json:"values,omitempty"`
}

func sum(s *seq.Seq[int64]) int64 {
	var total int64
	for v := range s.All() {
		total += v
	}
	return total
}
