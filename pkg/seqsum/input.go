package seqsum

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// A decoder reads values from r and passes them to yield, stopping early if
// yield returns false. The name is used in error messages.
type decoder func(name string, r io.Reader, yield func(int64) bool) error

var decoders = map[string]decoder{
	"text": decodeText,
	"yaml": decodeYAML,
}

// Text input is a sequence of base-10 integers separated by whitespace.
func decodeText(name string, r io.Reader, yield func(int64) bool) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: bad value %q", name, sc.Text())
		}
		if !yield(v) {
			return nil
		}
	}
	return sc.Err()
}

// YAML input is a stream of documents, each one a sequence of integers.
func decodeYAML(name string, r io.Reader, yield func(int64) bool) error {
	dec := yaml.NewDecoder(r)
	for {
		var vs []int64
		err := dec.Decode(&vs)
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		for _, v := range vs {
			if !yield(v) {
				return nil
			}
		}
	}
}

// source streams values from a list of files, or stdin if the list is empty.
// Files are opened one at a time as the values are consumed.
type source struct {
	stdin  *os.File
	files  []string
	decode decoder
	// Number of values read so far.
	n int
	// First error encountered while reading.
	err error
}

// All returns an iterator over all values. Reading stops at the first error,
// which is then available as s.err.
func (s *source) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		stopped := false
		y := func(v int64) bool {
			s.n++
			if !yield(v) {
				stopped = true
			}
			return !stopped
		}
		if len(s.files) == 0 {
			s.err = s.decode("stdin", s.stdin, y)
			return
		}
		for _, name := range s.files {
			s.err = s.decodeFile(name, y)
			if s.err != nil || stopped {
				return
			}
		}
	}
}

func (s *source) decodeFile(name string, yield func(int64) bool) error {
	if name == "-" {
		return s.decode("stdin", s.stdin, yield)
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	logger.Printf("reading %s", name)
	return s.decode(name, f, yield)
}
