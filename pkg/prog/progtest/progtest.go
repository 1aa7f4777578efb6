// Package progtest contains utilities for testing [prog.Program]
// implementations.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"example.com/seq/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args     []string
	stdin    string
	ttyStdin bool
	want     result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + o.content
	}
	return o.content
}

// ThatProgram returns a new Case with the specified program name and CLI
// arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "seqsum -bad" exits with 2 and writes
// "flag provided but not defined: -bad" to stderr reads like:
//
//	ThatProgram("seqsum", "-bad").ExitsWith(2).WritesStderrContaining(
//	    "flag provided but not defined: -bad")
func ThatProgram(name string, args ...string) Case {
	return Case{args: append([]string{name}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// WithTTYStdin returns an altered Case that connects stdin of the program to a
// pseudo terminal. The input given with WithStdin is typed into the terminal,
// followed by an end-of-file. The test is skipped where pseudo terminals are
// not supported.
func (c Case) WithTTYStdin() Case {
	c.ttyStdin = true
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise don't
// have any expectations, for example:
//
//	ThatProgram("seqsum", "-help").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program to return with
// the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program to
// write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program to
// write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(t, p, c)
			if r.exitCode != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", r.exitCode, c.want.exitCode)
			}
			if !matchOutput(r.stdout.content, c.want.stdout) {
				t.Errorf("got stdout %q, want %s", r.stdout.content, c.want.stdout)
				if !c.want.stdout.partial {
					t.Logf("stdout diff (-want +got):\n%s", cmp.Diff(c.want.stdout.content, r.stdout.content))
				}
			}
			if !matchOutput(r.stderr.content, c.want.stderr) {
				t.Errorf("got stderr %q, want %s", r.stderr.content, c.want.stderr)
			}
		})
	}
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}

func run(t *testing.T, p prog.Program, c Case) result {
	var stdin *os.File
	if c.ttyStdin {
		stdin = ttyStdin(t, c.stdin)
	} else {
		r0, w0 := pipe(t)
		go func() {
			io.WriteString(w0, c.stdin)
			w0.Close()
		}()
		defer r0.Close()
		stdin = r0
	}
	r1, w1 := pipe(t)
	r2, w2 := pipe(t)

	// Drain stdout and stderr concurrently so that the program never blocks
	// on a full pipe.
	stdout := readAllAsync(r1)
	stderr := readAllAsync(r2)

	exit := prog.Run([3]*os.File{stdin, w1, w2}, c.args, p)
	w1.Close()
	w2.Close()

	return result{exit, output{content: <-stdout}, output{content: <-stderr}}
}

func pipe(t *testing.T) (*os.File, *os.File) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	return r, w
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		b, _ := io.ReadAll(r)
		r.Close()
		ch <- string(b)
	}()
	return ch
}
