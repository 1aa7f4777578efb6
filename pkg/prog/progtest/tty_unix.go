//go:build !windows

package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/creack/pty"
)

// Opens a pseudo terminal, types input followed by Ctrl-D into it, and returns
// the terminal side. Both sides are closed when the test finishes.
func ttyStdin(t *testing.T, input string) *os.File {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("cannot open pty: %v", err)
	}
	t.Cleanup(func() {
		ptmx.Close()
		tty.Close()
	})
	// The terminal echoes what is typed; discard it.
	go io.Copy(io.Discard, ptmx)

	// In canonical mode, Ctrl-D only signals end-of-file at the start of a
	// line.
	if input != "" && !strings.HasSuffix(input, "\n") {
		input += "\n"
	}
	if _, err := io.WriteString(ptmx, input+"\x04"); err != nil {
		t.Fatalf("write to pty: %v", err)
	}
	return tty
}
