// Command seqsum sums integers read from files or stdin by stacking them into
// a persistent sequence.
package main

import (
	"os"

	"example.com/seq/pkg/prog"
	"example.com/seq/pkg/seqsum"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args, &seqsum.Program{}))
}
