// Package prog provides the common entry point of programs in this module.
package prog

// This package parses the flags common to all programs, lets the program
// register its own flags, and turns the error returned by the program into an
// exit status.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"example.com/seq/pkg/logutil"
)

// Flags keeps command-line flags common to all programs.
type Flags struct {
	Log  string
	Help bool
}

func newFlagSet(name string, f *Flags) *FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")
	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")

	return &FlagSet{FlagSet: fs}
}

func usage(out io.Writer, fs *FlagSet) {
	fmt.Fprintf(out, "Usage: %s [flags] [file...]\n", fs.Name())
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the program. It returns the exit
// status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(filepath.Base(args[0]), f)
	p.RegisterFlags(fs)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h was requested but
			// not defined. Treat it like any other undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if f.Log != "" {
		err = logutil.SetOutputFile(f.Log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var badUsage badUsageError
	if errors.As(err, &badUsage) {
		usage(fds[2], fs)
	}
	return 2
}

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Program represents a program.
type Program interface {
	// RegisterFlags registers flags specific to the program.
	RegisterFlags(fs *FlagSet)
	// Run runs the program with the arguments left after flags are parsed.
	Run(fds [3]*os.File, args []string) error
}
