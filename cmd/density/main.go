// density reads tab separated lines from stdin and appends the density and
// cumulative density of one numeric field to every line.
//
// data:
//
// a	1.0
// b	2.0
// c	7.0
//
// $ density -f 1 < data
// a	1.0	0.10000	0.10000
// b	2.0	0.20000	0.30000
// c	7.0	0.70000	1.00000
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bool64/dev/version"
	"github.com/miku/density/internal/density"
)

func main() {
	// Let writes to a closed pipe fail with EPIPE, so we can exit quietly,
	// instead of being killed by the signal.
	signal.Ignore(syscall.SIGPIPE)
	os.Exit(realMain(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func realMain(args []string, in io.Reader, out, errOut io.Writer) int {
	var (
		cfg         density.Config
		showVersion bool
		fs          = flag.NewFlagSet(args[0], flag.ContinueOnError)
	)
	fs.SetOutput(errOut)
	fs.BoolVar(&cfg.Verbose, "verbose", false, "emit diagnostics to stderr")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for -verbose")
	fs.IntVar(&cfg.Field, "field", 0, "tab separated field to use as value (0 origin)")
	fs.IntVar(&cfg.Field, "f", 0, "shorthand for -field")
	fs.BoolVar(&cfg.Percentage, "percentage", false, "show results in percent")
	fs.BoolVar(&cfg.Percentage, "p", false, "shorthand for -percentage")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if showVersion {
		fmt.Fprintln(out, version.Info().Version)
		return 0
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return 2
	}
	if cfg.Field < 0 {
		fmt.Fprintf(errOut, "field must not be negative: %d\n", cfg.Field)
		return 2
	}
	logger := log.New(errOut, "density: ", 0)
	if cfg.Verbose {
		logger.Printf("field: %d", cfg.Field)
	}
	if err := density.Run(cfg, in, out, logger); err != nil {
		if density.IsBrokenPipe(err) {
			return 0
		}
		logger.Println(err)
		return 1
	}
	return 0
}
