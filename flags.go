package main

import (
	"flag"
	"fmt"
	"os"
)

const help = `Checks a structure-search input file before any compute time is
spent on it: schema, ranges, cross-section consistency, and the
existence of every referenced file (INCAR, KPOINTS, potcars, seed
folder). Exits 0 when the input is usable.

Usage:
  gain [flags] ga_input.yaml
Flags:
`

var (
	dumpEff   = flag.Bool("dump", false, "print the effective input with defaults applied and exit")
	noPaths   = flag.Bool("n", false, "skip referenced-file existence checks")
	quiet     = flag.Bool("q", false, "only report errors")
	template  = flag.Bool("tmpl", false, "print a starter input file and exit")
	verbosity = flag.Bool("v", false, "debug logging")
	version   = flag.Bool("version", false, "print the version and exit")
	watchFile = flag.Bool("watch", false, "revalidate whenever the input file changes")
)

// ParseFlags parses command line flags and returns a slice of the
// remaining arguments
func ParseFlags() []string {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), help)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Printf("gain version: %s\n", VERSION)
		os.Exit(0)
	}
	return flag.Args()
}
