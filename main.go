/*
gain
----
The goal of this program is to catch every problem in a
genetic-algorithm structure-search input file up front, so a run never
dies hours in on a typo: load the file, apply the defaults the engine
would, and report every violated constraint at once.
*/

package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// VERSION is overridden at build time
var VERSION = "dev"

var logger = zerolog.Nop()

func main() {
	args := ParseFlags()

	level := zerolog.InfoLevel
	if *verbosity {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	if *template {
		os.Stdout.WriteString(inputTemplate)
		return
	}
	if len(args) < 1 {
		logger.Fatal().Msg("no input file supplied")
	}
	path := args[0]

	check := func() error {
		in, err := LoadInput(path)
		if err != nil {
			return err
		}
		if err := in.Validate(!*noPaths); err != nil {
			return err
		}
		if *dumpEff {
			return DumpInput(os.Stdout, in)
		}
		if !*quiet {
			cs, _ := NewCompositionSpace(in.CompositionSpace)
			logger.Info().
				Str("run", in.RunTitle).
				Str("objective", cs.Objective()).
				Strs("elements", cs.Elements()).
				Int("pool", in.Pool.Size).
				Int("calc_budget", in.Stopping.NumEnergyCalcs).
				Msg("input ok")
		}
		return nil
	}

	err := check()
	report(path, err)

	if *watchFile {
		if werr := WatchInput(path, check); werr != nil {
			logger.Fatal().Err(werr).Msg("cannot watch input file")
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

// report logs each violation on its own line.
func report(path string, err error) {
	if err == nil {
		return
	}
	for _, line := range strings.Split(err.Error(), "\n") {
		logger.Error().Str("file", path).Msg(line)
	}
}
