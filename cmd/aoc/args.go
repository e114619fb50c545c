package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/puzzle"
)

type runArgs struct {
	Key        puzzle.Key
	Credential string
	Second     bool
}

// parseRunArgs accepts `<YEAR> <DAY> [--id CREDENTIAL] [-s|--second]` with the
// flags before, between or after the positionals.
func parseRunArgs(args []string, output io.Writer) (runArgs, error) {
	var parsed runArgs

	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&parsed.Credential, "id", "", "Session credential (default: $AOC_SESSION or the session file)")
	fs.BoolVar(&parsed.Second, "second", false, "Run the second part of the puzzle")
	fs.BoolVar(&parsed.Second, "s", false, "Shorthand for --second")

	var positionals []string
	for {
		if err := fs.Parse(args); err != nil {
			return runArgs{}, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positionals = append(positionals, args[0])
		args = args[1:]
	}

	if len(positionals) != 2 {
		return runArgs{}, fmt.Errorf("expected <YEAR> <DAY>, got %d arguments", len(positionals))
	}

	year, err := strconv.Atoi(positionals[0])
	if err != nil {
		return runArgs{}, fmt.Errorf("invalid year %q", positionals[0])
	}
	day, err := strconv.Atoi(positionals[1])
	if err != nil {
		return runArgs{}, fmt.Errorf("invalid day %q", positionals[1])
	}

	parsed.Key, err = puzzle.NewKey(year, day)
	if err != nil {
		return runArgs{}, err
	}

	return parsed, nil
}
