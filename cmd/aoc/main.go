package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/input"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/runner"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/setup"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `Usage:
  aoc clearcache                              remove every cached input
  aoc ls                                      list implemented puzzles
  aoc run <YEAR> <DAY> [--id ID] [-s|--second] solve a puzzle
`

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.New("info", true)

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := setup.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log.Logger = logger.New(cfg.Log.Level, true)

	ctx, cancel := setupGracefulShutdown()
	defer cancel()

	deps, err := setup.Wire(ctx, cfg, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	err = run(ctx, os.Args[1:], deps.Runner, cfg.Session.File, os.Stdout)
	if closeErr := deps.Close(); closeErr != nil {
		log.Warn().Err(closeErr).Msg("Failed to close dependencies")
	}
	if err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

// run executes one subcommand. Answers and listings go to out, diagnostics to
// the global logger.
func run(ctx context.Context, args []string, r *runner.Runner, sessionFile string, out io.Writer) error {
	switch args[0] {
	case "clearcache":
		return r.Clear(ctx)
	case "ls":
		for _, e := range r.List() {
			fmt.Fprintln(out, e)
		}
		return nil
	case "run":
		parsed, err := parseRunArgs(args[1:], out)
		if err != nil {
			return err
		}

		if !r.Implemented(parsed.Key) {
			fmt.Fprintf(out, "Exercise of Dec %d, %d is not implemented. Exiting...\n", parsed.Key.Day, parsed.Key.Year)
			return nil
		}

		// a missing credential only matters when the input is not cached yet
		credential, credErr := setup.ResolveCredential(parsed.Credential, sessionFile)
		if credErr != nil && !errors.Is(credErr, input.ErrMissingCredential) {
			return credErr
		}

		result, err := r.Solve(ctx, parsed.Key, credential, parsed.Second)
		if err != nil {
			if credErr != nil && errors.Is(err, input.ErrMissingCredential) {
				return credErr
			}
			return err
		}

		fmt.Fprintf(out, "Result: %s\n", result.Answer)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func setupGracefulShutdown() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Warn().Msg("Received interrupt signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}
