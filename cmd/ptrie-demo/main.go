package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/sysd/exercises/persistent-trie/internal/config"
	"github.com/kumarlokesh/sysd/exercises/persistent-trie/internal/logging"
	"github.com/kumarlokesh/sysd/exercises/persistent-trie/internal/scenario"
)

const versionString = "ptrie-demo v0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("ptrie-demo failed")
	}
}

// run parses args, replays the configured scenario and writes search results
// to stdout. Logs go to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ptrie-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to config file")
	version := fs.Bool("version", false, "Show version information")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *version {
		_, err := fmt.Fprintln(stdout, versionString)
		return err
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config %q: %w", *configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	log.Logger = logger

	steps := cfg.Steps()
	log.Info().Int("steps", len(steps)).Msg("Running scenario")

	runner := scenario.NewRunner(stdout, logger)
	if err := runner.Run(steps); err != nil {
		return fmt.Errorf("scenario failed: %w", err)
	}

	log.Info().
		Int("versions", runner.Versions()).
		Int("keys", runner.Current().Len()).
		Msg("Scenario finished")
	return nil
}
