// Command workouts prints a summary line for every workout package of a batch.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"

	"example.com/workouts/internal/config"
	"example.com/workouts/internal/domain"
	"example.com/workouts/internal/input"
	"example.com/workouts/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one batch and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	flags := flag.NewFlagSet("workouts", flag.ContinueOnError)
	flags.SetOutput(stderr)
	inputPath := flags.String("input", "", "path to a TOML batch file; the built-in samples are used when empty")
	concurrency := flags.Int("concurrency", cfg.BatchConcurrency, "maximum number of packages computed at once")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	logger := log.New(stderr, "[workouts] ", log.LstdFlags)

	packages := input.Samples()
	if *inputPath != "" {
		loaded, err := input.LoadFile(*inputPath)
		if err != nil {
			logger.Printf("failed to load packages: %v", err)
			return 1
		}
		packages = loaded
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	service := domain.NewService(
		domain.WithLogger(logger),
		domain.WithConcurrency(*concurrency),
	)

	results, batchErr := service.ComputeBatch(ctx, packages)

	if _, err := report.NewWriter(stdout).Write(results); err != nil {
		logger.Printf("failed to write summaries: %v", err)
		return 1
	}

	if batchErr != nil {
		logger.Printf("%d of %d packages failed", len(multierr.Errors(batchErr)), len(packages))
		return 1
	}
	return 0
}
