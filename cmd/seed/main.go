// Package main is the entrypoint for the Finseed database seeder.
// It populates the store with synthetic users and persona-shaped
// transaction histories covering the last 180 days.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/oklog/ulid/v2"

	"github.com/finseed/finseed/internal/generator"
	"github.com/finseed/finseed/internal/repository"
)

func main() {
	// .env is optional; the flag default below picks up DATABASE_URL
	// after loading.
	_ = godotenv.Load()

	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		userCount   = flag.Int("users", 50, "Number of synthetic users to create")
		seed        = flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
		concurrency = flag.Int("concurrency", 1, "Users generated concurrently (1 = sequential)")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}
	if *userCount < 1 {
		fmt.Fprintln(os.Stderr, "-users must be at least 1")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With(
		"run_id", ulid.Make().String(),
	)

	ctx := context.Background()

	if err := repository.Migrate(*databaseURL); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		logger.Error("connect database failed", "error", err)
		os.Exit(1)
	}
	defer repo.Close()

	gen := generator.New(repo, logger, generator.Options{
		UserCount:   *userCount,
		Seed:        *seed,
		Concurrency: *concurrency,
	})

	logger.Info("generation started",
		"users", *userCount,
		"window_days", generator.WindowDays,
		"concurrency", *concurrency,
	)

	start := time.Now()
	if err := gen.Run(ctx); err != nil {
		// No rollback: rows committed before the failure stay.
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("generation complete",
		"users", *userCount,
		"duration", time.Since(start).String(),
	)
}
