// Command cleanup enforces the image library retention period. Run it from
// cron; it exits 1 on any failure.
//
//	cleanup [-days N] [-dry-run]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/fastslide-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fastslide-backend/internal/adapter/postgres/imagelibrary"
	"github.com/heartmarshall/fastslide-backend/internal/app"
	"github.com/heartmarshall/fastslide-backend/internal/config"
)

func main() {
	days := flag.Int("days", 0, "retention in days (default RETENTION_IMAGE_LIBRARY_DAYS)")
	dryRun := flag.Bool("dry-run", false, "count expired entries without deleting them")
	flag.Parse()

	if err := run(*days, *dryRun); err != nil {
		fmt.Fprintln(os.Stderr, "cleanup:", err)
		os.Exit(1)
	}
}

func run(days int, dryRun bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := app.NewLogger(cfg.Log)

	if days <= 0 {
		days = cfg.Retention.ImageLibraryDays
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := imagelibrary.New(pool)

	if dryRun {
		n, err := repo.CountOlderThan(ctx, cutoff)
		if err != nil {
			return err
		}
		logger.Info("image retention dry run", slog.Int64("expired", n), slog.Time("cutoff", cutoff))
		return nil
	}

	deleted, err := repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}
	logger.Info("image retention cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Int("days", days),
		slog.Time("cutoff", cutoff),
	)
	return nil
}
