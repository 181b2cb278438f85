// Command seed-db copies the JSON catalog tables from a directory into
// PostgreSQL so the API can run with CATALOG_SOURCE=postgres.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bynara/MeliProductDetail/internal/catalog"
	"github.com/bynara/MeliProductDetail/internal/config"
	"github.com/bynara/MeliProductDetail/internal/database"
	"github.com/bynara/MeliProductDetail/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadSeeder()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dir := flag.String("dir", cfg.Catalog.DataDir, "directory holding the catalog JSON tables")
	timeout := flag.Duration("timeout", time.Minute, "overall seeding timeout")
	flag.Parse()

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	tables, err := catalog.NewFileSource(*dir, logger).Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to read catalog from %s: %w", *dir, err)
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	repo := repository.NewCatalogRepository(pool, logger)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := repo.ReplaceAll(ctx, tables); err != nil {
		return err
	}

	logger.Info().
		Str("dir", *dir).
		Int("products", len(tables.Products)).
		Int("categories", len(tables.Categories)).
		Int("sellers", len(tables.Sellers)).
		Int("payment_methods", len(tables.PaymentMethods)).
		Int("reviews", len(tables.Reviews)).
		Msg("catalog seeded")

	return nil
}
