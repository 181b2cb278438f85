package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// fetchFunc returns the raw JSON document backing a table.
type fetchFunc func(ctx context.Context, table Table) ([]byte, error)

// loadTables fetches every table concurrently, then decodes them together.
// The first failed fetch cancels the rest.
func loadTables(ctx context.Context, fetch fetchFunc, logger zerolog.Logger) (*Tables, error) {
	docs := make([][]byte, len(AllTables))

	g, gctx := errgroup.WithContext(ctx)
	for i, table := range AllTables {
		g.Go(func() error {
			data, err := fetch(gctx, table)
			if err != nil {
				logger.Error().
					Err(err).
					Str("table", string(table)).
					Msg("failed to fetch catalog table")
				return fmt.Errorf("failed to fetch table %s: %w", table, err)
			}
			docs[i] = data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	raw := make(map[Table][]byte, len(AllTables))
	for i, table := range AllTables {
		raw[table] = docs[i]
	}

	tables, err := DecodeTables(raw)
	if err != nil {
		logger.Error().Err(err).Msg("catalog validation failed")
		return nil, err
	}

	return tables, nil
}
