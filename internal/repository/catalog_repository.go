package repository

import (
	"context"
	"fmt"

	"github.com/bynara/MeliProductDetail/internal/catalog"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	createSchemaSQL = `
		CREATE TABLE IF NOT EXISTS catalog_records (
			table_name TEXT NOT NULL,
			position   INTEGER NOT NULL,
			id         INTEGER NOT NULL,
			data       JSONB NOT NULL,
			PRIMARY KEY (table_name, id)
		);
		CREATE INDEX IF NOT EXISTS idx_catalog_records_position ON catalog_records(table_name, position);
	`

	loadTableSQL = `
		SELECT COALESCE(jsonb_agg(data ORDER BY position), '[]'::jsonb)
		FROM catalog_records
		WHERE table_name = $1
	`

	deleteTableSQL = `DELETE FROM catalog_records WHERE table_name = $1`
)

// catalogRepository implements CatalogRepository using PostgreSQL.
type catalogRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCatalogRepository creates a new PostgreSQL-backed catalog repository.
func NewCatalogRepository(pool *pgxpool.Pool, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "catalog").Logger(),
	}
}

// EnsureSchema creates the catalog_records table if it does not exist.
func (r *catalogRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createSchemaSQL); err != nil {
		r.logger.Error().Err(err).Msg("failed to create catalog schema")
		return fmt.Errorf("failed to create catalog schema: %w", err)
	}
	return nil
}

// Load reads every table as a JSON array and decodes it through the same
// validation path as the file and S3 sources.
func (r *catalogRepository) Load(ctx context.Context) (*catalog.Tables, error) {
	raw := make(map[catalog.Table][]byte, len(catalog.AllTables))

	for _, table := range catalog.AllTables {
		var doc []byte
		if err := r.pool.QueryRow(ctx, loadTableSQL, string(table)).Scan(&doc); err != nil {
			r.logger.Error().Err(err).Str("table", string(table)).Msg("failed to query catalog table")
			return nil, fmt.Errorf("failed to query table %s: %w", table, err)
		}

		r.logger.Debug().
			Str("table", string(table)).
			Int("bytes", len(doc)).
			Msg("catalog table read")

		raw[table] = doc
	}

	tables, err := catalog.DecodeTables(raw)
	if err != nil {
		r.logger.Error().Err(err).Msg("catalog validation failed")
		return nil, err
	}

	return tables, nil
}

// ReplaceAll overwrites every stored table with the given rows.
func (r *catalogRepository) ReplaceAll(ctx context.Context, tables *catalog.Tables) error {
	rowsByTable := map[catalog.Table][][]any{}

	var err error
	if rowsByTable[catalog.TableProducts], err = encodeRows(catalog.TableProducts, tables.Products); err != nil {
		return err
	}
	if rowsByTable[catalog.TableCategories], err = encodeRows(catalog.TableCategories, tables.Categories); err != nil {
		return err
	}
	if rowsByTable[catalog.TableSellers], err = encodeRows(catalog.TableSellers, tables.Sellers); err != nil {
		return err
	}
	if rowsByTable[catalog.TablePaymentMethods], err = encodeRows(catalog.TablePaymentMethods, tables.PaymentMethods); err != nil {
		return err
	}
	if rowsByTable[catalog.TableReviews], err = encodeRows(catalog.TableReviews, tables.Reviews); err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, table := range catalog.AllTables {
		if _, err := tx.Exec(ctx, deleteTableSQL, string(table)); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}

		rows := rowsByTable[table]
		copied, err := tx.CopyFrom(ctx,
			pgx.Identifier{"catalog_records"},
			[]string{"table_name", "position", "id", "data"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			r.logger.Error().Err(err).Str("table", string(table)).Msg("failed to copy catalog rows")
			return fmt.Errorf("failed to copy rows into %s: %w", table, err)
		}

		r.logger.Info().
			Str("table", string(table)).
			Int64("rows", copied).
			Msg("catalog table stored")
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func encodeRows[T catalog.Record](table catalog.Table, items []T) ([][]any, error) {
	rows := make([][]any, 0, len(items))
	for i, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s row %d: %w", table, i, err)
		}
		rows = append(rows, []any{string(table), i, item.RecordID(), data})
	}
	return rows, nil
}
