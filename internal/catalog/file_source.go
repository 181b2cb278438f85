package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// fileSource implements Source over a local directory holding one JSON
// document per table.
type fileSource struct {
	dir    string
	logger zerolog.Logger
}

// NewFileSource creates a source that reads <dir>/<table>.json.
func NewFileSource(dir string, logger zerolog.Logger) Source {
	return &fileSource{
		dir:    dir,
		logger: logger.With().Str("component", "catalog-file-source").Logger(),
	}
}

// Load reads and validates every table file in the directory.
func (s *fileSource) Load(ctx context.Context) (*Tables, error) {
	s.logger.Info().Str("dir", s.dir).Msg("loading catalog from local directory")

	tables, err := loadTables(ctx, s.readFile, s.logger)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("dir", s.dir).Msg("catalog loaded from local directory")
	return tables, nil
}

func (s *fileSource) readFile(ctx context.Context, table Table) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, table.FileName())
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("error opening file: %s: %w", path, err)
	}

	s.logger.Debug().
		Str("file", path).
		Int("bytes", len(data)).
		Msg("catalog file read")

	return data, nil
}
