package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// ObjectGetter is the subset of the S3 client used to fetch catalog documents.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Source implements Source for catalog documents stored in AWS S3.
type s3Source struct {
	client ObjectGetter
	bucket string
	prefix string
	logger zerolog.Logger
}

// NewS3Source creates a source that reads s3://<bucket>/<prefix><table>.json
// using the default AWS credential chain.
func NewS3Source(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Source, error) {
	logger = logger.With().Str("component", "catalog-s3-source").Logger()

	// Load AWS configuration
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("prefix", prefix).
		Msg("S3 catalog source initialised")

	return NewS3SourceWithClient(s3.NewFromConfig(cfg), bucket, prefix, logger), nil
}

// NewS3SourceWithClient creates an S3 source over an existing client.
func NewS3SourceWithClient(client ObjectGetter, bucket, prefix string, logger zerolog.Logger) Source {
	return &s3Source{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Load fetches every table document from the bucket.
func (s *s3Source) Load(ctx context.Context) (*Tables, error) {
	s.logger.Info().
		Str("bucket", s.bucket).
		Str("prefix", s.prefix).
		Msg("loading catalog from S3")

	return loadTables(ctx, s.getObject, s.logger)
}

func (s *s3Source) getObject(ctx context.Context, table Table) ([]byte, error) {
	key := s.prefix + table.FileName()

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", s.bucket, key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object %s: %w", key, err)
	}

	s.logger.Debug().
		Str("key", key).
		Int("bytes", len(data)).
		Msg("catalog object read")

	return data, nil
}

// fallbackSource tries a primary source first, then falls back to a secondary one.
// The whole snapshot comes from a single source; tables are never mixed.
type fallbackSource struct {
	primary   Source
	secondary Source
	logger    zerolog.Logger
}

// NewFallbackSource creates a source that tries primary first, then secondary.
// If primary is nil, only secondary is used.
func NewFallbackSource(primary, secondary Source, logger zerolog.Logger) Source {
	return &fallbackSource{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With().Str("component", "catalog-fallback-source").Logger(),
	}
}

// Load attempts the primary source, then falls back to the secondary.
func (s *fallbackSource) Load(ctx context.Context) (*Tables, error) {
	if s.primary != nil {
		tables, err := s.primary.Load(ctx)
		if err == nil {
			return tables, nil
		}

		s.logger.Warn().
			Err(err).
			Msg("failed to load catalog from primary source, falling back")
	} else {
		s.logger.Debug().Msg("primary source not configured, using fallback")
	}

	return s.secondary.Load(ctx)
}
