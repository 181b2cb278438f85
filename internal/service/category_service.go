package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bynara/MeliProductDetail/internal/catalog"
	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/rs/zerolog"
)

type categoryService struct {
	catalog catalog.Reader
	logger  zerolog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(reader catalog.Reader, logger zerolog.Logger) CategoryService {
	return &categoryService{
		catalog: reader,
		logger:  logger.With().Str("service", "category").Logger(),
	}
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.catalog.Categories()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	s.logger.Info().Int("count", len(categories)).Msg("retrieved categories")
	return categories, nil
}

func (s *categoryService) GetByID(ctx context.Context, id int) (*model.Category, error) {
	category, err := s.catalog.Category(id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Warn().Int("category_id", id).Msg("category not found")
		} else {
			s.logger.Error().Err(err).Int("category_id", id).Msg("failed to get category")
		}
		return nil, err
	}
	return &category, nil
}
