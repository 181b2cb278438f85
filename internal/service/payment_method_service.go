package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bynara/MeliProductDetail/internal/catalog"
	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/rs/zerolog"
)

type paymentMethodService struct {
	catalog catalog.Reader
	logger  zerolog.Logger
}

// NewPaymentMethodService creates a new payment method service.
func NewPaymentMethodService(reader catalog.Reader, logger zerolog.Logger) PaymentMethodService {
	return &paymentMethodService{
		catalog: reader,
		logger:  logger.With().Str("service", "payment-method").Logger(),
	}
}

func (s *paymentMethodService) List(ctx context.Context) ([]model.PaymentMethod, error) {
	methods, err := s.catalog.PaymentMethods()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list payment methods")
		return nil, fmt.Errorf("failed to get payment methods: %w", err)
	}

	s.logger.Info().Int("count", len(methods)).Msg("retrieved payment methods")
	return methods, nil
}

func (s *paymentMethodService) GetByID(ctx context.Context, id int) (*model.PaymentMethod, error) {
	method, err := s.catalog.PaymentMethod(id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Warn().Int("payment_method_id", id).Msg("payment method not found")
		} else {
			s.logger.Error().Err(err).Int("payment_method_id", id).Msg("failed to get payment method")
		}
		return nil, err
	}
	return &method, nil
}
