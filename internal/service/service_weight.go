package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/store"
	"github.com/MKhiriev/levelup-fitness/internal/validators"
	"github.com/MKhiriev/levelup-fitness/models"
)

// weightService is the concrete implementation of WeightService.
type weightService struct {
	weightRepository store.WeightRepository

	validator validators.Validator
	logger    *logger.Logger
}

// NewWeightService constructs a WeightService backed by the given
// repository.
func NewWeightService(weightRepository store.WeightRepository, validator validators.Validator, logger *logger.Logger) WeightService {
	return &weightService{
		weightRepository: weightRepository,
		validator:        validator,
		logger:           logger,
	}
}

// AddWeightEntry validates and records one weigh-in. The repository
// inserts the history row and moves the profile's current weight to the
// same value inside a single transaction, so the chart and the profile
// cannot drift apart.
//
// Returns the stored entry or ErrInvalidDataProvided (wrapping the
// specific validation error) when the date is malformed or the weight sits
// outside the profile bounds.
func (w *weightService) AddWeightEntry(ctx context.Context, entry models.WeightEntry) (models.WeightEntry, error) {
	log := logger.FromContext(ctx)

	if err := w.validator.Validate(ctx, entry); err != nil {
		log.Error().Err(err).Int64("user_id", entry.UserID).Msg("weight entry validation failed")
		return models.WeightEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	savedEntry, err := w.weightRepository.AddWeightEntry(ctx, entry)
	if err != nil {
		log.Err(err).Int64("user_id", entry.UserID).Str("log_date", entry.LogDate).Msg("weight entry insert failed")
		return models.WeightEntry{}, fmt.Errorf("weight entry insert failed: %w", err)
	}

	return savedEntry, nil
}

// ListWeightHistory returns the user's weigh-ins ascending by date, the
// order the progress chart draws them in.
func (w *weightService) ListWeightHistory(ctx context.Context, userID int64) ([]models.WeightEntry, error) {
	log := logger.FromContext(ctx)

	entries, err := w.weightRepository.ListWeightHistory(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("weight history listing failed")
		return nil, fmt.Errorf("weight history listing failed: %w", err)
	}

	return entries, nil
}
