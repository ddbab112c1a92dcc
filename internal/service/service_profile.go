package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/store"
	"github.com/MKhiriev/levelup-fitness/internal/validators"
	"github.com/MKhiriev/levelup-fitness/models"
)

// profileService is the concrete implementation of ProfileService.
type profileService struct {
	profileRepository store.ProfileRepository

	validator validators.Validator
	logger    *logger.Logger
}

// NewProfileService constructs a ProfileService backed by the given
// repository. Profiles are validated against the form bounds before every
// save.
func NewProfileService(profileRepository store.ProfileRepository, validator validators.Validator, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		validator:         validator,
		logger:            logger,
	}
}

// GetProfile returns the user's saved profile. A user who has never saved
// one gets the defaults (age 16, no stated gender, 170 cm, 60 kg, target
// equal to current weight) instead of an error, so the profile form always
// has something to show.
func (p *profileService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := p.profileRepository.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			log.Debug().Int64("user_id", userID).Msg("no saved profile, serving defaults")
			return models.DefaultProfile(userID), nil
		}
		log.Err(err).Int64("user_id", userID).Msg("profile lookup failed")
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return profile, nil
}

// SaveProfile validates and upserts the profile. Two saves for the same
// user leave exactly one row.
//
// Returns the canonical stored profile or ErrInvalidDataProvided (wrapping
// the specific validation error) when a field is out of bounds.
func (p *profileService) SaveProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, profile); err != nil {
		log.Error().Err(err).Int64("user_id", profile.UserID).Msg("profile validation failed")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	savedProfile, err := p.profileRepository.SaveProfile(ctx, profile)
	if err != nil {
		log.Err(err).Int64("user_id", profile.UserID).Msg("profile save failed")
		return models.Profile{}, fmt.Errorf("profile save failed: %w", err)
	}

	return savedProfile, nil
}
