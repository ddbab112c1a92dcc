package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. One row per user in the "profiles" table; saving is an
// upsert keyed by user_id.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// GetProfile returns the stored profile for userID.
//
// Returns [ErrProfileNotFound] when the user has never saved a profile; the
// service layer substitutes defaults in that case.
func (r *profileRepository) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var profile models.Profile
	row := r.db.QueryRowContext(ctx, getProfile, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.GetProfile").Int64("user_id", userID).Msg("failed to execute profile query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	err := row.Scan(
		&profile.UserID,
		&profile.Name,
		&profile.Age,
		&profile.Gender,
		&profile.HeightCm,
		&profile.WeightKg,
		&profile.TargetWeightKg,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "*profileRepository.GetProfile").Int64("user_id", userID).Msg("failed to scan profile row")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

// SaveProfile upserts the profile row for profile.UserID and returns the
// canonical database representation. Two saves for the same user leave
// exactly one row.
func (r *profileRepository) SaveProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, saveProfile,
		profile.UserID,
		profile.Name,
		profile.Age,
		profile.Gender,
		profile.HeightCm,
		profile.WeightKg,
		profile.TargetWeightKg,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.SaveProfile").Int64("user_id", profile.UserID).Msg("failed to execute profile upsert")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var saved models.Profile
	err := row.Scan(
		&saved.UserID,
		&saved.Name,
		&saved.Age,
		&saved.Gender,
		&saved.HeightCm,
		&saved.WeightKg,
		&saved.TargetWeightKg,
		&saved.UpdatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.SaveProfile").Int64("user_id", profile.UserID).Msg("failed to scan upserted profile row")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}
