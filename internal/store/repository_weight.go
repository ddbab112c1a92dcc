package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/models"
)

// weightRepository is the PostgreSQL-backed implementation of
// [WeightRepository]. Recording a weigh-in touches two tables: the history
// row in "weight_log" and the current value in "profiles". Both writes run
// in one transaction so the chart and the profile can never disagree.
type weightRepository struct {
	*DB
	logger *logger.Logger
}

func NewWeightRepository(db *DB, logger *logger.Logger) WeightRepository {
	logger.Debug().Msg("creating weight repository")
	return &weightRepository{
		DB:     db,
		logger: logger,
	}
}

// AddWeightEntry inserts the weigh-in into "weight_log" and updates
// profiles.weight_kg to the same value inside a single transaction.
//
// The returned entry carries the server-assigned fields (ID, CreatedAt).
// If the profile row does not exist yet the history row still commits; the
// profile update simply affects zero rows and the next profile save
// establishes the row.
func (w *weightRepository) AddWeightEntry(ctx context.Context, entry models.WeightEntry) (models.WeightEntry, error) {
	log := logger.FromContext(ctx)

	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "weightRepository.AddWeightEntry").
			Int64("user_id", entry.UserID).
			Msg("failed to begin transaction")
		return models.WeightEntry{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var saved models.WeightEntry
	var logDate time.Time

	row := tx.QueryRowContext(ctx, addWeightEntry, entry.UserID, entry.LogDate, entry.WeightKg)
	if err = row.Scan(&saved.ID, &saved.UserID, &logDate, &saved.WeightKg, &saved.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "weightRepository.AddWeightEntry").
			Int64("user_id", entry.UserID).
			Str("log_date", entry.LogDate).
			Msg("failed to insert weight log row in transaction")
		return models.WeightEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	saved.LogDate = logDate.Format(models.DateLayout)

	if _, err = tx.ExecContext(ctx, updateProfileWeight, entry.WeightKg, entry.UserID); err != nil {
		log.Err(err).
			Str("func", "weightRepository.AddWeightEntry").
			Int64("user_id", entry.UserID).
			Msg("failed to update profile weight in transaction")
		return models.WeightEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "weightRepository.AddWeightEntry").
			Int64("user_id", entry.UserID).
			Bool("retryable", w.retryable(commitErr)).
			Msg("failed to commit transaction")
		return models.WeightEntry{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return saved, nil
}

// ListWeightHistory returns the user's weigh-ins ascending by date, the
// order the progress chart consumes.
func (w *weightRepository) ListWeightHistory(ctx context.Context, userID int64) ([]models.WeightEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := w.DB.QueryContext(ctx, listWeightHistory, userID)
	if err != nil {
		log.Err(err).
			Str("func", "weightRepository.ListWeightHistory").
			Int64("user_id", userID).
			Msg("failed to execute query for listing weight history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.WeightEntry, 0, 50)

	for rows.Next() {
		var entry models.WeightEntry
		var logDate time.Time

		scanErr := rows.Scan(&entry.ID, &entry.UserID, &logDate, &entry.WeightKg, &entry.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "weightRepository.ListWeightHistory").
				Int64("user_id", userID).
				Msg("failed to scan weight log row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entry.LogDate = logDate.Format(models.DateLayout)

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "weightRepository.ListWeightHistory").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}
