// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/models"
)

// workoutLogRepository is the PostgreSQL-backed implementation of
// [WorkoutLogRepository]. It owns the "workout_logs" table and, for the
// clear-all operation, also wipes workout plans inside the same transaction.
type workoutLogRepository struct {
	*DB
	logger *logger.Logger
}

func NewWorkoutLogRepository(db *DB, logger *logger.Logger) WorkoutLogRepository {
	logger.Debug().Msg("creating workout log repository")
	return &workoutLogRepository{
		DB:     db,
		logger: logger,
	}
}

// AddWorkoutLog inserts a new log entry and returns it with server-assigned
// fields (ID, CreatedAt). New entries always start unchecked.
func (w *workoutLogRepository) AddWorkoutLog(ctx context.Context, entry models.WorkoutLogEntry) (models.WorkoutLogEntry, error) {
	log := logger.FromContext(ctx)

	row := w.DB.QueryRowContext(ctx, addWorkoutLog,
		entry.UserID,
		entry.LogDate,
		entry.Exercise,
		entry.Sets,
		entry.Reps,
		entry.WeightKg,
		entry.Notes,
	)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "workoutLogRepository.AddWorkoutLog").
			Int64("user_id", entry.UserID).
			Str("log_date", entry.LogDate).
			Msg("failed to execute workout log insert")
		return models.WorkoutLogEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var saved models.WorkoutLogEntry
	var logDate time.Time
	err := row.Scan(
		&saved.ID,
		&saved.UserID,
		&logDate,
		&saved.Exercise,
		&saved.Sets,
		&saved.Reps,
		&saved.WeightKg,
		&saved.Notes,
		&saved.Done,
		&saved.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "workoutLogRepository.AddWorkoutLog").
			Int64("user_id", entry.UserID).
			Msg("failed to scan inserted workout log row")
		return models.WorkoutLogEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	saved.LogDate = logDate.Format(models.DateLayout)

	return saved, nil
}

// ListWorkoutLogs returns the user's log entries, newest first. A
// non-empty date narrows the result to that single day.
func (w *workoutLogRepository) ListWorkoutLogs(ctx context.Context, userID int64, date string) ([]models.WorkoutLogEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListWorkoutLogsQuery(ctx, userID, date)
	if err != nil {
		log.Err(err).
			Str("func", "workoutLogRepository.ListWorkoutLogs").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := w.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "workoutLogRepository.ListWorkoutLogs").
			Int64("user_id", userID).
			Str("log_date", date).
			Msg("failed to execute query for listing workout logs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.WorkoutLogEntry, 0, 20)

	for rows.Next() {
		var entry models.WorkoutLogEntry
		var logDate time.Time

		scanErr := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&logDate,
			&entry.Exercise,
			&entry.Sets,
			&entry.Reps,
			&entry.WeightKg,
			&entry.Notes,
			&entry.Done,
			&entry.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "workoutLogRepository.ListWorkoutLogs").
				Int64("user_id", userID).
				Msg("failed to scan workout log row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entry.LogDate = logDate.Format(models.DateLayout)

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "workoutLogRepository.ListWorkoutLogs").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// UpdateWorkoutLog applies the non-nil patch fields to one entry and returns
// the updated row.
//
// Returns [ErrWorkoutLogNotFound] when no row matches entryID for this user,
// so a stale client cannot silently "succeed" against another user's row.
func (w *workoutLogRepository) UpdateWorkoutLog(ctx context.Context, userID int64, entryID int64, patch models.WorkoutLogPatch) (models.WorkoutLogEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateWorkoutLogQuery(ctx, userID, entryID, patch)
	if err != nil {
		log.Err(err).
			Str("func", "workoutLogRepository.UpdateWorkoutLog").
			Int64("user_id", userID).
			Int64("entry_id", entryID).
			Msg("failed to create query")
		return models.WorkoutLogEntry{}, err
	}

	row := w.DB.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "workoutLogRepository.UpdateWorkoutLog").
			Int64("user_id", userID).
			Int64("entry_id", entryID).
			Msg("failed to execute workout log update")
		return models.WorkoutLogEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var saved models.WorkoutLogEntry
	var logDate time.Time
	err = row.Scan(
		&saved.ID,
		&saved.UserID,
		&logDate,
		&saved.Exercise,
		&saved.Sets,
		&saved.Reps,
		&saved.WeightKg,
		&saved.Notes,
		&saved.Done,
		&saved.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().
			Str("func", "workoutLogRepository.UpdateWorkoutLog").
			Int64("user_id", userID).
			Int64("entry_id", entryID).
			Msg("workout log entry not found")
		return models.WorkoutLogEntry{}, ErrWorkoutLogNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "workoutLogRepository.UpdateWorkoutLog").
			Int64("user_id", userID).
			Msg("failed to scan updated workout log row")
		return models.WorkoutLogEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	saved.LogDate = logDate.Format(models.DateLayout)

	return saved, nil
}

// DeleteWorkoutLog removes one entry owned by userID.
//
// Returns [ErrWorkoutLogNotFound] when no row matches.
func (w *workoutLogRepository) DeleteWorkoutLog(ctx context.Context, userID int64, entryID int64) error {
	log := logger.FromContext(ctx)

	result, err := w.DB.ExecContext(ctx, deleteWorkoutLogEntry, entryID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "workoutLogRepository.DeleteWorkoutLog").
			Int64("user_id", userID).
			Int64("entry_id", entryID).
			Msg("failed to execute workout log delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "workoutLogRepository.DeleteWorkoutLog").
			Int64("user_id", userID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "workoutLogRepository.DeleteWorkoutLog").
			Int64("user_id", userID).
			Int64("entry_id", entryID).
			Msg("workout log entry not found")
		return ErrWorkoutLogNotFound
	}

	return nil
}

// ClearAllWorkoutData deletes the user's workout log entries and workout
// plans inside a single transaction, so the checklist and the generated
// plans disappear together or not at all.
//
// The transaction is rolled back automatically (via defer) if either delete
// fails; the commit is attempted only after both succeed.
func (w *workoutLogRepository) ClearAllWorkoutData(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "workoutLogRepository.ClearAllWorkoutData").
			Int64("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteWorkoutLogsByUser, userID); err != nil {
		log.Err(err).
			Str("func", "workoutLogRepository.ClearAllWorkoutData").
			Int64("user_id", userID).
			Msg("failed to delete workout logs in transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err := buildClearPlansQuery(ctx, userID, string(models.PlanWorkout))
	if err != nil {
		log.Err(err).
			Str("func", "workoutLogRepository.ClearAllWorkoutData").
			Int64("user_id", userID).
			Msg("failed to create plan wipe query")
		return err
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "workoutLogRepository.ClearAllWorkoutData").
			Int64("user_id", userID).
			Msg("failed to delete workout plans in transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "workoutLogRepository.ClearAllWorkoutData").
			Int64("user_id", userID).
			Bool("retryable", w.retryable(commitErr)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "workoutLogRepository.ClearAllWorkoutData").
		Int64("user_id", userID).
		Msg("cleared workout logs and workout plans")

	return nil
}

// WorkoutSummary returns per-date counts of completed entries within the
// trailing window of the given number of days (today inclusive).
//
// Dates with no completed entries produce no row; the chart layer fills the
// gaps with zeroes.
func (w *workoutLogRepository) WorkoutSummary(ctx context.Context, userID int64, days int) ([]models.DailyCompletion, error) {
	log := logger.FromContext(ctx)

	if days < 1 {
		days = 1
	}
	fromDate := time.Now().AddDate(0, 0, -(days - 1)).Format(models.DateLayout)

	query, args, err := buildWorkoutSummaryQuery(ctx, userID, fromDate)
	if err != nil {
		log.Err(err).
			Str("func", "workoutLogRepository.WorkoutSummary").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := w.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "workoutLogRepository.WorkoutSummary").
			Int64("user_id", userID).
			Int("days", days).
			Msg("failed to execute summary query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	summary := make([]models.DailyCompletion, 0, days)

	for rows.Next() {
		var day models.DailyCompletion
		var logDate time.Time

		scanErr := rows.Scan(&logDate, &day.Completed)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "workoutLogRepository.WorkoutSummary").
				Int64("user_id", userID).
				Msg("failed to scan summary row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		day.Date = logDate.Format(models.DateLayout)

		summary = append(summary, day)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "workoutLogRepository.WorkoutSummary").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return summary, nil
}
