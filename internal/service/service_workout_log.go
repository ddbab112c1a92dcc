package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/store"
	"github.com/MKhiriev/levelup-fitness/internal/validators"
	"github.com/MKhiriev/levelup-fitness/models"
)

// workoutLogService is the concrete implementation of WorkoutLogService.
type workoutLogService struct {
	workoutLogRepository store.WorkoutLogRepository

	validator validators.Validator
	logger    *logger.Logger
}

// NewWorkoutLogService constructs a WorkoutLogService backed by the given
// repository.
func NewWorkoutLogService(workoutLogRepository store.WorkoutLogRepository, validator validators.Validator, logger *logger.Logger) WorkoutLogService {
	return &workoutLogService{
		workoutLogRepository: workoutLogRepository,
		validator:            validator,
		logger:               logger,
	}
}

// AddWorkoutLog validates and inserts one checklist entry. New entries
// always start unchecked.
//
// Returns the stored entry or ErrInvalidDataProvided (wrapping the
// specific validation error) when a field is out of bounds.
func (w *workoutLogService) AddWorkoutLog(ctx context.Context, entry models.WorkoutLogEntry) (models.WorkoutLogEntry, error) {
	log := logger.FromContext(ctx)

	if err := w.validator.Validate(ctx, entry); err != nil {
		log.Error().Err(err).Int64("user_id", entry.UserID).Msg("workout log validation failed")
		return models.WorkoutLogEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	savedEntry, err := w.workoutLogRepository.AddWorkoutLog(ctx, entry)
	if err != nil {
		log.Err(err).Int64("user_id", entry.UserID).Str("log_date", entry.LogDate).Msg("workout log insert failed")
		return models.WorkoutLogEntry{}, fmt.Errorf("workout log insert failed: %w", err)
	}

	return savedEntry, nil
}

// ListWorkoutLogs returns the user's checklist entries, newest first. A
// non-empty date narrows the list to that day; an empty date returns the
// full history.
func (w *workoutLogService) ListWorkoutLogs(ctx context.Context, userID int64, date string) ([]models.WorkoutLogEntry, error) {
	log := logger.FromContext(ctx)

	if date != "" && !models.ValidDate(date) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidDate)
	}

	entries, err := w.workoutLogRepository.ListWorkoutLogs(ctx, userID, date)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("log_date", date).Msg("workout log listing failed")
		return nil, fmt.Errorf("workout log listing failed: %w", err)
	}

	return entries, nil
}

// UpdateWorkoutLog applies a partial update to one entry and returns the
// updated row. Covers both the done-flag toggle and full edits; only the
// fields the patch carries are validated and written. The update is scoped
// to the owner; a foreign or unknown entry surfaces as
// store.ErrWorkoutLogNotFound.
//
// Returns ErrInvalidDataProvided (wrapping the specific validation error)
// when the patch is empty or a carried field is out of bounds.
func (w *workoutLogService) UpdateWorkoutLog(ctx context.Context, userID int64, entryID int64, patch models.WorkoutLogPatch) (models.WorkoutLogEntry, error) {
	log := logger.FromContext(ctx)

	if err := w.validator.Validate(ctx, patch); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Int64("entry_id", entryID).Msg("workout log patch validation failed")
		return models.WorkoutLogEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	savedEntry, err := w.workoutLogRepository.UpdateWorkoutLog(ctx, userID, entryID, patch)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("entry_id", entryID).Msg("workout log update failed")
		return models.WorkoutLogEntry{}, fmt.Errorf("workout log update failed: %w", err)
	}

	return savedEntry, nil
}

// DeleteWorkoutLog removes one entry. Scoped to the owner the same way as
// UpdateWorkoutLog.
func (w *workoutLogService) DeleteWorkoutLog(ctx context.Context, userID int64, entryID int64) error {
	log := logger.FromContext(ctx)

	if err := w.workoutLogRepository.DeleteWorkoutLog(ctx, userID, entryID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("entry_id", entryID).Msg("workout log delete failed")
		return fmt.Errorf("workout log delete failed: %w", err)
	}

	return nil
}

// ClearAllWorkoutData deletes the user's whole workout history: every log
// entry and every saved workout plan, in one transaction. No-op unless
// confirmed is true.
func (w *workoutLogService) ClearAllWorkoutData(ctx context.Context, userID int64, confirmed bool) error {
	log := logger.FromContext(ctx)

	if !confirmed {
		log.Warn().Int64("user_id", userID).Msg("workout data wipe without confirmation")
		return ErrNotConfirmed
	}

	if err := w.workoutLogRepository.ClearAllWorkoutData(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("workout data wipe failed")
		return fmt.Errorf("workout data wipe failed: %w", err)
	}

	log.Info().Int64("user_id", userID).Msg("workout data cleared")
	return nil
}

// WorkoutSummary returns per-day counts of completed entries within the
// trailing window, oldest day first, for the consistency chart. Days the
// user logged nothing are absent from the result.
func (w *workoutLogService) WorkoutSummary(ctx context.Context, userID int64, days int) ([]models.DailyCompletion, error) {
	log := logger.FromContext(ctx)

	summary, err := w.workoutLogRepository.WorkoutSummary(ctx, userID, days)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int("days", days).Msg("workout summary failed")
		return nil, fmt.Errorf("workout summary failed: %w", err)
	}

	return summary, nil
}
