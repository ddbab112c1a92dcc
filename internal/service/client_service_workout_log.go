package service

import (
	"context"

	"github.com/MKhiriev/levelup-fitness/internal/adapter"
	"github.com/MKhiriev/levelup-fitness/models"
)

type clientWorkoutLogService struct {
	adapter adapter.ServerAdapter
}

func NewClientWorkoutLogService(serverAdapter adapter.ServerAdapter) ClientWorkoutLogService {
	return &clientWorkoutLogService{adapter: serverAdapter}
}

func (w *clientWorkoutLogService) Add(ctx context.Context, entry models.WorkoutLogEntry) (models.WorkoutLogEntry, error) {
	added, err := w.adapter.AddWorkoutLog(ctx, entry)
	if err != nil {
		return models.WorkoutLogEntry{}, mapAdapterError(err)
	}

	return added, nil
}

func (w *clientWorkoutLogService) List(ctx context.Context, date string) ([]models.WorkoutLogEntry, error) {
	entries, err := w.adapter.ListWorkoutLogs(ctx, date)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return entries, nil
}

func (w *clientWorkoutLogService) Update(ctx context.Context, entryID int64, patch models.WorkoutLogPatch) (models.WorkoutLogEntry, error) {
	updated, err := w.adapter.UpdateWorkoutLog(ctx, entryID, patch)
	if err != nil {
		return models.WorkoutLogEntry{}, mapAdapterError(err)
	}

	return updated, nil
}

// SetDone is the checklist toggle: an Update carrying only the done flag.
func (w *clientWorkoutLogService) SetDone(ctx context.Context, entryID int64, done bool) error {
	_, err := w.Update(ctx, entryID, models.WorkoutLogPatch{Done: &done})
	return err
}

func (w *clientWorkoutLogService) Delete(ctx context.Context, entryID int64) error {
	if err := w.adapter.DeleteWorkoutLog(ctx, entryID); err != nil {
		return mapAdapterError(err)
	}

	return nil
}

func (w *clientWorkoutLogService) ClearAll(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	if err := w.adapter.ClearAllWorkoutData(ctx, confirmed); err != nil {
		return mapAdapterError(err)
	}

	return nil
}

func (w *clientWorkoutLogService) Summary(ctx context.Context, days int) ([]models.DailyCompletion, error) {
	summary, err := w.adapter.WorkoutSummary(ctx, days)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return summary, nil
}
