package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/levelup-fitness/internal/adapter"
	"github.com/MKhiriev/levelup-fitness/internal/mock"
	"github.com/MKhiriev/levelup-fitness/internal/store"
	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientWorkoutLogSvc(t *testing.T, ctrl *gomock.Controller) (*clientWorkoutLogService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientWorkoutLogService(mockAdapter).(*clientWorkoutLogService)
	return svc, mockAdapter
}

func TestClientWorkoutLogService_Update_PassesPatchThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientWorkoutLogSvc(t, ctrl)
	ctx := context.Background()

	exercise := "Incline push-ups"
	sets := 4
	patch := models.WorkoutLogPatch{Exercise: &exercise, Sets: &sets}

	mockAdapter.EXPECT().
		UpdateWorkoutLog(gomock.Any(), int64(11), patch).
		Return(models.WorkoutLogEntry{ID: 11, Exercise: exercise, Sets: sets}, nil)

	updated, err := svc.Update(ctx, 11, patch)

	require.NoError(t, err)
	assert.Equal(t, int64(11), updated.ID)
	assert.Equal(t, "Incline push-ups", updated.Exercise)
}

func TestClientWorkoutLogService_Update_NotFoundMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientWorkoutLogSvc(t, ctrl)

	done := true
	mockAdapter.EXPECT().
		UpdateWorkoutLog(gomock.Any(), int64(404), gomock.Any()).
		Return(models.WorkoutLogEntry{}, fmt.Errorf("%w: workout log entry not found", adapter.ErrNotFound))

	_, err := svc.Update(context.Background(), 404, models.WorkoutLogPatch{Done: &done})

	require.ErrorIs(t, err, store.ErrWorkoutLogNotFound)
}

func TestClientWorkoutLogService_SetDone_DelegatesToUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientWorkoutLogSvc(t, ctrl)

	mockAdapter.EXPECT().
		UpdateWorkoutLog(gomock.Any(), int64(11), gomock.Any()).
		DoAndReturn(func(_ context.Context, entryID int64, patch models.WorkoutLogPatch) (models.WorkoutLogEntry, error) {
			// the toggle must travel as a done-only patch
			require.NotNil(t, patch.Done)
			assert.True(t, *patch.Done)
			assert.Nil(t, patch.Exercise)
			assert.Nil(t, patch.Notes)
			return models.WorkoutLogEntry{ID: entryID, Done: true}, nil
		})

	err := svc.SetDone(context.Background(), 11, true)

	require.NoError(t, err)
}

func TestClientWorkoutLogService_SetDone_PropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientWorkoutLogSvc(t, ctrl)

	mockAdapter.EXPECT().
		UpdateWorkoutLog(gomock.Any(), int64(11), gomock.Any()).
		Return(models.WorkoutLogEntry{}, errors.New("connection refused"))

	err := svc.SetDone(context.Background(), 11, false)

	require.Error(t, err)
}

func TestClientWorkoutLogService_ClearAll_NotConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no adapter expectation: an unconfirmed wipe must never leave the client
	svc, _ := newTestClientWorkoutLogSvc(t, ctrl)

	err := svc.ClearAll(context.Background(), false)

	require.ErrorIs(t, err, ErrNotConfirmed)
}
