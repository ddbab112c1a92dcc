package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/levelup-fitness/internal/config"
	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/internal/store"
	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock WorkoutLogService
// ─────────────────────────────────────────────

// mockWorkoutLogService implements service.WorkoutLogService for unit tests.
type mockWorkoutLogService struct {
	addWorkoutLogFn       func(ctx context.Context, entry models.WorkoutLogEntry) (models.WorkoutLogEntry, error)
	listWorkoutLogsFn     func(ctx context.Context, userID int64, date string) ([]models.WorkoutLogEntry, error)
	updateWorkoutLogFn    func(ctx context.Context, userID, entryID int64, patch models.WorkoutLogPatch) (models.WorkoutLogEntry, error)
	deleteWorkoutLogFn    func(ctx context.Context, userID, entryID int64) error
	clearAllWorkoutDataFn func(ctx context.Context, userID int64, confirmed bool) error
	workoutSummaryFn      func(ctx context.Context, userID int64, days int) ([]models.DailyCompletion, error)
}

func (m *mockWorkoutLogService) AddWorkoutLog(ctx context.Context, entry models.WorkoutLogEntry) (models.WorkoutLogEntry, error) {
	return m.addWorkoutLogFn(ctx, entry)
}

func (m *mockWorkoutLogService) ListWorkoutLogs(ctx context.Context, userID int64, date string) ([]models.WorkoutLogEntry, error) {
	return m.listWorkoutLogsFn(ctx, userID, date)
}

func (m *mockWorkoutLogService) UpdateWorkoutLog(ctx context.Context, userID, entryID int64, patch models.WorkoutLogPatch) (models.WorkoutLogEntry, error) {
	return m.updateWorkoutLogFn(ctx, userID, entryID, patch)
}

func (m *mockWorkoutLogService) DeleteWorkoutLog(ctx context.Context, userID, entryID int64) error {
	return m.deleteWorkoutLogFn(ctx, userID, entryID)
}

func (m *mockWorkoutLogService) ClearAllWorkoutData(ctx context.Context, userID int64, confirmed bool) error {
	return m.clearAllWorkoutDataFn(ctx, userID, confirmed)
}

func (m *mockWorkoutLogService) WorkoutSummary(ctx context.Context, userID int64, days int) ([]models.DailyCompletion, error) {
	return m.workoutSummaryFn(ctx, userID, days)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithLogs builds a Handler with the given WorkoutLogService mock.
func newHandlerWithLogs(t *testing.T, svc service.WorkoutLogService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{WorkoutLogService: svc}, config.Security{}, logger.Nop())
}

// withChiURLParam injects a chi route parameter into the request context,
// the way the router does when a pattern like /api/logs/{id} matches.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// sampleLogEntry is a convenience fixture used across multiple tests.
var sampleLogEntry = models.WorkoutLogEntry{
	UserID:   42,
	LogDate:  "2026-03-14",
	Exercise: "Bench press",
	Sets:     3,
	Reps:     10,
	WeightKg: 40,
}

// ─────────────────────────────────────────────
// addWorkoutLog
// ─────────────────────────────────────────────

// TestAddWorkoutLog_Success verifies that a valid entry is stored under the
// authenticated user and echoed back with its assigned ID.
func TestAddWorkoutLog_Success(t *testing.T) {
	svc := &mockWorkoutLogService{
		addWorkoutLogFn: func(_ context.Context, e models.WorkoutLogEntry) (models.WorkoutLogEntry, error) {
			assert.Equal(t, int64(42), e.UserID)
			assert.Equal(t, "Bench press", e.Exercise)
			e.ID = 5
			return e, nil
		},
	}

	h := newHandlerWithLogs(t, svc)
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/logs", strings.NewReader(jsonBody(t, sampleLogEntry))), 42)
	rec := httptest.NewRecorder()

	h.addWorkoutLog(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.WorkoutLogEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(5), got.ID)
}

// TestAddWorkoutLog_OwnerForcedFromToken verifies that a user_id smuggled in
// the request body is overridden by the authenticated user's ID.
func TestAddWorkoutLog_OwnerForcedFromToken(t *testing.T) {
	var receivedUserID int64
	svc := &mockWorkoutLogService{
		addWorkoutLogFn: func(_ context.Context, e models.WorkoutLogEntry) (models.WorkoutLogEntry, error) {
			receivedUserID = e.UserID
			return e, nil
		},
	}

	smuggled := sampleLogEntry
	smuggled.UserID = 999

	h := newHandlerWithLogs(t, svc)
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/logs", strings.NewReader(jsonBody(t, smuggled))), 42)
	rec := httptest.NewRecorder()

	h.addWorkoutLog(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), receivedUserID)
}

// TestAddWorkoutLog_InvalidJSON verifies that a malformed request body
// results in 400 Bad Request.
func TestAddWorkoutLog_InvalidJSON(t *testing.T) {
	h := newHandlerWithLogs(t, &mockWorkoutLogService{})

	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/logs", strings.NewReader("{oops")), 42)
	rec := httptest.NewRecorder()

	h.addWorkoutLog(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestAddWorkoutLog_InvalidData verifies that service.ErrInvalidDataProvided
// (empty exercise, bad date) maps to 400 Bad Request.
func TestAddWorkoutLog_InvalidData(t *testing.T) {
	svc := &mockWorkoutLogService{
		addWorkoutLogFn: func(_ context.Context, _ models.WorkoutLogEntry) (models.WorkoutLogEntry, error) {
			return models.WorkoutLogEntry{}, fmt.Errorf("%w: empty exercise", service.ErrInvalidDataProvided)
		},
	}

	h := newHandlerWithLogs(t, svc)
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/logs", strings.NewReader(jsonBody(t, sampleLogEntry))), 42)
	rec := httptest.NewRecorder()

	h.addWorkoutLog(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// listWorkoutLogs
// ─────────────────────────────────────────────

// TestListWorkoutLogs_Success verifies that the date filter reaches the
// service and matching entries come back as JSON.
func TestListWorkoutLogs_Success(t *testing.T) {
	want := []models.WorkoutLogEntry{sampleLogEntry}

	svc := &mockWorkoutLogService{
		listWorkoutLogsFn: func(_ context.Context, userID int64, date string) ([]models.WorkoutLogEntry, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "2026-03-14", date)
			return want, nil
		},
	}

	h := newHandlerWithLogs(t, svc)
	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/logs?date=2026-03-14", nil), 42)
	rec := httptest.NewRecorder()

	h.listWorkoutLogs(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.WorkoutLogEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

// TestListWorkoutLogs_NoDateParam verifies that an absent date reaches the
// service as an empty string (full history).
func TestListWorkoutLogs_NoDateParam(t *testing.T) {
	svc := &mockWorkoutLogService{
		listWorkoutLogsFn: func(_ context.Context, _ int64, date string) ([]models.WorkoutLogEntry, error) {
			assert.Empty(t, date)
			return nil, nil
		},
	}

	h := newHandlerWithLogs(t, svc)
	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/logs", nil), 42)
	rec := httptest.NewRecorder()

	h.listWorkoutLogs(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestListWorkoutLogs_InvalidDate verifies that a malformed date param maps
// to 400 Bad Request.
func TestListWorkoutLogs_InvalidDate(t *testing.T) {
	svc := &mockWorkoutLogService{
		listWorkoutLogsFn: func(_ context.Context, _ int64, _ string) ([]models.WorkoutLogEntry, error) {
			return nil, fmt.Errorf("%w: bad date", service.ErrInvalidDataProvided)
		},
	}

	h := newHandlerWithLogs(t, svc)
	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/logs?date=14.03.2026", nil), 42)
	rec := httptest.NewRecorder()

	h.listWorkoutLogs(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// updateWorkoutLog
// ─────────────────────────────────────────────

// TestUpdateWorkoutLog_DoneToggle verifies that a done-only patch reaches
// the service with the entry ID from the URL and the updated entry is echoed
// back as JSON.
func TestUpdateWorkoutLog_DoneToggle(t *testing.T) {
	svc := &mockWorkoutLogService{
		updateWorkoutLogFn: func(_ context.Context, userID, entryID int64, patch models.WorkoutLogPatch) (models.WorkoutLogEntry, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, int64(5), entryID)
			require.NotNil(t, patch.Done)
			assert.True(t, *patch.Done)
			assert.Nil(t, patch.Exercise, "absent fields must decode as nil")

			updated := sampleLogEntry
			updated.ID = entryID
			updated.Done = true
			return updated, nil
		},
	}

	done := true
	h := newHandlerWithLogs(t, svc)
	req := withUserID(httptest.NewRequest(http.MethodPatch, "/api/logs/5", strings.NewReader(jsonBody(t, models.WorkoutLogPatch{Done: &done}))), 42)
	req = withChiURLParam(req, "id", "5")
	rec := httptest.NewRecorder()

	h.updateWorkoutLog(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.WorkoutLogEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(5), got.ID)
	assert.True(t, got.Done)
}

// TestUpdateWorkoutLog_FullPatch verifies that every carried field reaches
// the service.
func TestUpdateWorkoutLog_FullPatch(t *testing.T) {
	svc := &mockWorkoutLogService{
		updateWorkoutLogFn: func(_ context.Context, _, _ int64, patch models.WorkoutLogPatch) (models.WorkoutLogEntry, error) {
			require.NotNil(t, patch.Exercise)
			assert.Equal(t, "Incline press", *patch.Exercise)
			require.NotNil(t, patch.Sets)
			assert.Equal(t, 4, *patch.Sets)
			require.NotNil(t, patch.Notes)
			assert.Equal(t, "slow tempo", *patch.Notes)
			assert.Nil(t, patch.Done)
			return sampleLogEntry, nil
		},
	}

	exercise := "Incline press"
	sets := 4
	notes := "slow tempo"
	h := newHandlerWithLogs(t, svc)
	body := jsonBody(t, models.WorkoutLogPatch{Exercise: &exercise, Sets: &sets, Notes: &notes})
	req := withUserID(httptest.NewRequest(http.MethodPatch, "/api/logs/5", strings.NewReader(body)), 42)
	req = withChiURLParam(req, "id", "5")
	rec := httptest.NewRecorder()

	h.updateWorkoutLog(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestUpdateWorkoutLog_InvalidPatch verifies that
// service.ErrInvalidDataProvided (empty patch, zero sets) maps to 400.
func TestUpdateWorkoutLog_InvalidPatch(t *testing.T) {
	svc := &mockWorkoutLogService{
		updateWorkoutLogFn: func(_ context.Context, _, _ int64, _ models.WorkoutLogPatch) (models.WorkoutLogEntry, error) {
			return models.WorkoutLogEntry{}, fmt.Errorf("%w: patch has no fields", service.ErrInvalidDataProvided)
		},
	}

	h := newHandlerWithLogs(t, svc)
	req := withUserID(httptest.NewRequest(http.MethodPatch, "/api/logs/5", strings.NewReader("{}")), 42)
	req = withChiURLParam(req, "id", "5")
	rec := httptest.NewRecorder()

	h.updateWorkoutLog(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestUpdateWorkoutLog_NotFound verifies that store.ErrWorkoutLogNotFound
// maps to 404 Not Found.
func TestUpdateWorkoutLog_NotFound(t *testing.T) {
	svc := &mockWorkoutLogService{
		updateWorkoutLogFn: func(_ context.Context, _, _ int64, _ models.WorkoutLogPatch) (models.WorkoutLogEntry, error) {
			return models.WorkoutLogEntry{}, store.ErrWorkoutLogNotFound
		},
	}

	done := true
	h := newHandlerWithLogs(t, svc)
	req := withUserID(httptest.NewRequest(http.MethodPatch, "/api/logs/404", strings.NewReader(jsonBody(t, models.WorkoutLogPatch{Done: &done}))), 42)
	req = withChiURLParam(req, "id", "404")
	rec := httptest.NewRecorder()

	h.updateWorkoutLog(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "workout log entry not found")
}

// TestUpdateWorkoutLog_BadID verifies that a non-numeric URL parameter maps
// to 400 Bad Request.
func TestUpdateWorkoutLog_BadID(t *testing.T) {
	h := newHandlerWithLogs(t, &mockWorkoutLogService{})

	done := true
	req := withUserID(httptest.NewRequest(http.MethodPatch, "/api/logs/abc", strings.NewReader(jsonBody(t, models.WorkoutLogPatch{Done: &done}))), 42)
	req = withChiURLParam(req, "id", "abc")
	rec := httptest.NewRecorder()

	h.updateWorkoutLog(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestUpdateWorkoutLog_InvalidJSON verifies that a malformed request body
// results in 400 Bad Request.
func TestUpdateWorkoutLog_InvalidJSON(t *testing.T) {
	h := newHandlerWithLogs(t, &mockWorkoutLogService{})

	req := withUserID(httptest.NewRequest(http.MethodPatch, "/api/logs/5", strings.NewReader("{oops")), 42)
	req = withChiURLParam(req, "id", "5")
	rec := httptest.NewRecorder()

	h.updateWorkoutLog(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// deleteWorkoutLog
// ─────────────────────────────────────────────

// TestDeleteWorkoutLog_Success verifies that a delete reaches the service
// with the entry ID from the URL.
func TestDeleteWorkoutLog_Success(t *testing.T) {
	svc := &mockWorkoutLogService{
		deleteWorkoutLogFn: func(_ context.Context, userID, entryID int64) error {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, int64(5), entryID)
			return nil
		},
	}

	h := newHandlerWithLogs(t, svc)
	req := withUserID(httptest.NewRequest(http.MethodDelete, "/api/logs/5", nil), 42)
	req = withChiURLParam(req, "id", "5")
	rec := httptest.NewRecorder()

	h.deleteWorkoutLog(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestDeleteWorkoutLog_NotFound verifies that store.ErrWorkoutLogNotFound
// maps to 404 Not Found.
func TestDeleteWorkoutLog_NotFound(t *testing.T) {
	svc := &mockWorkoutLogService{
		deleteWorkoutLogFn: func(_ context.Context, _, _ int64) error {
			return store.ErrWorkoutLogNotFound
		},
	}

	h := newHandlerWithLogs(t, svc)
	req := withUserID(httptest.NewRequest(http.MethodDelete, "/api/logs/404", nil), 42)
	req = withChiURLParam(req, "id", "404")
	rec := httptest.NewRecorder()

	h.deleteWorkoutLog(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestDeleteWorkoutLog_BadID verifies that a non-numeric URL parameter maps
// to 400 Bad Request.
func TestDeleteWorkoutLog_BadID(t *testing.T) {
	h := newHandlerWithLogs(t, &mockWorkoutLogService{})

	req := withUserID(httptest.NewRequest(http.MethodDelete, "/api/logs/abc", nil), 42)
	req = withChiURLParam(req, "id", "abc")
	rec := httptest.NewRecorder()

	h.deleteWorkoutLog(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// clearAllWorkoutData
// ─────────────────────────────────────────────

// TestClearAllWorkoutData_Success verifies that a confirmed reset reaches
// the service and responds 200.
func TestClearAllWorkoutData_Success(t *testing.T) {
	svc := &mockWorkoutLogService{
		clearAllWorkoutDataFn: func(_ context.Context, userID int64, confirmed bool) error {
			assert.Equal(t, int64(42), userID)
			assert.True(t, confirmed)
			return nil
		},
	}

	h := newHandlerWithLogs(t, svc)
	req := withUserID(httptest.NewRequest(http.MethodDelete, "/api/logs?confirmed=true", nil), 42)
	rec := httptest.NewRecorder()

	h.clearAllWorkoutData(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestClearAllWorkoutData_NotConfirmed verifies that service.ErrNotConfirmed
// maps to 400 Bad Request.
func TestClearAllWorkoutData_NotConfirmed(t *testing.T) {
	svc := &mockWorkoutLogService{
		clearAllWorkoutDataFn: func(_ context.Context, _ int64, confirmed bool) error {
			assert.False(t, confirmed)
			return service.ErrNotConfirmed
		},
	}

	h := newHandlerWithLogs(t, svc)
	req := withUserID(httptest.NewRequest(http.MethodDelete, "/api/logs", nil), 42)
	rec := httptest.NewRecorder()

	h.clearAllWorkoutData(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "operation was not confirmed")
}

// ─────────────────────────────────────────────
// workoutSummary
// ─────────────────────────────────────────────

// TestWorkoutSummary_Success verifies that the days window reaches the
// service and the per-day counts come back as JSON.
func TestWorkoutSummary_Success(t *testing.T) {
	want := []models.DailyCompletion{
		{Date: "2026-03-13", Completed: 2},
		{Date: "2026-03-14", Completed: 3},
	}

	svc := &mockWorkoutLogService{
		workoutSummaryFn: func(_ context.Context, userID int64, days int) ([]models.DailyCompletion, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, 7, days)
			return want, nil
		},
	}

	h := newHandlerWithLogs(t, svc)
	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/logs/summary?days=7", nil), 42)
	rec := httptest.NewRecorder()

	h.workoutSummary(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.DailyCompletion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

// TestWorkoutSummary_NoDaysParam verifies that an absent days param reaches
// the service as zero so its default window kicks in.
func TestWorkoutSummary_NoDaysParam(t *testing.T) {
	svc := &mockWorkoutLogService{
		workoutSummaryFn: func(_ context.Context, _ int64, days int) ([]models.DailyCompletion, error) {
			assert.Zero(t, days)
			return nil, nil
		},
	}

	h := newHandlerWithLogs(t, svc)
	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/logs/summary", nil), 42)
	rec := httptest.NewRecorder()

	h.workoutSummary(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestWorkoutSummary_BadDays verifies that a non-numeric days param maps to
// 400 Bad Request.
func TestWorkoutSummary_BadDays(t *testing.T) {
	h := newHandlerWithLogs(t, &mockWorkoutLogService{})

	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/logs/summary?days=week", nil), 42)
	rec := httptest.NewRecorder()

	h.workoutSummary(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestWorkoutSummary_UnexpectedError verifies that a storage failure maps
// to 500.
func TestWorkoutSummary_UnexpectedError(t *testing.T) {
	svc := &mockWorkoutLogService{
		workoutSummaryFn: func(_ context.Context, _ int64, _ int) ([]models.DailyCompletion, error) {
			return nil, errors.New("db connection lost")
		},
	}

	h := newHandlerWithLogs(t, svc)
	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/logs/summary?days=7", nil), 42)
	rec := httptest.NewRecorder()

	h.workoutSummary(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
