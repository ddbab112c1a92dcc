package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/validators"
	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.PlanRepository
// ─────────────────────────────────────────────

type mockPlanRepository struct {
	appendPlanFn      func(ctx context.Context, plan models.Plan) (models.Plan, error)
	listRecentPlansFn func(ctx context.Context, userID int64, kind models.PlanKind, limit uint64) ([]models.Plan, error)
	clearPlansFn      func(ctx context.Context, userID int64, kind models.PlanKind) (int64, error)
}

func (m *mockPlanRepository) AppendPlan(ctx context.Context, plan models.Plan) (models.Plan, error) {
	if m.appendPlanFn != nil {
		return m.appendPlanFn(ctx, plan)
	}
	return plan, nil
}

func (m *mockPlanRepository) ListRecentPlans(ctx context.Context, userID int64, kind models.PlanKind, limit uint64) ([]models.Plan, error) {
	if m.listRecentPlansFn != nil {
		return m.listRecentPlansFn(ctx, userID, kind, limit)
	}
	return nil, nil
}

func (m *mockPlanRepository) ClearPlans(ctx context.Context, userID int64, kind models.PlanKind) (int64, error) {
	if m.clearPlansFn != nil {
		return m.clearPlansFn(ctx, userID, kind)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestPlanService(repo *mockPlanRepository) *planService {
	return &planService{
		planRepository: repo,
		validator:      validators.NewFitnessValidator(),
		logger:         logger.Nop(),
	}
}

// ─────────────────────────────────────────────
// AppendPlan
// ─────────────────────────────────────────────

func TestPlanService_AppendPlan_Success(t *testing.T) {
	input := models.Plan{UserID: 7, Kind: models.PlanWorkout, Content: "## Day 1"}
	repo := &mockPlanRepository{
		appendPlanFn: func(_ context.Context, plan models.Plan) (models.Plan, error) {
			assert.Equal(t, input, plan)
			plan.ID = 1
			return plan, nil
		},
	}
	svc := newTestPlanService(repo)

	saved, err := svc.AppendPlan(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
}

func TestPlanService_AppendPlan_UnknownKind(t *testing.T) {
	called := false
	repo := &mockPlanRepository{
		appendPlanFn: func(_ context.Context, plan models.Plan) (models.Plan, error) {
			called = true
			return plan, nil
		},
	}
	svc := newTestPlanService(repo)

	_, err := svc.AppendPlan(context.Background(), models.Plan{UserID: 7, Kind: "stretching", Content: "x"})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidPlanKind)
	assert.False(t, called)
}

func TestPlanService_AppendPlan_EmptyContent(t *testing.T) {
	svc := newTestPlanService(&mockPlanRepository{})

	_, err := svc.AppendPlan(context.Background(), models.Plan{UserID: 7, Kind: models.PlanMeal, Content: ""})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyPlanContent)
}

func TestPlanService_AppendPlan_StorageError(t *testing.T) {
	repo := &mockPlanRepository{
		appendPlanFn: func(_ context.Context, _ models.Plan) (models.Plan, error) {
			return models.Plan{}, errRepo
		},
	}
	svc := newTestPlanService(repo)

	_, err := svc.AppendPlan(context.Background(), models.Plan{UserID: 7, Kind: models.PlanWorkout, Content: "x"})

	require.ErrorIs(t, err, errRepo)
}

// ─────────────────────────────────────────────
// ListRecentPlans
// ─────────────────────────────────────────────

func TestPlanService_ListRecentPlans_ZeroLimit_UsesDefault(t *testing.T) {
	repo := &mockPlanRepository{
		listRecentPlansFn: func(_ context.Context, userID int64, kind models.PlanKind, limit uint64) ([]models.Plan, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, models.PlanWorkout, kind)
			assert.Equal(t, uint64(5), limit)
			return []models.Plan{{ID: 2}, {ID: 1}}, nil
		},
	}
	svc := newTestPlanService(repo)

	plans, err := svc.ListRecentPlans(context.Background(), 7, models.PlanWorkout, 0)

	require.NoError(t, err)
	assert.Len(t, plans, 2)
}

func TestPlanService_ListRecentPlans_ExplicitLimit(t *testing.T) {
	repo := &mockPlanRepository{
		listRecentPlansFn: func(_ context.Context, _ int64, _ models.PlanKind, limit uint64) ([]models.Plan, error) {
			assert.Equal(t, uint64(12), limit)
			return nil, nil
		},
	}
	svc := newTestPlanService(repo)

	_, err := svc.ListRecentPlans(context.Background(), 7, models.PlanMeal, 12)

	require.NoError(t, err)
}

func TestPlanService_ListRecentPlans_UnknownKind(t *testing.T) {
	svc := newTestPlanService(&mockPlanRepository{})

	_, err := svc.ListRecentPlans(context.Background(), 7, "stretching", 5)

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPlanService_ListRecentPlans_StorageError(t *testing.T) {
	repo := &mockPlanRepository{
		listRecentPlansFn: func(_ context.Context, _ int64, _ models.PlanKind, _ uint64) ([]models.Plan, error) {
			return nil, errRepo
		},
	}
	svc := newTestPlanService(repo)

	_, err := svc.ListRecentPlans(context.Background(), 7, models.PlanWorkout, 5)

	require.ErrorIs(t, err, errRepo)
}

// ─────────────────────────────────────────────
// ClearPlans
// ─────────────────────────────────────────────

func TestPlanService_ClearPlans_Success(t *testing.T) {
	repo := &mockPlanRepository{
		clearPlansFn: func(_ context.Context, userID int64, kind models.PlanKind) (int64, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, models.PlanMeal, kind)
			return 3, nil
		},
	}
	svc := newTestPlanService(repo)

	deleted, err := svc.ClearPlans(context.Background(), 7, models.PlanMeal, true)

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestPlanService_ClearPlans_NotConfirmed(t *testing.T) {
	called := false
	repo := &mockPlanRepository{
		clearPlansFn: func(_ context.Context, _ int64, _ models.PlanKind) (int64, error) {
			called = true
			return 0, nil
		},
	}
	svc := newTestPlanService(repo)

	deleted, err := svc.ClearPlans(context.Background(), 7, models.PlanMeal, false)

	require.ErrorIs(t, err, ErrNotConfirmed)
	assert.Zero(t, deleted)
	assert.False(t, called, "an unconfirmed wipe must never reach storage")
}

func TestPlanService_ClearPlans_UnknownKind(t *testing.T) {
	svc := newTestPlanService(&mockPlanRepository{})

	_, err := svc.ClearPlans(context.Background(), 7, "stretching", true)

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPlanService_ClearPlans_StorageError(t *testing.T) {
	repo := &mockPlanRepository{
		clearPlansFn: func(_ context.Context, _ int64, _ models.PlanKind) (int64, error) {
			return 0, errRepo
		},
	}
	svc := newTestPlanService(repo)

	_, err := svc.ClearPlans(context.Background(), 7, models.PlanWorkout, true)

	require.ErrorIs(t, err, errRepo)
}
