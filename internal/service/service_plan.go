package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/store"
	"github.com/MKhiriev/levelup-fitness/internal/validators"
	"github.com/MKhiriev/levelup-fitness/models"
)

// defaultRecentPlansLimit is the history depth served when the caller does
// not ask for a specific one.
const defaultRecentPlansLimit = 5

// planService is the concrete implementation of PlanService.
type planService struct {
	planRepository store.PlanRepository

	validator validators.Validator
	logger    *logger.Logger
}

// NewPlanService constructs a PlanService backed by the given repository.
func NewPlanService(planRepository store.PlanRepository, validator validators.Validator, logger *logger.Logger) PlanService {
	return &planService{
		planRepository: planRepository,
		validator:      validator,
		logger:         logger,
	}
}

// AppendPlan stores one generated plan. Plans are append-only; saving never
// overwrites earlier generations.
//
// Returns the stored plan or ErrInvalidDataProvided (wrapping the specific
// validation error) when the kind is unknown or the content is empty.
func (p *planService) AppendPlan(ctx context.Context, plan models.Plan) (models.Plan, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, plan); err != nil {
		log.Error().Err(err).Int64("user_id", plan.UserID).Str("kind", string(plan.Kind)).Msg("plan validation failed")
		return models.Plan{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	savedPlan, err := p.planRepository.AppendPlan(ctx, plan)
	if err != nil {
		log.Err(err).Int64("user_id", plan.UserID).Str("kind", string(plan.Kind)).Msg("plan append failed")
		return models.Plan{}, fmt.Errorf("plan append failed: %w", err)
	}

	return savedPlan, nil
}

// ListRecentPlans returns the newest plans of one kind, newest first. A
// zero limit falls back to defaultRecentPlansLimit.
func (p *planService) ListRecentPlans(ctx context.Context, userID int64, kind models.PlanKind, limit uint64) ([]models.Plan, error) {
	log := logger.FromContext(ctx)

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidPlanKind)
	}
	if limit == 0 {
		limit = defaultRecentPlansLimit
	}

	plans, err := p.planRepository.ListRecentPlans(ctx, userID, kind, limit)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("kind", string(kind)).Msg("plan listing failed")
		return nil, fmt.Errorf("plan listing failed: %w", err)
	}

	return plans, nil
}

// ClearPlans deletes every plan of one kind for the user and reports how
// many rows went away. The wipe is a no-op unless confirmed is true; the
// flag travels in the request and is re-checked here so a UI bug cannot
// destroy history on its own.
func (p *planService) ClearPlans(ctx context.Context, userID int64, kind models.PlanKind, confirmed bool) (int64, error) {
	log := logger.FromContext(ctx)

	if !confirmed {
		log.Warn().Int64("user_id", userID).Str("kind", string(kind)).Msg("plan wipe without confirmation")
		return 0, ErrNotConfirmed
	}
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidPlanKind)
	}

	deleted, err := p.planRepository.ClearPlans(ctx, userID, kind)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("kind", string(kind)).Msg("plan wipe failed")
		return 0, fmt.Errorf("plan wipe failed: %w", err)
	}

	log.Info().Int64("user_id", userID).Str("kind", string(kind)).Int64("deleted", deleted).Msg("plans cleared")
	return deleted, nil
}
