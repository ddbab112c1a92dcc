package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/models"
)

// planRepository is the PostgreSQL-backed implementation of [PlanRepository].
// Generated plans are append-only; the only destructive operation is the
// per-kind wipe behind a confirmation gate in the service layer.
type planRepository struct {
	*DB
	logger *logger.Logger
}

func NewPlanRepository(db *DB, logger *logger.Logger) PlanRepository {
	logger.Debug().Msg("creating plan repository")
	return &planRepository{
		DB:     db,
		logger: logger,
	}
}

// AppendPlan inserts a new plan row and returns it with server-assigned
// fields (ID, CreatedAt). Existing plans are never overwritten.
func (p *planRepository) AppendPlan(ctx context.Context, plan models.Plan) (models.Plan, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, appendPlan, plan.UserID, string(plan.Kind), plan.Content)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "planRepository.AppendPlan").
			Int64("user_id", plan.UserID).
			Str("kind", string(plan.Kind)).
			Bool("retryable", p.retryable(err)).
			Msg("failed to execute plan insert")
		return models.Plan{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var saved models.Plan
	if err := row.Scan(&saved.ID, &saved.UserID, &saved.Kind, &saved.Content, &saved.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "planRepository.AppendPlan").
			Int64("user_id", plan.UserID).
			Msg("failed to scan inserted plan row")
		return models.Plan{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// ListRecentPlans returns up to limit plans of the given kind, newest first.
func (p *planRepository) ListRecentPlans(ctx context.Context, userID int64, kind models.PlanKind, limit uint64) ([]models.Plan, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecentPlansQuery(ctx, userID, string(kind), limit)
	if err != nil {
		log.Err(err).
			Str("func", "planRepository.ListRecentPlans").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "planRepository.ListRecentPlans").
			Int64("user_id", userID).
			Str("kind", string(kind)).
			Msg("failed to execute query for listing recent plans")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	plans := make([]models.Plan, 0, limit)

	for rows.Next() {
		var plan models.Plan

		scanErr := rows.Scan(&plan.ID, &plan.UserID, &plan.Kind, &plan.Content, &plan.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "planRepository.ListRecentPlans").
				Int64("user_id", userID).
				Msg("failed to scan plan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		plans = append(plans, plan)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "planRepository.ListRecentPlans").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return plans, nil
}

// ClearPlans deletes every plan of the given kind owned by userID and
// returns the number of deleted rows. The confirmation gate lives in the
// service layer; the repository always executes.
func (p *planRepository) ClearPlans(ctx context.Context, userID int64, kind models.PlanKind) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildClearPlansQuery(ctx, userID, string(kind))
	if err != nil {
		log.Err(err).
			Str("func", "planRepository.ClearPlans").
			Int64("user_id", userID).
			Msg("failed to create query")
		return 0, err
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "planRepository.ClearPlans").
			Int64("user_id", userID).
			Str("kind", string(kind)).
			Bool("retryable", p.retryable(err)).
			Msg("failed to execute plan wipe")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "planRepository.ClearPlans").
			Int64("user_id", userID).
			Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().
		Str("func", "planRepository.ClearPlans").
		Int64("user_id", userID).
		Str("kind", string(kind)).
		Int64("deleted", deleted).
		Msg("cleared plans")

	return deleted, nil
}
