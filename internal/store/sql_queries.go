package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/levelup-fitness/models"
)

const (
	createUser = `INSERT INTO users (login, auth_hash, email)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, auth_hash, email, registered_at;`

	findUserByLogin = `SELECT user_id, login, auth_hash, email, registered_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, auth_hash, email, registered_at
    FROM users
    WHERE user_id = $1;`

	updateAuthHash = `UPDATE users
    SET auth_hash = $1
    WHERE user_id = $2;`

	getProfile = `SELECT user_id, name, age, gender, height_cm, weight_kg, target_weight_kg, updated_at
    FROM profiles
    WHERE user_id = $1;`

	saveProfile = `INSERT INTO profiles (user_id, name, age, gender, height_cm, weight_kg, target_weight_kg, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, now())
    ON CONFLICT (user_id) DO UPDATE SET
        name = EXCLUDED.name,
        age = EXCLUDED.age,
        gender = EXCLUDED.gender,
        height_cm = EXCLUDED.height_cm,
        weight_kg = EXCLUDED.weight_kg,
        target_weight_kg = EXCLUDED.target_weight_kg,
        updated_at = now()
    RETURNING user_id, name, age, gender, height_cm, weight_kg, target_weight_kg, updated_at;`

	appendPlan = `INSERT INTO plans (user_id, kind, content)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, kind, content, created_at;`

	addWorkoutLog = `INSERT INTO workout_logs (user_id, log_date, exercise, sets, reps, weight_kg, notes, done)
    VALUES ($1, $2, $3, $4, $5, $6, $7, false)
    RETURNING id, user_id, log_date, exercise, sets, reps, weight_kg, notes, done, created_at;`

	deleteWorkoutLogEntry = `DELETE FROM workout_logs
    WHERE id = $1 AND user_id = $2;`

	deleteWorkoutLogsByUser = `DELETE FROM workout_logs
    WHERE user_id = $1;`

	addWeightEntry = `INSERT INTO weight_log (user_id, log_date, weight_kg)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, log_date, weight_kg, created_at;`

	updateProfileWeight = `UPDATE profiles
    SET weight_kg = $1, updated_at = now()
    WHERE user_id = $2;`

	listWeightHistory = `SELECT id, user_id, log_date, weight_kg, created_at
    FROM weight_log
    WHERE user_id = $1
    ORDER BY log_date, id;`
)

// buildListRecentPlansQuery builds the newest-first plan listing for one user
// and kind, capped at limit rows.
func buildListRecentPlansQuery(ctx context.Context, userID int64, kind string, limit uint64) (string, []any, error) {
	query, args, err := sq.Select("id", "user_id", "kind", "content", "created_at").
		From("plans").
		Where(sq.Eq{"user_id": userID, "kind": kind}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildClearPlansQuery builds the per-kind plan wipe for one user.
func buildClearPlansQuery(ctx context.Context, userID int64, kind string) (string, []any, error) {
	query, args, err := sq.Delete("plans").
		Where(sq.Eq{"user_id": userID, "kind": kind}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListWorkoutLogsQuery builds the workout log listing for one user.
// When date is non-empty the result is narrowed to that single day.
// Rows come back newest first; the serial id breaks same-timestamp ties.
func buildListWorkoutLogsQuery(ctx context.Context, userID int64, date string) (string, []any, error) {
	qb := sq.Select("id", "user_id", "log_date", "exercise", "sets", "reps", "weight_kg", "notes", "done", "created_at").
		From("workout_logs").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(sq.Dollar)

	if date != "" {
		qb = qb.Where(sq.Eq{"log_date": date})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateWorkoutLogQuery builds the partial update of one entry from the
// non-nil patch fields, scoped to the owner, returning the updated row.
// An all-nil patch fails at ToSql time (no SET clause); callers are
// expected to reject it before getting here.
func buildUpdateWorkoutLogQuery(ctx context.Context, userID int64, entryID int64, patch models.WorkoutLogPatch) (string, []any, error) {
	qb := sq.Update("workout_logs").
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		Suffix("RETURNING id, user_id, log_date, exercise, sets, reps, weight_kg, notes, done, created_at").
		PlaceholderFormat(sq.Dollar)

	if patch.Exercise != nil {
		qb = qb.Set("exercise", *patch.Exercise)
	}
	if patch.Sets != nil {
		qb = qb.Set("sets", *patch.Sets)
	}
	if patch.Reps != nil {
		qb = qb.Set("reps", *patch.Reps)
	}
	if patch.WeightKg != nil {
		qb = qb.Set("weight_kg", *patch.WeightKg)
	}
	if patch.Notes != nil {
		qb = qb.Set("notes", *patch.Notes)
	}
	if patch.Done != nil {
		qb = qb.Set("done", *patch.Done)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildWorkoutSummaryQuery builds the per-date completed-entry counts for the
// consistency chart. fromDate is the inclusive lower bound of the trailing
// window, formatted as models.DateLayout.
func buildWorkoutSummaryQuery(ctx context.Context, userID int64, fromDate string) (string, []any, error) {
	query, args, err := sq.Select("log_date", "COUNT(*) AS completed").
		From("workout_logs").
		Where(sq.Eq{"user_id": userID, "done": true}).
		Where(sq.GtOrEq{"log_date": fromDate}).
		GroupBy("log_date").
		OrderBy("log_date").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
