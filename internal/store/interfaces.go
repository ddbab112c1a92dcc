package store

import (
	"context"

	"github.com/MKhiriev/levelup-fitness/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateAuthHash(ctx context.Context, userID int64, authHash string) error
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)
	SaveProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
}

type PlanRepository interface {
	AppendPlan(ctx context.Context, plan models.Plan) (models.Plan, error)
	ListRecentPlans(ctx context.Context, userID int64, kind models.PlanKind, limit uint64) ([]models.Plan, error)
	ClearPlans(ctx context.Context, userID int64, kind models.PlanKind) (int64, error)
}

type WorkoutLogRepository interface {
	AddWorkoutLog(ctx context.Context, entry models.WorkoutLogEntry) (models.WorkoutLogEntry, error)
	ListWorkoutLogs(ctx context.Context, userID int64, date string) ([]models.WorkoutLogEntry, error)
	UpdateWorkoutLog(ctx context.Context, userID int64, entryID int64, patch models.WorkoutLogPatch) (models.WorkoutLogEntry, error)
	DeleteWorkoutLog(ctx context.Context, userID int64, entryID int64) error
	ClearAllWorkoutData(ctx context.Context, userID int64) error
	WorkoutSummary(ctx context.Context, userID int64, days int) ([]models.DailyCompletion, error)
}

type WeightRepository interface {
	AddWeightEntry(ctx context.Context, entry models.WeightEntry) (models.WeightEntry, error)
	ListWeightHistory(ctx context.Context, userID int64) ([]models.WeightEntry, error)
}
