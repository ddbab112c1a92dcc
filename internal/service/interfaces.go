package service

import (
	"context"

	"github.com/MKhiriev/levelup-fitness/models"
)

// AuthService owns the account lifecycle: registration, credential
// verification, password changes and the JWT lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, change models.ChangePasswordRequest) error
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService reads and saves the per-user fitness profile. A user who
// has never saved one receives defaults rather than an error.
type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)
	SaveProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
}

// PlanService stores generated plans and serves the recent-plans history.
// The wipe runs only when explicitly confirmed.
type PlanService interface {
	AppendPlan(ctx context.Context, plan models.Plan) (models.Plan, error)
	ListRecentPlans(ctx context.Context, userID int64, kind models.PlanKind, limit uint64) ([]models.Plan, error)
	ClearPlans(ctx context.Context, userID int64, kind models.PlanKind, confirmed bool) (int64, error)
}

// WorkoutLogService manages the daily checklist and the consistency
// summary. ClearAllWorkoutData is the app-reset operation and requires
// explicit confirmation.
type WorkoutLogService interface {
	AddWorkoutLog(ctx context.Context, entry models.WorkoutLogEntry) (models.WorkoutLogEntry, error)
	ListWorkoutLogs(ctx context.Context, userID int64, date string) ([]models.WorkoutLogEntry, error)
	UpdateWorkoutLog(ctx context.Context, userID int64, entryID int64, patch models.WorkoutLogPatch) (models.WorkoutLogEntry, error)
	DeleteWorkoutLog(ctx context.Context, userID int64, entryID int64) error
	ClearAllWorkoutData(ctx context.Context, userID int64, confirmed bool) error
	WorkoutSummary(ctx context.Context, userID int64, days int) ([]models.DailyCompletion, error)
}

// WeightService records weigh-ins and serves the progress-chart history.
type WeightService interface {
	AddWeightEntry(ctx context.Context, entry models.WeightEntry) (models.WeightEntry, error)
	ListWeightHistory(ctx context.Context, userID int64) ([]models.WeightEntry, error)
}

// AppInfoService exposes build metadata for the version endpoint.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
