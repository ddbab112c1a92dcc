package service

import (
	"github.com/MKhiriev/levelup-fitness/internal/config"
	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/store"
	"github.com/MKhiriev/levelup-fitness/internal/validators"
)

// Services bundles every server-side service behind one value, the unit
// the HTTP handler layer is wired with.
type Services struct {
	AuthService       AuthService
	ProfileService    ProfileService
	PlanService       PlanService
	WorkoutLogService WorkoutLogService
	WeightService     WeightService
	AppInfoService    AppInfoService
}

// NewServices wires the service layer on top of the storage layer. All
// domain services share one FitnessValidator.
//
// Returns an error when a service cannot be constructed, e.g. when the
// application version is missing from the config.
func NewServices(storages store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewFitnessValidator()

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.Auth, logger),
		ProfileService:    NewProfileService(storages.ProfileRepository, validator, logger),
		PlanService:       NewPlanService(storages.PlanRepository, validator, logger),
		WorkoutLogService: NewWorkoutLogService(storages.WorkoutLogRepository, validator, logger),
		WeightService:     NewWeightService(storages.WeightRepository, validator, logger),
		AppInfoService:    appInfoService,
	}, nil
}
