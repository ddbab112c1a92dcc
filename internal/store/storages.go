package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/levelup-fitness/internal/config"
	"github.com/MKhiriev/levelup-fitness/internal/logger"
)

// Storages groups all server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	UserRepository       UserRepository
	ProfileRepository    ProfileRepository
	PlanRepository       PlanRepository
	WorkoutLogRepository WorkoutLogRepository
	WeightRepository     WeightRepository
}

// NewStorages initialises the server storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a PostgreSQL connection pool for the DSN in cfg.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [Storages] value with one repository per table group.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		ProfileRepository:    NewProfileRepository(db, logger),
		PlanRepository:       NewPlanRepository(db, logger),
		WorkoutLogRepository: NewWorkoutLogRepository(db, logger),
		WeightRepository:     NewWeightRepository(db, logger),
	}, nil
}
