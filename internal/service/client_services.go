package service

import (
	"github.com/MKhiriev/levelup-fitness/internal/adapter"
	"github.com/MKhiriev/levelup-fitness/internal/store"
)

type ClientServices struct {
	AuthService       ClientAuthService
	ProfileService    ClientProfileService
	PlanService       ClientPlanService
	WorkoutLogService ClientWorkoutLogService
	WeightService     ClientWeightService
	AppInfoService    ClientAppInfoService
	SessionJob        ClientSessionJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, completions adapter.CompletionClient) *ClientServices {
	authSvc := NewClientAuthService(localStore, serverAdapter)

	return &ClientServices{
		AuthService:       authSvc,
		ProfileService:    NewClientProfileService(serverAdapter),
		PlanService:       NewClientPlanService(localStore, serverAdapter, completions),
		WorkoutLogService: NewClientWorkoutLogService(serverAdapter),
		WeightService:     NewClientWeightService(serverAdapter),
		AppInfoService:    NewClientAppInfoService(serverAdapter),
		SessionJob:        NewClientSessionJob(authSvc),
	}
}
