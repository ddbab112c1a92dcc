package service

import (
	"context"

	"github.com/MKhiriev/levelup-fitness/internal/adapter"
	"github.com/MKhiriev/levelup-fitness/models"
)

type clientProfileService struct {
	adapter adapter.ServerAdapter
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter) ClientProfileService {
	return &clientProfileService{adapter: serverAdapter}
}

func (p *clientProfileService) GetProfile(ctx context.Context) (models.Profile, error) {
	profile, err := p.adapter.GetProfile(ctx)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	return profile, nil
}

func (p *clientProfileService) SaveProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	saved, err := p.adapter.SaveProfile(ctx, profile)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	return saved, nil
}
