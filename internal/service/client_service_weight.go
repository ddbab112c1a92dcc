package service

import (
	"context"

	"github.com/MKhiriev/levelup-fitness/internal/adapter"
	"github.com/MKhiriev/levelup-fitness/models"
)

type clientWeightService struct {
	adapter adapter.ServerAdapter
}

func NewClientWeightService(serverAdapter adapter.ServerAdapter) ClientWeightService {
	return &clientWeightService{adapter: serverAdapter}
}

func (s *clientWeightService) AddEntry(ctx context.Context, date string, weightKg float64) (models.WeightEntry, error) {
	entry, err := s.adapter.AddWeightEntry(ctx, models.WeightEntry{LogDate: date, WeightKg: weightKg})
	if err != nil {
		return models.WeightEntry{}, mapAdapterError(err)
	}

	return entry, nil
}

func (s *clientWeightService) History(ctx context.Context) ([]models.WeightEntry, error) {
	history, err := s.adapter.ListWeightHistory(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return history, nil
}
