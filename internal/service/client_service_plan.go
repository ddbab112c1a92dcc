// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/levelup-fitness/internal/adapter"
	"github.com/MKhiriev/levelup-fitness/internal/prompts"
	"github.com/MKhiriev/levelup-fitness/internal/store"
	"github.com/MKhiriev/levelup-fitness/internal/utils"
	"github.com/MKhiriev/levelup-fitness/models"
)

// prefCompletionModel is the preferences key under which the chosen
// completion model persists across runs.
const prefCompletionModel = "completion_model"

// generationFailurePrefix marks text that describes a failed completion call
// instead of an actual plan. Marked text is shown on the page but never
// uploaded, exported or treated as a plan.
const generationFailurePrefix = "❌"

type clientPlanService struct {
	adapter     adapter.ServerAdapter
	completions adapter.CompletionClient
	localStore  *store.ClientStorages
	uuid        *utils.UUIDGenerator
}

func NewClientPlanService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, completions adapter.CompletionClient) ClientPlanService {
	return &clientPlanService{
		adapter:     serverAdapter,
		completions: completions,
		localStore:  localStore,
		uuid:        utils.NewUUIDGenerator(),
	}
}

// IsGenerationFailure reports whether text came out of a failed completion
// call rather than a real generation.
func IsGenerationFailure(text string) bool {
	return strings.HasPrefix(text, generationFailurePrefix)
}

func (p *clientPlanService) GenerateWorkoutPlan(ctx context.Context, profile models.Profile, req models.WorkoutPlanRequest, model string) (string, error) {
	return p.generate(ctx, models.PlanWorkout, model, prompts.BuildWorkoutPrompt(profile, req))
}

func (p *clientPlanService) GenerateMealPlan(ctx context.Context, profile models.Profile, req models.MealPlanRequest, model string) (string, error) {
	return p.generate(ctx, models.PlanMeal, model, prompts.BuildMealPrompt(profile, req))
}

// generate calls the completions endpoint and uploads the result as the
// newest plan of the given kind. A failed call produces marker text instead
// of an error so the page can show exactly what went wrong; marker text is
// never uploaded. When the upload itself fails the generated text is returned
// alongside the error, otherwise a flaky connection would cost the user a
// finished plan.
func (p *clientPlanService) generate(ctx context.Context, kind models.PlanKind, model string, prompt string) (string, error) {
	text, err := p.completions.Complete(ctx, model, prompts.SystemPrompt, prompt)
	if err != nil {
		var completionErr *adapter.CompletionError
		if errors.As(err, &completionErr) {
			return fmt.Sprintf("%s Error %d: %s", generationFailurePrefix, completionErr.Code, completionErr.Body), nil
		}

		return fmt.Sprintf("%s Request failed: %v", generationFailurePrefix, err), nil
	}

	if _, err := p.adapter.AppendPlan(ctx, kind, text); err != nil {
		return text, mapAdapterError(err)
	}

	return text, nil
}

func (p *clientPlanService) LatestPlan(ctx context.Context, kind models.PlanKind) (models.Plan, error) {
	plans, err := p.adapter.ListRecentPlans(ctx, kind, 1)
	if err != nil {
		return models.Plan{}, mapAdapterError(err)
	}

	if len(plans) == 0 {
		return models.Plan{}, ErrNoPlansYet
	}

	return plans[0], nil
}

func (p *clientPlanService) RecentPlans(ctx context.Context, kind models.PlanKind, limit int) ([]models.Plan, error) {
	plans, err := p.adapter.ListRecentPlans(ctx, kind, limit)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return plans, nil
}

func (p *clientPlanService) ClearPlans(ctx context.Context, kind models.PlanKind, confirmed bool) (int64, error) {
	if !confirmed {
		return 0, ErrNotConfirmed
	}

	deleted, err := p.adapter.ClearPlans(ctx, kind, confirmed)
	if err != nil {
		return 0, mapAdapterError(err)
	}

	return deleted, nil
}

func (p *clientPlanService) ExportPlan(kind models.PlanKind, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: nothing to export", ErrInvalidDataProvided)
	}
	if IsGenerationFailure(content) {
		return "", fmt.Errorf("%w: refusing to export a failed generation", ErrInvalidDataProvided)
	}

	name := fmt.Sprintf("%s_plan_%s.md", kind, p.uuid.Generate()[:8])
	if err := os.WriteFile(name, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("write plan file: %w", err)
	}

	return name, nil
}

func (p *clientPlanService) CopyPlan(content string) error {
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("copy plan to clipboard: %w", err)
	}

	return nil
}

func (p *clientPlanService) SelectedModel(ctx context.Context) string {
	model, err := p.localStore.SessionRepository.GetPreference(ctx, prefCompletionModel)
	if err != nil || model == "" {
		return models.DefaultCompletionModel
	}

	return model
}

func (p *clientPlanService) SaveSelectedModel(ctx context.Context, model string) error {
	return p.localStore.SessionRepository.SavePreference(ctx, prefCompletionModel, model)
}
