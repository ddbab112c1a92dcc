// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Level-Up Fitness server and with the external chat-completions API.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty. Plan generation
// talks to an OpenAI-compatible completions endpoint through
// [CompletionClient] ([NewCompletionClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/levelup-fitness/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Level-Up
// Fitness server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
//
// The server derives the acting user from the bearer token on every
// authenticated call, so no method takes a user ID.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a signup request with the provided credentials. On
	// success it stores the bearer token from the Authorization response
	// header via SetToken. Returns an error if the request fails or the
	// server responds with a non-2xx status.
	Register(ctx context.Context, creds models.Credentials) error

	// Login authenticates the user with the server. On success it stores the
	// bearer token from the Authorization response header via SetToken.
	// Returns an error if the request fails or the server responds with a
	// non-2xx status.
	Login(ctx context.Context, creds models.Credentials) error

	// ChangePassword submits the settings-page password change form for the
	// authenticated user. Returns [ErrUnauthorized] (wrapped) when the
	// current password is rejected.
	ChangePassword(ctx context.Context, change models.ChangePasswordRequest) error

	// RefreshToken exchanges the current bearer token for a freshly issued
	// one and stores it via SetToken. Returns the new token string.
	RefreshToken(ctx context.Context) (string, error)

	// GetVersion fetches the server build version as plain text.
	GetVersion(ctx context.Context) (string, error)

	// GetProfile fetches the fitness profile of the authenticated user. A
	// user who has never saved one receives a defaults-populated profile
	// rather than an error.
	GetProfile(ctx context.Context) (models.Profile, error)

	// SaveProfile upserts the fitness profile of the authenticated user and
	// returns the stored row.
	SaveProfile(ctx context.Context, profile models.Profile) (models.Profile, error)

	// AppendPlan uploads one generated plan. A payload integrity digest over
	// the content is computed and attached automatically when a hash key is
	// configured. Returns the stored plan including its assigned ID.
	AppendPlan(ctx context.Context, kind models.PlanKind, content string) (models.Plan, error)

	// ListRecentPlans fetches the newest plans of the given kind, newest
	// first. limit <= 0 leaves the page size to the server default.
	ListRecentPlans(ctx context.Context, kind models.PlanKind, limit int) ([]models.Plan, error)

	// ClearPlans deletes every stored plan of the given kind and returns the
	// number of rows removed. The confirmed flag must be set or the server
	// rejects the call.
	ClearPlans(ctx context.Context, kind models.PlanKind, confirmed bool) (int64, error)

	// AddWorkoutLog appends one checklist entry and returns the stored row
	// including its assigned ID.
	AddWorkoutLog(ctx context.Context, entry models.WorkoutLogEntry) (models.WorkoutLogEntry, error)

	// ListWorkoutLogs fetches checklist entries, all of them or a single
	// log_date when date is non-empty ("YYYY-MM-DD").
	ListWorkoutLogs(ctx context.Context, date string) ([]models.WorkoutLogEntry, error)

	// UpdateWorkoutLog applies a partial update to one checklist entry and
	// returns the updated row. Returns [ErrNotFound] (wrapped) when the
	// entry does not exist.
	UpdateWorkoutLog(ctx context.Context, entryID int64, patch models.WorkoutLogPatch) (models.WorkoutLogEntry, error)

	// DeleteWorkoutLog removes one checklist entry. Returns [ErrNotFound]
	// (wrapped) when the entry does not exist.
	DeleteWorkoutLog(ctx context.Context, entryID int64) error

	// ClearAllWorkoutData wipes the authenticated user's workout logs and
	// workout plans in one server-side transaction. The confirmed flag must
	// be set or the server rejects the call.
	ClearAllWorkoutData(ctx context.Context, confirmed bool) error

	// WorkoutSummary fetches per-day checklist completion counts for the
	// last days days, used by the consistency chart.
	WorkoutSummary(ctx context.Context, days int) ([]models.DailyCompletion, error)

	// AddWeightEntry records a weigh-in and returns the stored row. The
	// server also moves the profile's current weight inside the same
	// transaction.
	AddWeightEntry(ctx context.Context, entry models.WeightEntry) (models.WeightEntry, error)

	// ListWeightHistory fetches all weigh-ins of the authenticated user in
	// ascending date order, ready for charting.
	ListWeightHistory(ctx context.Context) ([]models.WeightEntry, error)
}

// CompletionClient calls an OpenAI-compatible chat-completions endpoint and
// returns the generated text of the first choice. Implementations own the API
// key, sampling settings and request timeout; the model travels per call so
// the picker on the AI pages can override the configured default.
type CompletionClient interface {
	// Complete sends one system+user message pair to the completions
	// endpoint. An empty model selects the configured default. Non-2xx
	// responses are returned as a [*CompletionError] carrying the status
	// code and response body.
	Complete(ctx context.Context, model, systemPrompt, userPrompt string) (string, error)
}
