package service

import (
	"context"
	"time"

	"github.com/MKhiriev/levelup-fitness/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService defines the client-side contract for the account
// lifecycle: signup, login, session persistence across restarts, password
// changes and sign-out. Implementations own the local session row and keep
// the transport adapter's bearer token in step with it.
type ClientAuthService interface {
	// Register creates a new account on the server, persists the issued
	// session locally and returns it. Returns [store.ErrLoginAlreadyExists]
	// when the login is taken.
	Register(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Login authenticates against the server, persists the issued session
	// locally and returns it. Unknown login and wrong password both return
	// [ErrInvalidCredentials].
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// RestoreSession loads the locally persisted session and primes the
	// transport adapter with its bearer token, so the app reopens signed in.
	// Returns [store.ErrLocalSessionNotFound] when nobody is signed in.
	RestoreSession(ctx context.Context) (models.Session, error)

	// ChangePassword validates the settings-page form client-side (empty new
	// password, new/confirm mismatch) and then submits it to the server.
	ChangePassword(ctx context.Context, change models.ChangePasswordRequest) error

	// RefreshToken exchanges the current bearer token for a fresh one and
	// stores it in the local session row. Returns the new token. Called by
	// the background session job.
	RefreshToken(ctx context.Context) (string, error)

	// Logout clears the adapter token and deletes the local session row.
	// Idempotent.
	Logout(ctx context.Context) error

	// LastPage returns the page the UI was on when it last shut down, or an
	// empty string when none was saved. Only consulted on session restore.
	LastPage(ctx context.Context) string

	// SaveLastPage persists the active page so a restart within the token's
	// lifetime reopens the app where the user left it.
	SaveLastPage(ctx context.Context, page string) error
}

// ClientProfileService proxies the profile form to the server.
type ClientProfileService interface {
	// GetProfile fetches the profile of the signed-in user; a user who never
	// saved one receives defaults.
	GetProfile(ctx context.Context) (models.Profile, error)

	// SaveProfile submits the profile form and returns the stored row.
	SaveProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
}

// ClientPlanService drives the AI pages: generation, plan history, export and
// the persisted model choice.
type ClientPlanService interface {
	// GenerateWorkoutPlan builds the workout prompt from the profile and the
	// form, calls the completions endpoint and returns the plan text. A
	// failed completion call comes back as marker-prefixed text
	// ("❌ Error ...", "❌ Request failed: ..."), never as an error, and is
	// NOT saved. A successful generation is uploaded before returning; if
	// that upload fails the generated text is still returned together with
	// the error so the page can display it.
	GenerateWorkoutPlan(ctx context.Context, profile models.Profile, req models.WorkoutPlanRequest, model string) (string, error)

	// GenerateMealPlan is GenerateWorkoutPlan for the meal page.
	GenerateMealPlan(ctx context.Context, profile models.Profile, req models.MealPlanRequest, model string) (string, error)

	// LatestPlan returns the newest saved plan of the given kind, shown when
	// an AI page is opened. Returns [ErrNoPlansYet] when the user has no
	// saved plan of that kind.
	LatestPlan(ctx context.Context, kind models.PlanKind) (models.Plan, error)

	// RecentPlans returns the newest plans of the given kind, newest first.
	// limit <= 0 uses the server default.
	RecentPlans(ctx context.Context, kind models.PlanKind, limit int) ([]models.Plan, error)

	// ClearPlans wipes the saved history of one kind. Requires confirmed.
	ClearPlans(ctx context.Context, kind models.PlanKind, confirmed bool) (int64, error)

	// ExportPlan writes content to <kind>_plan_<id>.md in the working
	// directory and returns the file name. Marker-prefixed failure text is
	// refused.
	ExportPlan(kind models.PlanKind, content string) (string, error)

	// CopyPlan puts content on the system clipboard.
	CopyPlan(content string) error

	// SelectedModel returns the persisted completion-model choice, falling
	// back to the default model when none was saved.
	SelectedModel(ctx context.Context) string

	// SaveSelectedModel persists the completion-model choice across runs.
	SaveSelectedModel(ctx context.Context, model string) error
}

// ClientWorkoutLogService proxies the daily checklist to the server.
type ClientWorkoutLogService interface {
	// Add appends one checklist entry and returns the stored row.
	Add(ctx context.Context, entry models.WorkoutLogEntry) (models.WorkoutLogEntry, error)

	// List fetches entries, all of them or one day when date is non-empty.
	List(ctx context.Context, date string) ([]models.WorkoutLogEntry, error)

	// Update applies a partial edit to one entry and returns the updated
	// row.
	Update(ctx context.Context, entryID int64, patch models.WorkoutLogPatch) (models.WorkoutLogEntry, error)

	// SetDone toggles the done state of one entry. Convenience wrapper
	// around Update for the checklist.
	SetDone(ctx context.Context, entryID int64, done bool) error

	// Delete removes one entry.
	Delete(ctx context.Context, entryID int64) error

	// ClearAll wipes the checklist and the saved workout plans. Requires
	// confirmed.
	ClearAll(ctx context.Context, confirmed bool) error

	// Summary fetches per-day completion counts for the consistency chart.
	Summary(ctx context.Context, days int) ([]models.DailyCompletion, error)
}

// ClientWeightService proxies weigh-ins to the server.
type ClientWeightService interface {
	// AddEntry records a weigh-in for the given day. The server moves the
	// profile's current weight in the same transaction.
	AddEntry(ctx context.Context, date string, weightKg float64) (models.WeightEntry, error)

	// History fetches all weigh-ins in ascending date order.
	History(ctx context.Context) ([]models.WeightEntry, error)
}

// ClientAppInfoService exposes build and server version information to the
// settings page.
type ClientAppInfoService interface {
	// ServerVersion fetches the server's build version as plain text.
	ServerVersion(ctx context.Context) (string, error)
}

// ClientSessionJob defines the contract for the background worker that keeps
// the bearer token fresh while the app is open.
type ClientSessionJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
