package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/levelup-fitness/internal/config"
	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/utils"
	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string
	token   string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and initialises the shared HMAC hasher pool used for plan-upload
// integrity digests.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	utils.InitHasherPool(appCfg.HashKey)

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the signup credentials to
// POST /api/user/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/user/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/user/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// ChangePassword implements [ServerAdapter]. It PUTs the password change form
// to PUT /api/user/password. Requires a valid bearer token. Returns
// [ErrUnauthorized] (wrapped) when the current password is rejected.
func (h *httpServerAdapter) ChangePassword(ctx context.Context, change models.ChangePasswordRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(change).
		Put("/api/user/password")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}

	return mapHTTPError(resp)
}

// RefreshToken implements [ServerAdapter]. It POSTs to POST /api/user/refresh
// with the current bearer token and stores the freshly issued token from the
// Authorization response header via SetToken. Returns the new token string.
func (h *httpServerAdapter) RefreshToken(ctx context.Context) (string, error) {
	resp, err := h.authedRequest(ctx).Post("/api/user/refresh")
	if err != nil {
		return "", fmt.Errorf("refresh token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("refresh parse bearer token: %w", err)
	}

	h.SetToken(token)
	return token, nil
}

// GetVersion implements [ServerAdapter]. It GETs the plain-text build version
// from GET /api/version. No bearer token is required.
func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// GetProfile implements [ServerAdapter]. It GETs the authenticated user's
// profile from GET /api/profile. The server substitutes defaults for users
// who have never saved one, so 404 is not an expected outcome. Requires a
// valid bearer token.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/api/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// SaveProfile implements [ServerAdapter]. It PUTs the profile form to
// PUT /api/profile and returns the stored row. Requires a valid bearer token.
func (h *httpServerAdapter) SaveProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	var saved models.Profile

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		SetResult(&saved).
		Put("/api/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("save profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return saved, nil
}

// AppendPlan implements [ServerAdapter]. It computes the payload integrity
// digest over content (when a hash key is configured) and POSTs the plan to
// POST /api/plans. Returns the stored plan including its assigned ID.
// Requires a valid bearer token.
func (h *httpServerAdapter) AppendPlan(ctx context.Context, kind models.PlanKind, content string) (models.Plan, error) {
	req := models.AppendPlanRequest{Kind: kind, Content: content}
	if h.hashKey != "" {
		req.Hash = computeContentHash(content)
	}

	var saved models.Plan

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&saved).
		Post("/api/plans")
	if err != nil {
		return models.Plan{}, fmt.Errorf("append plan request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Plan{}, err
	}

	return saved, nil
}

// ListRecentPlans implements [ServerAdapter]. It GETs the newest plans of the
// given kind from GET /api/plans, newest first. limit <= 0 omits the query
// parameter and leaves the page size to the server default. Requires a valid
// bearer token.
func (h *httpServerAdapter) ListRecentPlans(ctx context.Context, kind models.PlanKind, limit int) ([]models.Plan, error) {
	req := h.authedRequest(ctx).SetQueryParam("kind", string(kind))
	if limit > 0 {
		req.SetQueryParam("limit", fmt.Sprintf("%d", limit))
	}

	resp, err := req.Get("/api/plans")
	if err != nil {
		return nil, fmt.Errorf("list plans request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var plans []models.Plan
	if err = json.Unmarshal(resp.Body(), &plans); err != nil {
		return nil, fmt.Errorf("decode plans response: %w", err)
	}

	return plans, nil
}

// ClearPlans implements [ServerAdapter]. It DELETEs every plan of the given
// kind via DELETE /api/plans and returns the number of rows removed. The
// confirmed flag travels as a query parameter; without it the server rejects
// the call. Requires a valid bearer token.
func (h *httpServerAdapter) ClearPlans(ctx context.Context, kind models.PlanKind, confirmed bool) (int64, error) {
	var cleared models.ClearPlansResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParam("kind", string(kind)).
		SetQueryParam("confirmed", fmt.Sprintf("%t", confirmed)).
		SetResult(&cleared).
		Delete("/api/plans")
	if err != nil {
		return 0, fmt.Errorf("clear plans request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return cleared.Deleted, nil
}

// AddWorkoutLog implements [ServerAdapter]. It POSTs one checklist entry to
// POST /api/logs and returns the stored row including its assigned ID.
// Requires a valid bearer token.
func (h *httpServerAdapter) AddWorkoutLog(ctx context.Context, entry models.WorkoutLogEntry) (models.WorkoutLogEntry, error) {
	var saved models.WorkoutLogEntry

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry).
		SetResult(&saved).
		Post("/api/logs")
	if err != nil {
		return models.WorkoutLogEntry{}, fmt.Errorf("add workout log request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WorkoutLogEntry{}, err
	}

	return saved, nil
}

// ListWorkoutLogs implements [ServerAdapter]. It GETs checklist entries from
// GET /api/logs; a non-empty date ("YYYY-MM-DD") narrows the result to one
// day. Requires a valid bearer token.
func (h *httpServerAdapter) ListWorkoutLogs(ctx context.Context, date string) ([]models.WorkoutLogEntry, error) {
	req := h.authedRequest(ctx)
	if date != "" {
		req.SetQueryParam("date", date)
	}

	resp, err := req.Get("/api/logs")
	if err != nil {
		return nil, fmt.Errorf("list workout logs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.WorkoutLogEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode workout logs response: %w", err)
	}

	return entries, nil
}

// UpdateWorkoutLog implements [ServerAdapter]. It PATCHes one checklist
// entry via PATCH /api/logs/{id}; only the fields the patch carries travel
// in the body. Returns the updated row, or [ErrNotFound] (wrapped) when the
// entry does not exist. Requires a valid bearer token.
func (h *httpServerAdapter) UpdateWorkoutLog(ctx context.Context, entryID int64, patch models.WorkoutLogPatch) (models.WorkoutLogEntry, error) {
	var saved models.WorkoutLogEntry

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&saved).
		Patch(fmt.Sprintf("/api/logs/%d", entryID))
	if err != nil {
		return models.WorkoutLogEntry{}, fmt.Errorf("update workout log request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WorkoutLogEntry{}, err
	}

	return saved, nil
}

// DeleteWorkoutLog implements [ServerAdapter]. It DELETEs one checklist entry
// via DELETE /api/logs/{id}. Returns [ErrNotFound] (wrapped) when the entry
// does not exist. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteWorkoutLog(ctx context.Context, entryID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/logs/%d", entryID))
	if err != nil {
		return fmt.Errorf("delete workout log request: %w", err)
	}

	return mapHTTPError(resp)
}

// ClearAllWorkoutData implements [ServerAdapter]. It DELETEs the user's
// workout logs and weight history via DELETE /api/logs. The confirmed flag
// travels as a query parameter; without it the server rejects the call.
// Requires a valid bearer token.
func (h *httpServerAdapter) ClearAllWorkoutData(ctx context.Context, confirmed bool) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("confirmed", fmt.Sprintf("%t", confirmed)).
		Delete("/api/logs")
	if err != nil {
		return fmt.Errorf("clear workout data request: %w", err)
	}

	return mapHTTPError(resp)
}

// WorkoutSummary implements [ServerAdapter]. It GETs per-day completion
// counts for the last days days from GET /api/logs/summary. Requires a valid
// bearer token.
func (h *httpServerAdapter) WorkoutSummary(ctx context.Context, days int) ([]models.DailyCompletion, error) {
	req := h.authedRequest(ctx)
	if days > 0 {
		req.SetQueryParam("days", fmt.Sprintf("%d", days))
	}

	resp, err := req.Get("/api/logs/summary")
	if err != nil {
		return nil, fmt.Errorf("workout summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var summary []models.DailyCompletion
	if err = json.Unmarshal(resp.Body(), &summary); err != nil {
		return nil, fmt.Errorf("decode workout summary response: %w", err)
	}

	return summary, nil
}

// AddWeightEntry implements [ServerAdapter]. It POSTs one weigh-in to
// POST /api/weights and returns the stored row. Requires a valid bearer
// token.
func (h *httpServerAdapter) AddWeightEntry(ctx context.Context, entry models.WeightEntry) (models.WeightEntry, error) {
	var saved models.WeightEntry

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry).
		SetResult(&saved).
		Post("/api/weights")
	if err != nil {
		return models.WeightEntry{}, fmt.Errorf("add weight entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WeightEntry{}, err
	}

	return saved, nil
}

// ListWeightHistory implements [ServerAdapter]. It GETs all weigh-ins in
// ascending date order from GET /api/weights. Requires a valid bearer token.
func (h *httpServerAdapter) ListWeightHistory(ctx context.Context) ([]models.WeightEntry, error) {
	resp, err := h.authedRequest(ctx).Get("/api/weights")
	if err != nil {
		return nil, fmt.Errorf("list weight history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.WeightEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode weight history response: %w", err)
	}

	return entries, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func computeContentHash(content string) string {
	return hex.EncodeToString(utils.Hash([]byte(content)))
}
