package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/levelup-fitness/internal/config"
	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Security{}, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, config.Security{}, logger.Nop())

	assert.Equal(t, svc, h.services)
}

func TestNewHandler_StoresHashKey(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Security{HashKey: "secret"}, logger.Nop())

	assert.Equal(t, "secret", h.hashKey)
}

func TestNewHandler_StoresLogger(t *testing.T) {
	log := logger.Nop()
	h := NewHandler(&service.Services{}, config.Security{}, log)

	assert.Equal(t, log, h.logger)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Security{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Security{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

// newTestHandlerWithAppInfoService builds a Handler suitable for route-registration tests.
// AppInfoService is mocked so that GET /api/version does not panic.
func newTestHandlerWithAppInfoService(t *testing.T) *Handler {
	t.Helper()

	svcs := &service.Services{
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}

	return NewHandler(svcs, config.Security{}, logger.Nop())
}

func TestInit_ReturnsRouter(t *testing.T) {
	router := newTestHandlerWithAppInfoService(t).Init()

	require.NotNil(t, router)
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	// auth
	{http.MethodPost, "/api/user/register"},
	{http.MethodPost, "/api/user/login"},
	// session (auth middleware will return 401, not 404/405)
	{http.MethodPut, "/api/user/password"},
	{http.MethodPost, "/api/user/refresh"},
	// profile (auth middleware will return 401, not 404/405)
	{http.MethodGet, "/api/profile"},
	{http.MethodPut, "/api/profile"},
	// plans (auth middleware will return 401, not 404/405)
	{http.MethodPost, "/api/plans"},
	{http.MethodGet, "/api/plans"},
	{http.MethodDelete, "/api/plans"},
	// workout logs (auth middleware will return 401, not 404/405)
	{http.MethodPost, "/api/logs"},
	{http.MethodGet, "/api/logs"},
	{http.MethodGet, "/api/logs/summary"},
	{http.MethodPatch, "/api/logs/17"},
	{http.MethodDelete, "/api/logs/17"},
	{http.MethodDelete, "/api/logs"},
	// weights (auth middleware will return 401, not 404/405)
	{http.MethodPost, "/api/weights"},
	{http.MethodGet, "/api/weights"},
	// version — no auth, handler is called directly
	{http.MethodGet, "/api/version"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandlerWithAppInfoService(t).Init()

	for _, tc := range expectedRoutes {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// A registered route returns anything except 404 (not found) or
			// 405 (method not allowed). Auth-protected routes return 401 —
			// that still proves the route exists.
			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestHandlerWithAppInfoService(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestHandlerWithAppInfoService(t).Init()

	// POST /api/version is not registered — only GET is.
	req := httptest.NewRequest(http.MethodPost, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
