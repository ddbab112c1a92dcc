package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/levelup-fitness/internal/config"
	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/internal/store"
	"github.com/MKhiriev/levelup-fitness/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit reports that the user closed the application with ctrl+c
// rather than the program failing.
var ErrUserQuit = errors.New("quit the application")

// TUI owns the terminal frontend: one Bubble Tea program hosting every
// page behind a router.
type TUI struct {
	services  *service.ClientServices
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("client services are not initialized")
	}
	if cfg == nil {
		return nil, errors.New("client config is not initialized")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{services: services, cfg: cfg, buildInfo: buildInfo, logger: log}, nil
}

// Run restores the saved session, builds the page router and blocks until
// the user quits. A missing local session is not an error: the app simply
// starts signed out on the login page.
func (t *TUI) Run(ctx context.Context) error {
	startPage := pageLogin
	session := &uiSession{}

	restored, err := t.services.AuthService.RestoreSession(ctx)
	switch {
	case err == nil:
		session.authenticated = true
		session.user = restored
		setSessionUserID(restored.UserID)
		startPage = restoredStartPage(t.services.AuthService.LastPage(ctx))
	case errors.Is(err, store.ErrLocalSessionNotFound):
		// first launch or an explicit logout
	default:
		t.logger.Warn().Msgf("session restore failed: %v", err)
	}

	root := newRootModel(ctx, t.services, session, t.buildInfo, t.cfg.Workers.TokenRefreshInterval, startPage)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	if result, ok := finalModel.(rootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// restoredStartPage reopens the page the user left when the saved value
// still names a known page. Anything else lands on the profile.
func restoredStartPage(last string) string {
	for _, page := range navOrder {
		if page == last {
			return page
		}
	}
	return pageProfile
}
