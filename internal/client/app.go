package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/internal/tui"
	"github.com/MKhiriev/levelup-fitness/internal/workers"
)

// App runs the interactive client: background workers first, then the
// terminal UI until the user leaves.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp assembles the client runtime from the pieces built in main.
func NewApp(services *service.ClientServices, ui *tui.TUI, jobs *workers.Workers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are not initialized")
	}
	if ui == nil {
		return nil, errors.New("terminal ui is not initialized")
	}
	if jobs == nil {
		return nil, errors.New("background workers are not initialized")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{services: services, tui: ui, workers: jobs, logger: log}, nil
}

// Run implements [Client]. It starts the background workers, hands the
// terminal over to the UI and blocks until the user exits. Quitting with
// ctrl+c is a normal exit, not an error.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The refresher runs from startup: a restored session re-issues its
	// token without going through the login flow.
	a.workers.Run(ctx)
	defer a.services.SessionJob.Stop()

	if err := a.tui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("client closed by user")
			return nil
		}
		return err
	}

	return nil
}
