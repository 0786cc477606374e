package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/salestrak-pa/internal/config"
	"github.com/MKhiriev/salestrak-pa/internal/logger"
	"github.com/MKhiriev/salestrak-pa/internal/service"
	"github.com/MKhiriev/salestrak-pa/internal/tui"
	"github.com/MKhiriev/salestrak-pa/internal/workers"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

var (
	_ UI     = (*tui.TUI)(nil)
	_ Client = (*App)(nil)
)

func NewApp(services *service.ClientServices, ui UI, workersCfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}
	return &App{services: services, ui: ui, workers: workersCfg, logger: logger}, nil
}

// Run restores the saved session, starts the background workers and shows
// the UI until the user quits or the process is interrupted.
func (a *App) Run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	user, err := a.services.AuthService.RestoreSession(ctx)
	switch {
	case errors.Is(err, service.ErrNoStoredSession):
		a.logger.Info().Str("func", "App.Run").Msg("no stored session, starting at the menu")
	case err != nil:
		a.logger.Err(err).Str("func", "App.Run").Msg("failed to restore session, starting at the menu")
		user = nil
	default:
		a.logger.Info().Str("func", "App.Run").Msg("session restored")
	}

	a.newWorkers().Run(ctx)

	if err = a.ui.Run(ctx, user); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func (a *App) newWorkers() *workers.Workers {
	if a.workers.RefreshInterval <= 0 {
		a.logger.Info().Str("func", "App.newWorkers").Msg("dashboard refresh disabled")
		return workers.NewWorkers()
	}
	return workers.NewWorkers(
		workers.NewDashboardRefreshWorker(a.services.RefreshJob, a.workers.RefreshInterval, a.ui.NotifyDashboard),
	)
}
