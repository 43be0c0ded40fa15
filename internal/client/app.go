package client

import (
	"context"
	"errors"

	"github.com/mkarpenko/secretpanel/internal/config"
	"github.com/mkarpenko/secretpanel/internal/controller"
	"github.com/mkarpenko/secretpanel/internal/logger"
	"github.com/mkarpenko/secretpanel/internal/tui"
	"github.com/mkarpenko/secretpanel/internal/workers"
)

// App ties the controller, the background workers and the terminal UI into
// one runnable unit.
type App struct {
	ctrl    *controller.SecretListController
	ui      *tui.TUI
	workers *workers.Workers
	log     *logger.Logger
}

// NewApp assembles the application. The refresh worker is registered only
// when the configured interval is positive; zero disables it.
func NewApp(ctrl *controller.SecretListController, ui *tui.TUI, workersCfg config.Workers, log *logger.Logger) (*App, error) {
	if ctrl == nil {
		return nil, errors.New("client: controller is required")
	}
	if ui == nil {
		return nil, errors.New("client: tui is required")
	}
	if log == nil {
		log = logger.Nop()
	}

	var jobs []workers.Worker
	if workersCfg.RefreshInterval > 0 && ctrl.Enabled() {
		jobs = append(jobs, workers.NewRefreshJob(ctrl, workersCfg.RefreshInterval, log))
	}

	return &App{
		ctrl:    ctrl,
		ui:      ui,
		workers: workers.NewWorkers(jobs...),
		log:     log,
	}, nil
}

// Run starts the background workers and blocks in the UI loop until the
// user quits. Workers are always stopped before Run returns.
func (a *App) Run() error {
	ctx := context.Background()

	a.workers.Run()
	defer a.workers.Stop()

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.log.Info().Msg("user quit")
			return nil
		}
		return err
	}

	return nil
}
