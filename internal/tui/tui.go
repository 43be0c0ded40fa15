// Package tui renders the credentials panel: the secret list with search
// and incremental pagination, a detail view, create/edit forms, a delete
// confirmation, and the share dialog. All store access goes through the
// list controller; the panel itself never talks to the network.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkarpenko/secretpanel/internal/controller"
	"github.com/mkarpenko/secretpanel/internal/logger"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	ctrl *controller.SecretListController
	log  *logger.Logger
}

func New(ctrl *controller.SecretListController, log *logger.Logger) (*TUI, error) {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{ctrl: ctrl, log: log}, nil
}

// Run drives the panel until the user quits. Controller state transitions
// are pumped into the program as repaint messages so intermediate loading
// states render without waiting for the blocking intent to finish.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.ctrl)
	program := tea.NewProgram(model, tea.WithAltScreen())

	t.ctrl.OnChange(func() {
		program.Send(stateChangedMsg{})
	})

	finalModel, runErr := program.Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
