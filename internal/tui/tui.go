// Package tui implements the interactive environment browser.
//
// The browser shows the resolved mapping for one context/scope pair and
// lets the user switch pairs, inspect a single variable, and copy its
// value without echoing secrets to the terminal.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

// Options seeds the browser with the initial resolution request.
type Options struct {
	Context   string
	Scope     models.Scope
	AccountID string
	SiteID    string
	LocalEnv  models.ResolvedEnv
}

type TUI struct {
	env  service.EnvService
	opts Options
}

func New(env service.EnvService, opts Options, _ *logger.Logger) (*TUI, error) {
	if opts.Context == "" {
		opts.Context = "dev"
	}
	if opts.Scope == "" {
		opts.Scope = models.ScopeAny
	}
	return &TUI{env: env, opts: opts}, nil
}

// Run blocks until the user leaves the browser.
func (t *TUI) Run(ctx context.Context) error {
	model := newBrowserModel(ctx, t.env, t.opts)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	if _, ok := finalModel.(browserModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
