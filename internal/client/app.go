package client

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-env-keeper/internal/tui"
	"github.com/MKhiriev/go-env-keeper/models"
)

type App struct {
	tui *tui.TUI
}

func NewApp(ui *tui.TUI) (*App, error) {
	if ui == nil {
		return nil, errors.New("no ui provided")
	}
	return &App{tui: ui}, nil
}

func (a *App) Run() error {
	err := a.tui.Run(context.Background())
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

// LocalEnvFromEnviron turns os.Environ-style "KEY=VALUE" pairs into a
// resolved layer attributed to the local process. Malformed entries are
// skipped. The layer applies in every context and scope, like any
// process environment does.
func LocalEnvFromEnviron(environ []string) models.ResolvedEnv {
	env := make(models.ResolvedEnv, len(environ))
	for _, kv := range environ {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			continue
		}
		env[key] = models.ResolvedVar{
			Value:   value,
			Context: models.ContextAll,
			Scopes:  models.AvailableScopes,
			Sources: []models.Source{models.SourceGeneral},
		}
	}
	return env
}
