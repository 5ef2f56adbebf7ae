package tui

import (
	"github.com/MKhiriev/go-env-keeper/models"
)

type envLoadedMsg struct {
	env models.ResolvedEnv
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
