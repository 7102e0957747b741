package install

import (
	"errors"

	"github.com/neodefaults/neodefaults-installer/internal/config"
	"github.com/neodefaults/neodefaults-installer/internal/logsink"
	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

// Locator finds the TF2 data directory.
type Locator interface {
	Resolve() (string, bool)
}

// Env is the context shared by every install operation.
type Env struct {
	Config  *config.Config
	Assets  config.Assets
	Root    *InstallRoot
	Log     logsink.Sink
	Confirm Confirmer
	Sys     System
	// FontDir is the system font directory. Empty fails the font install.
	FontDir string
	// Locator is used by Orchestrator.Locate. Nil means the root must be set
	// by the caller.
	Locator Locator
	Retry   RetryPolicy
}

func (e *Env) validate() error {
	if e.Config == nil {
		cfg := config.Default()
		e.Config = &cfg
	}
	if e.Root == nil {
		e.Root = NewInstallRoot()
	}
	if e.Sys == nil {
		return errors.New(messages.InstallSystemRequired)
	}
	if e.Log == nil {
		return errors.New(messages.InstallLogRequired)
	}
	if e.Confirm == nil {
		return errors.New(messages.InstallConfirmRequired)
	}
	return nil
}
