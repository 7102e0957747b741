package install

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/neodefaults/neodefaults-installer/internal/config"
	"github.com/neodefaults/neodefaults-installer/internal/logsink"
	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

// ComponentConfig names the config component in results.
const ComponentConfig = "config"

// ConfigInstaller installs the primary config, wires it into the startup
// script, and seeds the user-override file.
type ConfigInstaller struct {
	sys     System
	log     logsink.Sink
	confirm Confirmer
	copier  *Copier
	patcher *AutoexecPatcher
	paths   config.Paths

	source         string
	customTemplate string
}

// ConfigInstallerOptions wires a ConfigInstaller.
type ConfigInstallerOptions struct {
	Sys            System
	Log            logsink.Sink
	Confirm        Confirmer
	Copier         *Copier
	Patcher        *AutoexecPatcher
	Paths          config.Paths
	Source         string
	CustomTemplate string
}

// NewConfigInstaller returns a ConfigInstaller.
func NewConfigInstaller(opts ConfigInstallerOptions) *ConfigInstaller {
	return &ConfigInstaller{
		sys:            opts.Sys,
		log:            opts.Log,
		confirm:        opts.Confirm,
		copier:         opts.Copier,
		patcher:        opts.Patcher,
		paths:          opts.Paths,
		source:         opts.Source,
		customTemplate: opts.CustomTemplate,
	}
}

// InstallConfig runs the config install steps in order. A startup-script
// patch failure is reported to the user but does not fail the install.
func (c *ConfigInstaller) InstallConfig() Result {
	if err := c.sys.MkdirAll(c.paths.ConfigDir, 0o755); err != nil {
		c.log.WriteError(messages.InstallConfigDirFailed, err.Error())
		return failure(ComponentConfig, fmt.Errorf(messages.InstallCreateDirFmt, c.paths.ConfigDir, err))
	}

	if err := c.installPrimary(); err != nil {
		c.log.WriteError(fmt.Sprintf(messages.InstallConfigCopyFailedFmt, c.paths.DestConfig, c.source), err.Error())
		return failure(ComponentConfig, err)
	}

	if err := c.patcher.Patch(c.paths.DestConfig); err != nil {
		c.log.WriteError(messages.InstallAutoexecFailed, err.Error())
		_ = c.confirm.Confirm(messages.InstallAutoexecNotice)
	}

	if err := c.installCustom(); err != nil {
		c.log.WriteError(fmt.Sprintf(messages.InstallCustomFailedFmt, c.paths.CustomConfig), err.Error())
		return failure(ComponentConfig, err)
	}

	c.log.Write(messages.InstallConfigDone)
	return Result{Component: ComponentConfig, Outcome: Success}
}

func (c *ConfigInstaller) installPrimary() error {
	dest := c.paths.DestConfig
	if _, err := c.sys.Stat(dest); err == nil {
		if err := c.sys.Chmod(dest, 0o644); err != nil {
			return fmt.Errorf("%w: "+messages.InstallMakeWritableFmt, ErrTransientIO, dest, err)
		}
	}
	c.log.Write(fmt.Sprintf(messages.InstallConfigCopyStartFmt, c.source, dest))
	if err := c.copier.Copy(c.source, dest, true); err != nil {
		return err
	}
	if err := c.sys.Chmod(dest, 0o444); err != nil {
		return fmt.Errorf("%w: "+messages.InstallMakeReadOnlyFmt, ErrTransientIO, dest, err)
	}
	return nil
}

func (c *ConfigInstaller) installCustom() error {
	dest := c.paths.CustomConfig
	_, err := c.sys.Stat(dest)
	if err == nil {
		c.log.Write(fmt.Sprintf(messages.InstallCustomKeptFmt, dest))
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrTransientIO, err)
	}
	c.log.Write(fmt.Sprintf(messages.InstallConfigCopyStartFmt, c.customTemplate, dest))
	return c.copier.Copy(c.customTemplate, dest, false)
}
