package install

import (
	"fmt"

	"github.com/neodefaults/neodefaults-installer/internal/config"
	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

// ComponentLocate names the discovery step in results.
const ComponentLocate = "locate"

// Orchestrator runs each install operation on a background goroutine. Every
// error is reported through Result; nothing panics into the caller.
type Orchestrator struct {
	env Env
}

// LocateResult reports the outcome of discovery.
type LocateResult struct {
	Root  string
	Found bool
	Err   error
}

// NewOrchestrator validates env and returns an Orchestrator.
func NewOrchestrator(env Env) (*Orchestrator, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}
	return &Orchestrator{env: env}, nil
}

// Root returns the install root holder.
func (o *Orchestrator) Root() *InstallRoot {
	return o.env.Root
}

// Locate resolves the install root and assigns it. An already assigned root
// is returned as is without probing.
func (o *Orchestrator) Locate() *Task[LocateResult] {
	return Go(func() (res LocateResult) {
		defer func() {
			if r := recover(); r != nil {
				res = LocateResult{Err: fmt.Errorf(messages.InstallPanicFmt, ComponentLocate, r)}
			}
		}()
		if root, ok := o.env.Root.Get(); ok {
			return LocateResult{Root: root, Found: true}
		}
		if o.env.Locator == nil {
			return LocateResult{Err: ErrRootUnresolved}
		}
		root, ok := o.env.Locator.Resolve()
		if !ok {
			return LocateResult{}
		}
		if err := o.env.Root.Set(root); err != nil {
			existing, _ := o.env.Root.Get()
			return LocateResult{Root: existing, Found: true}
		}
		return LocateResult{Root: root, Found: true}
	})
}

// InstallConfig installs the primary config, the startup-script directive,
// and the user-override file.
func (o *Orchestrator) InstallConfig() *Task[Result] {
	return o.run(ComponentConfig, func(root string) Result {
		cfg := o.env.Config
		paths := cfg.InstallPaths(root)
		copier := o.copier()
		return NewConfigInstaller(ConfigInstallerOptions{
			Sys:            o.env.Sys,
			Log:            o.env.Log,
			Confirm:        o.env.Confirm,
			Copier:         copier,
			Patcher:        o.Patcher(root),
			Paths:          paths,
			Source:         o.env.Assets.SourceConfig(cfg),
			CustomTemplate: o.env.Assets.CustomTemplate(cfg),
		}).InstallConfig()
	})
}

// InstallBundle extracts the bundle with the given id.
func (o *Orchestrator) InstallBundle(id string) *Task[Result] {
	return o.run(id, func(root string) Result {
		b, ok := o.env.Config.Bundle(id)
		if !ok {
			err := fmt.Errorf(messages.InstallUnknownBundleFmt, id)
			o.env.Log.WriteError(err.Error())
			return failure(id, err)
		}
		installer := NewArchiveInstaller(o.env.Sys, o.env.Log, o.env.Confirm)
		res := installer.Install(o.env.Assets.Archive(b), o.env.Config.BundleDir(root, b), b.DisplayName())
		res.Component = id
		return res
	})
}

// InstallHUD extracts the HUD bundle.
func (o *Orchestrator) InstallHUD() *Task[Result] {
	return o.InstallBundle(config.BundleHUD)
}

// InstallHitsound extracts the hitsound bundle.
func (o *Orchestrator) InstallHitsound() *Task[Result] {
	return o.InstallBundle(config.BundleHitsound)
}

// InstallFonts copies the fonts of the extracted font bundle. The bundle must
// have been installed first.
func (o *Orchestrator) InstallFonts() *Task[Result] {
	return o.run(ComponentFonts, func(root string) Result {
		return NewFontInstaller(o.env.Sys, o.env.Log, o.copier(), o.env.Config.FontsDir(root), o.env.FontDir).InstallFonts()
	})
}

// Install dispatches by component name: config, fonts, or a bundle id.
func (o *Orchestrator) Install(component string) *Task[Result] {
	switch component {
	case ComponentConfig:
		return o.InstallConfig()
	case ComponentFonts:
		return o.InstallFonts()
	default:
		return o.InstallBundle(component)
	}
}

// Patcher returns the startup-script patcher for root.
func (o *Orchestrator) Patcher(root string) *AutoexecPatcher {
	cfg := o.env.Config
	return NewAutoexecPatcher(o.env.Sys, o.env.Log, cfg.InstallPaths(root), cfg.Config.Folder, cfg.Autoexec.PluginPattern)
}

func (o *Orchestrator) copier() *Copier {
	return NewCopier(o.env.Sys, o.env.Log, o.env.Retry)
}

// run checks the root and runs fn in the background, turning panics into
// Failure.
func (o *Orchestrator) run(component string, fn func(root string) Result) *Task[Result] {
	return Go(func() (res Result) {
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf(messages.InstallPanicFmt, component, r)
				o.env.Log.WriteError(err.Error())
				res = failure(component, err)
			}
		}()
		root, ok := o.env.Root.Get()
		if !ok {
			o.env.Log.WriteError(messages.InstallRootUnresolved)
			return failure(component, ErrRootUnresolved)
		}
		o.env.Log.WriteDivider()
		return fn(root)
	})
}
