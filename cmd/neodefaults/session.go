package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/neodefaults/neodefaults-installer/internal/config"
	"github.com/neodefaults/neodefaults-installer/internal/install"
	"github.com/neodefaults/neodefaults-installer/internal/locate"
	"github.com/neodefaults/neodefaults-installer/internal/logsink"
	"github.com/neodefaults/neodefaults-installer/internal/messages"
	"github.com/neodefaults/neodefaults-installer/internal/prompt"
)

var executablePath = os.Executable
var isTerminal = prompt.IsInteractive
var newHuhConfirmer = func() install.Confirmer { return prompt.NewHuhConfirmer() }

var newLocator = func(cfg *config.Config, log logsink.Sink) install.Locator {
	return locate.New(locate.Options{Discovery: cfg.Discovery, Log: log})
}

// session wires one CLI invocation: config, log, confirmer, and orchestrator.
type session struct {
	cfg     *config.Config
	log     *logsink.FileSink
	confirm install.Confirmer
	orch    *install.Orchestrator
}

func openSession(cmd *cobra.Command, opts *globalOptions) (*session, error) {
	base, err := assetsDir(opts)
	if err != nil {
		return nil, err
	}
	cfgPath := opts.configPath
	if cfgPath == "" {
		cfgPath = filepath.Join(base, config.FileName)
	}
	cfg, err := config.Load(cfgPath, opts.configPath != "")
	if err != nil {
		return nil, err
	}

	logDir, err := cfg.LogDir()
	if err != nil {
		return nil, fmt.Errorf(messages.CLIOpenLogFmt, err)
	}
	var echo io.Writer
	if opts.verbose {
		echo = cmd.ErrOrStderr()
	}
	sink, err := logsink.Open(logsink.Options{Dir: logDir, Version: versionString(), Echo: echo})
	if err != nil {
		return nil, fmt.Errorf(messages.CLIOpenLogFmt, err)
	}

	fontDir, err := cfg.SystemFontDir()
	if err != nil {
		sink.Write(fmt.Sprintf(messages.CLIFontDirFmt, err))
	}

	confirm := chooseConfirmer(cmd, opts)
	orch, err := install.NewOrchestrator(install.Env{
		Config:  cfg,
		Assets:  config.Assets{Base: base},
		Log:     sink,
		Confirm: confirm,
		Sys:     install.RealSystem{},
		FontDir: fontDir,
		Locator: newLocator(cfg, sink),
	})
	if err != nil {
		_ = sink.Close()
		return nil, err
	}
	s := &session{cfg: cfg, log: sink, confirm: confirm, orch: orch}
	if opts.root != "" {
		if err := s.setRoot(opts.root); err != nil {
			_ = sink.Close()
			return nil, err
		}
	}
	return s, nil
}

func (s *session) Close() {
	_ = s.log.Close()
}

// setRoot pins the install root from --root, skipping discovery.
func (s *session) setRoot(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf(messages.CLIRootStatFmt, path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf(messages.CLIRootStatFmt, path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf(messages.CLIRootNotDirFmt, path)
	}
	return s.orch.Root().Set(abs)
}

// locateRoot returns the install root, running discovery when it is not set.
func (s *session) locateRoot(cmd *cobra.Command) (string, error) {
	res, err := s.orch.Locate().Wait(cmd.Context())
	if err != nil {
		return "", err
	}
	if res.Err != nil {
		return "", res.Err
	}
	if !res.Found {
		return "", errors.New(messages.CLIRootNotFound)
	}
	return res.Root, nil
}

// assetsDir resolves the directory that holds resource/.
func assetsDir(opts *globalOptions) (string, error) {
	if opts.assets != "" {
		abs, err := filepath.Abs(opts.assets)
		if err != nil {
			return "", fmt.Errorf(messages.CLIAssetsFmt, err)
		}
		return abs, nil
	}
	exe, err := executablePath()
	if err != nil {
		return "", fmt.Errorf(messages.CLIExecutableFmt, err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	base, err := config.BaseDir(exe, opts.dev)
	if err != nil {
		return "", fmt.Errorf(messages.CLIAssetsFmt, err)
	}
	return base, nil
}

// chooseConfirmer picks --yes, a huh form on a terminal, or line prompts.
func chooseConfirmer(cmd *cobra.Command, opts *globalOptions) install.Confirmer {
	if opts.yes {
		return prompt.Static{Answer: true, Out: cmd.ErrOrStderr()}
	}
	if isTerminal() {
		return newHuhConfirmer()
	}
	return prompt.NewLineConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr(), false)
}
