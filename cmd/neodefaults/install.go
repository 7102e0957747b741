package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/neodefaults/neodefaults-installer/internal/config"
	"github.com/neodefaults/neodefaults-installer/internal/install"
	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

const componentAll = "all"

func newInstallCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Long:  messages.InstallLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{componentAll}
			}
			return runInstall(cmd, opts, args)
		},
	}
}

func runInstall(cmd *cobra.Command, opts *globalOptions, args []string) error {
	s, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	components, err := selectComponents(s.cfg, args)
	if err != nil {
		return err
	}
	root, err := s.locateRoot(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, messages.CLIRootFoundFmt, root)
	failed := 0
	for _, component := range components {
		_, _ = fmt.Fprintf(out, messages.CLIInstallingFmt, component)
		res, err := s.orch.Install(component).Wait(cmd.Context())
		if err != nil {
			return err
		}
		printResult(out, res)
		if res.Outcome == install.Failure {
			failed++
		}
		if interrupted(s.confirm) {
			break
		}
	}
	_, _ = fmt.Fprintf(out, messages.CLILogPathFmt, s.log.Path())
	if failed > 0 {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), color.RedString(messages.CLIInstallFailedFmt, failed, s.log.Path()))
		return &SilentExitError{Code: 1}
	}
	return nil
}

// selectComponents validates names and returns them in install order:
// config, then bundles in config order, then fonts. "all" selects everything.
func selectComponents(cfg *config.Config, args []string) ([]string, error) {
	order := make([]string, 0, len(cfg.Bundles)+2)
	order = append(order, install.ComponentConfig)
	for _, b := range cfg.Bundles {
		order = append(order, b.ID)
	}
	order = append(order, install.ComponentFonts)

	wanted := map[string]bool{}
	for _, arg := range args {
		name := strings.ToLower(strings.TrimSpace(arg))
		if name == componentAll {
			for _, c := range order {
				wanted[c] = true
			}
			continue
		}
		if !contains(order, name) {
			return nil, fmt.Errorf(messages.CLIUnknownComponentFmt, arg, strings.Join(append(order, componentAll), ", "))
		}
		wanted[name] = true
	}

	selected := make([]string, 0, len(wanted))
	for _, c := range order {
		if wanted[c] {
			selected = append(selected, c)
		}
	}
	return selected, nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func printResult(out io.Writer, res install.Result) {
	var status string
	switch res.Outcome {
	case install.Success:
		status = color.GreenString(res.Outcome.String())
	case install.OptedOut:
		status = color.YellowString(res.Outcome.String())
	default:
		status = color.RedString(res.Outcome.String())
	}
	_, _ = fmt.Fprintf(out, messages.CLIResultFmt, res.Component, status)
	if res.Err != nil {
		_, _ = fmt.Fprintf(out, messages.CLIResultErrorFmt, res.Err)
	}
}

// interrupted reports whether the confirmer saw Ctrl+C.
func interrupted(confirm install.Confirmer) bool {
	i, ok := confirm.(interface{ Interrupted() bool })
	return ok && i.Interrupted()
}
