package main

import (
	"github.com/spf13/cobra"

	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	root       string
	assets     string
	dev        bool
	yes        bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, opts, []string{componentAll})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", messages.FlagConfig)
	flags.StringVar(&opts.root, "root", "", messages.FlagRoot)
	flags.StringVar(&opts.assets, "assets", "", messages.FlagAssets)
	flags.BoolVar(&opts.dev, "dev", false, messages.FlagDev)
	flags.BoolVarP(&opts.yes, "yes", "y", false, messages.FlagYes)
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, messages.FlagVerbose)

	cmd.AddCommand(
		newLocateCmd(opts),
		newInstallCmd(opts),
		newPreviewCmd(opts),
	)
	return cmd
}
