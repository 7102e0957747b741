package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neodefaults/neodefaults-installer/internal/install"
	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

func newPreviewCmd(opts *globalOptions) *cobra.Command {
	var lines int
	cmd := &cobra.Command{
		Use:   messages.PreviewUse,
		Short: messages.PreviewShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.Close()

			root, err := s.locateRoot(cmd)
			if err != nil {
				return err
			}
			installed := s.cfg.InstallPaths(root).DestConfig
			preview, err := s.orch.Patcher(root).Preview(installed, lines)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.CLIPreviewTargetFmt, preview.Target)
			if !preview.Exists {
				_, _ = fmt.Fprintln(out, messages.CLIPreviewNewFile)
			}
			if preview.UnifiedDiff == "" {
				_, _ = fmt.Fprintln(out, messages.CLIPreviewNoChange)
				return nil
			}
			_, _ = fmt.Fprint(out, preview.UnifiedDiff)
			if preview.Truncated {
				_, _ = fmt.Fprintln(out, messages.CLIPreviewTruncated)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&lines, "lines", install.DefaultDiffMaxLines, messages.FlagLines)
	return cmd
}
