package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

func newLocateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.LocateUse,
		Short: messages.LocateShort,
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
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), root)
			return nil
		},
	}
}
