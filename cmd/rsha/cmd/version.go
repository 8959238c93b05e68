package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"massnet.org/rsha/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetVersion())
			return nil
		},
	}
}
