package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at release-build time via -ldflags; it defaults to
// "dev" for a development build.
var Version = "dev"

func init() {
	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Print the abcdb version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "abcdb "+Version)
			return err
		},
	}
	RootCommand.AddCommand(versionCommand)
}
