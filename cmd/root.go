// Package cmd assembles the abcdb command-line tool: a cobra command tree
// (canonify, repl, serve, version) rooted at RootCommand, with each
// subcommand registering itself via AddCommand from its own file's init,
// leaving main.go to do nothing but call Execute.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/theabolton/abcdb/log"
)

// RootCommand is the base of the abcdb CLI; main.go only calls Execute on
// it, and each subcommand file's init() registers itself via AddCommand.
var RootCommand = &cobra.Command{
	Use:   "abcdb",
	Short: "Canonify ABC v2.1 music-code lines",
	Long:  "abcdb parses and rewrites single-line ABC music notation into canonical form.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindEnv(cmd); err != nil {
			return err
		}
		level, _ := cmd.Flags().GetString("log-level")
		if level == "" {
			level = "info"
		}
		return log.SetLevel(level)
	},
}

func init() {
	RootCommand.PersistentFlags().String("log-level", "info", "set log level (debug, info, warn, error)")
}

const envPrefix = "ABCDB"

// bindEnv binds cmd's own flags to ABCDB_<FLAG> environment variables: any
// flag the user left at its default picks up an environment override
// before the command runs, without clobbering an explicit command-line
// value.
func bindEnv(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	var errs []string
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		name := strings.ReplaceAll(f.Name, "-", "_")
		if !f.Changed && v.IsSet(name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(name))); err != nil {
				errs = append(errs, err.Error())
			}
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("error mapping environment variables to command flags: %s", strings.Join(errs, "; "))
	}
	return nil
}
