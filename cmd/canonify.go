package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theabolton/abcdb/canonify"
	"github.com/theabolton/abcdb/log"
)

func init() {
	canonifyCommand := &cobra.Command{
		Use:   "canonify [file]",
		Short: "Canonify ABC music-code lines",
		Long: "Reads one ABC music-code line per line of input (a file argument, " +
			"or stdin if none is given) and writes the canonical form of each to " +
			"stdout. A line that fails to parse is reported to stderr and does not " +
			"stop the remaining lines from being processed.",
		Args: cobra.MaximumNArgs(1),
		RunE: runCanonify,
	}
	RootCommand.AddCommand(canonifyCommand)
}

func runCanonify(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	scanner := bufio.NewScanner(in)

	failures := 0
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		result, err := canonify.Canonify(line)
		if err != nil {
			failures++
			log.WithField("line", lineno).Debug("canonify failed")
			fmt.Fprintf(errOut, "line %d: %v\n", lineno, err)
			continue
		}
		fmt.Fprintln(out, result)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d line(s) failed to parse", failures, lineno)
	}
	return nil
}
