package cmd

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/theabolton/abcdb/canonify"
)

func init() {
	replCommand := &cobra.Command{
		Use:   "repl",
		Short: "Interactively canonify ABC music-code lines",
		Long:  "Reads one music-code line at a time, printing its canonical form or a diagnostic.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
	RootCommand.AddCommand(replCommand)
}

func runRepl() error {
	rl, err := readline.New("abcdb> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("Enter one ABC music-code line at a time. Ctrl-D to quit.")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			if errors.Is(err, io.EOF) {
				break
			}
			break
		}
		if line == "" {
			continue
		}
		result, cerr := canonify.Canonify(line)
		if cerr != nil {
			pterm.Error.Println(cerr.Error())
			continue
		}
		pterm.Success.Println(result)
	}
	pterm.Info.Println("Goodbye.")
	return nil
}
