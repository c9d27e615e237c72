// Command abcdb is the CLI entry point; the command tree itself lives in
// package cmd so it can be imported and tested without exec'ing a binary.
package main

import (
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/theabolton/abcdb/cmd"
)

func main() {
	if err := cmd.RootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
