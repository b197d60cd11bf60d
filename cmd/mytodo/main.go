package main

import (
	"os"

	"github.com/Makepad-fr/mytodo/internal/cli"
)

func main() {
	// No subcommand => interactive TUI; `batch` runs a script headless.
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
