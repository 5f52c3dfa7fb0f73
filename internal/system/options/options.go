// Released under an MIT license. See LICENSE.

// Package options parses reckon's command line and decides whether
// the session is interactive.
package options

import (
	"os"
	"path/filepath"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

const version = "reckon 0.1.0"

//nolint:gochecknoglobals
var (
	interactive bool
	stateDir    string
	usage       = `reckon - an interactive calculator

Usage:
  reckon [--state=DIR]
  reckon -h | --help
  reckon -v | --version

Options:
  --state=DIR  Directory for the history journal, command recall, and
               log files. Defaults to ~/.reckon.
  -h, --help     Display this help.
  -v, --version  Print reckon version.

If reckon's stdin is a TTY, line editing and command recall are
enabled. Otherwise commands are read directly from stdin.
`
)

// Interactive returns true if stdin is a terminal.
func Interactive() bool {
	return interactive
}

// Parse processes the command line.
func Parse() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	stateDir, _ = opts.String("--state")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}

		stateDir = filepath.Join(home, ".reckon")
	}

	interactive = isatty.IsTerminal(os.Stdin.Fd())
}

// StateDir returns the directory holding reckon's on-disk state.
func StateDir() string {
	return stateDir
}
