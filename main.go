/*
Reckon is an interactive command-line calculator. It reads one command
per line, performs exact decimal arithmetic, and keeps a reversible
history of calculations:

    > add
    Enter numbers (or 'cancel' to abort):
    First number: 5
    Second number: 3
    Result: 8
    > undo
    Operation undone

History persists across sessions and can be managed with the history,
clear, undo, redo, save, and load commands.

Reckon is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/reckon-calc/reckon/internal/engine"
	"github.com/reckon-calc/reckon/internal/engine/observer"
	"github.com/reckon-calc/reckon/internal/system/options"
	"github.com/reckon-calc/reckon/internal/ui"
)

func main() {
	options.Parse()

	if err := run(); err != nil {
		fmt.Printf("Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	eng, logger, err := setup(options.StateDir())
	if err != nil {
		return err
	}

	eng.AddObserver(observer.NewLogging(logger))
	eng.AddObserver(observer.NewAutoSave(eng.SaveHistory, logger))

	if err := eng.LoadHistory(); err != nil {
		fmt.Printf("Warning: Could not load history: %v\n", err)
	}

	fmt.Println("Calculator started. Type 'help' for commands.")

	session(eng).Run()

	return nil
}

// setup creates the state directory, the session logger, and the
// engine. Any failure here is fatal.
func setup(dir string) (*engine.T, *slog.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(
		filepath.Join(dir, "reckon.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644,
	)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(f, nil))

	eng, err := engine.New(dir, logger)
	if err != nil {
		return nil, nil, err
	}

	return eng, logger, nil
}

func session(eng *engine.T) *ui.T {
	if options.Interactive() {
		return ui.Interactive(eng, filepath.Join(options.StateDir(), "input_history"))
	}

	return ui.Batch(eng, os.Stdin, os.Stdout)
}
