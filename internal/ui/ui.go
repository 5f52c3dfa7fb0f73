// Released under an MIT license. See LICENSE.

// Package ui provides the calculator's read-eval-print loop.
package ui

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/reckon-calc/reckon/internal/errs"
	"github.com/reckon-calc/reckon/internal/op"
	"github.com/reckon-calc/reckon/internal/type/num"
)

// Engine is the interface for the calculation engine the UI drives.
type Engine interface {
	SetOperation(o op.T)
	Perform(leftRaw, rightRaw string) (*num.T, error)
	Undo() bool
	Redo() bool
	ShowHistory() iter.Seq[string]
	ClearHistory()
	SaveHistory() error
	LoadHistory() error
}

// T (ui) runs one calculator session over a line source.
type T struct {
	eng Engine
	src source
	out io.Writer
}

type ui = T

// Interactive creates a session that reads from the terminal with
// line editing and command recall persisted at histPath.
func Interactive(eng Engine, histPath string) *T {
	return &ui{eng: eng, src: newLinerSource(histPath), out: os.Stdout}
}

// Batch creates a session that reads lines directly from in. Used
// when stdin is not a terminal.
func Batch(eng Engine, in io.Reader, out io.Writer) *T {
	return &ui{eng: eng, src: newScannerSource(in, out), out: out}
}

// Run drives the session until exit or end of input. No error ever
// escapes a single iteration: everything is converted to a printed
// message and the loop continues.
func (u *ui) Run() {
	defer u.src.Close()

	for {
		line, err := u.src.Line("> ")

		switch {
		case errors.Is(err, errInterrupted):
			fmt.Fprintln(u.out, "Operation cancelled")

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(u.out, "Input terminated. Exiting...")

			return
		case err != nil:
			fmt.Fprintf(u.out, "Error: %v\n", err)

			continue
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if quit := u.dispatch(input); quit {
			return
		}
	}
}

func (u *ui) dispatch(input string) (quit bool) {
	switch strings.ToLower(input) {
	case "help":
		u.help()
	case "exit":
		u.exit()

		return true
	case "history":
		u.history()
	case "clear":
		u.eng.ClearHistory()
		fmt.Fprintln(u.out, "History cleared")
	case "undo":
		if u.eng.Undo() {
			fmt.Fprintln(u.out, "Operation undone")
		} else {
			fmt.Fprintln(u.out, "Nothing to undo")
		}
	case "redo":
		if u.eng.Redo() {
			fmt.Fprintln(u.out, "Operation redone")
		} else {
			fmt.Fprintln(u.out, "Nothing to redo")
		}
	case "save":
		if err := u.eng.SaveHistory(); err != nil {
			fmt.Fprintf(u.out, "Error saving history: %v\n", err)
		} else {
			fmt.Fprintln(u.out, "History saved successfully")
		}
	case "load":
		if err := u.eng.LoadHistory(); err != nil {
			fmt.Fprintf(u.out, "Error loading history: %v\n", err)
		} else {
			fmt.Fprintln(u.out, "History loaded successfully")
		}
	default:
		if op.Known(input) {
			return u.operation(strings.ToLower(input))
		}

		fmt.Fprintf(u.out, "Unknown command: '%s'. Type 'help' for available commands.\n", input)
	}

	return false
}

// operation collects two operands and performs the named operation.
// It returns true only when input ends mid-operation.
func (u *ui) operation(name string) (quit bool) {
	fmt.Fprintln(u.out, "\nEnter numbers (or 'cancel' to abort):")

	first, state := u.operand("First number: ")
	if state != entered {
		return state == exhausted
	}

	second, state := u.operand("Second number: ")
	if state != entered {
		return state == exhausted
	}

	o, err := op.Create(name)
	if err != nil {
		// dispatch only passes known names.
		fmt.Fprintf(u.out, "Unexpected error: %v\n", err)

		return false
	}

	u.eng.SetOperation(o)

	result, err := u.eng.Perform(first, second)

	switch {
	case err == nil:
		fmt.Fprintf(u.out, "\nResult: %s\n", result)
	case errs.IsValidation(err) || errs.IsOperation(err):
		fmt.Fprintf(u.out, "Error: %v\n", err)
	default:
		fmt.Fprintf(u.out, "Unexpected error: %v\n", err)
	}

	return false
}

// Outcomes of one operand prompt.
const (
	entered = iota
	cancelled
	exhausted
)

func (u *ui) operand(prompt string) (string, int) {
	line, err := u.src.Line(prompt)

	switch {
	case errors.Is(err, errInterrupted):
		fmt.Fprintln(u.out, "Operation cancelled")

		return "", cancelled
	case errors.Is(err, io.EOF):
		fmt.Fprintln(u.out, "Input terminated. Exiting...")

		return "", exhausted
	case err != nil:
		fmt.Fprintf(u.out, "Unexpected error: %v\n", err)

		return "", cancelled
	}

	input := strings.TrimSpace(line)
	if strings.EqualFold(input, "cancel") {
		fmt.Fprintln(u.out, "Operation cancelled")

		return "", cancelled
	}

	return input, entered
}

func (u *ui) exit() {
	if err := u.eng.SaveHistory(); err != nil {
		fmt.Fprintf(u.out, "Warning: Could not save history: %v\n", err)
	} else {
		fmt.Fprintln(u.out, "History saved successfully.")
	}

	fmt.Fprintln(u.out, "Goodbye!")
}

func (u *ui) history() {
	n := 0

	for line := range u.eng.ShowHistory() {
		if n == 0 {
			fmt.Fprintln(u.out, "\nCalculation History:")
		}

		n++

		fmt.Fprintf(u.out, "%d. %s\n", n, line)
	}

	if n == 0 {
		fmt.Fprintln(u.out, "No calculations in history")
	}
}

func (u *ui) help() {
	fmt.Fprint(u.out, `
Available commands:
  add, subtract, multiply, divide, power, root - Perform calculations
  history - Show calculation history
  clear - Clear calculation history
  undo - Undo the last calculation
  redo - Redo the last undone calculation
  save - Save calculation history to file
  load - Load calculation history from file
  exit - Exit the calculator

Type 'cancel' at a number prompt to abort the current operation.
`)
}
