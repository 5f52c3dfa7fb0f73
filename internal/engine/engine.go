// Released under an MIT license. See LICENSE.

// Package engine provides reckon's calculation engine: it executes
// the current operation, owns the history, and notifies observers.
package engine

import (
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/reckon-calc/reckon/internal/errs"
	"github.com/reckon-calc/reckon/internal/history"
	"github.com/reckon-calc/reckon/internal/op"
	"github.com/reckon-calc/reckon/internal/system/journal"
	"github.com/reckon-calc/reckon/internal/type/num"
)

// Observer is notified after every successful calculation. Observers
// run synchronously, in registration order.
type Observer interface {
	Notify(r history.Record)
}

// T (engine) drives calculations for one session.
type T struct {
	current   op.T
	selected  bool
	store     *history.Store
	observers []Observer
	journal   string
	log       *slog.Logger
}

type engine = T

// New creates an engine whose history journal lives under stateDir.
// Failure to create the state directory is the one fatal error in the
// calculator's lifecycle.
func New(stateDir string, log *slog.Logger) (*T, error) {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, err
	}

	if log == nil {
		log = slog.Default()
	}

	return &engine{
		store:   history.NewStore(),
		journal: filepath.Join(stateDir, "history.json"),
		log:     log,
	}, nil
}

// AddObserver registers the observer o. Multiple observers may be
// registered; they are notified in registration order.
func (e *engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// SetOperation replaces the engine's current operation.
func (e *engine) SetOperation(o op.T) {
	e.current = o
	e.selected = true
}

// Perform parses both operands, executes the current operation, and
// on success appends a record to the history and notifies observers.
// A failed operation never touches the history.
func (e *engine) Perform(leftRaw, rightRaw string) (*num.T, error) {
	if !e.selected {
		return nil, errs.NewOperation("no operation selected")
	}

	left, err := parse(leftRaw)
	if err != nil {
		return nil, err
	}

	right, err := parse(rightRaw)
	if err != nil {
		return nil, err
	}

	result, err := e.current.Apply(left, right)
	if err != nil {
		return nil, err
	}

	r := e.store.Append(history.Record{
		Op:     e.current,
		Left:   left,
		Right:  right,
		Result: result,
		Time:   time.Now(),
	})

	for _, o := range e.observers {
		e.notify(o, r)
	}

	return result, nil
}

// notify isolates each observer call: a panicking observer cannot
// corrupt the history or abort the calculation that triggered it.
func (e *engine) notify(o Observer, r history.Record) {
	defer func() {
		if p := recover(); p != nil {
			e.log.Error("observer panicked", "panic", p)
		}
	}()

	o.Notify(r)
}

// Undo removes the most recent calculation from the visible history.
func (e *engine) Undo() bool {
	return e.store.Undo()
}

// Redo restores the most recently undone calculation.
func (e *engine) Redo() bool {
	return e.store.Redo()
}

// ShowHistory yields one line per calculation, oldest first.
func (e *engine) ShowHistory() iter.Seq[string] {
	return e.store.Lines()
}

// ClearHistory empties the in-memory history. The journal on disk is
// untouched until the next save.
func (e *engine) ClearHistory() {
	e.store.Clear()
}

// SaveHistory writes the history to the journal file.
func (e *engine) SaveHistory() error {
	return journal.Save(e.journal, e.store.All())
}

// LoadHistory replaces the history with the journal's contents.
func (e *engine) LoadHistory() error {
	records, err := journal.Load(e.journal)
	if err != nil {
		return err
	}

	e.store.Replace(records)

	return nil
}

func parse(raw string) (*num.T, error) {
	n, err := num.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, errs.NewValidation(fmt.Sprintf("Invalid number: '%s'", strings.TrimSpace(raw)))
	}

	return n, nil
}
