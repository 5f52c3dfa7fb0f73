// Released under an MIT license. See LICENSE.

// Package observer provides the observers wired into the engine at
// startup: a logging sink and an auto-save trigger.
package observer

import (
	"log/slog"

	"github.com/michaelmacinnis/adapted"

	"github.com/reckon-calc/reckon/internal/history"
)

// Logging writes one log line per calculation.
type Logging struct {
	log *slog.Logger
}

// NewLogging creates a logging observer that writes through log.
func NewLogging(log *slog.Logger) *Logging {
	return &Logging{log: log}
}

// Notify logs the record r.
func (l *Logging) Notify(r history.Record) {
	l.log.Info("calculation",
		"op", r.Op.Name(),
		"seq", r.Seq,
		"result", r.Result.String(),
		"description", adapted.CanonicalString(r.Description()),
	)
}

// AutoSave persists the history after every calculation.
type AutoSave struct {
	save func() error
	log  *slog.Logger
}

// NewAutoSave creates an auto-save observer around the save hook.
func NewAutoSave(save func() error, log *slog.Logger) *AutoSave {
	return &AutoSave{save: save, log: log}
}

// Notify saves the history. Failures are logged, not raised; the
// calculation that triggered the save has already completed.
func (a *AutoSave) Notify(history.Record) {
	if err := a.save(); err != nil {
		a.log.Error("auto-save failed", "error", err)
	}
}
