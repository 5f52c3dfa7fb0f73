// Released under an MIT license. See LICENSE.

// Package history provides reckon's calculation log: immutable
// records plus a store with linear undo/redo.
package history

import (
	"fmt"
	"iter"
	"time"

	"github.com/reckon-calc/reckon/internal/op"
	"github.com/reckon-calc/reckon/internal/type/num"
)

// Record is one executed calculation. Records are created by the
// engine after a successful operation and never mutated.
type Record struct {
	Op     op.T
	Left   *num.T
	Right  *num.T
	Result *num.T
	Seq    int
	Time   time.Time
}

// Description renders the record r as one human-readable line,
// "Addition(5, 3) = 8" for example.
func (r Record) Description() string {
	return fmt.Sprintf("%s(%s, %s) = %s", r.Op.Display(), r.Left, r.Right, r.Result)
}

// Store is the ordered sequence of records along with the redo
// buffer. The visible records double as the undo stack: undo pops
// the newest record onto the redo buffer, redo pushes it back.
// History is linear; there is never a tree of redo branches.
type Store struct {
	records []Record
	redo    []Record
	seq     int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append assigns the next sequence number to the record r and adds it
// to the store. Appending invalidates the redo buffer: redo is only
// valid immediately after an undo.
func (s *Store) Append(r Record) Record {
	s.seq++
	r.Seq = s.seq

	s.records = append(s.records, r)
	s.redo = nil

	return r
}

// Undo moves the newest record to the redo buffer. An empty history
// is a normal outcome, not a failure.
func (s *Store) Undo() bool {
	if len(s.records) == 0 {
		return false
	}

	last := len(s.records) - 1

	s.redo = append(s.redo, s.records[last])
	s.records = s.records[:last]

	return true
}

// Redo moves the most recently undone record back into the history.
func (s *Store) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}

	last := len(s.redo) - 1

	s.records = append(s.records, s.redo[last])
	s.redo = s.redo[:last]

	return true
}

// Clear empties the history and both buffers. Anything persisted on
// disk is untouched.
func (s *Store) Clear() {
	s.records = nil
	s.redo = nil
	s.seq = 0
}

// Len returns the number of visible records.
func (s *Store) Len() int {
	return len(s.records)
}

// All returns a snapshot of the visible records in chronological
// order.
func (s *Store) All() []Record {
	snapshot := make([]Record, len(s.records))
	copy(snapshot, s.records)

	return snapshot
}

// Replace swaps in the records rs, resetting the redo buffer and the
// sequence counter. Used when rehydrating from disk.
func (s *Store) Replace(rs []Record) {
	s.records = rs
	s.redo = nil

	s.seq = 0
	for _, r := range rs {
		if r.Seq > s.seq {
			s.seq = r.Seq
		}
	}
}

// Lines yields one description per visible record, in chronological
// order. The sequence is lazy and can be ranged over more than once.
func (s *Store) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, r := range s.records {
			if !yield(r.Description()) {
				return
			}
		}
	}
}
