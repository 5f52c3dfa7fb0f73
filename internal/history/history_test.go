// Released under an MIT license. See LICENSE.

package history

import (
	"testing"
	"time"

	"github.com/reckon-calc/reckon/internal/op"
	"github.com/reckon-calc/reckon/internal/type/num"
)

func record(t *testing.T, name, left, right, result string) Record {
	t.Helper()

	o, err := op.Create(name)
	if err != nil {
		t.Fatal(err)
	}

	parse := func(s string) *num.T {
		v, err := num.Parse(s)
		if err != nil {
			t.Fatal(err)
		}

		return v
	}

	return Record{
		Op:     o,
		Left:   parse(left),
		Right:  parse(right),
		Result: parse(result),
		Time:   time.Now(),
	}
}

func TestDescription(t *testing.T) {
	r := record(t, "add", "5", "3", "8")

	if got := r.Description(); got != "Addition(5, 3) = 8" {
		t.Errorf("Description() = %q", got)
	}

	r = record(t, "subtract", "10", "4", "6")

	if got := r.Description(); got != "Subtraction(10, 4) = 6" {
		t.Errorf("Description() = %q", got)
	}
}

func TestAppendAssignsSequence(t *testing.T) {
	s := NewStore()

	first := s.Append(record(t, "add", "1", "2", "3"))
	second := s.Append(record(t, "add", "2", "3", "5"))

	if first.Seq != 1 || second.Seq != 2 {
		t.Errorf("sequence numbers %d, %d; want 1, 2", first.Seq, second.Seq)
	}
}

func TestUndoRedo(t *testing.T) {
	s := NewStore()

	if s.Undo() {
		t.Error("Undo() on empty store = true")
	}

	if s.Redo() {
		t.Error("Redo() on empty store = true")
	}

	s.Append(record(t, "add", "5", "3", "8"))

	if !s.Undo() {
		t.Fatal("Undo() = false after append")
	}

	if s.Len() != 0 {
		t.Errorf("Len() = %d after undo; want 0", s.Len())
	}

	if !s.Redo() {
		t.Fatal("Redo() = false immediately after undo")
	}

	if s.Len() != 1 {
		t.Errorf("Len() = %d after redo; want 1", s.Len())
	}
}

func TestAppendInvalidatesRedo(t *testing.T) {
	s := NewStore()

	s.Append(record(t, "add", "5", "3", "8"))
	s.Undo()
	s.Append(record(t, "multiply", "4", "5", "20"))

	if s.Redo() {
		t.Error("Redo() = true after an intervening append")
	}
}

func TestClear(t *testing.T) {
	s := NewStore()

	s.Append(record(t, "add", "5", "3", "8"))
	s.Append(record(t, "add", "2", "2", "4"))
	s.Undo()

	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len() = %d after clear; want 0", s.Len())
	}

	if s.Redo() {
		t.Error("Redo() = true after clear")
	}

	// The sequence restarts too.
	r := s.Append(record(t, "add", "1", "1", "2"))
	if r.Seq != 1 {
		t.Errorf("Seq = %d after clear; want 1", r.Seq)
	}
}

func TestLinesIsRestartable(t *testing.T) {
	s := NewStore()

	s.Append(record(t, "add", "5", "3", "8"))
	s.Append(record(t, "divide", "10", "2", "5"))

	lines := s.Lines()

	first := collect(lines)
	second := collect(lines)

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("lengths %d, %d; want 2, 2", len(first), len(second))
	}

	if first[0] != "Addition(5, 3) = 8" || first[1] != "Division(10, 2) = 5" {
		t.Errorf("lines = %q", first)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Error("second pass differs from first")
		}
	}
}

func TestReplace(t *testing.T) {
	s := NewStore()
	s.Append(record(t, "add", "1", "1", "2"))
	s.Undo()

	restored := record(t, "multiply", "4", "5", "20")
	restored.Seq = 7

	s.Replace([]Record{restored})

	if s.Len() != 1 {
		t.Fatalf("Len() = %d; want 1", s.Len())
	}

	if s.Redo() {
		t.Error("Redo() = true after replace")
	}

	next := s.Append(record(t, "add", "1", "1", "2"))
	if next.Seq != 8 {
		t.Errorf("Seq = %d after replace; want 8", next.Seq)
	}
}

func collect(lines func(func(string) bool)) []string {
	var out []string

	for line := range lines {
		out = append(out, line)
	}

	return out
}
