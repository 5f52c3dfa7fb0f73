// Released under an MIT license. See LICENSE.

package histfile

import (
	"io"
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input_history")

	err := Save(path, func(w io.Writer) (int, error) {
		return w.Write([]byte("add\nexit\n"))
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	var got []byte

	err = Load(path, func(r io.Reader) (int, error) {
		b, err := io.ReadAll(r)
		got = b

		return len(b), err
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if string(got) != "add\nexit\n" {
		t.Errorf("loaded %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "nope"), func(io.Reader) (int, error) {
		t.Error("read called for a missing file")

		return 0, nil
	})
	if err == nil {
		t.Error("expected error for a missing file")
	}
}
