// Released under an MIT license. See LICENSE.

// Package histfile loads and saves the command-recall history used by
// the interactive line editor.
package histfile

import (
	"io"
	"os"
)

// Load opens the file at path and hands it to read.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save creates the file at path and hands it to write.
func Save(path string, write func(w io.Writer) (int, error)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
