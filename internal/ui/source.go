// Released under an MIT license. See LICENSE.

package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/reckon-calc/reckon/internal/system/histfile"
)

// errInterrupted reports that the user interrupted the current read
// (Ctrl+C). The session continues.
var errInterrupted = errors.New("interrupted")

// source produces one line of input per call.
type source interface {
	Line(prompt string) (string, error)
	Close() error
}

// linerSource reads from the terminal with editing and recall.
type linerSource struct {
	cli  *liner.State
	path string
}

func newLinerSource(histPath string) *linerSource {
	cli := liner.NewLiner()
	cli.SetCtrlCAborts(true)

	// Best effort; a missing recall file is normal on first run.
	_ = histfile.Load(histPath, cli.ReadHistory)

	return &linerSource{cli: cli, path: histPath}
}

func (s *linerSource) Line(prompt string) (string, error) {
	line, err := s.cli.Prompt(prompt)

	switch err {
	case nil:
		if strings.TrimSpace(line) != "" {
			s.cli.AppendHistory(line)
		}

		return line, nil
	case liner.ErrPromptAborted:
		return "", errInterrupted
	default:
		return "", err
	}
}

func (s *linerSource) Close() error {
	err := histfile.Save(s.path, s.cli.WriteHistory)

	if cerr := s.cli.Close(); err == nil {
		err = cerr
	}

	return err
}

// scannerSource reads lines from a plain reader. Prompts are still
// written so piped sessions mirror interactive ones.
type scannerSource struct {
	s   *bufio.Scanner
	out io.Writer
}

func newScannerSource(in io.Reader, out io.Writer) *scannerSource {
	return &scannerSource{s: bufio.NewScanner(in), out: out}
}

func (s *scannerSource) Line(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)

	if !s.s.Scan() {
		if err := s.s.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return s.s.Text(), nil
}

func (s *scannerSource) Close() error {
	return nil
}
