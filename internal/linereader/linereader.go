// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package linereader prints a prompt and reads one line of input.
//
// On an interactive terminal lines are read through github.com/peterh/liner, which
// gives cursor movement and editing. Anything else (pipes, files, tests) is read
// with a buffered reader. Either way the returned line has its terminator removed
// and nothing else.
package linereader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// ErrRead is returned when input could not be read for a reason other than end of input.
var ErrRead = errors.New("failed to read input")

// Reader reads lines after printing a prompt. ReadLine returns io.EOF once input
// is exhausted.
type Reader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// ForStdio returns a terminal reader when in and stdout are both the process's
// terminal, and a buffered reader otherwise.
func ForStdio(in io.Reader, out io.Writer) Reader {
	if f, ok := in.(*os.File); ok && f == os.Stdin && out == os.Stdout &&
		term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return NewTerminal()
	}

	return NewBuffered(in, out)
}

// Buffered reads from any io.Reader and writes the prompt to out.
type Buffered struct {
	in  *bufio.Reader
	out io.Writer
	eof bool
}

var _ Reader = (*Buffered)(nil)

// NewBuffered creates a Buffered reader.
func NewBuffered(in io.Reader, out io.Writer) *Buffered {
	return &Buffered{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine writes prompt, then reads up to and including the next newline.
// A final line without a newline is returned as a line; the call after it
// returns io.EOF.
func (b *Buffered) ReadLine(prompt string) (string, error) {
	if b.eof {
		return "", io.EOF
	}

	if _, err := io.WriteString(b.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := b.in.ReadString('\n')

	switch {
	case errors.Is(err, io.EOF):
		b.eof = true
		if line == "" {
			return "", io.EOF
		}
	case err != nil:
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}

	return TrimTerminator(line), nil
}

// Close is a no-op; the underlying reader belongs to the caller.
func (b *Buffered) Close() error {
	return nil
}

// Terminal reads from the controlling terminal with line editing.
type Terminal struct {
	state *liner.State
}

var _ Reader = (*Terminal)(nil)

// NewTerminal puts the terminal under liner's control until Close is called.
func NewTerminal() *Terminal {
	state := liner.NewLiner()
	state.SetCtrlCAborts(false)

	return &Terminal{state: state}
}

// ReadLine shows prompt and returns the edited line. Ctrl-D on an empty line
// returns io.EOF.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	line, err := t.state.Prompt(prompt)
	if errors.Is(err, io.EOF) {
		return "", io.EOF
	}

	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}

	return TrimTerminator(line), nil
}

// Close restores the terminal mode.
func (t *Terminal) Close() error {
	return t.state.Close() //nolint:wrapcheck
}

// TrimTerminator removes one trailing "\n" or "\r\n".
func TrimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
