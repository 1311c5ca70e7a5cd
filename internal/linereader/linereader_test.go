// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linereader

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffered_ReadLine(t *testing.T) {
	var out bytes.Buffer

	r := NewBuffered(strings.NewReader("echo hi\r\n  spaced  \n\nlast"), &out)

	var lines []string

	for {
		line, err := r.ReadLine("$ ")
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)

		lines = append(lines, line)
	}

	assert.Equal(t, []string{"echo hi", "  spaced  ", "", "last"}, lines)
	assert.Equal(t, strings.Repeat("$ ", 4), out.String(), "no prompt once EOF has been seen")
	require.NoError(t, r.Close())
}

func TestBuffered_EOFIsSticky(t *testing.T) {
	var out bytes.Buffer

	r := NewBuffered(strings.NewReader(""), &out)

	_, err := r.ReadLine("$ ")
	assert.ErrorIs(t, err, io.EOF)

	_, err = r.ReadLine("$ ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "$ ", out.String())
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestBuffered_Errors(t *testing.T) {
	_, err := NewBuffered(errReader{}, io.Discard).ReadLine("$ ")
	assert.ErrorIs(t, err, ErrRead)

	_, err = NewBuffered(strings.NewReader("x\n"), errWriter{}).ReadLine("$ ")
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestForStdio_NonTerminal(t *testing.T) {
	r := ForStdio(strings.NewReader(""), io.Discard)
	_, ok := r.(*Buffered)
	assert.True(t, ok, "expected a buffered reader for non-terminal input")
}

func TestTrimTerminator(t *testing.T) {
	assert.Equal(t, "a", TrimTerminator("a\n"))
	assert.Equal(t, "a", TrimTerminator("a\r\n"))
	assert.Equal(t, "a ", TrimTerminator("a \n"))
	assert.Equal(t, "a\t", TrimTerminator("a\t"))
	assert.Equal(t, "a\n", TrimTerminator("a\n\n"))
}
