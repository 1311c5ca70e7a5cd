// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package launcher

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"runtime"
	"testing"

	"github.com/matt-FFFFFF/minish/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("launcher tests use /bin/sh")
	}

	ctxlog.LevelVar.Set(slog.LevelDebug)
	t.Cleanup(func() { ctxlog.LevelVar.Set(slog.LevelWarn) })

	return ctxlog.New(context.Background(), ctxlog.DefaultLogger)
}

func TestOutput(t *testing.T) {
	tests := []struct {
		name string
		path string
		args []string
		want string
	}{
		{
			name: "captures stdout",
			path: "/bin/echo",
			args: []string{"hello", "world"},
			want: "hello world\n",
		},
		{
			name: "no arguments",
			path: "/bin/echo",
			want: "\n",
		},
		{
			name: "stderr is discarded",
			path: "/bin/sh",
			args: []string{"-c", "echo err >&2; echo out"},
			want: "out\n",
		},
		{
			name: "exit status is not an error",
			path: "/bin/sh",
			args: []string{"-c", "echo partial; exit 3"},
			want: "partial\n",
		},
		{
			name: "stdin is empty",
			path: "/bin/sh",
			args: []string{"-c", "cat; echo done"},
			want: "done\n",
		},
		{
			name: "argv zero is the base name",
			path: "/bin/sh",
			args: []string{"-c", `echo "$0"`},
			want: "sh\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			p := &Process{Path: tt.path, Args: tt.args}

			out, err := p.Output(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestOutput_LargeOutput(t *testing.T) {
	ctx := testContext(t)

	// larger than a pipe buffer, so the child blocks unless we read while it runs
	p := &Process{Path: "/bin/sh", Args: []string{"-c", "i=0; while [ $i -lt 20000 ]; do echo 0123456789; i=$((i+1)); done"}}

	out, err := p.Output(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 20000*11)
}

func TestOutput_InvalidUTF8(t *testing.T) {
	ctx := testContext(t)
	p := &Process{Path: "/bin/sh", Args: []string{"-c", `printf '\377\376'`}}

	_, err := p.Output(ctx)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestOutput_NotFound(t *testing.T) {
	ctx := testContext(t)
	p := &Process{Path: "/not/a/real/command"}

	_, err := p.Output(ctx)
	require.ErrorIs(t, err, ErrCouldNotStartProcess)

	var pathErr *os.PathError
	assert.ErrorAs(t, err, &pathErr)
}

func TestOutput_NotExecutable(t *testing.T) {
	ctx := testContext(t)

	p := &Process{Path: t.TempDir()}

	_, err := p.Output(ctx)
	assert.ErrorIs(t, err, ErrCouldNotStartProcess)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRun(t *testing.T) {
	ctx := testContext(t)
	p := &Process{Path: "/bin/echo", Args: []string{"-n", "verbatim  text"}}

	var buf bytes.Buffer
	require.NoError(t, p.Run(ctx, &buf))
	assert.Equal(t, "verbatim  text", buf.String())

	assert.Error(t, p.Run(ctx, failingWriter{}))
}

func TestRun_PropagatesOutputError(t *testing.T) {
	ctx := testContext(t)
	p := &Process{Path: "/not/a/real/command"}

	var buf bytes.Buffer
	assert.ErrorIs(t, p.Run(ctx, &buf), ErrCouldNotStartProcess)
	assert.Empty(t, buf.String())
}
