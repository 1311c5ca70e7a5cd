// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package launcher runs an external program to completion and returns what it
// wrote to stdout.
//
// The child's stdin and stderr are attached to the null device. Its exit status
// is logged but not returned: only its standard output is shown to the user.
package launcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"github.com/matt-FFFFFF/minish/internal/ctxlog"
)

var (
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrFailedToCreatePipe is returned when the operating system pipe could not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
	// ErrFailedToReadOutput is returned when the child's stdout could not be read.
	ErrFailedToReadOutput = errors.New("failed to read process output")
	// ErrWaitFailed is returned when waiting for the process fails.
	ErrWaitFailed = errors.New("failed to wait for process")
	// ErrInvalidOutput is returned when the child's stdout is not valid UTF-8.
	ErrInvalidOutput = errors.New("process output is not valid utf-8")
)

// Process is one external program invocation.
type Process struct {
	// Path is the resolved executable.
	Path string
	// Args excludes the executable name itself.
	Args []string
}

// Output starts the process, reads its stdout until the child closes it, waits for
// it to exit and returns the captured bytes. There is no timeout.
func (p *Process) Output(ctx context.Context) ([]byte, error) {
	logger := ctxlog.Logger(ctx).With("path", p.Path)

	devNull, err := os.Open(os.DevNull)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCouldNotStartProcess, err)
	}
	defer devNull.Close() //nolint:errcheck

	devNullW, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCouldNotStartProcess, err)
	}
	defer devNullW.Close() //nolint:errcheck

	rOut, wOut, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToCreatePipe, err)
	}
	defer rOut.Close() //nolint:errcheck

	argv := slices.Concat([]string{filepath.Base(p.Path)}, p.Args)

	logger.Debug("starting process", "argv", argv)

	ps, err := os.StartProcess(p.Path, argv, &os.ProcAttr{
		Env:   os.Environ(),
		Files: []*os.File{devNull, wOut, devNullW},
	})

	// The child holds its own copy of the write end; ours must be closed for the
	// read below to see EOF.
	_ = wOut.Close()

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCouldNotStartProcess, err)
	}

	logger.Debug("process started", "pid", ps.Pid)

	var out bytes.Buffer

	_, readErr := io.Copy(&out, rOut)

	state, waitErr := ps.Wait()
	if waitErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrWaitFailed, waitErr)
	}

	logger.Debug("process finished", "exitCode", state.ExitCode(), "bytes", out.Len())

	if readErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadOutput, readErr)
	}

	if !utf8.Valid(out.Bytes()) {
		return nil, ErrInvalidOutput
	}

	return out.Bytes(), nil
}

// Run runs the process and writes its stdout to w unchanged.
func (p *Process) Run(ctx context.Context, w io.Writer) error {
	out, err := p.Output(ctx)
	if err != nil {
		return err
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write process output: %w", err)
	}

	return nil
}
