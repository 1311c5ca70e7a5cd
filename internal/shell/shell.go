// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/minish/internal/command"
	"github.com/matt-FFFFFF/minish/internal/ctxlog"
	"github.com/matt-FFFFFF/minish/internal/environ"
	"github.com/matt-FFFFFF/minish/internal/linereader"
	"github.com/matt-FFFFFF/minish/internal/resolver"
)

// DefaultPrompt is written before every read.
const DefaultPrompt = "$ "

// Shell holds what the loop needs between iterations. The working directory is
// process state and is not held here.
type Shell struct {
	reader   linereader.Reader
	out      io.Writer
	env      environ.Lookup
	resolver *resolver.Resolver
	prompt   string
}

// Option implements a functional options pattern for Shell.
type Option func(s *Shell)

// WithEnv replaces the environment lookup used for PATH and HOME.
func WithEnv(env environ.Lookup) Option {
	return func(s *Shell) {
		s.env = env
	}
}

// WithPrompt replaces DefaultPrompt.
func WithPrompt(prompt string) Option {
	return func(s *Shell) {
		s.prompt = prompt
	}
}

// WithReader replaces the line reader chosen by New.
func WithReader(r linereader.Reader) Option {
	return func(s *Shell) {
		s.reader = r
	}
}

// New creates a shell reading lines from in and writing everything it prints to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		out:    out,
		env:    environ.OS,
		prompt: DefaultPrompt,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.reader == nil {
		s.reader = linereader.ForStdio(in, out)
	}

	s.resolver = resolver.New(s.env)

	return s
}

// Run loops until exit, end of input or a fatal error.
// It returns nil on end of input, *ExitError on exit and *FatalError otherwise.
func (s *Shell) Run(ctx context.Context) (err error) {
	defer func() {
		if cerr := s.reader.Close(); cerr != nil {
			err = multierror.Append(err, cerr)
		}
	}()

	for {
		line, rerr := s.reader.ReadLine(s.prompt)
		if errors.Is(rerr, io.EOF) {
			ctxlog.Debug(ctx, "end of input")
			return nil
		}

		if rerr != nil {
			return s.finish(fatal(rerr))
		}

		if done := s.finish(s.Execute(ctx, line)); done != nil {
			return done
		}
	}
}

// RunLine executes a single line as if it had been typed at the prompt.
func (s *Shell) RunLine(ctx context.Context, line string) error {
	return s.finish(s.Execute(ctx, line))
}

// Execute classifies and dispatches one line. Trailing whitespace is
// removed before classification.
func (s *Shell) Execute(ctx context.Context, line string) Outcome {
	cmd, err := command.Classify(strings.TrimRightFunc(line, unicode.IsSpace))
	if err != nil {
		return fatal(err)
	}

	ctxlog.Debug(ctx, "dispatching", "command", cmd.Name(), "type", fmt.Sprintf("%T", cmd))

	switch c := cmd.(type) {
	case command.Exit:
		return exitWith(c.Code)
	case command.Echo:
		return s.echo(c)
	case command.Type:
		return s.typeOf(ctx, c)
	case command.Pwd:
		return s.pwd()
	case command.Cd:
		return s.cd(c)
	case command.External:
		return s.external(ctx, c)
	default:
		return fatal(fmt.Errorf("unhandled command %T", cmd))
	}
}

// finish acts on an outcome. It returns nil when the loop should continue.
func (s *Shell) finish(o Outcome) error {
	switch o.Kind {
	case OutcomeContinue:
		return nil
	case OutcomeRecoverable:
		if _, err := fmt.Fprintln(s.out, o.Message); err != nil {
			return s.finish(fatal(fmt.Errorf("%w: %w", ErrWriteOutput, err)))
		}

		return nil
	case OutcomeExit:
		return &ExitError{Code: o.Code}
	default:
		// best effort
		_, _ = fmt.Fprintf(s.out, "fatal error: %s\n", o.Err)

		return &FatalError{Err: o.Err}
	}
}
