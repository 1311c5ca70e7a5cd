// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/matt-FFFFFF/minish/internal/command"
	"github.com/matt-FFFFFF/minish/internal/environ"
	"github.com/matt-FFFFFF/minish/internal/launcher"
	"github.com/matt-FFFFFF/minish/internal/resolver"
)

var (
	// ErrHomeNotSet is returned by cd ~ when HOME is not set.
	ErrHomeNotSet = errors.New("environment variable not found: " + environ.Home)
	// ErrWriteOutput is returned when the shell cannot write to its output.
	ErrWriteOutput = errors.New("failed to write output")
)

func (s *Shell) echo(c command.Echo) Outcome {
	return s.println(c.Message)
}

func (s *Shell) typeOf(ctx context.Context, c command.Type) Outcome {
	res, err := s.resolver.Lookup(ctx, c.Target)
	if err != nil {
		return fatal(err)
	}

	switch res.Kind {
	case resolver.KindBuiltin:
		return s.println(c.Target + " is a shell builtin")
	case resolver.KindNotFound:
		return s.println(c.Target + " not found")
	default:
		return s.println(c.Target + " is " + res.Path)
	}
}

func (s *Shell) pwd() Outcome {
	dir, err := os.Getwd()
	if err != nil {
		return fatal(fmt.Errorf("failed to get working directory: %w", err))
	}

	return s.println(dir)
}

func (s *Shell) cd(c command.Cd) Outcome {
	target := c.Path

	if target == command.HomeShortcut {
		home, ok := s.env(environ.Home)
		if !ok {
			return fatal(ErrHomeNotSet)
		}

		target = home
	}

	if err := os.Chdir(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return recoverable("%s: No such file or directory", target)
		}

		return fatal(err)
	}

	return proceed()
}

func (s *Shell) external(ctx context.Context, c command.External) Outcome {
	res, err := s.resolver.Executable(ctx, c.Program)
	if err != nil {
		return fatal(err)
	}

	if !res.Found() {
		return recoverable("%s: command not found", c.Program)
	}

	p := &launcher.Process{
		Path: res.Path,
		Args: c.Args(),
	}

	if err := p.Run(ctx, s.out); err != nil {
		return fatal(err)
	}

	return proceed()
}

func (s *Shell) println(line string) Outcome {
	if _, err := fmt.Fprintln(s.out, line); err != nil {
		return fatal(fmt.Errorf("%w: %w", ErrWriteOutput, err))
	}

	return proceed()
}
