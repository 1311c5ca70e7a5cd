// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matt-FFFFFF/minish"
	"github.com/matt-FFFFFF/minish/internal/ctxlog"
	"github.com/matt-FFFFFF/minish/internal/linereader"
	"github.com/matt-FFFFFF/minish/internal/shell"
	"github.com/urfave/cli/v3"
)

const (
	commandFlag   = "command"
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
	promptFlag    = "prompt"

	logFormatPretty = "pretty"
	logFormatJSON   = "json"
)

var (
	// ErrInvalidLogLevel is returned when --log-level is not a known level.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat is returned when --log-format is not pretty or json.
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// newRootCmd builds the root command. Exit codes are left to the caller, so
// shell.ExitError and shell.FatalError come back from Run untouched.
func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:  "minish",
		Usage: "a minimal interactive command interpreter",
		Description: `minish reads a line, runs it as one of the built-in commands
(exit, echo, type, pwd, cd) or as a program found on PATH, prints the result
and prompts again. End of input exits with status 0.`,
		Version:   fmt.Sprintf("%s (commit: %s)", minish.Version, minish.Commit),
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Reader:    os.Stdin,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     commandFlag,
				Aliases:  []string{"c"},
				Usage:    "Run a single line and exit with its status",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:  logLevelFlag,
				Usage: "Diagnostic log level: DEBUG, INFO, WARN or ERROR. Overrides " + ctxlog.EnvVarName(),
			},
			&cli.StringFlag{
				Name:  logFormatFlag,
				Usage: "Diagnostic log format: pretty or json",
				Value: logFormatPretty,
			},
			&cli.StringFlag{
				Name:  promptFlag,
				Usage: "Prompt written before each line is read",
				Value: shell.DefaultPrompt,
			},
		},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action:         actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	ctx, err := configureLogging(ctx, cmd)
	if err != nil {
		return err
	}

	in, out := cmd.Root().Reader, cmd.Root().Writer
	opts := []shell.Option{shell.WithPrompt(cmd.String(promptFlag))}

	if cmd.IsSet(commandFlag) {
		// -c never reads input, so keep the terminal out of liner's hands
		opts = append(opts, shell.WithReader(linereader.NewBuffered(strings.NewReader(""), io.Discard)))

		return shell.New(in, out, opts...).RunLine(ctx, cmd.String(commandFlag))
	}

	return shell.New(in, out, opts...).Run(ctx)
}

func configureLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if lvl := cmd.String(logLevelFlag); lvl != "" {
		level, ok := ctxlog.ParseLevel(lvl)
		if !ok {
			return ctx, fmt.Errorf("%w: %q", ErrInvalidLogLevel, lvl)
		}

		ctxlog.LevelVar.Set(level)
	}

	switch format := cmd.String(logFormatFlag); format {
	case logFormatPretty:
		return ctxlog.New(ctx, ctxlog.DefaultLogger), nil
	case logFormatJSON:
		return ctxlog.New(ctx, ctxlog.JSONLogger), nil
	default:
		return ctx, fmt.Errorf("%w: %q", ErrInvalidLogFormat, format)
	}
}
