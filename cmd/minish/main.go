// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the minish command-line interface (CLI).
package main

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/minish/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)

	os.Exit(exitCode(ctx, newRootCmd().Run(ctx, os.Args)))
}

// exitCode maps the result of the root command to a process status.
// Shell exits and fatal errors carry their own status and have already been
// reported on stdout.
func exitCode(ctx context.Context, err error) int {
	if err == nil {
		return 0
	}

	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		ctxlog.Debug(ctx, "shell finished", "status", ec.ExitCode(), "error", err)
		return ec.ExitCode()
	}

	ctxlog.Error(ctx, "command execution failed", "error", err)

	return 1
}
