// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// Records go to stderr so that they never interleave with what the shell prints on
// stdout. The default handler is a pretty console handler; a JSON handler is also
// available. The level is read from <EXE>_LOG_LEVEL, where <EXE> is the upper-cased
// executable name, and defaults to WARN.
package ctxlog
