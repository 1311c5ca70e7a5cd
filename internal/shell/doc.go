// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell is the read, classify and dispatch loop.
//
// Each line becomes a command.Command, and dispatching it yields an Outcome.
// A recoverable outcome prints one line and the loop continues. An exit or
// fatal outcome ends the loop, and Run returns an *ExitError or *FatalError
// carrying the process status. End of input ends the loop with a nil error.
package shell
