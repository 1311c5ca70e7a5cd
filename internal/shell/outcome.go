// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"
)

// OutcomeKind classifies the result of dispatching one command.
type OutcomeKind int

const (
	// OutcomeContinue means the command completed; prompt again.
	OutcomeContinue OutcomeKind = iota
	// OutcomeRecoverable means print Message and prompt again.
	OutcomeRecoverable
	// OutcomeExit means stop with status Code.
	OutcomeExit
	// OutcomeFatal means report Err and stop with a non-zero status.
	OutcomeFatal
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeContinue:
		return "continue"
	case OutcomeRecoverable:
		return "recoverable"
	case OutcomeExit:
		return "exit"
	case OutcomeFatal:
		return "fatal"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is what the loop does next.
type Outcome struct {
	Kind    OutcomeKind
	Message string
	Code    int
	Err     error
}

func proceed() Outcome {
	return Outcome{Kind: OutcomeContinue}
}

func recoverable(format string, args ...any) Outcome {
	return Outcome{Kind: OutcomeRecoverable, Message: fmt.Sprintf(format, args...)}
}

func exitWith(code int) Outcome {
	return Outcome{Kind: OutcomeExit, Code: code}
}

func fatal(err error) Outcome {
	return Outcome{Kind: OutcomeFatal, Err: err}
}

// FatalStatus is the process status after a fatal error.
const FatalStatus = 1

// ExitError is returned by Run when the exit built-in stops the loop.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode returns the requested status.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// FatalError is returned by Run when an unrecoverable error stops the loop.
// It has already been reported on the shell's output.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// ExitCode returns FatalStatus.
func (e *FatalError) ExitCode() int {
	return FatalStatus
}
