// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrMissingExitCode is returned when exit is given an empty argument.
	ErrMissingExitCode = errors.New("exit code is required")
	// ErrInvalidExitCode is returned when the exit argument is not an integer.
	ErrInvalidExitCode = errors.New("failed to parse exit code")
)

// Classify turns a line, with trailing whitespace already removed, into a Command.
// The only errors are the exit argument errors above.
func Classify(line string) (Command, error) {
	name, rest, found := strings.Cut(line, " ")
	if !found {
		if line == NamePwd {
			return Pwd{}, nil
		}

		return External{Program: line}, nil
	}

	switch name {
	case NameExit:
		code, err := parseExitCode(trimLeft(rest))
		if err != nil {
			return nil, err
		}

		return Exit{Code: code}, nil
	case NameEcho:
		return Echo{Message: rest}, nil
	case NameType:
		return Type{Target: trimLeft(rest)}, nil
	case NameCd:
		return Cd{Path: trimLeft(rest)}, nil
	default:
		return External{Program: name, RawArgs: rest, HasArgs: true}, nil
	}
}

// Args splits the raw argument string on runs of whitespace.
func (e External) Args() []string {
	if !e.HasArgs {
		return nil
	}

	return strings.Fields(e.RawArgs)
}

func parseExitCode(arg string) (int, error) {
	if arg == "" {
		return 0, ErrMissingExitCode
	}

	code, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return 0, ErrInvalidExitCode
	}

	return int(code), nil
}

func trimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}
