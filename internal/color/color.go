// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	escape = "\033["
	reset  = "\033[0m"
)

// Code is an ANSI SGR parameter.
type Code int

// Foreground colors used by the log handler.
const (
	FgRed     Code = 31
	FgYellow  Code = 33
	FgBlue    Code = 34
	FgCyan    Code = 36
	FgWhite   Code = 37
	FgHiWhite Code = 97
	FgMagenta Code = 95
)

var enabled = isColorCapable()

// Enabled reports whether the output stream supports colour.
func Enabled() bool {
	return enabled
}

// Colorize wraps str in the given codes followed by a reset. Callers check
// Enabled first; Colorize itself always emits the codes.
func Colorize(str string, codes ...Code) string {
	if len(codes) == 0 {
		return str
	}

	params := make([]string, len(codes))
	for i, c := range codes {
		params[i] = strconv.Itoa(int(c))
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(escape) + len(reset) + 4*len(codes))
	sb.WriteString(escape)
	sb.WriteString(strings.Join(params, ";"))
	sb.WriteString("m")
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

func isColorCapable() bool {
	if os.Getenv(NoColor) != "" {
		return false
	}

	if os.Getenv(ForceColor) != "" {
		return true
	}

	return term.IsTerminal(int(os.Stderr.Fd()))
}
