// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import "slices"

// Names of the built-in commands.
const (
	NameExit = "exit"
	NameEcho = "echo"
	NameType = "type"
	NamePwd  = "pwd"
	NameCd   = "cd"
)

// HomeShortcut is the only expansion cd performs.
const HomeShortcut = "~"

var builtins = []string{NameExit, NameEcho, NameType, NamePwd, NameCd}

// IsBuiltin reports whether name is one of the built-in commands.
func IsBuiltin(name string) bool {
	return slices.Contains(builtins, name)
}

// Builtins returns the built-in command names.
func Builtins() []string {
	return slices.Clone(builtins)
}

// Command is one classified line of input.
type Command interface {
	// Name is the command word as typed.
	Name() string
	isCommand()
}

// Exit terminates the shell with Code.
type Exit struct {
	Code int
}

// Echo prints Message followed by a newline.
type Echo struct {
	Message string
}

// Type reports how Target would be run.
type Type struct {
	Target string
}

// Pwd prints the working directory.
type Pwd struct{}

// Cd changes the working directory to Path.
type Cd struct {
	Path string
}

// External runs a program found by path resolution.
type External struct {
	Program string
	// RawArgs is everything after the first space, untokenized.
	RawArgs string
	// HasArgs is false when the line had no space at all.
	HasArgs bool
}

func (Exit) Name() string       { return NameExit }
func (Echo) Name() string       { return NameEcho }
func (Type) Name() string       { return NameType }
func (Pwd) Name() string        { return NamePwd }
func (Cd) Name() string         { return NameCd }
func (e External) Name() string { return e.Program }

func (Exit) isCommand()     {}
func (Echo) isCommand()     {}
func (Type) isCommand()     {}
func (Pwd) isCommand()      {}
func (Cd) isCommand()       {}
func (External) isCommand() {}
