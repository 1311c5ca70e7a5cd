// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package command classifies a line of input into a typed Command.
//
// A Command is one of Exit, Echo, Type, Pwd, Cd or External. The set is sealed:
// only this package can add variants, so a type switch over Command in the
// dispatcher is exhaustive.
//
// Classification splits the line on its first space. Without a space, only "pwd"
// is recognised and any other word is an External with no arguments. With a
// space, the word before it selects a built-in, and an unrecognised word keeps
// the rest of the line verbatim as the External's raw argument string.
package command
