// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes for the diagnostic log output.
//
// Colour is decided once at startup: NO_COLOR disables it, FORCE_COLOR enables it,
// otherwise it is enabled only when stderr is a terminal. Shell output on stdout is
// never coloured.
package color
