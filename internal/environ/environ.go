// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package environ abstracts the process environment so that callers reading PATH
// or HOME can be given fixed values in tests.
package environ

import "os"

const (
	// Path is the search-path variable.
	Path = "PATH"
	// Home is the home-directory variable.
	Home = "HOME"
)

// Lookup returns the value of an environment variable and whether it is set.
// It has the signature of os.LookupEnv.
type Lookup func(key string) (string, bool)

// OS reads the live process environment on every call.
var OS Lookup = os.LookupEnv

// Map returns a Lookup backed by a fixed map. Keys absent from m are unset.
func Map(m map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}
