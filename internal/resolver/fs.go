// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

import "github.com/spf13/afero"

// FsFactory is a function that returns the filesystem used by New.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}
