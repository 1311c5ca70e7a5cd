// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package environ

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	lookup := Map(map[string]string{Home: "/home/user", Path: ""})

	v, ok := lookup(Home)
	assert.True(t, ok)
	assert.Equal(t, "/home/user", v)

	v, ok = lookup(Path)
	assert.True(t, ok, "an empty value is still set")
	assert.Empty(t, v)

	_, ok = lookup("UNSET_VARIABLE")
	assert.False(t, ok)
}

func TestOSReadsLiveEnvironment(t *testing.T) {
	t.Setenv("MINISH_ENVIRON_TEST", "first")

	v, ok := OS("MINISH_ENVIRON_TEST")
	assert.True(t, ok)
	assert.Equal(t, "first", v)

	t.Setenv("MINISH_ENVIRON_TEST", "second")

	v, _ = OS("MINISH_ENVIRON_TEST")
	assert.Equal(t, "second", v)
}
