// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package resolver decides what a command name refers to: a built-in, a path
// that already exists, or the first match on the search path.
//
// The search path is re-read from the environment on every call, so a change to
// PATH between two commands takes effect immediately.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/minish/internal/command"
	"github.com/matt-FFFFFF/minish/internal/ctxlog"
	"github.com/matt-FFFFFF/minish/internal/environ"
	"github.com/spf13/afero"
)

// ErrReadDir is returned when a search-path directory exists but cannot be listed.
var ErrReadDir = errors.New("failed to read search path directory")

// Kind says how a name was resolved.
type Kind int

const (
	// KindNotFound means nothing matched.
	KindNotFound Kind = iota
	// KindBuiltin means the name is a built-in command.
	KindBuiltin
	// KindDirect means the name is itself an existing filesystem path.
	KindDirect
	// KindSearchPath means the name was found in a search-path directory.
	KindSearchPath
)

func (k Kind) String() string {
	switch k {
	case KindBuiltin:
		return "builtin"
	case KindDirect:
		return "direct"
	case KindSearchPath:
		return "searchpath"
	default:
		return "notfound"
	}
}

// Resolution is the answer for one name.
type Resolution struct {
	Name string
	Kind Kind
	// Path is set for KindDirect and KindSearchPath.
	Path string
}

// Found reports whether the name resolved to something runnable.
func (r Resolution) Found() bool {
	return r.Kind != KindNotFound
}

// Resolver looks names up against the environment and a filesystem.
type Resolver struct {
	env environ.Lookup
	fs  afero.Fs
}

// New creates a resolver reading variables through env, or the process
// environment if env is nil. The filesystem comes from FsFactory.
func New(env environ.Lookup) *Resolver {
	if env == nil {
		env = environ.OS
	}

	return &Resolver{
		env: env,
		fs:  FsFactory(),
	}
}

// Lookup answers "what would running name do" without running it: a built-in,
// otherwise the first search-path match.
func (r *Resolver) Lookup(ctx context.Context, name string) (Resolution, error) {
	if command.IsBuiltin(name) {
		return Resolution{Name: name, Kind: KindBuiltin}, nil
	}

	return r.searchPath(ctx, name)
}

// Executable finds the program to launch for name: the name itself when it
// exists as a path, otherwise the first search-path match.
func (r *Resolver) Executable(ctx context.Context, name string) (Resolution, error) {
	if name != "" {
		if _, err := r.fs.Stat(name); err == nil {
			ctxlog.Debug(ctx, "resolved as direct path", "name", name)
			return Resolution{Name: name, Kind: KindDirect, Path: name}, nil
		}
	}

	return r.searchPath(ctx, name)
}

// Dirs returns the search-path directories in order.
func (r *Resolver) Dirs() []string {
	val, ok := r.env(environ.Path)
	if !ok {
		return nil
	}

	return strings.Split(val, string(os.PathListSeparator))
}

// searchPath scans each directory's entries in order. The first entry named
// exactly name that is not a directory wins.
func (r *Resolver) searchPath(ctx context.Context, name string) (Resolution, error) {
	notFound := Resolution{Name: name, Kind: KindNotFound}
	if name == "" {
		return notFound, nil
	}

	for _, dir := range r.Dirs() {
		if dir == "" {
			continue
		}

		entries, err := afero.ReadDir(r.fs, dir)
		if errors.Is(err, fs.ErrNotExist) {
			ctxlog.Debug(ctx, "skipping missing search path directory", "dir", dir)
			continue
		}

		if err != nil {
			return notFound, fmt.Errorf("%w %s: %w", ErrReadDir, dir, err)
		}

		for _, entry := range entries {
			if entry.Name() != name {
				continue
			}

			// dir is kept as written in PATH, so "." reports "./name"
			path := dir + string(filepath.Separator) + name

			// entries come from lstat, so follow symlinks before rejecting directories
			if info, err := r.fs.Stat(path); err != nil || info.IsDir() {
				break
			}

			ctxlog.Debug(ctx, "resolved on search path", "name", name, "path", path)

			return Resolution{Name: name, Kind: KindSearchPath, Path: path}, nil
		}
	}

	return notFound, nil
}
