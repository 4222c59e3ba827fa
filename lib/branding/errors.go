// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package branding

import (
	"errors"
	"fmt"
)

// Sentinel causes for a failed [Load]. Every error returned by Load is
// a [*LoadError] wrapping exactly one of these.
var (
	// ErrUnreadable means the descriptor file is missing or cannot be read.
	ErrUnreadable = errors.New("descriptor cannot be read")

	// ErrSyntax means the file is not valid YAML.
	ErrSyntax = errors.New("descriptor is not valid YAML")

	// ErrStructure means the YAML parsed but has the wrong shape: an
	// empty document, a non-mapping root, or a section or value of the
	// wrong node kind.
	ErrStructure = errors.New("descriptor has an invalid structure")

	// ErrInvalidSetting means a simple setting holds a value outside
	// its allowed set, such as an unknown windowExpanding mode.
	ErrInvalidSetting = errors.New("invalid setting")
)

// LoadError reports a descriptor that could not be loaded. There is no
// partially loaded result: the installer cannot run without branding,
// so callers are expected to abort startup (or fall back to another
// descriptor) when they see one.
type LoadError struct {
	// Path is the descriptor path as passed to Load.
	Path string

	// Err wraps one of the package's sentinel errors and, where there
	// is one, the underlying I/O or YAML error.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("branding descriptor %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func structureError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrStructure, fmt.Sprintf(format, args...))
}

func settingError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSetting, fmt.Sprintf(format, args...))
}
