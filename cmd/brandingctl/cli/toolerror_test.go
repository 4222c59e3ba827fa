// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"io/fs"
	"testing"
)

func TestToolError_Categories(t *testing.T) {
	tests := []struct {
		err  *ToolError
		want ErrorCategory
	}{
		{Validation("bad %s", "input"), CategoryValidation},
		{NotFound("missing %s", "component"), CategoryNotFound},
		{Internal("broken %s", "encoder"), CategoryInternal},
	}
	for _, tt := range tests {
		if tt.err.Category != tt.want {
			t.Errorf("%q has category %q, want %q", tt.err, tt.err.Category, tt.want)
		}
	}
}

func TestToolError_WrapsChain(t *testing.T) {
	err := NotFound("descriptor: %w", fs.ErrNotExist)

	if err.Error() != "descriptor: file does not exist" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is does not see the wrapped error")
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 3}

	var coded interface{ ExitCode() int }
	if !errors.As(err, &coded) || coded.ExitCode() != 3 {
		t.Errorf("ExitError does not expose code 3: %v", err)
	}
}
