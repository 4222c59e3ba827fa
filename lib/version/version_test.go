// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	saved := [3]string{GitCommit, GitDirty, BuildTime}
	t.Cleanup(func() { GitCommit, GitDirty, BuildTime = saved[0], saved[1], saved[2] })

	GitCommit, GitDirty, BuildTime = "abc1234", "false", "2026-10-19T00:00:00Z"
	if got, want := Info(), Version+" (abc1234, 2026-10-19T00:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}

	GitDirty = "true"
	if got := Info(); !strings.Contains(got, "abc1234-dirty") {
		t.Errorf("Info() = %q, want the dirty marker", got)
	}
	if Commit() != "abc1234" || Short() != Version {
		t.Errorf("Commit() = %q, Short() = %q", Commit(), Short())
	}
}

func TestFprint(t *testing.T) {
	var buffer bytes.Buffer
	Fprint(&buffer, "brandingctl")

	output := buffer.String()
	if !strings.HasPrefix(output, "brandingctl "+Info()) {
		t.Errorf("output %q does not start with the binary name and Info()", output)
	}
	if !strings.Contains(output, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("output %q is missing the platform", output)
	}
}
