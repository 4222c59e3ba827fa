// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

// brandingctl inspects installer branding components without starting
// the installer: it prints a descriptor, validates it and its images,
// exports the branding globals, resolves the window size, and renders
// image entries at a given size.
//
// The descriptor comes from --descriptor, or from the installer
// settings named by --config or INSTALLER_CONFIG.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xenthuresta/installer/lib/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "--version" {
		version.Fprint(stdout, "brandingctl")
		return 0
	}

	err := newRootCommand(stdout, stderr).Execute(args)
	if err == nil {
		return 0
	}

	var exitError interface{ ExitCode() int }
	if errors.As(err, &exitError) {
		return exitError.ExitCode()
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return 1
}
