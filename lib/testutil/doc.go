// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for installer packages.
//
// [WriteComponent] lays out a branding component the way the installer
// finds it on disk: <root>/<name>/<name>.desc, with the descriptor text
// supplied by the test. [WriteFile] writes any supporting file and
// [WritePNG] writes a solid-color PNG, so descriptor tests can point
// image entries at real files.
//
// [UniqueName] generates distinct component names for tests that load
// several descriptors into one holder and need to tell them apart.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no installer-internal dependencies.
package testutil
