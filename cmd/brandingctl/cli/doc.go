// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind brandingctl.
//
// A [Command] tree dispatches on the first positional argument, parses
// per-command flags with pflag, and prints structured help. Unknown
// commands and flags get an edit-distance suggestion.
//
// Commands return categorized [*ToolError] values ([Validation],
// [NotFound], [Internal]) or an [*ExitError] when they have already
// written their own diagnostics and only need a non-zero exit.
//
// [NewCommandLogger] builds the slog logger commands share, and
// [NewRenderer] and [Highlight] produce terminal styling that honors
// the --color mode.
package cli
