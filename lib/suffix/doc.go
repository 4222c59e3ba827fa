// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

// Package suffix parses numbers carrying a named unit suffix, such as
// "600px" or "32em".
//
// The caller supplies the unit vocabulary as a [Table]: each entry maps
// a suffix text to a unit tag of the caller's own type. [Parse] splits
// the input into a leading magnitude and a trailing suffix, looks the
// suffix up in the table, and returns a [Value] pairing the two. A bare
// number with no suffix parses successfully and carries the table's
// default ("none") tag, leaving it to the caller to decide whether a
// unitless value is acceptable.
//
// When several suffixes match the end of the input, the longest one
// wins. Tables with two identical suffixes are rejected by [NewTable]
// since no input could ever be attributed to the second one.
//
// Failures are reported as a [*ParseError] wrapping one of [ErrEmpty],
// [ErrInvalidNumber], [ErrNegative], or [ErrUnknownSuffix]. On failure
// the returned Value holds a zero magnitude and the default tag.
//
// This package has no dependencies outside the standard library.
package suffix
