// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package suffix

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrEmpty is returned for an empty (or all-whitespace) input.
	ErrEmpty = errors.New("empty value")

	// ErrInvalidNumber is returned when the magnitude is not a number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrNegative is returned when the magnitude is below zero.
	ErrNegative = errors.New("negative value")

	// ErrUnknownSuffix is returned when the input ends in text that is
	// not one of the table's suffixes.
	ErrUnknownSuffix = errors.New("unknown suffix")
)

// ParseError describes why an input could not be parsed.
type ParseError struct {
	// Input is the text that was parsed, untrimmed.
	Input string

	// Err is one of the package's sentinel errors.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Suffix binds one suffix text to a unit tag.
type Suffix[U comparable] struct {
	Text string
	Unit U
}

// Table is a unit vocabulary: the recognized suffixes and the tag used
// for values without one. Build tables with [NewTable].
type Table[U comparable] struct {
	suffixes []Suffix[U]
	none     U
}

// NewTable builds a table from the given suffixes. none is the tag for
// unitless values and for failed parses. NewTable panics on an empty
// suffix text or a duplicated one: unit tables are fixed at build time,
// so both are programming errors.
func NewTable[U comparable](none U, suffixes ...Suffix[U]) Table[U] {
	seen := make(map[string]struct{}, len(suffixes))
	for _, entry := range suffixes {
		if entry.Text == "" {
			panic("suffix: empty suffix text in unit table")
		}
		if _, duplicate := seen[entry.Text]; duplicate {
			panic(fmt.Sprintf("suffix: duplicate suffix %q in unit table", entry.Text))
		}
		seen[entry.Text] = struct{}{}
	}
	return Table[U]{
		suffixes: append([]Suffix[U](nil), suffixes...),
		none:     none,
	}
}

// None returns the tag carried by unitless values.
func (t Table[U]) None() U { return t.none }

// Suffixes returns a copy of the table's suffixes in declaration order.
func (t Table[U]) Suffixes() []Suffix[U] {
	return append([]Suffix[U](nil), t.suffixes...)
}

// TextFor returns the suffix text of unit, or "" for the none tag and
// for units the table does not know.
func (t Table[U]) TextFor(unit U) string {
	for _, entry := range t.suffixes {
		if entry.Unit == unit {
			return entry.Text
		}
	}
	return ""
}

// match returns the longest suffix that input ends with.
func (t Table[U]) match(input string) (Suffix[U], bool) {
	var best Suffix[U]
	found := false
	for _, entry := range t.suffixes {
		if !strings.HasSuffix(input, entry.Text) {
			continue
		}
		if !found || len(entry.Text) > len(best.Text) {
			best = entry
			found = true
		}
	}
	return best, found
}

// Value is a parsed magnitude with its unit tag.
type Value[U comparable] struct {
	Magnitude float64
	Unit      U
}

// Parse parses input as "<number><suffix>" against table. Surrounding
// whitespace is ignored, as is whitespace between the number and the
// suffix. A bare number parses with the table's none tag.
func Parse[U comparable](input string, table Table[U]) (Value[U], error) {
	failed := Value[U]{Unit: table.none}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return failed, &ParseError{Input: input, Err: ErrEmpty}
	}

	numeric := trimmed
	unit := table.none
	if entry, ok := table.match(trimmed); ok {
		numeric = strings.TrimSpace(strings.TrimSuffix(trimmed, entry.Text))
		unit = entry.Unit
		if numeric == "" {
			return failed, &ParseError{Input: input, Err: ErrInvalidNumber}
		}
	}

	if isHex(numeric) {
		return failed, &ParseError{Input: input, Err: ErrInvalidNumber}
	}
	magnitude, err := strconv.ParseFloat(numeric, 64)
	if err != nil || math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		if unit == table.none && startsLikeNumber(numeric) {
			return failed, &ParseError{Input: input, Err: ErrUnknownSuffix}
		}
		return failed, &ParseError{Input: input, Err: ErrInvalidNumber}
	}
	if magnitude < 0 {
		return failed, &ParseError{Input: input, Err: ErrNegative}
	}
	if magnitude == 0 {
		// Drops the sign of -0.
		magnitude = 0
	}

	return Value[U]{Magnitude: magnitude, Unit: unit}, nil
}

// isHex reports whether text is written with a 0x prefix, which
// strconv.ParseFloat accepts as a hexadecimal float.
func isHex(text string) bool {
	text = strings.TrimLeft(text, "+-")
	return len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X')
}

// startsLikeNumber reports whether text begins with a digit, optionally
// after a sign or decimal point. Used to tell "600xy" (a number with a
// bad suffix) apart from "abc" (not a number at all).
func startsLikeNumber(text string) bool {
	text = strings.TrimLeft(text, "+-.")
	return text != "" && text[0] >= '0' && text[0] <= '9'
}

// Format renders value back to text using the table's suffix for its
// unit. Unitless values render as the bare number.
func Format[U comparable](value Value[U], table Table[U]) string {
	return strconv.FormatFloat(value.Magnitude, 'f', -1, 64) + table.TextFor(value.Unit)
}
