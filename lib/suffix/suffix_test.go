// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package suffix

import (
	"errors"
	"math"
	"testing"
)

type length int

const (
	noLength length = iota
	meters
	millimeters
	kilometers
)

func lengthTable() Table[length] {
	return NewTable(noLength,
		Suffix[length]{Text: "m", Unit: meters},
		Suffix[length]{Text: "mm", Unit: millimeters},
		Suffix[length]{Text: "km", Unit: kilometers},
	)
}

func TestParse(t *testing.T) {
	table := lengthTable()

	tests := []struct {
		name      string
		input     string
		magnitude float64
		unit      length
		err       error
	}{
		{name: "suffixed", input: "12m", magnitude: 12, unit: meters},
		{name: "longest suffix wins", input: "12mm", magnitude: 12, unit: millimeters},
		{name: "other long suffix", input: "3km", magnitude: 3, unit: kilometers},
		{name: "fractional", input: "1.5km", magnitude: 1.5, unit: kilometers},
		{name: "surrounding whitespace", input: "  7m  ", magnitude: 7, unit: meters},
		{name: "space before suffix", input: "7 m", magnitude: 7, unit: meters},
		{name: "bare number", input: "600", magnitude: 600, unit: noLength},
		{name: "zero", input: "0m", magnitude: 0, unit: meters},
		{name: "explicit plus", input: "+4m", magnitude: 4, unit: meters},
		{name: "empty", input: "", err: ErrEmpty},
		{name: "whitespace only", input: "   ", err: ErrEmpty},
		{name: "suffix only", input: "km", err: ErrInvalidNumber},
		{name: "not a number", input: "abc", err: ErrInvalidNumber},
		{name: "garbage before suffix", input: "twelvem", err: ErrInvalidNumber},
		{name: "negative", input: "-5m", err: ErrNegative},
		{name: "negative bare", input: "-5", err: ErrNegative},
		{name: "unknown suffix", input: "600xy", err: ErrUnknownSuffix},
		{name: "infinity", input: "Infm", err: ErrInvalidNumber},
		{name: "not a number literal", input: "NaN", err: ErrInvalidNumber},
		{name: "negative zero", input: "-0m", magnitude: 0, unit: meters},
		{name: "negative zero bare", input: "-0", magnitude: 0, unit: noLength},
		{name: "hex float", input: "0x10p0m", err: ErrInvalidNumber},
		{name: "upper-case hex float", input: "0X1p4m", err: ErrInvalidNumber},
		{name: "hex bare", input: "0x10", err: ErrInvalidNumber},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, err := Parse(test.input, table)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Parse(%q) error = %v, want %v", test.input, err, test.err)
				}
				var parseError *ParseError
				if !errors.As(err, &parseError) {
					t.Fatalf("Parse(%q) error %T is not a *ParseError", test.input, err)
				}
				if parseError.Input != test.input {
					t.Errorf("ParseError.Input = %q, want %q", parseError.Input, test.input)
				}
				if value.Unit != noLength || value.Magnitude != 0 {
					t.Errorf("failed Parse(%q) returned %+v, want zero value with none unit", test.input, value)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", test.input, err)
			}
			if value.Magnitude != test.magnitude || math.Signbit(value.Magnitude) != math.Signbit(test.magnitude) {
				t.Errorf("Parse(%q).Magnitude = %v, want %v", test.input, value.Magnitude, test.magnitude)
			}
			if value.Unit != test.unit {
				t.Errorf("Parse(%q).Unit = %v, want %v", test.input, value.Unit, test.unit)
			}
		})
	}
}

func TestNewTableRejectsBadSuffixes(t *testing.T) {
	tests := []struct {
		name     string
		suffixes []Suffix[length]
	}{
		{name: "empty text", suffixes: []Suffix[length]{{Text: "", Unit: meters}}},
		{name: "duplicate", suffixes: []Suffix[length]{{Text: "m", Unit: meters}, {Text: "m", Unit: millimeters}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("NewTable did not panic")
				}
			}()
			NewTable(noLength, test.suffixes...)
		})
	}
}

func TestFormat(t *testing.T) {
	table := lengthTable()

	if got := Format(Value[length]{Magnitude: 12, Unit: millimeters}, table); got != "12mm" {
		t.Errorf("Format = %q, want %q", got, "12mm")
	}
	if got := Format(Value[length]{Magnitude: 1.25, Unit: noLength}, table); got != "1.25" {
		t.Errorf("Format = %q, want %q", got, "1.25")
	}

	zero, err := Parse("-0m", table)
	if err != nil {
		t.Fatalf("Parse(-0m): %v", err)
	}
	if got := Format(zero, table); got != "0m" {
		t.Errorf("Format(Parse(-0m)) = %q, want %q", got, "0m")
	}
}

func TestTableAccessors(t *testing.T) {
	table := lengthTable()

	if table.None() != noLength {
		t.Errorf("None() = %v, want %v", table.None(), noLength)
	}
	suffixes := table.Suffixes()
	if len(suffixes) != 3 {
		t.Fatalf("Suffixes() has %d entries, want 3", len(suffixes))
	}
	suffixes[0].Text = "changed"
	if table.TextFor(meters) != "m" {
		t.Error("mutating the Suffixes() copy changed the table")
	}
	if table.TextFor(noLength) != "" {
		t.Errorf("TextFor(none) = %q, want empty", table.TextFor(noLength))
	}
}
