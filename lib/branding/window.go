// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package branding

import (
	"fmt"
	"strings"

	"github.com/xenthuresta/installer/lib/suffix"
)

// WindowExpansion controls how much the main window may grow.
type WindowExpansion int

const (
	// WindowNormal lets the window start at its configured size and be
	// resized by the user.
	WindowNormal WindowExpansion = iota

	// WindowFullscreen forces the window to fill the screen.
	WindowFullscreen

	// WindowFixed locks the window at its configured size.
	WindowFixed
)

func (expansion WindowExpansion) String() string {
	switch expansion {
	case WindowNormal:
		return "normal"
	case WindowFullscreen:
		return "fullscreen"
	case WindowFixed:
		return "noexpand"
	default:
		return fmt.Sprintf("WindowExpansion(%d)", int(expansion))
	}
}

// ParseWindowExpansion parses the windowExpanding setting. "fixed" is
// accepted as a synonym for "noexpand".
func ParseWindowExpansion(text string) (WindowExpansion, error) {
	switch strings.TrimSpace(text) {
	case "normal":
		return WindowNormal, nil
	case "fullscreen":
		return WindowFullscreen, nil
	case "noexpand", "fixed":
		return WindowFixed, nil
	default:
		return WindowNormal, fmt.Errorf("windowExpanding must be one of normal, fullscreen, noexpand; got %q", text)
	}
}

// WindowDimensionUnit is the unit of a [WindowDimension].
type WindowDimensionUnit int

const (
	// UnitNone marks an unset or unparseable dimension.
	UnitNone WindowDimensionUnit = iota

	// UnitPixels is an absolute size in pixels ("px").
	UnitPixels

	// UnitFontRelative is a size in multiples of the font height ("em").
	UnitFontRelative
)

func (unit WindowDimensionUnit) String() string {
	switch unit {
	case UnitNone:
		return "none"
	case UnitPixels:
		return "px"
	case UnitFontRelative:
		return "em"
	default:
		return fmt.Sprintf("WindowDimensionUnit(%d)", int(unit))
	}
}

var windowDimensionUnits = suffix.NewTable(UnitNone,
	suffix.Suffix[WindowDimensionUnit]{Text: "px", Unit: UnitPixels},
	suffix.Suffix[WindowDimensionUnit]{Text: "em", Unit: UnitFontRelative},
)

// WindowDimension is one side of the main window size. The zero value
// is unset.
type WindowDimension struct {
	Value float64
	Unit  WindowDimensionUnit
}

// ParseWindowDimension parses text such as "600px" or "32em". A bare
// number parses without error but yields an invalid (unitless)
// dimension; on error the result is also the invalid zero value.
func ParseWindowDimension(text string) (WindowDimension, error) {
	value, err := suffix.Parse(text, windowDimensionUnits)
	if err != nil {
		return WindowDimension{}, err
	}
	return WindowDimension{Value: value.Magnitude, Unit: value.Unit}, nil
}

// IsValid reports whether the dimension carries a unit. Callers fall
// back to the window's natural size for invalid dimensions.
func (dimension WindowDimension) IsValid() bool {
	return dimension.Unit != UnitNone
}

// Pixels resolves the dimension to pixels. emSize is the font height in
// pixels used for font-relative dimensions. Invalid dimensions resolve
// to 0.
func (dimension WindowDimension) Pixels(emSize float64) float64 {
	switch dimension.Unit {
	case UnitPixels:
		return dimension.Value
	case UnitFontRelative:
		return dimension.Value * emSize
	default:
		return 0
	}
}

func (dimension WindowDimension) String() string {
	if !dimension.IsValid() {
		return "unset"
	}
	return suffix.Format(suffix.Value[WindowDimensionUnit]{
		Magnitude: dimension.Value,
		Unit:      dimension.Unit,
	}, windowDimensionUnits)
}

// parseWindowSize splits a "<width>,<height>" setting and parses both
// sides independently: a bad height leaves a good width intact. Text
// that does not have exactly two parts leaves both sides unset.
func parseWindowSize(text string) (width, height WindowDimension) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return WindowDimension{}, WindowDimension{}
	}
	width, _ = ParseWindowDimension(parts[0])
	height, _ = ParseWindowDimension(parts[1])
	return width, height
}
