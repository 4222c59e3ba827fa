// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// ColorMode is the value of a --color flag.
type ColorMode string

const (
	// ColorAuto colors output only when it goes to a terminal, using
	// the profile the environment advertises.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces true-color output.
	ColorAlways ColorMode = "always"
	// ColorNever disables styling.
	ColorNever ColorMode = "never"
)

// ParseColorMode validates a --color flag value.
func ParseColorMode(text string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(text)); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", Validation("--color must be auto, always, or never; got %q", text)
	}
}

// Profile returns the color profile for output written to w.
func (m ColorMode) Profile(w io.Writer) termenv.Profile {
	switch m {
	case ColorAlways:
		return termenv.TrueColor
	case ColorNever:
		return termenv.Ascii
	default:
		if !IsTerminal(w) {
			return termenv.Ascii
		}
		return termenv.NewOutput(w).EnvColorProfile()
	}
}

// NewRenderer returns a lipgloss renderer for w with the profile
// chosen by mode. SetColorProfile pins the profile; without it the
// renderer re-detects from the environment.
func NewRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	profile := mode.Profile(w)
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return renderer
}

// Highlight writes source to w, syntax highlighted as language when
// mode yields a color profile.
func Highlight(w io.Writer, source, language string, mode ColorMode) error {
	if mode.Profile(w) == termenv.Ascii {
		_, err := io.WriteString(w, source)
		return err
	}
	if err := quick.Highlight(w, source, language, "terminal256", "monokai"); err != nil {
		return fmt.Errorf("highlighting %s: %w", language, err)
	}
	return nil
}

// PadRight pads text with spaces to width terminal cells, ignoring
// escape sequences when measuring.
func PadRight(text string, width int) string {
	if gap := width - ansi.StringWidth(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}
