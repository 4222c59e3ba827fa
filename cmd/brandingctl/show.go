// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/xenthuresta/installer/cmd/brandingctl/cli"
	"github.com/xenthuresta/installer/lib/branding"
)

const showLabelWidth = 22

type showFlags struct {
	descriptorFlags
	color string
}

func showCommand(stdout, stderr io.Writer) *cli.Command {
	var flags showFlags
	return &cli.Command{
		Name:    "show",
		Summary: "Print every setting of a branding descriptor",
		Description: "Print the component, strings, images, styles, slideshow, and window\n" +
			"policy of a branding descriptor. Absent entries are shown as \"-\".",
		Flags: func() *pflag.FlagSet {
			flags = showFlags{}
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			flags.register(flagSet)
			flagSet.StringVar(&flags.color, "color", string(cli.ColorAuto), "colorize output: auto, always, or never")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("show takes no arguments, got %q", args)
			}
			mode, err := cli.ParseColorMode(flags.color)
			if err != nil {
				return err
			}
			current, err := flags.open(stderr)
			if err != nil {
				return err
			}
			return writeShow(stdout, current.descriptor, mode)
		},
	}
}

type showWriter struct {
	out      io.Writer
	heading  lipgloss.Style
	label    lipgloss.Style
	missing  lipgloss.Style
	present  lipgloss.Style
	renderer *lipgloss.Renderer
}

func writeShow(w io.Writer, descriptor *branding.Descriptor, mode cli.ColorMode) error {
	renderer := cli.NewRenderer(w, mode)
	var builder strings.Builder
	show := &showWriter{
		out:      &builder,
		heading:  renderer.NewStyle().Bold(true).Underline(true),
		label:    renderer.NewStyle().Foreground(lipgloss.Color("12")),
		missing:  renderer.NewStyle().Faint(true),
		present:  renderer.NewStyle().Foreground(lipgloss.Color("10")),
		renderer: renderer,
	}

	show.row("component", descriptor.ComponentName())
	show.row("descriptor", descriptor.DescriptorPath())
	show.row("directory", descriptor.ComponentDirectory())
	show.row("digest", descriptor.DigestHex())

	show.section("strings")
	for _, entry := range branding.AllStringEntries() {
		show.row(entry.Key(), show.value(descriptor.String(entry)))
	}

	show.section("images")
	for _, entry := range branding.AllImageEntries() {
		path := descriptor.ImagePath(entry)
		if path == "" {
			show.row(entry.Key(), show.value(""))
			continue
		}
		show.row(entry.Key(), show.fileMarker(path)+" "+path)
	}

	show.section("style")
	for _, entry := range branding.AllStyleEntries() {
		value := descriptor.StyleString(entry)
		if value == "" {
			show.row(entry.Key(), show.value(""))
			continue
		}
		swatch := renderer.NewStyle().Background(lipgloss.Color(value)).Render("    ")
		show.row(entry.Key(), swatch+" "+value)
	}

	show.section("slideshow")
	switch images := descriptor.SlideshowImages(); {
	case images != nil:
		for index, path := range images {
			show.row(fmt.Sprintf("image %d", index+1), show.fileMarker(path)+" "+path)
		}
	case descriptor.SlideshowPath() != "":
		show.row("path", show.fileMarker(descriptor.SlideshowPath())+" "+descriptor.SlideshowPath())
	default:
		show.row("path", show.value(""))
	}
	show.row("translations", show.value(descriptor.TranslationsPathPrefix()))

	show.section("window")
	width, height := descriptor.WindowSize()
	show.row("expansion", descriptor.WindowExpansion().String())
	show.row("maximize", yesNo(descriptor.WindowMaximize()))
	show.row("expands", yesNo(descriptor.WindowExpands()))
	show.row("width", width.String())
	show.row("height", height.String())

	show.section("welcome")
	show.row("style", yesNo(descriptor.WelcomeStyle()))
	show.row("expanding logo", yesNo(descriptor.WelcomeExpandingLogo()))

	if _, err := io.WriteString(w, builder.String()); err != nil {
		return cli.Internal("writing output: %w", err)
	}
	return nil
}

func (s *showWriter) section(title string) {
	fmt.Fprintf(s.out, "\n%s\n", s.heading.Render(title))
}

func (s *showWriter) row(label, value string) {
	fmt.Fprintf(s.out, "  %s%s\n", cli.PadRight(s.label.Render(label), showLabelWidth), value)
}

func (s *showWriter) value(text string) string {
	if text == "" {
		return s.missing.Render("-")
	}
	return text
}

// fileMarker marks whether path exists.
func (s *showWriter) fileMarker(path string) string {
	if _, err := os.Stat(path); err != nil {
		return s.missing.Render("✗")
	}
	return s.present.Render("✓")
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
