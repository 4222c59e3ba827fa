// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/xenthuresta/installer/cmd/brandingctl/cli"
	"github.com/xenthuresta/installer/lib/branding"
)

type imageFlags struct {
	descriptorFlags
	size   string
	output string
}

func imageCommand(stdout, stderr io.Writer) *cli.Command {
	var flags imageFlags
	return &cli.Command{
		Name:    "image",
		Summary: "Render an image entry as PNG",
		Usage:   "brandingctl image <entry> --output FILE [flags]",
		Description: "Load an image entry (productLogo, productIcon, productWelcome) the way\n" +
			"the installer does, scaled to --size, and write it as PNG. A missing\n" +
			"or undecodable image produces a transparent placeholder.",
		Flags: func() *pflag.FlagSet {
			flags = imageFlags{}
			flagSet := pflag.NewFlagSet("image", pflag.ContinueOnError)
			flags.register(flagSet)
			flagSet.StringVar(&flags.size, "size", "", "target size as WxH (default: the image's own size)")
			flagSet.StringVarP(&flags.output, "output", "o", "", "PNG file to write (required)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("image takes exactly one entry name, got %d arguments", len(args))
			}
			entry, err := branding.ParseImageEntry(args[0])
			if err != nil {
				return cli.Validation("%w", err)
			}
			size, err := parseSize(flags.size)
			if err != nil {
				return err
			}
			if flags.output == "" {
				return cli.Validation("--output is required")
			}
			current, err := flags.open(stderr)
			if err != nil {
				return err
			}

			rendered := current.descriptor.Image(entry, size)
			if err := writePNG(flags.output, rendered); err != nil {
				return cli.Internal("writing %s: %w", flags.output, err)
			}
			bounds := rendered.Bounds().Size()
			fmt.Fprintf(stdout, "%s: %dx%d -> %s\n", entry, bounds.X, bounds.Y, flags.output)
			return nil
		},
	}
}

// parseSize parses "WxH". An empty string is the zero size.
func parseSize(text string) (image.Point, error) {
	if text == "" {
		return image.Point{}, nil
	}
	widthText, heightText, found := strings.Cut(strings.ToLower(text), "x")
	width, widthErr := strconv.Atoi(widthText)
	height, heightErr := strconv.Atoi(heightText)
	if !found || widthErr != nil || heightErr != nil || width <= 0 || height <= 0 {
		return image.Point{}, cli.Validation("--size must be WxH with positive integers, got %q", text)
	}
	return image.Pt(width, height), nil
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
