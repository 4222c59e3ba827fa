// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/pflag"

	"github.com/xenthuresta/installer/cmd/brandingctl/cli"
	"github.com/xenthuresta/installer/lib/branding"
)

type windowFlags struct {
	descriptorFlags
	emSize float64
}

func windowCommand(stdout, stderr io.Writer) *cli.Command {
	var flags windowFlags
	return &cli.Command{
		Name:    "window",
		Summary: "Print the window policy and size in pixels",
		Description: "Print the window expansion mode and the window size resolved to\n" +
			"pixels. Font-relative sizes use --em-size; unset sides print \"natural\".",
		Flags: func() *pflag.FlagSet {
			flags = windowFlags{}
			flagSet := pflag.NewFlagSet("window", pflag.ContinueOnError)
			flags.register(flagSet)
			flagSet.Float64Var(&flags.emSize, "em-size", 16, "font height in pixels for em sizes")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("window takes no arguments, got %q", args)
			}
			if flags.emSize <= 0 || math.IsInf(flags.emSize, 0) || math.IsNaN(flags.emSize) {
				return cli.Validation("--em-size must be a positive number, got %v", flags.emSize)
			}
			current, err := flags.open(stderr)
			if err != nil {
				return err
			}
			descriptor := current.descriptor
			width, height := descriptor.WindowSize()
			fmt.Fprintf(stdout, "expansion: %s\n", descriptor.WindowExpansion())
			fmt.Fprintf(stdout, "maximize: %s\n", yesNo(descriptor.WindowMaximize()))
			fmt.Fprintf(stdout, "expands: %s\n", yesNo(descriptor.WindowExpands()))
			fmt.Fprintf(stdout, "width: %s\n", pixelText(width, flags.emSize))
			fmt.Fprintf(stdout, "height: %s\n", pixelText(height, flags.emSize))
			return nil
		},
	}
}

func pixelText(dimension branding.WindowDimension, emSize float64) string {
	if !dimension.IsValid() {
		return "natural"
	}
	return fmt.Sprintf("%dpx (%s)", int(math.Round(dimension.Pixels(emSize))), dimension)
}
