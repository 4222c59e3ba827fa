// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/xenthuresta/installer/cmd/brandingctl/cli"
	"github.com/xenthuresta/installer/lib/branding"
	"github.com/xenthuresta/installer/lib/imageload"
)

func validateCommand(stdout, stderr io.Writer) *cli.Command {
	var flags descriptorFlags
	return &cli.Command{
		Name:    "validate",
		Summary: "Check that a descriptor loads and its images decode",
		Description: "Load the descriptor and decode every image it names, including\n" +
			"slideshow images. Problems are listed on stdout and the exit code is 1.",
		Flags: func() *pflag.FlagSet {
			flags = descriptorFlags{}
			flagSet := pflag.NewFlagSet("validate", pflag.ContinueOnError)
			flags.register(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("validate takes no arguments, got %q", args)
			}
			current, err := flags.open(stderr)
			if err != nil {
				var loadError *branding.LoadError
				if errors.As(err, &loadError) {
					fmt.Fprintf(stdout, "FAIL %s\n  %v\n", loadError.Path, loadError.Err)
					return &cli.ExitError{Code: 1}
				}
				return err
			}

			problems := validateFiles(current.descriptor)
			if len(problems) > 0 {
				fmt.Fprintf(stdout, "FAIL %s\n", current.descriptor.DescriptorPath())
				for _, problem := range problems {
					fmt.Fprintf(stdout, "  %s\n", problem)
				}
				return &cli.ExitError{Code: 1}
			}
			fmt.Fprintf(stdout, "ok %s (%s)\n", current.descriptor.DescriptorPath(), current.descriptor.ComponentName())
			return nil
		},
	}
}

// validateFiles returns one message per referenced file that is
// missing or, for images, does not decode.
func validateFiles(descriptor *branding.Descriptor) []string {
	var problems []string
	checkImage := func(label, path string) {
		if _, err := imageload.Decode(path); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", label, err))
		}
	}

	for _, entry := range branding.AllImageEntries() {
		if path := descriptor.ImagePath(entry); path != "" {
			checkImage("images."+entry.Key(), path)
		}
	}
	for index, path := range descriptor.SlideshowImages() {
		checkImage(fmt.Sprintf("slideshow[%d]", index), path)
	}
	if path := descriptor.SlideshowPath(); path != "" {
		if _, err := os.Stat(path); err != nil {
			problems = append(problems, fmt.Sprintf("slideshow: %v", err))
		}
	}
	return problems
}
