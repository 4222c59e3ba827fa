// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"

	"github.com/xenthuresta/installer/cmd/brandingctl/cli"
)

func newRootCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "brandingctl",
		Summary:     "Inspect installer branding components",
		Description: "Inspect, validate, and export installer branding descriptors.",
		HelpOutput:  stderr,
		Subcommands: []*cli.Command{
			showCommand(stdout, stderr),
			validateCommand(stdout, stderr),
			globalsCommand(stdout, stderr),
			windowCommand(stdout, stderr),
			imageCommand(stdout, stderr),
		},
		Examples: []cli.Example{
			{
				Description: "Show the branding selected by the installer settings",
				Command:     "brandingctl show --config /etc/installer/settings.yaml",
			},
			{
				Description: "Validate a component before packaging it",
				Command:     "brandingctl validate --descriptor branding/acme/acme.desc",
			},
		},
	}
}
