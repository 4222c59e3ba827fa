// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/pflag"

	"github.com/xenthuresta/installer/cmd/brandingctl/cli"
	"github.com/xenthuresta/installer/lib/codec"
	"github.com/xenthuresta/installer/lib/globalstore"
)

type globalsFlags struct {
	descriptorFlags
	seed   string
	format string
	output string
	color  string
}

func globalsCommand(stdout, stderr io.Writer) *cli.Command {
	var flags globalsFlags
	return &cli.Command{
		Name:    "globals",
		Summary: "Export the branding strings into a global store",
		Description: "Publish the descriptor's strings into a global store under \"branding\",\n" +
			"optionally on top of a seed file, and write the store as JSON, YAML,\n" +
			"or a compressed CBOR snapshot. CBOR written to a terminal is shown in\n" +
			"diagnostic notation.",
		Flags: func() *pflag.FlagSet {
			flags = globalsFlags{}
			flagSet := pflag.NewFlagSet("globals", pflag.ContinueOnError)
			flags.register(flagSet)
			flagSet.StringVar(&flags.seed, "seed", "", "JSON or JSONC file whose keys the store starts with")
			flagSet.StringVar(&flags.format, "format", string(globalstore.FormatJSON), "output format: json, yaml, or cbor")
			flagSet.StringVarP(&flags.output, "output", "o", "", "write to this file instead of stdout")
			flagSet.StringVar(&flags.color, "color", string(cli.ColorAuto), "highlight output: auto, always, or never")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Write a snapshot for the installer to start from",
				Command:     "brandingctl globals --seed defaults.jsonc --format cbor -o globals.cbor",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("globals takes no arguments, got %q", args)
			}
			format, err := globalstore.ParseFormat(flags.format)
			if err != nil {
				return cli.Validation("%w", err)
			}
			mode, err := cli.ParseColorMode(flags.color)
			if err != nil {
				return err
			}
			current, err := flags.open(stderr)
			if err != nil {
				return err
			}

			store := globalstore.New()
			if flags.seed != "" {
				if err := store.LoadJSON(flags.seed); err != nil {
					if errors.Is(err, fs.ErrNotExist) {
						return cli.NotFound("seed: %w", err)
					}
					return cli.Validation("seed: %w", err)
				}
			}
			current.descriptor.SetGlobals(store)
			current.logger.Debug("exported branding globals", "keys", store.Keys(), "format", string(format))

			if flags.output != "" {
				if err := store.Save(flags.output, format); err != nil {
					return cli.Internal("writing %s: %w", flags.output, err)
				}
				return nil
			}
			return writeStore(stdout, store, format, mode)
		},
	}
}

func writeStore(w io.Writer, store *globalstore.Store, format globalstore.Format, mode cli.ColorMode) error {
	data, err := store.Encode(format)
	if err != nil {
		return cli.Internal("%w", err)
	}

	switch format {
	case globalstore.FormatJSON, globalstore.FormatYAML:
		err = cli.Highlight(w, string(data), string(format), mode)
	default:
		if !cli.IsTerminal(w) {
			_, err = w.Write(data)
			break
		}
		var plain []byte
		if plain, err = codec.Decompress(data); err != nil {
			return cli.Internal("%w", err)
		}
		var notation string
		if notation, err = codec.Diagnose(plain); err != nil {
			return cli.Internal("%w", err)
		}
		_, err = fmt.Fprintln(w, notation)
	}
	if err != nil {
		return cli.Internal("writing output: %w", err)
	}
	return nil
}
