// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/xenthuresta/installer/cmd/brandingctl/cli"
	"github.com/xenthuresta/installer/lib/branding"
	"github.com/xenthuresta/installer/lib/config"
	"github.com/xenthuresta/installer/lib/imageload"
)

// descriptorFlags selects the descriptor and the logging level. Every
// command embeds them.
type descriptorFlags struct {
	descriptor string
	configPath string
	verbose    bool
}

func (f *descriptorFlags) register(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&f.descriptor, "descriptor", "d", "", "branding descriptor file (takes precedence over settings)")
	flagSet.StringVar(&f.configPath, "config", "", "installer settings file (default: $"+config.EnvironmentVariable+")")
	flagSet.BoolVarP(&f.verbose, "verbose", "v", false, "log at debug level")
}

// session is a loaded descriptor with the logger and image loader it
// was loaded with.
type session struct {
	logger     *slog.Logger
	loader     *imageload.Loader
	active     branding.Active
	descriptor *branding.Descriptor
}

// open resolves and loads the descriptor. A descriptor that fails to
// load is returned as a validation error wrapping the *LoadError.
func (f *descriptorFlags) open(stderr io.Writer) (*session, error) {
	level := slog.LevelInfo
	cacheSize := imageload.DefaultCacheSize

	path := f.descriptor
	if path == "" {
		settings, err := f.settings()
		if err != nil {
			return nil, err
		}
		level, _ = settings.Level()
		cacheSize = settings.ImageCacheSize
		if path, err = settings.BrandingDescriptorPath(); err != nil {
			return nil, cli.NotFound("%w", err)
		}
	}
	if f.verbose {
		level = slog.LevelDebug
	}

	logger := cli.NewCommandLogger(stderr, level)
	current := &session{
		logger: logger,
		loader: imageload.New(imageload.WithLogger(logger), imageload.WithCacheSize(cacheSize)),
	}
	descriptor, err := current.active.Load(path,
		branding.WithLogger(logger),
		branding.WithImageLoader(current.loader),
	)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("%w", err)
		}
		return nil, cli.Validation("%w", err)
	}
	current.descriptor = descriptor
	return current, nil
}

func (f *descriptorFlags) settings() (*config.Config, error) {
	var (
		settings *config.Config
		err      error
	)
	switch {
	case f.configPath != "":
		settings, err = config.LoadFile(f.configPath)
	case os.Getenv(config.EnvironmentVariable) != "":
		settings, err = config.Load()
	default:
		return nil, cli.Validation("no branding descriptor: pass --descriptor or --config, or set %s",
			config.EnvironmentVariable)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("%w", err)
		}
		return nil, cli.Validation("%w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, cli.Validation("invalid installer settings: %w", err)
	}
	return settings, nil
}
