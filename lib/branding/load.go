// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package branding

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"

	"github.com/xenthuresta/installer/lib/imageload"
)

// Top-level descriptor keys.
const (
	keyStrings              = "strings"
	keyImages               = "images"
	keyStyle                = "style"
	keySlideshow            = "slideshow"
	keyTranslations         = "translations"
	keyWelcomeStyle         = "welcomeStyleCalamares"
	keyWelcomeExpandingLogo = "welcomeExpandingLogo"
	keyWindowExpanding      = "windowExpanding"
	keyWindowSize           = "windowSize"
)

// Defaults for simple settings absent from the descriptor.
const (
	defaultWelcomeStyle         = false
	defaultWelcomeExpandingLogo = true
)

type options struct {
	logger *slog.Logger
	loader ImageLoader
}

// Option configures [Load].
type Option func(*options)

// WithLogger sets the logger used while loading. Without it, Load logs
// nothing.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithImageLoader sets the loader used by [Descriptor.Image]. Without
// it, the descriptor uses an [imageload.Loader] with default settings.
func WithImageLoader(loader ImageLoader) Option {
	return func(o *options) { o.loader = loader }
}

// Load reads and parses the descriptor at path. Every failure is
// returned as a [*LoadError]; missing optional keys are not failures.
func Load(path string, opts ...Option) (*Descriptor, error) {
	settings := options{}
	for _, opt := range opts {
		opt(&settings)
	}
	if settings.logger == nil {
		settings.logger = slog.New(slog.DiscardHandler)
	}
	if settings.loader == nil {
		settings.loader = imageload.New(imageload.WithLogger(settings.logger))
	}

	descriptor, err := load(path, settings)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	settings.logger.Info("loaded branding descriptor",
		"path", descriptor.descriptorPath,
		"component", descriptor.componentName,
		"strings", len(descriptor.strings),
		"images", len(descriptor.images),
		"styles", len(descriptor.style),
		"window_expansion", descriptor.windowExpansion.String(),
	)
	return descriptor, nil
}

func load(path string, settings options) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	root, err := parseDocument(data)
	if err != nil {
		return nil, err
	}

	absolutePath, err := filepath.Abs(path)
	if err != nil {
		absolutePath = filepath.Clean(path)
	}
	directory := filepath.Dir(absolutePath)
	name := strings.TrimSuffix(filepath.Base(absolutePath), filepath.Ext(absolutePath))

	descriptor := &Descriptor{
		descriptorPath:     absolutePath,
		componentName:      name,
		componentDirectory: directory,
		digest:             blake3.Sum256(data),
		loader:             settings.loader,
	}

	logger := settings.logger.With("path", absolutePath)

	descriptor.strings, err = readSection(root, keyStrings, stringEntryKeys[:], logger, nil)
	if err != nil {
		return nil, err
	}
	descriptor.images, err = readSection(root, keyImages, imageEntryKeys[:], logger, func(value string) string {
		return resolvePath(directory, value)
	})
	if err != nil {
		return nil, err
	}
	descriptor.style, err = readSection(root, keyStyle, styleEntryKeys[:], logger, nil)
	if err != nil {
		return nil, err
	}

	if err := descriptor.readSlideshow(root); err != nil {
		return nil, err
	}
	translations, present, err := scalar(root, keyTranslations)
	if err != nil {
		return nil, err
	}
	if present && translations != "" {
		descriptor.translationsPathPrefix = filepath.Join(resolvePath(directory, translations), name) + "_"
	}

	if err := descriptor.readSimpleSettings(root); err != nil {
		return nil, err
	}
	return descriptor, nil
}

// readSection collects the scalar values for keys from the mapping
// named section. transform, when non-nil, rewrites each value.
func readSection(root *yaml.Node, name string, keys []string, logger *slog.Logger, transform func(string) string) (map[string]string, error) {
	values := make(map[string]string, len(keys))
	mapping, err := section(root, name)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		logger.Debug("branding section absent", "section", name)
		return values, nil
	}
	for _, key := range keys {
		value, present, err := scalar(mapping, key)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if !present {
			logger.Debug("branding entry absent", "section", name, "key", key)
			continue
		}
		if transform != nil {
			value = transform(value)
		}
		values[key] = value
	}
	return values, nil
}

func (d *Descriptor) readSlideshow(root *yaml.Node) error {
	node := child(root, keySlideshow)
	if node == nil {
		return nil
	}
	switch node.Kind {
	case yaml.ScalarNode:
		d.slideshowPath = resolvePath(d.componentDirectory, node.Value)
	case yaml.SequenceNode:
		d.slideshowImages = make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return structureError("%q entries must be scalars, found %s (line %d)", keySlideshow, kindName(item), item.Line)
			}
			d.slideshowImages = append(d.slideshowImages, resolvePath(d.componentDirectory, item.Value))
		}
	default:
		return structureError("%q must be a path or a list of paths, found %s (line %d)", keySlideshow, kindName(node), node.Line)
	}
	return nil
}

func (d *Descriptor) readSimpleSettings(root *yaml.Node) error {
	var err error
	if d.welcomeStyle, err = boolean(root, keyWelcomeStyle, defaultWelcomeStyle); err != nil {
		return err
	}
	if d.welcomeExpandingLogo, err = boolean(root, keyWelcomeExpandingLogo, defaultWelcomeExpandingLogo); err != nil {
		return err
	}

	expansion, present, err := scalar(root, keyWindowExpanding)
	if err != nil {
		return err
	}
	d.windowExpansion = WindowNormal
	if present {
		if d.windowExpansion, err = ParseWindowExpansion(expansion); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSetting, err)
		}
	}

	size, present, err := scalar(root, keyWindowSize)
	if err != nil {
		return err
	}
	if present {
		d.windowWidth, d.windowHeight = parseWindowSize(size)
	}
	return nil
}

// resolvePath resolves value against directory unless it is already
// absolute. An empty value stays empty.
func resolvePath(directory, value string) string {
	if value == "" {
		return ""
	}
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(directory, value)
}
