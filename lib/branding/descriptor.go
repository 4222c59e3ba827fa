// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package branding

import (
	"encoding/hex"
	"image"
)

// ImageLoader loads an image file scaled to a requested size. On a
// missing or unreadable file it returns a placeholder image rather than
// an error; the descriptor passes that result through unchanged.
type ImageLoader interface {
	Load(path string, size image.Point) image.Image
}

// Descriptor is a loaded branding descriptor. It is immutable after
// [Load] returns, so concurrent readers are safe once it is installed.
type Descriptor struct {
	descriptorPath     string
	componentName      string
	componentDirectory string
	digest             [32]byte

	strings map[string]string
	images  map[string]string
	style   map[string]string

	slideshowPath          string
	slideshowImages        []string
	translationsPathPrefix string

	welcomeStyle         bool
	welcomeExpandingLogo bool
	windowExpansion      WindowExpansion
	windowWidth          WindowDimension
	windowHeight         WindowDimension

	loader ImageLoader
}

// DescriptorPath returns the absolute path of the descriptor file.
func (d *Descriptor) DescriptorPath() string { return d.descriptorPath }

// ComponentName returns the descriptor file name without extension.
func (d *Descriptor) ComponentName() string { return d.componentName }

// ComponentDirectory returns the directory holding the descriptor.
// Relative image, slideshow, and translation paths resolve against it.
func (d *Descriptor) ComponentDirectory() string { return d.componentDirectory }

// TranslationsPathPrefix returns the path prefix of the component's
// translation files (callers append a locale and extension), or "" when
// the descriptor ships no translations.
func (d *Descriptor) TranslationsPathPrefix() string { return d.translationsPathPrefix }

// String returns the text of a string entry, or "" when the descriptor
// does not set it.
func (d *Descriptor) String(entry StringEntry) string {
	return d.strings[entry.Key()]
}

// StyleString returns the raw value of a style entry, or "".
func (d *Descriptor) StyleString(entry StyleEntry) string {
	return d.style[entry.Key()]
}

// ImagePath returns the resolved path of an image entry, or "". The
// file is not checked for existence.
func (d *Descriptor) ImagePath(entry ImageEntry) string {
	return d.images[entry.Key()]
}

// Image loads an image entry at size through the descriptor's
// ImageLoader.
func (d *Descriptor) Image(entry ImageEntry, size image.Point) image.Image {
	return d.loader.Load(d.ImagePath(entry), size)
}

// SlideshowPath returns the resolved slideshow path when the slideshow
// is given as a single file, or "".
func (d *Descriptor) SlideshowPath() string { return d.slideshowPath }

// SlideshowImages returns the resolved image paths when the slideshow
// is given as a list of images, or nil.
func (d *Descriptor) SlideshowImages() []string {
	if d.slideshowImages == nil {
		return nil
	}
	return append([]string(nil), d.slideshowImages...)
}

// WelcomeStyle reports whether the welcome page uses the installer's
// own style rather than the distribution's.
func (d *Descriptor) WelcomeStyle() bool { return d.welcomeStyle }

// WelcomeExpandingLogo reports whether the welcome logo grows to fill
// the available space.
func (d *Descriptor) WelcomeExpandingLogo() bool { return d.welcomeExpandingLogo }

// WindowExpansion returns how the main window should be sized at
// startup.
func (d *Descriptor) WindowExpansion() WindowExpansion { return d.windowExpansion }

// WindowMaximize reports whether the main window is forced fullscreen.
func (d *Descriptor) WindowMaximize() bool { return d.windowExpansion == WindowFullscreen }

// WindowExpands reports whether the main window may grow beyond its
// configured size.
func (d *Descriptor) WindowExpands() bool { return d.windowExpansion != WindowFixed }

// WindowSize returns the configured width and height. Each is parsed
// independently; check IsValid on each before use.
func (d *Descriptor) WindowSize() (width, height WindowDimension) {
	return d.windowWidth, d.windowHeight
}

// Digest returns the BLAKE3-256 digest of the descriptor file contents.
func (d *Descriptor) Digest() [32]byte { return d.digest }

// DigestHex returns [Descriptor.Digest] hex-encoded.
func (d *Descriptor) DigestHex() string {
	return hex.EncodeToString(d.digest[:])
}
