// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package imageload

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DefaultCacheSize is the number of scaled images a Loader keeps.
const DefaultCacheSize = 64

type cacheKey struct {
	path     string
	size     image.Point
	modTime  int64
	fileSize int64
}

// Loader decodes image files and scales them to a requested size,
// keeping recent results in an LRU cache. Every image a Loader returns
// is a fresh copy the caller owns, so a Loader is safe for concurrent
// use even when callers draw on the results.
type Loader struct {
	logger *slog.Logger
	cache  *lru.Cache[cacheKey, image.Image]
}

// Option configures [New].
type Option func(*Loader)

// WithLogger sets the logger for decode failures.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// WithCacheSize sets how many scaled images are cached. Zero or a
// negative size disables caching.
func WithCacheSize(size int) Option {
	return func(l *Loader) {
		l.cache = nil
		if size > 0 {
			l.cache, _ = lru.New[cacheKey, image.Image](size)
		}
	}
}

// New creates a Loader. By default it caches [DefaultCacheSize] images
// and logs nothing.
func New(opts ...Option) *Loader {
	loader := &Loader{logger: slog.New(slog.DiscardHandler)}
	loader.cache, _ = lru.New[cacheKey, image.Image](DefaultCacheSize)
	for _, opt := range opts {
		opt(loader)
	}
	return loader
}

// Load decodes the image at path and scales it to fit size, keeping
// its aspect ratio and centering it on a transparent canvas of exactly
// size. A zero size returns the image as decoded. The result is never
// shared with the cache or an earlier call. When the file is
// missing or cannot be decoded, Load logs a warning and returns
// [Placeholder] for size.
func (l *Loader) Load(path string, size image.Point) image.Image {
	if path == "" {
		return Placeholder(size)
	}
	info, err := os.Stat(path)
	if err != nil {
		l.logger.Warn("image unavailable", "path", path, "error", err)
		return Placeholder(size)
	}

	key := cacheKey{path: path, size: size, modTime: info.ModTime().UnixNano(), fileSize: info.Size()}
	if l.cache != nil {
		if cached, ok := l.cache.Get(key); ok {
			return clone(cached)
		}
	}

	decoded, err := Decode(path)
	if err != nil {
		l.logger.Warn("image unavailable", "path", path, "error", err)
		return Placeholder(size)
	}

	result := Fit(decoded, size)
	if l.cache != nil {
		l.cache.Add(key, result)
	}
	return clone(result)
}

// clone copies source into a new RGBA image with the same bounds.
func clone(source image.Image) *image.RGBA {
	bounds := source.Bounds()
	copied := image.NewRGBA(bounds)
	draw.Draw(copied, bounds, source, bounds.Min, draw.Src)
	return copied
}

// Decode reads and decodes the image at path. PNG, JPEG, GIF, and WebP
// are supported.
func Decode(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoded, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if decoded.Bounds().Empty() {
		return nil, fmt.Errorf("decoding %s: empty %s image", path, format)
	}
	return decoded, nil
}

// Fit scales source into a canvas of exactly size, preserving the
// aspect ratio and centering the result. A size with a non-positive
// side returns source unchanged.
func Fit(source image.Image, size image.Point) image.Image {
	if size.X <= 0 || size.Y <= 0 {
		return source
	}
	canvas := image.NewRGBA(image.Rectangle{Max: size})
	draw.CatmullRom.Scale(canvas, fitRect(source.Bounds().Size(), size), source, source.Bounds(), draw.Over, nil)
	return canvas
}

// fitRect returns the largest rectangle with the aspect ratio of
// source that fits in bounds, centered.
func fitRect(source, bounds image.Point) image.Rectangle {
	width, height := bounds.X, source.Y*bounds.X/source.X
	if height > bounds.Y {
		width, height = source.X*bounds.Y/source.Y, bounds.Y
	}
	width, height = max(width, 1), max(height, 1)
	offset := image.Pt((bounds.X-width)/2, (bounds.Y-height)/2)
	return image.Rectangle{Min: offset, Max: offset.Add(image.Pt(width, height))}
}

// Placeholder returns a fully transparent image of size, or 1×1 when
// size has a non-positive side.
func Placeholder(size image.Point) *image.RGBA {
	if size.X <= 0 || size.Y <= 0 {
		size = image.Pt(1, 1)
	}
	return image.NewRGBA(image.Rectangle{Max: size})
}
