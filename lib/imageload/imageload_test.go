// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package imageload

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/xenthuresta/installer/lib/testutil"
)

var red = color.RGBA{R: 255, A: 255}

func TestLoadScalesToRequestedSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	testutil.WritePNG(t, path, 40, 20, red)

	loaded := New().Load(path, image.Pt(100, 100))

	if got := loaded.Bounds().Size(); got != image.Pt(100, 100) {
		t.Fatalf("size = %v, want 100x100", got)
	}
	// 40x20 fits as 100x50, centered vertically: rows 25..74 are painted.
	if _, _, _, alpha := loaded.At(50, 50).RGBA(); alpha == 0 {
		t.Error("center pixel is transparent, want the scaled image")
	}
	if _, _, _, alpha := loaded.At(50, 5).RGBA(); alpha != 0 {
		t.Error("letterbox pixel is opaque, want transparent")
	}
}

func TestLoadZeroSizeReturnsDecodedImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	testutil.WritePNG(t, path, 12, 7, red)

	loaded := New().Load(path, image.Point{})

	if got := loaded.Bounds().Size(); got != image.Pt(12, 7) {
		t.Errorf("size = %v, want 12x7", got)
	}
}

func TestLoadFailuresReturnPlaceholder(t *testing.T) {
	directory := t.TempDir()
	garbage := filepath.Join(directory, "garbage.png")
	testutil.WriteFile(t, garbage, "not an image")

	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "missing file", path: filepath.Join(directory, "missing.png")},
		{name: "undecodable", path: garbage},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			loaded := New().Load(test.path, image.Pt(30, 10))
			if got := loaded.Bounds().Size(); got != image.Pt(30, 10) {
				t.Fatalf("placeholder size = %v, want 30x10", got)
			}
			if _, _, _, alpha := loaded.At(15, 5).RGBA(); alpha != 0 {
				t.Error("placeholder is not transparent")
			}
		})
	}
}

func TestLoadCachesUntilFileChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "welcome.png")
	testutil.WritePNG(t, path, 10, 10, red)
	loader := New()

	loader.Load(path, image.Pt(5, 5))
	loader.Load(path, image.Pt(5, 5))
	if loader.cache.Len() != 1 {
		t.Errorf("cache holds %d entries after two identical loads, want 1", loader.cache.Len())
	}

	testutil.WritePNG(t, path, 20, 10, color.RGBA{B: 255, A: 255})
	// Different length guarantees a new cache key even on filesystems
	// with coarse modification times.
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("stat rewritten file: %v", err)
	}
	third := loader.Load(path, image.Pt(5, 5))
	if r, _, b, _ := third.At(2, 2).RGBA(); r != 0 || b == 0 {
		t.Error("load after rewriting the file returned the stale cached image")
	}
	if loader.cache.Len() != 2 {
		t.Errorf("cache holds %d entries after the rewrite, want 2", loader.cache.Len())
	}
}

func TestLoadResultsAreIndependentCopies(t *testing.T) {
	blue := color.RGBA{B: 255, A: 255}
	for _, size := range []image.Point{image.Pt(8, 8), {}} {
		path := filepath.Join(t.TempDir(), "logo.png")
		testutil.WritePNG(t, path, 8, 8, red)
		loader := New()

		first, ok := loader.Load(path, size).(*image.RGBA)
		if !ok {
			t.Fatalf("size %v: Load returned %T, want *image.RGBA", size, first)
		}
		for y := range 8 {
			for x := range 8 {
				first.Set(x, y, blue)
			}
		}

		second := loader.Load(path, size)
		if r, _, b, _ := second.At(4, 4).RGBA(); r>>8 < 250 || b != 0 {
			t.Errorf("size %v: second load sees %v after the caller drew on the first, want red", size, second.At(4, 4))
		}
	}
}

func TestLoadWithoutCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	testutil.WritePNG(t, path, 10, 10, red)
	loader := New(WithCacheSize(0))

	first := loader.Load(path, image.Pt(5, 5))
	second := loader.Load(path, image.Pt(5, 5))
	if first == second {
		t.Error("uncached loader returned the same image twice")
	}
	if loader.cache != nil {
		t.Error("WithCacheSize(0) left a cache in place")
	}
}

func TestPlaceholderZeroSize(t *testing.T) {
	if got := Placeholder(image.Point{}).Bounds().Size(); got != image.Pt(1, 1) {
		t.Errorf("Placeholder(0x0) size = %v, want 1x1", got)
	}
}

func TestFitRect(t *testing.T) {
	tests := []struct {
		source, bounds image.Point
		want           image.Rectangle
	}{
		{source: image.Pt(40, 20), bounds: image.Pt(100, 100), want: image.Rect(0, 25, 100, 75)},
		{source: image.Pt(20, 40), bounds: image.Pt(100, 100), want: image.Rect(25, 0, 75, 100)},
		{source: image.Pt(10, 10), bounds: image.Pt(30, 30), want: image.Rect(0, 0, 30, 30)},
		{source: image.Pt(1000, 1), bounds: image.Pt(10, 10), want: image.Rect(0, 4, 10, 5)},
	}
	for _, test := range tests {
		if got := fitRect(test.source, test.bounds); got != test.want {
			t.Errorf("fitRect(%v, %v) = %v, want %v", test.source, test.bounds, got, test.want)
		}
	}
}
