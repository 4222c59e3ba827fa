// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// WriteComponent creates root/name/name.desc containing descriptor and
// returns the descriptor path.
func WriteComponent(t testing.TB, root, name, descriptor string) string {
	t.Helper()
	path := filepath.Join(root, name, name+".desc")
	WriteFile(t, path, descriptor)
	return path
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// WritePNG writes a width×height PNG filled with fill to path, creating
// parent directories.
func WritePNG(t testing.TB, path string, width, height int, fill color.Color) {
	t.Helper()
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			canvas.Set(x, y, fill)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating directory for %s: %v", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, canvas); err != nil {
		t.Fatalf("encoding %s: %v", path, err)
	}
}
