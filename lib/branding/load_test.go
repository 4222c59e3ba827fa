// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package branding

import (
	"errors"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/zeebo/blake3"

	"github.com/xenthuresta/installer/lib/testutil"
)

const fullDescriptor = `
componentName: acme
welcomeStyleCalamares: true
welcomeExpandingLogo: false
windowExpanding: fullscreen
windowSize: 1024px,40em

strings:
    productName:         Acme Linux
    shortProductName:    Acme
    version:             2026.10 LTS
    shortVersion:        "2026.10"
    versionedName:       Acme Linux 2026.10 LTS "Roadrunner"
    shortVersionedName:  Acme 2026.10
    bootloaderEntryName: Acme
    productUrl:          https://acme.example/
    supportUrl:          https://acme.example/support
    knownIssuesUrl:      https://acme.example/issues
    releaseNotesUrl:     https://acme.example/notes

images:
    productLogo:    "logo.png"
    productIcon:    "/usr/share/pixmaps/acme.png"
    productWelcome: "art/welcome.png"

slideshow: "show.qml"
translations: lang

style:
   sidebarBackground:    "#292F34"
   sidebarText:          "#FFFFFF"
   sidebarTextSelect:    "#292F34"
   sidebarTextHighlight: "#D35400"
`

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteComponent(t, t.TempDir(), "acme", content)
}

func mustLoad(t *testing.T, path string, opts ...Option) *Descriptor {
	t.Helper()
	descriptor, err := Load(path, opts...)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	return descriptor
}

func TestLoadFullDescriptor(t *testing.T) {
	path := writeDescriptor(t, fullDescriptor)
	directory := filepath.Dir(path)

	descriptor := mustLoad(t, path)

	if descriptor.DescriptorPath() != path {
		t.Errorf("DescriptorPath = %q, want %q", descriptor.DescriptorPath(), path)
	}
	if descriptor.ComponentName() != "acme" {
		t.Errorf("ComponentName = %q, want acme", descriptor.ComponentName())
	}
	if descriptor.ComponentDirectory() != directory {
		t.Errorf("ComponentDirectory = %q, want %q", descriptor.ComponentDirectory(), directory)
	}

	wantStrings := map[StringEntry]string{
		ProductName:         "Acme Linux",
		ShortProductName:    "Acme",
		Version:             "2026.10 LTS",
		ShortVersion:        "2026.10",
		VersionedName:       `Acme Linux 2026.10 LTS "Roadrunner"`,
		ShortVersionedName:  "Acme 2026.10",
		BootloaderEntryName: "Acme",
		ProductURL:          "https://acme.example/",
		SupportURL:          "https://acme.example/support",
		KnownIssuesURL:      "https://acme.example/issues",
		ReleaseNotesURL:     "https://acme.example/notes",
	}
	for _, entry := range AllStringEntries() {
		if got := descriptor.String(entry); got != wantStrings[entry] {
			t.Errorf("String(%v) = %q, want %q", entry, got, wantStrings[entry])
		}
	}

	wantImages := map[ImageEntry]string{
		ProductLogo:    filepath.Join(directory, "logo.png"),
		ProductIcon:    "/usr/share/pixmaps/acme.png",
		ProductWelcome: filepath.Join(directory, "art", "welcome.png"),
	}
	for entry, want := range wantImages {
		if got := descriptor.ImagePath(entry); got != want {
			t.Errorf("ImagePath(%v) = %q, want %q", entry, got, want)
		}
	}

	wantStyle := map[StyleEntry]string{
		SidebarBackground:    "#292F34",
		SidebarText:          "#FFFFFF",
		SidebarTextSelect:    "#292F34",
		SidebarTextHighlight: "#D35400",
	}
	for entry, want := range wantStyle {
		if got := descriptor.StyleString(entry); got != want {
			t.Errorf("StyleString(%v) = %q, want %q", entry, got, want)
		}
	}

	if got, want := descriptor.SlideshowPath(), filepath.Join(directory, "show.qml"); got != want {
		t.Errorf("SlideshowPath = %q, want %q", got, want)
	}
	if descriptor.SlideshowImages() != nil {
		t.Errorf("SlideshowImages = %v, want nil for a single slideshow file", descriptor.SlideshowImages())
	}
	if got, want := descriptor.TranslationsPathPrefix(), filepath.Join(directory, "lang", "acme")+"_"; got != want {
		t.Errorf("TranslationsPathPrefix = %q, want %q", got, want)
	}

	if !descriptor.WelcomeStyle() {
		t.Error("WelcomeStyle = false, want true")
	}
	if descriptor.WelcomeExpandingLogo() {
		t.Error("WelcomeExpandingLogo = true, want false")
	}
	if descriptor.WindowExpansion() != WindowFullscreen || !descriptor.WindowMaximize() || !descriptor.WindowExpands() {
		t.Errorf("window expansion = %v (maximize %v, expands %v), want fullscreen",
			descriptor.WindowExpansion(), descriptor.WindowMaximize(), descriptor.WindowExpands())
	}
	width, height := descriptor.WindowSize()
	if width != (WindowDimension{Value: 1024, Unit: UnitPixels}) {
		t.Errorf("width = %+v, want 1024px", width)
	}
	if height != (WindowDimension{Value: 40, Unit: UnitFontRelative}) {
		t.Errorf("height = %+v, want 40em", height)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading descriptor back: %v", err)
	}
	if descriptor.Digest() != blake3.Sum256(data) {
		t.Error("Digest does not match the BLAKE3 digest of the file")
	}
	if len(descriptor.DigestHex()) != 64 {
		t.Errorf("DigestHex = %q, want 64 hex characters", descriptor.DigestHex())
	}
}

func TestLoadMinimalDescriptorUsesDefaults(t *testing.T) {
	path := writeDescriptor(t, "strings:\n  productName: Acme\n")

	descriptor := mustLoad(t, path)

	if descriptor.String(ProductName) != "Acme" {
		t.Errorf("String(ProductName) = %q, want Acme", descriptor.String(ProductName))
	}
	for _, entry := range AllStringEntries()[1:] {
		if got := descriptor.String(entry); got != "" {
			t.Errorf("absent String(%v) = %q, want empty", entry, got)
		}
	}
	for _, entry := range AllImageEntries() {
		if got := descriptor.ImagePath(entry); got != "" {
			t.Errorf("absent ImagePath(%v) = %q, want empty", entry, got)
		}
	}
	for _, entry := range AllStyleEntries() {
		if got := descriptor.StyleString(entry); got != "" {
			t.Errorf("absent StyleString(%v) = %q, want empty", entry, got)
		}
	}
	if descriptor.SlideshowPath() != "" || descriptor.TranslationsPathPrefix() != "" {
		t.Errorf("slideshow %q / translations %q, want both empty",
			descriptor.SlideshowPath(), descriptor.TranslationsPathPrefix())
	}
	if descriptor.WelcomeStyle() != defaultWelcomeStyle {
		t.Errorf("WelcomeStyle = %v, want default %v", descriptor.WelcomeStyle(), defaultWelcomeStyle)
	}
	if descriptor.WelcomeExpandingLogo() != defaultWelcomeExpandingLogo {
		t.Errorf("WelcomeExpandingLogo = %v, want default %v", descriptor.WelcomeExpandingLogo(), defaultWelcomeExpandingLogo)
	}
	if descriptor.WindowExpansion() != WindowNormal || descriptor.WindowMaximize() || !descriptor.WindowExpands() {
		t.Errorf("window expansion = %v, want normal", descriptor.WindowExpansion())
	}
	width, height := descriptor.WindowSize()
	if width.IsValid() || height.IsValid() {
		t.Errorf("window size = %v, %v; want both unset", width, height)
	}
}

func TestLoadNullAndEmptyValues(t *testing.T) {
	path := writeDescriptor(t, `
strings:
  productName: ""
  version: ~
  supportUrl:
images:
  productLogo: ""
`)

	descriptor := mustLoad(t, path)

	if descriptor.String(ProductName) != "" || descriptor.String(Version) != "" || descriptor.String(SupportURL) != "" {
		t.Error("empty or null strings did not read as empty")
	}
	recorder := globalsRecorder{}
	descriptor.SetGlobals(&recorder)
	exported := recorder.values[GlobalsKey].(map[string]string)
	if _, present := exported["productName"]; !present {
		t.Error("explicit empty productName missing from exported globals")
	}
	if _, present := exported["version"]; present {
		t.Error("null version present in exported globals")
	}
}

func TestLoadWindowExpansionModes(t *testing.T) {
	tests := []struct {
		value    string
		want     WindowExpansion
		maximize bool
		expands  bool
	}{
		{value: "normal", want: WindowNormal, expands: true},
		{value: "fullscreen", want: WindowFullscreen, maximize: true, expands: true},
		{value: "noexpand", want: WindowFixed},
		{value: "fixed", want: WindowFixed},
	}
	for _, test := range tests {
		t.Run(test.value, func(t *testing.T) {
			descriptor := mustLoad(t, writeDescriptor(t, "windowExpanding: "+test.value+"\n"))
			if descriptor.WindowExpansion() != test.want {
				t.Errorf("WindowExpansion = %v, want %v", descriptor.WindowExpansion(), test.want)
			}
			if descriptor.WindowMaximize() != test.maximize {
				t.Errorf("WindowMaximize = %v, want %v", descriptor.WindowMaximize(), test.maximize)
			}
			if descriptor.WindowExpands() != test.expands {
				t.Errorf("WindowExpands = %v, want %v", descriptor.WindowExpands(), test.expands)
			}
		})
	}
}

func TestLoadWindowSizeSidesAreIndependent(t *testing.T) {
	descriptor := mustLoad(t, writeDescriptor(t, "windowSize: 800px,-10px\n"))

	width, height := descriptor.WindowSize()
	if !width.IsValid() || width.Value != 800 || width.Unit != UnitPixels {
		t.Errorf("width = %+v, want valid 800px", width)
	}
	if height.IsValid() {
		t.Errorf("height = %+v, want invalid", height)
	}
}

func TestLoadBooleanSpellings(t *testing.T) {
	descriptor := mustLoad(t, writeDescriptor(t, "welcomeStyleCalamares: yes\nwelcomeExpandingLogo: off\n"))
	if !descriptor.WelcomeStyle() || descriptor.WelcomeExpandingLogo() {
		t.Errorf("welcome style %v / expanding logo %v, want true / false",
			descriptor.WelcomeStyle(), descriptor.WelcomeExpandingLogo())
	}
}

func TestLoadQuotedBooleans(t *testing.T) {
	descriptor := mustLoad(t, writeDescriptor(t, "welcomeStyleCalamares: \"true\"\nwelcomeExpandingLogo: 'Off'\n"))
	if !descriptor.WelcomeStyle() || descriptor.WelcomeExpandingLogo() {
		t.Errorf("welcome style %v / expanding logo %v, want true / false",
			descriptor.WelcomeStyle(), descriptor.WelcomeExpandingLogo())
	}
}

func TestLoadSlideshowImageList(t *testing.T) {
	path := writeDescriptor(t, `
slideshow:
  - "slide1.png"
  - "/srv/slides/slide2.png"
`)
	directory := filepath.Dir(path)

	descriptor := mustLoad(t, path)

	want := []string{filepath.Join(directory, "slide1.png"), "/srv/slides/slide2.png"}
	if got := descriptor.SlideshowImages(); !reflect.DeepEqual(got, want) {
		t.Errorf("SlideshowImages = %v, want %v", got, want)
	}
	if descriptor.SlideshowPath() != "" {
		t.Errorf("SlideshowPath = %q, want empty for an image list", descriptor.SlideshowPath())
	}

	images := descriptor.SlideshowImages()
	images[0] = "changed"
	if descriptor.SlideshowImages()[0] == "changed" {
		t.Error("SlideshowImages returned the descriptor's own slice")
	}
}

func TestLoadAliases(t *testing.T) {
	descriptor := mustLoad(t, writeDescriptor(t, `
colors:
  dark: &dark "#292F34"
style:
  sidebarBackground: *dark
  sidebarTextSelect: *dark
`))
	if descriptor.StyleString(SidebarBackground) != "#292F34" || descriptor.StyleString(SidebarTextSelect) != "#292F34" {
		t.Errorf("aliased styles = %q, %q", descriptor.StyleString(SidebarBackground), descriptor.StyleString(SidebarTextSelect))
	}
}

func TestLoadMergeKeys(t *testing.T) {
	descriptor := mustLoad(t, writeDescriptor(t, `
base: &base
  productName: Acme
  version: "1.0"
dark: &dark
  sidebarBackground: "#000000"
  sidebarText: "#FFFFFF"
strings:
  <<: *base
  version: "2.0"
style:
  <<: [*dark, {sidebarText: "#111111", sidebarTextSelect: "#222222"}]
  sidebarTextSelect: "#333333"
`))
	if got := descriptor.String(ProductName); got != "Acme" {
		t.Errorf("merged String(ProductName) = %q, want Acme", got)
	}
	if got := descriptor.String(Version); got != "2.0" {
		t.Errorf("String(Version) = %q, want the explicit 2.0", got)
	}
	if got := descriptor.StyleString(SidebarBackground); got != "#000000" {
		t.Errorf("StyleString(SidebarBackground) = %q, want #000000", got)
	}
	if got := descriptor.StyleString(SidebarText); got != "#FFFFFF" {
		t.Errorf("StyleString(SidebarText) = %q, want the first source's #FFFFFF", got)
	}
	if got := descriptor.StyleString(SidebarTextSelect); got != "#333333" {
		t.Errorf("StyleString(SidebarTextSelect) = %q, want the explicit #333333", got)
	}
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "invalid yaml", content: "strings: [unterminated\n", want: ErrSyntax},
		{name: "tab indentation", content: "strings:\n\tproductName: Acme\n", want: ErrSyntax},
		{name: "empty file", content: "", want: ErrStructure},
		{name: "comment only", content: "# nothing here\n", want: ErrStructure},
		{name: "scalar root", content: "just a string\n", want: ErrStructure},
		{name: "sequence root", content: "- a\n- b\n", want: ErrStructure},
		{name: "strings not a mapping", content: "strings: [a, b]\n", want: ErrStructure},
		{name: "images not a mapping", content: "images: logo.png\n", want: ErrStructure},
		{name: "nested string value", content: "strings:\n  productName:\n    en: Acme\n", want: ErrStructure},
		{name: "slideshow mapping", content: "slideshow:\n  qml: show.qml\n", want: ErrStructure},
		{name: "slideshow nested list", content: "slideshow:\n  - [a.png]\n", want: ErrStructure},
		{name: "window size list", content: "windowSize: [800px, 520px]\n", want: ErrStructure},
		{name: "unknown expansion", content: "windowExpanding: maximized\n", want: ErrInvalidSetting},
		{name: "boolean expansion", content: "windowExpanding: true\n", want: ErrInvalidSetting},
		{name: "non-boolean welcome style", content: "welcomeStyleCalamares: sometimes\n", want: ErrInvalidSetting},
		{name: "list welcome logo", content: "welcomeExpandingLogo: [true]\n", want: ErrInvalidSetting},
		{name: "duplicate top-level key", content: "strings:\n  productName: Acme\nstrings:\n  productName: Other\n", want: ErrStructure},
		{name: "duplicate nested key", content: "strings:\n  productName: Acme\n  productName: Other\n", want: ErrStructure},
		{name: "merge of a scalar", content: "strings:\n  <<: Acme\n", want: ErrStructure},
		{name: "merge of a scalar list", content: "strings:\n  <<: [Acme]\n", want: ErrStructure},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeDescriptor(t, test.content)

			descriptor, err := Load(path)
			if descriptor != nil {
				t.Error("failed Load returned a descriptor")
			}
			if !errors.Is(err, test.want) {
				t.Fatalf("Load error = %v, want %v", err, test.want)
			}
			var loadError *LoadError
			if !errors.As(err, &loadError) {
				t.Fatalf("Load error %T is not a *LoadError", err)
			}
			if loadError.Path != path {
				t.Errorf("LoadError.Path = %q, want %q", loadError.Path, path)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "absent.desc")

	_, err := Load(path)

	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("Load error = %v, want ErrUnreadable", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load error = %v, want it to wrap fs.ErrNotExist", err)
	}
}

type recordingLoader struct {
	path string
	size image.Point
}

func (r *recordingLoader) Load(path string, size image.Point) image.Image {
	r.path, r.size = path, size
	return image.NewGray(image.Rectangle{Max: size})
}

func TestImageDelegatesToLoader(t *testing.T) {
	path := writeDescriptor(t, fullDescriptor)
	loader := &recordingLoader{}
	descriptor := mustLoad(t, path, WithImageLoader(loader))

	result := descriptor.Image(ProductLogo, image.Pt(64, 32))

	if loader.path != filepath.Join(filepath.Dir(path), "logo.png") {
		t.Errorf("loader called with path %q", loader.path)
	}
	if loader.size != image.Pt(64, 32) {
		t.Errorf("loader called with size %v", loader.size)
	}
	if _, isGray := result.(*image.Gray); !isGray {
		t.Errorf("Image returned %T, want the loader's result", result)
	}
}

func TestImageWithDefaultLoader(t *testing.T) {
	root := t.TempDir()
	path := testutil.WriteComponent(t, root, "acme", "images:\n  productLogo: logo.png\n  productIcon: missing.png\n")
	testutil.WritePNG(t, filepath.Join(root, "acme", "logo.png"), 8, 8, image.Black.C)

	descriptor := mustLoad(t, path)

	logo := descriptor.Image(ProductLogo, image.Pt(16, 16))
	if _, _, _, alpha := logo.At(8, 8).RGBA(); alpha == 0 {
		t.Error("logo center is transparent, want the loaded image")
	}
	icon := descriptor.Image(ProductIcon, image.Pt(16, 16))
	if got := icon.Bounds().Size(); got != image.Pt(16, 16) {
		t.Errorf("missing icon placeholder size = %v, want 16x16", got)
	}
	if _, _, _, alpha := icon.At(8, 8).RGBA(); alpha != 0 {
		t.Error("missing icon placeholder is not transparent")
	}
}
