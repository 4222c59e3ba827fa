// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package branding

import "fmt"

// StringEntry identifies a descriptive string under the descriptor's
// "strings" section.
type StringEntry int

const (
	ProductName StringEntry = iota
	Version
	ShortVersion
	VersionedName
	ShortVersionedName
	ShortProductName
	BootloaderEntryName
	ProductURL
	SupportURL
	KnownIssuesURL
	ReleaseNotesURL

	stringEntryCount
)

// ImageEntry identifies an image path under the "images" section.
type ImageEntry int

const (
	ProductLogo ImageEntry = iota
	ProductIcon
	ProductWelcome

	imageEntryCount
)

// StyleEntry identifies a color value under the "style" section.
type StyleEntry int

const (
	SidebarBackground StyleEntry = iota
	SidebarText
	SidebarTextSelect
	SidebarTextHighlight

	styleEntryCount
)

// The key tables are indexed by the entry constants themselves and
// sized by the trailing count constant, so an entry cannot be given a
// key at the wrong position and an out-of-range index does not compile.
// TestEntryKeys catches an entry that was added without a key.

var stringEntryKeys = [stringEntryCount]string{
	ProductName:         "productName",
	Version:             "version",
	ShortVersion:        "shortVersion",
	VersionedName:       "versionedName",
	ShortVersionedName:  "shortVersionedName",
	ShortProductName:    "shortProductName",
	BootloaderEntryName: "bootloaderEntryName",
	ProductURL:          "productUrl",
	SupportURL:          "supportUrl",
	KnownIssuesURL:      "knownIssuesUrl",
	ReleaseNotesURL:     "releaseNotesUrl",
}

var imageEntryKeys = [imageEntryCount]string{
	ProductLogo:    "productLogo",
	ProductIcon:    "productIcon",
	ProductWelcome: "productWelcome",
}

var styleEntryKeys = [styleEntryCount]string{
	SidebarBackground:    "sidebarBackground",
	SidebarText:          "sidebarText",
	SidebarTextSelect:    "sidebarTextSelect",
	SidebarTextHighlight: "sidebarTextHighlight",
}

// Key returns the descriptor key for entry, or "" for a value outside
// the enumeration.
func (entry StringEntry) Key() string {
	if entry < 0 || entry >= stringEntryCount {
		return ""
	}
	return stringEntryKeys[entry]
}

func (entry StringEntry) String() string {
	if key := entry.Key(); key != "" {
		return key
	}
	return fmt.Sprintf("StringEntry(%d)", int(entry))
}

// Key returns the descriptor key for entry, or "" for a value outside
// the enumeration.
func (entry ImageEntry) Key() string {
	if entry < 0 || entry >= imageEntryCount {
		return ""
	}
	return imageEntryKeys[entry]
}

func (entry ImageEntry) String() string {
	if key := entry.Key(); key != "" {
		return key
	}
	return fmt.Sprintf("ImageEntry(%d)", int(entry))
}

// Key returns the descriptor key for entry, or "" for a value outside
// the enumeration.
func (entry StyleEntry) Key() string {
	if entry < 0 || entry >= styleEntryCount {
		return ""
	}
	return styleEntryKeys[entry]
}

func (entry StyleEntry) String() string {
	if key := entry.Key(); key != "" {
		return key
	}
	return fmt.Sprintf("StyleEntry(%d)", int(entry))
}

// AllStringEntries returns every StringEntry in declaration order.
func AllStringEntries() []StringEntry {
	entries := make([]StringEntry, stringEntryCount)
	for index := range entries {
		entries[index] = StringEntry(index)
	}
	return entries
}

// AllImageEntries returns every ImageEntry in declaration order.
func AllImageEntries() []ImageEntry {
	entries := make([]ImageEntry, imageEntryCount)
	for index := range entries {
		entries[index] = ImageEntry(index)
	}
	return entries
}

// AllStyleEntries returns every StyleEntry in declaration order.
func AllStyleEntries() []StyleEntry {
	entries := make([]StyleEntry, styleEntryCount)
	for index := range entries {
		entries[index] = StyleEntry(index)
	}
	return entries
}

// ParseStringEntry returns the StringEntry whose key is key.
func ParseStringEntry(key string) (StringEntry, error) {
	for index, candidate := range stringEntryKeys {
		if candidate == key {
			return StringEntry(index), nil
		}
	}
	return 0, fmt.Errorf("unknown string entry %q", key)
}

// ParseImageEntry returns the ImageEntry whose key is key.
func ParseImageEntry(key string) (ImageEntry, error) {
	for index, candidate := range imageEntryKeys {
		if candidate == key {
			return ImageEntry(index), nil
		}
	}
	return 0, fmt.Errorf("unknown image entry %q", key)
}

// ParseStyleEntry returns the StyleEntry whose key is key.
func ParseStyleEntry(key string) (StyleEntry, error) {
	for index, candidate := range styleEntryKeys {
		if candidate == key {
			return StyleEntry(index), nil
		}
	}
	return 0, fmt.Errorf("unknown style entry %q", key)
}
