// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

// Package branding loads an installer branding descriptor: the YAML
// file that names the product, points at its logos and slideshow,
// colors the sidebar, and sets the main window policy.
//
// A descriptor lives in its own component directory, for example
// /usr/share/installer/branding/acme/acme.desc. The component name is
// the file stem and relative paths inside the file resolve against the
// directory:
//
//	strings:
//	  productName: Acme Linux
//	  version: 2026.10
//	  supportUrl: https://acme.example/support
//	images:
//	  productLogo: logo.png
//	  productIcon: icon.png
//	style:
//	  sidebarBackground: "#292F34"
//	  sidebarText: "#FFFFFF"
//	slideshow: show.qml
//	translations: lang
//	welcomeStyleCalamares: false
//	welcomeExpandingLogo: true
//	windowExpanding: normal
//	windowSize: 800px,520px
//
// The known facts are closed enumerations: [StringEntry], [ImageEntry],
// and [StyleEntry]. Each entry's Key method gives the key it is read
// from. Absent keys are not errors; the accessors return "" for them.
// Aliases and merge keys ("<<") are followed. A key written
// twice in one mapping is an [ErrStructure] error.
//
// [Load] is all-or-nothing. A missing or unreadable file, invalid YAML,
// a section of the wrong shape, or an unknown windowExpanding mode
// returns a [*LoadError] wrapping [ErrUnreadable], [ErrSyntax],
// [ErrStructure], or [ErrInvalidSetting]. The installer cannot run
// without branding, so callers normally abort startup on that error.
//
// windowSize is "<width>,<height>", each side a [WindowDimension] in
// pixels ("px") or font heights ("em"). The two sides parse
// independently: a bad height does not invalidate a good width. A bare
// number carries no unit and is invalid, as is anything that fails to
// parse; callers use the window's natural size for invalid sides.
//
// [Descriptor.SetGlobals] copies the string entries into the shared
// key-value store under "branding" so that modules without access to
// the Descriptor (scripted modules in particular) can read them.
//
// [Active] is the explicitly owned holder for the descriptor in use.
//
// Dependencies: lib/suffix for dimension parsing and lib/imageload for
// the default image loader.
package branding
