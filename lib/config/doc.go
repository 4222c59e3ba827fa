// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the installer settings file.
//
// The settings file is named by either the INSTALLER_CONFIG environment
// variable (via [Load]) or a --config flag (via [LoadFile]). There is
// no automatic discovery, so the file in effect is always the one the
// operator named.
//
// The settings choose the branding component and where to look for it:
//
//	branding: acme
//	branding_search_paths:
//	  - ${HOME}/.local/share/installer/branding
//	  - /usr/share/installer/branding
//	log_level: info
//	image_cache_size: 64
//
// ${HOME} and ${VAR:-default} patterns are expanded in search paths.
// [Config.BrandingDescriptorPath] returns the first
// <search path>/<branding>/<branding>.desc that exists.
//
// This package depends on no other installer packages.
package config
