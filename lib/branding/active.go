// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package branding

// Active holds the descriptor the installer is currently running with.
// The embedding application creates one Active at startup and hands it
// to every component that needs branding, instead of reaching for a
// package-level instance.
//
// Active does no locking. Install and Load belong to startup, before
// any goroutine reads Current; after that only reads happen, and a
// Descriptor is immutable.
type Active struct {
	current *Descriptor
}

// Install makes descriptor the current one, replacing any previous one.
func (a *Active) Install(descriptor *Descriptor) {
	a.current = descriptor
}

// Load loads the descriptor at path and installs it. On failure the
// previously installed descriptor (if any) stays current and the
// *LoadError is returned.
func (a *Active) Load(path string, opts ...Option) (*Descriptor, error) {
	descriptor, err := Load(path, opts...)
	if err != nil {
		return nil, err
	}
	a.Install(descriptor)
	return descriptor, nil
}

// Current returns the installed descriptor, or nil before the first
// successful Install or Load.
func (a *Active) Current() *Descriptor {
	return a.current
}

// BrandingString returns a string entry from the current descriptor,
// or "" when nothing is installed or the entry is unset.
func (a *Active) BrandingString(entry StringEntry) string {
	if a.current == nil {
		return ""
	}
	return a.current.String(entry)
}
