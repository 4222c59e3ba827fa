// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package branding

// GlobalsKey is the shared-store key under which [Descriptor.SetGlobals]
// publishes the branding strings.
const GlobalsKey = "branding"

// GlobalStore is the part of the shared key-value store that
// SetGlobals writes to. The Store in lib/globalstore implements it.
type GlobalStore interface {
	Insert(key string, value any)
}

// SetGlobals publishes every string entry the descriptor sets as a
// map[string]string under [GlobalsKey], keyed by the entry keys. Entries
// the descriptor does not set are left out of the map. The map is a
// copy taken at call time.
func (d *Descriptor) SetGlobals(store GlobalStore) {
	exported := make(map[string]string, len(d.strings))
	for key, value := range d.strings {
		exported[key] = value
	}
	store.Insert(GlobalsKey, exported)
}
