// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

// Package globalstore is the installer's shared key-value store: the
// bag of facts that modules publish for each other. Branding strings
// land here under "branding" (see the branding package), next to
// whatever other modules insert, and scripted modules read the store
// rather than calling native accessors.
//
// Keys are strings; values are anything the snapshot encoders can
// represent (strings, numbers, booleans, and nested maps and slices of
// those). The store is not synchronized: like the rest of the installer
// state it is written during startup and module execution on the main
// goroutine.
//
// Snapshots come in three formats:
//
//   - JSON via [Store.SaveJSON] and [Store.LoadJSON]. LoadJSON accepts
//     JSONC (comments and trailing commas) so hand-written seed files
//     can be annotated.
//   - YAML via [Store.SaveYAML] and [Store.LoadYAML].
//   - Compressed deterministic CBOR via [Store.SaveSnapshot] and
//     [Store.LoadSnapshot], using lib/codec.
//
// Loading merges into the existing contents: keys in the file replace
// keys in the store, other keys are kept.
package globalstore
