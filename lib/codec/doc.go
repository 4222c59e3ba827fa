// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the installer's CBOR encoding configuration.
//
// CBOR is used for binary snapshots of the shared key-value store, the
// state bag that modules (native and scripted) read branding strings
// and other facts from. Snapshots are compared across runs and attached
// to bug reports, so the encoder uses Core Deterministic Encoding
// (RFC 8949 §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. The same store contents always produce the
// same bytes.
//
// Values decoded into any-typed targets come back as map[string]any
// rather than CBOR's default map[any]any, matching what the JSON and
// YAML snapshot loaders produce.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// [MarshalCompressed] and [UnmarshalCompressed] wrap the same encoding
// in a zstd frame for on-disk snapshots. [Diagnose] renders CBOR in
// diagnostic notation (RFC 8949 §8) for display.
package codec
