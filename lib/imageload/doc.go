// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

// Package imageload loads branding images at the size the UI asks for.
//
// [Loader] decodes PNG, JPEG, GIF, and WebP files, scales them to fit
// the requested size with Catmull-Rom resampling (keeping the aspect
// ratio, centered on a transparent canvas), and caches the results in
// an LRU keyed by path, size, and the file's modification time and
// length, so a replaced file is picked up on the next request.
//
// Load never returns an error. A missing path, an unreadable file, or
// undecodable data yields a transparent [Placeholder] of the requested
// size and a warning on the Loader's logger; the UI shows a blank area
// instead of failing. [Decode] is exported for callers that want the
// error, such as descriptor validation.
package imageload
