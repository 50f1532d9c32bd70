// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package theme holds resolved decoration style values and turns them into
// rasters on demand.
//
// An Options value is immutable once resolved; a config reload produces a
// new one. A Theme wraps Options together with the text and icon backends
// and answers the pure rendering questions the decoration node asks:
//
//   - MeasureText: size of a title at a render scale
//   - RasterizeTitle: title text, horizontal or vertical
//   - RasterizeIcon: application icon, or a placeholder on lookup failure
//   - RasterizeCorner: one window corner drawn from the canonical top-right
//     geometry through a reflection matrix
//   - RasterizeButton: minimize/maximize/close in normal or hovered state
//
// Nothing here caches rendered output; callers key their own caches.
package theme
