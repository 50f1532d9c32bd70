// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package decor draws client-side window decorations and turns pointer
// input on them into window-management requests.
//
// A [Decoration] owns the decoration state of one window: its area
// layout, the cached title, icon, button, corner and accent rasters, and
// the textures uploaded for them. The host compositor talks to it through
// three small surfaces:
//
//   - [Renderer] uploads rasters and draws textured quads and rectangles.
//   - [Window] reports title, app id and state, and receives move, resize,
//     close, tile and minimize requests.
//   - [Decoration.HandleEvent] and the pointer and touch methods deliver
//     window changes and input.
//
// Rasters are regenerated lazily during [Decoration.Render], the only
// point at which the render scale is known. Active and inactive variants
// are rendered together, so activation changes only repaint.
//
// # Quick start
//
//	th := theme.New(theme.DefaultOptions())
//	m := decor.NewManager(renderer, th)
//	d, ok := m.Decorate(decor.WeakWindow(win))
//	if ok {
//	    d.HandleEvent(decor.WindowEvent{Kind: decor.EventGeometryChanged, Size: size})
//	    _ = d.Render(damage, 1)
//	}
//
// # Packages
//
//   - geom: rectangles, regions, edge transforms and vector paths
//   - theme: resolved theme options and the raster producers
//   - layout: area placement, hit testing and the press/drag state machine
//   - compositor: rounded corner and accent rasters with mutual clipping
//   - config: theme option files with per-theme fallback and reload
//   - match: view matcher expressions
//   - host/soft: a software host renderer on gg
//   - cmd/decordemo: renders decorations to PNG from the command line
//
// # Logging
//
// decor is silent by default. Call [SetLogger] to receive cache
// regeneration, layout and fallback diagnostics.
package decor
