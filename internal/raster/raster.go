// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster implements the pixel-level boolean operations the corner
// and accent compositor needs on top of gg: clearing a shape or rectangle
// out of a pixmap, keeping only the inside of a shape, and the quarter-turn
// and mirror copies used for vertical title bars.
//
// gg pixmaps hold premultiplied RGBA, so clearing scales all four channels.
package raster

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/decor/geom"
)

// flattenTolerance is the maximum chord error, in pixels, when arcs are
// turned into polygons for masking.
const flattenTolerance = 0.1

// PathMask rasterizes p into a w×h coverage mask.
func PathMask(w, h int, p *geom.Path) *gg.Mask {
	if w <= 0 || h <= 0 {
		return gg.NewMask(0, 0)
	}
	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()
	p.Emit(dc, flattenTolerance)
	return dc.AsMask()
}

// apply scales every pixel of pm by the matching value of m.
func apply(pm *gg.Pixmap, m *gg.Mask) {
	dc := gg.NewContextForPixmap(pm)
	defer func() { _ = dc.Close() }()
	dc.ApplyMask(m)
}

// ClearMask removes the coverage of m from pm. m is not modified.
func ClearMask(pm *gg.Pixmap, m *gg.Mask) {
	inv := m.Clone()
	inv.Invert()
	apply(pm, inv)
}

// ClearPath removes the inside of p from pm.
func ClearPath(pm *gg.Pixmap, p *geom.Path) {
	m := PathMask(pm.Width(), pm.Height(), p)
	m.Invert()
	apply(pm, m)
}

// ClearRect makes every pixel of pm inside r transparent.
func ClearRect(pm *gg.Pixmap, r geom.Rect) {
	r = r.Intersect(geom.R(0, 0, pm.Width(), pm.Height()))
	data := pm.Data()
	for y := r.Y; y < r.Bottom(); y++ {
		row := data[(y*pm.Width()+r.X)*4 : (y*pm.Width()+r.Right())*4]
		clear(row)
	}
}

// KeepPathIn clears the pixels of pm that lie inside r but outside p.
// Pixels outside r are left untouched.
func KeepPathIn(pm *gg.Pixmap, p *geom.Path, r geom.Rect) {
	r = r.Intersect(geom.R(0, 0, pm.Width(), pm.Height()))
	if r.Empty() {
		return
	}
	m := PathMask(pm.Width(), pm.Height(), p)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if !r.Contains(float64(x), float64(y)) {
				m.Set(x, y, 255)
			}
		}
	}
	apply(pm, m)
}

// RotateCW returns a copy of pm turned a quarter turn clockwise.
func RotateCW(pm *gg.Pixmap) *gg.Pixmap {
	w, h := pm.Width(), pm.Height()
	out := gg.NewPixmap(h, w)
	src, dst := pm.Data(), out.Data()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// (x, y) lands on (h-1-y, x) in the h×w output.
			si := (y*w + x) * 4
			di := (x*h + (h - 1 - y)) * 4
			copy(dst[di:di+4], src[si:si+4])
		}
	}
	return out
}

// Mirror returns a copy of pm flipped horizontally and/or vertically.
func Mirror(pm *gg.Pixmap, flipX, flipY bool) *gg.Pixmap {
	w, h := pm.Width(), pm.Height()
	out := gg.NewPixmap(w, h)
	src, dst := pm.Data(), out.Data()
	for y := 0; y < h; y++ {
		sy := y
		if flipY {
			sy = h - 1 - y
		}
		for x := 0; x < w; x++ {
			sx := x
			if flipX {
				sx = w - 1 - x
			}
			si := (sy*w + sx) * 4
			di := (y*w + x) * 4
			copy(dst[di:di+4], src[si:si+4])
		}
	}
	return out
}

// Alpha returns the alpha value of pm at (x, y), or 0 outside.
func Alpha(pm *gg.Pixmap, x, y int) uint8 {
	if x < 0 || y < 0 || x >= pm.Width() || y >= pm.Height() {
		return 0
	}
	return pm.Data()[(y*pm.Width()+x)*4+3]
}
