// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package decor

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/decor/compositor"
	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/layout"
	"github.com/gogpu/decor/theme"
)

// TitleButtonInset is the minimum distance kept between the title and the
// buttons on the same edge.
const TitleButtonInset = 8

// DrawOp is one draw call produced by Paint. It is either a TextureOp or
// a RectOp.
type DrawOp interface {
	isDrawOp()
}

// TextureOp draws a raster into Dst, limited to Clip.
type TextureOp struct {
	Raster *theme.Raster
	Dst    geom.Rect
	Clip   geom.Rect
	Orient theme.Orientation
}

// RectOp fills Dst with Color, limited to Clip.
type RectOp struct {
	Dst   geom.Rect
	Color gg.RGBA
	Clip  geom.Rect
}

func (TextureOp) isDrawOp() {}
func (RectOp) isDrawOp()    {}

// Paint returns the draw operations for the parts of the decoration
// inside damage at the given render scale, in back-to-front order. Each
// operation is clipped to the damage, its area and the frame. Rasters
// whose inputs changed are rebuilt here.
func (d *Decoration) Paint(damage geom.Region, scale float64) []DrawOp {
	if d.detached || d.state.Fullscreen || scale <= 0 || damage.Empty() {
		return nil
	}
	d.refresh(scale)

	opts := d.th.Options()
	frame := geom.RectFromSize(d.size)
	damaged := damage.Rects()
	var ops []DrawOp
	clipped := func(area geom.Rect, emit func(clip geom.Rect)) {
		area = area.Intersect(frame)
		for _, r := range damaged {
			if c := r.Intersect(area); !c.Empty() {
				emit(c)
			}
		}
	}
	texture := func(ras *theme.Raster, dst, area geom.Rect, o theme.Orientation) {
		if ras.Empty() {
			return
		}
		clipped(area, func(c geom.Rect) {
			ops = append(ops, TextureOp{Raster: ras, Dst: dst, Clip: c, Orient: o})
		})
	}

	for _, a := range d.lay.Background() {
		switch a := a.(type) {
		case *layout.CornerArea:
			if p, ok := d.comp.Corner(a.Corner); ok {
				texture(p.Get(d.active), a.Rect, a.Rect, 0)
			}
		case *layout.AccentArea:
			if p, ok := d.comp.Accent(a.Index); ok {
				texture(p.Get(d.active), a.Extent, a.Extent, 0)
			}
		case *layout.BorderArea:
			outline := layout.OutlineRect(a, opts.OutlineSize)
			clipped(a.Rect, func(c geom.Rect) {
				ops = append(ops, RectOp{Dst: a.Rect, Color: opts.BorderColors.Pick(d.active), Clip: c})
				if !outline.Empty() {
					ops = append(ops, RectOp{Dst: outline, Color: opts.OutlineColors.Pick(d.active), Clip: c})
				}
			})
		}
	}

	for _, a := range d.lay.Foreground() {
		switch a := a.(type) {
		case *layout.TitleArea:
			ras := d.titles.title.Get(d.active)
			o := theme.OrientationFor(a.On)
			texture(ras, quad(a, ras, scale), d.titleClip(a.Rect, a.On), o)
		case *layout.EllipsisArea:
			ras := d.titles.dots.Get(d.active)
			o := theme.OrientationFor(a.On)
			texture(ras, quad(a, ras, scale), d.titleClip(a.Rect, a.On), o)
		case *layout.IconArea:
			texture(d.icon.r, a.Rect, a.Rect, 0)
		case *layout.ButtonArea:
			h, _ := d.lay.Hovered()
			texture(d.button(a.Kind, h == a, scale), a.Rect, a.Rect, 0)
		}
	}
	return ops
}

// quad returns where an unrotated text raster lands for area a. The text
// starts at the beginning of the run, which for the left edge is the
// bottom because the text reads upwards there.
func quad(a layout.Area, ras *theme.Raster, scale float64) geom.Rect {
	if ras.Empty() {
		return geom.Rect{}
	}
	g := a.Geometry()
	w := int(math.Ceil(float64(ras.Width()) / scale))
	h := int(math.Ceil(float64(ras.Height()) / scale))
	switch a.Edge() {
	case geom.EdgeLeft:
		return geom.R(g.X, g.Bottom()-w, h, w)
	case geom.EdgeRight:
		return geom.R(g.X, g.Y, h, w)
	default:
		return geom.R(g.X, g.Y, w, h)
	}
}

// titleClip narrows r to the gap between the nearest buttons of the same
// edge on either side, keeping TitleButtonInset from each.
func (d *Decoration) titleClip(r geom.Rect, e geom.Edge) geom.Rect {
	lo, hi := r.X, r.Right()
	if !e.Horizontal() {
		lo, hi = r.Y, r.Bottom()
	}
	mid := lo + hi
	for _, b := range d.lay.ButtonRects(e) {
		bs, be := b.X, b.Right()
		if !e.Horizontal() {
			bs, be = b.Y, b.Bottom()
		}
		if bs+be >= mid {
			hi = min(hi, bs-TitleButtonInset)
		} else {
			lo = max(lo, be+TitleButtonInset)
		}
	}
	n := max(hi-lo, 0)
	if e.Horizontal() {
		return geom.R(lo, r.Y, n, r.H)
	}
	return geom.R(r.X, lo, r.W, n)
}

// refresh rebuilds the rasters whose inputs changed.
func (d *Decoration) refresh(scale float64) {
	opts := d.th.Options()
	if d.lay.Spec().HasTitle() && (d.titleDirty || !d.titles.valid || d.titles.scale != scale) {
		if !d.titles.valid || d.titles.text != d.title || d.titles.scale != scale {
			c := titleCache{valid: true, text: d.title, scale: scale}
			for i, active := range []bool{false, true} {
				c.title[i] = d.th.RasterizeTitle(d.title, active, scale, opts.MaxTitleSize, 0)
				c.dots[i] = d.th.RasterizeTitle(theme.Ellipsis, active, scale, 0, 0)
			}
			d.titles = c
			d.stats.Title++
			Logger().Debug("decor: title regenerated", "title", d.title, "scale", scale)
		}
		d.titleDirty = false
	}
	if d.lay.Spec().HasIcon() && (d.iconDirty || !d.icon.valid || d.icon.scale != scale) {
		if !d.icon.valid || d.icon.appID != d.appID || d.icon.scale != scale {
			d.icon = iconCache{valid: true, appID: d.appID, scale: scale, r: d.th.RasterizeIcon(d.appID, scale)}
			d.stats.Icon++
			Logger().Debug("decor: icon regenerated", "app_id", d.appID, "scale", scale)
		}
		d.iconDirty = false
	}
	if d.btnScale != scale {
		d.buttons = nil
		d.btnScale = scale
	}
	d.comp.Update(d.lay, scale)
}

// button returns the raster of a button, building both activation
// variants on first use.
func (d *Decoration) button(kind theme.ButtonKind, hovered bool, scale float64) *theme.Raster {
	k := buttonKey{kind: kind, hovered: hovered}
	p, ok := d.buttons[k]
	if !ok {
		for i, active := range []bool{false, true} {
			p[i] = d.th.RasterizeButton(kind, hovered, active, scale)
		}
		if d.buttons == nil {
			d.buttons = make(map[buttonKey]compositor.Pair)
		}
		d.buttons[k] = p
		d.stats.Buttons++
	}
	return p.Get(d.active)
}

// Render paints damage through the renderer. Textures are uploaded on
// first use and released once their raster is no longer cached.
func (d *Decoration) Render(damage geom.Region, scale float64) error {
	if d.detached {
		return ErrDetached
	}
	for _, op := range d.Paint(damage, scale) {
		switch op := op.(type) {
		case TextureOp:
			tex, err := d.texture(op.Raster)
			if err != nil {
				return fmt.Errorf("decor: upload %dx%d raster: %w", op.Raster.Width(), op.Raster.Height(), err)
			}
			d.r.DrawTexturedQuad(tex, op.Dst, op.Clip, op.Orient)
		case RectOp:
			d.r.DrawRect(op.Dst, op.Color, op.Clip)
		}
	}
	d.releaseStale()
	return nil
}

func (d *Decoration) texture(ras *theme.Raster) (Texture, error) {
	if tex, ok := d.textures[ras]; ok {
		return tex, nil
	}
	tex, err := d.r.Upload(ras)
	if err != nil {
		return nil, err
	}
	d.textures[ras] = tex
	return tex, nil
}

// releaseStale frees textures of rasters that left every cache.
func (d *Decoration) releaseStale() {
	live := make(map[*theme.Raster]bool, len(d.textures))
	for _, p := range []compositor.Pair{d.titles.title, d.titles.dots} {
		live[p[0]], live[p[1]] = true, true
	}
	live[d.icon.r] = true
	for _, p := range d.buttons {
		live[p[0]], live[p[1]] = true, true
	}
	for _, a := range d.lay.Background() {
		var p compositor.Pair
		switch a := a.(type) {
		case *layout.CornerArea:
			p, _ = d.comp.Corner(a.Corner)
		case *layout.AccentArea:
			p, _ = d.comp.Accent(a.Index)
		}
		live[p[0]], live[p[1]] = true, true
	}
	for ras, tex := range d.textures {
		if !live[ras] {
			d.r.Release(tex)
			delete(d.textures, ras)
		}
	}
}
