// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package theme

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/internal/dlog"
	"github.com/gogpu/decor/internal/raster"
)

// Ellipsis is appended to truncated titles.
const Ellipsis = "..."

// Orientation describes how a title raster is turned to fit its edge.
type Orientation uint8

const (
	// OrientVertical rotates the text a quarter turn clockwise.
	OrientVertical Orientation = 1 << iota
	// OrientFlipX mirrors the result horizontally.
	OrientFlipX
	// OrientFlipY mirrors the result vertically.
	OrientFlipY
)

// OrientationFor returns the title orientation used on edge e. Text on the
// right edge reads top to bottom, text on the left edge bottom to top.
func OrientationFor(e geom.Edge) Orientation {
	switch e {
	case geom.EdgeRight:
		return OrientVertical
	case geom.EdgeLeft:
		return OrientVertical | OrientFlipX | OrientFlipY
	default:
		return 0
	}
}

// Theme renders decoration elements from resolved Options.
type Theme struct {
	opts  Options
	text  TextBackend
	icons IconLoader
}

// Option configures a Theme.
type Option func(*Theme)

// WithTextBackend overrides font lookup.
func WithTextBackend(tb TextBackend) Option {
	return func(t *Theme) { t.text = tb }
}

// WithFontData uses the given TrueType/OpenType data instead of looking
// up Options.Font. Invalid data is logged and ignored.
func WithFontData(data []byte) Option {
	return func(t *Theme) {
		ft, err := NewFontText(data)
		if err != nil {
			dlog.L().Warn("decor: font data rejected", "err", err)
			return
		}
		t.text = ft
	}
}

// WithIconLoader overrides icon lookup.
func WithIconLoader(l IconLoader) Option {
	return func(t *Theme) { t.icons = l }
}

// New creates a theme for opts.
func New(opts Options, o ...Option) *Theme {
	t := &Theme{opts: opts}
	for _, fn := range o {
		fn(t)
	}
	if t.text == nil {
		t.text = ResolveFont(opts.Font)
	}
	if t.icons == nil {
		t.icons = SystemIcons(opts.IconTheme)
	}
	return t
}

// Options returns the resolved option values.
func (t *Theme) Options() Options { return t.opts }

// Text returns the text backend in use.
func (t *Theme) Text() TextBackend { return t.text }

// MeasureText returns the logical size of s rounded up to whole pixels,
// with the width capped at maxWidth when maxWidth is positive.
func (t *Theme) MeasureText(s string, maxWidth int) geom.Size {
	if s == "" {
		return geom.Size{}
	}
	w, h := t.text.Measure(s, float64(t.opts.FontSize))
	sz := geom.Size{W: int(math.Ceil(w)), H: int(math.Ceil(h))}
	if maxWidth > 0 && sz.W > maxWidth {
		sz.W = maxWidth
	}
	return sz
}

// TitleSize returns the uncapped size of title and of the ellipsis.
func (t *Theme) TitleSize(title string) (full, dots geom.Size) {
	return t.MeasureText(title, 0), t.MeasureText(Ellipsis, 0)
}

// RasterizeTitle renders s in the title color for the activation state.
// maxWidth bounds the horizontal raster width in logical pixels before
// orientation is applied.
func (t *Theme) RasterizeTitle(s string, active bool, scale float64, maxWidth int, orient Orientation) *Raster {
	if s == "" {
		return NewRaster(0, 0)
	}
	px := float64(t.opts.FontSize) * scale
	w, h := t.text.Measure(s, px)
	iw, ih := int(math.Ceil(w)), int(math.Ceil(h))
	if maxWidth > 0 {
		iw = min(iw, int(math.Ceil(float64(maxWidth)*scale)))
	}
	if iw <= 0 || ih <= 0 {
		return NewRaster(0, 0)
	}
	img := image.NewRGBA(image.Rect(0, 0, iw, ih))
	t.text.Draw(img, s, px, 0, t.text.Ascent(px), t.opts.TitleColors.Pick(active).Color())
	r := rasterFromRGBA(img)
	return r.Orient(orient)
}

// Orient returns r turned according to o. The receiver is returned
// unchanged for the zero orientation.
func (r *Raster) Orient(o Orientation) *Raster {
	pm := r.pm
	if o&OrientVertical != 0 {
		pm = raster.RotateCW(pm)
	}
	if o&(OrientFlipX|OrientFlipY) != 0 {
		pm = raster.Mirror(pm, o&OrientFlipX != 0, o&OrientFlipY != 0)
	}
	if pm == r.pm {
		return r
	}
	return &Raster{pm: pm}
}

// RasterizeIcon renders the icon for appID at IconSize logical pixels.
// A deterministic placeholder is drawn when no icon can be loaded.
func (t *Theme) RasterizeIcon(appID string, scale float64) *Raster {
	size := int(math.Round(float64(t.opts.IconSize) * scale))
	if size <= 0 {
		return NewRaster(0, 0)
	}
	img, err := t.icons.Load(appID, size)
	if err != nil {
		dlog.L().Debug("decor: icon fallback", "app_id", appID, "err", err)
		return placeholderIcon(appID, size)
	}
	return scaleIcon(img, size)
}

// Corner returns the canonical geometry for a corner box of the given
// logical size and drawn radius.
func (t *Theme) Corner(radius int, box geom.Size) CornerGeometry {
	return CornerGeometry{
		W:       float64(box.W),
		H:       float64(box.H),
		Radius:  float64(radius),
		Outline: float64(t.opts.OutlineSize),
	}
}

// RasterizeCorner renders one corner into a box of the given logical size,
// whose height is the band height of its row. m maps the canonical
// top-right drawing onto the target corner and carries the render scale.
func (t *Theme) RasterizeCorner(active bool, radius int, m geom.Matrix2, box geom.Size) *Raster {
	scale := m.ScaleFactor()
	if scale == 0 || box.Empty() {
		return NewRaster(0, 0)
	}
	g := t.Corner(radius, box).Scaled(scale)
	unit := m.Multiply(geom.Scale2(1 / scale))

	outer, size := g.Place(g.Outer(), unit)
	if size.Empty() {
		return NewRaster(0, 0)
	}
	inner, _ := g.Place(g.Inner(), unit)

	dc := gg.NewContext(size.W, size.H)
	defer func() { _ = dc.Close() }()
	dc.SetColor(t.opts.OutlineColors.Pick(active).Color())
	outer.Emit(dc, 0.1)
	fill(dc, "corner outline")
	dc.SetColor(t.opts.BorderColors.Pick(active).Color())
	inner.Emit(dc, 0.1)
	fill(dc, "corner")
	return &Raster{pm: dc.ResizeTarget()}
}

// fill fills the current path of dc, logging a failure as what.
func fill(dc *gg.Context, what string) {
	if err := dc.Fill(); err != nil {
		dlog.L().Warn("decor: fill failed", "shape", what, "err", err)
	}
}
