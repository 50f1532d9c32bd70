// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package theme

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/decor/geom"
)

// ButtonKind identifies a title bar button.
type ButtonKind uint8

const (
	ButtonMinimize ButtonKind = iota
	ButtonMaximize
	ButtonClose
)

func (k ButtonKind) String() string {
	switch k {
	case ButtonMinimize:
		return "minimize"
	case ButtonMaximize:
		return "maximize"
	default:
		return "close"
	}
}

// ButtonStyle selects how buttons are drawn.
type ButtonStyle string

const (
	// ButtonStyleSimple draws a plain colored disc.
	ButtonStyleSimple ButtonStyle = "simple"
	// ButtonStyleSymbol draws the disc with a glyph on top.
	ButtonStyleSymbol ButtonStyle = "symbol"
)

func buttonGlyph(kind ButtonKind, s float64) []*geom.Path {
	c := s / 2
	arm := s * 0.22
	th := math.Max(1, s*0.09)
	rect := func(x, y, w, h float64) *geom.Path {
		return geom.NewPath(geom.Pt(x, y)).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
	}
	switch kind {
	case ButtonMinimize:
		return []*geom.Path{rect(c-arm, c-th/2, 2*arm, th)}
	case ButtonMaximize:
		x0, y0, l := c-arm, c-arm, 2*arm
		return []*geom.Path{
			rect(x0, y0, l, th),
			rect(x0, y0+l-th, l, th),
			rect(x0, y0, th, l),
			rect(x0+l-th, y0, th, l),
		}
	default:
		d := th / math.Sqrt2
		bar := func(sx float64) *geom.Path {
			// Thin quad along the diagonal through the center.
			ax, ay := c-arm*sx, c-arm
			bx, by := c+arm*sx, c+arm
			return geom.NewPath(geom.Pt(ax+d*sx, ay-d)).
				LineTo(bx+d*sx, by-d).
				LineTo(bx-d*sx, by+d).
				LineTo(ax-d*sx, ay+d).
				Close()
		}
		return []*geom.Path{bar(1), bar(-1)}
	}
}

func (t *Theme) buttonColor(kind ButtonKind, hovered, active bool) gg.RGBA {
	if !active && t.opts.InactiveButtons {
		return t.opts.TitleColors.Inactive
	}
	set := t.opts.Buttons(kind)
	if hovered {
		return set.Hovered
	}
	return set.Normal
}

// RasterizeButton draws a button of ButtonSize logical pixels at scale.
func (t *Theme) RasterizeButton(kind ButtonKind, hovered, active bool, scale float64) *Raster {
	size := int(math.Round(float64(t.opts.ButtonSize) * scale))
	if size <= 0 {
		return NewRaster(0, 0)
	}
	s := float64(size)
	dc := gg.NewContext(size, size)
	defer func() { _ = dc.Close() }()

	dc.SetColor(t.buttonColor(kind, hovered, active).Color())
	dc.DrawCircle(s/2, s/2, s/2)
	fill(dc, "button")

	if ButtonStyle(t.opts.ButtonStyle) == ButtonStyleSymbol {
		dc.SetColor(t.opts.BorderColors.Pick(active).Color())
		for _, p := range buttonGlyph(kind, s) {
			p.Emit(dc, 0.1)
			fill(dc, "button glyph")
		}
	}
	return &Raster{pm: dc.ResizeTarget()}
}
