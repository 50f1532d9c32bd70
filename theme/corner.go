// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package theme

import (
	"math"

	"github.com/gogpu/decor/geom"
)

// CornerGeometry describes a window corner in canonical top-right
// coordinates: the outer edges are y=0 and x=W, the decoration continues
// to the left and downwards.
type CornerGeometry struct {
	W, H    float64 // corner area size
	Radius  float64 // drawn radius, 0 for a square corner
	Outline float64 // outline width along the outer edges
}

func (g CornerGeometry) radius() float64 {
	return math.Max(0, math.Min(g.Radius, math.Min(g.W, g.H)))
}

// Scaled returns g with every length multiplied by s.
func (g CornerGeometry) Scaled(s float64) CornerGeometry {
	return CornerGeometry{W: g.W * s, H: g.H * s, Radius: g.Radius * s, Outline: g.Outline * s}
}

// Outer returns the full corner fill shape.
func (g CornerGeometry) Outer() *geom.Path {
	r := g.radius()
	p := geom.NewPath(geom.Pt(0, 0))
	if r > 0 {
		p.LineTo(g.W-r, 0)
		p.Arc(g.W-r, r, r, -math.Pi/2, math.Pi/2)
	} else {
		p.LineTo(g.W, 0)
	}
	p.LineTo(g.W, g.H)
	p.LineTo(0, g.H)
	return p.Close()
}

// Inner returns the shape left after insetting the outer edges by the
// outline width. It is filled with the border color.
func (g CornerGeometry) Inner() *geom.Path {
	r, o := g.radius(), math.Max(0, g.Outline)
	p := geom.NewPath(geom.Pt(0, o))
	if r > o {
		p.LineTo(g.W-r, o)
		p.Arc(g.W-r, r, r-o, -math.Pi/2, math.Pi/2)
	} else {
		p.LineTo(g.W-o, o)
	}
	p.LineTo(g.W-o, g.H)
	p.LineTo(0, g.H)
	return p.Close()
}

// Place maps a canonical path through m and shifts it so the corner box
// lands at the origin. It returns the shifted path and the box size.
func (g CornerGeometry) Place(p *geom.Path, m geom.Matrix2) (*geom.Path, geom.Size) {
	box := m.Transformed(geom.R(0, 0, int(math.Round(g.W)), int(math.Round(g.H))))
	return p.Transform(m, geom.Pt(float64(-box.X), float64(-box.Y))), box.Size()
}
