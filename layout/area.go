// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/theme"
)

// Area is a placed decoration element. The concrete type is one of
// *TitleArea, *EllipsisArea, *IconArea, *ButtonArea, *BorderArea,
// *AccentArea or *CornerArea.
type Area interface {
	// Geometry returns the frame-local rectangle.
	Geometry() geom.Rect
	// Edge returns the frame edge, or geom.EdgeNone for corners.
	Edge() geom.Edge
	// Transform maps canonical top-edge drawing onto this edge.
	Transform() geom.Matrix2

	isArea()
}

type base struct {
	Rect geom.Rect
	On   geom.Edge
}

func (b *base) Geometry() geom.Rect { return b.Rect }

func (b *base) Edge() geom.Edge { return b.On }

func (b *base) Transform() geom.Matrix2 { return geom.EdgeTransform(b.On) }

func (*base) isArea() {}

// TitleArea holds the window title. When Truncated is set the text did
// not fit and an EllipsisArea follows immediately.
type TitleArea struct {
	base
	Truncated bool
	Dots      geom.Rect
}

// EllipsisArea holds the "..." drawn after a truncated title.
type EllipsisArea struct {
	base
}

// IconArea holds the application icon.
type IconArea struct {
	base
}

// ButtonArea holds one title bar button.
type ButtonArea struct {
	base
	Kind theme.ButtonKind
}

// BorderArea is a plain border segment.
type BorderArea struct {
	base
}

// AccentArea is a colored segment of an edge. Extent is the rectangle the
// accent is composited in: its own geometry, grown over any window corner
// it runs into.
type AccentArea struct {
	base
	Index  int
	Style  string
	Extent geom.Rect
}

// CornerArea is one window corner. Radius is the drawn radius, 0 for a
// square corner.
type CornerArea struct {
	base
	Corner geom.Corner
	Radius int
}

// Transform returns the reflection from the canonical top-right corner.
func (c *CornerArea) Transform() geom.Matrix2 { return geom.CornerTransform(c.Corner) }

// OutlineRect returns the outline strip of a border or accent segment
// along its outer side. On the left and right edges the strip height is
// y+height rather than height; the excess falls outside the segment and is
// removed by clipping to the segment.
func OutlineRect(a Area, outline int) geom.Rect {
	g := a.Geometry()
	o := min(outline, g.W, g.H)
	if o <= 0 {
		return geom.Rect{}
	}
	switch a.Edge() {
	case geom.EdgeTop:
		return geom.R(g.X, g.Y, g.W, o)
	case geom.EdgeBottom:
		return geom.R(g.X, g.Bottom()-o, g.W, o)
	case geom.EdgeLeft:
		return geom.R(g.X, g.Y, o, g.Y+g.H)
	case geom.EdgeRight:
		return geom.R(g.Right()-o, g.Y, o, g.Y+g.H)
	default:
		return geom.Rect{}
	}
}
