// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

// Edge tags a decoration element with the frame edge it sits on.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeTop
	EdgeLeft
	EdgeBottom
	EdgeRight
)

// Edges lists the frame edges in layout order.
var Edges = [...]Edge{EdgeTop, EdgeLeft, EdgeBottom, EdgeRight}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeLeft:
		return "left"
	case EdgeBottom:
		return "bottom"
	case EdgeRight:
		return "right"
	default:
		return "none"
	}
}

// Horizontal reports whether the edge runs along the X axis.
func (e Edge) Horizontal() bool {
	return e == EdgeTop || e == EdgeBottom
}

// Mask returns the resize mask bit for the edge.
func (e Edge) Mask() EdgeMask {
	switch e {
	case EdgeTop:
		return EdgeMaskTop
	case EdgeBottom:
		return EdgeMaskBottom
	case EdgeLeft:
		return EdgeMaskLeft
	case EdgeRight:
		return EdgeMaskRight
	default:
		return 0
	}
}

// EdgeMask is a bit set of frame edges, used for resize and tiling
// requests. The bit values match the wlroots edge enumeration.
type EdgeMask uint32

const (
	EdgeMaskTop    EdgeMask = 1
	EdgeMaskBottom EdgeMask = 2
	EdgeMaskLeft   EdgeMask = 4
	EdgeMaskRight  EdgeMask = 8

	EdgeMaskAll = EdgeMaskTop | EdgeMaskBottom | EdgeMaskLeft | EdgeMaskRight
)

// Has reports whether every bit of o is set in m.
func (m EdgeMask) Has(o EdgeMask) bool {
	return m&o == o
}

func (m EdgeMask) String() string {
	if m == 0 {
		return "none"
	}
	s := ""
	for _, e := range Edges {
		if m.Has(e.Mask()) {
			if s != "" {
				s += "|"
			}
			s += e.String()
		}
	}
	return s
}

// Corner identifies one corner. Values run clockwise from the top-left so
// that rotating a shape by a quarter turn shifts corner indices by one.
type Corner uint8

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

// Corners lists all corners in clockwise order.
var Corners = [...]Corner{CornerTopLeft, CornerTopRight, CornerBottomRight, CornerBottomLeft}

func (c Corner) String() string {
	switch c {
	case CornerTopLeft:
		return "tl"
	case CornerTopRight:
		return "tr"
	case CornerBottomRight:
		return "br"
	default:
		return "bl"
	}
}

// Top reports whether the corner is on the top row.
func (c Corner) Top() bool {
	return c == CornerTopLeft || c == CornerTopRight
}

// Left reports whether the corner is on the left column.
func (c Corner) Left() bool {
	return c == CornerTopLeft || c == CornerBottomLeft
}

// CornerTransform returns the axis reflection that maps the canonical
// top-right corner drawing onto c.
func CornerTransform(c Corner) Matrix2 {
	switch c {
	case CornerTopLeft:
		return Matrix2{A: -1, D: 1}
	case CornerBottomLeft:
		return Matrix2{A: -1, D: -1}
	case CornerBottomRight:
		return Matrix2{A: 1, D: -1}
	default:
		return Identity2()
	}
}

// EdgeTransform returns the transform that maps canonical top-edge
// coordinates (u along the edge, v inward from the outer side) onto the
// local coordinates of a segment on e.
//
//	top:    (u, v) -> ( u,  v)
//	bottom: (u, v) -> ( u, -v)
//	left:   (u, v) -> ( v,  u)
//	right:  (u, v) -> (-v,  u)
//
// Negative results are relative to the far side of the segment; see
// EdgeOrigin.
func EdgeTransform(e Edge) Matrix2 {
	switch e {
	case EdgeBottom:
		return Matrix2{A: 1, D: -1}
	case EdgeLeft:
		return Matrix2{B: 1, C: 1}
	case EdgeRight:
		return Matrix2{B: -1, C: 1}
	default:
		return Identity2()
	}
}

// EdgeOrigin returns the translation that follows EdgeTransform for a
// segment of size s so the transformed shape lands inside [0,W]×[0,H].
func EdgeOrigin(e Edge, s Size) Point {
	switch e {
	case EdgeBottom:
		return Pt(0, float64(s.H))
	case EdgeRight:
		return Pt(float64(s.W), 0)
	default:
		return Point{}
	}
}

// EdgeQuarterTurns returns how many clockwise quarter turns EdgeTransform
// applies to the canonical corner order before any reflection.
func EdgeQuarterTurns(e Edge) int {
	switch e {
	case EdgeRight:
		return 1
	case EdgeBottom:
		return 3
	default:
		return 0
	}
}

// MapCorner returns the physical corner reached by canonical corner c
// after a transform with the given quarter turns and reflection flag.
func MapCorner(c Corner, turns int, reflected bool) Corner {
	if reflected {
		return Corner(mod4(turns - int(c)))
	}
	return Corner(mod4(int(c) + turns))
}

// CanonicalCorner is the inverse of MapCorner.
func CanonicalCorner(p Corner, turns int, reflected bool) Corner {
	if reflected {
		return Corner(mod4(turns - int(p)))
	}
	return Corner(mod4(int(p) - turns))
}

func mod4(i int) int {
	return ((i % 4) + 4) % 4
}
