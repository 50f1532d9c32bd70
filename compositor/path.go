// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compositor

import (
	"fmt"
	"math"

	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/internal/cache"
	"github.com/gogpu/decor/theme"
)

// Shape is the canonical description of an accent: a length×thickness
// strip in top-edge coordinates with treated corners.
type Shape struct {
	Length, Thickness float64
	Radius            float64
	Retract           float64 // pulled in at both ends
	Style             CornerStyle
}

// clampedRadius limits the radius to half the smaller side of the
// retracted strip.
func (s Shape) clampedRadius() float64 {
	l := s.Length - 2*s.Retract
	return math.Max(0, math.Min(s.Radius, math.Min(l, s.Thickness)/2))
}

// cut returns how far the straight edges stop short of corner c.
func (s Shape) cut(c geom.Corner) float64 {
	if s.Style.Kinds[c] == CornerFlat {
		return 0
	}
	return s.clampedRadius()
}

// Path builds the closed outline of the shape, clockwise on screen,
// starting on the top edge.
func (s Shape) Path() *geom.Path {
	r := s.clampedRadius()
	x0 := math.Min(s.Retract, s.Length/2)
	x1 := s.Length - x0
	t := s.Thickness
	k := s.Style.Kinds

	p := geom.NewPath(geom.Pt(x0+s.cut(geom.CornerTopLeft), 0))

	p.LineTo(x1-s.cut(geom.CornerTopRight), 0)
	switch k[geom.CornerTopRight] {
	case CornerRound:
		p.Arc(x1-r, r, r, -math.Pi/2, math.Pi/2)
	case CornerDiagonal:
		p.LineTo(x1, r)
	}

	p.LineTo(x1, t-s.cut(geom.CornerBottomRight))
	switch k[geom.CornerBottomRight] {
	case CornerRound:
		p.Arc(x1-r, t-r, r, 0, math.Pi/2)
	case CornerDiagonal:
		p.LineTo(x1-r, t)
	}

	p.LineTo(x0+s.cut(geom.CornerBottomLeft), t)
	switch k[geom.CornerBottomLeft] {
	case CornerRound:
		p.Arc(x0+r, t-r, r, math.Pi/2, math.Pi/2)
	case CornerDiagonal:
		p.LineTo(x0, t-r)
	}

	p.LineTo(x0, s.cut(geom.CornerTopLeft))
	switch k[geom.CornerTopLeft] {
	case CornerRound:
		p.Arc(x0+r, r, r, math.Pi, math.Pi/2)
	case CornerDiagonal:
		p.LineTo(x0+r, 0)
	}
	return p.Close()
}

// Run returns the straight middle of the strip: the full thickness between
// the corner treatments at both ends.
func (s Shape) Run() *geom.Path {
	x0 := math.Min(s.Retract, s.Length/2)
	x1 := s.Length - x0
	a := x0 + math.Max(s.cut(geom.CornerTopLeft), s.cut(geom.CornerBottomLeft))
	b := x1 - math.Max(s.cut(geom.CornerTopRight), s.cut(geom.CornerBottomRight))
	if b < a {
		a, b = (a+b)/2, (a+b)/2
	}
	return rectPath(a, 0, b-a, s.Thickness)
}

func rectPath(x, y, w, h float64) *geom.Path {
	return geom.NewPath(geom.Pt(x, y)).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
}

func (s Shape) key() string {
	return fmt.Sprintf("%g/%g/%g/%g/%v", s.Length, s.Thickness, s.Radius, s.Retract, s.Style)
}

// Canonical paths are pure functions of their parameters and are shared
// between all decorations.
var (
	shapeMemo  = cache.NewSharded[string, *geom.Path](1024, cache.StringHasher)
	cornerMemo = cache.NewSharded[string, *geom.Path](256, cache.StringHasher)
)

// memoPath returns the canonical path for s, building it at most once.
func memoPath(s Shape) *geom.Path {
	return shapeMemo.GetOrCreate(s.key(), s.Path)
}

// memoCornerOuter returns the outer shape of corner geometry g.
func memoCornerOuter(g theme.CornerGeometry) *geom.Path {
	key := fmt.Sprintf("%g/%g/%g/%g", g.W, g.H, g.Radius, g.Outline)
	return cornerMemo.GetOrCreate(key, g.Outer)
}

// ValidatePath reports an error when p is not a simple closed contour.
func ValidatePath(p *geom.Path) error {
	if !p.Closed {
		return fmt.Errorf("%w: not closed", ErrBadPath)
	}
	pts := p.Flatten(0.25)
	if len(pts) < 3 {
		return fmt.Errorf("%w: degenerate", ErrBadPath)
	}
	if geom.SelfIntersects(pts) {
		return fmt.Errorf("%w: self-intersecting", ErrBadPath)
	}
	return nil
}
