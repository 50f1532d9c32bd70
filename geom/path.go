// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "math"

// Segment is a single piece of a Path contour.
type Segment interface {
	isSegment()
}

// LineSeg draws a straight line to a point.
type LineSeg struct {
	To Point
}

func (LineSeg) isSegment() {}

// ArcSeg draws a circular arc around Center. Angles are in radians,
// measured from the positive X axis towards positive Y (clockwise on
// screen). Sweep may be negative.
type ArcSeg struct {
	Center Point
	Radius float64
	Start  float64
	Sweep  float64
}

func (ArcSeg) isSegment() {}

// End returns the point the arc finishes at.
func (a ArcSeg) End() Point {
	return a.pointAt(a.Start + a.Sweep)
}

func (a ArcSeg) begin() Point {
	return a.pointAt(a.Start)
}

func (a ArcSeg) pointAt(angle float64) Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}

// Path is one contour of line and arc segments.
type Path struct {
	Start  Point
	Segs   []Segment
	Closed bool
}

// NewPath starts a contour at p.
func NewPath(p Point) *Path {
	return &Path{Start: p, Segs: make([]Segment, 0, 8)}
}

// Current returns the end point of the last segment.
func (p *Path) Current() Point {
	if len(p.Segs) == 0 {
		return p.Start
	}
	switch s := p.Segs[len(p.Segs)-1].(type) {
	case LineSeg:
		return s.To
	case ArcSeg:
		return s.End()
	}
	return p.Start
}

// LineTo adds a line from the current point. Zero-length lines are dropped.
func (p *Path) LineTo(x, y float64) *Path {
	to := Pt(x, y)
	if near(to, p.Current()) {
		return p
	}
	p.Segs = append(p.Segs, LineSeg{To: to})
	return p
}

// Arc adds an arc. If the arc does not begin at the current point a
// connecting line is inserted first. Zero-radius arcs are dropped.
func (p *Path) Arc(cx, cy, r, start, sweep float64) *Path {
	if r <= 0 || sweep == 0 {
		return p
	}
	a := ArcSeg{Center: Pt(cx, cy), Radius: r, Start: start, Sweep: sweep}
	if b := a.begin(); !near(b, p.Current()) {
		p.Segs = append(p.Segs, LineSeg{To: b})
	}
	p.Segs = append(p.Segs, a)
	return p
}

// Close marks the contour closed. A final line back to Start is implied.
func (p *Path) Close() *Path {
	p.Closed = true
	return p
}

// Transform returns the path mapped through m and then moved by offset.
func (p *Path) Transform(m Matrix2, offset Point) *Path {
	out := &Path{
		Start:  m.Apply(p.Start).Add(offset),
		Segs:   make([]Segment, len(p.Segs)),
		Closed: p.Closed,
	}
	scale := m.ScaleFactor()
	flip := 1.0
	if m.Reflects() {
		flip = -1
	}
	for i, s := range p.Segs {
		switch s := s.(type) {
		case LineSeg:
			out.Segs[i] = LineSeg{To: m.Apply(s.To).Add(offset)}
		case ArcSeg:
			dir := m.Apply(Pt(math.Cos(s.Start), math.Sin(s.Start)))
			out.Segs[i] = ArcSeg{
				Center: m.Apply(s.Center).Add(offset),
				Radius: s.Radius * scale,
				Start:  math.Atan2(dir.Y, dir.X),
				Sweep:  s.Sweep * flip,
			}
		}
	}
	return out
}

// Flatten approximates the path with a polygon whose chords deviate from
// the arcs by at most tolerance. The closing edge is implied, so the
// start point is not repeated.
func (p *Path) Flatten(tolerance float64) []Point {
	if tolerance <= 0 {
		tolerance = 0.1
	}
	pts := []Point{p.Start}
	for _, s := range p.Segs {
		switch s := s.(type) {
		case LineSeg:
			pts = append(pts, s.To)
		case ArcSeg:
			n := arcSteps(s.Radius, s.Sweep, tolerance)
			for i := 1; i <= n; i++ {
				pts = append(pts, s.pointAt(s.Start+s.Sweep*float64(i)/float64(n)))
			}
		}
	}
	if len(pts) > 1 && near(pts[0], pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// PathSink receives flattened path geometry. *gg.Context satisfies it.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

// Emit feeds the flattened path into dst.
func (p *Path) Emit(dst PathSink, tolerance float64) {
	pts := p.Flatten(tolerance)
	if len(pts) == 0 {
		return
	}
	dst.MoveTo(pts[0].X, pts[0].Y)
	for _, q := range pts[1:] {
		dst.LineTo(q.X, q.Y)
	}
	if p.Closed {
		dst.ClosePath()
	}
}

// Bounds returns the bounding box of the flattened path.
func (p *Path) Bounds() (lo, hi Point) {
	pts := p.Flatten(0.25)
	lo, hi = pts[0], pts[0]
	for _, q := range pts[1:] {
		lo.X, lo.Y = math.Min(lo.X, q.X), math.Min(lo.Y, q.Y)
		hi.X, hi.Y = math.Max(hi.X, q.X), math.Max(hi.Y, q.Y)
	}
	return lo, hi
}

func arcSteps(r, sweep, tolerance float64) int {
	if r <= tolerance {
		return 1
	}
	step := 2 * math.Acos(1-tolerance/r)
	n := int(math.Ceil(math.Abs(sweep) / step))
	return max(n, 1)
}

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
