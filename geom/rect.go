// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "fmt"

// Point is a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Cross returns the z component of the cross product of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Size is an integer width and height.
type Size struct {
	W, H int
}

// Empty reports whether the size has no area.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Scale returns the size multiplied by f, truncated like the host does.
func (s Size) Scale(f float64) Size {
	return Size{W: int(float64(s.W) * f), H: int(float64(s.H) * f)}
}

// Insets holds a width per side.
type Insets struct {
	Left, Top, Right, Bottom int
}

// IsZero reports whether all sides are zero.
func (in Insets) IsZero() bool {
	return in == Insets{}
}

// Rect is an integer rectangle with its origin at (X, Y).
type Rect struct {
	X, Y, W, H int
}

// R is a convenience function to create a Rect.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromSize returns the rectangle at the origin with size s.
func RectFromSize(s Size) Rect {
	return Rect{W: s.W, H: s.H}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Size returns the width and height of r.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersect returns the overlap of r and s, or the zero Rect when they do
// not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x0, y0 := max(r.X, s.X), max(r.Y, s.Y)
	x1, y1 := min(r.Right(), s.Right()), min(r.Bottom(), s.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Overlaps reports whether r and s share any pixel.
func (r Rect) Overlaps(s Rect) bool {
	return !r.Intersect(s).Empty()
}

// Contains reports whether the point (x, y) lies inside r.
// The left and top edges are inclusive, the right and bottom exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.X) && x < float64(r.Right()) &&
		y >= float64(r.Y) && y < float64(r.Bottom())
}

// ContainsRect reports whether s lies completely inside r.
// An empty s is contained in any rectangle.
func (r Rect) ContainsRect(s Rect) bool {
	if s.Empty() {
		return true
	}
	return s.X >= r.X && s.Y >= r.Y && s.Right() <= r.Right() && s.Bottom() <= r.Bottom()
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	x0, y0 := min(r.X, s.X), min(r.Y, s.Y)
	x1, y1 := max(r.Right(), s.Right()), max(r.Bottom(), s.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Inset shrinks r by in. Sides that would cross collapse to zero size.
func (r Rect) Inset(in Insets) Rect {
	out := Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: r.W - in.Left - in.Right,
		H: r.H - in.Top - in.Bottom,
	}
	out.W = max(out.W, 0)
	out.H = max(out.H, 0)
	return out
}

// subtract returns r minus s as up to four disjoint rectangles.
func subtract(r, s Rect) []Rect {
	in := r.Intersect(s)
	if in.Empty() {
		return []Rect{r}
	}
	out := make([]Rect, 0, 4)
	if in.Y > r.Y {
		out = append(out, Rect{X: r.X, Y: r.Y, W: r.W, H: in.Y - r.Y})
	}
	if in.Bottom() < r.Bottom() {
		out = append(out, Rect{X: r.X, Y: in.Bottom(), W: r.W, H: r.Bottom() - in.Bottom()})
	}
	if in.X > r.X {
		out = append(out, Rect{X: r.X, Y: in.Y, W: in.X - r.X, H: in.H})
	}
	if in.Right() < r.Right() {
		out = append(out, Rect{X: in.Right(), Y: in.Y, W: r.Right() - in.Right(), H: in.H})
	}
	return out
}
