// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "math"

// Matrix2 is a 2×2 linear transform in row-major order:
//
//	| A  B |
//	| C  D |
//
// This represents the transformation:
//
//	x' = A*x + B*y
//	y' = C*x + D*y
//
// Decorations only use axis reflections, quarter turns and uniform scale,
// so translation is carried separately by callers.
type Matrix2 struct {
	A, B, C, D float64
}

// Identity2 returns the identity transform.
func Identity2() Matrix2 {
	return Matrix2{A: 1, D: 1}
}

// Scale2 returns a uniform scale transform.
func Scale2(s float64) Matrix2 {
	return Matrix2{A: s, D: s}
}

// Multiply returns m * o (o is applied first).
func (m Matrix2) Multiply(o Matrix2) Matrix2 {
	return Matrix2{
		A: m.A*o.A + m.B*o.C,
		B: m.A*o.B + m.B*o.D,
		C: m.C*o.A + m.D*o.C,
		D: m.C*o.B + m.D*o.D,
	}
}

// Apply transforms p.
func (m Matrix2) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.C*p.X + m.D*p.Y,
	}
}

// Det returns the determinant.
func (m Matrix2) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Reflects reports whether m flips orientation.
func (m Matrix2) Reflects() bool {
	return m.Det() < 0
}

// ScaleFactor returns the uniform scale implied by m.
func (m Matrix2) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.Det()))
}

// Invert returns the inverse transform.
// Returns the identity if m is not invertible.
func (m Matrix2) Invert() Matrix2 {
	det := m.Det()
	if math.Abs(det) < 1e-10 {
		return Identity2()
	}
	inv := 1 / det
	return Matrix2{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
	}
}

// IsIdentity reports whether m is the identity transform.
func (m Matrix2) IsIdentity() bool {
	return m == Identity2()
}

// Transformed returns the axis-aligned bounds of r mapped through m,
// for transforms that keep rectangles axis-aligned.
func (m Matrix2) Transformed(r Rect) Rect {
	p0 := m.Apply(Pt(float64(r.X), float64(r.Y)))
	p1 := m.Apply(Pt(float64(r.Right()), float64(r.Bottom())))
	x0, x1 := math.Min(p0.X, p1.X), math.Max(p0.X, p1.X)
	y0, y1 := math.Min(p0.Y, p1.Y), math.Max(p0.Y, p1.Y)
	return Rect{
		X: int(math.Round(x0)),
		Y: int(math.Round(y0)),
		W: int(math.Round(x1 - x0)),
		H: int(math.Round(y1 - y0)),
	}
}
