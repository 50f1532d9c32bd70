// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

// Region is a set of pixels stored as pairwise disjoint rectangles.
// The zero value is an empty region ready to use.
type Region struct {
	rects []Rect
}

// RegionOf returns a region covering all of rs.
func RegionOf(rs ...Rect) Region {
	var g Region
	for _, r := range rs {
		g.Add(r)
	}
	return g
}

// Add unions r into the region.
func (g *Region) Add(r Rect) {
	if r.Empty() {
		return
	}
	pieces := []Rect{r}
	for _, e := range g.rects {
		var next []Rect
		for _, p := range pieces {
			next = append(next, subtract(p, e)...)
		}
		pieces = next
		if len(pieces) == 0 {
			return
		}
	}
	g.rects = append(g.rects, pieces...)
}

// Union adds every rectangle of o to the region.
func (g *Region) Union(o Region) {
	for _, r := range o.rects {
		g.Add(r)
	}
}

// Clear empties the region.
func (g *Region) Clear() {
	g.rects = g.rects[:0]
}

// Empty reports whether the region covers no pixels.
func (g Region) Empty() bool {
	return len(g.rects) == 0
}

// Rects returns a copy of the disjoint rectangles making up the region.
func (g Region) Rects() []Rect {
	out := make([]Rect, len(g.rects))
	copy(out, g.rects)
	return out
}

// Area returns the number of pixels covered.
func (g Region) Area() int {
	n := 0
	for _, r := range g.rects {
		n += r.W * r.H
	}
	return n
}

// Bounds returns the smallest rectangle containing the region.
func (g Region) Bounds() Rect {
	var b Rect
	for _, r := range g.rects {
		b = b.Union(r)
	}
	return b
}

// Contains reports whether the point (x, y) lies inside the region.
func (g Region) Contains(x, y float64) bool {
	for _, r := range g.rects {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// Overlaps reports whether r shares any pixel with the region.
func (g Region) Overlaps(r Rect) bool {
	for _, e := range g.rects {
		if e.Overlaps(r) {
			return true
		}
	}
	return false
}

// IntersectRect returns the part of the region inside r.
func (g Region) IntersectRect(r Rect) Region {
	var out Region
	for _, e := range g.rects {
		if in := e.Intersect(r); !in.Empty() {
			out.rects = append(out.rects, in)
		}
	}
	return out
}

// Intersect returns the pixels present in both regions.
func (g Region) Intersect(o Region) Region {
	var out Region
	for _, r := range o.rects {
		for _, e := range g.rects {
			if in := e.Intersect(r); !in.Empty() {
				out.rects = append(out.rects, in)
			}
		}
	}
	return out
}

// Translate returns the region moved by (dx, dy).
func (g Region) Translate(dx, dy int) Region {
	out := Region{rects: make([]Rect, len(g.rects))}
	for i, r := range g.rects {
		out.rects[i] = r.Translate(dx, dy)
	}
	return out
}
