// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compositor

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/internal/dlog"
	"github.com/gogpu/decor/internal/raster"
	"github.com/gogpu/decor/layout"
	"github.com/gogpu/decor/theme"
)

// ErrBadPath is reported by ValidatePath for open or self-intersecting
// contours.
var ErrBadPath = errors.New("compositor: invalid path")

// Pair holds the inactive and active variants of one raster.
type Pair [2]*theme.Raster

// Get returns the variant for the activation state.
func (p Pair) Get(active bool) *theme.Raster {
	if active {
		return p[1]
	}
	return p[0]
}

type entry struct {
	key  string
	pair Pair
}

// Stats counts raster regenerations. Each count covers both activation
// variants.
type Stats struct {
	Corners int
	Accents int
}

// Compositor owns the corner and accent rasters of one decoration and
// regenerates them when their inputs change.
type Compositor struct {
	th      *theme.Theme
	corners map[geom.Corner]*entry
	accents map[int]*entry
	stats   Stats
}

// New creates a compositor drawing with th.
func New(th *theme.Theme) *Compositor {
	return &Compositor{
		th:      th,
		corners: make(map[geom.Corner]*entry),
		accents: make(map[int]*entry),
	}
}

// Reset drops every cached raster, e.g. after a theme change.
func (c *Compositor) Reset() {
	clear(c.corners)
	clear(c.accents)
}

// SetTheme switches to th and drops the cache.
func (c *Compositor) SetTheme(th *theme.Theme) {
	c.th = th
	c.Reset()
}

// Stats returns the regeneration counters.
func (c *Compositor) Stats() Stats { return c.stats }

// Corner returns the rasters of window corner k.
func (c *Compositor) Corner(k geom.Corner) (Pair, bool) {
	e, ok := c.corners[k]
	if !ok {
		return Pair{}, false
	}
	return e.pair, true
}

// Accent returns the rasters of the accent with the given index. They
// cover the accent's Extent.
func (c *Compositor) Accent(index int) (Pair, bool) {
	e, ok := c.accents[index]
	if !ok {
		return Pair{}, false
	}
	return e.pair, true
}

// Update brings the cache in line with the areas of l at the given render
// scale. Rasters whose inputs did not change are kept. It reports whether
// anything was regenerated.
func (c *Compositor) Update(l *layout.Layout, scale float64) bool {
	var corners []*layout.CornerArea
	var accents []*layout.AccentArea
	for _, a := range l.Background() {
		switch a := a.(type) {
		case *layout.CornerArea:
			corners = append(corners, a)
		case *layout.AccentArea:
			accents = append(accents, a)
		}
	}

	changed := false
	seenCorners := make(map[geom.Corner]bool, len(corners))
	for _, ca := range corners {
		seenCorners[ca.Corner] = true
		touching := overlapping(ca.Rect, accents)
		key := c.cornerKey(ca, touching, scale)
		if e, ok := c.corners[ca.Corner]; ok && e.key == key {
			continue
		}
		c.corners[ca.Corner] = &entry{key: key, pair: Pair{
			c.renderCorner(ca, touching, false, scale),
			c.renderCorner(ca, touching, true, scale),
		}}
		c.stats.Corners++
		changed = true
		dlog.L().Debug("decor: corner regenerated", "corner", ca.Corner, "radius", ca.Radius)
	}
	for k := range c.corners {
		if !seenCorners[k] {
			delete(c.corners, k)
		}
	}

	seenAccents := make(map[int]bool, len(accents))
	for _, aa := range accents {
		seenAccents[aa.Index] = true
		touching := overlappingCorners(aa.Extent, corners)
		key := c.accentKey(aa, touching, scale)
		if e, ok := c.accents[aa.Index]; ok && e.key == key {
			continue
		}
		c.accents[aa.Index] = &entry{key: key, pair: Pair{
			c.renderAccent(aa, touching, false, scale),
			c.renderAccent(aa, touching, true, scale),
		}}
		c.stats.Accents++
		changed = true
		dlog.L().Debug("decor: accent regenerated", "index", aa.Index, "edge", aa.On, "style", aa.Style)
	}
	for k := range c.accents {
		if !seenAccents[k] {
			delete(c.accents, k)
		}
	}
	return changed
}

func overlapping(r geom.Rect, accents []*layout.AccentArea) []*layout.AccentArea {
	var out []*layout.AccentArea
	for _, a := range accents {
		if a.Extent.Overlaps(r) {
			out = append(out, a)
		}
	}
	return out
}

func overlappingCorners(r geom.Rect, corners []*layout.CornerArea) []*layout.CornerArea {
	var out []*layout.CornerArea
	for _, c := range corners {
		if c.Rect.Overlaps(r) {
			out = append(out, c)
		}
	}
	return out
}

// rel writes r relative to origin o.
func rel(b *strings.Builder, r, o geom.Rect) {
	fmt.Fprintf(b, "[%d,%d,%d,%d]", r.X-o.X, r.Y-o.Y, r.W, r.H)
}

func (c *Compositor) cornerKey(ca *layout.CornerArea, touching []*layout.AccentArea, scale float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v/%d/%dx%d/%g", ca.Corner, ca.Radius, ca.Rect.W, ca.Rect.H, scale)
	for _, a := range touching {
		fmt.Fprintf(&b, "|%v:%s:", a.On, a.Style)
		rel(&b, a.Rect, ca.Rect)
		rel(&b, a.Extent, ca.Rect)
	}
	return b.String()
}

func (c *Compositor) accentKey(aa *layout.AccentArea, touching []*layout.CornerArea, scale float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v/%s/%g/", aa.On, aa.Style, scale)
	rel(&b, aa.Rect, aa.Extent)
	fmt.Fprintf(&b, "%dx%d", aa.Extent.W, aa.Extent.H)
	for _, ca := range touching {
		fmt.Fprintf(&b, "|%v:%d:", ca.Corner, ca.Radius)
		rel(&b, ca.Rect, aa.Extent)
	}
	return b.String()
}

// span returns the accent's extent along its edge, its thickness and the
// frame-space origin and transform of its canonical drawing.
func span(a *layout.AccentArea) (length, thickness float64, m geom.Matrix2, origin geom.Point) {
	g, ext := a.Rect, a.Extent
	m = geom.EdgeTransform(a.On)
	switch a.On {
	case geom.EdgeBottom:
		return float64(ext.W), float64(g.H), m, geom.Pt(float64(ext.X), float64(g.Bottom()))
	case geom.EdgeLeft:
		return float64(ext.H), float64(g.W), m, geom.Pt(float64(g.X), float64(ext.Y))
	case geom.EdgeRight:
		return float64(ext.H), float64(g.W), m, geom.Pt(float64(g.Right()), float64(ext.Y))
	default:
		return float64(ext.W), float64(g.H), m, geom.Pt(float64(ext.X), float64(g.Y))
	}
}

// shape returns the canonical shape of an accent.
func (c *Compositor) shape(a *layout.AccentArea) Shape {
	length, thickness, _, _ := span(a)
	opts := c.th.Options()
	st := ParseCornerStyle(a.Style)
	s := Shape{
		Length:    length,
		Thickness: thickness,
		Radius:    float64(opts.CornerRadius),
		Style:     st.Canonical(a.On),
	}
	if st.Retract {
		s.Retract = float64(opts.OutlineSize)
	}
	return s
}

// frameSpace maps a canonical accent path into frame coordinates.
func frameSpace(a *layout.AccentArea, p *geom.Path) *geom.Path {
	_, _, m, origin := span(a)
	return p.Transform(m, origin)
}

// local maps a frame-space path into the raster of box at scale.
func local(p *geom.Path, box geom.Rect, scale float64) *geom.Path {
	return p.Transform(geom.Scale2(scale), geom.Pt(-float64(box.X)*scale, -float64(box.Y)*scale))
}

// localRect maps a frame-space rectangle into the raster of box at scale.
func localRect(r, box geom.Rect, scale float64) geom.Rect {
	x0 := int(math.Floor(float64(r.X-box.X) * scale))
	y0 := int(math.Floor(float64(r.Y-box.Y) * scale))
	x1 := int(math.Ceil(float64(r.Right()-box.X) * scale))
	y1 := int(math.Ceil(float64(r.Bottom()-box.Y) * scale))
	return geom.R(x0, y0, x1-x0, y1-y0)
}

func scaled(s geom.Size, scale float64) geom.Size {
	return geom.Size{W: int(math.Round(float64(s.W) * scale)), H: int(math.Round(float64(s.H) * scale))}
}

// cornerOuter returns the outer fill shape of a window corner in frame
// coordinates.
func (c *Compositor) cornerOuter(ca *layout.CornerArea) *geom.Path {
	g := c.th.Corner(ca.Radius, ca.Rect.Size())
	p, _ := g.Place(memoCornerOuter(g), geom.CornerTransform(ca.Corner))
	return p.Transform(geom.Identity2(), geom.Pt(float64(ca.Rect.X), float64(ca.Rect.Y)))
}

func (c *Compositor) validate(what string, p *geom.Path) {
	if !c.th.Options().Debug {
		return
	}
	if err := ValidatePath(p); err != nil {
		dlog.L().Warn("decor: path check failed", "what", what, "err", err)
	}
}

func (c *Compositor) renderCorner(ca *layout.CornerArea, touching []*layout.AccentArea, active bool, scale float64) *theme.Raster {
	r := c.th.RasterizeCorner(active, ca.Radius, geom.CornerTransform(ca.Corner).Multiply(geom.Scale2(scale)), ca.Rect.Size())
	if r.Empty() {
		return r
	}
	for _, a := range touching {
		s := c.shape(a)
		p := memoPath(s)
		c.validate("accent", p)
		raster.ClearPath(r.Pixmap(), local(frameSpace(a, p), ca.Rect, scale))
		raster.ClearPath(r.Pixmap(), local(frameSpace(a, s.Run()), ca.Rect, scale))
	}
	return r
}

func (c *Compositor) renderAccent(a *layout.AccentArea, touching []*layout.CornerArea, active bool, scale float64) *theme.Raster {
	size := scaled(a.Extent.Size(), scale)
	if size.Empty() {
		return theme.NewRaster(0, 0)
	}
	opts := c.th.Options()
	s := c.shape(a)
	shape := memoPath(s)
	c.validate("accent", shape)

	dc := gg.NewContext(size.W, size.H)
	defer func() { _ = dc.Close() }()

	// Band, then the outline along the outer side, then clip to the shape.
	dc.SetColor(opts.AccentColors.Pick(active).Color())
	local(frameSpace(a, rectPath(0, 0, s.Length, s.Thickness)), a.Extent, scale).Emit(dc, 0.1)
	if err := dc.Fill(); err != nil {
		dlog.L().Warn("decor: accent fill failed", "index", a.Index, "err", err)
	}
	if o := math.Min(float64(opts.OutlineSize), s.Thickness); o > 0 {
		dc.SetColor(opts.OutlineColors.Pick(active).Color())
		local(frameSpace(a, rectPath(0, 0, s.Length, o)), a.Extent, scale).Emit(dc, 0.1)
		if err := dc.Fill(); err != nil {
			dlog.L().Warn("decor: accent outline fill failed", "index", a.Index, "err", err)
		}
	}
	pm := dc.ResizeTarget()
	raster.KeepPathIn(pm, local(frameSpace(a, shape), a.Extent, scale), geom.R(0, 0, size.W, size.H))

	// Inside a window corner only the corner's own outline shape remains.
	for _, ca := range touching {
		overlap := localRect(ca.Rect.Intersect(a.Extent), a.Extent, scale)
		raster.KeepPathIn(pm, local(c.cornerOuter(ca), a.Extent, scale), overlap)
	}
	return theme.RasterFromPixmap(pm)
}
