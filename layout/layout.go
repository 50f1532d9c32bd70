// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/internal/dlog"
	"github.com/gogpu/decor/theme"
)

// Layout computes the areas of one decoration frame and tracks pointer
// state on them. It is not safe for concurrent use.
type Layout struct {
	opts   theme.Options
	spec   Spec
	border geom.Insets
	round  theme.RoundOn

	size        geom.Size
	title, dots geom.Size
	bg, fg      []Area
	region      geom.Region

	ptr      pointer
	onDamage func(geom.Rect)
}

// New creates a layout for opts. Call Resize before querying areas.
func New(opts theme.Options) *Layout {
	return &Layout{
		opts:   opts,
		spec:   ParseSpec(opts.Layout),
		border: opts.Border(),
		round:  opts.RoundMask(),
	}
}

// Options returns the theme options the layout was built from.
func (l *Layout) Options() theme.Options { return l.opts }

// Spec returns the parsed layout string.
func (l *Layout) Spec() Spec { return l.spec }

// Border returns the configured border insets.
func (l *Layout) Border() geom.Insets { return l.border }

// Size returns the frame size of the last Resize.
func (l *Layout) Size() geom.Size { return l.size }

// Background returns the corner, border and accent areas.
func (l *Layout) Background() []Area { return l.bg }

// Foreground returns the title, ellipsis, icon and button areas.
func (l *Layout) Foreground() []Area { return l.fg }

// Areas returns the background areas followed by the foreground areas.
func (l *Layout) Areas() []Area {
	out := make([]Area, 0, len(l.bg)+len(l.fg))
	out = append(out, l.bg...)
	return append(out, l.fg...)
}

// InputRegion returns the union of the background areas.
func (l *Layout) InputRegion() geom.Region { return l.region }

// HitTest returns the topmost area containing (x, y), or nil.
func (l *Layout) HitTest(x, y float64) Area {
	for _, a := range l.fg {
		if a.Geometry().Contains(x, y) {
			return a
		}
	}
	for _, a := range l.bg {
		if a.Geometry().Contains(x, y) {
			return a
		}
	}
	return nil
}

// Title returns the title area, if one was placed.
func (l *Layout) Title() (*TitleArea, bool) {
	for _, a := range l.fg {
		if t, ok := a.(*TitleArea); ok {
			return t, true
		}
	}
	return nil, false
}

// Buttons returns the union of the button areas on edge e.
func (l *Layout) Buttons(e geom.Edge) geom.Rect {
	var r geom.Rect
	for _, a := range l.fg {
		if b, ok := a.(*ButtonArea); ok && b.On == e {
			r = r.Union(b.Rect)
		}
	}
	return r
}

// ButtonRects returns the rectangles of the button areas on edge e in
// layout order.
func (l *Layout) ButtonRects(e geom.Edge) []geom.Rect {
	var out []geom.Rect
	for _, a := range l.fg {
		if b, ok := a.(*ButtonArea); ok && b.On == e {
			out = append(out, b.Rect)
		}
	}
	return out
}

// edgeRun is the stretch of an edge between its corners.
type edgeRun struct {
	edge      geom.Edge
	start     int // first coordinate along the edge
	length    int
	thickness int
	first     geom.Corner // corner at the start of the run
	last      geom.Corner // corner at the end of the run
}

// fit shrinks a and b proportionally so they sum to at most total.
func fit(a, b, total int) (int, int) {
	if total <= 0 {
		return 0, 0
	}
	if a+b <= total {
		return a, b
	}
	fa := a * total / (a + b)
	return fa, total - fa
}

// Resize recomputes every area for a frame of w×h with the given measured
// title and ellipsis sizes. The result depends only on the arguments and
// the options.
func (l *Layout) Resize(w, h int, title, dots geom.Size) {
	l.size = geom.Size{W: max(w, 0), H: max(h, 0)}
	l.title, l.dots = title, dots
	w, h = l.size.W, l.size.H

	b := l.border
	r := max(l.opts.CornerRadius, 0)
	var cwL, cwR, bT, bB int
	if r > 0 {
		cwL, cwR = fit(max(r, b.Left), max(r, b.Right), w)
		bT, bB = fit(max(r, b.Top), max(r, b.Bottom), h)
	} else {
		bT, bB = fit(b.Top, b.Bottom, h)
	}
	tL, tR := fit(b.Left, b.Right, w)
	if r > 0 {
		tL, tR = min(tL, cwL), min(tR, cwR)
	}
	tT, tB := min(b.Top, bT), min(b.Bottom, bB)

	l.bg = make([]Area, 0, 16)
	l.fg = make([]Area, 0, 8)

	var corners [4]geom.Rect
	if r > 0 {
		corners[geom.CornerTopLeft] = geom.R(0, 0, cwL, bT)
		corners[geom.CornerTopRight] = geom.R(w-cwR, 0, cwR, bT)
		corners[geom.CornerBottomRight] = geom.R(w-cwR, h-bB, cwR, bB)
		corners[geom.CornerBottomLeft] = geom.R(0, h-bB, cwL, bB)
		for _, c := range geom.Corners {
			if corners[c].Empty() {
				continue
			}
			radius := 0
			if l.round.Has(c) {
				radius = r
			}
			l.bg = append(l.bg, &CornerArea{base: base{Rect: corners[c]}, Corner: c, Radius: radius})
		}
	}

	runs := [...]edgeRun{
		{edge: geom.EdgeTop, start: cwL, length: w - cwL - cwR, thickness: tT,
			first: geom.CornerTopLeft, last: geom.CornerTopRight},
		{edge: geom.EdgeLeft, start: bT, length: h - bT - bB, thickness: tL,
			first: geom.CornerTopLeft, last: geom.CornerBottomLeft},
		{edge: geom.EdgeBottom, start: cwL, length: w - cwL - cwR, thickness: tB,
			first: geom.CornerBottomLeft, last: geom.CornerBottomRight},
		{edge: geom.EdgeRight, start: bT, length: h - bT - bB, thickness: tR,
			first: geom.CornerTopRight, last: geom.CornerBottomRight},
	}
	accents := 0
	for i, run := range runs {
		run.length = max(run.length, 0)
		accents = l.placeEdge(run, l.spec.edges[i], corners, accents)
	}

	l.region = geom.Region{}
	for _, a := range l.bg {
		l.region.Add(a.Geometry())
	}
	l.refreshHover()
	dlog.L().Debug("decor: layout", "size", l.size, "background", len(l.bg), "foreground", len(l.fg))
}

// rect maps a span along the run (u from the run start, v inward from the
// outer side) to a frame rectangle.
func (l *Layout) rect(run edgeRun, u, length, v, cross int) geom.Rect {
	w, h := l.size.W, l.size.H
	switch run.edge {
	case geom.EdgeBottom:
		return geom.R(run.start+u, h-v-cross, length, cross)
	case geom.EdgeLeft:
		return geom.R(v, run.start+u, cross, length)
	case geom.EdgeRight:
		return geom.R(w-v-cross, run.start+u, cross, length)
	default:
		return geom.R(run.start+u, v, length, cross)
	}
}

type item struct {
	tok  token
	size int // length along the edge
	span int // thickness across the edge, foreground only
}

type accentSpan struct {
	from, to int
	style    string
}

func (l *Layout) items(toks []token) (items []item, fixed, spacers int, hasTitle bool) {
	prevButton := false
	for _, t := range toks {
		it := item{tok: t}
		switch t.kind {
		case tokIcon:
			it.size, it.span = l.opts.IconSize, l.opts.IconSize
		case tokButton:
			if prevButton {
				items = append(items, item{tok: token{kind: tokPadding}, size: l.opts.PaddingSize})
				fixed += l.opts.PaddingSize
			}
			it.size, it.span = l.opts.ButtonSize, l.opts.ButtonSize
		case tokPadding:
			it.size = l.opts.PaddingSize
		case tokGap:
			it.size = t.n
		case tokSpacer:
			spacers++
		case tokTitle:
			hasTitle = true
		}
		if t.kind != tokAccent {
			prevButton = t.kind == tokButton
		}
		it.size = max(it.size, 0)
		fixed += it.size
		items = append(items, it)
	}
	return items, fixed, spacers, hasTitle
}

// placeEdge lays out one edge and returns the updated accent counter.
func (l *Layout) placeEdge(run edgeRun, toks []token, corners [4]geom.Rect, accents int) int {
	items, fixed, spacers, hasTitle := l.items(toks)
	remaining := max(run.length-fixed, 0)

	var titleW, dotsW int
	truncated := false
	if hasTitle {
		avail := remaining
		if l.opts.MaxTitleSize > 0 {
			avail = min(avail, l.opts.MaxTitleSize)
		}
		titleW = avail
		if l.title.W > avail {
			truncated = true
			dotsW = min(l.dots.W, avail)
			titleW = avail - dotsW
		}
		remaining -= titleW + dotsW
	}
	var share, extra int
	if spacers > 0 {
		share, extra = remaining/spacers, remaining%spacers
	}

	outline := min(max(l.opts.OutlineSize, 0), run.thickness)
	inner := run.thickness - outline
	place := func(u, length, span int) geom.Rect {
		from, to := min(u, run.length), min(u+length, run.length)
		span = min(max(span, 0), inner)
		v := outline + (inner-span)/2
		return l.rect(run, from, to-from, v, span)
	}

	var spans []accentSpan
	open := -1
	openStyle := ""
	cursor, spacer := 0, 0
	for _, it := range items {
		switch it.tok.kind {
		case tokAccent:
			if open >= 0 {
				spans = append(spans, accentSpan{from: open, to: min(cursor, run.length), style: openStyle})
				open = -1
				continue
			}
			open = min(cursor, run.length)
			openStyle = it.tok.style
			if openStyle == "" {
				openStyle = l.opts.AccentStyle
			}
		case tokSpacer:
			n := share
			if spacer < extra {
				n++
			}
			spacer++
			cursor += n
		case tokPadding, tokGap:
			cursor += it.size
		case tokTitle:
			tr := place(cursor, titleW, l.title.H)
			cursor += titleW
			title := &TitleArea{base: base{Rect: tr, On: run.edge}, Truncated: truncated}
			if truncated {
				dr := place(cursor, dotsW, l.dots.H)
				cursor += dotsW
				title.Dots = dr
				if !tr.Empty() {
					l.fg = append(l.fg, title)
				}
				if !dr.Empty() {
					l.fg = append(l.fg, &EllipsisArea{base: base{Rect: dr, On: run.edge}})
				}
				continue
			}
			if !tr.Empty() {
				l.fg = append(l.fg, title)
			}
		case tokIcon:
			if r := place(cursor, it.size, it.span); !r.Empty() {
				l.fg = append(l.fg, &IconArea{base: base{Rect: r, On: run.edge}})
			}
			cursor += it.size
		case tokButton:
			if r := place(cursor, it.size, it.span); !r.Empty() {
				l.fg = append(l.fg, &ButtonArea{base: base{Rect: r, On: run.edge}, Kind: it.tok.button})
			}
			cursor += it.size
		}
	}
	if open >= 0 {
		spans = append(spans, accentSpan{from: open, to: run.length, style: openStyle})
	}

	// Background: border pieces fill the gaps between accent spans.
	border := func(from, to int) {
		if g := l.rect(run, from, to-from, 0, run.thickness); !g.Empty() {
			l.bg = append(l.bg, &BorderArea{base: base{Rect: g, On: run.edge}})
		}
	}
	at := 0
	for _, s := range spans {
		if s.from > at {
			border(at, s.from)
		}
		at = max(at, s.to)
		g := l.rect(run, s.from, s.to-s.from, 0, run.thickness)
		if g.Empty() {
			continue
		}
		ext := g
		if s.from == 0 && !corners[run.first].Empty() {
			ext = ext.Union(corners[run.first])
		}
		if s.to == run.length && !corners[run.last].Empty() {
			ext = ext.Union(corners[run.last])
		}
		l.bg = append(l.bg, &AccentArea{
			base:   base{Rect: g, On: run.edge},
			Index:  accents,
			Style:  s.style,
			Extent: ext,
		})
		accents++
	}
	if at < run.length {
		border(at, run.length)
	}
	return accents
}
