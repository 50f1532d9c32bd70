// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compositor

import (
	"strings"

	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/internal/dlog"
)

// CornerKind is the treatment of one corner of an accent segment.
type CornerKind uint8

const (
	CornerFlat CornerKind = iota
	CornerRound
	CornerDiagonal
)

func (k CornerKind) String() string {
	switch k {
	case CornerRound:
		return "round"
	case CornerDiagonal:
		return "diagonal"
	default:
		return "flat"
	}
}

// CornerStyle assigns a treatment to each physical corner of an accent.
// Retract pulls both ends of the accent in by the outline width.
type CornerStyle struct {
	Kinds   [4]CornerKind
	Retract bool
}

// ParseCornerStyle parses a corner style string. Tokens are separated by
// whitespace or commas: "tl", "tr", "br", "bl" round a corner, a "/" or
// "\" prefix cuts it diagonally and a "!" prefix keeps it flat. The single
// token "a" rounds every corner and retracts the ends. Unknown tokens are
// ignored.
func ParseCornerStyle(s string) CornerStyle {
	var st CornerStyle
	for _, f := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	}) {
		if f == "a" {
			st.Kinds = [4]CornerKind{CornerRound, CornerRound, CornerRound, CornerRound}
			st.Retract = true
			continue
		}
		kind := CornerRound
		switch f[0] {
		case '/', '\\':
			kind, f = CornerDiagonal, f[1:]
		case '!':
			kind, f = CornerFlat, f[1:]
		}
		c, ok := parseCorner(f)
		if !ok {
			dlog.L().Warn("decor: skipping unknown accent corner", "token", f)
			continue
		}
		st.Kinds[c] = kind
	}
	return st
}

func parseCorner(s string) (geom.Corner, bool) {
	for _, c := range geom.Corners {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// Canonical returns the style seen from the canonical top-edge drawing of
// an accent on edge e: entry i is the treatment of canonical corner i.
func (st CornerStyle) Canonical(e geom.Edge) CornerStyle {
	turns := geom.EdgeQuarterTurns(e)
	reflected := geom.EdgeTransform(e).Reflects()
	out := CornerStyle{Retract: st.Retract}
	for _, c := range geom.Corners {
		out.Kinds[c] = st.Kinds[geom.MapCorner(c, turns, reflected)]
	}
	return out
}

func (st CornerStyle) String() string {
	var b strings.Builder
	for _, c := range geom.Corners {
		switch st.Kinds[c] {
		case CornerRound:
			b.WriteString(c.String())
		case CornerDiagonal:
			b.WriteString("/" + c.String())
		default:
			b.WriteString("!" + c.String())
		}
		b.WriteByte(' ')
	}
	if st.Retract {
		b.WriteString("retract")
	}
	return strings.TrimSpace(b.String())
}
