// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"strconv"
	"strings"

	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/internal/dlog"
	"github.com/gogpu/decor/theme"
)

type tokenKind uint8

const (
	tokTitle tokenKind = iota
	tokIcon
	tokButton
	tokGap
	tokPadding
	tokSpacer
	tokAccent
)

type token struct {
	kind   tokenKind
	button theme.ButtonKind
	n      int    // gap size for tokGap
	style  string // accent style for tokAccent, empty to use the theme default
	source string
}

// Spec is a parsed layout string: one token list per edge in
// geom.Edges order.
type Spec struct {
	edges [len(geom.Edges)][]token
}

// ParseSpec parses a layout string. Unknown tokens are skipped and
// logged; parsing never fails.
func ParseSpec(s string) Spec {
	var sp Spec
	edge := 0
	titles := 0
	for _, f := range strings.Fields(s) {
		if f == "-" {
			if edge < len(sp.edges)-1 {
				edge++
			} else {
				dlog.L().Warn("decor: layout has more than four edges", "layout", s)
			}
			continue
		}
		tok, ok := parseToken(f)
		if !ok {
			dlog.L().Warn("decor: skipping unknown layout token", "token", f)
			continue
		}
		if tok.kind == tokTitle {
			titles++
			if titles > 1 {
				dlog.L().Warn("decor: skipping repeated title token")
				continue
			}
		}
		sp.edges[edge] = append(sp.edges[edge], tok)
	}
	return sp
}

func parseToken(f string) (token, bool) {
	t := token{source: f}
	switch f {
	case "title":
		t.kind = tokTitle
	case "icon":
		t.kind = tokIcon
	case "minimize":
		t.kind, t.button = tokButton, theme.ButtonMinimize
	case "maximize":
		t.kind, t.button = tokButton, theme.ButtonMaximize
	case "close":
		t.kind, t.button = tokButton, theme.ButtonClose
	case "p":
		t.kind = tokPadding
	case "|":
		t.kind = tokSpacer
	case "a":
		t.kind = tokAccent
	default:
		switch {
		case strings.HasPrefix(f, "a:"):
			t.kind = tokAccent
			t.style = strings.ReplaceAll(f[2:], ",", " ")
		case strings.HasPrefix(f, "P"):
			n, err := strconv.Atoi(f[1:])
			if err != nil || n < 0 {
				return t, false
			}
			t.kind, t.n = tokGap, n
		default:
			return t, false
		}
	}
	return t, true
}

// Tokens returns the number of tokens placed on edge e.
func (sp Spec) Tokens(e geom.Edge) int {
	for i, x := range geom.Edges {
		if x == e {
			return len(sp.edges[i])
		}
	}
	return 0
}

// HasTitle reports whether the layout places a title anywhere.
func (sp Spec) HasTitle() bool {
	for _, toks := range sp.edges {
		for _, t := range toks {
			if t.kind == tokTitle {
				return true
			}
		}
	}
	return false
}

// HasIcon reports whether the layout places an icon anywhere.
func (sp Spec) HasIcon() bool {
	for _, toks := range sp.edges {
		for _, t := range toks {
			if t.kind == tokIcon {
				return true
			}
		}
	}
	return false
}
