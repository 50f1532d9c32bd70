// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// ErrSyntax is returned for malformed expressions.
var ErrSyntax = errors.New("match: syntax error")

// View is what an expression is evaluated against.
type View struct {
	AppID string
	Title string
}

// Matcher reports whether a view matches.
type Matcher interface {
	Match(v View) bool
}

type field uint8

const (
	fieldAppID field = iota
	fieldTitle
)

type operator uint8

const (
	opIs operator = iota
	opContains
	opStartsWith
	opEndsWith
)

type cond struct {
	all    bool // constant result, ignores field and value
	negate bool
	field  field
	op     operator
	value  string
}

func (c cond) eval(v View) bool {
	var ok bool
	if c.all {
		ok = true
	} else {
		s := v.AppID
		if c.field == fieldTitle {
			s = v.Title
		}
		switch c.op {
		case opIs:
			ok = s == c.value
		case opContains:
			ok = strings.Contains(s, c.value)
		case opStartsWith:
			ok = strings.HasPrefix(s, c.value)
		case opEndsWith:
			ok = strings.HasSuffix(s, c.value)
		}
	}
	return ok != c.negate
}

// Expr is a parsed expression in disjunctive form.
type Expr struct {
	src  string
	alts [][]cond
}

// Match reports whether v satisfies the expression.
func (e *Expr) Match(v View) bool {
	for _, alt := range e.alts {
		ok := true
		for _, c := range alt {
			if !c.eval(v) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func (e *Expr) String() string { return e.src }

// None never matches. It is what an empty expression parses to.
var None Matcher = &Expr{}

// Parse parses an expression. An empty or blank string yields None.
func Parse(s string) (*Expr, error) {
	e := &Expr{src: s}
	if strings.TrimSpace(s) == "" {
		return e, nil
	}
	var alt []cond
	rest := s
	for {
		p := shellwords.NewParser()
		words, err := p.Parse(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrSyntax, s, err)
		}
		c, err := parseCond(words)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrSyntax, s, err)
		}
		alt = append(alt, c)
		if p.Position < 0 {
			break
		}
		op, tail, err := splitOperator(rest, p.Position)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrSyntax, s, err)
		}
		if op == '|' {
			e.alts = append(e.alts, alt)
			alt = nil
		}
		rest = tail
	}
	e.alts = append(e.alts, alt)
	return e, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

// splitOperator returns the operator the shell word parser stopped at and
// the text after it. The parser reports the position in runes.
func splitOperator(s string, pos int) (rune, string, error) {
	rs := []rune(s)
	if pos >= len(rs) {
		return 0, "", errors.New("dangling operator")
	}
	switch op := rs[pos]; op {
	case '&', '|':
		return op, string(rs[pos+1:]), nil
	default:
		return 0, "", fmt.Errorf("unexpected %q", op)
	}
}

func parseCond(words []string) (cond, error) {
	var c cond
	if len(words) > 0 && words[0] == "not" {
		c.negate = true
		words = words[1:]
	}
	switch {
	case len(words) == 1 && words[0] == "all":
		c.all = true
		return c, nil
	case len(words) == 1 && words[0] == "none":
		c.all = true
		c.negate = !c.negate
		return c, nil
	case len(words) != 3:
		return c, fmt.Errorf("want <field> <operator> <value>, got %q", strings.Join(words, " "))
	}
	switch words[0] {
	case "app_id":
		c.field = fieldAppID
	case "title":
		c.field = fieldTitle
	default:
		return c, fmt.Errorf("unknown field %q", words[0])
	}
	switch words[1] {
	case "is", "==":
		c.op = opIs
	case "contains":
		c.op = opContains
	case "starts_with":
		c.op = opStartsWith
	case "ends_with":
		c.op = opEndsWith
	default:
		return c, fmt.Errorf("unknown operator %q", words[1])
	}
	c.value = words[2]
	return c, nil
}
