// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/gogpu/decor"
)

// step is one input command of a replay script.
type step struct {
	op   string
	x, y float64
}

// parseScript splits a replay script such as
//
//	move 150 10; press; move 100 60; release
//
// into steps. Commands are move X Y, press, release, leave, touch X Y,
// drag X Y and lift.
func parseScript(s string) ([]step, error) {
	var steps []step
	rest := s
	for strings.TrimSpace(rest) != "" {
		p := shellwords.NewParser()
		words, err := p.Parse(rest)
		if err != nil {
			return nil, fmt.Errorf("script %q: %w", s, err)
		}
		if len(words) > 0 {
			st, err := parseStep(words)
			if err != nil {
				return nil, fmt.Errorf("script %q: %w", s, err)
			}
			steps = append(steps, st)
		}
		if p.Position < 0 {
			break
		}
		rs := []rune(rest)
		if rs[p.Position] != ';' {
			return nil, fmt.Errorf("script %q: unexpected %q", s, rs[p.Position])
		}
		rest = string(rs[p.Position+1:])
	}
	return steps, nil
}

func parseStep(words []string) (step, error) {
	st := step{op: words[0]}
	switch st.op {
	case "press", "release", "leave", "lift":
		if len(words) != 1 {
			return step{}, fmt.Errorf("%s takes no arguments", st.op)
		}
	case "move", "touch", "drag":
		if len(words) != 3 {
			return step{}, fmt.Errorf("%s needs X and Y", st.op)
		}
		var err error
		if st.x, err = strconv.ParseFloat(words[1], 64); err != nil {
			return step{}, fmt.Errorf("%s: %w", st.op, err)
		}
		if st.y, err = strconv.ParseFloat(words[2], 64); err != nil {
			return step{}, fmt.Errorf("%s: %w", st.op, err)
		}
	default:
		return step{}, fmt.Errorf("unknown command %q", st.op)
	}
	return st, nil
}

// replay feeds steps to d. Touch input uses a single finger.
func replay(d *decor.Decoration, steps []step) {
	const finger = 0
	for _, st := range steps {
		switch st.op {
		case "move":
			d.PointerMove(st.x, st.y)
		case "press":
			d.PointerButton(true)
		case "release":
			d.PointerButton(false)
		case "leave":
			d.PointerLeave()
		case "touch":
			d.TouchDown(finger, st.x, st.y)
		case "drag":
			d.TouchMove(finger, st.x, st.y)
		case "lift":
			d.TouchUp(finger)
		}
	}
}
