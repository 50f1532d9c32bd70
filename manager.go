// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package decor

import (
	"fmt"

	"github.com/gogpu/decor/match"
	"github.com/gogpu/decor/theme"
)

type extraTheme struct {
	name   string
	th     *theme.Theme
	usesIf match.Matcher
}

// Manager decides which windows get decorated and with which theme.
type Manager struct {
	r      Renderer
	def    *theme.Theme
	ignore match.Matcher
	extra  []extraTheme
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithExtraTheme adds a theme used for windows matching usesIf. Extra
// themes are probed in the order they were added. An expression that
// does not parse never matches.
func WithExtraTheme(name string, th *theme.Theme, usesIf string) ManagerOption {
	return func(m *Manager) {
		m.extra = append(m.extra, extraTheme{name: name, th: th, usesIf: parseMatcher("uses_if", name, usesIf)})
	}
}

// WithExtraMatcher is like WithExtraTheme with an already built matcher.
func WithExtraMatcher(name string, th *theme.Theme, usesIf match.Matcher) ManagerOption {
	return func(m *Manager) {
		m.extra = append(m.extra, extraTheme{name: name, th: th, usesIf: usesIf})
	}
}

// NewManager creates a manager decorating through r with def as the
// default theme. Windows matching the default theme's ignore_views are
// left undecorated.
func NewManager(r Renderer, def *theme.Theme, opts ...ManagerOption) *Manager {
	m := &Manager{
		r:      r,
		def:    def,
		ignore: parseMatcher("ignore_views", "decor", def.Options().IgnoreViews),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func parseMatcher(key, section, s string) match.Matcher {
	e, err := match.Parse(s)
	if err != nil {
		Logger().Warn("decor: bad matcher", "key", key, "theme", section, "err", err)
		return match.None
	}
	return e
}

// probe evaluates mt against v. A panicking matcher counts as no match.
func probe(mt match.Matcher, v match.View) (ok bool) {
	if mt == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("decor: matcher failed", "app_id", v.AppID, "err", fmt.Sprint(r))
			ok = false
		}
	}()
	return mt.Match(v)
}

// Ignored reports whether windows like v stay undecorated.
func (m *Manager) Ignored(v match.View) bool {
	return probe(m.ignore, v)
}

// ThemeFor returns the first extra theme whose matcher accepts v, or the
// default theme with an empty name.
func (m *Manager) ThemeFor(v match.View) (string, *theme.Theme) {
	for _, e := range m.extra {
		if probe(e.usesIf, v) {
			return e.name, e.th
		}
	}
	return "", m.def
}

// Decorate creates the decoration for the window behind ref. It returns
// false for ignored or gone windows.
func (m *Manager) Decorate(ref WindowRef) (*Decoration, bool) {
	win, ok := ref.Get()
	if !ok {
		return nil, false
	}
	v := match.View{AppID: win.AppID(), Title: win.Title()}
	if m.Ignored(v) {
		Logger().Debug("decor: window ignored", "app_id", v.AppID)
		return nil, false
	}
	name, th := m.ThemeFor(v)
	d, err := New(ref, th, m.r)
	if err != nil {
		return nil, false
	}
	Logger().Debug("decor: window decorated", "app_id", v.AppID, "theme", name)
	return d, true
}
