// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package decor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/decor/match"
	"github.com/gogpu/decor/theme"
)

type panicMatcher struct{}

func (panicMatcher) Match(match.View) bool { panic("broken matcher") }

func TestManagerThemeSelection(t *testing.T) {
	def := testTheme(func(o *theme.Options) { o.IgnoreViews = `app_id is ignored | title contains "[no deco]"` })
	special := testTheme(func(o *theme.Options) { o.CornerRadius = 0 })
	m := NewManager(newFakeRenderer(), def,
		WithExtraMatcher("boom", testTheme(nil), panicMatcher{}),
		WithExtraTheme("broken", testTheme(nil), "app_id is"),
		WithExtraTheme("special", special, `app_id starts_with "org.special"`),
	)

	tests := []struct {
		view    match.View
		ignored bool
		theme   string
	}{
		{match.View{AppID: "ignored"}, true, ""},
		{match.View{AppID: "x", Title: "tool [no deco]"}, true, ""},
		{match.View{AppID: "org.special.Editor"}, false, "special"},
		{match.View{AppID: "org.example.App"}, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.view.AppID, func(t *testing.T) {
			assert.Equal(t, tt.ignored, m.Ignored(tt.view))
			name, th := m.ThemeFor(tt.view)
			assert.Equal(t, tt.theme, name)
			if tt.theme == "special" {
				assert.Same(t, special, th)
			} else {
				assert.Same(t, def, th)
			}
		})
	}
}

func TestManagerDecorate(t *testing.T) {
	def := testTheme(func(o *theme.Options) { o.IgnoreViews = "app_id is ignored" })
	special := testTheme(nil)
	m := NewManager(newFakeRenderer(), def, WithExtraTheme("special", special, "app_id is special"))

	w := newWindow()
	d, ok := m.Decorate(StrongWindow(w))
	require.True(t, ok)
	assert.Same(t, def, d.Theme())

	w.appID = "special"
	d, ok = m.Decorate(StrongWindow(w))
	require.True(t, ok)
	assert.Same(t, special, d.Theme())

	w.appID = "ignored"
	_, ok = m.Decorate(StrongWindow(w))
	assert.False(t, ok)

	_, ok = m.Decorate(WindowRef{})
	assert.False(t, ok)
}

func TestManagerBadIgnoreExpression(t *testing.T) {
	m := NewManager(newFakeRenderer(), testTheme(func(o *theme.Options) { o.IgnoreViews = "app_id ~ x" }))
	assert.False(t, m.Ignored(match.View{AppID: "x"}))
}

func TestLoggerRoundTrip(t *testing.T) {
	assert.NotNil(t, Logger())
	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), 0))
}
