// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndMatch(t *testing.T) {
	firefox := View{AppID: "firefox", Title: "Picture-in-Picture"}
	term := View{AppID: "org.gnome.Terminal", Title: "~ — bash"}

	tests := []struct {
		expr     string
		firefox  bool
		terminal bool
	}{
		{"", false, false},
		{"all", true, true},
		{"none", false, false},
		{"not none", true, true},
		{`app_id is "firefox"`, true, false},
		{`app_id == firefox`, true, false},
		{`title contains Picture`, true, false},
		{`app_id starts_with org.gnome`, false, true},
		{`app_id ends_with Terminal`, false, true},
		{`not app_id is firefox`, false, true},
		{`app_id is firefox | app_id starts_with org.`, true, true},
		{`app_id is firefox & title is "nope"`, false, false},
		{`app_id is firefox & title is nope | title contains bash`, false, true},
		{`title is "Picture-in-Picture" & app_id ends_with fox`, true, false},
		{`title contains 'a | b'`, false, false},
		{`title contains "—" | app_id is firefox`, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			e, err := Parse(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.firefox, e.Match(firefox), "firefox")
			assert.Equal(t, tt.terminal, e.Match(term), "terminal")
			assert.Equal(t, tt.expr, e.String())
		})
	}
}

func TestQuotedOperatorIsLiteral(t *testing.T) {
	e, err := Parse(`title contains 'a | b'`)
	require.NoError(t, err)
	assert.True(t, e.Match(View{Title: "x a | b y"}))
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{
		"app_id",
		"app_id is",
		"app_id is a b",
		"class is x",
		"app_id like x",
		"app_id is x &",
		"app_id is x && title is y",
		"| all",
		`title is "unterminated`,
		"app_id is x ; all",
		"(all)",
	} {
		t.Run(s, func(t *testing.T) {
			_, err := Parse(s)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { MustParse("all") })
	assert.Panics(t, func() { MustParse("bogus") })
	assert.False(t, None.Match(View{AppID: "x"}))
}
