// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package match evaluates view matcher expressions such as
//
//	app_id is "firefox" | title contains "Picture-in-Picture"
//	app_id starts_with org.gnome & not title is "Settings"
//
// An expression is a list of conditions joined by & and |, with &
// binding tighter. A condition is "all", "none", or
// [not] <field> <operator> <value>, where field is app_id or title and
// operator is is, contains, starts_with or ends_with. Values follow shell
// quoting rules.
package match
