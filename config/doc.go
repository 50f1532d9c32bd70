// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config resolves theme options from TOML or YAML files.
//
// A file holds sections of key/value pairs. The "decor" section carries
// the global defaults; every other section is a named theme whose keys
// override the defaults:
//
//	[decor]
//	border_size = "30 4"
//	extra_themes = "dialog"
//
//	[dialog]
//	uses_if = 'app_id is "pinentry"'
//	corner_radius = 0
//
// Keys a theme does not set fall back to the "decor" section. A key
// missing from both is a configuration error reported by Resolve, so it
// surfaces at startup rather than while rendering. [Defaults] provides a
// complete "decor" section matching theme.DefaultOptions.
package config
