// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides the sharded LRU memo shared by the decoration
// rasterizers.
//
// Shape outlines and font faces are keyed by their parameters and reused
// across windows:
//
//	paths := cache.NewSharded[string, *geom.Path](256, cache.StringHasher)
//	p := paths.GetOrCreate(key, func() *geom.Path { return build(key) })
//
// ShardedCache is safe for concurrent use and must not be copied after
// creation.
package cache
