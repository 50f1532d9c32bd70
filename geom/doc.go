// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package geom provides the integer and floating-point geometry used by the
// decoration engine.
//
// Rectangles, sizes and insets are integer pixel quantities in frame-local
// coordinates (origin at the top-left of the decorated frame, Y down).
// Points, 2×2 matrices and paths are float64 so that corner arcs can be
// built once and reflected onto any corner or edge.
//
// # Regions
//
// A Region is a union of rectangles kept pairwise disjoint, so iterating
// its rectangles never visits a pixel twice. It answers containment and
// intersection queries for damage and input handling.
//
// # Paths
//
// A Path is a single contour of line and circular-arc segments. Paths are
// built in a canonical orientation and mapped with Matrix2 plus an offset;
// Flatten turns a path into a polygon for rasterization and validation.
package geom
