// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package compositor builds the window-corner and accent rasters of a
// decoration and clips them against each other.
//
// Every accent is described once by a canonical closed path in top-edge
// coordinates (u along the edge, v inward from the outer side). The edge
// transform maps that path onto any of the four edges, and the per-corner
// style is re-targeted through the same transform so a style such as
// "tr bl" always names physical corners.
//
// Where an accent runs into a window corner the two rasters are clipped
// against each other: the accent keeps only the part inside the corner's
// outer shape, and the corner loses the accent's shape and straight run.
// Corners are drawn first, accents on top.
package compositor
