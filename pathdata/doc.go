// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pathdata turns SVG path data into gg paths and measures them.
//
// Parse accepts the "d" attribute grammar of SVG 1.1: moveto, lineto,
// horizontal and vertical lineto, cubic and quadratic Béziers with their
// smooth variants, elliptical arcs and closepath, in absolute and relative
// form. Arcs are converted to cubic Béziers.
//
// Measure and Trim give the arc length of a path and the prefix covering a
// fraction of it. A renderer strokes Trim(p, progress) to reveal a path as
// if it were being drawn.
package pathdata
