// Package flow implements a single-axis adaptive layout engine.
//
// Given an ordered list of child boxes and a (min, max) constraint per
// axis, an [Engine] decides once per pass, all or nothing, whether the
// children go in a single row or a single column, then assigns exact
// offsets honoring alignment, spacing, reading direction, and stacking
// direction. Children are never split across multiple lines.
//
// The main entry point is [Engine.Layout], which resolves the axis,
// arranges the given [Item] children, and reports the container size.
// Types are re-exported through the root axisflow package for public
// consumption.
package flow
