// Package axisflow provides a single-axis adaptive layout engine.
//
// A container arranges its children along one axis, horizontal or
// vertical, chosen fresh on every pass from the incoming constraints:
// the primary axis when the children fit, the perpendicular one when
// they do not. Users import this single package for the complete
// public API: containers, boxes, layout options, and the pass pipeline.
package axisflow
