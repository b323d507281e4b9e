// Package geom provides the 2D primitives used to draft and lay out
// sewing patterns: points, rectangles, line and cubic Bézier segments,
// polyline flattening, and polygon offsetting.
//
// # Coordinate System
//
// All geometry uses screen-space coordinates in internal units
// (10 units = 1 cm):
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Winding follows the same convention. [SignedArea] is positive for a
// polygon that runs clockwise on screen (counter-clockwise in the
// mathematical Y-up sense) and negative otherwise.
//
// The package has no domain knowledge and performs no I/O.
package geom
