// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svg writes the pattern sheet as a standalone SVG document.
//
// The sheet is built as a cogentcore SVG tree ([Document]) and encoded
// with its XML writer ([Write]). One SVG user unit is one internal unit
// (a millimetre on paper), and the view box is the pattern bounds.
//
// Allowances are polygons inside groups named "<piece>_seam_allowance",
// guides are lines named after the guide, and seam runs are paths. When
// interactive output is on, curved seams get the interactive-curve class
// and a data-curve-section property naming the curve group that shapes
// them.
package svg
