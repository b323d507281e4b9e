// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// drawRotated draws s turned deg degrees counter-clockwise about the anchor
// (x, y). Text in gg ignores the context matrix, so the string is set on a
// scratch context with the current font, turned with x/image and composited
// back.
func drawRotated(dc *gg.Context, s string, x, y, ax, deg float64, col color.Color) {
	w, h := dc.MeasureString(s)
	if w <= 0 || h <= 0 {
		return
	}
	const pad = 2
	sw := int(math.Ceil(w)) + 2*pad
	sh := int(math.Ceil(2*h)) + 2*pad

	scratch := gg.NewContext(sw, sh)
	defer func() { _ = scratch.Close() }()
	scratch.SetFont(dc.Font())
	scratch.SetColor(col)
	anchorX, anchorY := pad+ax*w, pad+h
	scratch.DrawStringAnchored(s, anchorX, anchorY, ax, 0)
	src := scratch.Image()

	// Screen Y points down, so a counter-clockwise turn is [cos sin; -sin cos].
	rad := deg * math.Pi / 180
	c, sn := math.Cos(rad), math.Sin(rad)
	turn := func(px, py float64) (float64, float64) {
		dx, dy := px-anchorX, py-anchorY
		return c*dx + sn*dy, -sn*dx + c*dy
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{0, 0}, {float64(sw), 0}, {0, float64(sh)}, {float64(sw), float64(sh)}} {
		tx, ty := turn(p[0], p[1])
		minX, maxX = math.Min(minX, tx), math.Max(maxX, tx)
		minY, maxY = math.Min(minY, ty), math.Max(maxY, ty)
	}
	minX, minY = math.Floor(minX), math.Floor(minY)
	dst := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(maxX-minX)), int(math.Ceil(maxY-minY))))

	s2d := f64.Aff3{
		c, sn, -c*anchorX - sn*anchorY - minX,
		-sn, c, sn*anchorX - c*anchorY - minY,
	}
	xdraw.BiLinear.Transform(dst, s2d, src, src.Bounds(), xdraw.Over, nil)
	dc.DrawImage(gg.ImageBufFromImage(dst), x+minX, y+minY)
}
