// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strings"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	coresvg "cogentcore.org/core/svg"

	"github.com/gogpu/tailor"
	"github.com/gogpu/tailor/geom"
	"github.com/gogpu/tailor/render"
)

// Class names set on sheet nodes.
const (
	ClassAllowance   = "seam-allowance"
	ClassGuide       = "guide"
	ClassInteractive = "interactive-curve"
)

// Node properties carried by seam paths.
const (
	PropPiece   = "data-piece"
	PropSeam    = "data-seam"
	PropSection = "data-curve-section"
)

func init() {
	render.Register("svg", func() render.Exporter {
		return exporter{}
	})
}

type exporter struct{}

func (exporter) Ext() string { return ".svg" }

func (exporter) Export(w io.Writer, job render.Job) error {
	return Write(w, job.Pattern)
}

// Option configures the SVG output.
type Option func(*options)

type options struct {
	fontFamily  string
	interactive bool
	indent      bool
}

func defaultOptions() options {
	return options{fontFamily: "sans-serif", interactive: true, indent: true}
}

// WithFontFamily sets the font-family of piece labels.
func WithFontFamily(family string) Option {
	return func(o *options) {
		if family != "" {
			o.fontFamily = family
		}
	}
}

// WithInteractive controls the interactive-curve class and the
// data-curve-section property on curved seams.
func WithInteractive(on bool) Option {
	return func(o *options) {
		o.interactive = on
	}
}

// WithIndent controls indentation of the XML output.
func WithIndent(on bool) Option {
	return func(o *options) {
		o.indent = on
	}
}

// Document builds the sheet of p as an SVG tree. The view box is the
// pattern bounds.
func Document(p *tailor.Pattern, opts ...Option) (*coresvg.SVG, error) {
	if p == nil || p.Bounds.Empty() {
		return nil, tailor.ErrNoPattern
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return document(p, o), nil
}

// Write encodes the sheet of p as SVG.
func Write(w io.Writer, p *tailor.Pattern, opts ...Option) error {
	if p == nil || p.Bounds.Empty() {
		return tailor.ErrNoPattern
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	sv := document(p, o)

	// WriteXML does not report writer errors, so encode into memory first.
	var buf bytes.Buffer
	if err := sv.WriteXML(&buf, o.indent); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	tailor.Logger().Debug("svg: sheet written", "width", p.Bounds.Width(), "height", p.Bounds.Height())
	return nil
}

func document(p *tailor.Pattern, o options) *coresvg.SVG {
	b := p.Bounds
	size := math32.Vec2(float32(b.Width()), float32(b.Height()))
	sv := coresvg.NewSVG(size)
	sv.PhysicalWidth.Value = size.X
	sv.PhysicalHeight.Value = size.Y
	sv.Root.ViewBox.Min = vec(b.Min)
	sv.Root.ViewBox.Size = size

	for _, item := range p.Drawing() {
		switch it := item.(type) {
		case tailor.AllowanceItem:
			g := coresvg.NewGroup(sv.Root)
			g.SetName(it.Piece.String() + "_seam_allowance")
			g.Class = ClassAllowance
			pg := coresvg.NewPolygon(g)
			pg.Points = points(it.Points)
			stroke(pg, tailor.AllowanceStroke)
		case tailor.GuideItem:
			ln := coresvg.NewLine(sv.Root)
			ln.SetName(guideID(it))
			ln.Class = ClassGuide
			ln.Start = vec(it.Line.P1)
			ln.End = vec(it.Line.P2)
			stroke(ln, tailor.GuideStroke)
		case tailor.SeamItem:
			seam(sv.Root, it, o)
		case tailor.MarkerItem:
			c := coresvg.NewCircle(sv.Root)
			c.Pos = vec(it.At)
			c.Radius = float32(it.Radius)
			fill(c, tailor.MarkerFill)
			c.SetProperty("stroke", "none")
		case tailor.LabelItem:
			label(sv.Root, it, o)
		}
	}
	return sv
}

func guideID(it tailor.GuideItem) string {
	if it.Level {
		return "level_" + it.Name
	}
	return it.Piece.String() + "_" + it.Name
}

func seam(parent coresvg.Node, it tailor.SeamItem, o options) {
	pa := coresvg.NewPath(parent)
	for i, seg := range it.Segments {
		if i == 0 {
			s := seg.Start()
			pa.Data.MoveTo(float32(s.X), float32(s.Y))
		}
		switch s := seg.(type) {
		case geom.Line:
			pa.Data.LineTo(float32(s.P2.X), float32(s.P2.Y))
		case geom.Cubic:
			pa.Data.CubeTo(float32(s.CP1.X), float32(s.CP1.Y),
				float32(s.CP2.X), float32(s.CP2.Y),
				float32(s.P3.X), float32(s.P3.Y))
		}
	}
	pa.UpdatePathString()
	pa.SetProperty(PropPiece, it.Piece.String())
	pa.SetProperty(PropSeam, it.Seam.String())
	if o.interactive && it.Section != "" {
		pa.Class = ClassInteractive
		pa.SetProperty(PropSection, string(it.Section))
	}
	stroke(pa, tailor.SeamStroke)
}

func label(parent coresvg.Node, it tailor.LabelItem, o options) {
	t := coresvg.NewText(parent)
	t.Pos = vec(it.At)
	t.SetProperty("text-anchor", "middle")
	t.SetProperty("font-family", o.fontFamily)
	t.SetProperty("font-size", float32(it.Size))
	fill(t, tailor.LabelFill)

	span := coresvg.NewText(t)
	span.Pos = t.Pos
	span.Text = it.Text
}

func stroke(n coresvg.Node, s tailor.Stroke) {
	nb := n.AsNodeBase()
	nb.SetProperty("fill", "none")
	nb.SetProperty("stroke", hex(s.Color))
	nb.SetProperty("stroke-width", float32(s.Width))
	if len(s.Dash) > 0 {
		parts := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			parts[i] = fmt.Sprintf("%g", d)
		}
		nb.SetProperty("stroke-dasharray", strings.Join(parts, ","))
	}
}

func fill(n coresvg.Node, c color.NRGBA) {
	nb := n.AsNodeBase()
	nb.SetProperty("fill", hex(c))
	if c.A != 0xff {
		nb.SetProperty("fill-opacity", float32(c.A)/255)
	}
}

// hex drops alpha; opacity is set as its own property.
func hex(c color.NRGBA) string {
	c.A = 0xff
	return colors.AsHex(c)[:7]
}

func vec(p geom.Point) math32.Vector2 {
	return math32.Vec2(float32(p.X), float32(p.Y))
}

func points(pts []geom.Point) []math32.Vector2 {
	out := make([]math32.Vector2, len(pts))
	for i, p := range pts {
		out[i] = vec(p)
	}
	return out
}
