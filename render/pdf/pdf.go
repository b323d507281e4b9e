// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"fmt"
	"image/color"
	"io"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gogpu/tailor"
	"github.com/gogpu/tailor/geom"
	"github.com/gogpu/tailor/internal/fonts"
	"github.com/gogpu/tailor/internal/units"
	"github.com/gogpu/tailor/tile"
)

// mmPerPt converts typographic points to millimetres.
const mmPerPt = 25.4 / 72

// Option configures document generation.
type Option func(*options)

type options struct {
	fonts    fonts.Set
	title    string
	compress bool
}

func defaultOptions() options {
	return options{
		fonts:    fonts.Default(),
		title:    "Trouser pattern",
		compress: true,
	}
}

// WithFonts sets the fonts embedded in the document.
func WithFonts(s fonts.Set) Option {
	return func(o *options) {
		if s.Regular != nil && s.Bold != nil {
			o.fonts = s
		}
	}
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithCompression enables or disables stream compression.
func WithCompression(compress bool) Option {
	return func(o *options) {
		o.compress = compress
	}
}

// Document builds the PDF for l without writing it.
func Document(p *tailor.Pattern, l *tile.Layout, opts ...Option) (*fpdf.Fpdf, error) {
	if p == nil || l == nil || len(l.Pages) == 0 {
		return nil, tailor.ErrNoPattern
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cfg := l.Config
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: cfg.Width, Ht: cfg.Height},
	})
	doc.SetCompression(o.compress)
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	doc.SetTitle(o.title, true)
	doc.SetCreator("tailor", true)

	family := o.fonts.Family
	if family == "" {
		family = fonts.FallbackFamily
	}
	doc.AddUTF8FontFromBytes(family, "", o.fonts.Regular)
	doc.AddUTF8FontFromBytes(family, "B", o.fonts.Bold)
	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("pdf: fonts: %w", err)
	}

	w := &writer{doc: doc, family: family}
	items := p.Drawing()
	for i := range l.Pages {
		page := &l.Pages[i]
		doc.AddPage()
		w.tile(page, items)
		w.paper(page)
		if err := doc.Error(); err != nil {
			return nil, fmt.Errorf("pdf: page %d: %w", page.Number, err)
		}
		tailor.Logger().Debug("pdf: page drawn", "page", page.Number, "of", l.Total())
	}
	return doc, nil
}

// Write encodes the tiled pattern as PDF to out.
func Write(out io.Writer, p *tailor.Pattern, l *tile.Layout, opts ...Option) error {
	doc, err := Document(p, l, opts...)
	if err != nil {
		return err
	}
	if err := doc.Output(out); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	tailor.Logger().Info("pdf: document written", "pages", l.Total())
	return nil
}

type writer struct {
	doc    *fpdf.Fpdf
	family string
}

func (w *writer) drawColor(c color.NRGBA) {
	w.doc.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func (w *writer) stroke(c color.NRGBA, width float64, dash []float64) {
	w.drawColor(c)
	w.doc.SetLineWidth(width)
	if dash == nil {
		dash = []float64{}
	}
	w.doc.SetDashPattern(dash, 0)
}

func scaled(v []float64, s float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x * s
	}
	return out
}

// tile draws the sheet items that fall on page.
func (w *writer) tile(page *tile.Page, items []tailor.Item) {
	doc := w.doc
	c := page.Clip
	doc.ClipRect(c.Min.X, c.Min.Y, c.Width(), c.Height(), false)
	defer doc.ClipEnd()

	s := units.MMPerPx
	for _, item := range items {
		switch it := item.(type) {
		case tailor.SeamItem:
			st := tailor.SeamStroke
			w.stroke(st.Color, st.Width*s, scaled(st.Dash, s))
			w.path(page, it.Segments)
			doc.DrawPath("D")
		case tailor.AllowanceItem:
			if len(it.Points) == 0 {
				continue
			}
			st := tailor.AllowanceStroke
			w.stroke(st.Color, st.Width*s, scaled(st.Dash, s))
			for i, pt := range it.Points {
				q := page.ToPaper(pt)
				if i == 0 {
					doc.MoveTo(q.X, q.Y)
				} else {
					doc.LineTo(q.X, q.Y)
				}
			}
			doc.ClosePath()
			doc.DrawPath("D")
		case tailor.GuideItem:
			st := tailor.GuideStroke
			w.stroke(st.Color, st.Width*s, scaled(st.Dash, s))
			a, b := page.ToPaper(it.Line.P1), page.ToPaper(it.Line.P2)
			doc.Line(a.X, a.Y, b.X, b.Y)
		case tailor.MarkerItem:
			q := page.ToPaper(it.At)
			f := tailor.MarkerFill
			doc.SetFillColor(int(f.R), int(f.G), int(f.B))
			doc.Circle(q.X, q.Y, it.Radius*s, "F")
		case tailor.LabelItem:
			q := page.ToPaper(it.At)
			f := tailor.LabelFill
			doc.SetAlpha(float64(f.A)/255, "Normal")
			w.text(tile.Text{
				Text:  it.Text,
				At:    q,
				Align: tile.AlignCenter,
				Style: tile.TextStyle{Size: it.Size * s / mmPerPt, Color: f},
			})
			doc.SetAlpha(1, "Normal")
		}
	}
	doc.SetDashPattern([]float64{}, 0)
}

func (w *writer) path(page *tile.Page, segs []geom.Segment) {
	doc := w.doc
	for i, seg := range segs {
		if i == 0 {
			q := page.ToPaper(seg.Start())
			doc.MoveTo(q.X, q.Y)
		}
		switch sg := seg.(type) {
		case geom.Line:
			q := page.ToPaper(sg.P2)
			doc.LineTo(q.X, q.Y)
		case geom.Cubic:
			c1, c2, q := page.ToPaper(sg.CP1), page.ToPaper(sg.CP2), page.ToPaper(sg.P3)
			doc.CurveBezierCubicTo(c1.X, c1.Y, c2.X, c2.Y, q.X, q.Y)
		}
	}
}

// paper draws marks, page text and the scale square.
func (w *writer) paper(page *tile.Page) {
	doc := w.doc
	ms := tile.MarkStroke
	for _, m := range page.Marks {
		w.stroke(ms.Color, ms.Width, ms.Dash)
		doc.Line(m.Line.P1.X, m.Line.P1.Y, m.Line.P2.X, m.Line.P2.Y)
		w.text(m.Label)
	}
	doc.SetDashPattern([]float64{}, 0)

	for _, t := range page.Info {
		w.text(t)
	}
	for _, t := range page.Helpers {
		w.text(t)
	}

	sq := page.Scale
	if sq == nil {
		return
	}
	ss := tile.ScaleStroke
	w.stroke(ss.Color, ss.Width, ss.Dash)
	doc.Rect(sq.Square.Min.X, sq.Square.Min.Y, sq.Square.Width(), sq.Square.Height(), "D")
	for _, c := range sq.Caps {
		doc.Line(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y)
	}
	for _, t := range sq.Labels {
		w.text(t)
	}
}

func (w *writer) text(t tile.Text) {
	doc := w.doc
	style := ""
	if t.Style.Bold {
		style = "B"
	}
	doc.SetFont(w.family, style, t.Style.Size)
	doc.SetTextColor(int(t.Style.Color.R), int(t.Style.Color.G), int(t.Style.Color.B))

	x, y := t.At.X, t.At.Y
	if t.Align == tile.AlignCenter {
		x -= doc.GetStringWidth(t.Text) / 2
	}
	if t.Rotate == 0 {
		doc.Text(x, y, t.Text)
		return
	}
	doc.TransformBegin()
	doc.TransformRotate(t.Rotate, t.At.X, t.At.Y)
	doc.Text(x, y, t.Text)
	doc.TransformEnd()
}
