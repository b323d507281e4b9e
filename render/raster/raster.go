// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/tailor"
	"github.com/gogpu/tailor/geom"
	"github.com/gogpu/tailor/internal/cache"
	"github.com/gogpu/tailor/internal/fonts"
	"github.com/gogpu/tailor/internal/units"
	"github.com/gogpu/tailor/tile"
)

// mmPerPt converts typographic points to millimetres.
const mmPerPt = 25.4 / 72

// Options configures a Renderer.
type Options struct {
	// DPI is the resolution of page images.
	DPI float64
	// SheetScale is the number of image pixels per internal unit in sheet
	// images.
	SheetScale float64
	// Fonts are used for labels and page text.
	Fonts fonts.Set
}

// DefaultOptions returns 150 DPI pages, a 1:1 sheet and the embedded
// fonts.
func DefaultOptions() Options {
	return Options{DPI: 150, SheetScale: 1, Fonts: fonts.Default()}
}

type faceKey struct {
	bold bool
	size float64
}

// Renderer draws patterns with gg.
type Renderer struct {
	opts    Options
	regular *text.FontSource
	bold    *text.FontSource
	faces   *cache.Cache[faceKey, text.Face]
}

// maxFaces bounds the face cache; a page uses a handful of sizes.
const maxFaces = 32

// New returns a Renderer. It fails when the font data cannot be parsed.
func New(opts Options) (*Renderer, error) {
	def := DefaultOptions()
	if !(opts.DPI > 0) {
		opts.DPI = def.DPI
	}
	if !(opts.SheetScale > 0) {
		opts.SheetScale = def.SheetScale
	}
	if opts.Fonts.Regular == nil || opts.Fonts.Bold == nil {
		opts.Fonts = def.Fonts
	}

	regular, err := text.NewFontSource(opts.Fonts.Regular)
	if err != nil {
		return nil, fmt.Errorf("raster: regular font: %w", err)
	}
	bold, err := text.NewFontSource(opts.Fonts.Bold)
	if err != nil {
		return nil, fmt.Errorf("raster: bold font: %w", err)
	}
	return &Renderer{
		opts:    opts,
		regular: regular,
		bold:    bold,
		faces:   cache.New[faceKey, text.Face](maxFaces),
	}, nil
}

func (r *Renderer) face(bold bool, size float64) text.Face {
	return r.faces.GetOrCreate(faceKey{bold: bold, size: size}, func() text.Face {
		if bold {
			return r.bold.Face(size)
		}
		return r.regular.Face(size)
	})
}

// transform maps sheet or paper coordinates to image pixels.
type transform struct {
	scale  float64
	dx, dy float64
}

func (t transform) apply(p geom.Point) (x, y float64) {
	return p.X*t.scale + t.dx, p.Y*t.scale + t.dy
}

// WriteSheet encodes the whole sheet as a PNG.
func (r *Renderer) WriteSheet(w io.Writer, p *tailor.Pattern) error {
	if p == nil || p.Bounds.Empty() {
		return tailor.ErrNoPattern
	}
	s := r.opts.SheetScale
	width := int(math.Ceil(p.Bounds.Width() * s))
	height := int(math.Ceil(p.Bounds.Height() * s))
	t := transform{scale: s, dx: -p.Bounds.Min.X * s, dy: -p.Bounds.Min.Y * s}

	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)
	if err := r.drawItems(dc, p.Drawing(), t); err != nil {
		return err
	}
	tailor.Logger().Debug("raster: sheet rendered", "width", width, "height", height)
	return dc.EncodePNG(w)
}

// WritePage encodes one print page as a PNG.
func (r *Renderer) WritePage(w io.Writer, p *tailor.Pattern, l *tile.Layout, page *tile.Page) error {
	dc, err := r.renderPage(p, l, page)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

// SavePages writes every page of l to dir as page-NNN.png and returns the
// file names.
func (r *Renderer) SavePages(dir string, p *tailor.Pattern, l *tile.Layout) ([]string, error) {
	if p == nil || l == nil {
		return nil, tailor.ErrNoPattern
	}
	names := make([]string, 0, l.Total())
	for i := range l.Pages {
		page := &l.Pages[i]
		dc, err := r.renderPage(p, l, page)
		if err != nil {
			return names, err
		}
		name := filepath.Join(dir, fmt.Sprintf("page-%03d.png", page.Number))
		err = dc.SavePNG(name)
		_ = dc.Close()
		if err != nil {
			return names, fmt.Errorf("raster: %w", err)
		}
		names = append(names, name)
	}
	tailor.Logger().Info("raster: pages written", "dir", dir, "pages", len(names))
	return names, nil
}

func (r *Renderer) renderPage(p *tailor.Pattern, l *tile.Layout, page *tile.Page) (*gg.Context, error) {
	if p == nil || l == nil || page == nil {
		return nil, tailor.ErrNoPattern
	}
	cfg := l.Config
	pxPerMM := r.opts.DPI / 25.4
	width := int(math.Round(cfg.Width * pxPerMM))
	height := int(math.Round(cfg.Height * pxPerMM))
	paper := transform{scale: pxPerMM}

	// Sheet point q lands at Origin + (q - Crop.Min) on the paper.
	s := units.MMPerPx * pxPerMM
	sheet := transform{
		scale: s,
		dx:    page.Origin.X*pxPerMM - page.Crop.Min.X*s,
		dy:    page.Origin.Y*pxPerMM - page.Crop.Min.Y*s,
	}

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)

	dc.Push()
	cx, cy := paper.apply(page.Clip.Min)
	dc.ClipRect(cx, cy, page.Clip.Width()*pxPerMM, page.Clip.Height()*pxPerMM)
	err := r.drawItems(dc, p.Drawing(), sheet)
	dc.ResetClip()
	dc.Pop()
	if err == nil {
		err = r.drawPaper(dc, page, paper)
	}
	if err != nil {
		_ = dc.Close()
		return nil, fmt.Errorf("raster: page %d: %w", page.Number, err)
	}
	tailor.Logger().Debug("raster: page rendered", "page", page.Number, "of", l.Total())
	return dc, nil
}

func setStroke(dc *gg.Context, col color.Color, width float64, dash []float64, scale float64) {
	dc.SetColor(col)
	dc.SetLineWidth(width * scale)
	if len(dash) == 0 {
		dc.ClearDash()
		return
	}
	scaled := make([]float64, len(dash))
	for i, d := range dash {
		scaled[i] = d * scale
	}
	dc.SetDash(scaled...)
}

func (r *Renderer) drawItems(dc *gg.Context, items []tailor.Item, t transform) error {
	for _, item := range items {
		switch it := item.(type) {
		case tailor.SeamItem:
			st := tailor.SeamStroke
			setStroke(dc, st.Color, st.Width, st.Dash, t.scale)
			tracePath(dc, it.Segments, t)
			if err := dc.Stroke(); err != nil {
				return err
			}
		case tailor.AllowanceItem:
			st := tailor.AllowanceStroke
			setStroke(dc, st.Color, st.Width, st.Dash, t.scale)
			for i, pt := range it.Points {
				x, y := t.apply(pt)
				if i == 0 {
					dc.MoveTo(x, y)
				} else {
					dc.LineTo(x, y)
				}
			}
			dc.ClosePath()
			if err := dc.Stroke(); err != nil {
				return err
			}
		case tailor.GuideItem:
			st := tailor.GuideStroke
			setStroke(dc, st.Color, st.Width, st.Dash, t.scale)
			x1, y1 := t.apply(it.Line.P1)
			x2, y2 := t.apply(it.Line.P2)
			dc.DrawLine(x1, y1, x2, y2)
			if err := dc.Stroke(); err != nil {
				return err
			}
		case tailor.MarkerItem:
			x, y := t.apply(it.At)
			dc.SetColor(tailor.MarkerFill)
			dc.DrawCircle(x, y, it.Radius*t.scale)
			if err := dc.Fill(); err != nil {
				return err
			}
		case tailor.LabelItem:
			x, y := t.apply(it.At)
			dc.SetFont(r.face(false, it.Size*t.scale))
			dc.SetColor(tailor.LabelFill)
			dc.DrawStringAnchored(it.Text, x, y, 0.5, 0)
		}
	}
	dc.ClearDash()
	return nil
}

func tracePath(dc *gg.Context, segs []geom.Segment, t transform) {
	for i, seg := range segs {
		if i == 0 {
			dc.MoveTo(t.apply(seg.Start()))
		}
		switch s := seg.(type) {
		case geom.Line:
			dc.LineTo(t.apply(s.P2))
		case geom.Cubic:
			x1, y1 := t.apply(s.CP1)
			x2, y2 := t.apply(s.CP2)
			x3, y3 := t.apply(s.P3)
			dc.CubicTo(x1, y1, x2, y2, x3, y3)
		}
	}
}

// drawPaper draws alignment marks, page text and the scale square.
func (r *Renderer) drawPaper(dc *gg.Context, page *tile.Page, t transform) error {
	ms := tile.MarkStroke
	for _, m := range page.Marks {
		setStroke(dc, ms.Color, ms.Width, ms.Dash, t.scale)
		x1, y1 := t.apply(m.Line.P1)
		x2, y2 := t.apply(m.Line.P2)
		dc.DrawLine(x1, y1, x2, y2)
		if err := dc.Stroke(); err != nil {
			return err
		}
		r.drawText(dc, m.Label, t)
	}
	dc.ClearDash()

	for _, tx := range page.Info {
		r.drawText(dc, tx, t)
	}
	for _, tx := range page.Helpers {
		r.drawText(dc, tx, t)
	}

	if sq := page.Scale; sq != nil {
		ss := tile.ScaleStroke
		setStroke(dc, ss.Color, ss.Width, ss.Dash, t.scale)
		x, y := t.apply(sq.Square.Min)
		dc.DrawRectangle(x, y, sq.Square.Width()*t.scale, sq.Square.Height()*t.scale)
		if err := dc.Stroke(); err != nil {
			return err
		}
		for _, c := range sq.Caps {
			x1, y1 := t.apply(c.P1)
			x2, y2 := t.apply(c.P2)
			dc.DrawLine(x1, y1, x2, y2)
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
		for _, tx := range sq.Labels {
			r.drawText(dc, tx, t)
		}
	}
	return nil
}

func (r *Renderer) drawText(dc *gg.Context, tx tile.Text, t transform) {
	dc.SetFont(r.face(tx.Style.Bold, tx.Style.Size*mmPerPt*t.scale))
	dc.SetColor(tx.Style.Color)
	x, y := t.apply(tx.At)
	ax := 0.0
	if tx.Align == tile.AlignCenter {
		ax = 0.5
	}
	if tx.Rotate == 0 {
		dc.DrawStringAnchored(tx.Text, x, y, ax, 0)
		return
	}
	drawRotated(dc, tx.Text, x, y, ax, tx.Rotate, tx.Style.Color)
}
