// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/tailor"
	"github.com/gogpu/tailor/render"
	"github.com/gogpu/tailor/tile"
	"github.com/gogpu/tailor/trousers"
)

func testPattern(t *testing.T) *tailor.Pattern {
	t.Helper()
	p, err := tailor.Generate(tailor.DefaultInputs(trousers.Measurements{
		Hip:          100,
		WaistToHip:   20,
		WaistToKnee:  55,
		WaistToAnkle: 100,
		CrotchDepth:  28,
		Waist:        80,
		Hemline:      44,
	}))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return p
}

func newRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	r, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	return img
}

func hasInk(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r < 0x8000 && g < 0x8000 && bl < 0x8000 {
				return true
			}
		}
	}
	return false
}

func TestNew_Defaults(t *testing.T) {
	r := newRenderer(t, Options{})
	if r.opts.DPI != 150 {
		t.Errorf("DPI = %v, want 150", r.opts.DPI)
	}
	if r.opts.SheetScale != 1 {
		t.Errorf("SheetScale = %v, want 1", r.opts.SheetScale)
	}
}

func TestNew_BadFont(t *testing.T) {
	opts := DefaultOptions()
	opts.Fonts.Regular = []byte("not a font")
	if _, err := New(opts); err == nil {
		t.Error("New() with invalid font data: expected error")
	}
}

func TestWriteSheet(t *testing.T) {
	p := testPattern(t)
	r := newRenderer(t, Options{SheetScale: 2})

	var buf bytes.Buffer
	if err := r.WriteSheet(&buf, p); err != nil {
		t.Fatalf("WriteSheet() error = %v", err)
	}
	img := decode(t, buf.Bytes())

	wantW := int(math.Ceil(p.Bounds.Width() * 2))
	wantH := int(math.Ceil(p.Bounds.Height() * 2))
	if got := img.Bounds().Dx(); got != wantW {
		t.Errorf("width = %d, want %d", got, wantW)
	}
	if got := img.Bounds().Dy(); got != wantH {
		t.Errorf("height = %d, want %d", got, wantH)
	}
	if !hasInk(img) {
		t.Error("sheet image has no dark pixels")
	}
}

func TestWriteSheet_NoPattern(t *testing.T) {
	r := newRenderer(t, DefaultOptions())
	var buf bytes.Buffer
	if err := r.WriteSheet(&buf, nil); !errors.Is(err, tailor.ErrNoPattern) {
		t.Errorf("WriteSheet(nil) error = %v, want ErrNoPattern", err)
	}
}

func TestWritePage_Size(t *testing.T) {
	p := testPattern(t)
	l, err := p.Pages(tile.A4())
	if err != nil {
		t.Fatalf("Pages() error = %v", err)
	}
	r := newRenderer(t, Options{DPI: 100})

	var buf bytes.Buffer
	if err := r.WritePage(&buf, p, l, &l.Pages[0]); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	img := decode(t, buf.Bytes())

	wantW := int(math.Round(210 * 100 / 25.4))
	wantH := int(math.Round(297 * 100 / 25.4))
	if got := img.Bounds().Dx(); got != wantW {
		t.Errorf("width = %d, want %d", got, wantW)
	}
	if got := img.Bounds().Dy(); got != wantH {
		t.Errorf("height = %d, want %d", got, wantH)
	}
	if !hasInk(img) {
		t.Error("page image has no dark pixels")
	}
}

func TestWritePage_NoPattern(t *testing.T) {
	r := newRenderer(t, DefaultOptions())
	var buf bytes.Buffer
	err := r.WritePage(&buf, nil, &tile.Layout{}, &tile.Page{})
	if !errors.Is(err, tailor.ErrNoPattern) {
		t.Errorf("WritePage(nil) error = %v, want ErrNoPattern", err)
	}
}

func TestSavePages(t *testing.T) {
	p := testPattern(t)
	l, err := p.Pages(tile.A4())
	if err != nil {
		t.Fatalf("Pages() error = %v", err)
	}
	r := newRenderer(t, Options{DPI: 30})
	dir := t.TempDir()

	names, err := r.SavePages(dir, p, l)
	if err != nil {
		t.Fatalf("SavePages() error = %v", err)
	}
	if len(names) != l.Total() {
		t.Fatalf("len(names) = %d, want %d", len(names), l.Total())
	}
	if want := filepath.Join(dir, "page-001.png"); names[0] != want {
		t.Errorf("names[0] = %q, want %q", names[0], want)
	}
	for _, name := range names {
		if _, err := os.Stat(name); err != nil {
			t.Errorf("Stat(%q) error = %v", name, err)
		}
	}
}

func TestDrawRotated_Vertical(t *testing.T) {
	r := newRenderer(t, DefaultOptions())
	p := testPattern(t)
	l, err := p.Pages(tile.A4())
	if err != nil {
		t.Fatalf("Pages() error = %v", err)
	}
	// Find a page with a vertical mark so the rotated label path runs.
	var page *tile.Page
	for i := range l.Pages {
		if l.Pages[i].HasMark(tile.Left) || l.Pages[i].HasMark(tile.Right) {
			page = &l.Pages[i]
			break
		}
	}
	if page == nil {
		t.Skip("layout has a single column")
	}
	var buf bytes.Buffer
	if err := r.WritePage(&buf, p, l, page); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
}

func TestRegisteredExporter(t *testing.T) {
	exp, err := render.NewExporter("png")
	if err != nil {
		t.Fatalf("NewExporter(png) error = %v", err)
	}
	var buf bytes.Buffer
	if err := exp.Export(&buf, render.Job{Pattern: testPattern(t)}); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	decode(t, buf.Bytes())
}

func TestFaceCache(t *testing.T) {
	r := newRenderer(t, DefaultOptions())
	r.face(false, 12)
	r.face(false, 12)
	if got := r.faces.Len(); got != 1 {
		t.Errorf("cached faces = %d after a repeat, want 1", got)
	}
	r.face(true, 12)
	if got := r.faces.Len(); got != 2 {
		t.Errorf("cached faces = %d, want 2", got)
	}
}
