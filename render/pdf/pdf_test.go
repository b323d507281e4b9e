// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/tailor"
	"github.com/gogpu/tailor/internal/fonts"
	"github.com/gogpu/tailor/render"
	"github.com/gogpu/tailor/tile"
	"github.com/gogpu/tailor/trousers"
)

func testLayout(t *testing.T, cfg tile.PageConfig) (*tailor.Pattern, *tile.Layout) {
	t.Helper()
	in := tailor.DefaultInputs(trousers.Measurements{
		Hip:          100,
		WaistToHip:   20,
		WaistToKnee:  55,
		WaistToAnkle: 100,
		CrotchDepth:  28,
		Waist:        80,
		Hemline:      44,
	})
	in.SeamAllowance = 10
	p, err := tailor.Generate(in)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	l, err := p.Pages(cfg)
	if err != nil {
		t.Fatalf("Pages() error = %v", err)
	}
	return p, l
}

func TestDocument_PageCount(t *testing.T) {
	tests := []struct {
		name string
		cfg  tile.PageConfig
	}{
		{"a4", tile.A4()},
		{"letter", tile.Letter()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, l := testLayout(t, tt.cfg)
			doc, err := Document(p, l)
			if err != nil {
				t.Fatalf("Document() error = %v", err)
			}
			if got := doc.PageCount(); got != l.Total() {
				t.Errorf("PageCount() = %d, want %d", got, l.Total())
			}
		})
	}
}

func TestWrite(t *testing.T) {
	p, l := testLayout(t, tile.A4())

	var buf bytes.Buffer
	if err := Write(&buf, p, l, WithTitle("Test"), WithCompression(false)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output does not start with %%PDF-, got %q", out[:min(len(out), 8)])
	}
	if !bytes.Contains(out, []byte("%%EOF")) {
		t.Error("output has no EOF trailer")
	}
}

func TestWrite_NoPattern(t *testing.T) {
	_, l := testLayout(t, tile.A4())
	tests := []struct {
		name string
		p    *tailor.Pattern
		l    *tile.Layout
	}{
		{"nil pattern", nil, l},
		{"nil layout", &tailor.Pattern{}, nil},
		{"empty layout", &tailor.Pattern{}, &tile.Layout{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tt.p, tt.l); !errors.Is(err, tailor.ErrNoPattern) {
				t.Errorf("Write() error = %v, want ErrNoPattern", err)
			}
			if buf.Len() != 0 {
				t.Errorf("Write() wrote %d bytes on error", buf.Len())
			}
		})
	}
}

func TestWithFonts_IgnoresIncompleteSet(t *testing.T) {
	o := defaultOptions()
	WithFonts(fonts.Set{Family: "Broken", Regular: []byte{1}})(&o)
	if o.fonts.Family != fonts.FallbackFamily {
		t.Errorf("family = %q, want %q", o.fonts.Family, fonts.FallbackFamily)
	}
}

func TestScaled(t *testing.T) {
	got := scaled([]float64{4, 2}, 0.5)
	if len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Errorf("scaled() = %v, want [2 1]", got)
	}
	if got := scaled(nil, 2); len(got) != 0 {
		t.Errorf("scaled(nil) = %v, want empty", got)
	}
}

func TestRegisteredExporter(t *testing.T) {
	p, l := testLayout(t, tile.A4())
	exp, err := render.NewExporter("pdf")
	if err != nil {
		t.Fatalf("NewExporter(pdf) error = %v", err)
	}
	if exp.Ext() != ".pdf" {
		t.Errorf("Ext() = %q, want .pdf", exp.Ext())
	}
	var buf bytes.Buffer
	if err := exp.Export(&buf, render.Job{Pattern: p, Layout: l}); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("Export() did not write a PDF")
	}
}
