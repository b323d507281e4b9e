package tailor

import (
	"testing"

	"github.com/gogpu/tailor/geom"
	"github.com/gogpu/tailor/trousers"
)

func TestItemType_String(t *testing.T) {
	tests := []struct {
		typ  ItemType
		want string
	}{
		{ItemSeam, "Seam"},
		{ItemAllowance, "Allowance"},
		{ItemGuide, "Guide"},
		{ItemMarker, "Marker"},
		{ItemLabel, "Label"},
		{ItemType(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("ItemType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestDrawing(t *testing.T) {
	p, err := Generate(testInputs(1))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	items := p.Drawing()

	counts := make(map[ItemType]int)
	sections := make(map[trousers.CurveGroup]int)
	var segs int
	for _, it := range items {
		counts[it.Type()]++
		if s, ok := it.(SeamItem); ok {
			segs += len(s.Segments)
			if s.Section != "" {
				sections[s.Section]++
			}
		}
	}

	if counts[ItemAllowance] != 2 {
		t.Errorf("%d allowance items, want 2", counts[ItemAllowance])
	}
	if counts[ItemMarker] != 2 || counts[ItemLabel] != 2 {
		t.Errorf("markers = %d, labels = %d, want 2 and 2", counts[ItemMarker], counts[ItemLabel])
	}
	if want := len(p.Front.Edges) + len(p.Back.Edges); segs != want {
		t.Errorf("seam items hold %d segments, want %d", segs, want)
	}
	// The crotch section appears once per piece; every other section once.
	for _, g := range trousers.CurveGroups() {
		want := 1
		if g == trousers.GroupCrotch {
			want = 2
		}
		if sections[g] != want {
			t.Errorf("section %q drawn %d times, want %d", g, sections[g], want)
		}
	}

	if items[0].Type() != ItemAllowance {
		t.Errorf("first item = %v, want the front allowance", items[0].Type())
	}
	g, ok := items[1].(GuideItem)
	if !ok {
		t.Fatalf("items[1] = %T, want GuideItem", items[1])
	}
	f := p.Draft.Frame
	want := geom.Line{P1: geom.Pt(f.FrontCrotchX, f.YHip), P2: geom.Pt(f.BackCrotchX+p.BackShift, f.YHip)}
	if g.Line != want {
		t.Errorf("hip level = %v, want %v", g.Line, want)
	}
	if !g.Level || g.Name != "hip" {
		t.Errorf("items[1] = %+v, want the hip level", g)
	}
}

func TestDrawing_BackShifted(t *testing.T) {
	p, err := Generate(testInputs(1))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for _, it := range p.Drawing() {
		l, ok := it.(LabelItem)
		if !ok || l.Piece != trousers.Back {
			continue
		}
		f := p.Draft.Frame
		want := geom.Pt(f.XCenter+(f.FrameWidth-f.XCenter)/2+p.BackShift, f.YHip-trousers.LabelOffset)
		if l.At != want {
			t.Errorf("BACK label at %v, want %v", l.At, want)
		}
	}
}

func TestStrokeFor(t *testing.T) {
	if s := StrokeFor(ItemSeam); s.Width != 2 || s.Dash != nil {
		t.Errorf("seam stroke = %+v", s)
	}
	if s := StrokeFor(ItemAllowance); len(s.Dash) != 2 || s.Dash[0] != 4 {
		t.Errorf("allowance stroke = %+v", s)
	}
	if s := StrokeFor(ItemLabel); s.Width != 0 {
		t.Errorf("label stroke = %+v, want zero", s)
	}
}
