package tailor

import (
	"math"
	"testing"

	"github.com/gogpu/tailor/trousers"
)

func TestSeamReport(t *testing.T) {
	in := testInputs(1)
	in.Ease = trousers.Ease{}
	p, err := Generate(in)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	r := p.SeamReport()
	if len(r) != len(trousers.Seams()) {
		t.Fatalf("len(report) = %d, want %d", len(r), len(trousers.Seams()))
	}
	for _, row := range r {
		if row.Seam == trousers.SeamCenter {
			continue
		}
		if !(row.Front > 0) || !(row.Back > 0) {
			t.Errorf("%v: front = %v, back = %v, want both > 0", row.Seam, row.Front, row.Back)
		}
	}

	hem, ok := r.Lookup(trousers.SeamHem)
	if !ok {
		t.Fatal("Lookup(hem) not found")
	}
	// Hem width is hemline/2 + ease on each piece.
	if math.Abs(hem.Front-220) > 1e-6 || math.Abs(hem.Back-220) > 1e-6 {
		t.Errorf("hem = %v / %v, want 220 / 220", hem.Front, hem.Back)
	}
	if math.Abs(hem.Difference()) > 1e-6 {
		t.Errorf("hem Difference() = %v, want 0", hem.Difference())
	}

	// Zero ease keeps the back centre at the frame corner, so the back
	// centre is the straight hip-to-waist edge.
	center, _ := r.Lookup(trousers.SeamCenter)
	if math.Abs(center.Back-p.Draft.Frame.YHip) > 1e-6 {
		t.Errorf("back center = %v, want %v", center.Back, p.Draft.Frame.YHip)
	}
}

func TestSeamReport_Lookup(t *testing.T) {
	var r SeamReport
	if _, ok := r.Lookup(trousers.SeamWaist); ok {
		t.Error("Lookup() on empty report reported found")
	}
}
