package geom

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func square(size float64) []Point {
	return []Point{{0, 0}, {size, 0}, {size, size}, {0, size}}
}

func TestLineLineIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 Point
		want           Point
		wantOK         bool
	}{
		{
			name: "perpendicular",
			a1:   Pt(0, 5), a2: Pt(10, 5),
			b1: Pt(3, 0), b2: Pt(3, 10),
			want: Pt(3, 5), wantOK: true,
		},
		{
			name: "beyond segment ends",
			a1:   Pt(0, 0), a2: Pt(1, 1),
			b1: Pt(10, 0), b2: Pt(9, 1),
			want: Pt(5, 5), wantOK: true,
		},
		{
			name: "parallel",
			a1:   Pt(0, 0), a2: Pt(10, 0),
			b1: Pt(0, 1), b2: Pt(10, 1),
			wantOK: false,
		},
		{
			name: "nearly parallel below threshold",
			a1:   Pt(0, 0), a2: Pt(1, 0),
			b1: Pt(0, 1), b2: Pt(1, 1+1e-11),
			wantOK: false,
		},
		{
			name: "coincident",
			a1:   Pt(0, 0), a2: Pt(5, 5),
			b1: Pt(1, 1), b2: Pt(2, 2),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LineLineIntersect(tt.a1, tt.a2, tt.b1, tt.b2)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !pointsEqual(got, tt.want, epsilon) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSignedArea(t *testing.T) {
	sq := square(10)
	if got := SignedArea(sq); got != 100 {
		t.Errorf("SignedArea(clockwise on screen) = %v, want 100", got)
	}
	rev := slices.Clone(sq)
	slices.Reverse(rev)
	if got := SignedArea(rev); got != -100 {
		t.Errorf("SignedArea(reversed) = %v, want -100", got)
	}
	tri := []Point{{0, 0}, {4, 0}, {2, 3}}
	if got := SignedArea(tri); math.Abs(got-6) > epsilon {
		t.Errorf("SignedArea(triangle) = %v, want 6", got)
	}
	if got := SignedArea(nil); got != 0 {
		t.Errorf("SignedArea(nil) = %v, want 0", got)
	}
}

func TestOffsetPolygon_Square(t *testing.T) {
	want := []Point{{11, -1}, {11, 11}, {-1, 11}, {-1, -1}}
	got := OffsetPolygon(square(10), 1)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("OffsetPolygon mismatch (-want +got):\n%s", diff)
	}
}

func TestOffsetPolygon_GrowsRegardlessOfWinding(t *testing.T) {
	shapes := map[string][]Point{
		"square":   square(10),
		"triangle": {{0, 0}, {40, 0}, {20, 30}},
		"notched":  {{0, 0}, {30, 0}, {30, 30}, {15, 10}, {0, 30}},
		"hexagon":  regularPolygon(6, 50),
	}
	for name, pts := range shapes {
		for _, reversed := range []bool{false, true} {
			in := slices.Clone(pts)
			if reversed {
				slices.Reverse(in)
			}
			before := math.Abs(SignedArea(in))
			after := math.Abs(SignedArea(OffsetPolygon(in, 2)))
			if after <= before {
				t.Errorf("%s reversed=%v: |area| %v -> %v, want growth", name, reversed, before, after)
			}
			shrunk := math.Abs(SignedArea(OffsetPolygon(in, -0.5)))
			if shrunk >= before {
				t.Errorf("%s reversed=%v: negative offset |area| %v -> %v, want shrink", name, reversed, before, shrunk)
			}
		}
	}
}

func TestOffsetPolygon_Bevel(t *testing.T) {
	// A needle-sharp spike: the mitre at its tip lands far past 3x the
	// offset, so the tip is bevelled into the two offset edge endpoints.
	spike := []Point{{0, 0}, {100, 1}, {0, 2}}
	got := OffsetPolygon(spike, 1)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4 (one bevelled corner)", len(got))
	}

	l := math.Sqrt(100*100 + 1)
	want := []Point{
		{100 + 1/l, 1 - 100/l}, // end of the offset edge into the tip
		{100 + 1/l, 1 + 100/l}, // start of the offset edge out of it
	}
	if diff := cmp.Diff(want, got[:2], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("bevel points mismatch (-want +got):\n%s", diff)
	}
	for _, p := range got {
		if p.X > 101 {
			t.Errorf("vertex %v lies beyond the bevel", p)
		}
	}
}

func TestOffsetPolygon_Degenerate(t *testing.T) {
	t.Run("too few points", func(t *testing.T) {
		in := []Point{{0, 0}, {1, 1}}
		got := OffsetPolygon(in, 5)
		if diff := cmp.Diff(in, got); diff != "" {
			t.Errorf("want input unchanged (-want +got):\n%s", diff)
		}
	})

	t.Run("repeated vertex", func(t *testing.T) {
		in := []Point{{0, 0}, {10, 0}, {10, 0}, {10, 10}, {0, 10}}
		got := OffsetPolygon(in, 1)
		if len(got) != len(in) {
			t.Fatalf("len = %d, want %d", len(got), len(in))
		}
		for _, p := range got {
			if !p.IsFinite() {
				t.Fatalf("non-finite vertex %v in %v", p, got)
			}
		}
		// Around the zero-length edge each corner falls back to the
		// endpoint of the surviving neighbour edge.
		if !pointsEqual(got[0], Pt(10, -1), epsilon) {
			t.Errorf("got[0] = %v, want (10,-1)", got[0])
		}
		if !pointsEqual(got[1], Pt(11, 0), epsilon) {
			t.Errorf("got[1] = %v, want (11,0)", got[1])
		}
	})

	t.Run("collinear vertex", func(t *testing.T) {
		in := []Point{{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}}
		got := OffsetPolygon(in, 1)
		// Parallel neighbours fall back to the midpoint.
		if !pointsEqual(got[0], Pt(5, -1), epsilon) {
			t.Errorf("got[0] = %v, want (5,-1)", got[0])
		}
	})
}

func regularPolygon(n int, r float64) []Point {
	pts := make([]Point, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Pt(r*math.Cos(a), r*math.Sin(a))
	}
	return pts
}
