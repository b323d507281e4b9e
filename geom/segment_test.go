package geom

import (
	"math"
	"testing"
)

func TestClosed(t *testing.T) {
	tri := []Segment{
		Line{P1: Pt(0, 0), P2: Pt(10, 0)},
		Cubic{P0: Pt(10, 0), CP1: Pt(12, 3), CP2: Pt(8, 7), P3: Pt(5, 9)},
		Line{P1: Pt(5, 9), P2: Pt(0, 0)},
	}
	if !Closed(tri) {
		t.Error("Closed(triangle) = false, want true")
	}

	open := tri[:2]
	if Closed(open) {
		t.Error("Closed(open chain) = true, want false")
	}

	gap := []Segment{
		Line{P1: Pt(0, 0), P2: Pt(10, 0)},
		Line{P1: Pt(10, 1e-12), P2: Pt(0, 0)},
	}
	if Closed(gap) {
		t.Error("Closed must compare exactly")
	}

	if Closed(nil) {
		t.Error("Closed(nil) = true, want false")
	}
}

func TestTranslateAll(t *testing.T) {
	segs := []Segment{
		Line{P1: Pt(0, 0), P2: Pt(1, 0)},
		Cubic{P0: Pt(1, 0), CP1: Pt(2, 1), CP2: Pt(3, 1), P3: Pt(0, 0)},
	}
	moved := TranslateAll(segs, 5, -2)
	if moved[0].Start() != Pt(5, -2) {
		t.Errorf("moved[0].Start() = %v", moved[0].Start())
	}
	c, ok := moved[1].(Cubic)
	if !ok {
		t.Fatalf("moved[1] is %T, want Cubic", moved[1])
	}
	if c.CP1 != Pt(7, -1) || c.P3 != Pt(5, -2) {
		t.Errorf("moved cubic = %+v", c)
	}
	if !Closed(moved) {
		t.Error("translation must preserve closure")
	}
	if segs[0].Start() != Pt(0, 0) {
		t.Error("TranslateAll modified its input")
	}
}

func TestLength(t *testing.T) {
	if got := Length(Line{P1: Pt(0, 0), P2: Pt(3, 4)}, 0); got != 5 {
		t.Errorf("line length = %v, want 5", got)
	}

	// A cubic with collinear, evenly spaced controls is a straight line.
	straight := Cubic{P0: Pt(0, 0), CP1: Pt(10, 0), CP2: Pt(20, 0), P3: Pt(30, 0)}
	if got := Length(straight, 1e-6); math.Abs(got-30) > 1e-4 {
		t.Errorf("straight cubic length = %v, want 30", got)
	}

	// Quarter circle approximation, radius 100: length close to 50*pi.
	const k = 0.5522847498
	arc := Cubic{P0: Pt(100, 0), CP1: Pt(100, 100*k), CP2: Pt(100*k, 100), P3: Pt(0, 100)}
	if got := Length(arc, 1e-6); math.Abs(got-50*math.Pi) > 0.1 {
		t.Errorf("quarter arc length = %v, want about %v", got, 50*math.Pi)
	}

	// Flattened length never exceeds the true arc length.
	poly := SegmentsToPolyline([]Segment{arc}, DefaultSamples)
	var chord float64
	for i := 1; i < len(poly); i++ {
		chord += poly[i].Distance(poly[i-1])
	}
	if chord > Length(arc, 1e-6)+1e-6 {
		t.Errorf("polyline length %v exceeds arc length", chord)
	}
}
