package geom

import "honnef.co/go/curve"

// DefaultAccuracy is the arc length accuracy, in internal units, used by
// [Length] when a non-positive accuracy is given.
const DefaultAccuracy = 1e-3

// Length returns the arc length of seg to within accuracy.
func Length(seg Segment, accuracy float64) float64 {
	if accuracy <= 0 {
		accuracy = DefaultAccuracy
	}
	switch s := seg.(type) {
	case Line:
		return curve.Line{P0: toCurve(s.P1), P1: toCurve(s.P2)}.Arclen(accuracy)
	case Cubic:
		return curve.CubicBez{
			P0: toCurve(s.P0),
			P1: toCurve(s.CP1),
			P2: toCurve(s.CP2),
			P3: toCurve(s.P3),
		}.Arclen(accuracy)
	}
	return 0
}

// TotalLength returns the summed arc length of segs.
func TotalLength(segs []Segment, accuracy float64) float64 {
	var total float64
	for _, s := range segs {
		total += Length(s, accuracy)
	}
	return total
}

func toCurve(p Point) curve.Point {
	return curve.Pt(p.X, p.Y)
}
