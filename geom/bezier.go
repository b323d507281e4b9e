package geom

// DefaultSamples is the number of intervals each cubic is split into when
// an outline is flattened for offsetting or measurement.
const DefaultSamples = 40

// SampleCubicBezier returns n+1 points on the cubic (p0, cp1, cp2, p3) at
// uniformly spaced parameters t = i/n. The first point is exactly p0 and
// the last exactly p3. n < 1 is treated as 1.
func SampleCubicBezier(p0, cp1, cp2, p3 Point, n int) []Point {
	if n < 1 {
		n = 1
	}
	c := Cubic{P0: p0, CP1: cp1, CP2: cp2, P3: p3}
	points := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		points = append(points, c.Eval(float64(i)/float64(n)))
	}
	return points
}

// SegmentsToPolyline flattens segs into a continuous point sequence.
//
// A Line contributes its end point (and its start point only while the
// output is still empty). A Cubic is sampled with samplesPerCurve intervals
// and contributes every sample except the first, which repeats the previous
// segment's end; the first sample is kept while the output is still empty.
// An empty input yields nil.
func SegmentsToPolyline(segs []Segment, samplesPerCurve int) []Point {
	var points []Point
	for _, seg := range segs {
		switch s := seg.(type) {
		case Line:
			if len(points) == 0 {
				points = append(points, s.P1)
			}
			points = append(points, s.P2)
		case Cubic:
			sampled := SampleCubicBezier(s.P0, s.CP1, s.CP2, s.P3, samplesPerCurve)
			start := 0
			if len(points) > 0 {
				start = 1
			}
			points = append(points, sampled[start:]...)
		}
	}
	return points
}
