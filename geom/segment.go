package geom

// Segment is one piece of an outline: either a [Line] or a [Cubic].
// The set of implementations is closed.
type Segment interface {
	// Start returns the first point of the segment.
	Start() Point
	// End returns the last point of the segment.
	End() Point
	// Translate returns a copy of the segment moved by (dx, dy).
	Translate(dx, dy float64) Segment

	isSegment()
}

// Line is a straight segment from P1 to P2.
type Line struct {
	P1, P2 Point
}

func (Line) isSegment() {}

// Start returns P1.
func (l Line) Start() Point { return l.P1 }

// End returns P2.
func (l Line) End() Point { return l.P2 }

// Translate returns a copy of the line moved by (dx, dy).
func (l Line) Translate(dx, dy float64) Segment {
	d := Pt(dx, dy)
	return Line{P1: l.P1.Add(d), P2: l.P2.Add(d)}
}

// Eval evaluates the line at parameter t (0 to 1).
func (l Line) Eval(t float64) Point {
	return l.P1.Lerp(l.P2, t)
}

// Cubic is a cubic Bézier segment from P0 to P3 with control points CP1, CP2.
type Cubic struct {
	P0, CP1, CP2, P3 Point
}

func (Cubic) isSegment() {}

// Start returns P0.
func (c Cubic) Start() Point { return c.P0 }

// End returns P3.
func (c Cubic) End() Point { return c.P3 }

// Translate returns a copy of the curve moved by (dx, dy).
func (c Cubic) Translate(dx, dy float64) Segment {
	d := Pt(dx, dy)
	return Cubic{P0: c.P0.Add(d), CP1: c.CP1.Add(d), CP2: c.CP2.Add(d), P3: c.P3.Add(d)}
}

// Eval evaluates the curve at parameter t (0 to 1) with the Bernstein basis.
func (c Cubic) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * CP1 + 3(1-t)*t^2 * CP2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.CP1.X + 3*mt*t2*c.CP2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.CP1.Y + 3*mt*t2*c.CP2.Y + t3*c.P3.Y,
	}
}

// Closed reports whether segs forms a closed chain: every segment starts
// exactly where the previous one ended and the last ends where the first
// starts. Comparison is exact; no tolerance is applied.
func Closed(segs []Segment) bool {
	if len(segs) == 0 {
		return false
	}
	for i, s := range segs {
		next := segs[(i+1)%len(segs)]
		if s.End() != next.Start() {
			return false
		}
	}
	return true
}

// TranslateAll returns copies of segs moved by (dx, dy).
func TranslateAll(segs []Segment, dx, dy float64) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i] = s.Translate(dx, dy)
	}
	return out
}
