package geom

import "math"

// parallelEpsilon is the determinant magnitude below which two lines are
// treated as parallel by [LineLineIntersect].
const parallelEpsilon = 1e-10

// degenerateEdge is the edge length below which [OffsetPolygon] skips an
// edge.
const degenerateEdge = 1e-10

// miterFactor bounds how far a mitred corner may move from the midpoint of
// its two offset edge endpoints, as a multiple of the offset distance.
const miterFactor = 3.0

// LineLineIntersect intersects the infinite line through a1, a2 with the
// infinite line through b1, b2. ok is false when the lines are parallel or
// nearly so (|determinant| < 1e-10).
func LineLineIntersect(a1, a2, b1, b2 Point) (p Point, ok bool) {
	dx1, dy1 := a2.X-a1.X, a2.Y-a1.Y
	dx2, dy2 := b2.X-b1.X, b2.Y-b1.Y
	denom := dx1*dy2 - dy1*dx2
	if math.Abs(denom) < parallelEpsilon {
		return Point{}, false
	}
	t := ((b1.X-a1.X)*dy2 - (b1.Y-a1.Y)*dx2) / denom
	return Point{X: a1.X + t*dx1, Y: a1.Y + t*dy1}, true
}

// SignedArea returns the shoelace area of the closed polygon points.
// In screen space (Y down) the result is positive for clockwise-on-screen
// winding and negative for counter-clockwise-on-screen winding.
func SignedArea(points []Point) float64 {
	var area float64
	for i := range points {
		j := (i + 1) % len(points)
		area += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return area / 2
}

// offsetEdge is a polygon edge moved along its normal. ok is false for a
// degenerate source edge.
type offsetEdge struct {
	p1, p2 Point
	ok     bool
}

// OffsetPolygon offsets the closed polygon points by offset. A positive
// offset always grows the polygon, whatever its winding.
//
// Corners are mitred by intersecting adjacent offset edges. A mitre that
// lands more than 3×|offset| away from the midpoint of the two offset edge
// endpoints is replaced by a bevel (both endpoints are emitted). Parallel
// adjacent edges fall back to that midpoint, and a degenerate edge falls
// back to the endpoint of its valid neighbour.
//
// Result vertex i is the corner between source edges i and i+1, so it sits
// at source vertex i+1. Fewer than three points are returned unchanged.
func OffsetPolygon(points []Point, offset float64) []Point {
	n := len(points)
	if n < 3 {
		return points
	}

	dir := -1.0
	if SignedArea(points) < 0 {
		dir = 1.0
	}
	off := offset * dir

	edges := make([]offsetEdge, n)
	for i := range n {
		p1 := points[i]
		p2 := points[(i+1)%n]
		dx := p2.X - p1.X
		dy := p2.Y - p1.Y
		length := math.Sqrt(dx*dx + dy*dy)
		if length < degenerateEdge {
			continue
		}
		nx := -dy / length * off
		ny := dx / length * off
		edges[i] = offsetEdge{
			p1: Point{X: p1.X + nx, Y: p1.Y + ny},
			p2: Point{X: p2.X + nx, Y: p2.Y + ny},
			ok: true,
		}
	}

	limit := math.Abs(offset) * miterFactor
	result := make([]Point, 0, n)
	for i := range n {
		a := edges[i]
		b := edges[(i+1)%n]
		if !a.ok || !b.ok {
			switch {
			case a.ok:
				result = append(result, a.p2)
			case b.ok:
				result = append(result, b.p1)
			}
			continue
		}

		mid := a.p2.Midpoint(b.p1)
		ix, ok := LineLineIntersect(a.p1, a.p2, b.p1, b.p2)
		switch {
		case !ok:
			result = append(result, mid)
		case ix.Distance(mid) > limit:
			result = append(result, a.p2, b.p1)
		default:
			result = append(result, ix)
		}
	}
	return result
}
