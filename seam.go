package tailor

import "github.com/gogpu/tailor/geom"

// SeamAllowanceSamples is the fixed number of samples per curve used to
// flatten an outline before offsetting it.
const SeamAllowanceSamples = 40

// SeamAllowance returns the closed polygon lying dist outside the outline
// segs. It returns nil when dist <= 0; a disabled allowance is not an
// error.
func SeamAllowance(segs []geom.Segment, dist float64) []geom.Point {
	if dist <= 0 {
		return nil
	}
	return geom.OffsetPolygon(geom.SegmentsToPolyline(segs, SeamAllowanceSamples), dist)
}
