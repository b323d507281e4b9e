package tailor

import (
	"github.com/gogpu/tailor/geom"
	"github.com/gogpu/tailor/trousers"
)

// SeamLength is the sewn length of one seam kind on both pieces, in
// internal units.
type SeamLength struct {
	Seam  trousers.Seam
	Front float64
	Back  float64
}

// Difference returns Front - Back. Mating seams (side and inseam) should
// be close to zero.
func (s SeamLength) Difference() float64 {
	return s.Front - s.Back
}

// SeamReport lists seam lengths in [trousers.Seams] order.
type SeamReport []SeamLength

// Lookup returns the row for seam s.
func (r SeamReport) Lookup(s trousers.Seam) (SeamLength, bool) {
	for _, row := range r {
		if row.Seam == s {
			return row, true
		}
	}
	return SeamLength{}, false
}

// SeamReport measures every seam of both pieces along the finished seam
// line, ignoring allowance.
func (p *Pattern) SeamReport() SeamReport {
	front := seamLengths(p.Front)
	back := seamLengths(p.Back)
	seams := trousers.Seams()
	r := make(SeamReport, len(seams))
	for i, s := range seams {
		r[i] = SeamLength{Seam: s, Front: front[s], Back: back[s]}
	}
	return r
}

func seamLengths(o trousers.Outline) map[trousers.Seam]float64 {
	m := make(map[trousers.Seam]float64)
	for _, e := range o.Edges {
		m[e.Seam] += geom.Length(e.Segment, geom.DefaultAccuracy)
	}
	return m
}
