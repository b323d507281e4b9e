package trousers

import "github.com/gogpu/tailor/geom"

// Piece identifies a garment piece.
type Piece uint8

const (
	// Front is the front trouser piece.
	Front Piece = iota
	// Back is the back trouser piece.
	Back
)

// String returns "front" or "back".
func (p Piece) String() string {
	switch p {
	case Front:
		return "front"
	case Back:
		return "back"
	}
	return "unknown"
}

// Seam classifies an outline edge by the seam it belongs to once sewn.
type Seam uint8

const (
	// SeamCenter is the straight centre front or centre back above the hip.
	SeamCenter Seam = iota
	// SeamWaist is the waistline.
	SeamWaist
	// SeamSide is the outer leg seam from waist to hem.
	SeamSide
	// SeamHem is the hemline.
	SeamHem
	// SeamInseam is the inner leg seam from hem to crotch point.
	SeamInseam
	// SeamCrotch is the crotch curve from crotch point to hip.
	SeamCrotch
)

// Seams returns every seam kind in outline order.
func Seams() []Seam {
	return []Seam{SeamCenter, SeamWaist, SeamSide, SeamHem, SeamInseam, SeamCrotch}
}

// String returns the seam name.
func (s Seam) String() string {
	switch s {
	case SeamCenter:
		return "center"
	case SeamWaist:
		return "waist"
	case SeamSide:
		return "side"
	case SeamHem:
		return "hem"
	case SeamInseam:
		return "inseam"
	case SeamCrotch:
		return "crotch"
	}
	return "unknown"
}

// Edge is one segment of a piece outline.
type Edge struct {
	Segment geom.Segment
	Seam    Seam
	// Section is the curve group whose ratios shape this edge, or "" for
	// edges fixed by the frame alone.
	Section CurveGroup
}

// Outline is the closed boundary of one piece.
type Outline struct {
	Piece Piece
	Edges []Edge
}

// Segments returns the outline segments in order.
func (o *Outline) Segments() []geom.Segment {
	segs := make([]geom.Segment, len(o.Edges))
	for i, e := range o.Edges {
		segs[i] = e.Segment
	}
	return segs
}

// Closed reports whether the outline is an exactly closed chain.
func (o *Outline) Closed() bool {
	return geom.Closed(o.Segments())
}

// Polyline flattens the outline with samplesPerCurve samples per cubic.
func (o *Outline) Polyline(samplesPerCurve int) []geom.Point {
	return geom.SegmentsToPolyline(o.Segments(), samplesPerCurve)
}

// Translate returns a copy of the outline moved by (dx, dy).
func (o *Outline) Translate(dx, dy float64) Outline {
	out := Outline{Piece: o.Piece, Edges: make([]Edge, len(o.Edges))}
	for i, e := range o.Edges {
		e.Segment = e.Segment.Translate(dx, dy)
		out.Edges[i] = e
	}
	return out
}

func line(p1, p2 geom.Point) geom.Segment {
	return geom.Line{P1: p1, P2: p2}
}

func cubic(p0, cp1, cp2, p3 geom.Point) geom.Segment {
	return geom.Cubic{P0: p0, CP1: cp1, CP2: cp2, P3: p3}
}

// BuildFront assembles the front piece: centre front, waistline, sideseam,
// hem, inseam and crotch curve, closing at the hip on the frame's left
// edge.
func BuildFront(f Frame, c Controls) Outline {
	hip := geom.Pt(0, f.YHip)
	anchor := f.FrontWaistAnchor
	waistEnd := geom.Pt(f.FrontWaistEndX, 0)
	hemRight := geom.Pt(f.FrontCreaseX+f.FrontHem/2, f.YLength)
	hemLeft := geom.Pt(f.HemLeftX, f.YLength)
	crotch := geom.Pt(f.FrontCrotchX, f.YCrotch)

	return Outline{
		Piece: Front,
		Edges: []Edge{
			{Segment: line(hip, anchor), Seam: SeamCenter},
			{Segment: cubic(anchor, anchor, c.FrontWaistCP2, c.FrontWaistP3), Seam: SeamWaist, Section: GroupFrontWaist},
			{Segment: cubic(c.FrontWaistP3, c.FrontWaistCP3, waistEnd, waistEnd), Seam: SeamWaist, Section: GroupFrontWaist},
			{Segment: cubic(waistEnd, c.FrontSideSeg2CP2, c.FrontSideSeg2CP1, c.FrontSidePeak), Seam: SeamSide, Section: GroupFrontSide},
			{Segment: cubic(c.FrontSidePeak, c.FrontSideSeg1CP2, c.FrontSideSeg1CP1, c.FrontSideKnee), Seam: SeamSide, Section: GroupFrontSide},
			{Segment: line(c.FrontSideKnee, hemRight), Seam: SeamSide},
			{Segment: line(hemRight, hemLeft), Seam: SeamHem},
			{Segment: line(hemLeft, c.FrontInseamKnee), Seam: SeamInseam},
			{Segment: cubic(c.FrontInseamKnee, c.FrontInseamCP1, c.FrontInseamCP2, crotch), Seam: SeamInseam, Section: GroupFrontInseam},
			{Segment: cubic(crotch, c.FrontCrotchCP1, c.FrontCrotchCP2, hip), Seam: SeamCrotch, Section: GroupCrotch},
		},
	}
}

// BuildBack assembles the back piece: the raised back centre diagonal,
// waistline, outer leg seam, hem, inner leg seam and crotch curve, closing
// at the hip on the frame's right edge.
//
// The back_inseam ratio group shapes the outer leg edge and back_side
// shapes the crotch-side edge; edges are classified by where they sit on
// the piece.
func BuildBack(f Frame, c Controls) Outline {
	hip := geom.Pt(f.FrameWidth, f.YHip)
	slant := geom.Pt(f.FrameWidth-f.Ease.BackWaistOffset, 0)
	start := c.BackDiagonalEnd
	waistEnd := geom.Pt(f.BackWaistEndX, 0)
	knee := geom.Pt(c.BackInseamKnee.X, f.YKnee)
	sideKnee := geom.Pt(c.BackSideKnee.X, f.YKnee)
	crotch := geom.Pt(f.BackCrotchX, f.YCrotch)

	return Outline{
		Piece: Back,
		Edges: []Edge{
			{Segment: line(hip, slant), Seam: SeamCenter},
			{Segment: line(slant, start), Seam: SeamCenter},
			{Segment: cubic(start, start, c.BackWaistCP2, c.BackWaistP3), Seam: SeamWaist, Section: GroupBackWaist},
			{Segment: cubic(c.BackWaistP3, c.BackWaistCP3, waistEnd, waistEnd), Seam: SeamWaist, Section: GroupBackWaist},
			{Segment: cubic(waistEnd, c.BackInseamSeg2CP2, c.BackInseamSeg2CP1, c.BackInseamHipPeak), Seam: SeamSide, Section: GroupBackInseam},
			{Segment: cubic(c.BackInseamHipPeak, c.BackInseamSeg1CP2, c.BackInseamSeg1CP1, knee), Seam: SeamSide, Section: GroupBackInseam},
			{Segment: line(knee, c.BackHemLeft), Seam: SeamSide},
			{Segment: line(c.BackHemLeft, c.BackHemRight), Seam: SeamHem},
			{Segment: line(c.BackHemRight, sideKnee), Seam: SeamInseam},
			{Segment: cubic(sideKnee, sideKnee, c.BackSideSeg1CP2, c.BackSideMidThigh), Seam: SeamInseam, Section: GroupBackSide},
			{Segment: cubic(c.BackSideMidThigh, c.BackSideSeg2CP1, crotch, crotch), Seam: SeamInseam, Section: GroupBackSide},
			{Segment: cubic(crotch, c.BackCrotchCP1, c.BackCrotchCP2, hip), Seam: SeamCrotch, Section: GroupCrotch},
		},
	}
}
