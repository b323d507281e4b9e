package tailor

import (
	"fmt"

	"github.com/gogpu/tailor/geom"
	"github.com/gogpu/tailor/internal/units"
	"github.com/gogpu/tailor/trousers"
)

// Inputs is everything needed to generate a pattern.
type Inputs struct {
	// Measurements are body measurements in centimetres.
	Measurements trousers.Measurements
	// Ease is in internal units; see [trousers.EaseFromCM].
	Ease trousers.Ease
	// Curves shape every seam curve.
	Curves trousers.CurveRatios
	// SeamAllowance is in internal units. Zero or less disables it.
	SeamAllowance float64
}

// DefaultInputs returns inputs holding m, no ease, the default curve
// table and no seam allowance.
func DefaultInputs(m trousers.Measurements) Inputs {
	return Inputs{Measurements: m, Curves: trousers.DefaultCurves()}
}

// Pattern is a generated pattern laid out on one sheet. The front piece
// keeps its drafting position; the back piece is moved right of it.
// A Pattern is immutable once returned by [Generate].
type Pattern struct {
	// Draft holds both pieces in drafting coordinates.
	Draft *trousers.Draft
	// Inputs are the sanitised inputs the pattern was generated from.
	Inputs Inputs

	// Front and Back are the laid out outlines.
	Front trousers.Outline
	Back  trousers.Outline
	// FrontAllowance and BackAllowance are the laid out seam allowance
	// polygons, nil when the allowance is disabled.
	FrontAllowance []geom.Point
	BackAllowance  []geom.Point

	// BackShift is how far the back piece was moved right.
	BackShift float64
	// Bounds covers both pieces, their allowance and the padding.
	Bounds geom.Rect

	gap float64
}

// Generate drafts, offsets and lays out a pattern.
//
// Non-finite input scalars are treated as 0. Generate fails only when the
// measurements cannot be drafted; the error then wraps
// [trousers.ErrConstraintViolation].
func Generate(in Inputs, opts ...Option) (*Pattern, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	in.Measurements.Sanitize()
	in.Ease.Sanitize()
	in.Curves.Sanitize()
	in.SeamAllowance = units.Finite(in.SeamAllowance)

	d, err := trousers.NewDraft(in.Measurements, in.Ease, in.Curves)
	if err != nil {
		return nil, fmt.Errorf("tailor: draft: %w", err)
	}

	p := &Pattern{
		Draft:  d,
		Inputs: in,
		Front:  d.Front,
		gap:    o.gap,
	}

	frontPoly := d.Front.Polyline(o.samples)
	backPoly := d.Back.Polyline(o.samples)
	if in.SeamAllowance > 0 {
		p.FrontAllowance = SeamAllowance(d.Front.Segments(), in.SeamAllowance)
		p.BackAllowance = SeamAllowance(d.Back.Segments(), in.SeamAllowance)
		frontPoly, backPoly = p.FrontAllowance, p.BackAllowance
	}

	// The gap is measured between outer extents, allowance included.
	frontBox, _ := geom.Bounds(frontPoly)
	backBox, _ := geom.Bounds(backPoly)
	p.BackShift = max(0, frontBox.Max.X-backBox.Min.X+o.gap)

	p.Back = d.Back.Translate(p.BackShift, 0)
	p.BackAllowance = translatePoints(p.BackAllowance, p.BackShift, 0)
	p.Bounds = frontBox.Union(backBox.Translate(p.BackShift, 0)).Inflate(o.padding)

	return p, nil
}

// Size returns the sheet size in centimetres.
func (p *Pattern) Size() (width, height float64) {
	return units.ToCM(p.Bounds.Width()), units.ToCM(p.Bounds.Height())
}

// Gap returns the layout gap between the pieces.
func (p *Pattern) Gap() float64 {
	return p.gap
}

func translatePoints(pts []geom.Point, dx, dy float64) []geom.Point {
	if pts == nil {
		return nil
	}
	d := geom.Pt(dx, dy)
	out := make([]geom.Point, len(pts))
	for i, pt := range pts {
		out[i] = pt.Add(d)
	}
	return out
}
