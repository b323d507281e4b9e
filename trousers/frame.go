package trousers

import (
	"fmt"
	"math"

	"github.com/gogpu/tailor/geom"
	"github.com/gogpu/tailor/internal/units"
)

// Frame is the solved reference frame of a trouser block. All lengths are
// in internal units with the waist line at Y = 0 and the front centre line
// at X = 0. A Frame is computed once by [Solve] and never modified.
type Frame struct {
	FrameWidth  float64
	FrameHeight float64
	XCenter     float64

	YWaist   float64
	YHip     float64
	YCrotch  float64
	YMidrise float64
	YKnee    float64
	YLength  float64

	// FrontCrotchX and BackCrotchX are the crotch extension points on the
	// crotch line.
	FrontCrotchX float64
	BackCrotchX  float64

	// FrontWaistAnchor is where the front centre line meets the waistline.
	FrontWaistAnchor geom.Point
	// BackWaistRise is the Y of the raised back waist (negative back_rise).
	BackWaistRise float64

	// WaistLength is a quarter of the waist, the length of each waistline.
	WaistLength     float64
	FrontWaistEndX  float64
	BackWaistStartX float64
	BackWaistEndX   float64

	FrontHem float64
	BackHem  float64

	// CreaseOffset is half the distance from the front crotch point to the
	// centre line.
	CreaseOffset float64
	FrontCreaseX float64
	FrontCreaseY float64
	BackCreaseX  float64
	BackCreaseY  float64

	HemLeftX  float64
	KneeSeamX float64
	// KneeLine is the half-width of the front leg at the knee.
	KneeLine float64

	// Ease is the ease the frame was solved with; the curve and outline
	// stages read the offsets that only shape seams.
	Ease Ease
}

// Solve converts measurements (cm) and ease (internal units) into a Frame.
//
// It returns a *ConstraintError when the waistline cannot reach the side:
// the quarter waist must be at least as long as the front rise height and
// the back rise. Any other non-finite solved value is reported the same way.
// Solve never clamps.
func Solve(m Measurements, e Ease) (Frame, error) {
	hip := units.CM(m.Hip)
	waistToHip := units.CM(m.WaistToHip)
	waistToKnee := units.CM(m.WaistToKnee)
	waistToAnkle := units.CM(m.WaistToAnkle)
	crotchDepth := units.CM(m.CrotchDepth)
	waist := units.CM(m.Waist)
	hemline := units.CM(m.Hemline)

	var f Frame
	f.Ease = e

	f.FrameWidth = hip/2 + e.HipEase
	f.FrameHeight = waistToAnkle
	f.XCenter = f.FrameWidth/2 + e.XCenterOffset

	f.YWaist = 0
	f.YHip = waistToHip
	f.YCrotch = crotchDepth + e.CrotchEase
	f.YMidrise = f.YCrotch / 2
	f.YKnee = waistToKnee
	f.YLength = waistToAnkle

	f.FrontCrotchX = -e.FrontCrotchExtension
	f.BackCrotchX = f.FrameWidth + e.BackCrotchExtension

	f.FrontWaistAnchor = geom.Pt(e.FrontRiseX, e.FrontRiseY)
	f.BackWaistRise = -e.BackRise

	f.WaistLength = waist / 4
	if f.WaistLength < math.Abs(e.FrontRiseY) {
		return Frame{}, &ConstraintError{
			Field:  "front_waist_end_x",
			Value:  math.NaN(),
			Reason: fmt.Sprintf("quarter waist %.2f is shorter than front rise height %.2f", f.WaistLength, math.Abs(e.FrontRiseY)),
		}
	}
	if f.WaistLength < math.Abs(e.BackRise) {
		return Frame{}, &ConstraintError{
			Field:  "back_waist_end_x",
			Value:  math.NaN(),
			Reason: fmt.Sprintf("quarter waist %.2f is shorter than back rise %.2f", f.WaistLength, math.Abs(e.BackRise)),
		}
	}
	f.FrontWaistEndX = e.FrontRiseX + rightTriangleLeg(f.WaistLength, e.FrontRiseY)

	// Similar triangles: moving up the back centre slant by back_rise shifts
	// the start inwards in proportion to back_waist_offset over the hip depth.
	// A zero rise or offset means no shift, even at zero hip depth.
	f.BackWaistStartX = f.FrameWidth - e.BackWaistOffset
	if e.BackRise != 0 && e.BackWaistOffset != 0 {
		f.BackWaistStartX -= e.BackRise * e.BackWaistOffset / f.YHip
	}
	f.BackWaistEndX = f.BackWaistStartX - rightTriangleLeg(f.WaistLength, e.BackRise)

	f.FrontHem = hemline/2 + e.FrontHemEase
	f.BackHem = hemline/2 + e.BackHemEase

	f.CreaseOffset = (f.XCenter - f.FrontCrotchX) / 2
	f.FrontCreaseX = (f.FrontCrotchX + f.XCenter) / 2
	f.BackCreaseX = f.XCenter + f.CreaseOffset

	// Crease lines stop on the waistline, so their tops follow its slope.
	frontSlope := (0 - f.FrontWaistAnchor.Y) / (f.FrontWaistEndX - f.FrontWaistAnchor.X)
	f.FrontCreaseY = f.FrontWaistAnchor.Y + frontSlope*(f.FrontCreaseX-f.FrontWaistAnchor.X)
	backSlope := (0 - f.BackWaistRise) / (f.BackWaistEndX - f.BackWaistStartX)
	f.BackCreaseY = f.BackWaistRise + backSlope*(f.BackCreaseX-f.BackWaistStartX)

	f.HemLeftX = f.FrontCreaseX - f.FrontHem/2
	inseamSlope := (f.YCrotch - f.YLength) / (f.FrontCrotchX - f.HemLeftX)
	f.KneeSeamX = f.HemLeftX + (f.YKnee-f.YLength)/inseamSlope
	f.KneeLine = f.FrontCreaseX - f.KneeSeamX - e.FrontKneeEase

	if err := f.check(); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// rightTriangleLeg returns the leg of a right triangle with hypotenuse
// hyp and other leg leg.
func rightTriangleLeg(hyp, leg float64) float64 {
	return math.Sqrt(hyp*hyp - leg*leg)
}

// check reports the first non-finite solved value.
func (f *Frame) check() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"frame_width", f.FrameWidth},
		{"x_center", f.XCenter},
		{"y_hip", f.YHip},
		{"y_crotch", f.YCrotch},
		{"y_knee", f.YKnee},
		{"y_length", f.YLength},
		{"front_crotch_point", f.FrontCrotchX},
		{"back_crotch_point", f.BackCrotchX},
		{"front_waist_end_x", f.FrontWaistEndX},
		{"back_waist_start_x", f.BackWaistStartX},
		{"back_waist_end_x", f.BackWaistEndX},
		{"front_crease_y", f.FrontCreaseY},
		{"back_crease_y", f.BackCreaseY},
		{"hem_left_x", f.HemLeftX},
		{"knee_seam_x", f.KneeSeamX},
		{"knee_line", f.KneeLine},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return &ConstraintError{Field: v.name, Value: v.value, Reason: "not a finite number"}
		}
	}
	return nil
}
