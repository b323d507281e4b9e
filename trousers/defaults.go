package trousers

import (
	"errors"
	"fmt"
)

// CurveGroup names a set of ratios that shape one seam and are reset
// together.
type CurveGroup string

// Curve groups, in display order.
const (
	GroupCrotch      CurveGroup = "crotch"
	GroupFrontWaist  CurveGroup = "front_waist"
	GroupBackWaist   CurveGroup = "back_waist"
	GroupFrontInseam CurveGroup = "front_inseam"
	GroupFrontSide   CurveGroup = "front_side"
	GroupBackInseam  CurveGroup = "back_inseam"
	GroupBackSide    CurveGroup = "back_side"
)

// ErrUnknownGroup is returned when a curve group name is not recognised.
var ErrUnknownGroup = errors.New("trousers: unknown curve group")

// CurveGroups returns every curve group in display order.
func CurveGroups() []CurveGroup {
	return []CurveGroup{
		GroupCrotch, GroupFrontWaist, GroupBackWaist,
		GroupFrontInseam, GroupFrontSide, GroupBackInseam, GroupBackSide,
	}
}

// DefaultCurves returns the default curve ratio table.
func DefaultCurves() CurveRatios {
	return CurveRatios{
		FrontCrotchHTension: 0.7,
		FrontCrotchVTension: 0.75,
		BackCrotchHTension:  0.8,
		BackCrotchVTension:  0.85,

		FrontWaistCP2X: 0.446,
		FrontWaistCP2Y: 0.019,
		FrontWaistP3X:  0.639,
		FrontWaistCP3X: 0.831,
		FrontWaistCP3Y: -0.019,

		BackWaistCP2X: -0.295,
		BackWaistCP2Y: 0.077,
		BackWaistP3X:  -0.489,
		BackWaistP3Y:  0.103,
		BackWaistCP3X: -0.683,
		BackWaistCP3Y: 0.127,

		FrontInseamCP1X: 0.1,
		FrontInseamCP1Y: 0.3,
		FrontInseamCP2X: 0.404,
		FrontInseamCP2Y: 0.504,

		FrontSideSeg1CP1X: 0.32,
		FrontSideSeg1CP1Y: 0.33,
		FrontSideSeg1CP2X: 1.11,
		FrontSideSeg1CP2Y: 0.754,
		FrontSideSeg2CP1X: 0.052,
		FrontSideSeg2CP1Y: 0.4,
		FrontSideSeg2CP2X: 0.569,
		FrontSideSeg2CP2Y: 0.714,

		BackInseamSeg1CP1X: 0.355,
		BackInseamSeg1CP1Y: 0.261,
		BackInseamSeg1CP2X: 1.052,
		BackInseamSeg1CP2Y: 0.826,
		BackInseamSeg2CP1X: 0.098,
		BackInseamSeg2CP1Y: 0.283,
		BackInseamSeg2CP2X: 0.708,
		BackInseamSeg2CP2Y: 0.784,

		BackSideSeg1CP2X: 0.415,
		BackSideSeg1CP2Y: 0.665,
		BackSideSeg2CP1X: 0.306,
		BackSideSeg2CP1Y: 0.407,
	}
}

// NamedValue is one entry of the default curve table.
type NamedValue struct {
	Name  string
	Value float64
}

// DefaultGroup returns the default ratios of group g in table order.
// The slice is a copy; changing it has no effect on the defaults.
func DefaultGroup(g CurveGroup) ([]NamedValue, error) {
	defaults := DefaultCurves()
	fields := defaults.group(g)
	if fields == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, g)
	}
	out := make([]NamedValue, len(fields))
	for i, f := range fields {
		out[i] = NamedValue{Name: f.name, Value: *f.value}
	}
	return out, nil
}

// Reset restores the ratios of group g to their defaults, leaving every
// other group untouched.
func (r *CurveRatios) Reset(g CurveGroup) error {
	defaults := DefaultCurves()
	src := defaults.group(g)
	if src == nil {
		return fmt.Errorf("%w: %q", ErrUnknownGroup, g)
	}
	dst := r.group(g)
	for i := range src {
		*dst[i].value = *src[i].value
	}
	return nil
}

// group returns the fields of group g, or nil for an unknown group.
func (r *CurveRatios) group(g CurveGroup) []namedField {
	switch g {
	case GroupCrotch:
		return []namedField{
			{"front_crotch_h_tension", &r.FrontCrotchHTension},
			{"front_crotch_v_tension", &r.FrontCrotchVTension},
			{"back_crotch_h_tension", &r.BackCrotchHTension},
			{"back_crotch_v_tension", &r.BackCrotchVTension},
		}
	case GroupFrontWaist:
		return []namedField{
			{"front_waist_CP2_ratio_x", &r.FrontWaistCP2X},
			{"front_waist_CP2_ratio_y", &r.FrontWaistCP2Y},
			{"front_waist_P3_ratio_x", &r.FrontWaistP3X},
			{"front_waist_CP3_ratio_x", &r.FrontWaistCP3X},
			{"front_waist_CP3_ratio_y", &r.FrontWaistCP3Y},
		}
	case GroupBackWaist:
		return []namedField{
			{"back_waist_CP2_ratio_x", &r.BackWaistCP2X},
			{"back_waist_CP2_ratio_y", &r.BackWaistCP2Y},
			{"back_waist_P3_ratio_x", &r.BackWaistP3X},
			{"back_waist_P3_ratio_y", &r.BackWaistP3Y},
			{"back_waist_CP3_ratio_x", &r.BackWaistCP3X},
			{"back_waist_CP3_ratio_y", &r.BackWaistCP3Y},
		}
	case GroupFrontInseam:
		return []namedField{
			{"front_inseam_CP1_ratio_x", &r.FrontInseamCP1X},
			{"front_inseam_CP1_ratio_y", &r.FrontInseamCP1Y},
			{"front_inseam_CP2_ratio_x", &r.FrontInseamCP2X},
			{"front_inseam_CP2_ratio_y", &r.FrontInseamCP2Y},
		}
	case GroupFrontSide:
		return []namedField{
			{"front_side_seg1_CP1_ratio_x", &r.FrontSideSeg1CP1X},
			{"front_side_seg1_CP1_ratio_y", &r.FrontSideSeg1CP1Y},
			{"front_side_seg1_CP2_ratio_x", &r.FrontSideSeg1CP2X},
			{"front_side_seg1_CP2_ratio_y", &r.FrontSideSeg1CP2Y},
			{"front_side_seg2_CP1_ratio_x", &r.FrontSideSeg2CP1X},
			{"front_side_seg2_CP1_ratio_y", &r.FrontSideSeg2CP1Y},
			{"front_side_seg2_CP2_ratio_x", &r.FrontSideSeg2CP2X},
			{"front_side_seg2_CP2_ratio_y", &r.FrontSideSeg2CP2Y},
		}
	case GroupBackInseam:
		return []namedField{
			{"back_inseam_seg1_CP1_ratio_x", &r.BackInseamSeg1CP1X},
			{"back_inseam_seg1_CP1_ratio_y", &r.BackInseamSeg1CP1Y},
			{"back_inseam_seg1_CP2_ratio_x", &r.BackInseamSeg1CP2X},
			{"back_inseam_seg1_CP2_ratio_y", &r.BackInseamSeg1CP2Y},
			{"back_inseam_seg2_CP1_ratio_x", &r.BackInseamSeg2CP1X},
			{"back_inseam_seg2_CP1_ratio_y", &r.BackInseamSeg2CP1Y},
			{"back_inseam_seg2_CP2_ratio_x", &r.BackInseamSeg2CP2X},
			{"back_inseam_seg2_CP2_ratio_y", &r.BackInseamSeg2CP2Y},
		}
	case GroupBackSide:
		return []namedField{
			{"back_side_seg1_CP2_ratio_x", &r.BackSideSeg1CP2X},
			{"back_side_seg1_CP2_ratio_y", &r.BackSideSeg1CP2Y},
			{"back_side_seg2_CP1_ratio_x", &r.BackSideSeg2CP1X},
			{"back_side_seg2_CP1_ratio_y", &r.BackSideSeg2CP1Y},
		}
	}
	return nil
}
