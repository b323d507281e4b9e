package trousers

import (
	"github.com/gogpu/tailor/internal/units"
)

// Measurements are body measurements in centimetres.
type Measurements struct {
	Hip          float64 `toml:"hip" yaml:"hip"`
	WaistToHip   float64 `toml:"waistToHip" yaml:"waistToHip"`
	WaistToKnee  float64 `toml:"waistToKnee" yaml:"waistToKnee"`
	WaistToAnkle float64 `toml:"waistToAnkle" yaml:"waistToAnkle"`
	CrotchDepth  float64 `toml:"crotchDepth" yaml:"crotchDepth"`
	Waist        float64 `toml:"waist" yaml:"waist"`
	Hemline      float64 `toml:"hemline" yaml:"hemline"`
}

func (m *Measurements) named() []namedField {
	return []namedField{
		{"hip", &m.Hip},
		{"waistToHip", &m.WaistToHip},
		{"waistToKnee", &m.WaistToKnee},
		{"waistToAnkle", &m.WaistToAnkle},
		{"crotchDepth", &m.CrotchDepth},
		{"waist", &m.Waist},
		{"hemline", &m.Hemline},
	}
}

// Set assigns the measurement called name. It reports false for an unknown
// name.
func (m *Measurements) Set(name string, v float64) bool {
	return setNamed(m.named(), name, v)
}

// Sanitize replaces NaN and infinite fields with 0.
func (m *Measurements) Sanitize() {
	sanitize(m.named())
}

// Ease holds the structural offsets, in internal units, that shift or
// extend construction points beyond the raw measurements.
type Ease struct {
	// HipEase widens the frame beyond half the hip.
	HipEase float64 `toml:"hip_ease" yaml:"hip_ease"`
	// XCenterOffset moves the centre line away from the frame midpoint.
	XCenterOffset float64 `toml:"x_center_offset" yaml:"x_center_offset"`
	// CrotchEase lowers the crotch line.
	CrotchEase float64 `toml:"crotch_ease" yaml:"crotch_ease"`
	// FrontCrotchExtension reaches left of the frame at crotch level.
	FrontCrotchExtension float64 `toml:"front_crotch_extension" yaml:"front_crotch_extension"`
	// BackCrotchExtension reaches right of the frame at crotch level.
	BackCrotchExtension float64 `toml:"back_crotch_extension" yaml:"back_crotch_extension"`
	// FrontRiseX and FrontRiseY place the front waist anchor.
	FrontRiseX float64 `toml:"front_rise_x" yaml:"front_rise_x"`
	FrontRiseY float64 `toml:"front_rise_y" yaml:"front_rise_y"`
	// BackRise raises the back waist above the waist line.
	BackRise float64 `toml:"back_rise" yaml:"back_rise"`
	// BackWaistOffset slants the back centre seam inwards at the waist.
	BackWaistOffset float64 `toml:"back_waist_offset" yaml:"back_waist_offset"`
	FrontHemEase    float64 `toml:"front_hem_ease" yaml:"front_hem_ease"`
	BackHemEase     float64 `toml:"back_hem_ease" yaml:"back_hem_ease"`
	// FrontKneeEase narrows the front knee line on both sides of the crease.
	FrontKneeEase float64 `toml:"front_knee_ease" yaml:"front_knee_ease"`
	// BackKneeEase widens the back knee line relative to the front.
	BackKneeEase float64 `toml:"back_knee_ease" yaml:"back_knee_ease"`
	// SideseamHipEase moves the front sideseam's hip peak off the centre line.
	SideseamHipEase      float64 `toml:"sideseam_hip_ease" yaml:"sideseam_hip_ease"`
	BackInseamHipOffsetX float64 `toml:"back_inseam_hip_offset_x" yaml:"back_inseam_hip_offset_x"`
	BackInseamHipOffsetY float64 `toml:"back_inseam_hip_offset_y" yaml:"back_inseam_hip_offset_y"`
	// BackSideseamThighOffsetX/Y place the back sideseam's mid-thigh point
	// relative to the back knee.
	BackSideseamThighOffsetX float64 `toml:"back_sideseam_thigh_offset_x" yaml:"back_sideseam_thigh_offset_x"`
	BackSideseamThighOffsetY float64 `toml:"back_sideseam_thigh_offset_y" yaml:"back_sideseam_thigh_offset_y"`
}

func (e *Ease) named() []namedField {
	return []namedField{
		{"hip_ease", &e.HipEase},
		{"x_center_offset", &e.XCenterOffset},
		{"crotch_ease", &e.CrotchEase},
		{"front_crotch_extension", &e.FrontCrotchExtension},
		{"back_crotch_extension", &e.BackCrotchExtension},
		{"front_rise_x", &e.FrontRiseX},
		{"front_rise_y", &e.FrontRiseY},
		{"back_rise", &e.BackRise},
		{"back_waist_offset", &e.BackWaistOffset},
		{"front_hem_ease", &e.FrontHemEase},
		{"back_hem_ease", &e.BackHemEase},
		{"front_knee_ease", &e.FrontKneeEase},
		{"back_knee_ease", &e.BackKneeEase},
		{"sideseam_hip_ease", &e.SideseamHipEase},
		{"back_inseam_hip_offset_x", &e.BackInseamHipOffsetX},
		{"back_inseam_hip_offset_y", &e.BackInseamHipOffsetY},
		{"back_sideseam_thigh_offset_x", &e.BackSideseamThighOffsetX},
		{"back_sideseam_thigh_offset_y", &e.BackSideseamThighOffsetY},
	}
}

// Set assigns the ease parameter called name. It reports false for an
// unknown name.
func (e *Ease) Set(name string, v float64) bool {
	return setNamed(e.named(), name, v)
}

// Sanitize replaces NaN and infinite fields with 0.
func (e *Ease) Sanitize() {
	sanitize(e.named())
}

// EaseFromCM returns e with every field converted from centimetres to
// internal units.
func EaseFromCM(e Ease) Ease {
	for _, f := range e.named() {
		*f.value = units.CM(*f.value)
	}
	return e
}

// CurveRatios are the dimensionless shape controls of every seam curve.
//
// Each control point is an affine combination of two solved anchors; 0 sits
// on the first anchor and 1 on the second. Values outside [0,1] overshoot
// and are allowed.
type CurveRatios struct {
	FrontCrotchHTension float64 `toml:"front_crotch_h_tension" yaml:"front_crotch_h_tension"`
	FrontCrotchVTension float64 `toml:"front_crotch_v_tension" yaml:"front_crotch_v_tension"`
	BackCrotchHTension  float64 `toml:"back_crotch_h_tension" yaml:"back_crotch_h_tension"`
	BackCrotchVTension  float64 `toml:"back_crotch_v_tension" yaml:"back_crotch_v_tension"`

	FrontWaistCP2X float64 `toml:"front_waist_CP2_ratio_x" yaml:"front_waist_CP2_ratio_x"`
	FrontWaistCP2Y float64 `toml:"front_waist_CP2_ratio_y" yaml:"front_waist_CP2_ratio_y"`
	FrontWaistP3X  float64 `toml:"front_waist_P3_ratio_x" yaml:"front_waist_P3_ratio_x"`
	FrontWaistCP3X float64 `toml:"front_waist_CP3_ratio_x" yaml:"front_waist_CP3_ratio_x"`
	FrontWaistCP3Y float64 `toml:"front_waist_CP3_ratio_y" yaml:"front_waist_CP3_ratio_y"`

	BackWaistCP2X float64 `toml:"back_waist_CP2_ratio_x" yaml:"back_waist_CP2_ratio_x"`
	BackWaistCP2Y float64 `toml:"back_waist_CP2_ratio_y" yaml:"back_waist_CP2_ratio_y"`
	BackWaistP3X  float64 `toml:"back_waist_P3_ratio_x" yaml:"back_waist_P3_ratio_x"`
	BackWaistP3Y  float64 `toml:"back_waist_P3_ratio_y" yaml:"back_waist_P3_ratio_y"`
	BackWaistCP3X float64 `toml:"back_waist_CP3_ratio_x" yaml:"back_waist_CP3_ratio_x"`
	BackWaistCP3Y float64 `toml:"back_waist_CP3_ratio_y" yaml:"back_waist_CP3_ratio_y"`

	FrontInseamCP1X float64 `toml:"front_inseam_CP1_ratio_x" yaml:"front_inseam_CP1_ratio_x"`
	FrontInseamCP1Y float64 `toml:"front_inseam_CP1_ratio_y" yaml:"front_inseam_CP1_ratio_y"`
	FrontInseamCP2X float64 `toml:"front_inseam_CP2_ratio_x" yaml:"front_inseam_CP2_ratio_x"`
	FrontInseamCP2Y float64 `toml:"front_inseam_CP2_ratio_y" yaml:"front_inseam_CP2_ratio_y"`

	FrontSideSeg1CP1X float64 `toml:"front_side_seg1_CP1_ratio_x" yaml:"front_side_seg1_CP1_ratio_x"`
	FrontSideSeg1CP1Y float64 `toml:"front_side_seg1_CP1_ratio_y" yaml:"front_side_seg1_CP1_ratio_y"`
	FrontSideSeg1CP2X float64 `toml:"front_side_seg1_CP2_ratio_x" yaml:"front_side_seg1_CP2_ratio_x"`
	FrontSideSeg1CP2Y float64 `toml:"front_side_seg1_CP2_ratio_y" yaml:"front_side_seg1_CP2_ratio_y"`
	FrontSideSeg2CP1X float64 `toml:"front_side_seg2_CP1_ratio_x" yaml:"front_side_seg2_CP1_ratio_x"`
	FrontSideSeg2CP1Y float64 `toml:"front_side_seg2_CP1_ratio_y" yaml:"front_side_seg2_CP1_ratio_y"`
	FrontSideSeg2CP2X float64 `toml:"front_side_seg2_CP2_ratio_x" yaml:"front_side_seg2_CP2_ratio_x"`
	FrontSideSeg2CP2Y float64 `toml:"front_side_seg2_CP2_ratio_y" yaml:"front_side_seg2_CP2_ratio_y"`

	BackInseamSeg1CP1X float64 `toml:"back_inseam_seg1_CP1_ratio_x" yaml:"back_inseam_seg1_CP1_ratio_x"`
	BackInseamSeg1CP1Y float64 `toml:"back_inseam_seg1_CP1_ratio_y" yaml:"back_inseam_seg1_CP1_ratio_y"`
	BackInseamSeg1CP2X float64 `toml:"back_inseam_seg1_CP2_ratio_x" yaml:"back_inseam_seg1_CP2_ratio_x"`
	BackInseamSeg1CP2Y float64 `toml:"back_inseam_seg1_CP2_ratio_y" yaml:"back_inseam_seg1_CP2_ratio_y"`
	BackInseamSeg2CP1X float64 `toml:"back_inseam_seg2_CP1_ratio_x" yaml:"back_inseam_seg2_CP1_ratio_x"`
	BackInseamSeg2CP1Y float64 `toml:"back_inseam_seg2_CP1_ratio_y" yaml:"back_inseam_seg2_CP1_ratio_y"`
	BackInseamSeg2CP2X float64 `toml:"back_inseam_seg2_CP2_ratio_x" yaml:"back_inseam_seg2_CP2_ratio_x"`
	BackInseamSeg2CP2Y float64 `toml:"back_inseam_seg2_CP2_ratio_y" yaml:"back_inseam_seg2_CP2_ratio_y"`

	BackSideSeg1CP2X float64 `toml:"back_side_seg1_CP2_ratio_x" yaml:"back_side_seg1_CP2_ratio_x"`
	BackSideSeg1CP2Y float64 `toml:"back_side_seg1_CP2_ratio_y" yaml:"back_side_seg1_CP2_ratio_y"`
	BackSideSeg2CP1X float64 `toml:"back_side_seg2_CP1_ratio_x" yaml:"back_side_seg2_CP1_ratio_x"`
	BackSideSeg2CP1Y float64 `toml:"back_side_seg2_CP1_ratio_y" yaml:"back_side_seg2_CP1_ratio_y"`
}

// Set assigns the ratio called name, e.g. "front_waist_CP2_ratio_x".
// It reports false for an unknown name.
func (r *CurveRatios) Set(name string, v float64) bool {
	for _, g := range CurveGroups() {
		if setNamed(r.group(g), name, v) {
			return true
		}
	}
	return false
}

// Sanitize replaces NaN and infinite ratios with 0.
func (r *CurveRatios) Sanitize() {
	for _, g := range CurveGroups() {
		sanitize(r.group(g))
	}
}

// namedField binds a parameter name to its struct field.
type namedField struct {
	name  string
	value *float64
}

func setNamed(fields []namedField, name string, v float64) bool {
	for _, f := range fields {
		if f.name == name {
			*f.value = v
			return true
		}
	}
	return false
}

func sanitize(fields []namedField) {
	for _, f := range fields {
		*f.value = units.Finite(*f.value)
	}
}
