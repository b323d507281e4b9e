// Package units holds the fixed scale shared by every stage of the drafting
// pipeline: 10 internal units (px) per physical centimetre.
package units

import "math"

// PxPerCM is the number of internal drawing units per centimetre.
// The page tiler depends on this ratio; it must not change.
const PxPerCM = 10.0

// MMPerPx converts internal units to physical millimetres.
const MMPerPx = 10.0 / PxPerCM

// CM converts centimetres to internal units.
func CM(v float64) float64 {
	return v * PxPerCM
}

// ToCM converts internal units to centimetres.
func ToCM(px float64) float64 {
	return px / PxPerCM
}

// ToMM converts internal units to millimetres.
func ToMM(px float64) float64 {
	return px * MMPerPx
}

// FromMM converts millimetres to internal units.
func FromMM(mm float64) float64 {
	return mm / MMPerPx
}

// Finite returns v, or 0 when v is NaN or infinite.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
