// Package config reads pattern parameter files.
//
// A parameter file is TOML (.toml) or YAML (.yaml, .yml) with these
// sections, all optional:
//
//	seam_allowance = 1.5          # cm, 0 disables
//
//	[measurements]                # cm
//	hip = 100
//	waistToHip = 20
//
//	[ease]                        # cm, converted to internal units
//	hip_ease = 1
//
//	[curves]                      # ratios, flat or grouped
//	front_crotch_h_tension = 0.5
//	[curves.back_waist]
//	back_waist_CP2_ratio_x = 0.3
//
//	[page]                        # mm
//	paper = "a4"                  # or "letter"
//	margin = 10
//	language = "de"
//
// Parsing is lenient: a value that is not a finite number becomes 0,
// unknown keys are ignored and missing curve ratios keep their default.
package config
