// Package trousers drafts the front and back pieces of a trouser block.
//
// Drafting is a single pass:
//
//	Measurements + Ease  --Solve-->        Frame
//	Frame + CurveRatios  --Parameterize--> Controls
//	Frame + Controls     --BuildFront/BuildBack--> Outline
//
// [NewDraft] runs all three steps. Measurements are in centimetres; every other
// length, including [Ease], is in internal units (10 per centimetre).
// Curve ratios are dimensionless and only meaningful relative to the two
// anchors each one is defined against.
package trousers
