// Package tailor generates tiled, print-ready trouser patterns from body
// measurements.
//
// # Overview
//
// A pattern is drafted by the trousers package, laid out side by side with
// optional seam allowance, and handed to a rendering backend as a list of
// drawing items plus a page layout from the tile package:
//
//	in := tailor.Inputs{
//	    Measurements:  m,
//	    Ease:          trousers.EaseFromCM(e),
//	    Curves:        trousers.DefaultCurves(),
//	    SeamAllowance: units.CM(1),
//	}
//	p, err := tailor.Generate(in)
//	if err != nil {
//	    return err
//	}
//	layout, err := p.Pages(tile.A4())
//
// # Units
//
// Every length is in internal units, 10 per centimetre. On paper one unit
// is one millimetre.
//
// # Logging
//
// Generate and the geometry packages never log. Backends under render/ and
// the config watcher log through [Logger]; see [SetLogger].
package tailor
