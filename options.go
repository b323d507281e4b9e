package tailor

// Option configures [Generate].
//
// Example:
//
//	// Wider gap between the pieces, more room around the sheet.
//	p, err := tailor.Generate(in, tailor.WithPieceGap(40), tailor.WithPadding(20))
type Option func(*options)

type options struct {
	gap     float64
	padding float64
	samples int
}

// Layout defaults in internal units.
const (
	// DefaultPieceGap separates the front piece's rightmost extent from the
	// back piece's leftmost extent (2 cm).
	DefaultPieceGap = 20.0
	// DefaultPadding surrounds both pieces in the bounding box (1 cm).
	DefaultPadding = 10.0
)

func defaultOptions() options {
	return options{
		gap:     DefaultPieceGap,
		padding: DefaultPadding,
		samples: SeamAllowanceSamples,
	}
}

// WithPieceGap sets the gap between the two pieces. Negative values are
// treated as 0.
func WithPieceGap(gap float64) Option {
	return func(o *options) {
		o.gap = max(gap, 0)
	}
}

// WithPadding sets the padding around both pieces. Negative values are
// treated as 0.
func WithPadding(padding float64) Option {
	return func(o *options) {
		o.padding = max(padding, 0)
	}
}

// WithSamples sets how many samples per curve are used when flattening
// outlines for layout and bounds. Values below 1 keep the default.
// Seam allowance polygons are always flattened with
// [SeamAllowanceSamples].
func WithSamples(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.samples = n
		}
	}
}
