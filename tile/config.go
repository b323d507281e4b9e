package tile

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// ErrInvalidPage is returned when a page configuration leaves no usable
// area for the pattern.
var ErrInvalidPage = errors.New("tile: invalid page configuration")

// ErrEmptyBounds is returned when the sheet to tile has no area.
var ErrEmptyBounds = errors.New("tile: empty bounds")

// ErrTooManyPages is returned when the sheet needs more than [MaxPages]
// pages.
var ErrTooManyPages = errors.New("tile: too many pages")

// MaxPages caps the page grid of one layout.
const MaxPages = 10000

// PageConfig describes the paper. All lengths are millimetres.
type PageConfig struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
	// Margin is left blank on every side of the paper.
	Margin float64 `toml:"margin" yaml:"margin"`
	// MarkOffset is how far alignment marks sit from the paper edge.
	MarkOffset float64 `toml:"mark_offset" yaml:"mark_offset"`
	// ScaleSquare is the side of the scale verification square on page 1;
	// 0 omits it.
	ScaleSquare float64 `toml:"scale_square" yaml:"scale_square"`
	// Language selects the page text; English when undefined.
	Language language.Tag `toml:"-" yaml:"-"`
}

// A4 returns portrait A4 paper with a 1 cm margin.
func A4() PageConfig {
	return PageConfig{
		Width:       210,
		Height:      297,
		Margin:      10,
		MarkOffset:  20,
		ScaleSquare: 30,
		Language:    language.English,
	}
}

// Letter returns portrait US Letter paper with a 1 cm margin.
func Letter() PageConfig {
	c := A4()
	c.Width, c.Height = 215.9, 279.4
	return c
}

// Usable returns the printable width and height inside the margins.
func (c PageConfig) Usable() (w, h float64) {
	return c.Width - 2*c.Margin, c.Height - 2*c.Margin
}

// Validate reports whether c leaves a positive usable area.
func (c PageConfig) Validate() error {
	w, h := c.Usable()
	if !(w > 0) || !(h > 0) {
		return fmt.Errorf("%w: usable area %gx%g mm", ErrInvalidPage, w, h)
	}
	if c.Margin < 0 {
		return fmt.Errorf("%w: negative margin %g mm", ErrInvalidPage, c.Margin)
	}
	return nil
}
