// Package fonts loads the regular and bold faces used on printed pages,
// falling back to the embedded Go fonts when a font file cannot be read.
package fonts

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// FallbackFamily is the family name of the embedded fonts.
const FallbackFamily = "Go"

// Set is a regular and bold TrueType font pair.
type Set struct {
	Family  string
	Regular []byte
	Bold    []byte
	// Fallback reports whether the embedded fonts were used.
	Fallback bool
}

// Default returns the embedded Go fonts.
func Default() Set {
	return Set{Family: FallbackFamily, Regular: goregular.TTF, Bold: gobold.TTF, Fallback: true}
}

// Load reads the regular and bold font files. Empty paths select the
// embedded fonts silently. When either file is missing or is not a valid
// font, a warning is logged and the embedded fonts are used for both
// styles; Load never fails.
func Load(logger *slog.Logger, family, regularPath, boldPath string) Set {
	if regularPath == "" && boldPath == "" {
		return Default()
	}
	regular, err := read(regularPath)
	if err == nil {
		var bold []byte
		bold, err = read(boldPath)
		if err == nil {
			return Set{Family: family, Regular: regular, Bold: bold}
		}
	}
	logger.Warn("fonts: could not load font, falling back to Go fonts",
		"regular", regularPath, "bold", boldPath, "err", err)
	return Default()
}

func read(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("fonts: no font file given")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fonts: %w", err)
	}
	if _, err := sfnt.Parse(data); err != nil {
		return nil, fmt.Errorf("fonts: %s: %w", path, err)
	}
	return data, nil
}
