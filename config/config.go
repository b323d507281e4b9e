package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/tailor"
	"github.com/gogpu/tailor/internal/units"
	"github.com/gogpu/tailor/tile"
	"github.com/gogpu/tailor/trousers"
)

// ErrUnknownFormat is returned for a file extension with no decoder.
var ErrUnknownFormat = errors.New("config: unknown file format")

// Decoder is implemented by the TOML and YAML stream decoders.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc creates a Decoder reading from r.
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc adapts a concrete decoder constructor.
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

var decoders = map[string]DecoderFunc{
	".toml": NewDecoderFunc(toml.NewDecoder),
	".yaml": NewDecoderFunc(yaml.NewDecoder),
	".yml":  NewDecoderFunc(yaml.NewDecoder),
}

// DecoderFor picks the decoder for path by its extension.
func DecoderFor(path string) (DecoderFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return f, nil
}

// File is a parsed parameter file.
type File struct {
	// Path is set by Load.
	Path   string
	Inputs tailor.Inputs
	// Page is A4 unless the file has a page section.
	Page tile.PageConfig
}

// Load reads and parses the parameter file at path.
func Load(path string) (*File, error) {
	dec, err := DecoderFor(path)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer fp.Close()

	f, err := Read(bufio.NewReader(fp), dec)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	f.Path = path
	return f, nil
}

// Read parses a parameter file from r. An empty stream yields the
// defaults.
func Read(r io.Reader, dec DecoderFunc) (*File, error) {
	raw := map[string]any{}
	if err := dec(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	return FromMap(raw), nil
}

// FromMap builds a File from decoded key/value data.
func FromMap(raw map[string]any) *File {
	in := tailor.DefaultInputs(trousers.Measurements{})

	for k, v := range section(raw, "measurements") {
		in.Measurements.Set(k, number(v))
	}

	var easeCM trousers.Ease
	for k, v := range section(raw, "ease") {
		easeCM.Set(k, number(v))
	}
	in.Ease = trousers.EaseFromCM(easeCM)

	for k, v := range section(raw, "curves") {
		if group, ok := v.(map[string]any); ok {
			for gk, gv := range group {
				in.Curves.Set(gk, number(gv))
			}
			continue
		}
		in.Curves.Set(k, number(v))
	}

	if v, ok := raw["seam_allowance"]; ok {
		in.SeamAllowance = units.CM(number(v))
	}

	return &File{Inputs: in, Page: page(section(raw, "page"))}
}

func page(raw map[string]any) tile.PageConfig {
	cfg := tile.A4()
	if p, ok := raw["paper"].(string); ok && strings.EqualFold(p, "letter") {
		cfg = tile.Letter()
	}
	for key, dst := range map[string]*float64{
		"width":        &cfg.Width,
		"height":       &cfg.Height,
		"margin":       &cfg.Margin,
		"mark_offset":  &cfg.MarkOffset,
		"scale_square": &cfg.ScaleSquare,
	} {
		if v, ok := raw[key]; ok {
			*dst = number(v)
		}
	}
	if s, ok := raw["language"].(string); ok {
		if tag, err := language.Parse(s); err == nil {
			cfg.Language = tag
		}
	}
	return cfg
}

// section returns raw[name] when it is a table, or nil.
func section(raw map[string]any, name string) map[string]any {
	m, _ := raw[name].(map[string]any)
	return m
}

// number coerces a decoded scalar to a finite float64, or 0.
func number(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
