package config

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/gogpu/tailor"
	"github.com/gogpu/tailor/tile"
	"github.com/gogpu/tailor/trousers"
)

func TestLoad_Fixtures(t *testing.T) {
	for _, name := range []string{"trousers.toml", "trousers.yaml"} {
		t.Run(name, func(t *testing.T) {
			f, err := Load(filepath.Join("testdata", name))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			in := f.Inputs
			if in.Measurements.Hip != 100 || in.Measurements.Hemline != 44 {
				t.Errorf("Measurements = %+v", in.Measurements)
			}
			if in.Ease.BackSideseamThighOffsetY != 150 {
				t.Errorf("BackSideseamThighOffsetY = %v, want 150 (15 cm)", in.Ease.BackSideseamThighOffsetY)
			}
			if in.Ease.SideseamHipEase != 5 {
				t.Errorf("SideseamHipEase = %v, want 5", in.Ease.SideseamHipEase)
			}
			if in.SeamAllowance != 10 {
				t.Errorf("SeamAllowance = %v, want 10", in.SeamAllowance)
			}

			def := trousers.DefaultCurves()
			if in.Curves.FrontCrotchHTension != 0.6 {
				t.Errorf("FrontCrotchHTension = %v, want 0.6", in.Curves.FrontCrotchHTension)
			}
			if in.Curves.BackWaistCP2X != -0.3 {
				t.Errorf("BackWaistCP2X = %v, want -0.3 from the grouped table", in.Curves.BackWaistCP2X)
			}
			if in.Curves.BackCrotchVTension != def.BackCrotchVTension {
				t.Errorf("BackCrotchVTension = %v, want default %v", in.Curves.BackCrotchVTension, def.BackCrotchVTension)
			}

			if f.Page.Width != 210 || f.Page.Language != language.German {
				t.Errorf("Page = %+v", f.Page)
			}
			if f.Path == "" {
				t.Error("Path not set")
			}

			if _, err := tailor.Generate(in); err != nil {
				t.Errorf("Generate() error = %v", err)
			}
		})
	}
}

func TestLoad_FormatsAgree(t *testing.T) {
	a, err := Load(filepath.Join("testdata", "trousers.toml"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Load(filepath.Join("testdata", "trousers.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if a.Inputs != b.Inputs {
		t.Errorf("TOML and YAML inputs differ:\n%+v\n%+v", a.Inputs, b.Inputs)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load("params.json"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Load(.json) error = %v, want ErrUnknownFormat", err)
	}
	if _, err := Load(filepath.Join("testdata", "missing.toml")); err == nil {
		t.Error("Load(missing) expected error")
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("[measurements\nhip = "), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "bad.toml") {
		t.Errorf("Load(bad) error = %v, want a parse error naming the file", err)
	}
}

func TestDecoderFor(t *testing.T) {
	tests := []struct {
		path string
		ok   bool
	}{
		{"a.toml", true},
		{"a.TOML", true},
		{"a.yaml", true},
		{"a.yml", true},
		{"a.json", false},
		{"a", false},
	}
	for _, tt := range tests {
		_, err := DecoderFor(tt.path)
		if (err == nil) != tt.ok {
			t.Errorf("DecoderFor(%q) error = %v, want ok %v", tt.path, err, tt.ok)
		}
	}
}

func TestRead_Empty(t *testing.T) {
	dec, _ := DecoderFor("x.yaml")
	f, err := Read(strings.NewReader(""), dec)
	if err != nil {
		t.Fatalf("Read(empty) error = %v", err)
	}
	if f.Inputs != tailor.DefaultInputs(trousers.Measurements{}) {
		t.Errorf("Inputs = %+v, want defaults", f.Inputs)
	}
	if f.Page != tile.A4() {
		t.Errorf("Page = %+v, want A4", f.Page)
	}
}

func TestFromMap_Lenient(t *testing.T) {
	f := FromMap(map[string]any{
		"measurements": map[string]any{
			"hip":         "101.5",
			"waist":       "eighty",
			"hemline":     math.NaN(),
			"waistToHip":  math.Inf(1),
			"unknown":     3,
			"crotchDepth": true,
		},
		"ease":           "not a table",
		"seam_allowance": int64(2),
	})
	m := f.Inputs.Measurements
	if m.Hip != 101.5 {
		t.Errorf("Hip = %v, want 101.5", m.Hip)
	}
	for name, v := range map[string]float64{
		"waist": m.Waist, "hemline": m.Hemline, "waistToHip": m.WaistToHip, "crotchDepth": m.CrotchDepth,
	} {
		if v != 0 {
			t.Errorf("%s = %v, want 0", name, v)
		}
	}
	if f.Inputs.Ease != (trousers.Ease{}) {
		t.Errorf("Ease = %+v, want zero", f.Inputs.Ease)
	}
	if f.Inputs.SeamAllowance != 20 {
		t.Errorf("SeamAllowance = %v, want 20", f.Inputs.SeamAllowance)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   any
		want float64
	}{
		{1.5, 1.5},
		{float32(2), 2},
		{3, 3},
		{int64(-4), -4},
		{uint64(5), 5},
		{" 6.25 ", 6.25},
		{"x", 0},
		{"NaN", 0},
		{nil, 0},
		{false, 0},
		{[]any{1}, 0},
	}
	for _, tt := range tests {
		if got := number(tt.in); got != tt.want {
			t.Errorf("number(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPage(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want func(tile.PageConfig) bool
	}{
		{"default", nil, func(c tile.PageConfig) bool { return c == tile.A4() }},
		{"letter", map[string]any{"paper": "Letter"}, func(c tile.PageConfig) bool { return c.Width == tile.Letter().Width }},
		{"override", map[string]any{"margin": 5, "scale_square": 0}, func(c tile.PageConfig) bool {
			return c.Margin == 5 && c.ScaleSquare == 0 && c.Width == 210
		}},
		{"bad language", map[string]any{"language": "!!"}, func(c tile.PageConfig) bool { return c.Language == language.English }},
		{"french", map[string]any{"language": "fr"}, func(c tile.PageConfig) bool { return c.Language == language.French }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := page(tt.raw); !tt.want(got) {
				t.Errorf("page() = %+v", got)
			}
		})
	}
}

func TestWatch_Reloads(t *testing.T) {
	old := debounce
	debounce = 10 * time.Millisecond
	defer func() { debounce = old }()

	dir := t.TempDir()
	path := filepath.Join(dir, "p.toml")
	if err := os.WriteFile(path, []byte("[measurements]\nhip = 90\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make(chan float64, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(f *File, err error) {
			if err == nil {
				got <- f.Inputs.Measurements.Hip
			}
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("[measurements]\nhip = 110\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case hip := <-got:
		if hip != 110 {
			t.Errorf("reloaded hip = %v, want 110", hip)
		}
	case <-ctx.Done():
		t.Fatal("no reload before timeout")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch() error = %v", err)
	}
}

func TestWatch_UnknownFormat(t *testing.T) {
	err := Watch(context.Background(), "p.json", func(*File, error) {})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Watch(.json) error = %v, want ErrUnknownFormat", err)
	}
}
