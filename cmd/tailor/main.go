// Command tailor drafts a trouser block from a parameter file and writes it
// as a tiled PDF, an SVG sheet and PNG images.
//
// Usage:
//
//	tailor -config trousers.toml -out build -svg -png
//	tailor -config trousers.yaml -watch
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"

	"github.com/gogpu/tailor"
	"github.com/gogpu/tailor/config"
	"github.com/gogpu/tailor/internal/fonts"
	"github.com/gogpu/tailor/internal/units"
	"github.com/gogpu/tailor/render"
	_ "github.com/gogpu/tailor/render/pdf"
	"github.com/gogpu/tailor/render/raster"
	_ "github.com/gogpu/tailor/render/svg"
	"github.com/gogpu/tailor/tile"
	"github.com/gogpu/tailor/trousers"
)

// baseName is the file name stem of every output.
const baseName = "trousers"

type cliOptions struct {
	config   string
	out      string
	sa       float64
	svg      bool
	pdf      bool
	png      bool
	pages    bool
	dpi      float64
	font     string
	fontBold string
	watch    bool
	verbose  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (*cliOptions, error) {
	o := &cliOptions{}
	fs := flag.NewFlagSet("tailor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.config, "config", "", "parameter file (.toml, .yaml)")
	fs.StringVar(&o.out, "out", ".", "output directory")
	fs.Float64Var(&o.sa, "sa", -1, "seam allowance in cm, overrides the file when >= 0")
	fs.BoolVar(&o.svg, "svg", false, "write the sheet as SVG")
	fs.BoolVar(&o.pdf, "pdf", true, "write the tiled PDF")
	fs.BoolVar(&o.png, "png", false, "write a PNG overview of the sheet")
	fs.BoolVar(&o.pages, "pages", false, "write every print page as PNG")
	fs.Float64Var(&o.dpi, "dpi", 150, "resolution of page PNGs")
	fs.StringVar(&o.font, "font", "", "regular TrueType font for page text")
	fs.StringVar(&o.fontBold, "font-bold", "", "bold TrueType font for page text")
	fs.BoolVar(&o.watch, "watch", false, "regenerate whenever the parameter file changes")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.config == "" {
		fs.Usage()
		return nil, errors.New("-config is required")
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "tailor:", err)
		return 1
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	tailor.SetLogger(logger)
	defer tailor.SetLogger(nil)

	family := strings.TrimSuffix(filepath.Base(opts.font), filepath.Ext(opts.font))
	fnts := fonts.Load(logger, family, opts.font, opts.fontBold)

	f, err := config.Load(opts.config)
	if err == nil {
		err = build(f, opts, fnts, stdout)
	}
	if err != nil {
		logger.Error("generate failed", "err", err)
		if !opts.watch {
			return 1
		}
	}
	if !opts.watch {
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = config.Watch(ctx, opts.config, func(f *config.File, err error) {
		if err == nil {
			err = build(f, opts, fnts, stdout)
		}
		if err != nil {
			logger.Error("regenerate failed", "err", err)
		}
	})
	if err != nil {
		logger.Error("watch failed", "err", err)
		return 1
	}
	return 0
}

// build generates the pattern in f and writes every enabled output.
func build(f *config.File, opts *cliOptions, fnts fonts.Set, stdout io.Writer) error {
	in := f.Inputs
	if opts.sa >= 0 {
		in.SeamAllowance = units.CM(opts.sa)
	}
	p, err := tailor.Generate(in)
	if err != nil {
		return err
	}
	layout, err := p.Pages(f.Page)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return err
	}

	var formats []string
	for _, o := range []struct {
		name string
		on   bool
	}{{"pdf", opts.pdf}, {"svg", opts.svg}, {"png", opts.png}} {
		if o.on {
			formats = append(formats, o.name)
		}
	}

	job := render.Job{Pattern: p, Layout: layout, Fonts: fnts}
	var written []string
	for _, name := range formats {
		exp, err := render.NewExporter(name)
		if err != nil {
			return err
		}
		path := filepath.Join(opts.out, baseName+exp.Ext())
		if err := writeFile(path, func(w io.Writer) error { return exp.Export(w, job) }); err != nil {
			return err
		}
		written = append(written, path)
	}

	if opts.pages {
		r, err := raster.New(raster.Options{DPI: opts.dpi, Fonts: fnts})
		if err != nil {
			return err
		}
		dir := filepath.Join(opts.out, baseName+"-pages")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		names, err := r.SavePages(dir, p, layout)
		if err != nil {
			return err
		}
		written = append(written, names...)
	}

	printSummary(stdout, p, layout, written)
	return nil
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return fn(fp)
}

// mismatch is the front/back length difference, in cm, above which a
// mating seam is flagged.
const mismatch = 0.5

func printSummary(w io.Writer, p *tailor.Pattern, l *tile.Layout, written []string) {
	out := termenv.NewOutput(w)
	bold := func(s string) string { return out.String(s).Bold().String() }
	dim := func(s string) string { return out.String(s).Faint().String() }

	width, height := p.Size()
	fmt.Fprintf(w, "%s  %.1f × %.1f cm on %d pages (%d × %d)\n",
		bold("tailor"), width, height, l.Total(), l.Cols, l.Rows)

	fmt.Fprintf(w, "\n%-8s %8s %8s %8s\n", bold("seam"), "front", "back", "diff")
	for _, row := range p.SeamReport() {
		diff := units.ToCM(row.Difference())
		cell := fmt.Sprintf("%8.1f", diff)
		mates := row.Seam == trousers.SeamSide || row.Seam == trousers.SeamInseam
		switch {
		case !mates:
			cell = dim(cell)
		case math.Abs(diff) > mismatch:
			cell = out.String(cell).Foreground(out.Color("1")).String()
		default:
			cell = out.String(cell).Foreground(out.Color("2")).String()
		}
		fmt.Fprintf(w, "%-8s %8.1f %8.1f %s\n", row.Seam, units.ToCM(row.Front), units.ToCM(row.Back), cell)
	}

	if len(written) > 0 {
		fmt.Fprintln(w)
	}
	for _, name := range written {
		fmt.Fprintf(w, "%s %s\n", dim("wrote"), name)
	}
}
