package tile

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/text/message"

	"github.com/gogpu/tailor/geom"
	"github.com/gogpu/tailor/internal/units"
)

// Side is a page edge.
type Side uint8

const (
	Left Side = iota
	Right
	Top
	Bottom
)

var sideNames = [...]string{Left: "left", Right: "right", Top: "top", Bottom: "bottom"}

// String returns the side name.
func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return "unknown"
}

// Align is the horizontal anchor of a text.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle describes how page text is set.
type TextStyle struct {
	// Size is in points.
	Size  float64
	Bold  bool
	Color color.NRGBA
}

// LineStyle describes how page lines are stroked. Width and Dash are in
// millimetres.
type LineStyle struct {
	Width float64
	Color color.NRGBA
	Dash  []float64
}

// Text is a string placed on the paper.
type Text struct {
	Text  string
	At    geom.Point
	Align Align
	// Rotate is the counter-clockwise rotation in degrees about At.
	Rotate float64
	Style  TextStyle
}

// Mark is an alignment line along an internal page edge.
type Mark struct {
	Side  Side
	Line  geom.Line
	Label Text
}

// ScaleSquare lets the user check that the printer did not rescale the
// page.
type ScaleSquare struct {
	Square geom.Rect
	// Caps are the end caps of the top and right measuring bars.
	Caps   []geom.Line
	Labels []Text
}

// Page is one printable page.
type Page struct {
	// Number is 1-based, row-major.
	Number int
	Row    int
	Col    int
	// Crop is the part of the sheet printed on this page, in internal
	// units. The last row and column may be partial.
	Crop geom.Rect
	// Origin is where Crop.Min lands on the paper, in millimetres.
	Origin geom.Point
	// Clip is the printable area on the paper, in millimetres.
	Clip geom.Rect

	Marks []Mark
	// LeftNeighbor and TopNeighbor are page numbers, 0 when absent.
	LeftNeighbor int
	TopNeighbor  int

	// Info is the page title and grid position.
	Info []Text
	// Helpers tell the user which pages to align with.
	Helpers []Text
	// Scale is set on page 1 only.
	Scale *ScaleSquare
}

// HasMark reports whether the page has an alignment mark on side s.
func (p *Page) HasMark(s Side) bool {
	for _, m := range p.Marks {
		if m.Side == s {
			return true
		}
	}
	return false
}

// ToPaper maps a sheet point to millimetres on this page.
func (p *Page) ToPaper(pt geom.Point) geom.Point {
	d := pt.Sub(p.Crop.Min)
	return p.Origin.Add(geom.Pt(units.ToMM(d.X), units.ToMM(d.Y)))
}

// Layout is the full page grid for one sheet.
type Layout struct {
	Config PageConfig
	Bounds geom.Rect
	Cols   int
	Rows   int
	Pages  []Page
}

// Total returns the number of pages.
func (l *Layout) Total() int {
	return len(l.Pages)
}

// At returns the page at row, col, or nil outside the grid.
func (l *Layout) At(row, col int) *Page {
	if row < 0 || row >= l.Rows || col < 0 || col >= l.Cols {
		return nil
	}
	return &l.Pages[row*l.Cols+col]
}

// Styles from the print stylesheet.
var (
	InfoTitleStyle    = TextStyle{Size: 10, Bold: true, Color: gray(80)}
	InfoSubtitleStyle = TextStyle{Size: 7, Color: gray(130)}
	MarkLabelStyle    = TextStyle{Size: 7, Color: gray(190)}
	HelperStyle       = TextStyle{Size: 7, Color: gray(130)}
	DimensionStyle    = TextStyle{Size: 8, Color: gray(0)}
	ScaleTitleStyle   = TextStyle{Size: 8, Bold: true, Color: gray(0)}
	ScaleHintStyle    = TextStyle{Size: 7, Color: gray(100)}

	MarkStroke  = LineStyle{Width: 0.2, Color: gray(190), Dash: []float64{5, 3}}
	ScaleStroke = LineStyle{Width: 0.4, Color: gray(0)}
)

func gray(v uint8) color.NRGBA {
	return color.NRGBA{R: v, G: v, B: v, A: 0xff}
}

// Paper-space placement, in millimetres.
const (
	infoX           = 5.0
	infoY           = 6.0
	infoSpacing     = 4.0
	markLabelGap    = 1.5
	helperX         = 5.0
	helperFromBot   = 8.0
	helperSpacing   = 3.5
	scaleX          = 15.0
	scaleY          = 25.0
	scaleCap        = 4.0
	scaleLabelGap   = 2.0
	scaleTitleGap   = 5.0
	scaleHintGap    = 4.0
	bottomLabelDrop = 2.0
)

// Tile partitions bounds into pages of cfg.
//
// The grid has ceil(width/usableWidth) columns and
// ceil(height/usableHeight) rows; the union of all crop windows is exactly
// bounds. Grids of more than [MaxPages] pages fail with [ErrTooManyPages].
func Tile(bounds geom.Rect, cfg PageConfig) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if bounds.Empty() || !bounds.Min.IsFinite() || !bounds.Max.IsFinite() {
		return nil, fmt.Errorf("%w: %v", ErrEmptyBounds, bounds)
	}

	uwMM, uhMM := cfg.Usable()
	uw, uh := units.FromMM(uwMM), units.FromMM(uhMM)
	fc, fr := math.Ceil(bounds.Width()/uw), math.Ceil(bounds.Height()/uh)
	if fc*fr > MaxPages {
		return nil, fmt.Errorf("%w: %gx%g grid", ErrTooManyPages, fc, fr)
	}
	cols, rows := int(fc), int(fr)

	l := &Layout{
		Config: cfg,
		Bounds: bounds,
		Cols:   cols,
		Rows:   rows,
		Pages:  make([]Page, 0, cols*rows),
	}
	pr := newPrinter(cfg.Language)
	total := cols * rows

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			// Edges are computed from the grid index so neighbouring crops
			// share them exactly.
			crop := geom.Rect{
				Min: geom.Pt(bounds.Min.X+float64(col)*uw, bounds.Min.Y+float64(row)*uh),
				Max: geom.Pt(
					min(bounds.Min.X+float64(col+1)*uw, bounds.Max.X),
					min(bounds.Min.Y+float64(row+1)*uh, bounds.Max.Y),
				),
			}
			p := Page{
				Number: row*cols + col + 1,
				Row:    row,
				Col:    col,
				Crop:   crop,
				Origin: geom.Pt(cfg.Margin, cfg.Margin),
				Clip:   geom.XYWH(cfg.Margin, cfg.Margin, uwMM, uhMM),
			}
			if col > 0 {
				p.LeftNeighbor = row*cols + col
			}
			if row > 0 {
				p.TopNeighbor = (row-1)*cols + col + 1
			}

			p.Marks = marks(cfg, pr, col, row, cols, rows)
			p.Info = []Text{
				{Text: pr.Sprintf(msgPageOf, p.Number, total), At: geom.Pt(infoX, infoY), Style: InfoTitleStyle},
				{Text: pr.Sprintf(msgGrid, row+1, col+1), At: geom.Pt(infoX, infoY+infoSpacing), Style: InfoSubtitleStyle},
			}
			p.Helpers = helpers(cfg, pr, p.LeftNeighbor, p.TopNeighbor)
			if p.Number == 1 && cfg.ScaleSquare > 0 {
				p.Scale = scaleSquare(cfg, pr)
			}
			l.Pages = append(l.Pages, p)
		}
	}
	return l, nil
}

// marks returns alignment marks for the internal edges of the page at
// col, row. Outer edges of the grid never get a mark.
func marks(cfg PageConfig, pr *message.Printer, col, row, cols, rows int) []Mark {
	pw, ph, off := cfg.Width, cfg.Height, cfg.MarkOffset
	label := func(key string, at geom.Point, align Align, rotate float64) Text {
		return Text{Text: pr.Sprintf(key), At: at, Align: align, Rotate: rotate, Style: MarkLabelStyle}
	}

	var ms []Mark
	if col > 0 {
		ms = append(ms, Mark{
			Side:  Left,
			Line:  geom.Line{P1: geom.Pt(off, 0), P2: geom.Pt(off, ph)},
			Label: label(msgAlignLeft, geom.Pt(off+markLabelGap, ph/2), AlignLeft, 90),
		})
	}
	if col < cols-1 {
		ms = append(ms, Mark{
			Side:  Right,
			Line:  geom.Line{P1: geom.Pt(pw-off, 0), P2: geom.Pt(pw-off, ph)},
			Label: label(msgAlignRight, geom.Pt(pw-off-markLabelGap, ph/2), AlignLeft, 90),
		})
	}
	if row > 0 {
		ms = append(ms, Mark{
			Side:  Top,
			Line:  geom.Line{P1: geom.Pt(0, off), P2: geom.Pt(pw, off)},
			Label: label(msgAlignTop, geom.Pt(pw/2, off-markLabelGap), AlignCenter, 0),
		})
	}
	if row < rows-1 {
		ms = append(ms, Mark{
			Side:  Bottom,
			Line:  geom.Line{P1: geom.Pt(0, ph-off), P2: geom.Pt(pw, ph-off)},
			Label: label(msgAlignBottom, geom.Pt(pw/2, ph-off+markLabelGap+bottomLabelDrop), AlignCenter, 0),
		})
	}
	return ms
}

func helpers(cfg PageConfig, pr *message.Printer, left, top int) []Text {
	var lines []string
	if left > 0 {
		lines = append(lines, pr.Sprintf(msgLeftHelper, left))
	}
	if top > 0 {
		lines = append(lines, pr.Sprintf(msgTopHelper, top))
	}
	out := make([]Text, len(lines))
	base := cfg.Height - helperFromBot
	for i, s := range lines {
		out[i] = Text{Text: s, At: geom.Pt(helperX, base+float64(i)*helperSpacing), Style: HelperStyle}
	}
	return out
}

func scaleSquare(cfg PageConfig, pr *message.Printer) *ScaleSquare {
	size := cfg.ScaleSquare
	x, y := scaleX, scaleY
	right := x + size
	half := scaleCap / 2
	dim := pr.Sprintf(msgScaleLength, size/10)

	return &ScaleSquare{
		Square: geom.XYWH(x, y, size, size),
		Caps: []geom.Line{
			{P1: geom.Pt(x, y-half), P2: geom.Pt(x, y+half)},
			{P1: geom.Pt(right, y-half), P2: geom.Pt(right, y+half)},
			{P1: geom.Pt(right-half, y), P2: geom.Pt(right+half, y)},
			{P1: geom.Pt(right-half, y+size), P2: geom.Pt(right+half, y+size)},
		},
		Labels: []Text{
			{Text: dim, At: geom.Pt(x+size/2, y-scaleLabelGap), Align: AlignCenter, Style: DimensionStyle},
			{Text: dim, At: geom.Pt(right+scaleLabelGap+3, y+size/2), Rotate: 90, Style: DimensionStyle},
			{Text: pr.Sprintf(msgScaleTitle), At: geom.Pt(x, y+size+scaleTitleGap), Style: ScaleTitleStyle},
			{Text: pr.Sprintf(msgScaleHint), At: geom.Pt(x, y+size+scaleTitleGap+scaleHintGap), Style: ScaleHintStyle},
		},
	}
}
