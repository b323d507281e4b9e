package tailor

import (
	"image/color"

	"github.com/gogpu/tailor/geom"
	"github.com/gogpu/tailor/trousers"
)

// ItemType identifies the type of a drawing item.
type ItemType uint8

const (
	ItemSeam      ItemType = iota // Outline edges of one seam
	ItemAllowance                 // Seam allowance polygon
	ItemGuide                     // Construction line
	ItemMarker                    // Construction dot
	ItemLabel                     // Piece caption
)

var itemTypeNames = [...]string{
	ItemSeam:      "Seam",
	ItemAllowance: "Allowance",
	ItemGuide:     "Guide",
	ItemMarker:    "Marker",
	ItemLabel:     "Label",
}

// String returns the string representation of an ItemType.
func (t ItemType) String() string {
	if int(t) < len(itemTypeNames) {
		return itemTypeNames[t]
	}
	return "Unknown"
}

// Item is one drawing instruction. Items are in sheet coordinates
// (internal units) and are painted in order.
type Item interface {
	// Type returns the ItemType for this item.
	Type() ItemType
}

// SeamItem strokes a run of consecutive outline edges that share a seam
// and a curve section.
type SeamItem struct {
	Piece    trousers.Piece
	Seam     trousers.Seam
	Section  trousers.CurveGroup
	Segments []geom.Segment
}

// Type implements Item.
func (SeamItem) Type() ItemType { return ItemSeam }

// AllowanceItem strokes a closed seam allowance polygon.
type AllowanceItem struct {
	Piece  trousers.Piece
	Points []geom.Point
}

// Type implements Item.
func (AllowanceItem) Type() ItemType { return ItemAllowance }

// GuideItem strokes a construction line. Levels span both pieces and
// leave Piece unset.
type GuideItem struct {
	Piece trousers.Piece
	Level bool
	Name  string
	Line  geom.Line
}

// Type implements Item.
func (GuideItem) Type() ItemType { return ItemGuide }

// MarkerItem fills a construction dot.
type MarkerItem struct {
	At     geom.Point
	Radius float64
}

// Type implements Item.
func (MarkerItem) Type() ItemType { return ItemMarker }

// LabelItem draws centred text with its baseline at At.
type LabelItem struct {
	Piece trousers.Piece
	Text  string
	At    geom.Point
	Size  float64
}

// Type implements Item.
func (LabelItem) Type() ItemType { return ItemLabel }

// Stroke describes how an item is painted.
type Stroke struct {
	Color color.NRGBA
	Width float64
	// Dash alternates dash and gap lengths; nil is solid.
	Dash []float64
}

// Styles of every item type.
var (
	SeamStroke      = Stroke{Color: color.NRGBA{A: 0xff}, Width: 2}
	GuideStroke     = Stroke{Color: color.NRGBA{R: 0xb2, G: 0xb2, B: 0xb2, A: 0xff}, Width: 1, Dash: []float64{1, 1}}
	AllowanceStroke = Stroke{Color: color.NRGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}, Width: 1, Dash: []float64{4, 2}}
	MarkerFill      = color.NRGBA{R: 0xff, B: 0xff, A: 0xff}
	LabelFill       = color.NRGBA{A: 0x80}
)

// StrokeFor returns the stroke used for items of type t.
func StrokeFor(t ItemType) Stroke {
	switch t {
	case ItemSeam:
		return SeamStroke
	case ItemAllowance:
		return AllowanceStroke
	case ItemGuide:
		return GuideStroke
	}
	return Stroke{}
}

const (
	markerRadius = 2.0
	labelSize    = 11.0
)

// Drawing returns the draw instructions for the whole sheet: front
// allowance, levels, front guides and seams, then the same for the back
// piece, then markers and labels.
func (p *Pattern) Drawing() []Item {
	d := p.Draft
	var items []Item

	if p.FrontAllowance != nil {
		items = append(items, AllowanceItem{Piece: trousers.Front, Points: p.FrontAllowance})
	}

	// Levels run from the front crotch point to the laid out back crotch
	// point.
	x1, x2 := d.Frame.FrontCrotchX, d.Frame.BackCrotchX+p.BackShift
	for _, l := range d.Levels {
		items = append(items, GuideItem{Level: true, Name: l.Name, Line: geom.Line{P1: geom.Pt(x1, l.Y), P2: geom.Pt(x2, l.Y)}})
	}

	items = p.appendGuides(items, trousers.Front, 0)
	items = appendSeams(items, p.Front)

	if p.BackAllowance != nil {
		items = append(items, AllowanceItem{Piece: trousers.Back, Points: p.BackAllowance})
	}
	items = p.appendGuides(items, trousers.Back, p.BackShift)
	items = appendSeams(items, p.Back)

	for _, m := range d.Markers {
		items = append(items, MarkerItem{At: p.place(m.Piece, m.At), Radius: markerRadius})
	}
	for _, l := range d.Labels {
		items = append(items, LabelItem{Piece: l.Piece, Text: l.Text, At: p.place(l.Piece, l.At), Size: labelSize})
	}
	return items
}

// place moves a drafting point of piece pc to sheet coordinates.
func (p *Pattern) place(pc trousers.Piece, pt geom.Point) geom.Point {
	if pc == trousers.Back {
		return pt.Add(geom.Pt(p.BackShift, 0))
	}
	return pt
}

func (p *Pattern) appendGuides(items []Item, pc trousers.Piece, dx float64) []Item {
	for _, g := range p.Draft.Guides {
		if g.Piece != pc {
			continue
		}
		items = append(items, GuideItem{Piece: pc, Name: g.Name, Line: g.Line.Translate(dx, 0).(geom.Line)})
	}
	return items
}

// appendSeams groups consecutive edges with the same seam and section.
func appendSeams(items []Item, o trousers.Outline) []Item {
	var cur *SeamItem
	for _, e := range o.Edges {
		if cur != nil && cur.Seam == e.Seam && cur.Section == e.Section {
			cur.Segments = append(cur.Segments, e.Segment)
			continue
		}
		if cur != nil {
			items = append(items, *cur)
		}
		cur = &SeamItem{Piece: o.Piece, Seam: e.Seam, Section: e.Section, Segments: []geom.Segment{e.Segment}}
	}
	if cur != nil {
		items = append(items, *cur)
	}
	return items
}
