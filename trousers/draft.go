package trousers

import "github.com/gogpu/tailor/geom"

// LabelOffset is how far above the hip line the piece labels sit.
const LabelOffset = 5.0

// Guide is a construction line drawn on one piece. Guides never take part
// in seam allowance or bounds.
type Guide struct {
	Piece Piece
	Name  string
	Line  geom.Line
}

// Level is a horizontal construction line spanning both pieces.
type Level struct {
	Name string
	Y    float64
}

// Marker is a construction dot.
type Marker struct {
	Piece Piece
	At    geom.Point
}

// Label is a piece caption.
type Label struct {
	Piece Piece
	Text  string
	At    geom.Point
}

// Draft is a fully drafted trouser block in piece coordinates. The back
// piece is drafted over the front; callers lay the pieces out.
type Draft struct {
	Frame    Frame
	Controls Controls
	Front    Outline
	Back     Outline
	Levels   []Level
	Guides   []Guide
	Markers  []Marker
	Labels   []Label
}

// NewDraft solves the frame, parameterises the curves and builds both
// outlines. It fails only when [Solve] fails.
func NewDraft(m Measurements, e Ease, r CurveRatios) (*Draft, error) {
	f, err := Solve(m, e)
	if err != nil {
		return nil, err
	}
	c := Parameterize(f, r)
	d := &Draft{
		Frame:    f,
		Controls: c,
		Front:    BuildFront(f, c),
		Back:     BuildBack(f, c),
	}
	d.Levels = []Level{
		{Name: "hip", Y: f.YHip},
		{Name: "crotch", Y: f.YCrotch},
		{Name: "knee", Y: f.YKnee},
		{Name: "midrise", Y: f.YMidrise},
	}
	d.Guides = guides(f, c)
	d.Markers = []Marker{
		{Piece: Back, At: c.BackInseamKnee},
		{Piece: Back, At: c.BackSideKnee},
	}
	d.Labels = []Label{
		{Piece: Front, Text: "FRONT", At: geom.Pt(f.XCenter/2, f.YHip-LabelOffset)},
		{Piece: Back, Text: "BACK", At: geom.Pt(f.XCenter+(f.FrameWidth-f.XCenter)/2, f.YHip-LabelOffset)},
	}
	return d, nil
}

func guide(p Piece, name string, p1, p2 geom.Point) Guide {
	return Guide{Piece: p, Name: name, Line: geom.Line{P1: p1, P2: p2}}
}

func guides(f Frame, c Controls) []Guide {
	pt := geom.Pt
	return []Guide{
		guide(Front, "frame", pt(0, f.YWaist), pt(0, f.FrameHeight)),
		guide(Front, "frame", pt(0, f.YWaist), pt(f.XCenter, f.YWaist)),
		guide(Front, "center_line", pt(f.XCenter, f.YLength), pt(f.XCenter, f.YWaist)),
		guide(Front, "crotch_extension", pt(f.FrontCrotchX, f.YCrotch), pt(f.XCenter, f.YCrotch)),
		guide(Front, "creaseline", pt(f.FrontCreaseX, f.FrontCreaseY), pt(f.FrontCreaseX, f.YLength)),
		guide(Front, "waist_to_hip", pt(f.FrontWaistEndX, 0), pt(f.XCenter, f.YHip)),
		guide(Front, "inseam", pt(f.HemLeftX, f.YLength), pt(f.FrontCrotchX, f.YCrotch)),
		guide(Front, "knee", pt(0, f.YKnee), pt(f.KneeSeamX, f.YKnee)),

		guide(Back, "frame", pt(f.FrameWidth, 0), pt(f.FrameWidth, f.YCrotch)),
		guide(Back, "frame", pt(f.XCenter, 0), pt(f.FrameWidth, 0)),
		guide(Back, "center_line", pt(f.XCenter, f.YLength), pt(f.XCenter, f.YWaist)),
		guide(Back, "crotch_extension", pt(f.XCenter, f.YCrotch), pt(f.BackCrotchX, f.YCrotch)),
		guide(Back, "creaseline", pt(f.BackCreaseX, f.BackCreaseY), pt(f.BackCreaseX, f.YLength)),
		guide(Back, "waist_to_hip", pt(f.BackWaistEndX, 0), pt(f.XCenter, f.YHip)),
		guide(Back, "seam_marker", c.BackHemLeft, c.BackInseamKnee),
		guide(Back, "seam_marker", c.BackHemRight, c.BackSideKnee),
	}
}
