package trousers

import "github.com/gogpu/tailor/geom"

// Controls holds the absolute construction points and Bézier control
// points of every seam curve. The ratio groups they come from are noted
// per block.
type Controls struct {
	// front_waist: anchor → P3 → waist end.
	FrontWaistCP2 geom.Point
	FrontWaistP3  geom.Point
	FrontWaistCP3 geom.Point

	// back_waist: back waist start → P3 → back waist end.
	BackWaistCP2 geom.Point
	BackWaistP3  geom.Point
	BackWaistCP3 geom.Point

	// crotch: crotch point → hip on the frame edge.
	FrontCrotchCP1 geom.Point
	FrontCrotchCP2 geom.Point
	BackCrotchCP1  geom.Point
	BackCrotchCP2  geom.Point

	// BackDiagonalEnd is where the raised back centre line meets the back
	// waistline.
	BackDiagonalEnd geom.Point

	// front_inseam: knee → front crotch point.
	FrontInseamKnee geom.Point
	FrontInseamCP1  geom.Point
	FrontInseamCP2  geom.Point

	// front_side: knee → hip peak → waist end.
	FrontSideKnee    geom.Point
	FrontSidePeak    geom.Point
	FrontSideSeg1CP1 geom.Point
	FrontSideSeg1CP2 geom.Point
	FrontSideSeg2CP1 geom.Point
	FrontSideSeg2CP2 geom.Point

	BackHemLeft  geom.Point
	BackHemRight geom.Point

	// back_inseam: knee → hip peak → back waist end.
	BackInseamKnee    geom.Point
	BackInseamHipPeak geom.Point
	BackInseamSeg1CP1 geom.Point
	BackInseamSeg1CP2 geom.Point
	BackInseamSeg2CP1 geom.Point
	BackInseamSeg2CP2 geom.Point

	// back_side: knee → mid thigh → back crotch point.
	BackSideKnee     geom.Point
	BackSideMidThigh geom.Point
	BackSideSeg1CP2  geom.Point
	BackSideSeg2CP1  geom.Point
}

// Parameterize turns curve ratios into absolute control points for the
// frame f.
//
// Every control point is an affine combination of two anchors solved by
// [Solve]. Curves that run up the page subtract their Y term; the sign is
// fixed per curve and must not be generalised.
func Parameterize(f Frame, r CurveRatios) Controls {
	var c Controls
	e := f.Ease
	l := f.WaistLength
	a := f.FrontWaistAnchor

	c.FrontWaistCP2 = geom.Pt(a.X+r.FrontWaistCP2X*l, a.Y+r.FrontWaistCP2Y*l)
	c.FrontWaistP3 = geom.Pt(a.X+r.FrontWaistP3X*l, a.Y)
	c.FrontWaistCP3 = geom.Pt(a.X+r.FrontWaistCP3X*l, a.Y+r.FrontWaistCP3Y*l)

	bx, by := f.BackWaistStartX, f.BackWaistRise
	c.BackWaistCP2 = geom.Pt(bx+r.BackWaistCP2X*l, by+r.BackWaistCP2Y*l)
	c.BackWaistP3 = geom.Pt(bx+r.BackWaistP3X*l, by+r.BackWaistP3Y*l)
	c.BackWaistCP3 = geom.Pt(bx+r.BackWaistCP3X*l, by+r.BackWaistCP3Y*l)

	c.FrontCrotchCP1 = geom.Pt(f.FrontCrotchX+r.FrontCrotchHTension*(0-f.FrontCrotchX), f.YCrotch)
	c.FrontCrotchCP2 = geom.Pt(0, f.YCrotch-r.FrontCrotchVTension*(f.YCrotch-f.YHip))
	c.BackCrotchCP1 = geom.Pt(f.BackCrotchX+r.BackCrotchHTension*(f.FrameWidth-f.BackCrotchX), f.YCrotch)
	c.BackCrotchCP2 = geom.Pt(f.FrameWidth, f.YCrotch-r.BackCrotchVTension*(f.YCrotch-f.YHip))

	c.BackDiagonalEnd = geom.Pt(f.BackWaistStartX, f.BackWaistRise)

	// Front inseam runs from the knee up to the front crotch point.
	k := geom.Pt(f.FrontCreaseX-f.KneeLine, f.YKnee)
	c.FrontInseamKnee = k
	c.FrontInseamCP1 = geom.Pt(k.X+r.FrontInseamCP1X*(f.FrontCrotchX-k.X), f.YKnee-r.FrontInseamCP1Y*(f.YKnee-f.YCrotch))
	c.FrontInseamCP2 = geom.Pt(k.X+r.FrontInseamCP2X*(f.FrontCrotchX-k.X), f.YKnee-r.FrontInseamCP2Y*(f.YKnee-f.YCrotch))

	// Front sideseam: knee to hip peak, then hip peak to waist end.
	sk := geom.Pt(f.FrontCreaseX+f.KneeLine, f.YKnee)
	pk := geom.Pt(f.XCenter+e.SideseamHipEase, f.YHip)
	c.FrontSideKnee = sk
	c.FrontSidePeak = pk
	c.FrontSideSeg1CP1 = geom.Pt(sk.X+r.FrontSideSeg1CP1X*(pk.X-sk.X), sk.Y-r.FrontSideSeg1CP1Y*(sk.Y-pk.Y))
	c.FrontSideSeg1CP2 = geom.Pt(sk.X+r.FrontSideSeg1CP2X*(pk.X-sk.X), sk.Y-r.FrontSideSeg1CP2Y*(sk.Y-pk.Y))
	c.FrontSideSeg2CP1 = geom.Pt(pk.X-r.FrontSideSeg2CP1X*(pk.X-f.FrontWaistEndX), pk.Y-r.FrontSideSeg2CP1Y*(pk.Y-0))
	c.FrontSideSeg2CP2 = geom.Pt(pk.X-r.FrontSideSeg2CP2X*(pk.X-f.FrontWaistEndX), pk.Y-r.FrontSideSeg2CP2Y*(pk.Y-0))

	c.BackHemLeft = geom.Pt(f.BackCreaseX-f.BackHem/2, f.YLength)
	c.BackHemRight = geom.Pt(f.BackCreaseX+f.BackHem/2, f.YLength)
	backKnee := f.KneeLine + e.BackKneeEase

	// The back leg edge nearest the centre line, knee up to the back waist end.
	bik := geom.Pt(f.BackCreaseX-backKnee, f.YKnee)
	hp := geom.Pt(f.XCenter+e.BackInseamHipOffsetX, f.YHip+e.BackInseamHipOffsetY)
	c.BackInseamKnee = bik
	c.BackInseamHipPeak = hp
	c.BackInseamSeg1CP1 = geom.Pt(bik.X-r.BackInseamSeg1CP1X*(bik.X-hp.X), f.YKnee-r.BackInseamSeg1CP1Y*(f.YKnee-hp.Y))
	c.BackInseamSeg1CP2 = geom.Pt(bik.X-r.BackInseamSeg1CP2X*(bik.X-hp.X), f.YKnee-r.BackInseamSeg1CP2Y*(f.YKnee-hp.Y))
	c.BackInseamSeg2CP1 = geom.Pt(hp.X+r.BackInseamSeg2CP1X*(f.BackWaistEndX-hp.X), hp.Y-r.BackInseamSeg2CP1Y*(hp.Y-0))
	c.BackInseamSeg2CP2 = geom.Pt(hp.X+r.BackInseamSeg2CP2X*(f.BackWaistEndX-hp.X), hp.Y-r.BackInseamSeg2CP2Y*(hp.Y-0))

	// The back leg edge on the crotch side, knee up to the back crotch point.
	bsk := geom.Pt(f.BackCreaseX+backKnee, f.YKnee)
	mt := geom.Pt(bsk.X+e.BackSideseamThighOffsetX, f.YKnee-e.BackSideseamThighOffsetY)
	c.BackSideKnee = bsk
	c.BackSideMidThigh = mt
	c.BackSideSeg1CP2 = geom.Pt(bsk.X+r.BackSideSeg1CP2X*(mt.X-bsk.X), f.YKnee-r.BackSideSeg1CP2Y*(f.YKnee-mt.Y))
	c.BackSideSeg2CP1 = geom.Pt(mt.X+r.BackSideSeg2CP1X*(f.BackCrotchX-mt.X), mt.Y-r.BackSideSeg2CP1Y*(mt.Y-f.YCrotch))

	return c
}
