package pitch

import (
	"image"

	"github.com/fogleman/gg"
)

// The pitch is drawn in opta coordinates: both axes run 0..100 with the origin at
// the home team's left corner, the same convention the tracking provider emits.
// Dimensions below are the opta projections of a 105x68m pitch.
const (
	canvasWidth  = 1280
	canvasHeight = 832

	// margins around the plotted pitch; the bottom one leaves room for the
	// clock/period overlay.
	marginX      = 80.0
	marginTop    = 64.0
	marginBottom = 104.0

	penaltyAreaDepth = 17.0
	penaltyAreaTop   = 78.9
	penaltyAreaLow   = 21.1
	sixYardDepth     = 5.8
	sixYardTop       = 63.2
	sixYardLow       = 36.8
	penaltySpotX     = 11.5
	goalTop          = 55.8
	goalLow          = 44.2

	// centre circle radius, metres over a 105m length mapped to plot units.
	centreCircleRadius = 9.15 / 105.0 * 100.0

	backgroundColor = "#ffffff"
	lineColor       = "#5b5b5b"
	homeColor       = "#7f63b8"
	awayColor       = "#b94b75"
	ballColor       = "#ffffff"
	edgeColor       = "#000000"
	textColor       = "#1a1a1a"
)

var (
	plotWidth  = float64(canvasWidth) - 2*marginX
	plotHeight = float64(canvasHeight) - marginTop - marginBottom
)

// px maps an opta x coordinate to a canvas x coordinate.
func px(x float64) float64 {
	return marginX + x/100.0*plotWidth
}

// py maps an opta y coordinate to a canvas y coordinate. Opta y grows away from the
// camera, canvas y grows downward, so the axis flips.
func py(y float64) float64 {
	return marginTop + (100.0-y)/100.0*plotHeight
}

// scale converts an opta x-axis distance to pixels.
func scale(d float64) float64 {
	return d / 100.0 * plotWidth
}

// drawPitch renders the static pitch background with the given title and returns it.
func drawPitch(title string) *image.RGBA {
	dc := gg.NewContext(canvasWidth, canvasHeight)

	dc.SetHexColor(backgroundColor)
	dc.Clear()

	dc.SetHexColor(lineColor)
	dc.SetLineWidth(2)

	// outline and halfway line
	dc.DrawRectangle(px(0), py(100), scale(100), plotHeight)
	dc.MoveTo(px(50), py(0))
	dc.LineTo(px(50), py(100))
	dc.Stroke()

	// centre circle and spot
	dc.DrawCircle(px(50), py(50), scale(centreCircleRadius))
	dc.Stroke()
	dc.DrawCircle(px(50), py(50), 3)
	dc.Fill()

	// penalty areas
	dc.DrawRectangle(px(0), py(penaltyAreaTop), scale(penaltyAreaDepth), py(penaltyAreaLow)-py(penaltyAreaTop))
	dc.DrawRectangle(px(100-penaltyAreaDepth), py(penaltyAreaTop), scale(penaltyAreaDepth), py(penaltyAreaLow)-py(penaltyAreaTop))
	dc.Stroke()

	// six-yard boxes
	dc.DrawRectangle(px(0), py(sixYardTop), scale(sixYardDepth), py(sixYardLow)-py(sixYardTop))
	dc.DrawRectangle(px(100-sixYardDepth), py(sixYardTop), scale(sixYardDepth), py(sixYardLow)-py(sixYardTop))
	dc.Stroke()

	// penalty spots
	dc.DrawCircle(px(penaltySpotX), py(50), 3)
	dc.DrawCircle(px(100-penaltySpotX), py(50), 3)
	dc.Fill()

	// goal lines
	dc.SetLineWidth(5)
	dc.MoveTo(px(0), py(goalTop))
	dc.LineTo(px(0), py(goalLow))
	dc.MoveTo(px(100), py(goalTop))
	dc.LineTo(px(100), py(goalLow))
	dc.Stroke()

	dc.SetHexColor(textColor)
	dc.DrawStringAnchored(title, canvasWidth/2, marginTop/2, 0.5, 0.5)

	return dc.Image().(*image.RGBA)
}
