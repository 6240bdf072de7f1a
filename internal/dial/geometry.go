// Package dial draws the circular progress indicator of the countdown.
//
// Angles are in degrees, measured clockwise from the positive x axis with
// the y axis pointing down, which is how both terminal rows and most 2-D
// canvases are laid out.
package dial

import "math"

const (
	// StartAngle is where the track begins (lower left).
	StartAngle = -215.0
	// SweepAngle is the extent of the full track.
	SweepAngle = 250.0
)

// Point is a position in drawing coordinates.
type Point struct {
	X, Y float64
}

// clampFraction maps f into [0,1]. NaN maps to 0.
func clampFraction(f float64) float64 {
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// ActiveSweep returns the sweep of the active arc for a progress fraction.
func ActiveSweep(fraction float64) float64 {
	return SweepAngle * clampFraction(fraction)
}

// HandleAngle returns the angle of the active arc's endpoint.
func HandleAngle(fraction float64) float64 {
	return StartAngle + ActiveSweep(fraction)
}

// HandlePosition places the handle for a widget of the given size: on the
// circle centred in the widget whose radius is half the widget's width.
func HandlePosition(width, height, fraction float64) Point {
	beta := HandleAngle(fraction) * math.Pi / 180
	r := width / 2
	return Point{
		X: width/2 + math.Cos(beta)*r,
		Y: height/2 + math.Sin(beta)*r,
	}
}

// trackOffset returns how far along the track (in degrees, from StartAngle)
// the direction angle lies, in [0,360).
func trackOffset(angle float64) float64 {
	off := math.Mod(angle-StartAngle, 360)
	if off < 0 {
		off += 360
	}
	return off
}
