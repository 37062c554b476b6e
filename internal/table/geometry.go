package table

import "math"

// Default player area size, matching the client renderer.
const (
	PlayerAreaWidth  = 300
	PlayerAreaHeight = 200
)

// Dimensions is the measured size of the table container. It is injected by
// the hosting shell (configuration or a resize notification); the view core
// never measures anything itself.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SeatPosition maps a seat index to its anchor point on the table ellipse.
// Seat 0 (the viewer) is bottom center; seats advance clockwise around the
// table. The seat index itself is purely combinatorial; pixel geometry is
// applied only here, at the presentation boundary.
func SeatPosition(seat int, totalSeats int, dims Dimensions) Position {
	if totalSeats <= 0 {
		return Position{}
	}

	cx := float64(dims.Width) / 2
	cy := float64(dims.Height) / 2
	rx := math.Max(0, (float64(dims.Width)-PlayerAreaWidth)/2)
	ry := math.Max(0, (float64(dims.Height)-PlayerAreaHeight)/2)

	// Angle 90 degrees puts seat 0 at the bottom of the container
	// (y grows downward in screen coordinates).
	angle := math.Pi/2 + 2*math.Pi*float64(seat)/float64(totalSeats)
	x := cx + rx*math.Cos(angle)
	y := cy + ry*math.Sin(angle)
	return Position{X: int(math.Round(x)), Y: int(math.Round(y))}
}
