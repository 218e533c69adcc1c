package app

import "rio-delta/internal/core"

// ViewportToWorld converts viewport pixel coordinates into world
// coordinates for the given frame. Pure; the scene only ever consumes
// already-converted world coordinates.
func ViewportToWorld(frame core.Frame, px, py float64, viewW, viewH int) (float64, float64) {
	if viewW <= 0 || viewH <= 0 {
		return 0, 0
	}
	x := frame.Width * px / float64(viewW)
	y := frame.Top - (frame.Top-frame.Bottom)*py/float64(viewH)
	return x, y
}
