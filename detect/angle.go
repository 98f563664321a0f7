// Package detect holds the event detectors that run over derived scalar
// signals from a finished trajectory: a hysteresis based repetition counter
// and a stage detector for crouch, launch, flight and landing.
package detect

import "math"

// Angle returns the angle in degrees at vertex (bx,by) formed by the points
// (ax,ay) and (cx,cy), folded into [0,180]
func Angle(ax, ay, bx, by, cx, cy float64) float64 {

	radians := math.Atan2(cy-by, cx-bx) - math.Atan2(ay-by, ax-bx)
	angle := math.Abs(radians * 180.0 / math.Pi)

	if angle > 180.0 {
		angle = 360.0 - angle
	}

	return angle
}
