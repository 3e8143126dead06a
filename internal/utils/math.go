// internal/utils/math.go
package utils

import "math"

// NormalizeAngle maps angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// ArcSweep returns the clockwise sweep from start to end the way a canvas
// arc draws it: a difference of a full turn or more is a full circle,
// anything else wraps into [0, 2π).
func ArcSweep(start, end float64) float64 {
	d := end - start
	if d >= 2*math.Pi {
		return 2 * math.Pi
	}
	return NormalizeAngle(d)
}
