// internal/utils/math.go
package utils

import "math"

// NormalizeAngle maps any finite angle into [0, 2π) with a single modulo,
// so huge inputs cost the same as small ones.
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(math.Mod(angle, 2*math.Pi)+2*math.Pi, 2*math.Pi)
	// Mod can round a tiny negative input up to exactly 2π.
	if a >= 2*math.Pi {
		return 0
	}
	return a
}

// AngleDiff returns the signed shortest rotation from `from` to `to`, in (-π, π].
func AngleDiff(from, to float64) float64 {
	d := NormalizeAngle(to) - NormalizeAngle(from)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// LerpAngle interpolates between two angles along the shortest arc.
func LerpAngle(from, to, t float64) float64 {
	return NormalizeAngle(from + AngleDiff(from, to)*t)
}
