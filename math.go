package landingsim

import (
	"math"

	"github.com/gonum/floats"
)

const (
	deg2rad = math.Pi / 180
	// G is the gravitational constant in m^3/(kg s^2).
	G = 6.67408e-11
)

// norm2 returns the norm of a given 2D vector.
func norm2(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// unit2 returns the unit vector of a given 2D vector, or the nil vector.
func unit2(x, y float64) (float64, float64) {
	n := norm2(x, y)
	if floats.EqualWithinAbs(n, 0, 1e-12) {
		return 0, 0
	}
	return x / n, y / n
}

// Deg2rad converts degrees to radians. Unlike the angles of the craft, this does not wrap.
func Deg2rad(a float64) float64 {
	return a * deg2rad
}

// Rad2deg converts radians to degrees.
func Rad2deg(a float64) float64 {
	return a / deg2rad
}

// clampRotation wraps an angle in degrees into [0, 360) with a single wrap only.
// A value of exactly 0 is reported as 360 (matching the legacy wrap rule), and
// anything beyond one full turn is left partially normalized.
func clampRotation(deg float64) float64 {
	if deg >= 360 {
		deg -= 360
	} else if deg <= 0 {
		deg += 360
	}
	return deg
}
