package landingsim

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// R2 is the planar rotation of the frame by x radians.
func R2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(2, 2, []float64{c, s, -s, c})
}

// MxV22 multiplies a matrix with a 2D vector. Note that there is no dimension check!
func MxV22(m *mat64.Dense, x, y float64) (float64, float64) {
	var rVec mat64.Vector
	rVec.MulVec(m, mat64.NewVector(2, []float64{x, y}))
	return rVec.At(0, 0), rVec.At(1, 0)
}

// localFrame returns the rotation from the inertial frame to the local (radial, tangential) frame.
func (c *Craft) localFrame() *mat64.Dense {
	ux, uy := unit2(c.xPosition, c.yPosition)
	if ux == 0 && uy == 0 {
		return R2(0)
	}
	return mat64.NewDense(2, 2, []float64{ux, uy, -uy, ux})
}

// LocalVelocity returns the vertical (radial, positive away from the body) and horizontal
// (tangential, positive counterclockwise) components of the velocity.
func (c *Craft) LocalVelocity() (vertical, horizontal float64) {
	return MxV22(c.localFrame(), c.xVelocity, c.yVelocity)
}
