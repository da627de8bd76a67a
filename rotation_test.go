package landingsim

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestR2(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	r2 := R2(x)
	if r2.At(0, 0) != r2.At(1, 1) || r2.At(1, 1) != c {
		t.Fatal("expected R2 cosines misplaced")
	}
	if r2.At(0, 1) != -r2.At(1, 0) || r2.At(0, 1) != s {
		t.Fatal("expected R2 sines misplaced")
	}
	if vx, vy := MxV22(R2(0), 3, 4); vx != 3 || vy != 4 {
		t.Fatal("R2(0) is not the identity")
	}
	// Rotating the frame by 90 degrees.
	vx, vy := MxV22(R2(math.Pi/2), 1, 0)
	if !floats.EqualApprox([]float64{vx, vy}, []float64{0, -1}, 1e-15) {
		t.Fatalf("(%f, %f)", vx, vy)
	}
}

func TestLocalVelocity(t *testing.T) {
	c := testCraft(t, "terrier")
	R := c.Body.Radius()
	for _, tc := range []struct{ x, y, vx, vy, vert, horiz float64 }{
		{0, R, 0, -5, -5, 0},
		{0, R, -3, 0, 0, 3},
		{R, 0, 2, 0, 2, 0},
		{R, 0, 0, 4, 0, 4},
		{-R, -R, 1, 1, -math.Sqrt2, 0},
		{0, 0, 1, 2, 1, 2},
	} {
		c.SetPosition(tc.x, tc.y)
		c.SetVelocity(tc.vx, tc.vy)
		vert, horiz := c.LocalVelocity()
		if !floats.EqualWithinAbs(vert, tc.vert, 1e-12) || !floats.EqualWithinAbs(horiz, tc.horiz, 1e-12) {
			t.Fatalf("%+v: (%f, %f)", tc, vert, horiz)
		}
	}
}
