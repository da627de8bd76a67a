package landingsim

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestClampRotation(t *testing.T) {
	for _, tc := range []struct{ in, exp float64 }{
		{10, 10},
		{359.5, 359.5},
		{360, 0},
		{370, 10},
		{0, 360}, // legacy wrap rule
		{-10, 350},
		{725, 365},  // single wrap only
		{-400, -40}, // single wrap only
	} {
		if got := clampRotation(tc.in); got != tc.exp {
			t.Fatalf("clampRotation(%f) = %f, expected %f", tc.in, got, tc.exp)
		}
	}
}

func TestAngles(t *testing.T) {
	for i := -360.0; i <= 360; i += 0.5 {
		if !floats.EqualWithinAbs(Rad2deg(Deg2rad(i)), i, 1e-12) {
			t.Fatalf("%f deg does not survive a round trip", i)
		}
	}
	if !floats.EqualWithinAbs(Deg2rad(180), math.Pi, 1e-15) {
		t.Fatal("180 deg != π")
	}
}

func TestNormUnit(t *testing.T) {
	if norm2(3, 4) != 5 {
		t.Fatal("|(3, 4)| != 5")
	}
	if x, y := unit2(0, 0); x != 0 || y != 0 {
		t.Fatal("unit of nil vector is not nil")
	}
	x, y := unit2(-3, 4)
	if !floats.EqualWithinAbs(x, -0.6, 1e-15) || !floats.EqualWithinAbs(y, 0.8, 1e-15) {
		t.Fatalf("invalid unit vector (%f, %f)", x, y)
	}
}
