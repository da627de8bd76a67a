package landingsim

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestCelestialBodyMassThenRadius(t *testing.T) {
	for _, exp := range []struct{ mass, radius float64 }{
		{7.346e22, 1.7374e6},
		{3.3010e23, 2.4397e6},
		{1.303e22, 1.188e6},
		{5.972e24, 6.371e6},
		{1, 1},
	} {
		b := &CelestialBody{}
		b.SetRadius(exp.radius)
		b.SetMass(exp.mass)
		g := G * exp.mass / (exp.radius * exp.radius)
		if !floats.EqualWithinRel(b.SurfaceGravity(), g, 1e-12) {
			t.Fatalf("g=%f expected %f", b.SurfaceGravity(), g)
		}
		if b.Mass() != exp.mass || b.Radius() != exp.radius {
			t.Fatal("mass or radius was recomputed")
		}
	}
}

func TestCelestialBodyPrecedence(t *testing.T) {
	M, R := 7.346e22, 1.7374e6
	b := &CelestialBody{}
	// Single field: nothing to derive.
	b.SetMass(M)
	if b.Radius() != 0 || b.SurfaceGravity() != 0 {
		t.Fatal("setting only the mass derived something")
	}
	b.SetRadius(R)
	g0 := b.SurfaceGravity()
	if !floats.EqualWithinAbs(g0, 1.624, 1e-3) {
		t.Fatalf("Moon gravity is %f", g0)
	}

	// Re-setting the mass refreshes the gravity only.
	b.SetMass(2 * M)
	if b.Radius() != R || !floats.EqualWithinRel(b.SurfaceGravity(), 2*g0, 1e-12) {
		t.Fatalf("mass change: R=%f g=%f", b.Radius(), b.SurfaceGravity())
	}

	// Re-setting the radius refreshes the gravity only.
	b.SetRadius(2 * R)
	if b.Mass() != 2*M || !floats.EqualWithinRel(b.SurfaceGravity(), g0/2, 1e-12) {
		t.Fatalf("radius change: M=%f g=%f", b.Mass(), b.SurfaceGravity())
	}

	// Re-setting the gravity refreshes the radius only (mass is known).
	b.SetSurfaceGravity(2 * g0)
	if b.Mass() != 2*M || !floats.EqualWithinRel(b.Radius(), R, 1e-12) {
		t.Fatalf("gravity change: M=%f R=%f", b.Mass(), b.Radius())
	}
}

func TestCelestialBodyFromGravity(t *testing.T) {
	g, R := 1.625, 1.7374e6
	// Gravity then radius: the mass is derived.
	b := &CelestialBody{}
	b.SetSurfaceGravity(g)
	b.SetRadius(R)
	if !floats.EqualWithinRel(b.Mass(), g*R*R/G, 1e-12) {
		t.Fatalf("M=%e", b.Mass())
	}
	// Gravity then mass: the radius is derived.
	b = &CelestialBody{}
	b.SetSurfaceGravity(g)
	b.SetMass(7.346e22)
	if !floats.EqualWithinRel(b.Radius(), math.Sqrt(G*7.346e22/g), 1e-12) {
		t.Fatalf("R=%f", b.Radius())
	}
	// Radius then gravity: the mass is derived.
	b = &CelestialBody{}
	b.SetRadius(R)
	b.SetSurfaceGravity(g)
	if !floats.EqualWithinRel(b.SurfaceGravity(), G*b.Mass()/(R*R), 1e-12) {
		t.Fatal("inconsistent triple")
	}
}

func TestCelestialBodyCatalog(t *testing.T) {
	for _, name := range []string{"Moon", "mercury", "PLUTO"} {
		b, err := CelestialBodyFromString(name)
		if err != nil {
			t.Fatal(err)
		}
		if !floats.EqualWithinRel(b.SurfaceGravity(), G*b.Mass()/(b.Radius()*b.Radius()), 1e-12) {
			t.Fatalf("%s is inconsistent", b)
		}
	}
	if _, err := CelestialBodyFromString("Vesta"); err == nil {
		t.Fatal("expected an error for an unknown body")
	}
	// Fresh copies.
	a, _ := CelestialBodyFromString("moon")
	a.SetMass(1)
	if Moon().Mass() == 1 {
		t.Fatal("catalog body was modified")
	}
}

func TestCustomBody(t *testing.T) {
	if _, err := NewCustomBody("lonely", 1e22, 0, 0); err == nil {
		t.Fatal("a single input should not be enough")
	}
	b, err := NewCustomBody("moonish", 7.346e22, 0, 1.625)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinRel(b.Radius(), math.Sqrt(G*7.346e22/1.625), 1e-12) {
		t.Fatalf("R=%f", b.Radius())
	}
	// Negative inputs are taken as magnitudes.
	b, err = NewCustomBody("neg", -7.346e22, -1.7374e6, 0)
	if err != nil {
		t.Fatal(err)
	}
	if b.Mass() < 0 || b.Radius() < 0 {
		t.Fatal("negative values kept")
	}
}

func TestBodyFieldString(t *testing.T) {
	if massField.String() != "mass" || radiusField.String() != "radius" || gravityField.String() != "surfaceGravity" {
		t.Fatal("invalid body field names")
	}
	assertPanic(t, func() {
		_ = bodyField(0).String()
	})
}
