package landingsim

import (
	"fmt"
	"math"
	"strings"
)

// Color is a display-only color (e.g. "#A9A9A9"). The physics never reads it.
type Color string

// bodyField identifies one of the three mutually-derived quantities of a CelestialBody.
type bodyField uint8

const (
	massField bodyField = 1 << iota
	radiusField
	gravityField
)

func (f bodyField) String() string {
	switch f {
	case massField:
		return "mass"
	case radiusField:
		return "radius"
	case gravityField:
		return "surfaceGravity"
	}
	panic("cannot stringify unknown body field")
}

// derivation says: if `known` is set, recompute `derived`.
type derivation struct {
	known, derived bodyField
}

// precedence lists, for each field being set, the candidate recomputations in order.
// Only the first one whose known field is set is applied.
var precedence = map[bodyField][2]derivation{
	massField:    {{radiusField, gravityField}, {gravityField, radiusField}},
	radiusField:  {{massField, gravityField}, {gravityField, massField}},
	gravityField: {{massField, radiusField}, {radiusField, massField}},
}

// CelestialBody is a spherical gravitating object. Its mass (kg), radius (m) and surface gravity (m/s^2)
// are linked by g = G*M/R^2. A zero field is considered unset.
type CelestialBody struct {
	Name           string
	Color          Color
	mass           float64
	radius         float64
	surfaceGravity float64
}

// NewCelestialBody returns a body with mass and radius set, hence a consistent surface gravity.
func NewCelestialBody(name string, mass, radius float64, color Color) *CelestialBody {
	b := &CelestialBody{Name: name, Color: color}
	b.SetMass(mass)
	b.SetRadius(radius)
	return b
}

// Mass returns the mass in kg.
func (b *CelestialBody) Mass() float64 { return b.mass }

// Radius returns the radius in meters.
func (b *CelestialBody) Radius() float64 { return b.radius }

// SurfaceGravity returns the surface gravity in m/s^2.
func (b *CelestialBody) SurfaceGravity() float64 { return b.surfaceGravity }

// GM returns μ in m^3/s^2.
func (b *CelestialBody) GM() float64 { return G * b.mass }

// SetMass sets the mass and refreshes at most one of the other fields.
func (b *CelestialBody) SetMass(m float64) {
	b.set(massField, m)
}

// SetRadius sets the radius and refreshes at most one of the other fields.
func (b *CelestialBody) SetRadius(r float64) {
	b.set(radiusField, r)
}

// SetSurfaceGravity sets the surface gravity and refreshes at most one of the other fields.
func (b *CelestialBody) SetSurfaceGravity(g float64) {
	b.set(gravityField, g)
}

// known returns the set of fields which are currently non-zero.
func (b *CelestialBody) known() (f bodyField) {
	if b.mass != 0 {
		f |= massField
	}
	if b.radius != 0 {
		f |= radiusField
	}
	if b.surfaceGravity != 0 {
		f |= gravityField
	}
	return
}

func (b *CelestialBody) set(field bodyField, val float64) {
	*b.field(field) = val
	known := b.known()
	for _, d := range precedence[field] {
		if known&d.known != 0 {
			b.recalculate(d.derived)
			return
		}
	}
}

func (b *CelestialBody) field(f bodyField) *float64 {
	switch f {
	case massField:
		return &b.mass
	case radiusField:
		return &b.radius
	case gravityField:
		return &b.surfaceGravity
	}
	panic(fmt.Errorf("unknown body field %d", f))
}

func (b *CelestialBody) recalculate(f bodyField) {
	switch f {
	case massField:
		b.mass = b.surfaceGravity * b.radius * b.radius / G
	case radiusField:
		b.radius = math.Sqrt(G * b.mass / b.surfaceGravity)
	case gravityField:
		b.surfaceGravity = G * b.mass / (b.radius * b.radius)
	}
}

// String implements the Stringer interface.
func (b *CelestialBody) String() string {
	return fmt.Sprintf("%s body (M=%.4e kg, R=%.1f m, g=%.3f m/s^2)", b.Name, b.mass, b.radius, b.surfaceGravity)
}

// NewCustomBody builds a body from user input. Zero means "not provided", and at least two of the
// three quantities are required. Fields are applied in mass, radius, gravity order.
func NewCustomBody(name string, mass, radius, surfaceGravity float64) (*CelestialBody, error) {
	provided := 0
	b := &CelestialBody{Name: name, Color: "#FFFFFF"}
	if mass != 0 {
		b.SetMass(math.Abs(mass))
		provided++
	}
	if radius != 0 {
		b.SetRadius(math.Abs(radius))
		provided++
	}
	if surfaceGravity != 0 {
		b.SetSurfaceGravity(math.Abs(surfaceGravity))
		provided++
	}
	if provided < 2 {
		return nil, fmt.Errorf("custom body '%s' needs at least two of mass, radius and surface gravity (got %d)", name, provided)
	}
	return b, nil
}

/* Definitions */

// Moon returns the default body.
func Moon() *CelestialBody {
	return NewCelestialBody("Moon", 0.07346e24, 1737.4e3, "#A9A9A9")
}

// Mercury is hot and has no air to slow anyone down.
func Mercury() *CelestialBody {
	return NewCelestialBody("Mercury", 0.33010e24, 2439.7e3, "#808080")
}

// Pluto is small, which makes it forgiving.
func Pluto() *CelestialBody {
	return NewCelestialBody("Pluto", 0.01303e24, 1188e3, "#A9A9A9")
}

// CelestialBodyFromString returns a fresh copy of a cataloged body from its name.
func CelestialBodyFromString(name string) (*CelestialBody, error) {
	switch strings.ToLower(name) {
	case "moon":
		return Moon(), nil
	case "mercury":
		return Mercury(), nil
	case "pluto":
		return Pluto(), nil
	default:
		return nil, fmt.Errorf("undefined body '%s'", name)
	}
}
