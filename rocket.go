package landingsim

import (
	"fmt"
	"math"
)

// DefaultStartingAltitude is the starting altitude of a new craft in meters.
const DefaultStartingAltitude = 250

// Craft is the math model of the lander. Positions are in meters from the center of the body and
// angles are in degrees, zero being horizontal and facing right like the unit circle.
type Craft struct {
	Body             *CelestialBody // shared, not owned: the same body is reused across runs
	CommandModule    CommandModule
	Fuselage         Fuselage
	Engine           Engine
	StartingAltitude int

	xPosition, yPosition float64
	xVelocity, yVelocity float64
	rotationAngle        float64 // displayed, re-based against the local vertical
	queuedRotationAngle  float64 // commanded by the pilot
}

// NewCraft returns a new Craft around the provided body.
func NewCraft(body *CelestialBody, cm CommandModule, fuselage Fuselage, engine Engine) *Craft {
	return &Craft{Body: body, CommandModule: cm, Fuselage: fuselage, Engine: engine, StartingAltitude: DefaultStartingAltitude}
}

// SetCurrentBody changes the body this craft falls toward.
func (c *Craft) SetCurrentBody(b *CelestialBody) { c.Body = b }

// SetCommandModule replaces the command module.
func (c *Craft) SetCommandModule(cm CommandModule) { c.CommandModule = cm }

// SetFuselage replaces the fuselage.
func (c *Craft) SetFuselage(f Fuselage) { c.Fuselage = f }

// SetEngine replaces the engine.
func (c *Craft) SetEngine(e Engine) { c.Engine = e }

// SetStartingAltitude sets the altitude of the next run. No bounds are enforced.
func (c *Craft) SetStartingAltitude(alt int) { c.StartingAltitude = alt }

// Position returns the position in meters from the center of the body.
func (c *Craft) Position() (x, y float64) { return c.xPosition, c.yPosition }

// Velocity returns the velocity in m/s.
func (c *Craft) Velocity() (x, y float64) { return c.xVelocity, c.yVelocity }

// SetPosition sets the position.
func (c *Craft) SetPosition(x, y float64) { c.xPosition, c.yPosition = x, y }

// SetVelocity sets the velocity.
func (c *Craft) SetVelocity(x, y float64) { c.xVelocity, c.yVelocity = x, y }

// RotationAngle returns the displayed orientation in degrees.
func (c *Craft) RotationAngle() float64 { return c.rotationAngle }

// QueuedRotationAngle returns the commanded orientation in degrees.
func (c *Craft) QueuedRotationAngle() float64 { return c.queuedRotationAngle }

// SetRotationAngles sets both the displayed and commanded orientations, as is.
func (c *Craft) SetRotationAngles(displayed, queued float64) {
	c.rotationAngle, c.queuedRotationAngle = displayed, queued
}

// Mass returns the total mass of the craft. Fuel is massless in this model.
func (c *Craft) Mass() float64 {
	return c.CommandModule.Mass + c.Fuselage.Mass + c.Engine.Mass
}

// GravitationalAcceleration returns the magnitude of the body's pull at the current position.
func (c *Craft) GravitationalAcceleration() float64 {
	r := c.DistanceToSurface() + c.Body.Radius()
	return G * c.Body.Mass() / (r * r)
}

// CircularOrbitSpeed returns the speed of a circular orbit at the current distance.
func (c *Craft) CircularOrbitSpeed() float64 {
	return math.Sqrt(G * c.Body.Mass() / (c.DistanceToSurface() + c.Body.Radius()))
}

// thrustAcceleration returns the acceleration from the engine for this step and burns the fuel
// for it. Fuel is burned even on the step which empties the tank.
func (c *Craft) thrustAcceleration(timeStep float64) float64 {
	acc := 0.0
	if c.Fuselage.FuelLevel() > 0 {
		acc = c.Engine.CurrentThrust() / c.Mass()
	}
	c.Fuselage.LowerFuelLevel(timeStep, c.Engine.ThrustPercent())
	return acc
}

// updateVelocity is the semi-implicit part of the integrator: gravity is computed from the
// position at the start of the step, and thrust along the displayed orientation.
func (c *Craft) updateVelocity(timeStep float64) {
	aG := c.GravitationalAcceleration()
	angleGH := Deg2rad(c.AngleBetweenGravityAndHorizontal())
	aT := c.thrustAcceleration(timeStep)
	rot := Deg2rad(c.rotationAngle)
	c.xVelocity -= (aG*math.Cos(angleGH) - aT*math.Cos(rot)) * timeStep
	c.yVelocity -= (aG*math.Sin(angleGH) - aT*math.Sin(rot)) * timeStep
}

// UpdatePosition advances velocity then position by one step.
func (c *Craft) UpdatePosition(timeStep float64) {
	c.updateVelocity(timeStep)
	c.xPosition += c.xVelocity * timeStep
	c.yPosition += c.yVelocity * timeStep
}

// UpdateRotation re-bases the commanded rotation against the local vertical, so that a queued
// rotation of zero always points the nose away from the body.
func (c *Craft) UpdateRotation() {
	c.rotationAngle = clampRotation(c.queuedRotationAngle + c.AngleBetweenGravityAndHorizontal() - 90)
}

// Rotate adds to the commanded rotation. Only a single wrap is applied.
func (c *Craft) Rotate(deg float64) {
	c.queuedRotationAngle = clampRotation(c.queuedRotationAngle + deg)
}

// AngleBetweenGravityAndHorizontal returns the polar angle of the craft around the body in
// [0, 360) degrees, resolved from a single atan and the signs of the position.
// On the vertical axis (x == 0) the angle is 90 when y >= 0 and 270 otherwise.
func (c *Craft) AngleBetweenGravityAndHorizontal() float64 {
	x, y := c.xPosition, c.yPosition
	if x == 0 {
		if y >= 0 {
			return 90
		}
		return 270
	}
	inside := Rad2deg(math.Atan(y / x))
	switch {
	case y >= 0 && x > 0: // Quadrant 1
		return inside
	case y >= 0: // Quadrant 2
		return 180 + inside
	case x < 0: // Quadrant 3
		return 180 + inside
	default: // Quadrant 4
		return 360 + inside
	}
}

// DistanceToSurface returns the altitude in meters.
func (c *Craft) DistanceToSurface() float64 {
	return norm2(c.xPosition, c.yPosition) - c.Body.Radius()
}

// Speed returns the norm of the velocity.
func (c *Craft) Speed() float64 {
	return norm2(c.xVelocity, c.yVelocity)
}

// FuelLevel returns the remaining fuel.
func (c *Craft) FuelLevel() float64 {
	return c.Fuselage.FuelLevel()
}

// MaxFuelLevel returns the fuel capacity.
func (c *Craft) MaxFuelLevel() float64 {
	return c.Fuselage.MaxFuelLevel
}

// ThrustPercent returns the current thrust percent of the engine.
func (c *Craft) ThrustPercent() float64 {
	return c.Engine.ThrustPercent()
}

// String implements the Stringer interface.
func (c *Craft) String() string {
	return fmt.Sprintf("alt=%.2f m  speed=%.2f m/s  rot=%.2f°  fuel=%.1f/%.1f  thrust=%.0f%%",
		c.DistanceToSurface(), c.Speed(), c.rotationAngle, c.FuelLevel(), c.MaxFuelLevel(), 100*c.ThrustPercent())
}
