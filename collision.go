package landingsim

import "math"

// ColliderPointCount is the number of craft-local points sampled against the surface.
const ColliderPointCount = 6

// ColliderPoints returns the craft-local collider points, relative to the craft position:
// the center, the four fuselage corners (front upper, front lower, back lower, back upper) and the
// tail of the engine. They follow the commanded rotation, not the displayed one.
func (c *Craft) ColliderPoints() [ColliderPointCount][2]float64 {
	var pts [ColliderPointCount][2]float64
	halfH := c.Fuselage.Height / 2
	halfW := c.Fuselage.Width / 2
	diag := math.Sqrt(halfH*halfH + halfW*halfW)
	corner := math.Atan(c.Fuselage.Width / c.Fuselage.Height)
	θ := Deg2rad(c.queuedRotationAngle)
	cθ := math.Cos(θ)

	// pts[0] is the center.
	pts[1] = [2]float64{halfH * cθ, diag * math.Sin(corner+θ)}
	pts[2] = [2]float64{halfH * cθ, -diag * math.Sin(corner-θ)}
	pts[3] = [2]float64{-halfH * cθ, -diag * math.Sin(corner+θ)}
	pts[4] = [2]float64{-halfH * cθ, diag * math.Sin(corner-θ)}
	tail := c.Engine.Height + halfH
	pts[5] = [2]float64{-tail * cθ, -tail * math.Sin(θ)}
	return pts
}

// HasCollidedWithSurface returns whether any collider point is at or below the surface.
// This is a discrete check at the end of a step: fast craft with large steps may tunnel through.
func (c *Craft) HasCollidedWithSurface() bool {
	for _, pt := range c.ColliderPoints() {
		if norm2(c.xPosition+pt[0], c.yPosition+pt[1]) <= c.Body.Radius() {
			return true
		}
	}
	return false
}
