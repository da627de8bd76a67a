package landingsim

import "github.com/ChristopherRabotin/ode"

// Impact is the predicted outcome of coasting from the current state.
type Impact struct {
	TimeToImpact float64 // s
	Speed        float64 // m/s at the surface
	Angle        float64 // polar angle of the impact point in degrees
}

// coast is an ode.Integrable of the unpowered point-mass trajectory, state [x y vx vy].
type coast struct {
	μ, radius float64
	state     []float64
	t         float64
	horizon   float64
	impacted  bool
}

// GetState implements the ode.Integrable interface.
func (p *coast) GetState() []float64 {
	return p.state
}

// SetState implements the ode.Integrable interface.
func (p *coast) SetState(t float64, s []float64) {
	p.t = t
	p.state = s
	if norm2(s[0], s[1]) <= p.radius {
		p.impacted = true
	}
}

// Stop implements the ode.Integrable interface.
func (p *coast) Stop(t float64) bool {
	return p.impacted || t >= p.horizon
}

// Func implements the ode.Integrable interface.
func (p *coast) Func(t float64, f []float64) (fDot []float64) {
	fDot = make([]float64, 4)
	r := norm2(f[0], f[1])
	bodyAcc := -p.μ / (r * r * r)
	fDot[0] = f[2]
	fDot[1] = f[3]
	fDot[2] = bodyAcc * f[0]
	fDot[3] = bodyAcc * f[1]
	return
}

// PredictImpact propagates the craft's current state without thrust, using RK4 with the provided
// step (s), for at most horizon seconds. The craft itself is not modified.
// It returns false if the craft does not reach the surface within the horizon.
func PredictImpact(c *Craft, step, horizon float64) (Impact, bool) {
	if step <= 0 || horizon <= 0 {
		return Impact{}, false
	}
	p := &coast{
		μ:       c.Body.GM(),
		radius:  c.Body.Radius(),
		state:   []float64{c.xPosition, c.yPosition, c.xVelocity, c.yVelocity},
		horizon: horizon,
	}
	if norm2(c.xPosition, c.yPosition) <= p.radius {
		return Impact{Speed: c.Speed(), Angle: c.AngleBetweenGravityAndHorizontal()}, true
	}
	ode.NewRK4(0, step, p).Solve() // Blocking.
	if !p.impacted {
		return Impact{}, false
	}
	tmp := Craft{Body: c.Body, xPosition: p.state[0], yPosition: p.state[1]}
	return Impact{
		TimeToImpact: p.t,
		Speed:        norm2(p.state[2], p.state[3]),
		Angle:        tmp.AngleBetweenGravityAndHorizontal(),
	}, true
}
