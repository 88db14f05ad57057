package sat

import "github.com/setanarut/v"

// ForceGenerator populates body force ledgers during the force phase of a
// tick. Implementations receive the live body set and call ApplyForce on
// the bodies they affect; the space clears every ledger before the phase
// runs.
type ForceGenerator interface {
	Apply(bodies []*Body)
}

// Controller is an input hook that repositions bodies directly. It runs
// once per sub-step, after force generators and before integration.
type Controller interface {
	Update(dt float64)
}

// Gravity applies a uniform acceleration as a weight force proportional
// to each body's mass, so every dynamic body accelerates equally and
// static bodies are unaffected.
type Gravity struct {
	Accel v.Vec
}

// NewGravity returns a gravity generator with the given acceleration.
func NewGravity(x, y float64) *Gravity {
	return &Gravity{Accel: v.Vec{X: x, Y: y}}
}

// Apply adds the weight force to every dynamic body.
func (g *Gravity) Apply(bodies []*Body) {
	for _, body := range bodies {
		if body.IsStatic() {
			continue
		}
		body.ApplyForce(g.Accel.Scale(body.Mass()))
	}
}

// ConstantForce applies a fixed directional force to explicit target
// bodies, e.g. thrust or wind.
type ConstantForce struct {
	Force   v.Vec
	Targets []*Body
}

// Apply adds the force to every target body.
func (c *ConstantForce) Apply([]*Body) {
	for _, body := range c.Targets {
		body.ApplyForce(c.Force)
	}
}
