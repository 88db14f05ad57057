package sat

import "github.com/setanarut/v"

// Body is a rigid body: one exclusively owned convex polygon plus linear
// kinematic state. There is no angular state; bodies translate only.
//
// A body with mass <= 0 is static. Static bodies are skipped by
// integration, are never moved by collision resolution, and accumulate
// zero force no matter what is applied to them.
type Body struct {
	// UserData is an object that this body is associated with.
	//
	// You can use this to get a reference to your game object or
	// controller object from within callbacks.
	UserData any

	// Shape is the collision polygon. The body owns it and keeps its
	// world offset in sync with the body position.
	Shape *Polygon

	position     v.Vec
	velocity     v.Vec
	acceleration v.Vec
	force        v.Vec // per-tick ledger, pre-scaled by inverse mass
	mass         float64
	massInverse  float64
	restitution  float64
	damping      float64
}

// NewBody returns an initialized body with the given shape, world
// position and mass: the inverse mass is derived and the shape offset is
// snapped to the position. Damping defaults to 1 (no decay). Pass a mass
// of zero or less for a static body.
func NewBody(shape *Polygon, position v.Vec, mass float64) *Body {
	body := &Body{
		Shape:   shape,
		damping: 1.0,
	}
	body.SetMass(mass)
	body.SetPosition(position)
	return body
}

// Mass returns the mass of the body.
func (b *Body) Mass() float64 {
	return b.mass
}

// SetMass sets the mass of the body and re-derives the inverse mass. A
// non-positive mass marks the body static and stores an inverse mass of
// zero, so the mass is never divided by.
func (b *Body) SetMass(mass float64) {
	b.mass = mass
	if mass > 0 {
		b.massInverse = 1.0 / mass
	} else {
		b.massInverse = 0
	}
}

// IsStatic reports whether the body is immovable (mass <= 0).
func (b *Body) IsStatic() bool {
	return b.mass <= 0
}

// Position returns the position of the body.
func (b *Body) Position() v.Vec {
	return b.position
}

// SetPosition sets the position of the body and moves its shape with it.
func (b *Body) SetPosition(position v.Vec) {
	b.position = position
	b.Update()
}

// Velocity returns the velocity of the body.
func (b *Body) Velocity() v.Vec {
	return b.velocity
}

// SetVelocity sets the velocity of the body.
//
// Shorthand for Body.SetVelocityVector()
func (b *Body) SetVelocity(x, y float64) {
	b.velocity = v.Vec{X: x, Y: y}
}

// SetVelocityVector sets the velocity of the body.
func (b *Body) SetVelocityVector(vel v.Vec) {
	b.velocity = vel
}

// Restitution returns the bounce coefficient. It is stored for a future
// impulse response and is not read by Resolve.
func (b *Body) Restitution() float64 {
	return b.restitution
}

// SetRestitution sets the bounce coefficient.
func (b *Body) SetRestitution(restitution float64) {
	b.restitution = restitution
}

// Damping returns the per-tick velocity multiplier.
func (b *Body) Damping() float64 {
	return b.damping
}

// SetDamping sets the per-tick velocity multiplier. 1 keeps velocity as
// is, 0.9 drops it 10% per tick.
func (b *Body) SetDamping(damping float64) {
	b.damping = damping
}

// Move displaces the body against d: position -= d. Collision resolution
// passes the translation axis scaled toward the other body, so the body
// ends up moving away from it.
func (b *Body) Move(d v.Vec) {
	b.position = b.position.Sub(d)
	b.Update()
}

// ApplyForce adds a force to the body's per-tick ledger. The force is
// scaled by the inverse mass at accumulation time, so a static body
// accumulates nothing no matter how large the force.
func (b *Body) ApplyForce(force v.Vec) {
	b.force = b.force.Add(force.Scale(b.massInverse))
}

// Force returns the accumulated, inverse-mass scaled force ledger.
func (b *Body) Force() v.Vec {
	return b.force
}

// ClearForces zeroes the force ledger and the acceleration.
func (b *Body) ClearForces() {
	b.force = v.Vec{}
	b.acceleration = v.Vec{}
}

// Damp applies the per-tick linear velocity decay.
func (b *Body) Damp() {
	b.velocity = b.velocity.Scale(b.damping)
}

// Update resyncs the shape's world offset to the body position. It must
// run after any position change so collision queries see the current
// vertices.
func (b *Body) Update() {
	b.Shape.Offset = b.position
}
