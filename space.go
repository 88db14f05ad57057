package sat

import "slices"

// Space is the simulation context: the body set, the registered force
// generators and controllers, and the fixed-tick clock that drives them.
// All simulation state lives here; there are no package-level globals.
//
// A space is not safe for concurrent use. One tick runs to completion
// before the next Update call is processed, and body state is mutated in
// place by both the integrator and collision resolution within a tick.
type Space struct {
	// Iterations is the number of integrate-and-resolve sub-steps per
	// fixed tick. Must be non-zero. Defaults to 1.
	Iterations uint

	// TickRate is the fixed timestep in seconds. Defaults to 1/60.
	TickRate float64

	Bodies []*Body

	forceGenerators  []ForceGenerator
	controllers      []Controller
	removalQueue     []*Body
	frameAccumulator float64
	runtime          float64
	stamp            uint

	pairsTested  uint64
	resolved     uint64
	unresolvable uint64
}

// NewSpace allocates and initializes a Space.
func NewSpace() *Space {
	return &Space{
		Iterations: 1,
		TickRate:   1.0 / 60.0,
		Bodies:     []*Body{},
	}
}

// AddBody adds a body to the space.
func (s *Space) AddBody(body *Body) {
	s.Bodies = append(s.Bodies, body)
}

// RemoveBody queues a body for removal. Removal is deferred to the end of
// the current tick so the body set is never mutated while the pair sweep
// iterates over it; a removal requested outside a tick drains on the next
// one.
func (s *Space) RemoveBody(body *Body) {
	s.removalQueue = append(s.removalQueue, body)
}

// AddForceGenerator registers g to run in the force phase of every tick.
func (s *Space) AddForceGenerator(g ForceGenerator) {
	s.forceGenerators = append(s.forceGenerators, g)
}

// AddController registers c to run after force generators and before
// integration.
func (s *Space) AddController(c Controller) {
	s.controllers = append(s.controllers, c)
}

// BodyCount returns the total number of bodies in the space.
func (s *Space) BodyCount() int {
	return len(s.Bodies)
}

// EachBody calls f once for each body in the space.
func (s *Space) EachBody(f func(*Body)) {
	for _, body := range s.Bodies {
		f(body)
	}
}

// Runtime returns the simulated time advanced so far. It grows by exactly
// one TickRate per executed tick.
func (s *Space) Runtime() float64 {
	return s.runtime
}

// Stats reports how many body pairs were tested, how many overlaps were
// corrected, and how many overlapping pairs were unresolvable because
// both bodies are static.
func (s *Space) Stats() (tested, resolved, unresolvable uint64) {
	return s.pairsTested, s.resolved, s.unresolvable
}

// Update advances the simulation. elapsed is the wall time in seconds
// since the previous call; it accumulates until it exceeds TickRate, then
// exactly one fixed tick runs and the accumulator resets to zero. Excess
// accumulated time is discarded, not carried forward, so a single call
// never produces more than one tick no matter how large elapsed is.
func (s *Space) Update(elapsed float64) {
	s.frameAccumulator += elapsed
	if s.frameAccumulator > s.TickRate {
		s.step(s.TickRate)
		s.frameAccumulator = 0
		s.runtime += s.TickRate
	}
}

// step runs one fixed tick: Iterations sub-steps of force application,
// controller movement, integration and pair resolution, then the removal
// queue drains.
func (s *Space) step(dt float64) {
	var i uint
	for i = 0; i < s.Iterations; i++ {
		for _, body := range s.Bodies {
			body.ClearForces()
		}

		for _, g := range s.forceGenerators {
			g.Apply(s.Bodies)
		}

		// Controllers move bodies positionally, not through forces.
		for _, c := range s.controllers {
			c.Update(dt)
		}

		// Semi-implicit Euler. Forces are cleared again after they are
		// consumed; with Iterations > 1 every sub-step starts from a
		// fresh ledger.
		for _, body := range s.Bodies {
			if body.IsStatic() {
				continue
			}
			body.acceleration = body.acceleration.Add(body.force.Scale(dt))
			body.velocity = body.velocity.Add(body.acceleration.Scale(dt))
			body.position = body.position.Add(body.velocity.Scale(dt))
			body.Damp()
			body.ClearForces()
			body.Update()
		}

		s.resolveBodies()
	}

	s.processRemovals()
	s.stamp++
}

// resolveBodies tests every unordered pair of bodies exactly once and
// resolves confirmed overlaps. O(n²) in body count with no broad phase;
// meant for small scenes.
func (s *Space) resolveBodies() {
	for i := 0; i < len(s.Bodies); i++ {
		a := s.Bodies[i]
		va := a.Shape.TransformedVertices()
		for j := i + 1; j < len(s.Bodies); j++ {
			b := s.Bodies[j]
			s.pairsTested++
			if !Intersects(va, b.Shape.TransformedVertices()) {
				continue
			}
			if a.IsStatic() && b.IsStatic() {
				// Both immovable, the overlap stays. Counted so the
				// condition is visible in DebugInfo.
				s.unresolvable++
				continue
			}
			if Resolve(a, b) {
				s.resolved++
				va = a.Shape.TransformedVertices() // a may have moved
			}
		}
	}
}

func (s *Space) processRemovals() {
	if len(s.removalQueue) == 0 {
		return
	}
	for _, removed := range s.removalQueue {
		s.Bodies = slices.DeleteFunc(s.Bodies, func(b *Body) bool {
			return b == removed
		})
	}
	s.removalQueue = s.removalQueue[:0]
}
