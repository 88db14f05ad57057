package sat_test

import (
	"math"
	"testing"

	"github.com/setanarut/sat"
	"github.com/setanarut/v"
)

type countingController struct {
	calls int
}

func (c *countingController) Update(dt float64) {
	c.calls++
}

func TestFixedTickDiscardsExcess(t *testing.T) {
	s := sat.NewSpace()

	s.Update(s.TickRate * 2.5)
	if s.Runtime() != s.TickRate {
		t.Errorf("runtime = %v, want exactly one tick (%v)", s.Runtime(), s.TickRate)
	}

	// The accumulator was zeroed, so a below-threshold update does nothing.
	s.Update(s.TickRate * 0.5)
	if s.Runtime() != s.TickRate {
		t.Errorf("runtime advanced on an under-threshold update: %v", s.Runtime())
	}

	s.Update(s.TickRate * 1.5)
	if s.Runtime() != 2*s.TickRate {
		t.Errorf("runtime = %v, want two ticks", s.Runtime())
	}
}

func TestIntegration(t *testing.T) {
	s := sat.NewSpace()
	s.TickRate = 1
	body := sat.NewBody(sat.NewBox(1, 1), v.Vec{}, 1)
	s.AddBody(body)
	s.AddForceGenerator(&sat.ConstantForce{Force: v.Vec{X: 1, Y: 0}, Targets: []*sat.Body{body}})

	s.Update(1.5)

	// dt = 1: accel = 1, vel = 1, pos = 1; ledger cleared after use.
	if math.Abs(body.Position().X-1) > 1e-9 {
		t.Errorf("position = %v, want (1, 0)", body.Position())
	}
	if math.Abs(body.Velocity().X-1) > 1e-9 {
		t.Errorf("velocity = %v, want (1, 0)", body.Velocity())
	}
	if body.Force() != (v.Vec{}) {
		t.Errorf("ledger = %v, want cleared after integration", body.Force())
	}
}

func TestDampingAppliedPerTick(t *testing.T) {
	s := sat.NewSpace()
	s.TickRate = 1
	body := sat.NewBody(sat.NewBox(1, 1), v.Vec{}, 1)
	body.SetVelocity(2, 0)
	body.SetDamping(0.5)
	s.AddBody(body)

	s.Update(1.5)

	// Position integrates before damping: pos = 2, then vel drops to 1.
	if math.Abs(body.Position().X-2) > 1e-9 {
		t.Errorf("position = %v, want (2, 0)", body.Position())
	}
	if math.Abs(body.Velocity().X-1) > 1e-9 {
		t.Errorf("velocity = %v, want (1, 0)", body.Velocity())
	}
}

func TestStaticBodyIgnoresIntegrationAndGravity(t *testing.T) {
	s := sat.NewSpace()
	s.AddForceGenerator(sat.NewGravity(0, 100))
	static := sat.NewBody(sat.NewBox(10, 1), v.Vec{X: 0, Y: 5}, 0)
	s.AddBody(static)

	for range 10 {
		s.Update(s.TickRate * 1.5)
	}
	if static.Position() != (v.Vec{X: 0, Y: 5}) {
		t.Errorf("static body moved to %v", static.Position())
	}
	if static.Velocity() != (v.Vec{}) {
		t.Errorf("static body gained velocity %v", static.Velocity())
	}
}

func TestGravityAccelerationIsMassIndependent(t *testing.T) {
	s := sat.NewSpace()
	s.TickRate = 1
	light := sat.NewBody(sat.NewBox(1, 1), v.Vec{X: 0, Y: 0}, 1)
	heavy := sat.NewBody(sat.NewBox(1, 1), v.Vec{X: 100, Y: 0}, 10)
	s.AddBody(light)
	s.AddBody(heavy)
	s.AddForceGenerator(sat.NewGravity(0, 10))

	s.Update(1.5)

	if math.Abs(light.Velocity().Y-heavy.Velocity().Y) > 1e-9 {
		t.Errorf("gravity accelerated bodies differently: %v vs %v",
			light.Velocity(), heavy.Velocity())
	}
}

func TestPairSweepTestsEachPairOnce(t *testing.T) {
	s := sat.NewSpace()
	for i := range 4 {
		s.AddBody(sat.NewBody(sat.NewBox(1, 1), v.Vec{X: float64(i) * 10, Y: 0}, 1))
	}

	s.Update(s.TickRate * 1.5)

	tested, resolved, _ := s.Stats()
	if tested != 6 {
		t.Errorf("tested %d pairs for 4 bodies, want 6", tested)
	}
	if resolved != 0 {
		t.Errorf("resolved %d pairs with nothing overlapping", resolved)
	}
}

func TestSpaceResolvesOverlap(t *testing.T) {
	s := sat.NewSpace()
	a := sat.NewBody(sat.NewBox(1, 1), v.Vec{X: 0, Y: 0}, 1)
	b := sat.NewBody(sat.NewBox(1, 1), v.Vec{X: 0.5, Y: 0}, 1)
	s.AddBody(a)
	s.AddBody(b)

	s.Update(s.TickRate * 1.5)

	_, resolved, _ := s.Stats()
	if resolved != 1 {
		t.Errorf("resolved = %d, want 1", resolved)
	}
	gap := b.Position().X - a.Position().X
	if math.Abs(gap-1) > 1e-9 {
		t.Errorf("separation = %v, want the full depth split evenly", gap)
	}
}

func TestUnresolvableOverlapIsCounted(t *testing.T) {
	s := sat.NewSpace()
	s.AddBody(sat.NewBody(sat.NewBox(1, 1), v.Vec{X: 0, Y: 0}, 0))
	s.AddBody(sat.NewBody(sat.NewBox(1, 1), v.Vec{X: 0.5, Y: 0}, 0))

	s.Update(s.TickRate * 1.5)

	_, _, unresolvable := s.Stats()
	if unresolvable != 1 {
		t.Errorf("unresolvable = %d, want 1", unresolvable)
	}
}

func TestDeferredRemoval(t *testing.T) {
	s := sat.NewSpace()
	a := sat.NewBody(sat.NewBox(1, 1), v.Vec{X: 0, Y: 0}, 1)
	b := sat.NewBody(sat.NewBox(1, 1), v.Vec{X: 10, Y: 0}, 1)
	s.AddBody(a)
	s.AddBody(b)

	s.RemoveBody(a)
	if s.BodyCount() != 2 {
		t.Error("removal applied before the tick completed")
	}

	s.Update(s.TickRate * 1.5)
	if s.BodyCount() != 1 {
		t.Errorf("body count = %d after removal, want 1", s.BodyCount())
	}
	if s.Bodies[0] != b {
		t.Error("wrong body removed")
	}
}

func TestControllerRunsOncePerSubStep(t *testing.T) {
	s := sat.NewSpace()
	c := &countingController{}
	s.AddController(c)

	s.Update(s.TickRate * 1.5)
	if c.calls != 1 {
		t.Errorf("controller ran %d times, want 1", c.calls)
	}

	s.Iterations = 3
	s.Update(s.TickRate * 1.5)
	if c.calls != 4 {
		t.Errorf("controller ran %d times total, want 1 + 3", c.calls)
	}
}

func TestBodiesSettleOnFloor(t *testing.T) {
	s := sat.NewSpace()
	s.AddForceGenerator(sat.NewGravity(0, 50))
	floor := sat.NewBody(sat.NewBox(20, 2), v.Vec{X: 0, Y: 10}, 0)
	crate := sat.NewBody(sat.NewBox(2, 2), v.Vec{X: 0, Y: 0}, 1)
	s.AddBody(floor)
	s.AddBody(crate)

	for range 600 {
		s.Update(s.TickRate * 1.5)
	}

	// Crate rests on the floor top (y = 9) with its half-height above it.
	if crate.Position().Y > 8.5 {
		t.Errorf("crate sank into the floor: y = %v", crate.Position().Y)
	}
	if crate.Position().Y < 7 {
		t.Errorf("crate hovers above the floor: y = %v", crate.Position().Y)
	}
}
