package sat_test

import (
	"strings"
	"testing"

	"github.com/setanarut/sat"
	"github.com/setanarut/v"
)

func TestDebugInfoKineticEnergy(t *testing.T) {
	s := sat.NewSpace()
	body := sat.NewBody(sat.NewBox(1, 1), v.Vec{}, 2)
	body.SetVelocity(2, 0)
	s.AddBody(body)
	s.AddBody(sat.NewBody(sat.NewBox(1, 1), v.Vec{X: 10, Y: 0}, 0))

	// KE = 1/2 * 2 * 2^2 = 4; the static body contributes nothing.
	info := sat.DebugInfo(s)
	if !strings.Contains(info, "KE: 4.000000e+00") {
		t.Errorf("DebugInfo reported wrong kinetic energy:\n%s", info)
	}
	if !strings.Contains(info, "Bodies: 2") {
		t.Errorf("DebugInfo missing body count:\n%s", info)
	}
}
