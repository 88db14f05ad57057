package sat

import "fmt"

// DebugInfo returns info of space
func DebugInfo(s *Space) string {
	var ke float64
	for _, body := range s.Bodies {
		if body.IsStatic() {
			continue
		}
		ke += 0.5 * body.mass * body.velocity.Dot(body.velocity)
	}

	return fmt.Sprintf(`Bodies: %d, Iterations: %d, Ticks: %d
Pairs tested: %d - Resolved: %d - Unresolvable: %d
Runtime: %.2f, KE: %e`,
		len(s.Bodies), s.Iterations, s.stamp,
		s.pairsTested, s.resolved, s.unresolvable,
		s.runtime, ke)
}
