package sat

import (
	"math"

	"github.com/setanarut/v"
)

// MTV is a minimum translation vector: the smallest push along a single
// axis that separates two overlapping convex shapes. Axis is unit length
// and points from the first shape toward the second.
type MTV struct {
	Axis  v.Vec
	Depth float64
}

func perp(a v.Vec) v.Vec {
	return v.Vec{X: -a.Y, Y: a.X}
}

// Axes returns one candidate separating axis per polygon edge: the unit
// perpendicular of each edge vector. Degenerate zero-length edges produce
// no axis.
func Axes(verts []v.Vec) []v.Vec {
	axes := make([]v.Vec, 0, len(verts))
	for i := range verts {
		edge := verts[(i+1)%len(verts)].Sub(verts[i])
		if edge.MagSq() <= 0 {
			continue
		}
		axes = append(axes, perp(edge).Unit())
	}
	return axes
}

// Project projects every vertex onto axis and returns the minimum and
// maximum scalar projection.
func Project(axis v.Vec, verts []v.Vec) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, vert := range verts {
		d := vert.Dot(axis)
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return min, max
}

// Intersects reports whether two convex vertex sets overlap. It tests the
// edge normals of both shapes and rejects on the first separating axis;
// for convex polygons a separating axis exists iff the shapes are
// disjoint, and it is parallel to one of the edge normals. Exact touch
// counts as an intersection.
func Intersects(a, b []v.Vec) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	for _, axes := range [2][]v.Vec{Axes(a), Axes(b)} {
		for _, axis := range axes {
			minA, maxA := Project(axis, a)
			minB, maxB := Project(axis, b)
			if minA > maxB || minB > maxA {
				return false
			}
		}
	}
	return true
}

// MinimumTranslation returns the MTV for two overlapping convex vertex
// sets, or false if they do not overlap. The same axes as Intersects are
// walked, but instead of short-circuiting, the axis with the smallest
// overlap is kept; pushing apart along any other axis would over-correct.
// The returned axis is oriented from a's centroid toward b's.
func MinimumTranslation(a, b []v.Vec) (MTV, bool) {
	depth := math.Inf(1)
	var axis v.Vec

	for _, axes := range [2][]v.Vec{Axes(a), Axes(b)} {
		for _, candidate := range axes {
			minA, maxA := Project(candidate, a)
			minB, maxB := Project(candidate, b)

			// The smaller of the two possible push-apart distances.
			overlap := math.Min(maxA-minB, maxB-minA)
			if overlap <= 0 {
				return MTV{}, false
			}
			if overlap < depth {
				depth = overlap
				axis = candidate
			}
		}
	}
	if math.IsInf(depth, 1) {
		return MTV{}, false
	}

	if Centroid(b).Sub(Centroid(a)).Dot(axis) < 0 {
		axis = axis.Neg()
	}
	return MTV{Axis: axis, Depth: depth}, true
}

// Resolve separates two overlapping bodies by adjusting their positions
// along the MTV axis and reports whether a correction was applied. The
// depth is split by the static/dynamic rule: two dynamic bodies each
// absorb half, a dynamic body paired with a static one absorbs all of it,
// and two static bodies stay put. A pair that is already separating along
// the axis is left alone, which keeps settled contacts from jittering.
// No velocity change is ever applied; this is positional correction, not
// an impulse response.
func Resolve(a, b *Body) bool {
	mtv, ok := MinimumTranslation(
		a.Shape.TransformedVertices(),
		b.Shape.TransformedVertices(),
	)
	if !ok {
		return false
	}

	if b.velocity.Sub(a.velocity).Dot(mtv.Axis) > 0 {
		return false
	}

	switch {
	case !a.IsStatic() && !b.IsStatic():
		half := mtv.Axis.Scale(mtv.Depth / 2)
		a.Move(half)
		b.Move(half.Neg())
	case !a.IsStatic():
		a.Move(mtv.Axis.Scale(mtv.Depth))
	case !b.IsStatic():
		b.Move(mtv.Axis.Scale(mtv.Depth).Neg())
	default:
		// Two static bodies overlap; there is nothing to move.
		return false
	}
	return true
}
