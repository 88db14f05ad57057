package sat

import "github.com/setanarut/v"

// Polygon is a convex polygon with local-space vertices and a world-space
// translation offset. There is no rotation in this engine; world placement
// is offset only.
type Polygon struct {
	// Offset is the world-space position added to every local vertex.
	Offset v.Vec

	verts []v.Vec
}

// NewPolygon returns a polygon with the given local-space vertices.
// Vertices must describe a convex shape with consistent winding and a
// count of at least 3. This is the caller's responsibility.
func NewPolygon(verts []v.Vec) *Polygon {
	return &Polygon{verts: verts}
}

// NewBox returns a box polygon with width w and height h centered on the
// local origin.
func NewBox(w, h float64) *Polygon {
	hw := w / 2.0
	hh := h / 2.0
	return NewPolygon([]v.Vec{
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
		{X: -hw, Y: -hh},
	})
}

// Count returns the vertex count.
func (p *Polygon) Count() int {
	return len(p.verts)
}

// Vert returns the local-space vertex at index i.
func (p *Polygon) Vert(i int) v.Vec {
	return p.verts[i]
}

// TransformedVertices returns the world-space vertices, each local vertex
// plus the current offset. The returned slice is freshly allocated.
func (p *Polygon) TransformedVertices() []v.Vec {
	world := make([]v.Vec, len(p.verts))
	for i, vert := range p.verts {
		world[i] = vert.Add(p.Offset)
	}
	return world
}

// Centroid returns the natural centroid of the polygon in world space.
func (p *Polygon) Centroid() v.Vec {
	return Centroid(p.TransformedVertices())
}

// Centroid calculates the natural centroid of a polygon.
func Centroid(verts []v.Vec) v.Vec {
	var sum float64
	vsum := v.Vec{}

	for i := range verts {
		v1 := verts[i]
		v2 := verts[(i+1)%len(verts)]
		cross := v1.Cross(v2)

		sum += cross
		vsum = vsum.Add(v1.Add(v2).Scale(cross))
	}

	return vsum.Scale(1.0 / (3.0 * sum))
}

// Area calculates the signed area of a polygon. The winding NewBox
// produces gives a positive area.
func Area(verts []v.Vec) float64 {
	var area float64
	for i := range verts {
		area += verts[i].Cross(verts[(i+1)%len(verts)])
	}
	return area / 2.0
}
