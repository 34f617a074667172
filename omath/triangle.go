package omath

import (
	"github.com/go-gl/mathgl/mgl32"
)

// intersectEpsilon is the tolerance used to reject rays parallel to a triangle and hits behind the origin.
const intersectEpsilon = 1e-6

// Triangle is a triangle in 3D space. Its winding is irrelevant for intersection.
type Triangle struct {
	A, B, C mgl32.Vec3
}

// Translate returns the triangle moved by the offset passed.
func (t Triangle) Translate(offset mgl32.Vec3) Triangle {
	return Triangle{A: t.A.Add(offset), B: t.B.Add(offset), C: t.C.Add(offset)}
}

// Quad is a planar quadrilateral given by its corners in order.
type Quad [4]mgl32.Vec3

// Triangles splits the quad into two triangles sharing the diagonal between its first and third corner.
func (q Quad) Triangles() [2]Triangle {
	return [2]Triangle{
		{A: q[0], B: q[1], C: q[2]},
		{A: q[0], B: q[2], C: q[3]},
	}
}

// Transform returns the quad with each of its corners transformed by t.
func (q Quad) Transform(t Transform) Quad {
	for i := range q {
		q[i] = t.Apply(q[i])
	}
	return q
}

// Translate returns the quad moved by the offset passed.
func (q Quad) Translate(offset mgl32.Vec3) Quad {
	for i := range q {
		q[i] = q[i].Add(offset)
	}
	return q
}

// IntersectTriangle performs a Möller-Trumbore intersection of the ray and the triangle passed. It
// returns the distance along the ray and the point that was hit. Back faces are not culled. Hits
// behind the origin of the ray, or past its length, are rejected.
func IntersectTriangle(ray Ray, tri Triangle) (float32, mgl32.Vec3, bool) {
	e1 := tri.B.Sub(tri.A)
	e2 := tri.C.Sub(tri.A)

	p := ray.Direction.Cross(e2)
	det := e1.Dot(p)
	// The ray lies in (or runs parallel to) the plane of the triangle.
	if det > -intersectEpsilon && det < intersectEpsilon {
		return 0, mgl32.Vec3{}, false
	}

	s := ray.Origin.Sub(tri.A)
	u := s.Dot(p) / det
	if u < 0 || u > 1 {
		return 0, mgl32.Vec3{}, false
	}

	q := s.Cross(e1)
	v := ray.Direction.Dot(q) / det
	if v < 0 || u+v > 1 {
		return 0, mgl32.Vec3{}, false
	}

	t := e2.Dot(q) / det
	if t <= intersectEpsilon || t > ray.MaxLength() {
		return 0, mgl32.Vec3{}, false
	}
	return t, tri.A.Add(e1.Mul(u)).Add(e2.Mul(v)), true
}

// IntersectQuad intersects the ray with both triangles of the quad, trying the first one first.
func IntersectQuad(ray Ray, q Quad) (float32, mgl32.Vec3, bool) {
	for _, tri := range q.Triangles() {
		if t, hit, ok := IntersectTriangle(ray, tri); ok {
			return t, hit, true
		}
	}
	return 0, mgl32.Vec3{}, false
}
