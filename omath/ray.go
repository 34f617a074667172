package omath

import (
	"github.com/go-gl/mathgl/mgl32"
)

// unboundedLength is substituted for the length of rays that were created without one, so that they can
// still be handled as segments by slab tests.
const unboundedLength = float32(1024)

// Ray is a half line starting at Origin, travelling in Direction. If Length is positive, the ray is
// treated as a segment of that length.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
	Length    float32
}

// NewRay returns a ray from origin along dir, normalising dir. A length of zero or less creates an
// unbounded ray.
func NewRay(origin, dir mgl32.Vec3, length float32) Ray {
	if dir.LenSqr() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: origin, Direction: dir, Length: length}
}

// MaxLength returns the length of the ray, or a large finite length if the ray is unbounded.
func (r Ray) MaxLength() float32 {
	if r.Length <= 0 {
		return unboundedLength
	}
	return r.Length
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// End returns the end point of the ray.
func (r Ray) End() mgl32.Vec3 {
	return r.At(r.MaxLength())
}

// Translate returns the ray moved by the offset passed.
func (r Ray) Translate(offset mgl32.Vec3) Ray {
	r.Origin = r.Origin.Add(offset)
	return r
}

// Within checks if a hit at distance t is in front of the origin and within the length of the ray.
func (r Ray) Within(t float32) bool {
	return t >= 0 && t <= r.MaxLength()
}
