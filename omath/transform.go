package omath

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is an affine 4x4 transformation. Every step added to a Transform is applied after the
// steps already in it, i.e. points are transformed by the last step first, which matches the order
// of a matrix stack in a renderer.
type Transform struct {
	m mgl32.Mat4
}

// Identity returns a transform that leaves points unchanged.
func Identity() Transform {
	return Transform{m: mgl32.Ident4()}
}

// Translate appends a translation by (x, y, z).
func (t Transform) Translate(x, y, z float32) Transform {
	t.m = t.m.Mul4(mgl32.Translate3D(x, y, z))
	return t
}

// RotateY appends a rotation around the Y axis by the angle passed in radians.
func (t Transform) RotateY(angle float32) Transform {
	t.m = t.m.Mul4(mgl32.HomogRotate3DY(angle))
	return t
}

// RotateZ appends a rotation around the Z axis by the angle passed in radians.
func (t Transform) RotateZ(angle float32) Transform {
	t.m = t.m.Mul4(mgl32.HomogRotate3DZ(angle))
	return t
}

// Scale appends a scale by (x, y, z).
func (t Transform) Scale(x, y, z float32) Transform {
	t.m = t.m.Mul4(mgl32.Scale3D(x, y, z))
	return t
}

// Apply transforms the point passed.
func (t Transform) Apply(v mgl32.Vec3) mgl32.Vec3 {
	return t.m.Mul4x1(v.Vec4(1)).Vec3()
}

// Inverse returns the inverse of the transform. False is returned if the transform is singular, for
// example because it scales an axis to zero.
func (t Transform) Inverse() (Transform, bool) {
	if det := t.m.Det(); det > -1e-12 && det < 1e-12 {
		return Transform{}, false
	}
	return Transform{m: t.m.Inv()}, true
}
