package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Lerp linearly interpolates between prev and cur by the given partial ticks.
func Lerp(prev, cur, partialTicks float32) float32 {
	return prev + (cur-prev)*partialTicks
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec32To64 converts a 32-bit vector to a 64-bit one.
func Vec32To64(vec3 mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(vec3[0]), float64(vec3[1]), float64(vec3[2])}
}

// Vec64To32 converts a 64-bit vector to a 32-bit one.
func Vec64To32(vec3 mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(vec3[0]), float32(vec3[1]), float32(vec3[2])}
}

// DirectionVector returns a direction vector from the given yaw and pitch values.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := math32.Cos(pitchRad)

	return mgl32.Vec3{
		-m * math32.Sin(yawRad),
		-math32.Sin(pitchRad),
		m * math32.Cos(yawRad),
	}
}
