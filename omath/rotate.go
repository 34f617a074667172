package omath

import (
	"github.com/chewxy/math32"
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// QuarterTurns returns the number of clockwise quarter turns (seen from above) needed to get from a
// north facing to the direction passed.
func QuarterTurns(dir df_cube.Direction) int {
	turns := 0
	for d := df_cube.North; d != dir && turns < 4; d = d.RotateRight() {
		turns++
	}
	return turns % 4
}

// normaliseTurns maps any amount of quarter turns, including negative ones, into [0, 4).
func normaliseTurns(turns int) int {
	return ((turns % 4) + 4) % 4
}

// RotateDirection rotates a horizontal direction clockwise by the amount of quarter turns passed. Negative
// amounts rotate counter-clockwise.
func RotateDirection(dir df_cube.Direction, turns int) df_cube.Direction {
	for i := 0; i < normaliseTurns(turns); i++ {
		dir = dir.RotateRight()
	}
	return dir
}

// RotateHorizontal rotates a block-local point clockwise (seen from above) around the vertical axis
// through the centre of the block.
func RotateHorizontal(v mgl32.Vec3, turns int) mgl32.Vec3 {
	for i := 0; i < normaliseTurns(turns); i++ {
		// North (-Z) becomes east (+X): (x, z) -> (1 - z, x).
		v = mgl32.Vec3{1 - v[2], v[1], v[0]}
	}
	return v
}

// RotateBox rotates a block-local box clockwise (seen from above) around the vertical axis through the
// centre of the block.
func RotateBox(bb cube.BBox, turns int) cube.BBox {
	a, b := RotateHorizontal(bb.Min(), turns), RotateHorizontal(bb.Max(), turns)
	return cube.Box(
		math32.Min(a[0], b[0]), math32.Min(a[1], b[1]), math32.Min(a[2], b[2]),
		math32.Max(a[0], b[0]), math32.Max(a[1], b[1]), math32.Max(a[2], b[2]),
	)
}
