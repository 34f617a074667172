package selection

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/immersion/game"
	"github.com/oomph-ac/immersion/omath"
)

// Box is an interactive sub-region of a block model. BBox is in block-local space for a block facing
// north and is rotated by the facing of the block when it is queried.
type Box struct {
	BBox cube.BBox
	// Slot is the logical slot of the inventory of the block that the box stands for.
	Slot int
	// RightClicks and LeftClicks specify if the box may be targeted by right and left clicks. A box with
	// both set to false can only be hovered.
	RightClicks, LeftClicks bool
}

// BoxOption changes a Box created through NewBox.
type BoxOption func(b *Box)

// WithRightClicks allows a box to be targeted by right clicks.
func WithRightClicks() BoxOption {
	return func(b *Box) {
		b.RightClicks = true
	}
}

// WithLeftClicks allows a box to be targeted by left clicks.
func WithLeftClicks() BoxOption {
	return func(b *Box) {
		b.LeftClicks = true
	}
}

// NewBox creates a Box for the slot passed.
func NewBox(bb cube.BBox, slot int, opts ...BoxOption) Box {
	b := Box{BBox: bb, Slot: slot}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// PixelBox creates a Box from coordinates in pixels (1/16th of a block).
func PixelBox(x0, y0, z0, x1, y1, z1 float32, slot int, opts ...BoxOption) Box {
	return NewBox(cube.Box(
		x0*game.Pixel, y0*game.Pixel, z0*game.Pixel,
		x1*game.Pixel, y1*game.Pixel, z1*game.Pixel,
	), slot, opts...)
}

// Allows checks if the box may be targeted by a click of the kind passed.
func (b Box) Allows(kind ClickKind) bool {
	switch kind {
	case ClickLeft:
		return b.LeftClicks
	case ClickRight:
		return b.RightClicks
	}
	return true
}

// Rotated returns the boxes passed rotated to match a block with the facing passed. The slice passed is
// not modified.
func Rotated(boxes []Box, facing df_cube.Direction) []Box {
	turns := omath.QuarterTurns(facing)
	rotated := make([]Box, len(boxes))
	for i, b := range boxes {
		b.BBox = omath.RotateBox(b.BBox, turns)
		rotated[i] = b
	}
	return rotated
}

// Translated returns the boxes passed moved into world space at the block position passed.
func Translated(boxes []Box, pos df_cube.Pos) []Box {
	offset := mgl32.Vec3{float32(pos.X()), float32(pos.Y()), float32(pos.Z())}
	moved := make([]Box, len(boxes))
	for i, b := range boxes {
		b.BBox = b.BBox.Translate(offset)
		moved[i] = b
	}
	return moved
}
