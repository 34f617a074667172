package book

import (
	"github.com/chewxy/math32"
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/immersion/game"
)

// Closed is the page of a book that is not open.
const Closed = -1

// AnimationState is the state of the book floating above an enchanting table. Every value that is
// animated keeps the value of the previous tick so that it can be interpolated using partial ticks.
type AnimationState struct {
	// Ticks is the amount of ticks the book has existed for.
	Ticks int

	Rotation, PrevRotation float32
	// TargetRotation is the rotation the book is turning towards.
	TargetRotation float32

	Flip, PrevFlip float32
	// FlipTarget is the value Flip eases towards, FlipSpeed the speed it does so with.
	FlipTarget, FlipSpeed float32

	// Spread is how far the book is opened, from 0 to 1.
	Spread, PrevSpread float32

	// Page is the index of the left page that is shown, or Closed.
	Page int
}

// NewAnimationState returns the state of a closed book.
func NewAnimationState() AnimationState {
	return AnimationState{Page: Closed}
}

// IsOpen checks if the book shows a page.
func (s AnimationState) IsOpen() bool {
	return s.Page >= 0
}

// Open opens the book at the page passed.
func (s *AnimationState) Open(page int) {
	s.Page = max(page, 0)
}

// Close closes the book.
func (s *AnimationState) Close() {
	s.Page = Closed
}

// TurnPage turns the book by the amount of double pages passed, which may be negative. The book cannot be
// turned to before its first page. A closed book is not turned.
func (s *AnimationState) TurnPage(delta int) {
	if !s.IsOpen() || delta == 0 {
		return
	}
	next := max(s.Page+delta*2, 0)
	if next == s.Page {
		return
	}
	s.FlipTarget += float32((next - s.Page) / 2)
	s.Page = next
}

// Tick moves the animation forward by one tick. If nearest is not nil, the book turns towards that
// position and opens, otherwise it slowly spins and closes.
func (s *AnimationState) Tick(nearest *mgl32.Vec3, pos df_cube.Pos) {
	s.PrevSpread = s.Spread
	s.PrevRotation = s.Rotation

	if nearest != nil {
		dx := nearest.X() - (float32(pos.X()) + 0.5)
		dz := nearest.Z() - (float32(pos.Z()) + 0.5)
		s.TargetRotation = math32.Atan2(dz, dx)
		s.Spread += 0.1
	} else {
		s.TargetRotation += 0.02
		s.Spread -= 0.1
	}

	s.Rotation = game.WrapRadians(s.Rotation)
	s.TargetRotation = game.WrapRadians(s.TargetRotation)
	s.Rotation += game.WrapRadians(s.TargetRotation-s.Rotation) * 0.4
	s.Spread = game.ClampFloat(s.Spread, 0, 1)

	s.Ticks++
	s.PrevFlip = s.Flip
	f := game.ClampFloat((s.FlipTarget-s.Flip)*0.4, -0.2, 0.2)
	s.FlipSpeed += (f - s.FlipSpeed) * 0.9
	s.Flip += s.FlipSpeed
}
