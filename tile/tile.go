package tile

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/immersion/inventory"
	"github.com/oomph-ac/immersion/selection"
)

// Tile is the logic and storage of an interactive block.
type Tile interface {
	// Name returns the identifier of the tile, which is also used to persist it.
	Name() string
	Pos() df_cube.Pos
	// Facing returns the horizontal direction the front of the block faces.
	Facing() df_cube.Direction
	Inventory() *inventory.Inventory
	// Router returns the regions of the inventory exposed on each face of the block.
	Router() inventory.Router
}

// Selector is a Tile that has interactive sub-regions.
type Selector interface {
	Tile
	// Boxes returns the sub-regions of the block for a block facing north.
	Boxes() []selection.Box
}

// Activator is a Tile that reacts to a player right clicking one of its boxes.
type Activator interface {
	Selector
	// Activate handles a right click that hit a box of the tile, with the held stack passed. local is the
	// position of the hit relative to the block. The new held stack is returned, and false if nothing
	// happened.
	Activate(hit selection.Hit, local mgl32.Vec3, held item.Stack) (item.Stack, bool)
}

// Draggable is a Tile that items may be distributed over by dragging across its top.
type Draggable interface {
	Selector
	// DragSlot returns the slot under the block-local position passed, on top of the block.
	DragSlot(local mgl32.Vec3) (int, bool)
	// DragSlots returns the slots that may be dragged over.
	DragSlots() inventory.Region
}

// base implements the parts of Tile shared by every tile.
type base struct {
	pos    df_cube.Pos
	facing df_cube.Direction
	inv    *inventory.Inventory
}

func newBase(pos df_cube.Pos, facing df_cube.Direction, size int) base {
	return base{pos: pos, facing: facing, inv: inventory.New(size)}
}

// Pos ...
func (b *base) Pos() df_cube.Pos {
	return b.pos
}

// Facing ...
func (b *base) Facing() df_cube.Direction {
	return b.facing
}

// Inventory ...
func (b *base) Inventory() *inventory.Inventory {
	return b.inv
}

// merge moves as much of the held stack into the existing stack as fits, returning the new contents of the
// slot and the new held stack.
func merge(held, existing item.Stack) (item.Stack, item.Stack) {
	if existing.Empty() {
		return held, item.Stack{}
	}
	if !existing.Comparable(held) {
		return existing, held
	}
	n := min(existing.MaxCount()-existing.Count(), held.Count())
	if n <= 0 {
		return existing, held
	}
	return existing.Grow(n), held.Grow(-n)
}

// swapWithHand inserts the held stack into the slot passed, or takes the contents of the slot if the hand is
// empty. valid decides if the held stack may be put in the slot.
func swapWithHand(inv *inventory.Inventory, slot int, held item.Stack, valid func(item.Stack) bool) (item.Stack, bool) {
	existing := inv.Slot(slot)
	if held.Empty() {
		if existing.Empty() {
			return held, false
		}
		inv.SetSlot(slot, item.Stack{})
		return existing, true
	}
	if valid != nil && !valid(held) {
		return held, false
	}
	contents, rest := merge(held, existing)
	if inventory.SameStack(contents, existing) {
		return held, false
	}
	inv.SetSlot(slot, contents)
	return rest, true
}

// itemName returns the identifier of the item in the stack passed.
func itemName(s item.Stack) string {
	if s.Empty() {
		return ""
	}
	name, _ := s.Item().EncodeItem()
	return name
}
