package tile

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/immersion/inventory"
	"github.com/oomph-ac/immersion/selection"
)

const (
	FurnaceInput = iota
	FurnaceFuel
	FurnaceOutput
)

var (
	furnaceBoxes = []selection.Box{
		selection.NewBox(cube.Box(0, 0, 0, 1, 1, 1), inventory.Invalid, selection.WithRightClicks()),
	}

	furnaceRouter = inventory.Router{
		Table: inventory.Horizontal(inventory.SingleSlot(FurnaceFuel)),
		Up:    inventory.Ptr(inventory.SingleSlot(FurnaceInput)),
		Down:  inventory.Ptr(inventory.SingleSlot(FurnaceOutput)),
	}
)

// Furnace is a furnace that is loaded by clicking its front: the upper half holds the input, the lower half
// the fuel.
type Furnace struct {
	base
}

// NewFurnace ...
func NewFurnace(pos df_cube.Pos, facing df_cube.Direction) *Furnace {
	return &Furnace{base: newBase(pos, facing, 3)}
}

// Name ...
func (*Furnace) Name() string {
	return "minecraft:furnace"
}

// Router ...
func (*Furnace) Router() inventory.Router {
	return furnaceRouter
}

// Boxes ...
func (*Furnace) Boxes() []selection.Box {
	return furnaceBoxes
}

// Activate inserts the held stack into, or takes the stack out of, the slot behind the half of the front
// of the furnace that was clicked. Clicks on any other face do nothing.
func (f *Furnace) Activate(hit selection.Hit, local mgl32.Vec3, held item.Stack) (item.Stack, bool) {
	if hit.Face != f.facing.Face() {
		return held, false
	}
	slot := FurnaceFuel
	if local.Y() >= 0.5 {
		slot = FurnaceInput
	}
	return swapWithHand(f.inv, slot, held, func(s item.Stack) bool {
		return f.ValidFor(slot, s)
	})
}

// ValidFor checks if the stack passed may be put into the slot passed.
func (*Furnace) ValidFor(slot int, s item.Stack) bool {
	switch slot {
	case FurnaceFuel:
		_, ok := s.Item().(item.Fuel)
		return ok
	case FurnaceOutput:
		return false
	}
	return true
}
