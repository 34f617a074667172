package tile

import (
	"github.com/chewxy/math32"
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/immersion/game"
	"github.com/oomph-ac/immersion/inventory"
	"github.com/oomph-ac/immersion/omath"
	"github.com/oomph-ac/immersion/selection"
)

const (
	// CraftingOutput is the slot holding the result of the recipe on the table.
	CraftingOutput = 0
	// CraftingGridStart is the first slot of the 3x3 crafting grid. Grid slots are ordered row by row.
	CraftingGridStart = 1
	CraftingGridSize  = 9

	// craftingTopY is the height of the surface of the crafting table.
	craftingTopY = 0.875
)

var (
	craftingBoxes = buildCraftingBoxes()

	craftingRouter = inventory.Router{
		Table: map[df_cube.Direction]inventory.Region{
			df_cube.North: inventory.SingleSlot(8),
			df_cube.South: inventory.SingleSlot(2),
			df_cube.West:  inventory.SingleSlot(6),
			df_cube.East:  inventory.SingleSlot(4),
		},
		Up: inventory.Ptr(inventory.SingleSlot(5)),
	}
)

// buildCraftingBoxes creates the boxes of the 3x3 grid drawn on top of the table, and of the output slot
// to the left of it. Only the output may be clicked, to take the result.
func buildCraftingBoxes() []selection.Box {
	boxes := make([]selection.Box, 0, 10)
	for x := 0; x <= 3; x++ {
		for y := 0; y <= 2; y++ {
			if x == 3 && y != 1 {
				continue
			}
			slot := CraftingGridStart + x + y*3
			var opts []selection.BoxOption
			if x == 3 {
				slot = CraftingOutput
				opts = append(opts, selection.WithRightClicks())
			}
			x0, z0 := float32(13-x*3)*game.Pixel, float32(12-y*3)*game.Pixel
			x1, z1 := float32(13-x*3-2)*game.Pixel, float32(12-y*3-2)*game.Pixel
			boxes = append(boxes, selection.NewBox(cube.Box(
				math32.Min(x0, x1)+0.004, 0.8751+0.004, math32.Min(z0, z1)+0.004,
				math32.Max(x0, x1)-0.004, 0.89-0.004, math32.Max(z0, z1)-0.004,
			), slot, opts...))
		}
	}
	return boxes
}

// CraftingTable is a crafting table whose grid lives on top of the block. The output always holds the result
// of the recipe matching the grid.
type CraftingTable struct {
	base
	// cost is the amount of items taking the output consumes from every grid slot.
	cost [CraftingGridSize]int
}

// NewCraftingTable ...
func NewCraftingTable(pos df_cube.Pos, facing df_cube.Direction) *CraftingTable {
	t := &CraftingTable{base: newBase(pos, facing, 1+CraftingGridSize)}
	t.inv.Observe(func(slot int, _, _ item.Stack) {
		if slot != CraftingOutput {
			t.craft()
		}
	})
	return t
}

// craft puts the result of the recipe matching the grid in the output slot, or empties it if no recipe
// matches.
func (t *CraftingTable) craft() {
	var g grid
	for i := range g {
		g[i] = t.inv.Slot(CraftingGridStart + i)
	}
	r, cost, ok := match(g)
	t.cost = cost
	if !ok {
		t.inv.SetSlot(CraftingOutput, item.Stack{})
		return
	}
	t.inv.SetSlot(CraftingOutput, r.Output()[0])
}

// TakeResult takes the output of the table, consuming the ingredients of the recipe from the grid. The
// output is crafted again from what is left. An empty stack is returned if no recipe matches.
func (t *CraftingTable) TakeResult() item.Stack {
	t.craft()
	result, cost := t.inv.Slot(CraftingOutput), t.cost
	if result.Empty() {
		return result
	}
	for i, n := range cost {
		if n == 0 {
			continue
		}
		slot := CraftingGridStart + i
		t.inv.SetSlot(slot, t.inv.Slot(slot).Grow(-n))
	}
	return result
}

// Activate takes the result when the output is clicked, into an empty hand or onto a held stack of the same
// item with room for it.
func (t *CraftingTable) Activate(hit selection.Hit, _ mgl32.Vec3, held item.Stack) (item.Stack, bool) {
	if hit.Slot != CraftingOutput {
		return held, false
	}
	result := t.inv.Slot(CraftingOutput)
	if result.Empty() {
		return held, false
	}
	if !held.Empty() && (!held.Comparable(result) || held.Count()+result.Count() > held.MaxCount()) {
		return held, false
	}
	result = t.TakeResult()
	if held.Empty() {
		return result, true
	}
	return held.Grow(result.Count()), true
}

// Name ...
func (*CraftingTable) Name() string {
	return "minecraft:crafting_table"
}

// Router ...
func (*CraftingTable) Router() inventory.Router {
	return craftingRouter
}

// Boxes ...
func (*CraftingTable) Boxes() []selection.Box {
	return craftingBoxes
}

// DragSlots returns the crafting grid. The output slot cannot be dragged over.
func (*CraftingTable) DragSlots() inventory.Region {
	return inventory.Region{Start: CraftingGridStart, Count: CraftingGridSize}
}

// DragSlot returns the grid slot under a position on top of the table.
func (t *CraftingTable) DragSlot(local mgl32.Vec3) (int, bool) {
	x, y, ok := GridPos(local, t.facing)
	if !ok {
		return 0, false
	}
	return CraftingGridStart + x + y*3, true
}

// GridPos maps a block-local position on top of a crafting table with the facing passed to the column
// and row of the crafting grid under it. The grid is 8x8 pixels with a one pixel gap between cells, and
// positions on a gap are not part of any cell.
func GridPos(local mgl32.Vec3, facing df_cube.Direction) (x, y int, ok bool) {
	if local.Y() < craftingTopY-0.001 {
		return 0, 0, false
	}
	local = omath.RotateHorizontal(local, -omath.QuarterTurns(facing))
	px := int(math32.Floor(13 - local.X()*16))
	pz := int(math32.Floor(12 - local.Z()*16))
	if px < 0 || px > 7 || pz < 0 || pz > 7 {
		return 0, 0, false
	}
	if px%3 == 2 || pz%3 == 2 {
		return 0, 0, false
	}
	return px / 3, pz / 3, true
}
