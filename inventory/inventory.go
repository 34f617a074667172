package inventory

import (
	"github.com/df-mc/dragonfly/server/item"
	"github.com/oomph-ac/immersion/assert"
	"github.com/oomph-ac/immersion/game"
)

// Inventory is the item storage of a tile. Slots are logical slots: their meaning is decided by the tile
// owning the inventory, not by any screen layout.
type Inventory struct {
	slots []item.Stack
	// observe is called every time the contents of a slot change, before changed. It is owned by the tile
	// the inventory belongs to.
	observe func(slot int, before, after item.Stack)
	// changed is called every time the contents of a slot change.
	changed func(slot int, before, after item.Stack)
}

// New creates an empty inventory with the amount of slots passed.
func New(size int) *Inventory {
	assert.IsTrue(size > 0, "inventory size must be at least 1, got %d", size)
	return &Inventory{slots: make([]item.Stack, size)}
}

// OnChange sets a function called every time the contents of a slot change.
func (inv *Inventory) OnChange(f func(slot int, before, after item.Stack)) {
	inv.changed = f
}

// Observe sets a function called every time the contents of a slot change, before the function set through
// OnChange. It is reserved for the tile owning the inventory, which may change other slots from inside it.
func (inv *Inventory) Observe(f func(slot int, before, after item.Stack)) {
	inv.observe = f
}

// Size returns the amount of slots in the inventory.
func (inv *Inventory) Size() int {
	return len(inv.slots)
}

// Valid checks if the slot passed exists in the inventory.
func (inv *Inventory) Valid(slot int) bool {
	return slot >= 0 && slot < len(inv.slots)
}

// Slot returns the stack in the slot passed. It panics if the slot does not exist.
func (inv *Inventory) Slot(slot int) item.Stack {
	inv.validateSlot(slot)
	return inv.slots[slot]
}

// SetSlot sets the stack in the slot passed. It panics if the slot does not exist.
func (inv *Inventory) SetSlot(slot int, s item.Stack) {
	inv.validateSlot(slot)
	if s.Empty() {
		s = item.Stack{}
	}
	before := inv.slots[slot]
	inv.slots[slot] = s
	if sameStack(before, s) {
		return
	}
	if inv.observe != nil {
		inv.observe(slot, before, s)
	}
	if inv.changed != nil {
		inv.changed(slot, before, s)
	}
}

// Slots returns a copy of all stacks in the inventory.
func (inv *Inventory) Slots() []item.Stack {
	slots := make([]item.Stack, len(inv.slots))
	copy(slots, inv.slots)
	return slots
}

// Contents returns a function returning the stack in a slot, or an empty stack for slots that do not
// exist. It is the form in which Distribute expects slot contents.
func (inv *Inventory) Contents() func(slot int) item.Stack {
	return func(slot int) item.Stack {
		if !inv.Valid(slot) {
			return item.Stack{}
		}
		return inv.slots[slot]
	}
}

// Clear empties all slots of the inventory.
func (inv *Inventory) Clear() {
	for i := range inv.slots {
		inv.SetSlot(i, item.Stack{})
	}
}

// View returns a view of the inventory restricted to the region passed.
func (inv *Inventory) View(r Region) RegionView {
	assert.IsTrue(r.Start >= 0 && r.Count >= 0 && r.Start+r.Count <= len(inv.slots), "region %v does not fit in an inventory of %d slots", r, len(inv.slots))
	return RegionView{inv: inv, region: r}
}

func (inv *Inventory) validateSlot(slot int) {
	assert.IsTrue(inv.Valid(slot), game.ErrorInvalidSlot, slot, len(inv.slots)-1)
}

// sameStack checks if two stacks hold the same item in the same amount.
func sameStack(a, b item.Stack) bool {
	if a.Empty() || b.Empty() {
		return a.Empty() == b.Empty()
	}
	return a.Count() == b.Count() && a.Comparable(b)
}

// SameStack checks if two stacks hold the same item in the same amount.
func SameStack(a, b item.Stack) bool {
	return sameStack(a, b)
}
