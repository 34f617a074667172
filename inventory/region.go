package inventory

import (
	"github.com/df-mc/dragonfly/server/item"
)

// Region is a contiguous range of slots [Start, Start+Count) of an inventory.
type Region struct {
	Start, Count int
}

// SingleSlot returns a region covering only the slot passed.
func SingleSlot(slot int) Region {
	return Region{Start: slot, Count: 1}
}

// Contains checks if the slot passed is part of the region.
func (r Region) Contains(slot int) bool {
	return slot >= r.Start && slot < r.Start+r.Count
}

// Slots returns all slots in the region in ascending order.
func (r Region) Slots() []int {
	slots := make([]int, r.Count)
	for i := range slots {
		slots[i] = r.Start + i
	}
	return slots
}

// RegionView is an Inventory restricted to a Region. Slots passed to a RegionView are relative to the
// start of the region.
type RegionView struct {
	inv    *Inventory
	region Region
}

// Region returns the region the view is restricted to.
func (v RegionView) Region() Region {
	return v.region
}

// Size returns the amount of slots in the view.
func (v RegionView) Size() int {
	return v.region.Count
}

// Slot returns the stack in the slot passed, relative to the start of the region.
func (v RegionView) Slot(slot int) item.Stack {
	return v.inv.Slot(v.abs(slot))
}

// SetSlot sets the stack in the slot passed, relative to the start of the region.
func (v RegionView) SetSlot(slot int, s item.Stack) {
	v.inv.SetSlot(v.abs(slot), s)
}

// Insert adds as much of the stack passed to the region as possible, first merging into stacks of the
// same item and then filling empty slots. The part of the stack that did not fit is returned.
func (v RegionView) Insert(s item.Stack) item.Stack {
	if s.Empty() {
		return s
	}
	for i := 0; i < v.region.Count && !s.Empty(); i++ {
		existing := v.Slot(i)
		if existing.Empty() || !existing.Comparable(s) {
			continue
		}
		n := min(existing.MaxCount()-existing.Count(), s.Count())
		if n <= 0 {
			continue
		}
		v.SetSlot(i, existing.Grow(n))
		s = s.Grow(-n)
	}
	for i := 0; i < v.region.Count && !s.Empty(); i++ {
		if !v.Slot(i).Empty() {
			continue
		}
		n := min(s.MaxCount(), s.Count())
		v.SetSlot(i, s.Grow(n-s.Count()))
		s = s.Grow(-n)
	}
	return s
}

// Extract removes up to n items from the first non-empty slot of the region and returns them.
func (v RegionView) Extract(n int) item.Stack {
	for i := 0; i < v.region.Count; i++ {
		existing := v.Slot(i)
		if existing.Empty() {
			continue
		}
		n = min(n, existing.Count())
		v.SetSlot(i, existing.Grow(-n))
		return existing.Grow(n - existing.Count())
	}
	return item.Stack{}
}

func (v RegionView) abs(slot int) int {
	if slot < 0 || slot >= v.region.Count {
		// Let the inventory report the slot as out of range.
		return -1
	}
	return v.region.Start + slot
}
