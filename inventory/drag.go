package inventory

import (
	"slices"

	"github.com/df-mc/dragonfly/server/item"
)

// Invalid is the amount reported for a touched slot that cannot receive any items of the stack dragged,
// either because it holds another item or because it would overflow.
const Invalid = -1

// Delivery is the amount delivered to a single slot by a drag.
type Delivery struct {
	Slot   int
	Amount int
}

// Distribute returns the amount of the held stack delivered to the current slot when it is dragged over
// all touched slots. Every touched slot receives floor(count / len(touched)). The remainder of the
// division stays in the hand. Invalid is returned if the current slot is not compatible with the stack,
// or if the current slot was never touched.
func Distribute(held item.Stack, contents func(slot int) item.Stack, touched []int, current int) int {
	if held.Empty() || len(touched) == 0 || !slices.Contains(touched, current) {
		return Invalid
	}
	amount := held.Count() / len(touched)
	existing := contents(current)
	if existing.Empty() {
		return amount
	}
	if !existing.Comparable(held) || existing.Count()+amount > held.MaxCount() {
		return Invalid
	}
	return amount
}

// DistributeAll computes the amount delivered to every touched slot, from scratch and in the order the
// slots were touched.
func DistributeAll(held item.Stack, contents func(slot int) item.Stack, touched []int) []Delivery {
	deliveries := make([]Delivery, 0, len(touched))
	for _, slot := range touched {
		deliveries = append(deliveries, Delivery{Slot: slot, Amount: Distribute(held, contents, touched, slot)})
	}
	return deliveries
}

// Total returns the sum of all valid amounts delivered.
func Total(deliveries []Delivery) int {
	var total int
	for _, d := range deliveries {
		if d.Amount > 0 {
			total += d.Amount
		}
	}
	return total
}

// ApplyDrag replays a drag of the held stack over the touched slots against the inventory passed, moving
// the items into it. Touched slots are offset by the amount passed to get the inventory slot they stand
// for. The part of the held stack that was not delivered is returned.
func ApplyDrag(inv *Inventory, held item.Stack, touched []int, offset int) item.Stack {
	if held.Empty() {
		return held
	}
	contents := inv.Contents()
	slots := make([]int, len(touched))
	for i, s := range touched {
		slots[i] = s + offset
	}
	var delivered int
	for _, d := range DistributeAll(held, contents, slots) {
		if d.Amount <= 0 || !inv.Valid(d.Slot) {
			continue
		}
		if existing := inv.Slot(d.Slot); existing.Empty() {
			inv.SetSlot(d.Slot, held.Grow(d.Amount-held.Count()))
		} else {
			inv.SetSlot(d.Slot, existing.Grow(d.Amount))
		}
		delivered += d.Amount
	}
	return held.Grow(-delivered)
}
