package inventory

import (
	"testing"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sticks(n int) item.Stack {
	return item.NewStack(item.Stick{}, n)
}

func emptySlots(int) item.Stack {
	return item.Stack{}
}

func TestDistributeTenOverThree(t *testing.T) {
	touched := []int{1, 2, 3}
	deliveries := DistributeAll(sticks(10), emptySlots, touched)
	require.Len(t, deliveries, 3)
	for i, d := range deliveries {
		assert.Equal(t, touched[i], d.Slot, "deliveries must follow touch order")
		assert.Equal(t, 3, d.Amount)
	}
	assert.Equal(t, 9, Total(deliveries), "the remainder must not be redistributed")
}

func TestDistributeNearlyFullSlot(t *testing.T) {
	contents := func(slot int) item.Stack {
		if slot == 5 {
			return sticks(63)
		}
		return item.Stack{}
	}
	touched := []int{4, 5}
	assert.Equal(t, 2, Distribute(sticks(4), contents, touched, 4))
	assert.Equal(t, Invalid, Distribute(sticks(4), contents, touched, 5))
}

func TestDistributeIncompatible(t *testing.T) {
	contents := func(slot int) item.Stack {
		if slot == 1 {
			return item.NewStack(item.Apple{}, 1)
		}
		return item.Stack{}
	}
	touched := []int{0, 1}
	assert.Equal(t, Invalid, Distribute(sticks(8), contents, touched, 1))
	assert.Equal(t, 4, Distribute(sticks(8), contents, touched, 0))

	merge := func(int) item.Stack { return sticks(10) }
	assert.Equal(t, 4, Distribute(sticks(8), merge, touched, 1), "a slot holding the same item accepts a merge")
}

func TestDistributeMaxCountOfItem(t *testing.T) {
	contents := func(int) item.Stack { return item.NewStack(item.EnderPearl{}, 14) }
	assert.Equal(t, Invalid, Distribute(item.NewStack(item.EnderPearl{}, 3), contents, []int{0}, 0))
	assert.Equal(t, 2, Distribute(item.NewStack(item.EnderPearl{}, 2), contents, []int{0}, 0))
}

func TestDistributeDegenerateInput(t *testing.T) {
	assert.Equal(t, Invalid, Distribute(item.Stack{}, emptySlots, []int{0}, 0), "empty hand")
	assert.Equal(t, Invalid, Distribute(sticks(4), emptySlots, nil, 0), "nothing touched")
	assert.Equal(t, Invalid, Distribute(sticks(4), emptySlots, []int{1, 2}, 3), "current slot not touched")
	assert.Equal(t, 0, Distribute(sticks(2), emptySlots, []int{1, 2, 3}, 3), "more slots than items")
}

func TestDistributeIdempotent(t *testing.T) {
	contents := func(slot int) item.Stack {
		if slot%2 == 0 {
			return sticks(60)
		}
		return item.Stack{}
	}
	touched := []int{3, 0, 7, 2, 5}
	first := DistributeAll(sticks(27), contents, touched)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, DistributeAll(sticks(27), contents, touched))
	}
}

func TestDistributeSum(t *testing.T) {
	for n := 1; n <= 64; n++ {
		for k := 1; k <= 9; k++ {
			touched := make([]int, k)
			for i := range touched {
				touched[i] = i
			}
			total := Total(DistributeAll(sticks(n), emptySlots, touched))
			require.Equal(t, k*(n/k), total, "n=%d k=%d", n, k)
			require.LessOrEqual(t, total, n)
		}
	}
}

func TestApplyDrag(t *testing.T) {
	inv := New(10)
	inv.SetSlot(3, sticks(63))
	inv.SetSlot(4, item.NewStack(item.Apple{}, 1))

	rest := ApplyDrag(inv, sticks(10), []int{0, 1, 2, 3}, 1)
	// Slots 1, 2 and 3 are empty and receive 2 each. Slot 4 holds apples and slot 3 cannot take 2 more.
	assert.Equal(t, 2, inv.Slot(1).Count())
	assert.Equal(t, 2, inv.Slot(2).Count())
	assert.Equal(t, 63, inv.Slot(3).Count())
	assert.Equal(t, 1, inv.Slot(4).Count())
	assert.Equal(t, 4, rest.Count())
	assert.True(t, inv.Slot(1).Comparable(sticks(1)))
	assert.True(t, inv.Slot(0).Empty(), "the offset must be applied")

	rest = ApplyDrag(inv, sticks(3), []int{0, 1, 2}, 1)
	assert.True(t, rest.Empty())
	assert.Equal(t, 3, inv.Slot(1).Count())
}

func TestApplyDragEmptyHand(t *testing.T) {
	inv := New(3)
	rest := ApplyDrag(inv, item.Stack{}, []int{0, 1}, 0)
	assert.True(t, rest.Empty())
	for _, s := range inv.Slots() {
		assert.True(t, s.Empty())
	}
}
