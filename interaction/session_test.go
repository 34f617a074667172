package interaction

import (
	"testing"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/oomph-ac/immersion/inventory"
	"github.com/stretchr/testify/assert"
)

func TestSessionTouch(t *testing.T) {
	s := newDragSession(df_cube.Pos{}, item.NewStack(item.Apple{}, 5), 1)
	assert.True(t, s.Touch(3))
	assert.True(t, s.Touch(1))
	assert.False(t, s.Touch(3))
	assert.Equal(t, []int{3, 1}, s.Slots())
}

func TestSessionAmountsCached(t *testing.T) {
	s := newDragSession(df_cube.Pos{}, item.NewStack(item.Apple{}, 5), 1)
	s.Touch(4)
	s.Touch(2)

	calls := 0
	contents := func(int) item.Stack {
		calls++
		return item.Stack{}
	}
	first := s.Amounts(contents)
	assert.Equal(t, []inventory.Delivery{{Slot: 4, Amount: 2}, {Slot: 2, Amount: 2}}, first)
	n := calls

	assert.Equal(t, first, s.Amounts(contents))
	assert.Equal(t, n, calls, "amounts should not be computed again for the same slots")

	s.Touch(7)
	assert.Equal(t, []inventory.Delivery{{Slot: 4, Amount: 1}, {Slot: 2, Amount: 1}, {Slot: 7, Amount: 1}}, s.Amounts(contents))
	amount, ok := s.Amount(7)
	assert.True(t, ok)
	assert.Equal(t, 1, amount)
}

func TestSlotsKeyOrder(t *testing.T) {
	assert.NotEqual(t, slotsKey([]int{1, 2}), slotsKey([]int{2, 1}))
	assert.Equal(t, slotsKey([]int{5, 9}), slotsKey([]int{5, 9}))
}
