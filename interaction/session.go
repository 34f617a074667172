package interaction

import (
	"encoding/binary"
	"slices"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/google/uuid"
	"github.com/oomph-ac/immersion/inventory"
	"github.com/zeebo/xxh3"
)

// DragSession is a stack being dragged over the slots of a block. It only exists on the client that started
// it, from the moment dragging starts until it stops for any reason.
type DragSession struct {
	// ID identifies the session in logs.
	ID uuid.UUID
	// Target is the position of the block dragged over. A session never changes its target.
	Target df_cube.Pos
	// Held is the stack that was held when dragging started.
	Held item.Stack
	// StartTick is the tick of the machine the session started in.
	StartTick int64

	slots []int
	// key is the digest of slots that amounts was computed for.
	key     uint64
	amounts *orderedmap.OrderedMap[int, int]
}

func newDragSession(target df_cube.Pos, held item.Stack, tick int64) *DragSession {
	return &DragSession{
		ID:        uuid.New(),
		Target:    target,
		Held:      held,
		StartTick: tick,
		amounts:   orderedmap.NewOrderedMap[int, int](),
	}
}

// Slots returns the slots dragged over, in the order they were touched.
func (s *DragSession) Slots() []int {
	return slices.Clone(s.slots)
}

// Touch adds the slot passed to the session. False is returned if it was touched before.
func (s *DragSession) Touch(slot int) bool {
	if slices.Contains(s.slots, slot) {
		return false
	}
	s.slots = append(s.slots, slot)
	return true
}

// Amounts returns the amount delivered to every slot touched, in touch order. The amounts are computed
// again only if the touched slots changed since they were last computed.
func (s *DragSession) Amounts(contents func(slot int) item.Stack) []inventory.Delivery {
	if key := slotsKey(s.slots); key != s.key || s.amounts.Len() != len(s.slots) {
		s.key = key
		s.amounts = orderedmap.NewOrderedMap[int, int]()
		for _, d := range inventory.DistributeAll(s.Held, contents, s.slots) {
			s.amounts.Set(d.Slot, d.Amount)
		}
	}
	deliveries := make([]inventory.Delivery, 0, s.amounts.Len())
	for el := s.amounts.Front(); el != nil; el = el.Next() {
		deliveries = append(deliveries, inventory.Delivery{Slot: el.Key, Amount: el.Value})
	}
	return deliveries
}

// Amount returns the cached amount delivered to the slot passed.
func (s *DragSession) Amount(slot int) (int, bool) {
	return s.amounts.Get(slot)
}

// slotsKey returns a digest of the slots passed that depends on their order.
func slotsKey(slots []int) uint64 {
	b := make([]byte, 0, len(slots)*4)
	for _, slot := range slots {
		b = binary.LittleEndian.AppendUint32(b, uint32(slot))
	}
	return xxh3.Hash(b)
}
