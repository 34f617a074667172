package message

import (
	"github.com/oomph-ac/immersion/game"
	"github.com/oomph-ac/immersion/oerror"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// MaxDragSlots is the maximum amount of slots a DragCommit may carry.
const MaxDragSlots = 9

// DragCommit is sent by the client when it finished dragging a stack over the grid of a crafting table.
// The server distributes the stack it knows the player holds over the slots again.
type DragCommit struct {
	// Position is the position of the crafting table.
	Position protocol.BlockPos
	// Slots holds the grid slots dragged over, in the order they were touched.
	Slots []int32
}

// ID ...
func (*DragCommit) ID() uint32 {
	return IDDragCommit
}

// Marshal ...
func (m *DragCommit) Marshal(io protocol.IO) {
	io.BlockPos(&m.Position)

	count := uint32(len(m.Slots))
	io.Varuint32(&count)
	if _, reading := io.(*protocol.Reader); reading {
		if count > MaxDragSlots {
			panic(oerror.New(game.ErrorTooManyDragSlots, count, MaxDragSlots))
		}
		m.Slots = make([]int32, count)
	}
	for i := range m.Slots {
		io.Varint32(&m.Slots[i])
	}
}
