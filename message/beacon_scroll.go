package message

import (
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// BeaconScroll is sent by the client when it scrolls while looking at a beacon, to change the effect that
// will be bought with the next payment.
type BeaconScroll struct {
	Position protocol.BlockPos
	// Secondary is true if the secondary effect is changed rather than the primary one.
	Secondary bool
	// Delta is the amount of steps scrolled. Negative values scroll backwards.
	Delta int32
}

// ID ...
func (*BeaconScroll) ID() uint32 {
	return IDBeaconScroll
}

// Marshal ...
func (m *BeaconScroll) Marshal(io protocol.IO) {
	io.BlockPos(&m.Position)
	io.Bool(&m.Secondary)
	io.Varint32(&m.Delta)
}
