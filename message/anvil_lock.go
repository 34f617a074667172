package message

import (
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// AnvilLock is sent by the server to all players to tell them an anvil is, or is no longer, being used.
type AnvilLock struct {
	Position protocol.BlockPos
	Locked   bool
}

// ID ...
func (*AnvilLock) ID() uint32 {
	return IDAnvilLock
}

// Marshal ...
func (m *AnvilLock) Marshal(io protocol.IO) {
	io.BlockPos(&m.Position)
	io.Bool(&m.Locked)
}
