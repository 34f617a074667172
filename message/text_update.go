package message

import (
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// TextUpdate is sent by the client when it finished typing a new name for the item on an anvil.
type TextUpdate struct {
	Position protocol.BlockPos
	Text     string
}

// ID ...
func (*TextUpdate) ID() uint32 {
	return IDTextUpdate
}

// Marshal ...
func (m *TextUpdate) Marshal(io protocol.IO) {
	io.BlockPos(&m.Position)
	io.String(&m.Text)
}
