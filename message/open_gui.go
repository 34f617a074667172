package message

import (
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

const (
	// GuiAnvilText opens the text field used to rename the item on an anvil.
	GuiAnvilText uint8 = iota
	// GuiRecipes opens the recipe book next to a crafting table.
	GuiRecipes
)

// OpenGui asks to open an auxiliary screen for a block. The client sends it to request the screen, and the
// server sends it back once the screen may be opened.
type OpenGui struct {
	Position protocol.BlockPos
	Mode     uint8
}

// ID ...
func (*OpenGui) ID() uint32 {
	return IDOpenGui
}

// Marshal ...
func (m *OpenGui) Marshal(io protocol.IO) {
	io.BlockPos(&m.Position)
	io.Uint8(&m.Mode)
}
