package message

import (
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// PageHit is sent by the client when it clicks a page of the book of an enchanting table.
type PageHit struct {
	Position protocol.BlockPos
	// Right is true if the right page was clicked.
	Right bool
	// X and Y are the page pixel that was clicked.
	X, Y float32
}

// ID ...
func (*PageHit) ID() uint32 {
	return IDPageHit
}

// Marshal ...
func (m *PageHit) Marshal(io protocol.IO) {
	io.BlockPos(&m.Position)
	io.Bool(&m.Right)
	io.Float32(&m.X)
	io.Float32(&m.Y)
}
