package message

import (
	"bytes"
	"fmt"

	"github.com/oomph-ac/immersion/game"
	"github.com/oomph-ac/immersion/internal"
	"github.com/oomph-ac/immersion/oerror"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// Message is a logical message exchanged between the client and the server about an interaction with a
// block. Messages are encoded the same way as packets: a header holding the ID, followed by the fields
// written by Marshal.
type Message interface {
	ID() uint32
	Marshal(io protocol.IO)
}

const (
	IDDragCommit uint32 = iota + 1
	IDPageHit
	IDTextUpdate
	IDOpenGui
	IDAnvilLock
	IDBeaconScroll
)

// pool holds functions returning an empty message for every message ID.
var pool = map[uint32]func() Message{
	IDDragCommit:   func() Message { return &DragCommit{} },
	IDPageHit:      func() Message { return &PageHit{} },
	IDTextUpdate:   func() Message { return &TextUpdate{} },
	IDOpenGui:      func() Message { return &OpenGui{} },
	IDAnvilLock:    func() Message { return &AnvilLock{} },
	IDBeaconScroll: func() Message { return &BeaconScroll{} },
}

// Encode encodes the message passed.
func Encode(m Message) []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer internal.BufferPool.Put(buf)

	buf.Reset()

	header := &packet.Header{PacketID: m.ID()}
	_ = header.Write(buf)
	m.Marshal(protocol.NewWriter(buf, 0))
	return bytes.Clone(buf.Bytes())
}

// Decode decodes a message encoded with Encode. Malformed data results in an error, never in a panic.
func Decode(b []byte) (m Message, err error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer internal.BufferPool.Put(buf)

	buf.Reset()
	buf.Write(b)

	h := &packet.Header{}
	if err := h.Read(buf); err != nil {
		return nil, oerror.New("error reading message header: %v", err)
	}
	f, ok := pool[h.PacketID]
	if !ok {
		return nil, oerror.New(game.ErrorUnknownMessage, h.PacketID)
	}

	defer func() {
		if r := recover(); r != nil {
			m, err = nil, oerror.New(game.ErrorMessageDecode, h.PacketID, fmt.Sprint(r))
		}
	}()
	m = f()
	m.Marshal(protocol.NewReader(buf, 0, false))
	if buf.Len() != 0 {
		return nil, oerror.New(game.ErrorMessageTrailing, h.PacketID, buf.Len())
	}
	return m, nil
}
