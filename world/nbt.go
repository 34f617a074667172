package world

import (
	"bytes"

	"github.com/oomph-ac/immersion/tile"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// Save writes the NBT of every tile in the world to the buffer passed and clears the dirty set. If onlyDirty
// is true, only tiles changed since the last save are written.
func (w *World) Save(buf *bytes.Buffer, onlyDirty bool) (int, error) {
	var tiles []tile.Tile
	if onlyDirty {
		for _, pos := range w.Dirty() {
			if t, ok := w.Tile(pos); ok {
				tiles = append(tiles, t)
			}
		}
	} else {
		tiles = w.Tiles()
	}

	enc := nbt.NewEncoderWithEncoding(buf, nbt.NetworkLittleEndian)
	for _, t := range tiles {
		if err := enc.Encode(tile.Encode(t)); err != nil {
			return 0, err
		}
	}

	w.Lock()
	for _, t := range tiles {
		delete(w.dirty, t.Pos())
	}
	w.Unlock()
	return len(tiles), nil
}

// Load reads tiles written by Save from the buffer passed and adds them to the world. Tiles that cannot be
// decoded are skipped. The amount of tiles loaded is returned.
func (w *World) Load(buf *bytes.Buffer) int {
	dec := nbt.NewDecoderWithEncoding(buf, nbt.NetworkLittleEndian)
	var loaded []tile.Tile
	for {
		var data map[string]any
		if err := dec.Decode(&data); err != nil {
			break
		}
		t, err := tile.Decode(data)
		if err != nil {
			if w.log != nil {
				w.log.Warnf("skipping tile: %v", err)
			}
			continue
		}
		w.SetTile(t)
		loaded = append(loaded, t)
	}

	// Tiles that were just loaded do not need to be saved again.
	w.Lock()
	for _, t := range loaded {
		delete(w.dirty, t.Pos())
	}
	w.Unlock()
	return len(loaded)
}
