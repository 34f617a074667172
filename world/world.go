package world

import (
	"sort"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/immersion/book"
	"github.com/oomph-ac/immersion/game"
	"github.com/oomph-ac/immersion/oerror"
	"github.com/oomph-ac/immersion/tile"
	"github.com/oomph-ac/immersion/util"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// World holds the tiles of all interactive blocks, grouped by the chunk they are in.
type World struct {
	chunks map[protocol.ChunkPos]map[df_cube.Pos]tile.Tile
	// dirty holds the positions of tiles changed since they were last saved.
	dirty map[df_cube.Pos]struct{}

	log *logrus.Logger

	deadlock.RWMutex
}

// New ...
func New(log *logrus.Logger) *World {
	return &World{
		chunks: make(map[protocol.ChunkPos]map[df_cube.Pos]tile.Tile),
		dirty:  make(map[df_cube.Pos]struct{}),
		log:    log,
	}
}

// ChunkPosOf returns the position of the chunk the block position passed is in.
func ChunkPosOf(pos df_cube.Pos) protocol.ChunkPos {
	return protocol.ChunkPos{int32(pos[0]) >> 4, int32(pos[2]) >> 4}
}

// Tile returns the tile at the position passed.
func (w *World) Tile(pos df_cube.Pos) (tile.Tile, bool) {
	w.RLock()
	defer w.RUnlock()

	t, ok := w.chunks[ChunkPosOf(pos)][pos]
	return t, ok
}

// SetTile adds a tile to the world, replacing any tile at the same position.
func (w *World) SetTile(t tile.Tile) {
	pos := t.Pos()
	chunkPos := ChunkPosOf(pos)

	w.Lock()
	defer w.Unlock()

	if w.chunks[chunkPos] == nil {
		w.chunks[chunkPos] = make(map[df_cube.Pos]tile.Tile)
	}
	w.chunks[chunkPos][pos] = t
	w.dirty[pos] = struct{}{}
	t.Inventory().OnChange(func(int, item.Stack, item.Stack) {
		w.markDirty(pos)
	})
}

// Place creates an empty tile for the block with the name passed and adds it to the world.
func (w *World) Place(name string, pos df_cube.Pos, facing df_cube.Direction) (tile.Tile, error) {
	t, ok := tile.New(name, pos, facing)
	if !ok {
		return nil, oerror.New(game.ErrorUnknownTile, pos)
	}
	w.SetTile(t)
	if w.log != nil {
		w.log.Debugf("placed %s at %v facing %v", name, pos, facing)
	}
	return t, nil
}

// RemoveTile removes the tile at the position passed and returns it.
func (w *World) RemoveTile(pos df_cube.Pos) (tile.Tile, bool) {
	chunkPos := ChunkPosOf(pos)

	w.Lock()
	defer w.Unlock()

	t, ok := w.chunks[chunkPos][pos]
	if !ok {
		return nil, false
	}
	delete(w.chunks[chunkPos], pos)
	if len(w.chunks[chunkPos]) == 0 {
		delete(w.chunks, chunkPos)
	}
	delete(w.dirty, pos)
	t.Inventory().OnChange(nil)
	return t, true
}

// Tiles returns all tiles in the world, ordered by position.
func (w *World) Tiles() []tile.Tile {
	w.RLock()
	tiles := make([]tile.Tile, 0, len(w.chunks))
	for _, c := range w.chunks {
		for _, t := range c {
			tiles = append(tiles, t)
		}
	}
	w.RUnlock()

	sortTiles(tiles)
	return tiles
}

// TilesNear returns all tiles within the cube of the radius passed around a block position, ordered by
// position.
func (w *World) TilesNear(centre df_cube.Pos, radius int) []tile.Tile {
	lo, hi := centre.Sub(df_cube.Pos{radius, radius, radius}), centre.Add(df_cube.Pos{radius, radius, radius})
	minChunk, maxChunk := ChunkPosOf(lo), ChunkPosOf(hi)

	var tiles []tile.Tile
	w.RLock()
	for cx := minChunk[0]; cx <= maxChunk[0]; cx++ {
		for cz := minChunk[1]; cz <= maxChunk[1]; cz++ {
			for pos, t := range w.chunks[protocol.ChunkPos{cx, cz}] {
				if pos[0] >= lo[0] && pos[0] <= hi[0] && pos[1] >= lo[1] && pos[1] <= hi[1] && pos[2] >= lo[2] && pos[2] <= hi[2] {
					tiles = append(tiles, t)
				}
			}
		}
	}
	w.RUnlock()

	sortTiles(tiles)
	return tiles
}

// BookCandidates returns the enchanting tables near the block position passed as candidates for book
// clicks.
func (w *World) BookCandidates(centre df_cube.Pos, radius int) []book.Candidate {
	var candidates []book.Candidate
	for _, t := range w.TilesNear(centre, radius) {
		if table, ok := t.(*tile.EnchantingTable); ok {
			candidates = append(candidates, table.Candidate())
		}
	}
	return candidates
}

// Tick animates the books of all enchanting tables, which open for the nearest of the players passed
// within the radius passed.
func (w *World) Tick(players []mgl32.Vec3, radius float32) {
	for _, t := range w.Tiles() {
		table, ok := t.(*tile.EnchantingTable)
		if !ok {
			continue
		}
		centre := util.BlockCentre(table.Pos())

		var nearest *mgl32.Vec3
		best := radius * radius
		for i, p := range players {
			if d := p.Sub(centre).LenSqr(); d <= best {
				nearest, best = &players[i], d
			}
		}
		table.Tick(nearest)
	}
}

// UnloadChunk removes all tiles in the chunk passed and returns them.
func (w *World) UnloadChunk(chunkPos protocol.ChunkPos) []tile.Tile {
	w.Lock()
	defer w.Unlock()

	var tiles []tile.Tile
	for pos, t := range w.chunks[chunkPos] {
		t.Inventory().OnChange(nil)
		delete(w.dirty, pos)
		tiles = append(tiles, t)
	}
	delete(w.chunks, chunkPos)
	sortTiles(tiles)
	return tiles
}

// Dirty returns the positions of all tiles changed since they were last saved, ordered by position.
func (w *World) Dirty() []df_cube.Pos {
	w.RLock()
	defer w.RUnlock()

	positions := make([]df_cube.Pos, 0, len(w.dirty))
	for pos := range w.dirty {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		return lessPos(positions[i], positions[j])
	})
	return positions
}

func (w *World) markDirty(pos df_cube.Pos) {
	w.Lock()
	w.dirty[pos] = struct{}{}
	w.Unlock()
}

func sortTiles(tiles []tile.Tile) {
	sort.Slice(tiles, func(i, j int) bool {
		return lessPos(tiles[i].Pos(), tiles[j].Pos())
	})
}

func lessPos(a, b df_cube.Pos) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	if a[1] != b[1] {
		return a[1] < b[1]
	}
	return a[2] < b[2]
}
