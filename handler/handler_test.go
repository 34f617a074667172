package handler

import (
	"sync"
	"testing"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/entity/effect"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/immersion/message"
	"github.com/oomph-ac/immersion/omath"
	"github.com/oomph-ac/immersion/settings"
	"github.com/oomph-ac/immersion/tile"
	"github.com/oomph-ac/immersion/util"
	"github.com/oomph-ac/immersion/world"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPlayer struct {
	id   uuid.UUID
	held item.Stack
	eye  mgl32.Vec3
	look mgl32.Vec3
	sent []message.Message
}

func newTestPlayer(eye mgl32.Vec3) *testPlayer {
	return &testPlayer{id: uuid.New(), eye: eye, look: mgl32.Vec3{0, -1, 0}}
}

func (p *testPlayer) UUID() uuid.UUID          { return p.id }
func (p *testPlayer) Name() string             { return p.id.String()[:8] }
func (p *testPlayer) Held() item.Stack         { return p.held }
func (p *testPlayer) SetHeld(s item.Stack)     { p.held = s }
func (p *testPlayer) EyeRay() omath.Ray        { return omath.NewRay(p.eye, p.look, 0) }
func (p *testPlayer) Send(msg message.Message) { p.sent = append(p.sent, msg) }

func newTestHandler(t *testing.T) (*Handler, *world.World) {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)
	w := world.New(log)
	h := New(w, log, settings.DefaultSettings(), NewMetrics(prometheus.NewRegistry()))
	t.Cleanup(h.Close)
	return h, w
}

var origin = df_cube.Pos{0, 64, 0}

func place(t *testing.T, w *world.World, name string, pos df_cube.Pos, facing df_cube.Direction) tile.Tile {
	placed, err := w.Place(name, pos, facing)
	require.NoError(t, err)
	return placed
}

func TestDragCommit(t *testing.T) {
	h, w := newTestHandler(t)
	table := place(t, w, "minecraft:crafting_table", origin, df_cube.North).(*tile.CraftingTable)
	p := newTestPlayer(mgl32.Vec3{0.5, 66, 0.5})
	p.held = item.NewStack(item.Stick{}, 10)

	err := h.HandleNow(p, &message.DragCommit{Position: util.ProtocolBlockPosFromCubePos(origin), Slots: []int32{0, 4, 0, 8, 9, -1}})
	require.NoError(t, err)

	inv := table.Inventory()
	for _, slot := range []int{1, 5, 9} {
		assert.Equal(t, 3, inv.Slot(slot).Count(), "slot %d", slot)
	}
	assert.Equal(t, 1, p.held.Count())
	assert.True(t, inv.Slot(tile.CraftingOutput).Empty())
}

func TestDragCommitRejected(t *testing.T) {
	h, w := newTestHandler(t)
	place(t, w, "minecraft:crafting_table", origin, df_cube.North)
	place(t, w, "minecraft:furnace", df_cube.Pos{1, 64, 0}, df_cube.North)
	pos := util.ProtocolBlockPosFromCubePos(origin)

	p := newTestPlayer(mgl32.Vec3{0.5, 66, 0.5})
	assert.Error(t, h.HandleNow(p, &message.DragCommit{Position: pos, Slots: []int32{0}}), "empty hand")

	p.held = item.NewStack(item.Stick{}, 10)
	assert.Error(t, h.HandleNow(p, &message.DragCommit{Position: pos, Slots: []int32{9, 12}}), "no valid cells")
	assert.Error(t, h.HandleNow(p, &message.DragCommit{Position: util.ProtocolBlockPosFromCubePos(df_cube.Pos{1, 64, 0}), Slots: []int32{0}}), "not a crafting table")
	assert.Error(t, h.HandleNow(p, &message.DragCommit{Position: util.ProtocolBlockPosFromCubePos(df_cube.Pos{5, 5, 5}), Slots: []int32{0}}), "no tile")

	far := newTestPlayer(mgl32.Vec3{0.5, 66, 30})
	far.held = item.NewStack(item.Stick{}, 10)
	assert.Error(t, h.HandleNow(far, &message.DragCommit{Position: pos, Slots: []int32{0}}), "out of reach")
	assert.Equal(t, 10, p.held.Count())
	assert.Equal(t, 10, far.held.Count())
}

func TestPageHit(t *testing.T) {
	h, w := newTestHandler(t)
	table := place(t, w, "minecraft:enchanting_table", origin, df_cube.North).(*tile.EnchantingTable)
	p := newTestPlayer(mgl32.Vec3{0.5, 66, 0.5})
	pos := util.ProtocolBlockPosFromCubePos(origin)

	assert.Error(t, h.HandleNow(p, &message.PageHit{Position: pos, Right: true, X: 80, Y: 115}), "closed book")

	table.Book.Open(0)
	assert.Error(t, h.HandleNow(p, &message.PageHit{Position: pos, Right: true, X: 95, Y: 115}), "outside of the page")
	require.NoError(t, h.HandleNow(p, &message.PageHit{Position: pos, Right: true, X: 80, Y: 115}))
	assert.Equal(t, 2, table.Book.Page)

	require.NoError(t, h.HandleNow(p, &message.PageHit{Position: pos, Right: false, X: 10, Y: 115}))
	assert.Equal(t, 0, table.Book.Page)
}

func TestAnvilLockFlow(t *testing.T) {
	h, w := newTestHandler(t)
	anvil := place(t, w, "minecraft:anvil", origin, df_cube.East).(*tile.Anvil)
	anvil.Inventory().SetSlot(tile.AnvilInput, item.NewStack(item.Apple{}, 1))
	pos := util.ProtocolBlockPosFromCubePos(origin)

	a, b := newTestPlayer(mgl32.Vec3{0.5, 66, 0.5}), newTestPlayer(mgl32.Vec3{1.5, 66, 0.5})
	h.Join(a)
	h.Join(b)

	require.NoError(t, h.HandleNow(a, &message.OpenGui{Position: pos, Mode: message.GuiAnvilText}))
	require.Len(t, a.sent, 1)
	assert.IsType(t, &message.OpenGui{}, a.sent[0])
	require.Len(t, b.sent, 1)
	assert.Equal(t, &message.AnvilLock{Position: pos, Locked: true}, b.sent[0])

	assert.Error(t, h.HandleNow(b, &message.OpenGui{Position: pos, Mode: message.GuiAnvilText}), "locked by a")
	assert.Error(t, h.HandleNow(b, &message.TextUpdate{Position: pos, Text: "stolen"}), "locked by a")
	assert.Error(t, h.HandleNow(a, &message.TextUpdate{Position: pos, Text: "this name is far too long for an anvil"}))
	assert.True(t, anvil.Locked())

	require.NoError(t, h.HandleNow(a, &message.TextUpdate{Position: pos, Text: "Golden"}))
	assert.False(t, anvil.Locked())
	assert.Equal(t, "Golden", anvil.ItemName())
	assert.Equal(t, "Golden", anvil.Inventory().Slot(tile.AnvilOutput).CustomName())
	assert.Equal(t, &message.AnvilLock{Position: pos, Locked: false}, b.sent[len(b.sent)-1])
}

func TestAnvilReleasedOnQuit(t *testing.T) {
	h, w := newTestHandler(t)
	anvil := place(t, w, "minecraft:anvil", origin, df_cube.East).(*tile.Anvil)
	pos := util.ProtocolBlockPosFromCubePos(origin)

	a, b := newTestPlayer(mgl32.Vec3{0.5, 66, 0.5}), newTestPlayer(mgl32.Vec3{1.5, 66, 0.5})
	h.Join(a)
	h.Join(b)
	require.NoError(t, h.HandleNow(a, &message.OpenGui{Position: pos, Mode: message.GuiAnvilText}))

	h.Quit(a)
	h.Flush()
	assert.False(t, anvil.Locked())
	assert.Equal(t, &message.AnvilLock{Position: pos, Locked: false}, b.sent[len(b.sent)-1])
}

func TestOpenRecipes(t *testing.T) {
	h, w := newTestHandler(t)
	place(t, w, "minecraft:crafting_table", origin, df_cube.North)
	place(t, w, "minecraft:anvil", df_cube.Pos{1, 64, 0}, df_cube.North)
	p := newTestPlayer(mgl32.Vec3{0.5, 66, 0.5})

	require.NoError(t, h.HandleNow(p, &message.OpenGui{Position: util.ProtocolBlockPosFromCubePos(origin), Mode: message.GuiRecipes}))
	assert.Len(t, p.sent, 1)
	assert.Error(t, h.HandleNow(p, &message.OpenGui{Position: util.ProtocolBlockPosFromCubePos(df_cube.Pos{1, 64, 0}), Mode: message.GuiRecipes}))
	assert.Error(t, h.HandleNow(p, &message.OpenGui{Position: util.ProtocolBlockPosFromCubePos(origin), Mode: 7}))
}

func TestActivateFurnace(t *testing.T) {
	h, w := newTestHandler(t)
	furnace := place(t, w, "minecraft:furnace", origin, df_cube.North).(*tile.Furnace)

	p := newTestPlayer(mgl32.Vec3{0.5, 64.7, -2})
	p.look = mgl32.Vec3{0, 0, 1}
	p.held = item.NewStack(item.Apple{}, 4)
	require.NoError(t, h.ActivateNow(p, origin))
	assert.Equal(t, 4, furnace.Inventory().Slot(tile.FurnaceInput).Count())
	assert.True(t, p.held.Empty())

	// The side of the furnace does nothing.
	side := newTestPlayer(mgl32.Vec3{-2, 64.7, 0.5})
	side.look = mgl32.Vec3{1, 0, 0}
	side.held = item.NewStack(item.Coal{}, 4)
	assert.Error(t, h.ActivateNow(side, origin))
	assert.Equal(t, 4, side.held.Count())
}

func TestActivateQueued(t *testing.T) {
	h, w := newTestHandler(t)
	furnace := place(t, w, "minecraft:furnace", origin, df_cube.North).(*tile.Furnace)
	tablePos := df_cube.Pos{3, 64, 0}
	table := place(t, w, "minecraft:crafting_table", tablePos, df_cube.North).(*tile.CraftingTable)

	clicker := newTestPlayer(mgl32.Vec3{0.5, 64.7, -2})
	clicker.look = mgl32.Vec3{0, 0, 1}
	clicker.held = item.NewStack(item.Apple{}, 20)
	dragger := newTestPlayer(mgl32.Vec3{3.5, 66, 0.5})
	dragger.held = item.NewStack(item.Stick{}, 18)
	h.Join(clicker)
	h.Join(dragger)

	// Both players only touch the world from the queue of the handler, however their calls interleave.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			h.Activate(clicker, origin)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 9; i++ {
			h.Handle(dragger, &message.DragCommit{Position: util.ProtocolBlockPosFromCubePos(tablePos), Slots: []int32{int32(i)}})
		}
	}()
	wg.Wait()
	h.Flush()

	assert.Equal(t, 20, clicker.held.Count(), "every second click takes the apples back")
	assert.True(t, furnace.Inventory().Slot(tile.FurnaceInput).Empty())
	assert.Equal(t, 18, table.Inventory().Slot(tile.CraftingGridStart).Count())
	assert.True(t, dragger.held.Empty())
}

func TestBeaconScroll(t *testing.T) {
	h, w := newTestHandler(t)
	beacon := place(t, w, "minecraft:beacon", origin, df_cube.North).(*tile.Beacon)
	place(t, w, "minecraft:furnace", df_cube.Pos{1, 64, 0}, df_cube.North)
	p := newTestPlayer(mgl32.Vec3{0.5, 66, 0.5})
	pos := util.ProtocolBlockPosFromCubePos(origin)

	assert.Error(t, h.HandleNow(p, &message.BeaconScroll{Position: pos, Delta: 1}), "no pyramid")
	beacon.SetLevels(1)
	assert.Error(t, h.HandleNow(p, &message.BeaconScroll{Position: pos, Secondary: true, Delta: 1}))
	require.NoError(t, h.HandleNow(p, &message.BeaconScroll{Position: pos, Delta: 2}))
	primary, _ := beacon.Selected()
	assert.Equal(t, effect.Haste, primary)
	assert.Error(t, h.HandleNow(p, &message.BeaconScroll{Position: util.ProtocolBlockPosFromCubePos(df_cube.Pos{1, 64, 0}), Delta: 1}))

	// Paying with an ingot from above buys the selected effect.
	p.held = item.NewStack(item.GoldIngot{}, 1)
	require.NoError(t, h.ActivateNow(p, origin))
	require.NoError(t, h.ActivateNow(p, origin))
	assert.True(t, p.held.Empty())
	assert.Equal(t, effect.Haste, beacon.Primary)
}

func TestHandleQueued(t *testing.T) {
	h, w := newTestHandler(t)
	table := place(t, w, "minecraft:crafting_table", origin, df_cube.North).(*tile.CraftingTable)
	p := newTestPlayer(mgl32.Vec3{0.5, 66, 0.5})
	p.held = item.NewStack(item.Stick{}, 2)
	h.Join(p)

	commit := &message.DragCommit{Position: util.ProtocolBlockPosFromCubePos(origin), Slots: []int32{3, 4}}
	h.HandleRaw(p, message.Encode(commit))
	h.HandleRaw(p, []byte{0xff, 0xff})
	h.Flush()

	assert.Equal(t, 1, table.Inventory().Slot(4).Count())
	assert.Equal(t, 1, table.Inventory().Slot(5).Count())
	assert.True(t, p.held.Empty())
}

func TestRateLimit(t *testing.T) {
	h, _ := newTestHandler(t)
	p := newTestPlayer(mgl32.Vec3{})

	assert.False(t, h.allow(p), "players that did not join are never allowed")
	h.Join(p)
	limit := h.settings.Server.MaxMessagesPerSecond * ResetInterval
	for i := 0; i < limit; i++ {
		require.True(t, h.allow(p))
	}
	assert.False(t, h.allow(p))

	for i := 0; i <= ResetInterval*20; i++ {
		h.Tick()
	}
	assert.True(t, h.allow(p))
}
