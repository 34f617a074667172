package tile

import (
	"testing"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/entity/effect"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, tl Tile) Tile {
	b, err := nbt.Marshal(Encode(tl))
	require.NoError(t, err)
	var data map[string]any
	require.NoError(t, nbt.Unmarshal(b, &data))
	decoded, err := Decode(data)
	require.NoError(t, err)
	return decoded
}

func TestNBTFurnace(t *testing.T) {
	f := NewFurnace(df_cube.Pos{-10, 65, 300}, df_cube.East)
	f.Inventory().SetSlot(FurnaceInput, item.NewStack(item.Apple{}, 12))
	f.Inventory().SetSlot(FurnaceFuel, item.NewStack(item.Coal{}, 3).WithCustomName("Fuel"))

	decoded := roundTrip(t, f)
	require.IsType(t, &Furnace{}, decoded)
	assert.Equal(t, f.Pos(), decoded.Pos())
	assert.Equal(t, df_cube.East, decoded.Facing())
	assert.Equal(t, 12, decoded.Inventory().Slot(FurnaceInput).Count())
	fuel := decoded.Inventory().Slot(FurnaceFuel)
	assert.Equal(t, 3, fuel.Count())
	assert.Equal(t, "Fuel", fuel.CustomName())
	assert.True(t, decoded.Inventory().Slot(FurnaceOutput).Empty())
}

func TestNBTAnvilAndTable(t *testing.T) {
	a := NewAnvil(df_cube.Pos{1, 1, 1}, df_cube.West)
	a.name = "Excalibur"
	decoded := roundTrip(t, a).(*Anvil)
	assert.Equal(t, "Excalibur", decoded.ItemName())
	assert.False(t, decoded.Locked(), "locks are not persisted")

	table := NewEnchantingTable(df_cube.Pos{2, 2, 2}, df_cube.North)
	table.Book.Open(2)
	table.Selected = 1
	decodedTable := roundTrip(t, table).(*EnchantingTable)
	assert.Equal(t, 2, decodedTable.Book.Page)
	assert.Equal(t, 1, decodedTable.Selected)
}

func TestNBTBeacon(t *testing.T) {
	b := NewBeacon(df_cube.Pos{4, 70, -4}, df_cube.North)
	b.SetLevels(4)
	b.Primary, b.Secondary = effect.Strength, effect.Regeneration
	decoded := roundTrip(t, b).(*Beacon)
	assert.Equal(t, 4, decoded.Levels())
	assert.Equal(t, effect.Strength, decoded.Primary)
	assert.Equal(t, effect.Regeneration, decoded.Secondary)

	empty := roundTrip(t, NewBeacon(df_cube.Pos{}, df_cube.North)).(*Beacon)
	assert.Nil(t, empty.Primary)
	assert.Equal(t, 0, empty.Levels())
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(map[string]any{"id": "minecraft:furnace"})
	assert.Error(t, err, "missing position")
	_, err = Decode(map[string]any{"id": "minecraft:stone", "x": int32(0), "y": int32(0), "z": int32(0)})
	assert.Error(t, err, "unknown tile")
	_, err = Decode(map[string]any{
		"id": "minecraft:anvil", "x": int32(0), "y": int32(0), "z": int32(0),
		"Inventory": []any{map[string]any{"Slot": byte(7), "Name": "minecraft:stick", "Damage": int16(0), "Count": byte(1)}},
	})
	assert.Error(t, err, "slot out of range")
}
