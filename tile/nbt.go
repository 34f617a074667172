package tile

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/entity/effect"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/immersion/game"
	"github.com/oomph-ac/immersion/inventory"
	"github.com/oomph-ac/immersion/oerror"
)

var constructors = map[string]func(pos df_cube.Pos, facing df_cube.Direction) Tile{
	"minecraft:crafting_table":   func(pos df_cube.Pos, facing df_cube.Direction) Tile { return NewCraftingTable(pos, facing) },
	"minecraft:furnace":          func(pos df_cube.Pos, facing df_cube.Direction) Tile { return NewFurnace(pos, facing) },
	"minecraft:brewing_stand":    func(pos df_cube.Pos, facing df_cube.Direction) Tile { return NewBrewingStand(pos, facing) },
	"minecraft:anvil":            func(pos df_cube.Pos, facing df_cube.Direction) Tile { return NewAnvil(pos, facing) },
	"minecraft:enchanting_table": func(pos df_cube.Pos, facing df_cube.Direction) Tile { return NewEnchantingTable(pos, facing) },
	"minecraft:beacon":           func(pos df_cube.Pos, facing df_cube.Direction) Tile { return NewBeacon(pos, facing) },
}

// New creates an empty tile of the block with the name passed. False is returned if the block has no tile.
func New(name string, pos df_cube.Pos, facing df_cube.Direction) (Tile, bool) {
	f, ok := constructors[name]
	if !ok {
		return nil, false
	}
	return f(pos, facing), true
}

// Encode returns the NBT representation of a tile.
func Encode(t Tile) map[string]any {
	pos := t.Pos()
	data := map[string]any{
		"id":        t.Name(),
		"x":         int32(pos[0]),
		"y":         int32(pos[1]),
		"z":         int32(pos[2]),
		"Facing":    int32(t.Facing()),
		"Inventory": encodeInventory(t.Inventory()),
	}
	switch t := t.(type) {
	case *Anvil:
		data["ItemName"] = t.name
	case *EnchantingTable:
		data["Page"] = int32(t.Book.Page)
		data["Selected"] = int32(t.Selected)
	case *Beacon:
		data["Levels"] = int32(t.levels)
		if primary, ok := effect.ID(t.Primary); ok {
			data["Primary"] = int32(primary)
		}
		if secondary, ok := effect.ID(t.Secondary); ok {
			data["Secondary"] = int32(secondary)
		}
	}
	return data
}

// Decode creates a tile from its NBT representation.
func Decode(data map[string]any) (Tile, error) {
	name, _ := data["id"].(string)
	x, okX := data["x"].(int32)
	y, okY := data["y"].(int32)
	z, okZ := data["z"].(int32)
	if !okX || !okY || !okZ {
		return nil, oerror.New("tile %q has no position", name)
	}
	pos := df_cube.Pos{int(x), int(y), int(z)}
	facing, _ := data["Facing"].(int32)
	if facing < 0 || facing > 3 {
		return nil, oerror.New("tile at %v has invalid facing %d", pos, facing)
	}

	t, ok := New(name, pos, df_cube.Direction(facing))
	if !ok {
		return nil, oerror.New(game.ErrorUnknownTile, pos)
	}
	items, _ := data["Inventory"].([]any)
	if err := decodeInventory(t.Inventory(), items); err != nil {
		return nil, err
	}

	switch t := t.(type) {
	case *Anvil:
		t.name, _ = data["ItemName"].(string)
	case *EnchantingTable:
		if page, ok := data["Page"].(int32); ok && page >= 0 {
			t.Book.Open(int(page))
		}
		if selected, ok := data["Selected"].(int32); ok {
			t.Selected = int(selected)
		}
	case *Beacon:
		levels, _ := data["Levels"].(int32)
		t.SetLevels(int(levels))
		t.Primary, t.Secondary = lastingEffect(data["Primary"]), lastingEffect(data["Secondary"])
	}
	return t, nil
}

// lastingEffect returns the lasting effect with the ID passed, or nil if the value is not the ID of one.
func lastingEffect(v any) effect.LastingType {
	id, ok := v.(int32)
	if !ok {
		return nil
	}
	e, ok := effect.ByID(int(id))
	if !ok {
		return nil
	}
	lasting, _ := e.(effect.LastingType)
	return lasting
}

func encodeInventory(inv *inventory.Inventory) []any {
	items := make([]any, 0, inv.Size())
	for slot, s := range inv.Slots() {
		if s.Empty() {
			continue
		}
		name, meta := s.Item().EncodeItem()
		m := map[string]any{
			"Slot":   byte(slot),
			"Name":   name,
			"Damage": meta,
			"Count":  byte(s.Count()),
		}
		if customName := s.CustomName(); customName != "" {
			m["CustomName"] = customName
		}
		items = append(items, m)
	}
	return items
}

func decodeInventory(inv *inventory.Inventory, items []any) error {
	for _, v := range items {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		slot, _ := m["Slot"].(byte)
		name, _ := m["Name"].(string)
		meta, _ := m["Damage"].(int16)
		count, _ := m["Count"].(byte)
		if !inv.Valid(int(slot)) {
			return oerror.New(game.ErrorInvalidSlot, slot, inv.Size()-1)
		}
		it, ok := world.ItemByName(name, meta)
		if !ok || count == 0 {
			continue
		}
		s := item.NewStack(it, int(count))
		if customName, ok := m["CustomName"].(string); ok && customName != "" {
			s = s.WithCustomName(customName)
		}
		inv.SetSlot(int(slot), s)
	}
	return nil
}
