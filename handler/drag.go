package handler

import (
	"slices"

	"github.com/oomph-ac/immersion/game"
	"github.com/oomph-ac/immersion/inventory"
	"github.com/oomph-ac/immersion/message"
	"github.com/oomph-ac/immersion/oerror"
	"github.com/oomph-ac/immersion/tile"
	"github.com/oomph-ac/immersion/util"
)

// handleDragCommit distributes the stack the player holds over the crafting grid cells the client dragged
// across. The distribution is computed again from the contents of the table on the server, so the client
// only decides which cells are touched and in what order.
func (h *Handler) handleDragCommit(p Player, m *message.DragCommit) error {
	if !h.settings.Features.CraftingDrag {
		return nil
	}
	pos := util.CubePosFromProtocolBlockPos(m.Position)
	t, ok := h.world.Tile(pos)
	if !ok {
		return oerror.New(game.ErrorUnknownTile, pos)
	}
	table, ok := t.(*tile.CraftingTable)
	if !ok {
		return oerror.New(game.ErrorWrongTile, pos, t.Name(), "minecraft:crafting_table")
	}
	if err := h.checkReach(p, pos); err != nil {
		return err
	}
	held := p.Held()
	if held.Empty() {
		return oerror.New(game.ErrorHeldStackEmpty, pos)
	}

	region := table.DragSlots()
	cells := make([]int, 0, len(m.Slots))
	for _, c := range m.Slots {
		cell := int(c)
		if cell < 0 || cell >= region.Count || slices.Contains(cells, cell) {
			h.metrics.dropped.Inc()
			continue
		}
		cells = append(cells, cell)
	}
	if len(cells) == 0 {
		return oerror.New(game.ErrorEmptyDrag, pos)
	}

	left := inventory.ApplyDrag(table.Inventory(), held, cells, region.Start)
	p.SetHeld(left)
	h.metrics.dragged.Add(float64(held.Count() - left.Count()))
	h.log.Debugf("%v dragged %v over %d cells of crafting table at %v", p.Name(), held, len(cells), pos)
	return nil
}
