package handler

import (
	"github.com/oomph-ac/immersion/game"
	"github.com/oomph-ac/immersion/message"
	"github.com/oomph-ac/immersion/oerror"
	"github.com/oomph-ac/immersion/tile"
	"github.com/oomph-ac/immersion/util"
)

// handleBeaconScroll changes the effect selected on a beacon.
func (h *Handler) handleBeaconScroll(p Player, m *message.BeaconScroll) error {
	if !h.settings.Features.BeaconScroll {
		return nil
	}
	pos := util.CubePosFromProtocolBlockPos(m.Position)
	t, ok := h.world.Tile(pos)
	if !ok {
		return oerror.New(game.ErrorUnknownTile, pos)
	}
	beacon, ok := t.(*tile.Beacon)
	if !ok {
		return oerror.New(game.ErrorWrongTile, pos, t.Name(), "minecraft:beacon")
	}
	if err := h.checkReach(p, pos); err != nil {
		return err
	}
	e, err := beacon.Scroll(m.Secondary, int(m.Delta))
	if err != nil {
		return err
	}
	h.log.Debugf("%v selected %T on beacon at %v", p.Name(), e, pos)
	return nil
}
