package handler

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/immersion/game"
	"github.com/oomph-ac/immersion/oerror"
	"github.com/oomph-ac/immersion/selection"
	"github.com/oomph-ac/immersion/tile"
)

// Activate queues a right click of a player on the block at the position passed, so that it is handled in
// order with the messages of the player.
func (h *Handler) Activate(p Player, pos df_cube.Pos) {
	h.queue.Submit(func() {
		if err := h.ActivateNow(p, pos); err != nil {
			h.log.Debugf("ignored click of %v at %v: %v", p.Name(), pos, err)
		}
	})
}

// ActivateNow handles a right click of a player on the block at the position passed, for tiles that react
// to clicks on their boxes. The click is resolved again from the eyes of the player. It must be called on
// the goroutine owning the world, like HandleNow.
func (h *Handler) ActivateNow(p Player, pos df_cube.Pos) error {
	t, ok := h.world.Tile(pos)
	if !ok {
		return oerror.New(game.ErrorUnknownTile, pos)
	}
	activator, ok := t.(tile.Activator)
	if !ok || !h.activationEnabled(t) {
		return oerror.New(game.ErrorNotActivated, pos)
	}
	if err := h.checkReach(p, pos); err != nil {
		return err
	}

	ray := p.EyeRay()
	ray.Length = h.settings.Interaction.Reach
	hit, ok := selection.HitTestAt(ray, pos, activator.Boxes(), activator.Facing(), selection.ClickRight)
	if !ok {
		return oerror.New(game.ErrorNotActivated, pos)
	}
	held, ok := activator.Activate(hit, hit.Local(pos), p.Held())
	if !ok {
		return oerror.New(game.ErrorNotActivated, pos)
	}
	p.SetHeld(held)
	h.log.Debugf("%v activated %v at %v", p.Name(), t.Name(), pos)
	return nil
}

func (h *Handler) activationEnabled(t tile.Tile) bool {
	switch t.(type) {
	case *tile.Furnace:
		return h.settings.Features.FurnaceClicks
	case *tile.BrewingStand:
		return h.settings.Features.BrewingClicks
	case *tile.CraftingTable:
		return h.settings.Features.CraftingDrag
	case *tile.Beacon:
		return h.settings.Features.BeaconScroll
	}
	return true
}
