package handler

import (
	"github.com/oomph-ac/immersion/game"
	"github.com/oomph-ac/immersion/message"
	"github.com/oomph-ac/immersion/oerror"
	"github.com/oomph-ac/immersion/tile"
	"github.com/oomph-ac/immersion/util"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// handleOpenGui opens an auxiliary screen for the player. Opening the text field of an anvil locks it for
// the player, which is announced to all other players.
func (h *Handler) handleOpenGui(p Player, m *message.OpenGui) error {
	pos := util.CubePosFromProtocolBlockPos(m.Position)
	t, ok := h.world.Tile(pos)
	if !ok {
		return oerror.New(game.ErrorUnknownTile, pos)
	}
	if err := h.checkReach(p, pos); err != nil {
		return err
	}

	switch m.Mode {
	case message.GuiAnvilText:
		if !h.settings.Features.AnvilText {
			return nil
		}
		anvil, ok := t.(*tile.Anvil)
		if !ok {
			return oerror.New(game.ErrorWrongTile, pos, t.Name(), "minecraft:anvil")
		}
		if !anvil.Lock(p.UUID()) {
			return oerror.New(game.ErrorAnvilLocked, pos)
		}
		p.Send(&message.OpenGui{Position: m.Position, Mode: m.Mode})
		h.broadcast(p, &message.AnvilLock{Position: m.Position, Locked: true})
	case message.GuiRecipes:
		if _, ok := t.(*tile.CraftingTable); !ok {
			return oerror.New(game.ErrorWrongTile, pos, t.Name(), "minecraft:crafting_table")
		}
		p.Send(&message.OpenGui{Position: m.Position, Mode: m.Mode})
	default:
		return oerror.New(game.ErrorUnknownGui, m.Mode)
	}
	return nil
}

// handleTextUpdate renames the item on an anvil locked by the player, which releases the lock.
func (h *Handler) handleTextUpdate(p Player, m *message.TextUpdate) error {
	anvil, err := h.lockedAnvil(p, m.Position)
	if err != nil {
		return err
	}
	if err := anvil.Rename(p.UUID(), m.Text); err != nil {
		return err
	}
	h.log.Debugf("%v renamed the item on anvil at %v to %q", p.Name(), anvil.Pos(), m.Text)
	h.broadcast(p, &message.AnvilLock{Position: m.Position, Locked: false})
	return nil
}

// handleAnvilLock handles a client closing the text field of an anvil without renaming.
func (h *Handler) handleAnvilLock(p Player, m *message.AnvilLock) error {
	if m.Locked {
		return oerror.New(game.ErrorUnexpectedMessage, m)
	}
	anvil, err := h.lockedAnvil(p, m.Position)
	if err != nil {
		return err
	}
	anvil.Unlock(p.UUID())
	h.broadcast(p, &message.AnvilLock{Position: m.Position, Locked: false})
	return nil
}

// lockedAnvil returns the anvil at the position passed if the player holds its lock.
func (h *Handler) lockedAnvil(p Player, position protocol.BlockPos) (*tile.Anvil, error) {
	pos := util.CubePosFromProtocolBlockPos(position)
	t, ok := h.world.Tile(pos)
	if !ok {
		return nil, oerror.New(game.ErrorUnknownTile, pos)
	}
	anvil, ok := t.(*tile.Anvil)
	if !ok {
		return nil, oerror.New(game.ErrorWrongTile, pos, t.Name(), "minecraft:anvil")
	}
	if anvil.LockedBy() != p.UUID() {
		return nil, oerror.New(game.ErrorAnvilLocked, pos)
	}
	return anvil, nil
}

// releaseAnvils releases the locks a player holds on any anvil.
func (h *Handler) releaseAnvils(p Player) {
	for _, t := range h.world.Tiles() {
		if anvil, ok := t.(*tile.Anvil); ok && anvil.Unlock(p.UUID()) {
			h.broadcast(p, &message.AnvilLock{Position: util.ProtocolBlockPosFromCubePos(anvil.Pos()), Locked: false})
		}
	}
}
