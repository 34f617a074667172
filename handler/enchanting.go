package handler

import (
	"github.com/oomph-ac/immersion/book"
	"github.com/oomph-ac/immersion/game"
	"github.com/oomph-ac/immersion/message"
	"github.com/oomph-ac/immersion/oerror"
	"github.com/oomph-ac/immersion/tile"
	"github.com/oomph-ac/immersion/util"
)

// handlePageHit performs the action of the button clicked on the book of an enchanting table.
func (h *Handler) handlePageHit(p Player, m *message.PageHit) error {
	if !h.settings.Features.EnchantingUI {
		return nil
	}
	pos := util.CubePosFromProtocolBlockPos(m.Position)
	t, ok := h.world.Tile(pos)
	if !ok {
		return oerror.New(game.ErrorUnknownTile, pos)
	}
	table, ok := t.(*tile.EnchantingTable)
	if !ok {
		return oerror.New(game.ErrorWrongTile, pos, t.Name(), "minecraft:enchanting_table")
	}
	if err := h.checkReach(p, pos); err != nil {
		return err
	}
	if !table.Book.IsOpen() {
		return oerror.New(game.ErrorBookClosed, pos)
	}
	if !book.InPage(m.X, m.Y) {
		return oerror.New(game.ErrorPageOutOfBounds, m.X, m.Y)
	}

	page := table.Book.Page
	if m.Right {
		page++
	}
	if action, ok := table.PerformPageAction(page, m.X, m.Y); ok {
		h.metrics.pageActions.WithLabelValues(action.String()).Inc()
		h.log.Debugf("%v performed %v on enchanting table at %v", p.Name(), action, pos)
	}
	return nil
}
