package tile

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/immersion/book"
	"github.com/oomph-ac/immersion/inventory"
)

const (
	EnchantingItem = iota
	EnchantingLapis
)

// EnchantingPages is the amount of pages in the book of an enchanting table.
const EnchantingPages = 4

// PageAction is an action performed by clicking a page of the book of an enchanting table.
type PageAction int

const (
	ActionNone PageAction = iota
	ActionPreviousPage
	ActionNextPage
	ActionEnchant
)

// String ...
func (a PageAction) String() string {
	switch a {
	case ActionPreviousPage:
		return "previous_page"
	case ActionNextPage:
		return "next_page"
	case ActionEnchant:
		return "enchant"
	}
	return "none"
}

// Button is a clickable area on a page, in page pixels.
type Button struct {
	X0, Y0, X1, Y1 float32
	Action         PageAction
	// Option is the enchantment option of an ActionEnchant button.
	Option int
}

// Contains checks if the page pixel passed is on the button.
func (b Button) Contains(x, y float32) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

var (
	previousButton = Button{X0: 4, Y0: 108, X1: 22, Y1: 121, Action: ActionPreviousPage}
	nextButton     = Button{X0: 72, Y0: 108, X1: 90, Y1: 121, Action: ActionNextPage}

	optionButtons = []Button{
		{X0: 8, Y0: 20, X1: 86, Y1: 40, Action: ActionEnchant, Option: 0},
		{X0: 8, Y0: 45, X1: 86, Y1: 65, Action: ActionEnchant, Option: 1},
		{X0: 8, Y0: 70, X1: 86, Y1: 90, Action: ActionEnchant, Option: 2},
	}

	enchantingRouter = inventory.Router{
		Table: inventory.Horizontal(inventory.SingleSlot(EnchantingLapis)),
		Up:    inventory.Ptr(inventory.SingleSlot(EnchantingItem)),
	}
)

const lapisName = "minecraft:lapis_lazuli"

// EnchantingTable is an enchanting table whose book is used as its screen. The first right page lists the
// enchantment options, and every page has an arrow to turn the book.
type EnchantingTable struct {
	base
	// Book is the animation state of the book floating above the table.
	Book book.AnimationState
	// Selected is the last enchantment option that was chosen, or -1.
	Selected int
}

// NewEnchantingTable ...
func NewEnchantingTable(pos df_cube.Pos, facing df_cube.Direction) *EnchantingTable {
	return &EnchantingTable{base: newBase(pos, facing, 2), Book: book.NewAnimationState(), Selected: -1}
}

// Name ...
func (*EnchantingTable) Name() string {
	return "minecraft:enchanting_table"
}

// Router ...
func (*EnchantingTable) Router() inventory.Router {
	return enchantingRouter
}

// Candidate returns the table as a candidate for book clicks.
func (t *EnchantingTable) Candidate() book.Candidate {
	return book.Candidate{Pos: t.pos, State: t.Book}
}

// Tick animates the book of the table, opening it for the nearest player if there is one.
func (t *EnchantingTable) Tick(nearest *mgl32.Vec3) {
	if nearest != nil && !t.Book.IsOpen() {
		t.Book.Open(0)
	}
	t.Book.Tick(nearest, t.pos)
	if nearest == nil && t.Book.Spread == 0 {
		t.Book.Close()
	}
}

// ButtonAt returns the button at the page pixel passed on the page passed. Even pages are left pages.
func ButtonAt(page int, x, y float32) (Button, bool) {
	var buttons []Button
	if page%2 == 0 {
		buttons = append(buttons, previousButton)
	} else {
		buttons = append(buttons, nextButton)
	}
	if page == 1 {
		buttons = append(buttons, optionButtons...)
	}
	for _, b := range buttons {
		if b.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// PerformPageAction performs the action of the button at the page pixel passed. page is the page that was
// clicked: the current page of the book for the left page, one more for the right page. The action
// performed is returned, or false if the click did nothing.
func (t *EnchantingTable) PerformPageAction(page int, x, y float32) (PageAction, bool) {
	if !t.Book.IsOpen() || page < t.Book.Page || page > t.Book.Page+1 || !book.InPage(x, y) {
		return ActionNone, false
	}
	b, ok := ButtonAt(page, x, y)
	if !ok {
		return ActionNone, false
	}
	switch b.Action {
	case ActionPreviousPage:
		if t.Book.Page == 0 {
			return ActionNone, false
		}
		t.Book.TurnPage(-1)
	case ActionNextPage:
		if t.Book.Page+2 >= EnchantingPages {
			return ActionNone, false
		}
		t.Book.TurnPage(1)
	case ActionEnchant:
		if !t.enchant(b.Option) {
			return ActionNone, false
		}
	}
	return b.Action, true
}

// enchant chooses the enchantment option passed, which costs one lapis lazuli more than its index.
func (t *EnchantingTable) enchant(option int) bool {
	target, lapis := t.inv.Slot(EnchantingItem), t.inv.Slot(EnchantingLapis)
	cost := option + 1
	if target.Empty() || itemName(lapis) != lapisName || lapis.Count() < cost {
		return false
	}
	t.inv.SetSlot(EnchantingLapis, lapis.Grow(-cost))
	t.Selected = option
	return true
}
