package tile

import (
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/recipe"
)

// craftingBlock is the block crafting table recipes are registered for.
const craftingBlock = "crafting_table"

// grid is the contents of a 3x3 crafting grid, row by row.
type grid [CraftingGridSize]item.Stack

// match returns the crafting table recipe with the lowest priority that can be crafted with the grid passed,
// together with the amount of items crafting it takes from every cell of the grid.
func match(g grid) (recipe.Recipe, [CraftingGridSize]int, bool) {
	var (
		best     recipe.Recipe
		bestCost [CraftingGridSize]int
	)
	for _, r := range recipe.Recipes() {
		if r.Block() != craftingBlock || len(r.Output()) == 0 {
			continue
		}
		if best != nil && r.Priority() >= best.Priority() {
			continue
		}
		var (
			cost [CraftingGridSize]int
			ok   bool
		)
		switch r := r.(type) {
		case recipe.Shaped:
			cost, ok = matchShaped(r, g)
		case recipe.Shapeless:
			cost, ok = matchShapeless(r, g)
		}
		if ok {
			best, bestCost = r, cost
		}
	}
	return best, bestCost, best != nil
}

// matchShaped checks if the items in the grid form the shape of the recipe passed, either as is or mirrored
// horizontally. Empty rows and columns around the items are ignored.
func matchShaped(r recipe.Shaped, g grid) ([CraftingGridSize]int, bool) {
	var cost [CraftingGridSize]int
	minX, minY, maxX, maxY := 3, 3, -1, -1
	for i, s := range g {
		if s.Empty() {
			continue
		}
		x, y := i%3, i/3
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	w, h := r.Shape().Width(), r.Shape().Height()
	if maxX < 0 || maxX-minX+1 != w || maxY-minY+1 != h || len(r.Input()) != w*h {
		return cost, false
	}
	for _, mirror := range [...]bool{false, true} {
		ok := true
		for y := 0; y < h && ok; y++ {
			for x := 0; x < w && ok; x++ {
				ix := x
				if mirror {
					ix = w - 1 - x
				}
				expected := r.Input()[y*w+ix]
				cell := (minY+y)*3 + minX + x
				if ok = matches(g[cell], expected); ok && !expected.Empty() {
					cost[cell] = expected.Count()
				}
			}
		}
		if ok {
			return cost, true
		}
		cost = [CraftingGridSize]int{}
	}
	return cost, false
}

// matchShapeless checks if every item in the grid is used by exactly one input of the recipe passed.
func matchShapeless(r recipe.Shapeless, g grid) ([CraftingGridSize]int, bool) {
	var (
		cost  [CraftingGridSize]int
		used  [CraftingGridSize]bool
		cells int
	)
	for _, s := range g {
		if !s.Empty() {
			cells++
		}
	}
	inputs := 0
	for _, expected := range r.Input() {
		if expected.Empty() {
			continue
		}
		inputs++
		found := false
		for i, s := range g {
			if used[i] || s.Empty() || !matches(s, expected) {
				continue
			}
			used[i], cost[i], found = true, expected.Count(), true
			break
		}
		if !found {
			return cost, false
		}
	}
	return cost, inputs == cells && inputs > 0
}

// matches checks if the stack in a grid cell satisfies an input of a recipe.
func matches(has item.Stack, expected recipe.Item) bool {
	if expected.Empty() || has.Empty() {
		return expected.Empty() == has.Empty()
	}
	if has.Count() < expected.Count() {
		return false
	}
	switch expected := expected.(type) {
	case item.Stack:
		if _, variants := expected.Value("variants"); variants {
			return itemName(has) == itemName(expected)
		}
		return has.Comparable(expected)
	case recipe.ItemTag:
		return expected.Contains(itemName(has))
	}
	return false
}
