package planner

import (
	"sort"

	"github.com/KirkDiggler/engraving-planner/internal/entities/lostark"
)

// RemainingEmplacements lists the accessory slots the matched items leave
// open: necklaces first, then earrings, then rings
func RemainingEmplacements(matched []lostark.Item) []lostark.ItemType {
	layout := lostark.Emplacements()
	taken := make(map[lostark.ItemType]int, len(layout))
	for _, item := range matched {
		taken[item.Type]++
	}

	var out []lostark.ItemType
	for _, e := range layout {
		for i := taken[e.Type]; i < e.Capacity; i++ {
			out = append(out, e.Type)
		}
	}
	return out
}

// Assemble fills every open emplacement with an accessory to buy.
//
// The pool is sorted by value, largest first, keeping pool order between
// equal values. Each accessory takes the largest value left and then the
// smallest value left. Accessories get fewer engravings once the pool runs out.
func Assemble(pool []DecomposedValue, matched []lostark.Item) []lostark.Item {
	sorted := make([]DecomposedValue, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	emplacements := RemainingEmplacements(matched)
	items := make([]lostark.Item, 0, len(emplacements))
	for _, t := range emplacements {
		item := lostark.Item{
			Type:       t,
			Engravings: []lostark.EngravingValue{},
			Status:     lostark.ItemStatusBuy,
		}

		if len(sorted) > 0 {
			item.Engravings = append(item.Engravings, sorted[0].EngravingValue)
			sorted = sorted[1:]

			if len(sorted) > 0 {
				item.Engravings = append(item.Engravings, sorted[len(sorted)-1].EngravingValue)
				sorted = sorted[:len(sorted)-1]
			}
		}

		items = append(items, item)
	}

	return items
}
