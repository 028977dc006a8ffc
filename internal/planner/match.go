package planner

import "github.com/KirkDiggler/engraving-planner/internal/entities/lostark"

// Matching is the outcome of checking owned accessories against the pool
type Matching struct {
	// Items are copies of the owned accessories that already fit, marked OWNED
	Items []lostark.Item
	// Consumed holds the pool indices those accessories cover
	Consumed map[int]struct{}
}

// Remaining returns the pool entries no owned accessory covers, in pool order
func (m Matching) Remaining(pool []DecomposedValue) []DecomposedValue {
	out := make([]DecomposedValue, 0, len(pool))
	for _, d := range pool {
		if _, used := m.Consumed[d.Index]; !used {
			out = append(out, d)
		}
	}
	return out
}

// Match finds the owned accessories that already carry one above minimum
// roll and one minimum roll the pool asks for.
//
// Owned engravings compare by engraving and value against pool entries not
// yet taken; the first free entry by index is taken. Each pool entry backs at
// most one accessory, and an accessory is skipped once its emplacement is full.
// The owned slice is not modified.
func Match(owned []lostark.Item, pool []DecomposedValue) Matching {
	m := Matching{Consumed: make(map[int]struct{})}
	used := make(map[lostark.ItemType]int)

	var above, atMin []DecomposedValue
	for _, d := range pool {
		switch {
		case d.AboveMinimum():
			above = append(above, d)
		case d.Value == MinValue:
			atMin = append(atMin, d)
		}
	}

	for _, item := range owned {
		if !item.Type.IsAccessory() || len(item.Engravings) != lostark.MaxEngravingsPerAccessory {
			continue
		}
		if used[item.Type] >= item.Type.Capacity() {
			continue
		}

		first, second := item.Engravings[0], item.Engravings[1]
		hi, lo, ok := m.pair(above, atMin, first, second)
		if !ok {
			hi, lo, ok = m.pair(above, atMin, second, first)
		}
		if !ok {
			continue
		}

		m.Consumed[hi] = struct{}{}
		m.Consumed[lo] = struct{}{}
		used[item.Type]++

		matched := item.Clone()
		matched.Status = lostark.ItemStatusOwned
		m.Items = append(m.Items, matched)
	}

	return m
}

// pair looks up a free above minimum entry equal to hi and a free minimum
// entry equal to lo
func (m Matching) pair(above, atMin []DecomposedValue, hi, lo lostark.EngravingValue) (int, int, bool) {
	hiIdx, ok := m.free(above, hi)
	if !ok {
		return 0, 0, false
	}
	loIdx, ok := m.free(atMin, lo)
	if !ok {
		return 0, 0, false
	}
	return hiIdx, loIdx, true
}

func (m Matching) free(candidates []DecomposedValue, want lostark.EngravingValue) (int, bool) {
	for _, d := range candidates {
		if _, used := m.Consumed[d.Index]; used {
			continue
		}
		if d.EngravingValue == want {
			return d.Index, true
		}
	}
	return 0, false
}
