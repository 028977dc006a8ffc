package planner_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/engraving-planner/internal/entities/lostark"
	"github.com/KirkDiggler/engraving-planner/internal/planner"
)

type MatchTestSuite struct {
	suite.Suite
	pool []planner.DecomposedValue
}

func TestMatchSuite(t *testing.T) {
	suite.Run(t, new(MatchTestSuite))
}

func (s *MatchTestSuite) SetupTest() {
	// 0: Grudge 5, 1: Adrenaline 3, 2: Cursed Doll 5, 3: Cursed Doll 3
	s.pool = planner.Decompose(lostark.Vector{
		{Engraving: lostark.EngravingGrudge, Value: 5},
		{Engraving: lostark.EngravingAdrenaline, Value: 3},
		{Engraving: lostark.EngravingCursedDoll, Value: 8},
	})
	s.Require().Len(s.pool, 4)
}

func accessory(t lostark.ItemType, engravings ...lostark.EngravingValue) lostark.Item {
	return lostark.Item{Type: t, Engravings: engravings}
}

func ev(e lostark.Engraving, value int) lostark.EngravingValue {
	return lostark.EngravingValue{Engraving: e, Value: value}
}

func (s *MatchTestSuite) TestMatchesEitherOrdering() {
	owned := []lostark.Item{
		accessory(lostark.ItemTypeNecklace, ev(lostark.EngravingAdrenaline, 3), ev(lostark.EngravingGrudge, 5)),
		accessory(lostark.ItemTypeRing, ev(lostark.EngravingCursedDoll, 5), ev(lostark.EngravingCursedDoll, 3)),
	}

	m := planner.Match(owned, s.pool)

	s.Require().Len(m.Items, 2)
	s.Equal(lostark.ItemTypeNecklace, m.Items[0].Type)
	s.Equal(lostark.ItemStatusOwned, m.Items[0].Status)
	s.Equal(lostark.ItemTypeRing, m.Items[1].Type)
	s.Len(m.Consumed, 4)
	s.Empty(m.Remaining(s.pool))

	s.Equal(lostark.ItemStatusNone, owned[0].Status, "owned items must not be modified")
}

func (s *MatchTestSuite) TestPoolEntryBacksOneItem() {
	owned := []lostark.Item{
		accessory(lostark.ItemTypeEarring, ev(lostark.EngravingGrudge, 5), ev(lostark.EngravingAdrenaline, 3)),
		accessory(lostark.ItemTypeEarring, ev(lostark.EngravingGrudge, 5), ev(lostark.EngravingAdrenaline, 3)),
	}

	m := planner.Match(owned, s.pool)

	s.Require().Len(m.Items, 1)
	s.Equal(map[int]struct{}{0: {}, 1: {}}, m.Consumed)

	remaining := m.Remaining(s.pool)
	s.Require().Len(remaining, 2)
	s.Equal(2, remaining[0].Index)
	s.Equal(3, remaining[1].Index)
}

func (s *MatchTestSuite) TestSkipsFullEmplacement() {
	owned := []lostark.Item{
		accessory(lostark.ItemTypeNecklace, ev(lostark.EngravingGrudge, 5), ev(lostark.EngravingAdrenaline, 3)),
		accessory(lostark.ItemTypeNecklace, ev(lostark.EngravingCursedDoll, 5), ev(lostark.EngravingCursedDoll, 3)),
	}

	m := planner.Match(owned, s.pool)

	s.Require().Len(m.Items, 1)
	s.Equal(ev(lostark.EngravingGrudge, 5), m.Items[0].Engravings[0])
}

func (s *MatchTestSuite) TestNoMatch() {
	testCases := []struct {
		name  string
		owned lostark.Item
	}{
		{
			name:  "wrong value",
			owned: accessory(lostark.ItemTypeRing, ev(lostark.EngravingGrudge, 3), ev(lostark.EngravingAdrenaline, 3)),
		},
		{
			name:  "two above minimum",
			owned: accessory(lostark.ItemTypeRing, ev(lostark.EngravingGrudge, 5), ev(lostark.EngravingCursedDoll, 5)),
		},
		{
			name:  "single engraving",
			owned: accessory(lostark.ItemTypeRing, ev(lostark.EngravingGrudge, 5)),
		},
		{
			name:  "engraving not in the pool",
			owned: accessory(lostark.ItemTypeRing, ev(lostark.EngravingHitMaster, 5), ev(lostark.EngravingAdrenaline, 3)),
		},
		{
			name:  "stone is not an accessory",
			owned: accessory(lostark.ItemTypeStone, ev(lostark.EngravingGrudge, 5), ev(lostark.EngravingAdrenaline, 3)),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			m := planner.Match([]lostark.Item{tc.owned}, s.pool)
			s.Empty(m.Items)
			s.Empty(m.Consumed)
			s.Len(m.Remaining(s.pool), len(s.pool))
		})
	}
}

func (s *MatchTestSuite) TestEmptyInputs() {
	m := planner.Match(nil, s.pool)
	s.Empty(m.Items)
	s.Len(m.Remaining(s.pool), 4)

	m = planner.Match([]lostark.Item{
		accessory(lostark.ItemTypeRing, ev(lostark.EngravingGrudge, 5), ev(lostark.EngravingAdrenaline, 3)),
	}, nil)
	s.Empty(m.Items)
}
