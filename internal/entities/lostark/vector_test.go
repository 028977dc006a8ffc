package lostark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/engraving-planner/internal/entities/lostark"
)

func TestVector_Subtract(t *testing.T) {
	goal := lostark.Vector{
		{Engraving: lostark.EngravingGrudge, Value: 15},
		{Engraving: lostark.EngravingAdrenaline, Value: 10},
	}

	t.Run("subtracts declared engravings", func(t *testing.T) {
		got := goal.Subtract(lostark.Vector{{Engraving: lostark.EngravingGrudge, Value: 12}})
		assert.Equal(t, lostark.Vector{
			{Engraving: lostark.EngravingGrudge, Value: 3},
			{Engraving: lostark.EngravingAdrenaline, Value: 10},
		}, got)
	})

	t.Run("ignores engravings the goal does not declare", func(t *testing.T) {
		got := goal.Subtract(lostark.Vector{{Engraving: lostark.EngravingCursedDoll, Value: 7}})
		assert.Equal(t, goal, got)
		assert.False(t, got.Has(lostark.EngravingCursedDoll))
	})

	t.Run("may go negative", func(t *testing.T) {
		got := goal.Subtract(lostark.Vector{{Engraving: lostark.EngravingAdrenaline, Value: 12}})
		value, ok := got.Get(lostark.EngravingAdrenaline)
		assert.True(t, ok)
		assert.Equal(t, -2, value)
	})

	t.Run("does not touch the receiver", func(t *testing.T) {
		_ = goal.Subtract(goal)
		value, _ := goal.Get(lostark.EngravingGrudge)
		assert.Equal(t, 15, value)
	})
}

func TestVector_Duplicates(t *testing.T) {
	v := lostark.Vector{
		{Engraving: lostark.EngravingGrudge, Value: 3},
		{Engraving: lostark.EngravingAdrenaline, Value: 3},
		{Engraving: lostark.EngravingGrudge, Value: 5},
	}
	assert.Equal(t, []lostark.Engraving{lostark.EngravingGrudge}, v.Duplicates())
	assert.Empty(t, v[:2].Duplicates())
}

func TestItemType_Capacity(t *testing.T) {
	assert.Equal(t, 1, lostark.ItemTypeNecklace.Capacity())
	assert.Equal(t, 2, lostark.ItemTypeEarring.Capacity())
	assert.Equal(t, 2, lostark.ItemTypeRing.Capacity())
	assert.Equal(t, 0, lostark.ItemTypeStone.Capacity())
	assert.False(t, lostark.ItemTypeBook.IsAccessory())
	assert.Equal(t, 5, lostark.AccessoryCount())
}

func TestBuild_Stone(t *testing.T) {
	build := &lostark.Build{
		Items: []lostark.Item{
			{Type: lostark.ItemTypeRing},
			{Type: lostark.ItemTypeStone, Engravings: []lostark.EngravingValue{{Engraving: lostark.EngravingGrudge, Value: 7}}},
		},
	}

	stone, ok := build.Stone()
	assert.True(t, ok)
	assert.Equal(t, lostark.ItemTypeStone, stone.Type)
	assert.Len(t, build.Accessories(), 1)

	_, ok = (&lostark.Build{}).Stone()
	assert.False(t, ok)
}
