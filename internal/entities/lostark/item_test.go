package lostark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/engraving-planner/internal/entities/lostark"
)

func TestEmplacements(t *testing.T) {
	layout := lostark.Emplacements()
	assert.Equal(t, []lostark.Emplacement{
		{Type: lostark.ItemTypeNecklace, Capacity: 1},
		{Type: lostark.ItemTypeEarring, Capacity: 2},
		{Type: lostark.ItemTypeRing, Capacity: 2},
	}, layout)

	layout[0].Capacity = 9
	assert.Equal(t, 1, lostark.ItemTypeNecklace.Capacity())
	assert.Equal(t, 5, lostark.AccessoryCount())
}

func TestItemType(t *testing.T) {
	assert.True(t, lostark.ItemTypeRing.IsAccessory())
	assert.False(t, lostark.ItemTypeStone.IsAccessory())
	assert.False(t, lostark.ItemTypeBook.IsAccessory())
	assert.Equal(t, 0, lostark.ItemTypeStone.Capacity())

	var typ lostark.ItemType
	assert.Error(t, typ.UnmarshalText([]byte("BRACELET")))
	assert.NoError(t, typ.UnmarshalText([]byte("EARRING")))
	assert.Equal(t, lostark.ItemTypeEarring, typ)
}
