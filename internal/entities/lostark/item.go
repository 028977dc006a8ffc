package lostark

import "fmt"

// ItemType is the kind of gear an item is
type ItemType string

// Item types
const (
	ItemTypeNecklace ItemType = "NECKLACE"
	ItemTypeEarring  ItemType = "EARRING"
	ItemTypeRing     ItemType = "RING"
	ItemTypeStone    ItemType = "STONE"
	ItemTypeBook     ItemType = "BOOK"
)

// MaxEngravingsPerAccessory is how many engravings an accessory rolls
const MaxEngravingsPerAccessory = 2

// Emplacement is an accessory slot of the character sheet
type Emplacement struct {
	Type     ItemType
	Capacity int
}

var emplacements = []Emplacement{
	{Type: ItemTypeNecklace, Capacity: 1},
	{Type: ItemTypeEarring, Capacity: 2},
	{Type: ItemTypeRing, Capacity: 2},
}

// Emplacements returns the fixed accessory layout in fill order
func Emplacements() []Emplacement {
	out := make([]Emplacement, len(emplacements))
	copy(out, emplacements)
	return out
}

// AccessoryCount is the number of accessories a character wears
func AccessoryCount() int {
	n := 0
	for _, e := range emplacements {
		n += e.Capacity
	}
	return n
}

// Capacity returns how many items of the type a character wears.
// Stones and books are not worn in an emplacement.
func (t ItemType) Capacity() int {
	for _, e := range emplacements {
		if e.Type == t {
			return e.Capacity
		}
	}
	return 0
}

// IsAccessory reports whether the type occupies an emplacement
func (t ItemType) IsAccessory() bool {
	return t.Capacity() > 0
}

// Valid reports whether t is a known item type
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeNecklace, ItemTypeEarring, ItemTypeRing, ItemTypeStone, ItemTypeBook:
		return true
	}
	return false
}

// UnmarshalText rejects unknown item types
func (t *ItemType) UnmarshalText(text []byte) error {
	parsed := ItemType(text)
	if !parsed.Valid() {
		return fmt.Errorf("unknown item type %q", string(text))
	}
	*t = parsed
	return nil
}

// ItemStatus tells whether an accessory still has to be bought
type ItemStatus string

// Item statuses
const (
	ItemStatusNone  ItemStatus = ""
	ItemStatusBuy   ItemStatus = "BUY"
	ItemStatusOwned ItemStatus = "OWNED"
)

// Item is a piece of gear and the engravings it grants
type Item struct {
	Type       ItemType         `json:"type" yaml:"type"`
	Engravings []EngravingValue `json:"engravings" yaml:"engravings"`
	Status     ItemStatus       `json:"status,omitempty" yaml:"status,omitempty"`
}

// Clone returns a copy that shares nothing with i
func (i Item) Clone() Item {
	out := i
	out.Engravings = append([]EngravingValue(nil), i.Engravings...)
	return out
}
