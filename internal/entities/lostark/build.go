package lostark

// Build is a target engraving setup and the fixed sources already known
type Build struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Goal  Vector `json:"goal" yaml:"goal"`
	Books Vector `json:"books,omitempty" yaml:"books,omitempty"`
	Items []Item `json:"items,omitempty" yaml:"items,omitempty"`
}

// Stone returns the ability stone of the build, if any
func (b *Build) Stone() (Item, bool) {
	for _, item := range b.Items {
		if item.Type == ItemTypeStone {
			return item, true
		}
	}
	return Item{}, false
}

// ItemsOfType returns the items of the given type in document order
func (b *Build) ItemsOfType(t ItemType) []Item {
	var out []Item
	for _, item := range b.Items {
		if item.Type == t {
			out = append(out, item)
		}
	}
	return out
}

// Accessories returns the necklace, earring and ring items in document order
func (b *Build) Accessories() []Item {
	var out []Item
	for _, item := range b.Items {
		if item.Type.IsAccessory() {
			out = append(out, item)
		}
	}
	return out
}
