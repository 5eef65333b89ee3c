package model

// ItemTemplate - immutable description of a base item type.
// Shared by all item instances of the same type.
type ItemTemplate struct {
	TypeID string
	Name   string
	// MaxDurability is 0 for items that never wear out.
	MaxDurability int
	// Carrier is true for items that only hold enchantments (enchanted books).
	Carrier bool
}

// HasDurability returns true if the item type wears out.
func (t *ItemTemplate) HasDurability() bool {
	return t.MaxDurability > 0
}
