package model

import (
	"fmt"
	"sync"

	"github.com/udisondev/anvil/internal/game/anvil"
)

// Item - конкретный экземпляр предмета с зачарованиями.
// Implements anvil.Item; all accessors are safe for concurrent use and return
// copies of the enchantment sets.
type Item struct {
	objectID uint32
	template *ItemTemplate

	enchantments anvil.Set // applied enchantments (tools, weapons, armor)
	stored       anvil.Set // stored enchantments (carriers only)
	repairCost   int
	displayName  string
	damage       int

	mu sync.RWMutex
}

var _ anvil.Item = (*Item)(nil)

// NewItem создаёт новый предмет с валидацией.
func NewItem(objectID uint32, template *ItemTemplate) (*Item, error) {
	if template == nil {
		return nil, fmt.Errorf("template cannot be nil")
	}
	if template.TypeID == "" {
		return nil, fmt.Errorf("template type id cannot be empty")
	}

	return &Item{
		objectID:     objectID,
		template:     template,
		enchantments: anvil.Set{},
		stored:       anvil.Set{},
	}, nil
}

// ObjectID возвращает unique ID предмета.
func (i *Item) ObjectID() uint32 {
	return i.objectID
}

// Template возвращает ItemTemplate (immutable).
func (i *Item) Template() *ItemTemplate {
	return i.template
}

// BaseType implements anvil.Item.
func (i *Item) BaseType() string {
	return i.template.TypeID
}

// IsCarrier implements anvil.Item.
func (i *Item) IsCarrier() bool {
	return i.template.Carrier
}

// MaxDurability implements anvil.Item.
func (i *Item) MaxDurability() int {
	return i.template.MaxDurability
}

// Enchantments returns a copy of the applied enchantments.
func (i *Item) Enchantments() anvil.Set {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.enchantments.Clone()
}

// StoredEnchantments returns a copy of the stored enchantments.
func (i *Item) StoredEnchantments() anvil.Set {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.stored.Clone()
}

// AddEnchantment applies kind at level, validating the level against the
// catalog maximum and rejecting kinds that conflict with what the item has.
// Carriers receive the enchantment into their stored set.
func (i *Item) AddEnchantment(cat anvil.Catalog, kind anvil.Kind, level int) error {
	if level < 1 {
		return fmt.Errorf("enchantment %s: level must be >= 1, got %d", kind, level)
	}
	info, ok := cat.Lookup(kind)
	if !ok {
		return fmt.Errorf("unknown enchantment %s", kind)
	}
	if level > info.MaxLevel {
		return fmt.Errorf("enchantment %s: level %d above max %d", kind, level, info.MaxLevel)
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	target := i.enchantments
	if i.template.Carrier {
		target = i.stored
	}
	if anvil.ConflictsWithAny(cat, kind, target) {
		return fmt.Errorf("enchantment %s conflicts with %s", kind, target)
	}
	target[kind] = level
	return nil
}

// SetEnchantmentsUnsafe replaces the item's enchantments without level or
// conflict validation. Carriers receive the set as stored enchantments.
// Non-positive levels are dropped.
func (i *Item) SetEnchantmentsUnsafe(s anvil.Set) {
	clean := anvil.NewSet(s)

	i.mu.Lock()
	defer i.mu.Unlock()
	if i.template.Carrier {
		i.stored = clean
		return
	}
	i.enchantments = clean
}

// RepairCost implements anvil.Item.
func (i *Item) RepairCost() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.repairCost
}

// SetRepairCost устанавливает accumulated repair cost с валидацией.
func (i *Item) SetRepairCost(cost int) error {
	if cost < 0 {
		return fmt.Errorf("repair cost cannot be negative, got %d", cost)
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.repairCost = cost
	return nil
}

// DisplayName returns the custom name, empty if none.
func (i *Item) DisplayName() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.displayName
}

// SetDisplayName sets the custom name; empty clears it.
func (i *Item) SetDisplayName(name string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.displayName = name
}

// Name returns the custom name if set, otherwise the template name.
func (i *Item) Name() string {
	if n := i.DisplayName(); n != "" {
		return n
	}
	return i.template.Name
}

// Damage implements anvil.Item.
func (i *Item) Damage() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.damage
}

// SetDamage устанавливает износ предмета с валидацией.
func (i *Item) SetDamage(damage int) error {
	if damage < 0 {
		return fmt.Errorf("damage cannot be negative, got %d", damage)
	}
	if damage > 0 && !i.template.HasDurability() {
		return fmt.Errorf("item type %s has no durability", i.template.TypeID)
	}
	if i.template.HasDurability() && damage > i.template.MaxDurability {
		return fmt.Errorf("damage %d exceeds max durability %d", damage, i.template.MaxDurability)
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.damage = damage
	return nil
}

// Clone returns a deep copy of the item under a new object ID.
func (i *Item) Clone(objectID uint32) *Item {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return &Item{
		objectID:     objectID,
		template:     i.template,
		enchantments: i.enchantments.Clone(),
		stored:       i.stored.Clone(),
		repairCost:   i.repairCost,
		displayName:  i.displayName,
		damage:       i.damage,
	}
}

// String returns human-readable item description (for logs).
func (i *Item) String() string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	enchants := i.enchantments
	if i.template.Carrier {
		enchants = i.stored
	}
	return fmt.Sprintf("Item{objectID=%d, type=%s, enchants=%s, repairCost=%d, damage=%d}",
		i.objectID, i.template.TypeID, enchants, i.repairCost, i.damage)
}
