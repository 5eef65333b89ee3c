package model

import "sync"

// Anvil slot indexes.
const (
	AnvilFirstSlot  = 0
	AnvilSecondSlot = 1
	AnvilResultSlot = 2
	anvilSlotCount  = 3
)

// DefaultMaximumRepairCost is the host ceiling: a repair cost at or above it
// is "too expensive" and the result cannot be taken.
const DefaultMaximumRepairCost = 40

// ViewProperty identifies a value the client displays for an open container.
type ViewProperty int

const (
	// PropertyRepairCost is the repair cost shown in the anvil window.
	PropertyRepairCost ViewProperty = iota
)

// AnvilInventory - содержимое открытой наковальни.
// Thread-safe: all accessors lock.
type AnvilInventory struct {
	mu sync.RWMutex

	slots             [anvilSlotCount]*Item
	renameText        string
	repairCost        int
	maximumRepairCost int
	properties        map[ViewProperty]int
}

// NewAnvilInventory creates an empty anvil with the default maximum repair cost.
func NewAnvilInventory() *AnvilInventory {
	return &AnvilInventory{
		maximumRepairCost: DefaultMaximumRepairCost,
		properties:        make(map[ViewProperty]int),
	}
}

// Item returns the item in slot, nil if empty or out of range.
func (a *AnvilInventory) Item(slot int) *Item {
	if slot < 0 || slot >= anvilSlotCount {
		return nil
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.slots[slot]
}

// SetItem puts item into slot (nil clears it). Out-of-range slots are ignored.
func (a *AnvilInventory) SetItem(slot int, item *Item) {
	if slot < 0 || slot >= anvilSlotCount {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.slots[slot] = item
}

// RenameText returns the text typed into the rename field.
func (a *AnvilInventory) RenameText() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.renameText
}

// SetRenameText sets the rename field.
func (a *AnvilInventory) SetRenameText(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.renameText = text
}

// RepairCost returns the repair cost the anvil charges for the result.
func (a *AnvilInventory) RepairCost() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.repairCost
}

// SetRepairCost sets the charged repair cost.
func (a *AnvilInventory) SetRepairCost(cost int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.repairCost = cost
}

// MaximumRepairCost returns the "too expensive" ceiling.
func (a *AnvilInventory) MaximumRepairCost() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.maximumRepairCost
}

// SetMaximumRepairCost sets the "too expensive" ceiling.
func (a *AnvilInventory) SetMaximumRepairCost(limit int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.maximumRepairCost = limit
}

// TooExpensive returns true if the current repair cost reaches the ceiling.
func (a *AnvilInventory) TooExpensive() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.repairCost >= a.maximumRepairCost
}

// Property returns the displayed value of p (0 if never set).
func (a *AnvilInventory) Property(p ViewProperty) int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.properties[p]
}

// SetProperty sets the displayed value of p.
func (a *AnvilInventory) SetProperty(p ViewProperty, value int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.properties[p] = value
}

// TakeResult removes the result and consumes both inputs.
// Returns nil if there is no result.
func (a *AnvilInventory) TakeResult() *Item {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := a.slots[AnvilResultSlot]
	if result == nil {
		return nil
	}
	a.slots = [anvilSlotCount]*Item{}
	a.repairCost = 0
	a.properties[PropertyRepairCost] = 0
	return result
}
