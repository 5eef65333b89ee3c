package testutil

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/udisondev/anvil/internal/data"
	"github.com/udisondev/anvil/internal/game/anvil"
	"github.com/udisondev/anvil/internal/model"
)

var (
	loadOnce sync.Once
	loadErr  error

	nextObjectID atomic.Uint32
)

// Catalog загружает данные зачарований один раз на процесс и возвращает каталог.
func Catalog(tb testing.TB) anvil.Catalog {
	tb.Helper()
	loadOnce.Do(func() { loadErr = data.LoadEnchantments() })
	if loadErr != nil {
		tb.Fatalf("loading enchantment data: %v", loadErr)
	}
	return data.EnchantmentCatalog()
}

// NewItem builds an item of typeID holding enchants (unvalidated, so
// conflicting sets are allowed) with the given prior repair cost.
func NewItem(tb testing.TB, typeID string, enchants anvil.Set, repairCost int) *model.Item {
	tb.Helper()
	Catalog(tb)

	tmpl := data.GetItemTemplate(typeID)
	if tmpl == nil {
		tb.Fatalf("unknown item type %q", typeID)
	}
	item, err := model.NewItem(nextObjectID.Add(1), tmpl)
	if err != nil {
		tb.Fatalf("creating %s: %v", typeID, err)
	}
	item.SetEnchantmentsUnsafe(enchants)
	if err := item.SetRepairCost(repairCost); err != nil {
		tb.Fatalf("setting repair cost: %v", err)
	}
	return item
}

// NewAnvil returns an anvil inventory with both input slots filled.
func NewAnvil(first, second *model.Item) *model.AnvilInventory {
	inv := model.NewAnvilInventory()
	inv.SetItem(model.AnvilFirstSlot, first)
	inv.SetItem(model.AnvilSecondSlot, second)
	return inv
}
