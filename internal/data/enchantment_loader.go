package data

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/udisondev/anvil/internal/game/anvil"
	"github.com/udisondev/anvil/internal/model"
)

// EnchantmentTable - глобальный registry всех enchantment kinds.
// map[id]*enchantmentDef
var EnchantmentTable map[string]*enchantmentDef

// ItemTypeTable - глобальный registry базовых типов предметов.
var ItemTypeTable map[string]*itemTypeDef

// enchantmentCatalog is built once on load; anvil.StaticCatalog is read-only
// after that and safe to share.
var enchantmentCatalog anvil.StaticCatalog

// GetEnchantmentDef возвращает enchantmentDef по ID.
// Returns nil если зачарование не найдено.
func GetEnchantmentDef(id string) *enchantmentDef {
	if EnchantmentTable == nil {
		return nil
	}
	return EnchantmentTable[id]
}

// GetItemTypeDef returns the base item type by ID, nil if unknown.
func GetItemTypeDef(id string) *itemTypeDef {
	if ItemTypeTable == nil {
		return nil
	}
	return ItemTypeTable[id]
}

// EnchantmentCatalog returns the loaded table as an anvil.Catalog.
// Returns an empty catalog before LoadEnchantments.
func EnchantmentCatalog() anvil.Catalog {
	if enchantmentCatalog == nil {
		return anvil.StaticCatalog{}
	}
	return enchantmentCatalog
}

// LoadEnchantments строит EnchantmentTable и ItemTypeTable из Go-литералов.
// Conflicts pointing at unknown kinds are a data error.
func LoadEnchantments() error {
	table := make(map[string]*enchantmentDef, len(enchantmentDefs))
	for i := range enchantmentDefs {
		def := &enchantmentDefs[i]
		if def.MaxLevel() < 1 {
			return fmt.Errorf("enchantment %q: max level %d < 1", def.ID(), def.MaxLevel())
		}
		if _, dup := table[def.ID()]; dup {
			return fmt.Errorf("enchantment %q declared twice", def.ID())
		}
		table[def.ID()] = def
	}

	catalog := make(anvil.StaticCatalog, len(table))
	for id, def := range table {
		conflicts := make([]anvil.Kind, 0, len(def.Conflicts()))
		for _, c := range def.Conflicts() {
			if _, ok := table[c]; !ok {
				return fmt.Errorf("enchantment %q conflicts with unknown %q", id, c)
			}
			conflicts = append(conflicts, anvil.Kind(c))
		}
		catalog[anvil.Kind(id)] = anvil.KindInfo{
			Kind:      anvil.Kind(id),
			MaxLevel:  def.MaxLevel(),
			Conflicts: conflicts,
		}
	}

	types := make(map[string]*itemTypeDef, len(itemTypeDefs))
	templates := make(map[string]*model.ItemTemplate, len(itemTypeDefs))
	for i := range itemTypeDefs {
		def := &itemTypeDefs[i]
		types[def.id] = def
		templates[def.id] = itemTypeDefToTemplate(def)
	}

	EnchantmentTable = table
	ItemTypeTable = types
	itemTemplates = templates
	enchantmentCatalog = catalog

	slog.Info("loaded enchantments", "count", len(EnchantmentTable), "item_types", len(ItemTypeTable))
	return nil
}

// DescribeEnchantments renders s with display names in kind order,
// e.g. "Sharpness 5, Unbreaking 3". Unknown kinds keep their ID.
func DescribeEnchantments(s anvil.Set) string {
	parts := make([]string, 0, s.Len())
	for _, k := range s.Kinds() {
		name := string(k)
		if def := GetEnchantmentDef(string(k)); def != nil {
			name = def.Name()
		}
		parts = append(parts, fmt.Sprintf("%s %d", name, s.Level(k)))
	}
	return strings.Join(parts, ", ")
}
