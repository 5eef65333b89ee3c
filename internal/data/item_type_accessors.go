package data

import "github.com/udisondev/anvil/internal/model"

// itemTemplates - precomputed map: typeID → *model.ItemTemplate, built on load.
var itemTemplates map[string]*model.ItemTemplate

// GetItemTemplate returns the shared template of a base item type.
// Returns nil if the type is unknown or tables are not loaded.
func GetItemTemplate(typeID string) *model.ItemTemplate {
	if itemTemplates == nil {
		return nil
	}
	return itemTemplates[typeID]
}

func itemTypeDefToTemplate(def *itemTypeDef) *model.ItemTemplate {
	return &model.ItemTemplate{
		TypeID:        def.id,
		Name:          def.name,
		MaxDurability: def.maxDurability,
		Carrier:       def.carrier,
	}
}
