package data

// itemTypeDef - базовый тип предмета для наковальни.
// maxDurability = 0 означает, что предмет не изнашивается.
type itemTypeDef struct {
	id            string
	name          string
	maxDurability int
	carrier       bool
}

func (d *itemTypeDef) ID() string         { return d.id }
func (d *itemTypeDef) Name() string       { return d.name }
func (d *itemTypeDef) MaxDurability() int { return d.maxDurability }
func (d *itemTypeDef) IsCarrier() bool    { return d.carrier }

var itemTypeDefs = []itemTypeDef{
	{id: "enchanted_book", name: "Enchanted Book", carrier: true},

	{id: "wooden_sword", name: "Wooden Sword", maxDurability: 59},
	{id: "stone_sword", name: "Stone Sword", maxDurability: 131},
	{id: "iron_sword", name: "Iron Sword", maxDurability: 250},
	{id: "golden_sword", name: "Golden Sword", maxDurability: 32},
	{id: "diamond_sword", name: "Diamond Sword", maxDurability: 1561},
	{id: "netherite_sword", name: "Netherite Sword", maxDurability: 2031},

	{id: "iron_pickaxe", name: "Iron Pickaxe", maxDurability: 250},
	{id: "diamond_pickaxe", name: "Diamond Pickaxe", maxDurability: 1561},
	{id: "netherite_pickaxe", name: "Netherite Pickaxe", maxDurability: 2031},

	{id: "bow", name: "Bow", maxDurability: 384},
	{id: "crossbow", name: "Crossbow", maxDurability: 465},
	{id: "trident", name: "Trident", maxDurability: 250},

	{id: "iron_chestplate", name: "Iron Chestplate", maxDurability: 240},
	{id: "diamond_chestplate", name: "Diamond Chestplate", maxDurability: 528},
	{id: "diamond_boots", name: "Diamond Boots", maxDurability: 429},

	{id: "elytra", name: "Elytra", maxDurability: 432},
	{id: "pumpkin", name: "Carved Pumpkin"},
}
