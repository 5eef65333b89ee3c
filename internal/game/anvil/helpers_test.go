package anvil

// --- helpers ---

// testCatalog mirrors the shape of the real tables: sharpness declares smite,
// smite does not declare sharpness back.
var testCatalog = NewStaticCatalog(
	KindInfo{Kind: "sharpness", MaxLevel: 5, Conflicts: []Kind{"smite", "bane_of_arthropods"}},
	KindInfo{Kind: "smite", MaxLevel: 5},
	KindInfo{Kind: "bane_of_arthropods", MaxLevel: 5, Conflicts: []Kind{"smite"}},
	KindInfo{Kind: "unbreaking", MaxLevel: 3},
	KindInfo{Kind: "mending", MaxLevel: 1, Conflicts: []Kind{"infinity"}},
	KindInfo{Kind: "infinity", MaxLevel: 1},
	KindInfo{Kind: "looting", MaxLevel: 3},
	KindInfo{Kind: "fortune", MaxLevel: 3, Conflicts: []Kind{"silk_touch"}},
	KindInfo{Kind: "silk_touch", MaxLevel: 1},
)

type fakeItem struct {
	base       string
	carrier    bool
	enchants   Set
	stored     Set
	repairCost int
	name       string
	damage     int
	durability int
}

func (f *fakeItem) Enchantments() Set       { return f.enchants }
func (f *fakeItem) StoredEnchantments() Set { return f.stored }
func (f *fakeItem) RepairCost() int         { return f.repairCost }
func (f *fakeItem) IsCarrier() bool         { return f.carrier }
func (f *fakeItem) BaseType() string        { return f.base }
func (f *fakeItem) DisplayName() string     { return f.name }
func (f *fakeItem) Damage() int             { return f.damage }
func (f *fakeItem) MaxDurability() int      { return f.durability }

func sword(enchants Set, repairCost int) *fakeItem {
	return &fakeItem{base: "diamond_sword", enchants: enchants, repairCost: repairCost, durability: 1561}
}

func book(stored Set, repairCost int) *fakeItem {
	return &fakeItem{base: "enchanted_book", carrier: true, stored: stored, repairCost: repairCost}
}
