package data

// enchantmentDef - определение зачарования.
// Conflicts are copied as the source data declares them; several pairs are
// declared on one side only (smite does not list sharpness).
type enchantmentDef struct {
	id        string
	name      string
	maxLevel  int
	conflicts []string
}

func (d *enchantmentDef) ID() string          { return d.id }
func (d *enchantmentDef) Name() string        { return d.name }
func (d *enchantmentDef) MaxLevel() int       { return d.maxLevel }
func (d *enchantmentDef) Conflicts() []string { return d.conflicts }

var enchantmentDefs = []enchantmentDef{
	// Weapon damage
	{id: "sharpness", name: "Sharpness", maxLevel: 5, conflicts: []string{"smite", "bane_of_arthropods"}},
	{id: "smite", name: "Smite", maxLevel: 5, conflicts: []string{"bane_of_arthropods"}},
	{id: "bane_of_arthropods", name: "Bane of Arthropods", maxLevel: 5},
	{id: "knockback", name: "Knockback", maxLevel: 2},
	{id: "fire_aspect", name: "Fire Aspect", maxLevel: 2},
	{id: "looting", name: "Looting", maxLevel: 3},
	{id: "sweeping", name: "Sweeping Edge", maxLevel: 3},

	// Armor protection
	{id: "protection", name: "Protection", maxLevel: 4, conflicts: []string{"fire_protection", "blast_protection", "projectile_protection"}},
	{id: "fire_protection", name: "Fire Protection", maxLevel: 4, conflicts: []string{"blast_protection", "projectile_protection"}},
	{id: "blast_protection", name: "Blast Protection", maxLevel: 4, conflicts: []string{"projectile_protection"}},
	{id: "projectile_protection", name: "Projectile Protection", maxLevel: 4},
	{id: "feather_falling", name: "Feather Falling", maxLevel: 4},
	{id: "thorns", name: "Thorns", maxLevel: 3},
	{id: "respiration", name: "Respiration", maxLevel: 3},
	{id: "aqua_affinity", name: "Aqua Affinity", maxLevel: 1},
	{id: "depth_strider", name: "Depth Strider", maxLevel: 3, conflicts: []string{"frost_walker"}},
	{id: "frost_walker", name: "Frost Walker", maxLevel: 2},

	// Tools
	{id: "efficiency", name: "Efficiency", maxLevel: 5},
	{id: "fortune", name: "Fortune", maxLevel: 3, conflicts: []string{"silk_touch"}},
	{id: "silk_touch", name: "Silk Touch", maxLevel: 1},

	// Bows & crossbows
	{id: "power", name: "Power", maxLevel: 5},
	{id: "punch", name: "Punch", maxLevel: 2},
	{id: "flame", name: "Flame", maxLevel: 1},
	{id: "infinity", name: "Infinity", maxLevel: 1, conflicts: []string{"mending"}},
	{id: "multishot", name: "Multishot", maxLevel: 1, conflicts: []string{"piercing"}},
	{id: "piercing", name: "Piercing", maxLevel: 4},
	{id: "quick_charge", name: "Quick Charge", maxLevel: 3},

	// Tridents
	{id: "loyalty", name: "Loyalty", maxLevel: 3, conflicts: []string{"riptide"}},
	{id: "riptide", name: "Riptide", maxLevel: 3, conflicts: []string{"channeling"}},
	{id: "channeling", name: "Channeling", maxLevel: 1},
	{id: "impaling", name: "Impaling", maxLevel: 5},

	// Any damageable item
	{id: "unbreaking", name: "Unbreaking", maxLevel: 3},
	{id: "mending", name: "Mending", maxLevel: 1},
	{id: "vanishing_curse", name: "Curse of Vanishing", maxLevel: 1},
	{id: "binding_curse", name: "Curse of Binding", maxLevel: 1},
}
