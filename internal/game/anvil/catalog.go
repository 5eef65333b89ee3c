package anvil

// KindInfo is the declarative domain data of one enchantment kind.
type KindInfo struct {
	Kind     Kind
	MaxLevel int
	// Conflicts may be declared in one direction only; resolvers check both.
	Conflicts []Kind
}

// Catalog supplies per-kind maximum level and conflict declarations.
// Implementations must be safe for concurrent reads.
type Catalog interface {
	Lookup(k Kind) (KindInfo, bool)
}

// StaticCatalog is an in-memory Catalog keyed by kind.
type StaticCatalog map[Kind]KindInfo

// NewStaticCatalog indexes infos by their Kind.
func NewStaticCatalog(infos ...KindInfo) StaticCatalog {
	c := make(StaticCatalog, len(infos))
	for _, info := range infos {
		c[info.Kind] = info
	}
	return c
}

// Lookup implements Catalog.
func (c StaticCatalog) Lookup(k Kind) (KindInfo, bool) {
	info, ok := c[k]
	return info, ok
}

// maxLevel returns the level cap of k, or 0 when the kind is unknown
// or declares no cap.
func maxLevel(cat Catalog, k Kind) int {
	if cat == nil {
		return 0
	}
	info, ok := cat.Lookup(k)
	if !ok || info.MaxLevel < 1 {
		return 0
	}
	return info.MaxLevel
}

// clampLevel caps lvl at the kind maximum. Uncapped kinds pass through.
func clampLevel(cat Catalog, k Kind, lvl int) int {
	if limit := maxLevel(cat, k); limit > 0 && lvl > limit {
		return limit
	}
	return lvl
}
