package anvil

import "slices"

// origin tracks which input a kind of the merged set came from.
type origin uint8

const (
	fromFirst origin = 1 << iota
	fromSecond
	fromBoth = fromFirst | fromSecond
)

// Combine merges two enchantment sets. Inputs are not modified.
//
// Kinds present in both sets are admitted first: the higher level plus one,
// capped at the kind maximum (two level-3 books give level 4; a kind at its
// maximum stays there). Kinds present in one set only are then visited in kind
// order and admitted unless they conflict with an already admitted kind that
// came from the other set. Kinds from the same set never evict each other, so
// combining with an empty set passes the other one through unchanged.
//
// Combine(a, b) and Combine(b, a) always hold the same pairs.
func Combine(cat Catalog, a, b Set) Set {
	result := make(Set, len(a)+len(b))
	origins := make(map[Kind]origin, len(a)+len(b))

	// Same kind on both sides: upgrade and admit unconditionally.
	for _, k := range a.Kinds() {
		lb, ok := b[k]
		if !ok {
			continue
		}
		result[k] = clampLevel(cat, k, max(a[k], lb)+1)
		origins[k] = fromBoth
	}

	singles := make([]Kind, 0, len(a)+len(b))
	for _, k := range a.Kinds() {
		if !b.Has(k) {
			singles = append(singles, k)
		}
	}
	for _, k := range b.Kinds() {
		if !a.Has(k) {
			singles = append(singles, k)
		}
	}
	slices.Sort(singles)

	for _, k := range singles {
		src, lvl := fromFirst, a[k]
		if !a.Has(k) {
			src, lvl = fromSecond, b[k]
		}
		if conflictsWithOther(cat, k, src, result, origins) {
			continue
		}
		result[k] = clampLevel(cat, k, lvl)
		origins[k] = src
	}

	return result
}

// conflictsWithOther reports whether k (from src) conflicts with an admitted
// kind that carries the other input in its origin.
func conflictsWithOther(cat Catalog, k Kind, src origin, admitted Set, origins map[Kind]origin) bool {
	for other := range admitted {
		if origins[other]&^src == 0 {
			continue
		}
		if Conflicts(cat, k, other) {
			return true
		}
	}
	return false
}
