// Package anvil implements anvil item combination: which enchantments survive a
// merge of two items, at which level, and what the result costs.
//
// Merge flow:
//  1. CanMerge gates the pair (same base type, or exactly one enchantment carrier)
//  2. Extract reads each item's enchantments (stored ones for carriers)
//  3. Combine merges the two sets, dropping kinds that conflict across inputs
//  4. RepairDamage restores durability when neither item is a carrier
//  5. ComputeCost sums prior repair costs with an optional cap
//
// Every function here is pure and safe for concurrent use. Applying the result
// to the host inventory (and re-applying the cost after the host recomputes it)
// is the caller's job, see gameserver.AnvilListener.
package anvil

// Item is the view of an anvil input the combination logic needs.
type Item interface {
	// Enchantments returns the enchantments applied to the item itself.
	Enchantments() Set
	// StoredEnchantments returns the enchantments held by a carrier (book).
	StoredEnchantments() Set
	RepairCost() int
	// IsCarrier is true for items that only hold enchantments for transfer.
	IsCarrier() bool
	BaseType() string
	DisplayName() string
	Damage() int
	MaxDurability() int
}

// MergeRequest carries the caller-side inputs of a merge.
type MergeRequest struct {
	// RenameText becomes the display name of the result; empty clears it.
	RenameText       string
	LimitRepairCost  bool
	LimitRepairValue int
}

// MergeResult describes the combined item. It is built per attempt and not
// retained.
type MergeResult struct {
	Enchantments Set
	RepairCost   int
	DisplayName  string
	// Damage is the durability loss of the result; meaningful only if Repaired.
	Damage   int
	Repaired bool
}

// CanMerge reports whether two items may be combined at all.
// Two carriers never merge; exactly one carrier merges with anything;
// otherwise both items must share a base type.
func CanMerge(first, second Item) bool {
	if first == nil || second == nil {
		return false
	}
	fc, sc := first.IsCarrier(), second.IsCarrier()
	switch {
	case fc && sc:
		return false
	case fc != sc:
		return true
	default:
		return first.BaseType() == second.BaseType()
	}
}

// Extract returns a normalized copy of the item's enchantments: carriers read
// their stored set, other items their applied set. Non-positive levels are
// dropped and levels above the kind maximum are clamped. The item is not
// modified; missing storage yields an empty set.
func Extract(item Item, cat Catalog) Set {
	if item == nil {
		return Set{}
	}
	src := item.Enchantments()
	if item.IsCarrier() {
		src = item.StoredEnchantments()
	}
	out := make(Set, len(src))
	for k, lvl := range src {
		if lvl < 1 {
			continue
		}
		out[k] = clampLevel(cat, k, lvl)
	}
	return out
}

// Merge runs the whole combination for two present items.
// ok is false when the pair is not mergeable; the caller then leaves the
// anvil untouched.
func Merge(first, second Item, req MergeRequest, cat Catalog) (MergeResult, bool) {
	if !CanMerge(first, second) {
		return MergeResult{}, false
	}

	res := MergeResult{
		Enchantments: Combine(cat, Extract(first, cat), Extract(second, cat)),
		RepairCost:   ComputeCost(first, second, req.LimitRepairCost, req.LimitRepairValue),
		DisplayName:  req.RenameText,
		Damage:       first.Damage(),
	}

	// Repair only matters when neither input is a book.
	if !first.IsCarrier() && !second.IsCarrier() && first.MaxDurability() > 0 {
		res.Damage = RepairDamage(first.MaxDurability(), first.Damage(), second.Damage())
		res.Repaired = true
	}

	return res, true
}
