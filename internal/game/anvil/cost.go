package anvil

// repairBonusPercent is the share of maximum durability granted on top of the
// combined remaining durability when two tools are merged.
const repairBonusPercent = 12

// ComputeCost returns the repair cost of a merge: the sum of both prior costs,
// capped at capValue when capEnabled. Never negative.
//
// Hosts usually recompute this value after the merge is prepared, so the caller
// must write it again once the host is done.
func ComputeCost(first, second Item, capEnabled bool, capValue int) int {
	cost := first.RepairCost() + second.RepairCost()
	if capEnabled {
		cost = min(cost, capValue)
	}
	return max(cost, 0)
}

// RepairDamage returns the damage of an item merged from two copies of the
// same tool: remaining durability of both plus a 12% bonus, capped at full.
func RepairDamage(maxDurability, damageA, damageB int) int {
	if maxDurability <= 0 {
		return 0
	}
	remainingA := max(maxDurability-damageA, 0)
	remainingB := max(maxDurability-damageB, 0)
	remaining := min(remainingA+remainingB+maxDurability*repairBonusPercent/100, maxDurability)
	return maxDurability - remaining
}
