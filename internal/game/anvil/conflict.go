package anvil

import "slices"

// Conflicts reports whether kinds a and b may not coexist on one item.
// A kind never conflicts with itself. The declaration of either side is
// enough: if only a lists b, b still conflicts with a.
func Conflicts(cat Catalog, a, b Kind) bool {
	if a == b || cat == nil {
		return false
	}
	if info, ok := cat.Lookup(a); ok && slices.Contains(info.Conflicts, b) {
		return true
	}
	if info, ok := cat.Lookup(b); ok && slices.Contains(info.Conflicts, a) {
		return true
	}
	return false
}

// ConflictsWithAny reports whether candidate conflicts with any kind in existing.
func ConflictsWithAny(cat Catalog, candidate Kind, existing Set) bool {
	for k := range existing {
		if Conflicts(cat, candidate, k) {
			return true
		}
	}
	return false
}

// HasConflicts reports whether two distinct kinds of s conflict with each other.
func HasConflicts(cat Catalog, s Set) bool {
	kinds := s.Kinds()
	for i := range kinds {
		for j := i + 1; j < len(kinds); j++ {
			if Conflicts(cat, kinds[i], kinds[j]) {
				return true
			}
		}
	}
	return false
}

// MayExtract decides whether a viewer may pull a result carrying s out of the
// anvil. Only a conflicting set without the override permission is refused.
func MayExtract(cat Catalog, s Set, override bool) bool {
	if override {
		return true
	}
	return !HasConflicts(cat, s)
}
