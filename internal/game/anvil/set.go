package anvil

import (
	"fmt"
	"slices"
	"strings"
)

// Kind identifies an enchantment type (sharpness, unbreaking, ...).
type Kind string

// Set maps enchantment kind to its level.
// Levels are always >= 1; a kind with level 0 is simply absent.
type Set map[Kind]int

// NewSet builds a Set from kind/level pairs, dropping non-positive levels.
func NewSet(levels map[Kind]int) Set {
	s := make(Set, len(levels))
	for k, lvl := range levels {
		if lvl >= 1 {
			s[k] = lvl
		}
	}
	return s
}

// Kinds returns the kinds of the set sorted by identity.
// All iteration that affects results goes through Kinds to stay deterministic.
func (s Set) Kinds() []Kind {
	kinds := make([]Kind, 0, len(s))
	for k := range s {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Level returns the level of kind k, 0 if absent.
func (s Set) Level(k Kind) int {
	return s[k]
}

// Has reports whether kind k is present.
func (s Set) Has(k Kind) bool {
	_, ok := s[k]
	return ok
}

// Len returns the number of kinds in the set.
func (s Set) Len() int {
	return len(s)
}

// Clone returns an independent copy. Cloning a nil set yields an empty set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, lvl := range s {
		out[k] = lvl
	}
	return out
}

// Equal reports whether both sets hold the same (kind, level) pairs.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for k, lvl := range s {
		if olvl, ok := other[k]; !ok || olvl != lvl {
			return false
		}
	}
	return true
}

// String renders the set as "kind:level" pairs in kind order.
func (s Set) String() string {
	parts := make([]string, 0, len(s))
	for _, k := range s.Kinds() {
		parts = append(parts, fmt.Sprintf("%s:%d", k, s[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
