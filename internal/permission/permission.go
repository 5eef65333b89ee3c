// Package permission answers "does this player hold this node" for the anvil
// listener. The real permission store lives in the host; Static covers
// configuration-driven grants.
package permission

import "strings"

// Checker resolves permission nodes for a player.
type Checker interface {
	HasPermission(player, node string) bool
}

// Static is a Checker backed by a fixed node -> players table.
// Player names compare case-insensitively. Read-only after construction.
type Static struct {
	grants map[string]map[string]struct{}
}

// NewStatic builds a Static checker from a node -> player names table.
func NewStatic(table map[string][]string) *Static {
	grants := make(map[string]map[string]struct{}, len(table))
	for node, players := range table {
		set := make(map[string]struct{}, len(players))
		for _, p := range players {
			set[strings.ToLower(p)] = struct{}{}
		}
		grants[node] = set
	}
	return &Static{grants: grants}
}

// HasPermission implements Checker.
func (s *Static) HasPermission(player, node string) bool {
	if s == nil {
		return false
	}
	players, ok := s.grants[node]
	if !ok {
		return false
	}
	_, ok = players[strings.ToLower(player)]
	return ok
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(player, node string) bool

// HasPermission implements Checker.
func (f CheckerFunc) HasPermission(player, node string) bool {
	return f(player, node)
}
