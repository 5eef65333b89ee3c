package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatic_HasPermission(t *testing.T) {
	t.Parallel()

	s := NewStatic(map[string][]string{
		"unsafeenchants.unsafe": {"Steve", "alex"},
		"other.node":            {"Herobrine"},
	})

	tests := []struct {
		player string
		node   string
		want   bool
	}{
		{"Steve", "unsafeenchants.unsafe", true},
		{"steve", "unsafeenchants.unsafe", true},
		{"ALEX", "unsafeenchants.unsafe", true},
		{"Herobrine", "unsafeenchants.unsafe", false},
		{"Herobrine", "other.node", true},
		{"Steve", "missing.node", false},
	}

	for _, tt := range tests {
		t.Run(tt.player+"/"+tt.node, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, s.HasPermission(tt.player, tt.node))
		})
	}
}

func TestStatic_NilAndEmpty(t *testing.T) {
	t.Parallel()

	var s *Static
	assert.False(t, s.HasPermission("Steve", "unsafeenchants.unsafe"))
	assert.False(t, NewStatic(nil).HasPermission("Steve", "unsafeenchants.unsafe"))
}

func TestCheckerFunc(t *testing.T) {
	t.Parallel()

	var c Checker = CheckerFunc(func(player, node string) bool { return player == "op" })
	assert.True(t, c.HasPermission("op", "any"))
	assert.False(t, c.HasPermission("guest", "any"))
}
