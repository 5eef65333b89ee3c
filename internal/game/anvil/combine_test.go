package anvil

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    Set
		b    Set
		want Set
	}{
		{
			name: "equal levels increment",
			a:    Set{"sharpness": 3},
			b:    Set{"sharpness": 3},
			want: Set{"sharpness": 4},
		},
		{
			name: "different levels take higher plus one",
			a:    Set{"sharpness": 2},
			b:    Set{"sharpness": 4},
			want: Set{"sharpness": 5},
		},
		{
			name: "equal levels at max stay at max",
			a:    Set{"unbreaking": 3},
			b:    Set{"unbreaking": 3},
			want: Set{"unbreaking": 3},
		},
		{
			name: "single-level kind stays at one",
			a:    Set{"mending": 1},
			b:    Set{"mending": 1},
			want: Set{"mending": 1},
		},
		{
			name: "uncatalogued kind is not capped",
			a:    Set{"custom": 7},
			b:    Set{"custom": 7},
			want: Set{"custom": 8},
		},
		{
			name: "disjoint kinds union",
			a:    Set{"sharpness": 3},
			b:    Set{"unbreaking": 2},
			want: Set{"sharpness": 3, "unbreaking": 2},
		},
		{
			name: "shared kind upgraded, extra kind carried",
			a:    Set{"sharpness": 3},
			b:    Set{"sharpness": 3, "unbreaking": 2},
			want: Set{"sharpness": 4, "unbreaking": 2},
		},
		{
			name: "single kind conflicting with shared kind is dropped",
			a:    Set{"sharpness": 2, "smite": 4},
			b:    Set{"sharpness": 2},
			want: Set{"sharpness": 3},
		},
		{
			name: "conflict declared one way only",
			a:    Set{"smite": 4},
			b:    Set{"sharpness": 1},
			// sharpness sorts before smite: admitted first, smite dropped.
			want: Set{"sharpness": 1},
		},
		{
			name: "earlier kind wins across inputs",
			a:    Set{"silk_touch": 1},
			b:    Set{"fortune": 3},
			want: Set{"fortune": 3},
		},
		{
			name: "same-input conflicts pass through with empty other",
			a:    Set{"sharpness": 5, "smite": 5},
			b:    Set{},
			want: Set{"sharpness": 5, "smite": 5},
		},
		{
			name: "both empty",
			a:    Set{},
			b:    nil,
			want: Set{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Combine(testCatalog, tt.a, tt.b)
			assert.True(t, got.Equal(tt.want), "Combine(%s, %s) = %s; want %s", tt.a, tt.b, got, tt.want)
		})
	}
}

func TestCombine_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	a := Set{"sharpness": 3, "smite": 1}
	b := Set{"sharpness": 3, "unbreaking": 2}
	_ = Combine(testCatalog, a, b)

	assert.Equal(t, Set{"sharpness": 3, "smite": 1}, a)
	assert.Equal(t, Set{"sharpness": 3, "unbreaking": 2}, b)
}

// --- property checks over random sets ---

var allKinds = []Kind{
	"sharpness", "smite", "bane_of_arthropods", "unbreaking", "mending",
	"infinity", "looting", "fortune", "silk_touch", "custom",
}

func randomSet(r *rand.Rand) Set {
	s := Set{}
	for _, k := range allKinds {
		if r.IntN(3) != 0 {
			continue
		}
		limit := maxLevel(testCatalog, k)
		if limit == 0 {
			limit = 10
		}
		s[k] = 1 + r.IntN(limit)
	}
	return s
}

func TestCombine_Properties(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(42, 7))

	for i := 0; i < 2000; i++ {
		a, b := randomSet(r), randomSet(r)
		got := Combine(testCatalog, a, b)

		if !got.Equal(Combine(testCatalog, b, a)) {
			t.Fatalf("Combine not symmetric for %s and %s", a, b)
		}

		for k, lvl := range got {
			if !a.Has(k) && !b.Has(k) {
				t.Fatalf("Combine(%s, %s) introduced %s", a, b, k)
			}
			if limit := maxLevel(testCatalog, k); limit > 0 && lvl > limit {
				t.Fatalf("Combine(%s, %s): %s level %d above max %d", a, b, k, lvl, limit)
			}
			if lvl < 1 {
				t.Fatalf("Combine(%s, %s): %s level %d below 1", a, b, k, lvl)
			}
		}

		for k := range a {
			if !b.Has(k) {
				continue
			}
			want := max(a[k], b[k]) + 1
			if limit := maxLevel(testCatalog, k); limit > 0 {
				want = min(want, limit)
			}
			if got[k] != want {
				t.Fatalf("Combine(%s, %s): %s = %d; want %d", a, b, k, got[k], want)
			}
		}

		// A single-source kind never survives next to a conflicting kind
		// admitted from the other input.
		for k1 := range got {
			for k2 := range got {
				if !Conflicts(testCatalog, k1, k2) {
					continue
				}
				aOnly1, bOnly1 := a.Has(k1) && !b.Has(k1), b.Has(k1) && !a.Has(k1)
				fromB2, fromA2 := b.Has(k2), a.Has(k2)
				if (aOnly1 && fromB2) || (bOnly1 && fromA2) {
					t.Fatalf("Combine(%s, %s) kept conflicting %s and %s", a, b, k1, k2)
				}
			}
		}
	}
}
