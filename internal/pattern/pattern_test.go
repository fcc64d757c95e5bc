package pattern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evomoney/evomoney/internal/category"
	"github.com/evomoney/evomoney/internal/common"
)

func basicCategory(t *testing.T) *category.Category {
	t.Helper()

	a := category.NewObject("A")
	b := category.NewObject("B")
	c := category.NewObject("C")

	cat, err := category.New(
		[]category.Object{a, b, c},
		[]category.Morphism{
			category.NewMorphism(a, b, "f", 100, time.Time{}),
			category.NewMorphism(b, c, "g", 100, time.Time{}),
		},
	)
	require.NoError(t, err)
	return cat
}

func TestNew_Validation(t *testing.T) {
	cat := basicCategory(t)

	tests := []struct {
		name    string
		objects []string
		links   []category.Pair
		wantErr error
	}{
		{
			name:    "valid pattern",
			objects: []string{"A", "B"},
			links:   []category.Pair{{Source: "A", Target: "B"}},
		},
		{
			name:    "unknown object",
			objects: []string{"A", "Z"},
			wantErr: common.ErrInvalidObjectReference,
		},
		{
			name:    "link source outside pattern",
			objects: []string{"B", "C"},
			links:   []category.Pair{{Source: "A", Target: "B"}},
			wantErr: common.ErrInvalidObjectReference,
		},
		{
			name:    "link without morphisms",
			objects: []string{"A", "C"},
			links:   []category.Pair{{Source: "A", Target: "C"}},
			wantErr: common.ErrInvalidLinkReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.name, cat, tt.objects, tt.links)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCalculate_BindsPatternObjects(t *testing.T) {
	cat := basicCategory(t)

	p, err := New("ab", cat, []string{"A", "B"}, []category.Pair{{Source: "A", Target: "B"}})
	require.NoError(t, err)

	colim := Calculate(p)

	assert.Equal(t, "colimit_A_B", colim.Binding.ID)
	require.Len(t, colim.Cocone, 2)
	for _, id := range []string{"A", "B"} {
		m, ok := colim.Cocone[id]
		require.True(t, ok, "object %s should have a cocone morphism", id)
		assert.Equal(t, id, m.Source.ID)
		assert.Equal(t, colim.Binding, m.Target)
		assert.Zero(t, m.Amount)
	}
}

func TestCalculate_DeterministicAcrossInsertionOrder(t *testing.T) {
	cat := basicCategory(t)

	p1, err := New("p1", cat, []string{"A", "B", "C"}, nil)
	require.NoError(t, err)
	p2, err := New("p2", cat, []string{"C", "A", "B"}, nil)
	require.NoError(t, err)

	c1 := Calculate(p1)
	c2 := Calculate(p2)

	assert.Equal(t, c1.Binding, c2.Binding)
	assert.Equal(t, "colimit_A_B_C", c1.Binding.ID)
	require.Equal(t, len(c1.Cocone), len(c2.Cocone))
	for id, m := range c1.Cocone {
		assert.True(t, m.Equal(c2.Cocone[id]), "cocone morphism for %s differs", id)
	}
}

func TestComplexify(t *testing.T) {
	cat := basicCategory(t)

	p, err := New("ab", cat, []string{"A", "B"}, []category.Pair{{Source: "A", Target: "B"}})
	require.NoError(t, err)

	folded, err := Complexify(cat, p)
	require.NoError(t, err)

	t.Run("binding object and cocone are merged in", func(t *testing.T) {
		binding, ok := folded.Object("colimit_A_B")
		require.True(t, ok)

		for _, id := range []string{"A", "B"} {
			bucket := folded.Morphisms(category.Pair{Source: id, Target: binding.ID})
			assert.Len(t, bucket, 1, "object %s should reach the binding object", id)
		}
	})

	t.Run("input category is never mutated", func(t *testing.T) {
		_, ok := cat.Object("colimit_A_B")
		assert.False(t, ok)
		assert.Len(t, cat.Objects(), 3)
	})

	t.Run("folding twice is idempotent", func(t *testing.T) {
		again, err := Complexify(folded, p)
		require.NoError(t, err)
		assert.Len(t, again.Objects(), len(folded.Objects()))
	})
}
