package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickInsight_EmptyPool(t *testing.T) {
	assert.Empty(t, PickInsight(nil, nil))
	assert.Empty(t, PickInsight([]string{}, nil))
}

func TestPickInsight_InjectedPicker(t *testing.T) {
	pool := []string{"first", "second", "third"}

	for i, expected := range pool {
		idx := i
		got := PickInsight(pool, func(n int) int {
			assert.Equal(t, 3, n)
			return idx
		})
		assert.Equal(t, expected, got)
	}
}

func TestPickInsight_DefaultSourceCoversPool(t *testing.T) {
	// Probabilistic: with 1000 draws over 3 items, every item has a
	// non-zero-probability chance of appearing, and every result must be a
	// pool member.
	pool := []string{"a", "b", "c"}
	counts := map[string]int{}

	for range 1000 {
		got := PickInsight(pool, nil)
		assert.Contains(t, pool, got)
		counts[got]++
	}

	for _, phrase := range pool {
		assert.Positive(t, counts[phrase], "phrase %q never selected", phrase)
	}
}

func TestPickInsight_SingleItemPool(t *testing.T) {
	assert.Equal(t, "only", PickInsight([]string{"only"}, nil))
}
