package domain

import "math/rand/v2"

// IndexPicker returns a uniform index in [0, n). It is only called with n >= 1.
// Injecting the source keeps insight selection deterministic under test while
// staying randomized in production.
type IndexPicker func(n int) int

// PickInsight selects one phrase from the pool using pick, falling back to
// the package-default uniform source when pick is nil. An empty pool yields
// the empty string.
func PickInsight(pool []string, pick IndexPicker) string {
	if len(pool) == 0 {
		return ""
	}
	if pick == nil {
		pick = rand.IntN
	}
	return pool[pick(len(pool))]
}
