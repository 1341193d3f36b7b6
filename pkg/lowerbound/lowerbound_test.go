package lowerbound

import (
	"math/rand"
	"testing"

	"pgregory.net/rapid"
)

func TestCompute_KnownCase(t *testing.T) {
	lb, ok := Compute([]int{4, 4, 3, 3, 3}, 2)
	if !ok {
		t.Fatal("expected LB to be defined at strength 2")
	}
	if lb != 16 {
		t.Errorf("LB = %d, want 16", lb)
	}
}

func TestCompute_TwoByTwo(t *testing.T) {
	lb, ok := Compute([]int{2, 2}, 2)
	if !ok || lb != 4 {
		t.Errorf("Compute([2,2], 2) = (%d, %v), want (4, true)", lb, ok)
	}
}

func TestCompute_UndefinedAtOtherStrengths(t *testing.T) {
	for _, s := range []int{1, 3, 4} {
		if _, ok := Compute([]int{4, 4, 3}, s); ok {
			t.Errorf("strength %d: expected LB to be undefined", s)
		}
	}
}

// TestProperty_InvariantUnderPermutation verifies LB is invariant under any
// parameter reordering (spec.md §8), since it depends only on the
// cardinality multiset.
func TestProperty_InvariantUnderPermutation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 8).Draw(t, "n")
		cards := make([]int, n)
		for i := range cards {
			cards[i] = rapid.IntRange(1, 20).Draw(t, "card")
		}

		base, ok := Compute(cards, 2)
		if !ok {
			t.Fatal("expected LB defined at strength 2")
		}

		permuted := append([]int(nil), cards...)
		rand.New(rand.NewSource(int64(rapid.Uint64().Draw(t, "shuffleSeed")))).Shuffle(len(permuted), func(i, j int) {
			permuted[i], permuted[j] = permuted[j], permuted[i]
		})

		got, ok := Compute(permuted, 2)
		if !ok || got != base {
			t.Fatalf("LB changed under permutation: %d vs %d", base, got)
		}
	})
}
