// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package knapsack_test

import (
	"math/rand/v2"
	"runtime/debug"
	"testing"

	"code.hybscloud.com/knapsack"
)

const propertyN = 500

// naive is the recursion the evaluator simulates, run on the goroutine stack.
func naive(items []knapsack.Pair, limit int64) int64 {
	if len(items) == 0 {
		return 0
	}
	job, rest := items[len(items)-1], items[:len(items)-1]
	if job.W > limit {
		return naive(rest, limit)
	}
	return max(naive(rest, limit), naive(rest, limit-job.W)+job.V)
}

// randItems returns up to maxLen items with value and weight in [0, 100).
func randItems(rng *rand.Rand, maxLen int) []knapsack.Pair {
	items := make([]knapsack.Pair, rng.IntN(maxLen+1))
	for i := range items {
		items[i] = knapsack.Pair{V: rng.Int64N(100), W: rng.Int64N(100)}
	}
	return items
}

// randCapacity returns a capacity in [0, 250).
func randCapacity(rng *rand.Rand) int64 {
	return rng.Int64N(250)
}

func mustSolve(t *testing.T, items []knapsack.Pair, capacity int64) int64 {
	t.Helper()
	v, err := knapsack.Solve(items, capacity)
	if err != nil {
		t.Fatalf("Solve(%v, %d): %v", items, capacity, err)
	}
	return v
}

// TestPropertyMatchesNaive: Solve(items, L) ≡ naive(items, L)
func TestPropertyMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		items := randItems(rng, 12)
		capacity := randCapacity(rng)
		got := mustSolve(t, items, capacity)
		if want := naive(items, capacity); got != want {
			t.Fatalf("Solve(%v, %d) = %d, want %d", items, capacity, got, want)
		}
	}
}

// TestPropertyMonotoneInCapacity: L1 <= L2 ⇒ Solve(items, L1) <= Solve(items, L2)
func TestPropertyMonotoneInCapacity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	for range propertyN {
		items := randItems(rng, 10)
		l1 := randCapacity(rng)
		l2 := l1 + rng.Int64N(100)
		v1, v2 := mustSolve(t, items, l1), mustSolve(t, items, l2)
		if v1 > v2 {
			t.Fatalf("Solve(%v, %d) = %d > Solve(.., %d) = %d", items, l1, v1, l2, v2)
		}
	}
}

// TestPropertyMonotoneInItems: adding an item never decreases the optimum.
func TestPropertyMonotoneInItems(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 2))
	for range propertyN {
		items := randItems(rng, 10)
		capacity := randCapacity(rng)
		extra := knapsack.Pair{V: rng.Int64N(100), W: rng.Int64N(100)}
		at := rng.IntN(len(items) + 1)
		grown := append(append(append([]knapsack.Pair(nil), items[:at]...), extra), items[at:]...)
		before, after := mustSolve(t, items, capacity), mustSolve(t, grown, capacity)
		if after < before {
			t.Fatalf("adding %v at %d: %d < %d", extra, at, after, before)
		}
	}
}

// TestPropertyEmptyIsZero: Solve([], L) ≡ 0
func TestPropertyEmptyIsZero(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 3))
	for range propertyN {
		capacity := rng.Int64N(1 << 40)
		if got := mustSolve(t, nil, capacity); got != 0 {
			t.Fatalf("Solve([], %d) = %d, want 0", capacity, got)
		}
	}
}

// TestPropertyZeroCapacity: positive weights ⇒ Solve(items, 0) ≡ 0
func TestPropertyZeroCapacity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 4))
	for range propertyN {
		items := randItems(rng, 12)
		for i := range items {
			items[i].W++
		}
		if got := mustSolve(t, items, 0); got != 0 {
			t.Fatalf("Solve(%v, 0) = %d, want 0", items, got)
		}
	}
}

// TestPropertyTakeAllWhenEverythingFits: Solve(items, Σw) ≡ Σv, and no
// optimum exceeds Σv.
func TestPropertyTakeAllWhenEverythingFits(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 5))
	for range propertyN {
		items := randItems(rng, 12)
		var weight, value int64
		for _, it := range items {
			weight += it.W
			value += it.V
		}
		if got := mustSolve(t, items, weight); got != value {
			t.Fatalf("Solve(%v, %d) = %d, want total %d", items, weight, got, value)
		}
		if got := mustSolve(t, items, randCapacity(rng)); got > value {
			t.Fatalf("Solve(%v) = %d exceeds total value %d", items, got, value)
		}
	}
}

// table is the capacity-indexed dynamic program, iterative at any length.
func table(items []knapsack.Pair, capacity int64) int64 {
	best := make([]int64, capacity+1)
	for _, it := range items {
		for c := capacity; c >= it.W; c-- {
			best[c] = max(best[c], best[c-it.W]+it.V)
		}
	}
	return best[capacity]
}

// TestPropertyDeepMatchesTable: Solve(items, L) ≡ table(items, L) for
// random sequences of 1000 to 3000 items, on a capped goroutine stack.
func TestPropertyDeepMatchesTable(t *testing.T) {
	prev := debug.SetMaxStack(1 << 20)
	defer debug.SetMaxStack(prev)

	rng := rand.New(rand.NewPCG(42, 6))
	for range 20 {
		items := make([]knapsack.Pair, 1000+rng.IntN(2001))
		for i := range items {
			items[i] = knapsack.Pair{V: rng.Int64N(100), W: 150 + rng.Int64N(100)}
		}
		capacity := randCapacity(rng)
		got := mustSolve(t, items, capacity)
		if want := table(items, capacity); got != want {
			t.Fatalf("Solve(%d items, %d) = %d, want %d", len(items), capacity, got, want)
		}
	}
}
