// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package unionfind provides a disjoint-set forest over the elements 0..n-1
// with union by size and path compression.
//
// Indices outside [0, n) panic, as slice indexing does.
package unionfind

// UnionFind is a disjoint-set forest. The zero value holds no elements.
type UnionFind struct {
	// parents[i] >= 0 is the parent of i; a root r stores -size(r).
	parents []int
	sets    int
}

// New returns n singleton sets.
func New(n int) *UnionFind {
	parents := make([]int, n)
	for i := range parents {
		parents[i] = -1
	}
	return &UnionFind{parents: parents, sets: n}
}

// Len returns the number of elements.
func (u *UnionFind) Len() int { return len(u.parents) }

// Sets returns the number of disjoint sets.
func (u *UnionFind) Sets() int { return u.sets }

// find returns the root of i, pointing every node on the path at it.
// Two passes instead of recursion keep deep chains off the goroutine stack.
func (u *UnionFind) find(i int) int {
	r := i
	for u.parents[r] >= 0 {
		r = u.parents[r]
	}
	for u.parents[i] >= 0 {
		next := u.parents[i]
		u.parents[i] = r
		i = next
	}
	return r
}

// Unite merges the sets containing i and j, attaching the smaller tree
// under the larger. Returns false when they were already the same set.
func (u *UnionFind) Unite(i, j int) bool {
	i, j = u.find(i), u.find(j)
	if i == j {
		return false
	}
	if u.parents[i] > u.parents[j] {
		i, j = j, i
	}
	u.parents[i] += u.parents[j]
	u.parents[j] = i
	u.sets--
	return true
}

// Same reports whether i and j belong to the same set.
func (u *UnionFind) Same(i, j int) bool {
	return u.find(i) == u.find(j)
}

// Size returns the number of elements in the set containing i.
func (u *UnionFind) Size(i int) int {
	return -u.parents[u.find(i)]
}
