// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package graph provides a dense weighted undirected graph and an all-pairs
// shortest-path transform.
//
// Weights are non-negative int64 values; [Absent] marks a missing edge and
// acts as an infinite distance. The diagonal is always 0.
package graph

import (
	"math"

	"modernc.org/mathutil"

	"code.hybscloud.com/knapsack/fault"
)

// Absent is the weight of a missing edge.
const Absent int64 = -1

// Graph is a dense weighted undirected graph over vertices 0..n-1.
type Graph struct {
	n       int
	weights []int64 // row-major n×n, symmetric
}

// New returns a graph with n vertices and no edges.
// Returns an error of kind fault.ErrPrecondition when n is negative or n*n
// does not fit in an int.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fault.Preconditionf("negative vertex count %d", n)
	}
	if n > 0 && n > math.MaxInt/n {
		return nil, fault.Preconditionf("vertex count %d: matrix size overflows int", n)
	}
	g := &Graph{n: n, weights: make([]int64, n*n)}
	for i := range g.weights {
		g.weights[i] = Absent
	}
	for v := range n {
		g.weights[v*n+v] = 0
	}
	return g, nil
}

// Vertices returns the number of vertices.
func (g *Graph) Vertices() int { return g.n }

func (g *Graph) check(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fault.Preconditionf("edge (%d, %d) outside %d vertices", u, v, g.n)
	}
	return nil
}

// Weight returns the weight of edge (u, v), or Absent.
// Returns an error of kind fault.ErrPrecondition for an unknown vertex.
func (g *Graph) Weight(u, v int) (int64, error) {
	if err := g.check(u, v); err != nil {
		return 0, err
	}
	return g.weights[u*g.n+v], nil
}

// SetWeight sets the weight of edge (u, v) in both directions and returns
// the previous weight. Setting Absent removes the edge.
//
// Returns an error of kind fault.ErrPrecondition for an unknown vertex, a
// weight below Absent, or a non-zero weight on the diagonal.
func (g *Graph) SetWeight(u, v int, w int64) (int64, error) {
	if err := g.check(u, v); err != nil {
		return 0, err
	}
	if w < Absent {
		return 0, fault.Preconditionf("edge (%d, %d): weight %d below %d", u, v, w, Absent)
	}
	if u == v && w != 0 {
		return 0, fault.Preconditionf("self-loop (%d, %d) with weight %d", u, v, w)
	}
	old := g.weights[u*g.n+v]
	g.weights[u*g.n+v] = w
	g.weights[v*g.n+u] = w
	return old, nil
}

// Clone returns an independent copy of g.
func (g *Graph) Clone() *Graph {
	return &Graph{n: g.n, weights: append([]int64(nil), g.weights...)}
}

// Matrix returns the weights as rows, Absent for missing edges.
func (g *Graph) Matrix() [][]int64 {
	rows := make([][]int64, g.n)
	for i := range rows {
		rows[i] = append([]int64(nil), g.weights[i*g.n:(i+1)*g.n]...)
	}
	return rows
}

// ShortestPaths returns the graph of shortest-path distances of g using the
// Floyd–Warshall recurrence in k→i→j order. Absent means unreachable.
// g is not modified.
//
// Returns an error of kind fault.ErrOverflow when a path length exceeds
// math.MaxInt64.
func ShortestPaths(g *Graph) (*Graph, error) {
	d := g.Clone()
	n := d.n
	w := d.weights
	for k := range n {
		for i := range n {
			ik := w[i*n+k]
			if ik == Absent {
				continue
			}
			for j := i + 1; j < n; j++ {
				kj := w[k*n+j]
				if kj == Absent {
					continue
				}
				via, ovf := mathutil.AddOverflowInt64(ik, kj)
				if ovf {
					return nil, fault.Overflowf("path %d→%d→%d", i, k, j)
				}
				if cur := w[i*n+j]; cur == Absent || via < cur {
					w[i*n+j] = via
					w[j*n+i] = via
				}
			}
		}
	}
	return d, nil
}
