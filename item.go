// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package knapsack

// Item is the capability the evaluator consumes.
// Both accessors must be side-effect free and return non-negative values
// that stay stable for the duration of a solve call.
type Item interface {
	// Value returns the value gained by taking the item.
	Value() int64

	// Weight returns the capacity consumed by taking the item.
	Weight() int64
}

// Pair is a plain value/weight Item.
type Pair struct {
	V int64 // value
	W int64 // weight
}

// Value implements Item.
func (p Pair) Value() int64 { return p.V }

// Weight implements Item.
func (p Pair) Weight() int64 { return p.W }
