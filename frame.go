// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package knapsack

// frameKind tags the variant held by a frame.
// Dispatch switches on the tag; frames are plain values so that pushing
// and popping never allocates.
type frameKind uint8

const (
	// unresolved is a subproblem (items[:n], limit) not yet expanded.
	unresolved frameKind = iota

	// aggregation is a pending max(left, right) whose halves are filled
	// by the two children pushed above it.
	aggregation
)

func (k frameKind) String() string {
	switch k {
	case unresolved:
		return "unresolved"
	case aggregation:
		return "aggregation"
	default:
		return "unknown"
	}
}

// frame is a defunctionalized continuation.
// Only the fields of the active variant are meaningful.
type frame struct {
	kind frameKind

	// unresolved
	n     int   // length of the item prefix still to decide
	limit int64 // remaining capacity, never negative

	// aggregation
	left  int64 // exclude branch, seeded with 0
	right int64 // include branch, seeded with the item's value
}

func unresolvedFrame(n int, limit int64) frame {
	return frame{kind: unresolved, n: n, limit: limit}
}

func aggregationFrame(left, right int64) frame {
	return frame{kind: aggregation, left: left, right: right}
}

// half selects which accumulator of an aggregation a result is added into.
type half uint8

const (
	leftHalf half = iota
	rightHalf
)

// output is the slot index of the implicit top-level result location.
const output = -1

// address designates the half of the aggregation at stack index slot that
// a resolved frame contributes to. Indices are resolved at push time and
// remain valid because the stack only shrinks by popping.
type address struct {
	slot int
	half half
}

// root is the address of the initial subproblem.
var root = address{slot: output}

// entry is one element of the evaluation stack.
type entry struct {
	addr  address
	frame frame
}
