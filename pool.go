// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package knapsack

import "sync"

// Stack pool for evaluation stacks.
// An evaluator acquires a stack when it is created and releases it once the
// evaluation terminates; released stacks are truncated to zero length.
// Stacks larger than maxPooledStack are left to the garbage collector so a
// single deep evaluation does not pin memory for the life of the process.

const (
	defaultStackCap = 64
	maxPooledStack  = 1 << 16
)

var stackPool = sync.Pool{New: func() any {
	s := make([]entry, 0, defaultStackCap)
	return &s
}}

// acquireStack returns an empty stack with capacity for at least hint entries.
func acquireStack(hint int) []entry {
	if hint > maxPooledStack {
		return make([]entry, 0, hint)
	}
	s := *stackPool.Get().(*[]entry)
	if cap(s) < hint {
		stackPool.Put(&s)
		return make([]entry, 0, hint)
	}
	return s[:0]
}

// releaseStack returns s to the pool; oversized stacks are dropped.
func releaseStack(s []entry) {
	if s == nil || cap(s) > maxPooledStack {
		return
	}
	s = s[:0]
	stackPool.Put(&s)
}
