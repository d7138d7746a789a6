// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package knapsack solves the 0-1 knapsack problem by evaluating the naive
// two-branch recursion on an explicit stack instead of the native call stack.
//
// The recursion being simulated is
//
//	f([], L)          = 0
//	f(items+[job], L) = f(items, L)                                  if job.Weight() > L
//	f(items+[job], L) = max(f(items, L), f(items, L-job.Weight()) + job.Value())
//
// Each item is used at most once; the result is the maximal total value of a
// subset whose total weight does not exceed the capacity.
//
// # Design Philosophy
//
// knapsack provides:
//   - Recursion depth bounded by heap memory, not by the goroutine stack
//   - Defunctionalized continuations: "what remains" and "where the result
//     goes" are plain data on a growable slice
//   - Allocation-free evaluation loops (stacks are pooled across calls)
//
// The evaluator is deliberately exponential. It explores up to 2^n
// subproblems and keeps no table indexed by remaining capacity; callers that
// need bounded latency impose a frame budget ([WithFrameBudget]) or a
// deadline ([SolveContext]).
//
// # Frames and Addresses
//
// The stack holds (address, frame) entries. A frame is one of two variants:
//
//   - unresolved: a subproblem (items[:n], limit) still to be expanded
//   - aggregation: a two-halved accumulator (left, right) combined by max
//
// Expanding an unresolved frame whose last item fits pushes an aggregation
// seeded with (0, job.Value()) and then two unresolved children: the
// exclude branch addressed at the aggregation's left half and the include
// branch addressed at its right half. An item that cannot fit is replaced in
// place by the shorter subproblem at the same address (tail substitution).
//
// An address is the stack index of an aggregation plus the half to add into.
// Indices stay valid because the stack only shrinks by popping, and both
// children of an aggregation sit above it, so they are fully drained before
// the aggregation itself is popped and reduced.
//
// # Core Operations
//
//   - [Item]: value/weight capability consumed by the evaluator
//   - [Pair]: ready-made Item value type
//   - [Solve]: evaluate to completion
//   - [SolveContext]: evaluate with cancellation
//   - [SolveAll]: evaluate independent problems concurrently
//
// # Stepping Boundary
//
// [Evaluator] exposes one-frame-at-a-time evaluation for callers that drive
// the computation themselves:
//
//	ev, err := knapsack.NewEvaluator(items, 10)
//	if err != nil {
//		return err
//	}
//	for {
//		done, err := ev.Step()
//		if err != nil {
//			return err
//		}
//		if done {
//			break
//		}
//	}
//	best, _ := ev.Result()
//
// # Configuration
//
//   - [WithLogger]: structured logging through logr
//   - [WithFrameBudget]: abort with [fault.ErrBudget] after n frames
//   - [WithCheckInterval]: frames between context checks
//   - [WithStackHint]: initial stack capacity
//   - [Config], [ParseConfig]: the same settings decoded from YAML
//
// # Errors
//
// Failures wrap the kinds declared in package fault:
//
//   - [fault.ErrPrecondition]: negative capacity, weight or value
//   - [fault.ErrOverflow]: a partial sum exceeds math.MaxInt64
//   - [fault.ErrBudget]: the frame budget was exhausted
//
// A malformed address inside the evaluator is an implementation defect and
// panics with [fault.ErrInvariant].
//
// # Example
//
//	items := []knapsack.Pair{{V: 3, W: 2}, {V: 2, W: 1}, {V: 2, W: 1}, {V: 5, W: 2}}
//	best, err := knapsack.Solve(items, 4)
//	// best == 9, err == nil
package knapsack
