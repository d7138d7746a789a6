// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package knapsack

import "context"

// Solve returns the maximal total value of a subset of items whose total
// weight does not exceed capacity. Each item is used at most once.
//
// Returns 0 for an empty item sequence or when no item fits.
// Returns an error of kind fault.ErrPrecondition for negative input,
// fault.ErrOverflow when a partial sum exceeds math.MaxInt64, and
// fault.ErrBudget when a frame budget is configured and exhausted.
//
// Evaluation is iterative: the recursion depth is bounded by len(items)
// and lives on the heap, never on the goroutine stack.
func Solve[T Item](items []T, capacity int64, opts ...Option) (int64, error) {
	var e Evaluator[T]
	if err := e.init(items, capacity, newSettings(opts)); err != nil {
		return 0, err
	}
	return e.run(nil)
}

// SolveContext is like [Solve] but stops with the context's error, wrapped,
// once ctx is done. The context is polled every check interval frames.
func SolveContext[T Item](ctx context.Context, items []T, capacity int64, opts ...Option) (int64, error) {
	var e Evaluator[T]
	if err := e.init(items, capacity, newSettings(opts)); err != nil {
		return 0, err
	}
	return e.run(ctx)
}
