// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fault defines the error kinds shared by the knapsack evaluator
// and its companion packages.
//
// Every error returned by this module wraps exactly one kind, so callers
// classify failures with [errors.Is]:
//
//   - [ErrPrecondition]: invalid input rejected before any state is touched
//   - [ErrOverflow]: a value would leave the representable range
//   - [ErrBudget]: a caller-imposed frame budget was exhausted
//   - [ErrInvariant]: an internal consistency check failed (raised by panic)
//
// Computations are deterministic and pure; retrying a failed call reproduces
// the same failure.
package fault

import "github.com/pkg/errors"

var (
	// ErrPrecondition reports an invalid argument.
	ErrPrecondition = errors.New("precondition violated")

	// ErrOverflow reports an arithmetic result outside the int64 or uint32 range.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrBudget reports that an evaluation exceeded its frame budget.
	ErrBudget = errors.New("frame budget exhausted")

	// ErrInvariant reports an implementation defect.
	ErrInvariant = errors.New("internal invariant failure")
)

// Preconditionf returns an error of kind ErrPrecondition.
func Preconditionf(format string, args ...any) error {
	return errors.Wrapf(ErrPrecondition, format, args...)
}

// Overflowf returns an error of kind ErrOverflow.
func Overflowf(format string, args ...any) error {
	return errors.Wrapf(ErrOverflow, format, args...)
}

// Budgetf returns an error of kind ErrBudget.
func Budgetf(format string, args ...any) error {
	return errors.Wrapf(ErrBudget, format, args...)
}

// Invariant panics with an error of kind ErrInvariant.
// Kept out of line so hot loops calling it stay inlineable.
//
//go:noinline
func Invariant(format string, args ...any) {
	panic(errors.Wrapf(ErrInvariant, format, args...))
}
