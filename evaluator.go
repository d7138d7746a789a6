// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package knapsack

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"modernc.org/mathutil"

	"code.hybscloud.com/knapsack/fault"
)

// Stats summarizes the work done by one evaluation.
type Stats struct {
	// Frames is the number of frames popped.
	Frames uint64

	// Expansions is the number of aggregations created, one per item
	// decision point where the item fits.
	Expansions uint64

	// Substitutions is the number of frames replaced in place because
	// their last item could not fit.
	Substitutions uint64

	// MaxDepth is the peak stack length.
	MaxDepth int
}

// Evaluator is the explicit-stack machine behind [Solve].
// It evaluates one problem; it is not safe for concurrent use.
type Evaluator[T Item] struct {
	items    []T
	capacity int64
	stack    []entry
	result   int64
	done     bool
	err      error
	stats    Stats
	budget   uint64
	interval uint64
	log      logr.Logger
}

// NewEvaluator validates the problem and returns an evaluator seeded with
// the full subproblem (items, capacity) addressed at the output.
//
// Returns an error of kind fault.ErrPrecondition when capacity or any item
// weight or value is negative.
func NewEvaluator[T Item](items []T, capacity int64, opts ...Option) (*Evaluator[T], error) {
	e := &Evaluator[T]{}
	if err := e.init(items, capacity, newSettings(opts)); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Evaluator[T]) init(items []T, capacity int64, s settings) error {
	if err := validate(items, capacity); err != nil {
		return err
	}
	hint := s.stackHint
	if hint == 0 {
		hint = min(2*len(items)+1, maxPooledStack)
	}
	*e = Evaluator[T]{
		items:    items,
		capacity: capacity,
		stack:    acquireStack(hint),
		budget:   s.budget,
		interval: s.checkInterval,
		log:      s.logger.WithName("knapsack"),
	}
	e.push(root, unresolvedFrame(len(items), capacity))
	if log := e.log.V(2); log.Enabled() {
		log.Info("evaluation started", "items", len(items), "capacity", capacity)
	}
	return nil
}

// validate rejects malformed input before any frame is pushed.
func validate[T Item](items []T, capacity int64) error {
	if capacity < 0 {
		return fault.Preconditionf("negative capacity %d", capacity)
	}
	for i, it := range items {
		if w := it.Weight(); w < 0 {
			return fault.Preconditionf("item %d: negative weight %d", i, w)
		}
		if v := it.Value(); v < 0 {
			return fault.Preconditionf("item %d: negative value %d", i, v)
		}
	}
	return nil
}

// Step pops and processes exactly one frame.
// Returns done == true once the result is available; further calls are
// no-ops. After an error, Step keeps returning that error.
func (e *Evaluator[T]) Step() (done bool, err error) {
	if e.done {
		return true, nil
	}
	if e.err != nil {
		return false, e.err
	}
	if e.budget > 0 && e.stats.Frames >= e.budget {
		if log := e.log.V(1); log.Enabled() {
			log.Info("frame budget exhausted", "budget", e.budget, "depth", len(e.stack))
		}
		return false, e.fail(fault.Budgetf("budget of %d frames", e.budget))
	}

	top := e.pop()
	e.stats.Frames++

	switch f := top.frame; f.kind {
	case unresolved:
		if f.n == 0 {
			if len(e.stack) == 0 {
				// The whole problem had no item left to decide.
				e.finish(0)
				return true, nil
			}
			return false, e.contribute(top.addr, 0)
		}
		job := e.items[f.n-1]
		w := job.Weight()
		if w > f.limit {
			e.push(top.addr, unresolvedFrame(f.n-1, f.limit))
			e.stats.Substitutions++
			return false, nil
		}
		i := len(e.stack)
		e.push(top.addr, aggregationFrame(0, job.Value()))
		e.push(address{slot: i, half: leftHalf}, unresolvedFrame(f.n-1, f.limit))
		e.push(address{slot: i, half: rightHalf}, unresolvedFrame(f.n-1, f.limit-w))
		e.stats.Expansions++
		return false, nil

	case aggregation:
		m := max(f.left, f.right)
		if len(e.stack) == 0 {
			if top.addr.slot != output {
				fault.Invariant("last aggregation addressed at slot %d", top.addr.slot)
			}
			e.finish(m)
			return true, nil
		}
		return false, e.contribute(top.addr, m)

	default:
		fault.Invariant("unknown frame kind %d", f.kind)
		return false, nil
	}
}

// Run steps until the evaluation terminates.
func (e *Evaluator[T]) Run() (int64, error) {
	return e.run(nil)
}

// RunContext steps until the evaluation terminates or ctx is done.
// The context is polled every check interval (see [WithCheckInterval]).
func (e *Evaluator[T]) RunContext(ctx context.Context) (int64, error) {
	return e.run(ctx)
}

func (e *Evaluator[T]) run(ctx context.Context) (int64, error) {
	for {
		if ctx != nil && e.stats.Frames%e.interval == 0 && !e.done && e.err == nil {
			if err := ctx.Err(); err != nil {
				if log := e.log.V(1); log.Enabled() {
					log.Info("evaluation cancelled", "frames", e.stats.Frames, "depth", len(e.stack))
				}
				return 0, e.fail(errors.WithMessage(err, "knapsack evaluation"))
			}
		}
		done, err := e.Step()
		if err != nil {
			return 0, err
		}
		if done {
			return e.result, nil
		}
	}
}

// Result returns the optimal value and true once the evaluation is done.
func (e *Evaluator[T]) Result() (int64, bool) {
	return e.result, e.done
}

// Err returns the error that stopped the evaluation, if any.
func (e *Evaluator[T]) Err() error {
	return e.err
}

// Stats returns the work counters accumulated so far.
func (e *Evaluator[T]) Stats() Stats {
	return e.stats
}

// Depth returns the current stack length.
func (e *Evaluator[T]) Depth() int {
	return len(e.stack)
}

func (e *Evaluator[T]) push(addr address, f frame) {
	e.stack = append(e.stack, entry{addr: addr, frame: f})
	if len(e.stack) > e.stats.MaxDepth {
		e.stats.MaxDepth = len(e.stack)
	}
}

func (e *Evaluator[T]) pop() entry {
	if len(e.stack) == 0 {
		fault.Invariant("evaluation stack underflow")
	}
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return top
}

// contribute adds v into the half of the aggregation designated by addr.
func (e *Evaluator[T]) contribute(addr address, v int64) error {
	if addr.slot < 0 || addr.slot >= len(e.stack) {
		fault.Invariant("address slot %d outside stack of %d", addr.slot, len(e.stack))
	}
	f := &e.stack[addr.slot].frame
	if f.kind != aggregation {
		fault.Invariant("address slot %d holds %s frame", addr.slot, f.kind)
	}
	acc := &f.left
	if addr.half == rightHalf {
		acc = &f.right
	}
	sum, ovf := mathutil.AddOverflowInt64(*acc, v)
	if ovf {
		return e.fail(fault.Overflowf("partial value %d + %d", *acc, v))
	}
	*acc = sum
	return nil
}

func (e *Evaluator[T]) finish(v int64) {
	e.result = v
	e.done = true
	e.release()
	// Key/value arguments escape even when discarded; keep them guarded.
	if log := e.log.V(1); log.Enabled() {
		log.Info("evaluation finished",
			"items", len(e.items),
			"capacity", e.capacity,
			"result", v,
			"frames", e.stats.Frames,
			"expansions", e.stats.Expansions,
			"maxDepth", e.stats.MaxDepth,
		)
	}
}

func (e *Evaluator[T]) fail(err error) error {
	e.err = err
	e.release()
	return err
}

func (e *Evaluator[T]) release() {
	releaseStack(e.stack)
	e.stack = nil
}
