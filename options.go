// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package knapsack

import "github.com/go-logr/logr"

const defaultCheckInterval = 1024

// Option customizes an evaluation.
type Option func(*settings)

type settings struct {
	logger        logr.Logger
	budget        uint64
	checkInterval uint64
	stackHint     int
}

func newSettings(opts []Option) settings {
	s := settings{
		logger:        logr.Discard(),
		checkInterval: defaultCheckInterval,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithLogger routes evaluation events to logger.
// Lifecycle events are logged at V(1), per-call details at V(2).
func WithLogger(logger logr.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithFrameBudget limits an evaluation to n popped frames.
// Exceeding the budget fails the evaluation with fault.ErrBudget.
// Zero means unlimited.
func WithFrameBudget(n uint64) Option {
	return func(s *settings) {
		s.budget = n
	}
}

// WithCheckInterval sets how many frames SolveContext evaluates between
// context checks. Non-positive values keep the default.
func WithCheckInterval(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.checkInterval = uint64(n)
		}
	}
}

// WithStackHint sets the initial stack capacity. The default is the
// maximal depth for the given items, 2*len(items)+1, capped at the largest
// pooled stack; deeper evaluations grow the stack on demand.
func WithStackHint(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.stackHint = n
		}
	}
}
