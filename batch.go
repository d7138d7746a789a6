// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package knapsack

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Problem is one independent knapsack instance.
type Problem[T Item] struct {
	Items    []T
	Capacity int64
}

// SolveAll solves problems concurrently, at most limit at a time.
// A non-positive limit uses runtime.GOMAXPROCS(0).
//
// Results are returned in problem order. The first failure cancels the
// remaining evaluations and is returned annotated with the problem index.
// Item slices may be shared between problems; they are only read.
func SolveAll[T Item](ctx context.Context, problems []Problem[T], limit int, opts ...Option) ([]int64, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	log := newSettings(opts).logger.WithName("knapsack")
	if v := log.V(1); v.Enabled() {
		v.Info("solving batch", "problems", len(problems), "limit", limit)
	}

	results := make([]int64, len(problems))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, p := range problems {
		g.Go(func() error {
			v, err := SolveContext(ctx, p.Items, p.Capacity, opts...)
			if err != nil {
				return errors.WithMessagef(err, "problem %d", i)
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.V(1).Info("batch failed", "error", err.Error())
		return nil, err
	}
	return results, nil
}
