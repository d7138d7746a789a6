// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package knapsack_test

import (
	"context"
	"testing"

	"github.com/go-logr/zapr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"code.hybscloud.com/knapsack"
)

// observed returns an option logging into an in-memory zap core at the
// given logr verbosity.
func observed(v int) (knapsack.Option, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.Level(-v))
	return knapsack.WithLogger(zapr.NewLogger(zap.New(core))), logs
}

func TestLogFinished(t *testing.T) {
	opt, logs := observed(1)
	v, err := knapsack.Solve(twoItems, 4, opt)
	require.NoError(t, err)
	require.Equal(t, int64(7), v)

	finished := logs.FilterMessage("evaluation finished").All()
	require.Len(t, finished, 1)
	entry := finished[0]
	assert.Equal(t, "knapsack", entry.LoggerName)
	assert.Equal(t, zapcore.DebugLevel, entry.Level)

	fields := entry.ContextMap()
	assert.Equal(t, int64(7), fields["result"])
	assert.Equal(t, int64(2), fields["items"])
	assert.Equal(t, int64(4), fields["capacity"])
	assert.Equal(t, uint64(10), fields["frames"])

	// V(2) detail stays hidden at V(1).
	assert.Zero(t, logs.FilterMessage("evaluation started").Len())
}

func TestLogStartedAtV2(t *testing.T) {
	opt, logs := observed(2)
	_, err := knapsack.Solve(twoItems, 4, opt)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("evaluation started").Len())
	assert.Equal(t, 1, logs.FilterMessage("evaluation finished").Len())
}

func TestLogBudget(t *testing.T) {
	opt, logs := observed(1)
	_, err := knapsack.Solve(twoItems, 4, opt, knapsack.WithFrameBudget(2))
	require.Error(t, err)

	exhausted := logs.FilterMessage("frame budget exhausted").All()
	require.Len(t, exhausted, 1)
	assert.Equal(t, uint64(2), exhausted[0].ContextMap()["budget"])
	assert.Zero(t, logs.FilterMessage("evaluation finished").Len())
}

func TestLogCancelled(t *testing.T) {
	opt, logs := observed(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := knapsack.SolveContext(ctx, twoItems, 4, opt)
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("evaluation cancelled").Len())
}

func TestLogBatch(t *testing.T) {
	opt, logs := observed(1)
	problems := []knapsack.Problem[knapsack.Pair]{
		{Items: twoItems, Capacity: 4},
		{Items: twoItems, Capacity: -1},
	}
	_, err := knapsack.SolveAll(context.Background(), problems, 1, opt)
	require.Error(t, err)

	started := logs.FilterMessage("solving batch").All()
	require.Len(t, started, 1)
	assert.Equal(t, int64(2), started[0].ContextMap()["problems"])
	assert.Equal(t, 1, logs.FilterMessage("batch failed").Len())
}
