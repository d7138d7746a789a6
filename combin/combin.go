// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package combin provides digit counts and overflow-checked permutation and
// combination counts over int64.
package combin

import (
	"modernc.org/mathutil"

	"code.hybscloud.com/knapsack/fault"
)

// Digits10 returns the number of decimal digits of |n|.
// Digits10(0) is 1; the sign is not counted.
func Digits10(n int64) int {
	u := uint64(n)
	if n < 0 {
		u = -u // two's complement magnitude, exact for math.MinInt64
	}
	d := 1
	for u >= 10 {
		u /= 10
		d++
	}
	return d
}

// Permutation returns nPk = n!/(n-k)!.
//
// Returns an error of kind fault.ErrPrecondition when k < 0 or n < k, and of
// kind fault.ErrOverflow when the result does not fit in an int64.
func Permutation(n, k int64) (int64, error) {
	if k < 0 || n < k {
		return 0, fault.Preconditionf("permutation(%d, %d)", n, k)
	}
	p := int64(1)
	for i := range k {
		var ovf bool
		if p, ovf = mathutil.MulOverflowInt64(p, n-i); ovf {
			return 0, fault.Overflowf("permutation(%d, %d)", n, k)
		}
	}
	return p, nil
}

// Combination returns nCk = n!/(k!(n-k)!).
//
// Every intermediate value is itself a binomial coefficient no larger than
// the result, so ErrOverflow is returned only when the result does not fit.
// Returns an error of kind fault.ErrPrecondition when k < 0 or n < k.
func Combination(n, k int64) (int64, error) {
	if k < 0 || n < k {
		return 0, fault.Preconditionf("combination(%d, %d)", n, k)
	}
	r := min(k, n-k)
	c := int64(1)
	for i := range r {
		// c = C(n, i); C(n, i+1) = c*(n-i)/(i+1), reduced first so the
		// product never exceeds the next coefficient.
		g := gcd(c, i+1)
		c /= g
		m := (n - i) / ((i + 1) / g)
		var ovf bool
		if c, ovf = mathutil.MulOverflowInt64(c, m); ovf {
			return 0, fault.Overflowf("combination(%d, %d)", n, k)
		}
	}
	return c, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
