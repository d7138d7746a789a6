// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package modulo provides arithmetic modulo a fixed uint32 modulus.
//
// A [Ring] accepts any modulus m >= 1 and supports addition, subtraction,
// multiplication, exponentiation and permutation counts. A [Field] requires
// a prime modulus, checked once by [NewField], and adds the operations that
// rely on Fermat's little theorem: inverse, division and combination counts.
//
// Operands are reduced modulo m before use, so callers may pass any uint32.
// Intermediate products are computed in uint64 and never wrap.
package modulo

import (
	"modernc.org/mathutil"

	"code.hybscloud.com/knapsack/fault"
)

// Ring is arithmetic modulo m.
type Ring struct {
	m uint32
}

// NewRing returns the ring of integers modulo m.
// Returns an error of kind fault.ErrPrecondition when m is zero.
func NewRing(m uint32) (Ring, error) {
	if m == 0 {
		return Ring{}, fault.Preconditionf("modulus is zero")
	}
	return Ring{m: m}, nil
}

// Modulus returns m.
func (r Ring) Modulus() uint32 { return r.m }

// Add returns x + y mod m.
func (r Ring) Add(x, y uint32) uint32 {
	return uint32((uint64(x%r.m) + uint64(y%r.m)) % uint64(r.m))
}

// Sub returns x - y mod m.
func (r Ring) Sub(x, y uint32) uint32 {
	x, y = x%r.m, y%r.m
	if x >= y {
		return x - y
	}
	return uint32(uint64(r.m) + uint64(x) - uint64(y))
}

// Mul returns x * y mod m.
func (r Ring) Mul(x, y uint32) uint32 {
	return uint32(uint64(x) * uint64(y) % uint64(r.m))
}

// Pow returns x^e mod m, with 0^0 = 1.
func (r Ring) Pow(x, e uint32) uint32 {
	if e == 0 {
		return 1 % r.m
	}
	return mathutil.ModPowUint32(x%r.m, e, r.m)
}

// Permutation returns nPk mod m.
// Returns an error of kind fault.ErrPrecondition when k > n.
func (r Ring) Permutation(n, k uint32) (uint32, error) {
	if k > n {
		return 0, fault.Preconditionf("permutation(%d, %d)", n, k)
	}
	p := 1 % r.m
	for i := range k {
		p = r.Mul(p, n-i)
	}
	return p, nil
}

// Field is arithmetic modulo a prime p.
type Field struct {
	Ring
}

// NewField returns the field of integers modulo p.
// Returns an error of kind fault.ErrPrecondition when p is not prime.
func NewField(p uint32) (Field, error) {
	if p < 2 || !mathutil.IsPrime(p) {
		return Field{}, fault.Preconditionf("modulus %d is not prime", p)
	}
	return Field{Ring{m: p}}, nil
}

// Inverse returns x^-1 mod p, computed as x^(p-2) by Fermat's little theorem.
// Returns an error of kind fault.ErrPrecondition when x ≡ 0 mod p.
func (f Field) Inverse(x uint32) (uint32, error) {
	if x%f.m == 0 {
		return 0, fault.Preconditionf("%d has no inverse modulo %d", x, f.m)
	}
	return f.Pow(x, f.m-2), nil
}

// Div returns x / y mod p.
// Returns an error of kind fault.ErrPrecondition when y ≡ 0 mod p.
func (f Field) Div(x, y uint32) (uint32, error) {
	inv, err := f.Inverse(y)
	if err != nil {
		return 0, err
	}
	return f.Mul(x, inv), nil
}

// Combination returns nCk mod p.
//
// Returns an error of kind fault.ErrPrecondition when k > n, or when
// min(k, n-k) >= p, where k! vanishes modulo p and has no inverse.
func (f Field) Combination(n, k uint32) (uint32, error) {
	if k > n {
		return 0, fault.Preconditionf("combination(%d, %d)", n, k)
	}
	k = min(k, n-k)
	num, err := f.Permutation(n, k)
	if err != nil {
		return 0, err
	}
	den := 1 % f.m
	for i := range k {
		den = f.Mul(den, i+1)
	}
	c, err := f.Div(num, den)
	if err != nil {
		return 0, fault.Preconditionf("combination(%d, %d) modulo %d: %d! vanishes", n, k, f.m, k)
	}
	return c, nil
}
