// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expansion

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

const debugExpansion = false // enable for debugging

// An Expansion represents the exact sum of its float64 components.
//
// A valid Expansion is non-empty, its components are finite, pairwise
// nonoverlapping and sorted by increasing magnitude. Zero components are only
// allowed in the single component expansion [0] that represents zero.
//
// Functions of this package treat their Expansion arguments as read-only and
// always return newly allocated expansions.
type Expansion []float64

// New returns the single component expansion [x].
func New(x float64) Expansion {
	return Expansion{x}
}

// Clone returns a copy of e.
func (e Expansion) Clone() Expansion {
	if e == nil {
		return nil
	}
	z := make(Expansion, len(e))
	copy(z, e)
	return z
}

// Neg returns a new expansion with value -e. The sign of every component is
// flipped, which is always exact.
func (e Expansion) Neg() Expansion {
	z := make(Expansion, len(e))
	for i, c := range e {
		z[i] = -c
	}
	return z
}

// Sign returns:
//
//	-1 if e <   0
//	 0 if e is ±0
//	+1 if e >   0
//
// The sign of a valid expansion is the sign of its most significant
// component.
func (e Expansion) Sign() int {
	if debugExpansion {
		e.validate()
	}
	top := e[len(e)-1]
	switch {
	case top < 0:
		return -1
	case top > 0:
		return 1
	}
	return 0
}

// Cmp compares e and f and returns:
//
//	-1 if e <  f
//	 0 if e == f
//	+1 if e >  f
func Cmp(e, f Expansion) int {
	return Sub(e, f).Sign()
}

// Float64 returns an approximation of the value of e, computed by summing its
// components from the least to the most significant one.
func (e Expansion) Float64() float64 {
	var x float64
	for _, c := range e {
		x += c
	}
	return x
}

// Rat returns the exact value of e.
func (e Expansion) Rat() *big.Rat {
	z := new(big.Rat)
	var t big.Rat
	for _, c := range e {
		if t.SetFloat64(c) == nil {
			panic(fmt.Sprintf("expansion: non-finite component %g", c))
		}
		z.Add(z, &t)
	}
	return z
}

// IsValid reports whether e satisfies the invariants of an Expansion: e is
// not empty, its components are finite, sorted by increasing magnitude and
// pairwise nonoverlapping, and it has no zero components unless e is [0].
func (e Expansion) IsValid() bool {
	return e.check() == ""
}

// check returns a description of the first violated invariant of e, or an
// empty string if e is valid.
func (e Expansion) check() string {
	if len(e) == 0 {
		return "empty expansion"
	}
	for i, c := range e {
		if math.IsInf(c, 0) || math.IsNaN(c) {
			return fmt.Sprintf("component %d is %g", i, c)
		}
		if c == 0 && len(e) > 1 {
			return fmt.Sprintf("component %d of %d is zero", i, len(e))
		}
		if i == 0 {
			continue
		}
		// nonoverlapping and increasing magnitude
		if !nonOverlapping(e[i-1], c) {
			return fmt.Sprintf("components %d and %d overlap or are out of order: %x, %x", i-1, i, e[i-1], c)
		}
	}
	return ""
}

func (e Expansion) validate() {
	if !debugExpansion {
		// avoid performance bugs
		panic("validate called but debugExpansion is not set")
	}
	if msg := e.check(); msg != "" {
		panic(msg)
	}
}

// nonOverlapping reports whether the most significant bit of x is less
// significant than the least significant bit of y. A zero x is
// nonoverlapping with any y.
func nonOverlapping(x, y float64) bool {
	if x == 0 {
		return true
	}
	if y == 0 {
		return false
	}
	return msb(x) < lsb(y)
}

// msb returns the binary exponent of the most significant nonzero bit of
// x != 0.
func msb(x float64) int {
	_, exp := math.Frexp(x)
	return exp - 1
}

// lsb returns the binary exponent of the least significant nonzero bit of
// x != 0.
func lsb(x float64) int {
	const (
		mantBits = 52
		bias     = 1023
	)
	b := math.Float64bits(x)
	m := b & (1<<mantBits - 1)
	e := int(b>>mantBits) & 0x7ff
	if e == 0 {
		// denormal
		e = 1
	} else {
		m |= 1 << mantBits
	}
	return e - bias - mantBits + bits.TrailingZeros64(m)
}
