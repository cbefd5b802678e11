// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expansion

import "math"

// Sub returns a new expansion whose value is exactly e - f.
//
// Both e and f must be valid expansions (see IsValid). The result is a
// nonoverlapping expansion sorted by increasing magnitude, with zero
// components eliminated, and with at most len(e)+len(f) components. If e - f
// is exactly zero, the result is [0].
//
// Neither e nor f are modified and the result never shares memory with them.
func Sub(e, f Expansion) Expansion {
	if debugExpansion {
		e.validate()
		f.validate()
	}
	return linearSum(e, f, true)
}

// Add returns a new expansion whose value is exactly e + f. It is subject to
// the same conditions and guarantees as Sub.
func Add(e, f Expansion) Expansion {
	if debugExpansion {
		e.validate()
		f.validate()
	}
	return linearSum(e, f, false)
}

// linearSum computes e + f, or e - f if neg is set, by merging e and ±f in
// order of increasing magnitude and accumulating the merged stream into a
// running two-component sum (q0, q1) with |q0| < |q1| or q0 == 0. Every
// nonzero residual that drops out of the running sum is emitted.
//
// When |e[i]| == |f[j]|, f[j] is consumed first.
func linearSum(e, f Expansion, neg bool) Expansion {
	ne, nf := len(e), len(f)

	// f component accessor
	fv := func(i int) float64 {
		if neg {
			return -f[i]
		}
		return f[i]
	}

	if ne == 1 && nf == 1 {
		return scalarSum(e[0], fv(0))
	}

	g := make(Expansion, ne+nf)
	n := 0

	eptr, fptr := 0, 0
	ei, fi := e[0], fv(0)
	ea, fa := math.Abs(ei), math.Abs(fi)

	// next pops the smallest head of e and f. It must not be called once
	// both streams are exhausted.
	next := func() (h float64) {
		if fptr >= nf || (eptr < ne && ea < fa) {
			h = ei
			eptr++
			if eptr < ne {
				ei = e[eptr]
				ea = math.Abs(ei)
			}
			return h
		}
		h = fi
		fptr++
		if fptr < nf {
			fi = fv(fptr)
			fa = math.Abs(fi)
		}
		return h
	}

	// bootstrap (q0, q1) with the two smallest components; |a| >= |b|.
	b := next()
	a := next()
	q1, q0 := FastTwoSum(a, b)

	for eptr < ne || fptr < nf {
		a = next()
		x, y := FastTwoSum(a, q0)
		if y != 0 {
			g[n] = y
			n++
		}
		q1, q0 = TwoSum(q1, x)
	}

	if q0 != 0 {
		g[n] = q0
		n++
	}
	if q1 != 0 {
		g[n] = q1
		n++
	}
	if n == 0 {
		g[n] = 0
		n++
	}

	if debugExpansion {
		g[:n].validate()
	}
	return g[:n:n]
}

// scalarSum returns the expansion of a + b.
func scalarSum(a, b float64) Expansion {
	x, y := TwoSum(a, b)
	if y != 0 {
		return Expansion{y, x}
	}
	return Expansion{x}
}
