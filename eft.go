// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements error-free transformations of float64 values.

package expansion

import "math"

// The Go compiler never reassociates floating-point expressions and only
// fuses x*y+z into an FMA instruction. None of the transformations below
// contain such a pattern outside of an explicit math.FMA call, so they keep
// strict round-to-nearest-even semantics on every platform.

// TwoSum returns x = fl(a+b) and the rounding error y such that a+b = x+y
// exactly. It has no precondition on the magnitudes of a and b.
func TwoSum(a, b float64) (x, y float64) {
	x = a + b
	bv := x - a
	av := x - bv
	br := b - bv
	ar := a - av
	y = ar + br
	return
}

// FastTwoSum returns x = fl(a+b) and the rounding error y such that
// a+b = x+y exactly, provided that |a| >= |b| or a == 0.
func FastTwoSum(a, b float64) (x, y float64) {
	x = a + b
	bv := x - a
	y = b - bv
	return
}

// TwoProduct returns x = fl(a×b) and the rounding error y such that
// a×b = x+y exactly, provided that a×b neither overflows nor underflows.
func TwoProduct(a, b float64) (x, y float64) {
	x = float64(a * b)
	y = math.FMA(a, b, -x)
	return
}
