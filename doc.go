// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package expansion implements exact arithmetic on floating-point expansions.

An expansion is a sequence of float64 components whose exact, unrounded sum
is the value it represents:

    type Expansion []float64

The components of a valid expansion are nonoverlapping: the most significant
bit of a component is less significant than the least significant bit of the
next one. They are sorted by increasing magnitude and zero components are
eliminated, except for the expansion [0] that represents zero. Any real number
that is a finite sum of float64 values can be represented this way, using
nothing but native float64 arithmetic.

The main operation is Sub, which computes the exact difference of two
expansions:

    g := expansion.Sub(e, f) // g = e - f, exactly

Add and Scale compute exact sums and products by a float64, and Cmp and Sign
give exact comparisons. These are the building blocks of robust geometric
predicates (orientation, in-circle tests, ...) where a rounding error in the
evaluation of a determinant would flip its sign.

All operations are built from error-free transformations: TwoSum,
FastTwoSum and TwoProduct return both the rounded result of an operation and
its exact rounding error as a second float64. Go evaluates floating-point
expressions exactly as written, in round-to-nearest-even mode, and never
reassociates them, which these transformations rely upon.

Functions in this package never modify their arguments and always return
newly allocated expansions. They do not validate their inputs: passing an
invalid expansion (see Expansion.IsValid) yields an undefined result. Inputs
must be finite and small enough that intermediate sums do not overflow.
*/
package expansion
