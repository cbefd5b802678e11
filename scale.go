// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expansion

// Scale returns a new expansion whose value is exactly e × b.
//
// e must be a valid expansion and none of the partial products e[i] × b may
// overflow or underflow. The result has at most 2×len(e) components, zero
// components are eliminated and an exact zero is returned as [0].
func Scale(e Expansion, b float64) Expansion {
	if debugExpansion {
		e.validate()
	}
	h := make(Expansion, 2*len(e))
	n := 0

	q, hh := TwoProduct(e[0], b)
	if hh != 0 {
		h[n] = hh
		n++
	}
	for _, c := range e[1:] {
		p1, p0 := TwoProduct(c, b)
		var sum float64
		sum, hh = TwoSum(q, p0)
		if hh != 0 {
			h[n] = hh
			n++
		}
		q, hh = FastTwoSum(p1, sum)
		if hh != 0 {
			h[n] = hh
			n++
		}
	}
	if q != 0 {
		h[n] = q
		n++
	}
	if n == 0 {
		h[n] = 0
		n++
	}

	if debugExpansion {
		h[:n].validate()
	}
	return h[:n:n]
}
