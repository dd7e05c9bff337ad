// SPDX-License-Identifier: MIT
package graphmodel

import "math/bits"

// universalHash applies the permutation x -> (a*x + b) mod p over [0,p),
// computing a*x with a 128-bit intermediate (math/bits.Mul64) so it stays
// correct even when p approaches 2^31-ish node-type sizes and a,x are both
// close to p (spec.md §4.D / §9: "overflow in a*x; implementers must use
// an integer width that accommodates p²").
func universalHash(a, x, b, p int64) int64 {
	b %= p
	hi, lo := bits.Mul64(uint64(a), uint64(x))
	var rem uint64
	if hi == 0 {
		rem = lo % uint64(p)
	} else {
		_, rem = bits.Div64(hi%uint64(p), lo, uint64(p))
	}
	y := int64(rem) + b
	if y >= p {
		y -= p
	}
	return y
}
