// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package field

// carryPropagate is the field's single reduction primitive, shared by
// Multiply, Square, Square2, MulSmall, and SetBytes. Given ten
// accumulator limbs that may run well past their nominal bit width,
// it propagates carries so that even limbs fit in 26 bits signed and
// odd limbs fit in 25 bits signed, folding any overflow out of h[9]
// back into h[0] through a single multiply-by-19 — the step that
// closes the reduction mod 2^255-19.
//
// The two passes over h[0] and h[4] are not redundant: the first pass
// broadcasts slack out of the freshly-accumulated limbs so that the
// second pass (and the final wraparound through h[9]) cannot overflow
// int64. Do not collapse them into a single linear sweep.
func carryPropagate(h *[10]int64) [10]int32 {
	c0 := (h[0] + (1 << 25)) >> 26
	h[1] += c0
	h[0] -= c0 << 26
	c4 := (h[4] + (1 << 25)) >> 26
	h[5] += c4
	h[4] -= c4 << 26

	c1 := (h[1] + (1 << 24)) >> 25
	h[2] += c1
	h[1] -= c1 << 25
	c5 := (h[5] + (1 << 24)) >> 25
	h[6] += c5
	h[5] -= c5 << 25

	c2 := (h[2] + (1 << 25)) >> 26
	h[3] += c2
	h[2] -= c2 << 26
	c6 := (h[6] + (1 << 25)) >> 26
	h[7] += c6
	h[6] -= c6 << 26

	c3 := (h[3] + (1 << 24)) >> 25
	h[4] += c3
	h[3] -= c3 << 25
	c7 := (h[7] + (1 << 24)) >> 25
	h[8] += c7
	h[7] -= c7 << 25

	c4 = (h[4] + (1 << 25)) >> 26
	h[5] += c4
	h[4] -= c4 << 26
	c8 := (h[8] + (1 << 25)) >> 26
	h[9] += c8
	h[8] -= c8 << 26

	c9 := (h[9] + (1 << 24)) >> 25
	h[0] += c9 * 19
	h[9] -= c9 << 25

	c0 = (h[0] + (1 << 25)) >> 26
	h[1] += c0
	h[0] -= c0 << 26

	var out [10]int32
	for i, x := range h {
		out[i] = int32(x)
	}
	return out
}
