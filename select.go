// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package field

// CondMove sets v = u if cond == 1, and leaves v unchanged if
// cond == 0. cond must be 0 or 1; any other value makes the result
// undefined. The move is done with an XOR mask rather than a branch,
// so it takes the same time and touches the same memory regardless of
// cond's value.
func (v *Element) CondMove(u *Element, cond int) *Element {
	m := -int32(cond)
	for i := range v.l {
		x := (v.l[i] ^ u.l[i]) & m
		v.l[i] ^= x
	}
	return v
}

// CondSwap swaps a and b in place if cond == 1, and leaves both
// unchanged if cond == 0. cond must be 0 or 1. Like CondMove, the
// swap is constant-time: it does not branch on cond.
func CondSwap(a, b *Element, cond int) {
	m := -int32(cond)
	for i := range a.l {
		x := (a.l[i] ^ b.l[i]) & m
		a.l[i] ^= x
		b.l[i] ^= x
	}
}
