// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package field

// IsNegative returns 1 if v, canonically encoded, has an odd least
// significant bit, and 0 otherwise. This is the sign convention
// Edwards25519 point compression uses to pick between the two square
// roots of x^2; it is not a statement about v as a signed integer,
// since GF(p) has no natural ordering.
func (v *Element) IsNegative() int {
	var s [32]byte
	v.bytes(&s)
	return int(s[0] & 1)
}

// IsNonzero returns 1 if v is not equal to 0, and 0 if it is. Named
// for what it returns rather than its negation, since code calling it
// reads more naturally as "if v.IsNonzero() == 1" than as a double
// negative.
func (v *Element) IsNonzero() int {
	var s [32]byte
	v.bytes(&s)
	var r byte
	for _, b := range s {
		r |= b
	}
	return int((int32(r) - 1) >> 31 & 1 ^ 1)
}
