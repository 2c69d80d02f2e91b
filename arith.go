// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package field

// Add sets v = a + b and returns v. a, b, and v may alias.
//
// Preconditions: a and b satisfy the post-add/sub bound
// (|limb_even| <= 1.1*2^26, |limb_odd| <= 1.1*2^25).
// Postcondition: v satisfies the weaker bound
// (|limb_even| <= 2.2*2^26, |limb_odd| <= 2.2*2^25). Add never
// reduces; carry propagation happens only inside Multiply, Square,
// Square2, MulSmall, SetBytes, and Bytes.
func (v *Element) Add(a, b *Element) *Element {
	var out Element
	for i := range out.l {
		out.l[i] = a.l[i] + b.l[i]
	}
	v.l = out.l
	return v
}

// Subtract sets v = a - b and returns v. a, b, and v may alias. Bounds
// and aliasing are identical to Add.
func (v *Element) Subtract(a, b *Element) *Element {
	var out Element
	for i := range out.l {
		out.l[i] = a.l[i] - b.l[i]
	}
	v.l = out.l
	return v
}

// Negate sets v = -a and returns v. a and v may alias.
func (v *Element) Negate(a *Element) *Element {
	var out Element
	for i := range out.l {
		out.l[i] = -a.l[i]
	}
	v.l = out.l
	return v
}
