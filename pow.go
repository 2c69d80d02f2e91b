// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package field

// Invert sets v = 1/z mod p and returns v. If z == 0, Invert sets
// v = 0 and returns v (there being no multiplicative inverse to
// report); it does not return an error, matching the total style of
// the rest of this package.
//
// By Fermat's little theorem, z^(p-1) == 1 for z != 0, so
// z^(p-2) == 1/z. p-2 is fixed, so this is a fixed addition chain of
// 254 squarings and 11 multiplications — same operation count
// regardless of z, so the computation reveals nothing about z through
// timing.
func (v *Element) Invert(z *Element) *Element {
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t Element

	z2.Square(z)            // 2
	t.Square(&z2)           // 4
	t.Square(&t)            // 8
	z9.Multiply(&t, z)      // 9
	z11.Multiply(&z9, &z2)  // 11
	t.Square(&z11)          // 22
	z2_5_0.Multiply(&t, &z9) // 2^5 - 2^0 = 31

	t.Square(&z2_5_0)
	for i := 1; i < 5; i++ {
		t.Square(&t)
	}
	z2_10_0.Multiply(&t, &z2_5_0) // 2^10 - 2^0

	t.Square(&z2_10_0)
	for i := 1; i < 10; i++ {
		t.Square(&t)
	}
	z2_20_0.Multiply(&t, &z2_10_0) // 2^20 - 2^0

	t.Square(&z2_20_0)
	for i := 1; i < 20; i++ {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_20_0) // 2^40 - 2^0

	for i := 0; i < 10; i++ {
		t.Square(&t)
	}
	z2_50_0.Multiply(&t, &z2_10_0) // 2^50 - 2^0

	t.Square(&z2_50_0)
	for i := 1; i < 50; i++ {
		t.Square(&t)
	}
	z2_100_0.Multiply(&t, &z2_50_0) // 2^100 - 2^0

	t.Square(&z2_100_0)
	for i := 1; i < 100; i++ {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_100_0) // 2^200 - 2^0

	for i := 0; i < 50; i++ {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_50_0) // 2^250 - 2^0

	t.Square(&t)
	t.Square(&t)
	t.Square(&t)
	t.Square(&t)
	t.Square(&t) // 2^255 - 2^5

	v.Multiply(&t, &z11) // 2^255 - 21 = p - 2
	return v
}

// PowP58 sets v = z^((p-5)/8) and returns v. This is the exponent
// Edwards25519 point decompression needs for the candidate
// square-root computation, not a general-purpose power function —
// hence the name matches the exponent rather than claiming to be a
// generic Pow.
func (v *Element) PowP58(z *Element) *Element {
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t Element

	z2.Square(z)
	t.Square(&z2)
	t.Square(&t)
	z9.Multiply(&t, z)
	z11.Multiply(&z9, &z2)
	t.Square(&z11)
	z2_5_0.Multiply(&t, &z9)

	t.Square(&z2_5_0)
	for i := 1; i < 5; i++ {
		t.Square(&t)
	}
	z2_10_0.Multiply(&t, &z2_5_0)

	t.Square(&z2_10_0)
	for i := 1; i < 10; i++ {
		t.Square(&t)
	}
	z2_20_0.Multiply(&t, &z2_10_0)

	t.Square(&z2_20_0)
	for i := 1; i < 20; i++ {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_20_0)

	for i := 0; i < 10; i++ {
		t.Square(&t)
	}
	z2_50_0.Multiply(&t, &z2_10_0)

	t.Square(&z2_50_0)
	for i := 1; i < 50; i++ {
		t.Square(&t)
	}
	z2_100_0.Multiply(&t, &z2_50_0)

	t.Square(&z2_100_0)
	for i := 1; i < 100; i++ {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_100_0)

	for i := 0; i < 50; i++ {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_50_0) // 2^250 - 2^0

	t.Square(&t)
	t.Square(&t) // 2^252 - 2^2

	v.Multiply(&t, z) // 2^252 - 3 = (p-5)/8
	return v
}
