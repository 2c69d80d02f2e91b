// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package field

// a24 is (A+2)/4 for the Curve25519 Montgomery curve, the one small
// constant MulSmall is specialized for.
const a24 = 121666

// Multiply sets v = a * b mod p and returns v. a, b, and v may alias;
// inputs are snapshotted to locals before v is written, so it is safe
// to call v.Multiply(v, v) or pass the same Element as both a and b.
//
// Schoolbook multiplication of the two ten-limb operands, with
// reduction folded in: each partial product f[i]*g[j] with i+j >= 10
// wraps around mod p and picks up a factor of 19, and partial products
// between two odd-indexed (25-bit) limbs pick up an extra factor of 2
// to realign with the mixed radix. Those two factors compose into one
// of four precomputed scalings (1, 2, 19, 38) baked into g1_19..g9_19
// and f1_2..f9_2 below, so the h[i] sums below are each a fixed linear
// combination of ten 64-bit partial products.
//
// Preconditions: |a|, |b| bounded by roughly 1.65*2^26/1.65*2^25
// (limb_even/limb_odd). Postcondition: |v| bounded by roughly
// 1.01*2^25/1.01*2^24 — back inside loose bounds.
func (v *Element) Multiply(a, b *Element) *Element {
	f0 := int64(a.l[0])
	f1 := int64(a.l[1])
	f2 := int64(a.l[2])
	f3 := int64(a.l[3])
	f4 := int64(a.l[4])
	f5 := int64(a.l[5])
	f6 := int64(a.l[6])
	f7 := int64(a.l[7])
	f8 := int64(a.l[8])
	f9 := int64(a.l[9])

	g0 := int64(b.l[0])
	g1 := int64(b.l[1])
	g2 := int64(b.l[2])
	g3 := int64(b.l[3])
	g4 := int64(b.l[4])
	g5 := int64(b.l[5])
	g6 := int64(b.l[6])
	g7 := int64(b.l[7])
	g8 := int64(b.l[8])
	g9 := int64(b.l[9])

	g1_19 := 19 * g1
	g2_19 := 19 * g2
	g3_19 := 19 * g3
	g4_19 := 19 * g4
	g5_19 := 19 * g5
	g6_19 := 19 * g6
	g7_19 := 19 * g7
	g8_19 := 19 * g8
	g9_19 := 19 * g9

	f1_2 := 2 * f1
	f3_2 := 2 * f3
	f5_2 := 2 * f5
	f7_2 := 2 * f7
	f9_2 := 2 * f9

	f0g0 := f0 * g0
	f0g1 := f0 * g1
	f0g2 := f0 * g2
	f0g3 := f0 * g3
	f0g4 := f0 * g4
	f0g5 := f0 * g5
	f0g6 := f0 * g6
	f0g7 := f0 * g7
	f0g8 := f0 * g8
	f0g9 := f0 * g9
	f1g0 := f1 * g0
	f1g1_2 := f1_2 * g1
	f1g2 := f1 * g2
	f1g3_2 := f1_2 * g3
	f1g4 := f1 * g4
	f1g5_2 := f1_2 * g5
	f1g6 := f1 * g6
	f1g7_2 := f1_2 * g7
	f1g8 := f1 * g8
	f1g9_38 := f1_2 * g9_19
	f2g0 := f2 * g0
	f2g1 := f2 * g1
	f2g2 := f2 * g2
	f2g3 := f2 * g3
	f2g4 := f2 * g4
	f2g5 := f2 * g5
	f2g6 := f2 * g6
	f2g7 := f2 * g7
	f2g8_19 := f2 * g8_19
	f2g9_19 := f2 * g9_19
	f3g0 := f3 * g0
	f3g1_2 := f3_2 * g1
	f3g2 := f3 * g2
	f3g3_2 := f3_2 * g3
	f3g4 := f3 * g4
	f3g5_2 := f3_2 * g5
	f3g6 := f3 * g6
	f3g7_38 := f3_2 * g7_19
	f3g8_19 := f3 * g8_19
	f3g9_38 := f3_2 * g9_19
	f4g0 := f4 * g0
	f4g1 := f4 * g1
	f4g2 := f4 * g2
	f4g3 := f4 * g3
	f4g4 := f4 * g4
	f4g5 := f4 * g5
	f4g6_19 := f4 * g6_19
	f4g7_19 := f4 * g7_19
	f4g8_19 := f4 * g8_19
	f4g9_19 := f4 * g9_19
	f5g0 := f5 * g0
	f5g1_2 := f5_2 * g1
	f5g2 := f5 * g2
	f5g3_2 := f5_2 * g3
	f5g4 := f5 * g4
	f5g5_38 := f5_2 * g5_19
	f5g6_19 := f5 * g6_19
	f5g7_38 := f5_2 * g7_19
	f5g8_19 := f5 * g8_19
	f5g9_38 := f5_2 * g9_19
	f6g0 := f6 * g0
	f6g1 := f6 * g1
	f6g2 := f6 * g2
	f6g3 := f6 * g3
	f6g4_19 := f6 * g4_19
	f6g5_19 := f6 * g5_19
	f6g6_19 := f6 * g6_19
	f6g7_19 := f6 * g7_19
	f6g8_19 := f6 * g8_19
	f6g9_19 := f6 * g9_19
	f7g0 := f7 * g0
	f7g1_2 := f7_2 * g1
	f7g2 := f7 * g2
	f7g3_38 := f7_2 * g3_19
	f7g4_19 := f7 * g4_19
	f7g5_38 := f7_2 * g5_19
	f7g6_19 := f7 * g6_19
	f7g7_38 := f7_2 * g7_19
	f7g8_19 := f7 * g8_19
	f7g9_38 := f7_2 * g9_19
	f8g0 := f8 * g0
	f8g1 := f8 * g1
	f8g2_19 := f8 * g2_19
	f8g3_19 := f8 * g3_19
	f8g4_19 := f8 * g4_19
	f8g5_19 := f8 * g5_19
	f8g6_19 := f8 * g6_19
	f8g7_19 := f8 * g7_19
	f8g8_19 := f8 * g8_19
	f8g9_19 := f8 * g9_19
	f9g0 := f9 * g0
	f9g1_38 := f9_2 * g1_19
	f9g2_19 := f9 * g2_19
	f9g3_38 := f9_2 * g3_19
	f9g4_19 := f9 * g4_19
	f9g5_38 := f9_2 * g5_19
	f9g6_19 := f9 * g6_19
	f9g7_38 := f9_2 * g7_19
	f9g8_19 := f9 * g8_19
	f9g9_38 := f9_2 * g9_19

	h := [10]int64{
		f0g0 + f1g9_38 + f2g8_19 + f3g7_38 + f4g6_19 + f5g5_38 + f6g4_19 + f7g3_38 + f8g2_19 + f9g1_38,
		f0g1 + f1g0 + f2g9_19 + f3g8_19 + f4g7_19 + f5g6_19 + f6g5_19 + f7g4_19 + f8g3_19 + f9g2_19,
		f0g2 + f1g1_2 + f2g0 + f3g9_38 + f4g8_19 + f5g7_38 + f6g6_19 + f7g5_38 + f8g4_19 + f9g3_38,
		f0g3 + f1g2 + f2g1 + f3g0 + f4g9_19 + f5g8_19 + f6g7_19 + f7g6_19 + f8g5_19 + f9g4_19,
		f0g4 + f1g3_2 + f2g2 + f3g1_2 + f4g0 + f5g9_38 + f6g8_19 + f7g7_38 + f8g6_19 + f9g5_38,
		f0g5 + f1g4 + f2g3 + f3g2 + f4g1 + f5g0 + f6g9_19 + f7g8_19 + f8g7_19 + f9g6_19,
		f0g6 + f1g5_2 + f2g4 + f3g3_2 + f4g2 + f5g1_2 + f6g0 + f7g9_38 + f8g8_19 + f9g7_38,
		f0g7 + f1g6 + f2g5 + f3g4 + f4g3 + f5g2 + f6g1 + f7g0 + f8g9_19 + f9g8_19,
		f0g8 + f1g7_2 + f2g6 + f3g5_2 + f4g4 + f5g3_2 + f6g2 + f7g1_2 + f8g0 + f9g9_38,
		f0g9 + f1g8 + f2g7 + f3g6 + f4g5 + f5g4 + f6g3 + f7g2 + f8g1 + f9g0,
	}

	v.l = carryPropagate(&h)
	return v
}

// MulSmall sets v = a * 121666 and returns v. 121666 is the Curve25519
// Montgomery-curve constant A24 = (A+2)/4; it is the only
// small-integer multiplicand this package needs, so unlike Multiply
// this is specialized rather than generic. a and v may alias.
func (v *Element) MulSmall(a *Element) *Element {
	h := [10]int64{
		int64(a.l[0]) * a24,
		int64(a.l[1]) * a24,
		int64(a.l[2]) * a24,
		int64(a.l[3]) * a24,
		int64(a.l[4]) * a24,
		int64(a.l[5]) * a24,
		int64(a.l[6]) * a24,
		int64(a.l[7]) * a24,
		int64(a.l[8]) * a24,
		int64(a.l[9]) * a24,
	}
	v.l = carryPropagate(&h)
	return v
}
