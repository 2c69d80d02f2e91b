// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package field

// Square sets v = a*a and returns v. a and v may alias.
//
// This is Multiply(a, a) specialized to exploit f[i]*f[j] == f[j]*f[i]:
// each off-diagonal partial product is computed once and doubled
// instead of computed twice, roughly halving the multiply count
// against the general schoolbook routine. Bounds match Multiply.
func (v *Element) Square(a *Element) *Element {
	h := a.squareInner()
	v.l = carryPropagate(&h)
	return v
}

// Square2 sets v = 2*a*a and returns v. a and v may alias.
//
// This exists because Edwards point-doubling formulas consume 2*X^2
// and 2*Y^2 directly; doubling the limbs before the carry chain gives
// a result back inside loose bounds, whereas squaring and then calling
// Add(v, v) leaves limbs at twice those bounds. The doubling happens on
// the wide accumulator, not on the narrow input, so it costs nothing
// in extra bound headroom. The product terms come from squareInner,
// the same helper Square uses.
func (v *Element) Square2(a *Element) *Element {
	h := a.squareInner()
	for i := range h {
		h[i] += h[i]
	}
	v.l = carryPropagate(&h)
	return v
}

func (a *Element) squareInner() [10]int64 {
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

	f0_2 := 2 * f0
	f1_2 := 2 * f1
	f2_2 := 2 * f2
	f3_2 := 2 * f3
	f4_2 := 2 * f4
	f5_2 := 2 * f5
	f6_2 := 2 * f6
	f7_2 := 2 * f7

	f5_38 := 38 * f5
	f6_19 := 19 * f6
	f7_38 := 38 * f7
	f8_19 := 19 * f8
	f9_38 := 38 * f9

	f0f0 := f0 * f0
	f0f1_2 := f0_2 * f1
	f0f2_2 := f0_2 * f2
	f0f3_2 := f0_2 * f3
	f0f4_2 := f0_2 * f4
	f0f5_2 := f0_2 * f5
	f0f6_2 := f0_2 * f6
	f0f7_2 := f0_2 * f7
	f0f8_2 := f0_2 * f8
	f0f9_2 := f0_2 * f9
	f1f1_2 := f1_2 * f1
	f1f2_2 := f1_2 * f2
	f1f3_4 := f1_2 * f3_2
	f1f4_2 := f1_2 * f4
	f1f5_4 := f1_2 * f5_2
	f1f6_2 := f1_2 * f6
	f1f7_4 := f1_2 * f7_2
	f1f8_2 := f1_2 * f8
	f1f9_76 := f1_2 * f9_38
	f2f2 := f2 * f2
	f2f3_2 := f2_2 * f3
	f2f4_2 := f2_2 * f4
	f2f5_2 := f2_2 * f5
	f2f6_2 := f2_2 * f6
	f2f7_2 := f2_2 * f7
	f2f8_38 := f2_2 * f8_19
	f2f9_38 := f2 * f9_38
	f3f3_2 := f3_2 * f3
	f3f4_2 := f3_2 * f4
	f3f5_4 := f3_2 * f5_2
	f3f6_2 := f3_2 * f6
	f3f7_76 := f3_2 * f7_38
	f3f8_38 := f3_2 * f8_19
	f3f9_76 := f3_2 * f9_38
	f4f4 := f4 * f4
	f4f5_2 := f4_2 * f5
	f4f6_38 := f4_2 * f6_19
	f4f7_38 := f4 * f7_38
	f4f8_38 := f4_2 * f8_19
	f4f9_38 := f4 * f9_38
	f5f5_38 := f5 * f5_38
	f5f6_38 := f5_2 * f6_19
	f5f7_76 := f5_2 * f7_38
	f5f8_38 := f5_2 * f8_19
	f5f9_76 := f5_2 * f9_38
	f6f6_19 := f6 * f6_19
	f6f7_38 := f6 * f7_38
	f6f8_38 := f6_2 * f8_19
	f6f9_38 := f6 * f9_38
	f7f7_38 := f7 * f7_38
	f7f8_38 := f7_2 * f8_19
	f7f9_76 := f7_2 * f9_38
	f8f8_19 := f8 * f8_19
	f8f9_38 := f8 * f9_38
	f9f9_38 := f9 * f9_38

	return [10]int64{
		f0f0 + f1f9_76 + f2f8_38 + f3f7_76 + f4f6_38 + f5f5_38,
		f0f1_2 + f2f9_38 + f3f8_38 + f4f7_38 + f5f6_38,
		f0f2_2 + f1f1_2 + f3f9_76 + f4f8_38 + f5f7_76 + f6f6_19,
		f0f3_2 + f1f2_2 + f4f9_38 + f5f8_38 + f6f7_38,
		f0f4_2 + f1f3_4 + f2f2 + f5f9_76 + f6f8_38 + f7f7_38,
		f0f5_2 + f1f4_2 + f2f3_2 + f6f9_38 + f7f8_38,
		f0f6_2 + f1f5_4 + f2f4_2 + f3f3_2 + f7f9_76 + f8f8_19,
		f0f7_2 + f1f6_2 + f2f5_2 + f3f4_2 + f8f9_38,
		f0f8_2 + f1f7_4 + f2f6_2 + f3f5_4 + f4f4 + f9f9_38,
		f0f9_2 + f1f8_2 + f2f7_2 + f3f6_2 + f4f5_2,
	}
}
