// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package field

func load3(in []byte) int64 {
	var r int64
	r = int64(in[0])
	r |= int64(in[1]) << 8
	r |= int64(in[2]) << 16
	return r
}

func load4(in []byte) int64 {
	var r int64
	r = int64(in[0])
	r |= int64(in[1]) << 8
	r |= int64(in[2]) << 16
	r |= int64(in[3]) << 24
	return r
}

// SetBytes sets v to the value encoded by x, interpreted as an
// unsigned little-endian integer mod 2^255 (the top bit of x[31] is
// masked off and ignored rather than rejected), reduced mod p. It
// returns v and a nil error on success.
//
// SetBytes is total: every 32-byte input decodes to some element,
// including inputs at or above p (2^255-19 <= x < 2^255), which wrap
// around. The only rejected input is one of the wrong length.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errInvalidEncodingLength
	}

	h0 := load4(x[0:])
	h1 := load3(x[4:]) << 6
	h2 := load3(x[7:]) << 5
	h3 := load3(x[10:]) << 3
	h4 := load3(x[13:]) << 2
	h5 := load4(x[16:])
	h6 := load3(x[20:]) << 7
	h7 := load3(x[23:]) << 5
	h8 := load3(x[26:]) << 4
	h9 := (load3(x[29:]) & 8388607) << 2

	h := [10]int64{h0, h1, h2, h3, h4, h5, h6, h7, h8, h9}
	v.l = carryPropagate(&h)
	return v, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v *Element) Bytes() []byte {
	var s [32]byte
	v.bytes(&s)
	return s[:]
}

// bytes canonicalizes v and writes its 32-byte little-endian encoding
// to s. Canonicalization first fully reduces v's limbs to the unique
// representative h in [0, p) and then packs them into bytes.
//
// Reduction is done without a data-dependent branch: q is an estimate
// of how many times p must be subtracted (0 or 1), refined by folding
// each limb's carry into q the same way carryPropagate folds carries
// between limbs, then h9's top bit is masked off and h0 gets a
// compensating += 19*q. The subsequent carry chain is one-directional
// (no final wraparound through h9 via *19) because by construction the
// result is already below 2^255.
func (v *Element) bytes(s *[32]byte) {
	h0, h1, h2, h3, h4 := int64(v.l[0]), int64(v.l[1]), int64(v.l[2]), int64(v.l[3]), int64(v.l[4])
	h5, h6, h7, h8, h9 := int64(v.l[5]), int64(v.l[6]), int64(v.l[7]), int64(v.l[8]), int64(v.l[9])

	q := (19*h9 + (1 << 24)) >> 25
	q = (h0 + q) >> 26
	q = (h1 + q) >> 25
	q = (h2 + q) >> 26
	q = (h3 + q) >> 25
	q = (h4 + q) >> 26
	q = (h5 + q) >> 25
	q = (h6 + q) >> 26
	q = (h7 + q) >> 25
	q = (h8 + q) >> 26
	q = (h9 + q) >> 25

	h0 += 19 * q

	c0 := h0 >> 26
	h1 += c0
	h0 -= c0 << 26
	c1 := h1 >> 25
	h2 += c1
	h1 -= c1 << 25
	c2 := h2 >> 26
	h3 += c2
	h2 -= c2 << 26
	c3 := h3 >> 25
	h4 += c3
	h3 -= c3 << 25
	c4 := h4 >> 26
	h5 += c4
	h4 -= c4 << 26
	c5 := h5 >> 25
	h6 += c5
	h5 -= c5 << 25
	c6 := h6 >> 26
	h7 += c6
	h6 -= c6 << 26
	c7 := h7 >> 25
	h8 += c7
	h7 -= c7 << 25
	c8 := h8 >> 26
	h9 += c8
	h8 -= c8 << 26
	c9 := h9 >> 25
	h9 -= c9 << 25

	s[0] = byte(h0)
	s[1] = byte(h0 >> 8)
	s[2] = byte(h0 >> 16)
	s[3] = byte((h0 >> 24) | (h1 << 2))
	s[4] = byte(h1 >> 6)
	s[5] = byte(h1 >> 14)
	s[6] = byte((h1 >> 22) | (h2 << 3))
	s[7] = byte(h2 >> 5)
	s[8] = byte(h2 >> 13)
	s[9] = byte((h2 >> 21) | (h3 << 5))
	s[10] = byte(h3 >> 3)
	s[11] = byte(h3 >> 11)
	s[12] = byte((h3 >> 19) | (h4 << 6))
	s[13] = byte(h4 >> 2)
	s[14] = byte(h4 >> 10)
	s[15] = byte(h4 >> 18)
	s[16] = byte(h5)
	s[17] = byte(h5 >> 8)
	s[18] = byte(h5 >> 16)
	s[19] = byte((h5 >> 24) | (h6 << 1))
	s[20] = byte(h6 >> 7)
	s[21] = byte(h6 >> 15)
	s[22] = byte((h6 >> 23) | (h7 << 3))
	s[23] = byte(h7 >> 5)
	s[24] = byte(h7 >> 13)
	s[25] = byte((h7 >> 21) | (h8 << 4))
	s[26] = byte(h8 >> 4)
	s[27] = byte(h8 >> 12)
	s[28] = byte((h8 >> 20) | (h9 << 6))
	s[29] = byte(h9 >> 2)
	s[30] = byte(h9 >> 10)
	s[31] = byte(h9 >> 18)
}
