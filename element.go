// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package field

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
)

// Element is an element of GF(2^255-19), stored as ten signed 32-bit
// limbs. Its size is exactly 10*4 = 40 bytes; treat the limb layout
// as opaque. The zero value is the additive identity.
type Element struct {
	l [10]int32
}

// Zero is the additive identity. Callers must not mutate it directly;
// use Zero() to set a receiver to zero instead.
var Zero = new(Element)

// One is the multiplicative identity. Callers must not mutate it
// directly; use One() to set a receiver to one instead.
var One = new(Element).One()

// Zero sets v = 0 and returns v.
func (v *Element) Zero() *Element {
	v.l = [10]int32{}
	return v
}

// One sets v = 1 and returns v.
func (v *Element) One() *Element {
	v.l = [10]int32{1}
	return v
}

// Set sets v = a and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// Equal returns 1 if v and u represent the same element of GF(p), and
// 0 otherwise. Equal is constant-time with respect to both
// representations, since the comparison is done on canonical
// encodings rather than on limbs directly (which, being redundant,
// can differ for equal values).
func (v *Element) Equal(u *Element) int {
	var sv, su [32]byte
	v.bytes(&sv)
	u.bytes(&su)
	return subtle.ConstantTimeCompare(sv[:], su[:])
}

// MarshalText implements encoding.TextMarshaler, base64-encoding the
// canonical byte representation of v.
func (v *Element) MarshalText() ([]byte, error) {
	return []byte(base64.StdEncoding.EncodeToString(v.Bytes())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Element) UnmarshalText(text []byte) error {
	b, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		return err
	}
	_, err = v.SetBytes(b)
	return err
}

// String implements fmt.Stringer.
func (v *Element) String() string {
	text, _ := v.MarshalText()
	return string(text)
}

var errInvalidEncodingLength = errors.New("field: invalid element encoding length")
