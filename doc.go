// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

// Package field implements arithmetic in GF(2^255-19), the prime
// field underlying Curve25519 and Edwards25519.
//
// An Element represents a residue class mod p = 2^255-19 as ten
// signed 32-bit limbs in a mixed 26/25-bit radix:
//
//	v = v[0] + v[1]*2^26 + v[2]*2^51 + v[3]*2^77 + v[4]*2^102 +
//	    v[5]*2^128 + v[6]*2^153 + v[7]*2^179 + v[8]*2^204 + v[9]*2^230
//
// The representation is redundant — distinct limb tuples can denote
// the same residue — so operations only guarantee the loose bounds
// documented on each method. Canonicalization happens only inside
// Bytes; compare elements with Equal, never by inspecting limbs.
//
// Every operation in this package is constant-time with respect to
// its Element operands: no branch or memory access depends on limb
// values. Invert and PowP58 use fixed addition chains and are
// constant-time for the same reason. This package performs no I/O,
// no heap allocation, and holds no shared state; an Element is plain
// caller-owned storage, safe to use concurrently as long as distinct
// goroutines never share one.
//
// This package implements only the field layer. Point arithmetic,
// scalar multiplication, key agreement, and signatures are built on
// top of it elsewhere.
package field
