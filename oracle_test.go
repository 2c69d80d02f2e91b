// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package field_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	ourfield "go.fe25519.dev/field"

	oraclefield "filippo.io/edwards25519/field"
)

// These tests cross-check this package's arithmetic against
// filippo.io/edwards25519/field, an independently written
// implementation of the same field, on random inputs. Agreement here
// is much stronger evidence of correctness than either implementation
// checked alone, since the two were not derived from each other.

func randomBytes(t *testing.T) [32]byte {
	t.Helper()
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		t.Fatal(err)
	}
	return b
}

func bothFromBytes(t *testing.T, b [32]byte) (*ourfield.Element, *oraclefield.Element) {
	t.Helper()
	ours, err := new(ourfield.Element).SetBytes(b[:])
	if err != nil {
		t.Fatal(err)
	}
	theirs, err := new(oraclefield.Element).SetBytes(b[:])
	if err != nil {
		t.Fatal(err)
	}
	return ours, theirs
}

func requireSameEncoding(t *testing.T, ours *ourfield.Element, theirs *oraclefield.Element) {
	t.Helper()
	if !bytes.Equal(ours.Bytes(), theirs.Bytes()) {
		t.Fatalf("encodings disagree: ours=%x theirs=%x", ours.Bytes(), theirs.Bytes())
	}
}

const oracleIterations = 64

func TestOracleAdd(t *testing.T) {
	for i := 0; i < oracleIterations; i++ {
		ba, bb := randomBytes(t), randomBytes(t)
		ourA, theirA := bothFromBytes(t, ba)
		ourB, theirB := bothFromBytes(t, bb)

		var ourSum ourfield.Element
		var theirSum oraclefield.Element
		ourSum.Add(ourA, ourB)
		theirSum.Add(theirA, theirB)
		requireSameEncoding(t, &ourSum, &theirSum)
	}
}

func TestOracleSubtract(t *testing.T) {
	for i := 0; i < oracleIterations; i++ {
		ba, bb := randomBytes(t), randomBytes(t)
		ourA, theirA := bothFromBytes(t, ba)
		ourB, theirB := bothFromBytes(t, bb)

		var ourDiff ourfield.Element
		var theirDiff oraclefield.Element
		ourDiff.Subtract(ourA, ourB)
		theirDiff.Subtract(theirA, theirB)
		requireSameEncoding(t, &ourDiff, &theirDiff)
	}
}

func TestOracleNegate(t *testing.T) {
	for i := 0; i < oracleIterations; i++ {
		b := randomBytes(t)
		ourA, theirA := bothFromBytes(t, b)

		var ourNeg ourfield.Element
		var theirNeg oraclefield.Element
		ourNeg.Negate(ourA)
		theirNeg.Negate(theirA)
		requireSameEncoding(t, &ourNeg, &theirNeg)
	}
}

func TestOracleMultiply(t *testing.T) {
	for i := 0; i < oracleIterations; i++ {
		ba, bb := randomBytes(t), randomBytes(t)
		ourA, theirA := bothFromBytes(t, ba)
		ourB, theirB := bothFromBytes(t, bb)

		var ourProd ourfield.Element
		var theirProd oraclefield.Element
		ourProd.Multiply(ourA, ourB)
		theirProd.Multiply(theirA, theirB)
		requireSameEncoding(t, &ourProd, &theirProd)
	}
}

func TestOracleSquare(t *testing.T) {
	for i := 0; i < oracleIterations; i++ {
		b := randomBytes(t)
		ourA, theirA := bothFromBytes(t, b)

		var ourSq ourfield.Element
		var theirSq oraclefield.Element
		ourSq.Square(ourA)
		theirSq.Square(theirA)
		requireSameEncoding(t, &ourSq, &theirSq)
	}
}

func TestOracleInvert(t *testing.T) {
	for i := 0; i < oracleIterations; i++ {
		b := randomBytes(t)
		ourA, theirA := bothFromBytes(t, b)
		if ourA.IsNonzero() == 0 {
			continue
		}

		var ourInv ourfield.Element
		var theirInv oraclefield.Element
		ourInv.Invert(ourA)
		theirInv.Invert(theirA)
		requireSameEncoding(t, &ourInv, &theirInv)
	}
}

func TestOracleZeroAndOne(t *testing.T) {
	var ourZero ourfield.Element
	var theirZero oraclefield.Element
	ourZero.Zero()
	theirZero.Zero()
	requireSameEncoding(t, &ourZero, &theirZero)

	var ourOne ourfield.Element
	var theirOne oraclefield.Element
	ourOne.One()
	theirOne.One()
	requireSameEncoding(t, &ourOne, &theirOne)
}
