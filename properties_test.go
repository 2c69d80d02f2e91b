// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package field

import (
	"crypto/rand"
	"testing"
)

// randomElement returns an Element drawn from a uniformly random
// 32-byte string. SetBytes is total, so this always succeeds; the
// occasional input at or above p just exercises the reduction path.
func randomElement(t *testing.T) *Element {
	t.Helper()
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		t.Fatal(err)
	}
	e, err := new(Element).SetBytes(b[:])
	if err != nil {
		t.Fatal(err)
	}
	return e
}

const propertyIterations = 64

func TestAdditionCommutes(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		a, b := randomElement(t), randomElement(t)
		var ab, ba Element
		ab.Add(a, b)
		ba.Add(b, a)
		assertEqual(t, &ab, &ba, "a+b != b+a")
	}
}

func TestAdditionAssociates(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		a, b, c := randomElement(t), randomElement(t), randomElement(t)
		var lhs, rhs, tmp Element
		tmp.Add(a, b)
		lhs.Add(&tmp, c)
		tmp.Add(b, c)
		rhs.Add(a, &tmp)
		assertEqual(t, &lhs, &rhs, "(a+b)+c != a+(b+c)")
	}
}

func TestMultiplicationCommutes(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		a, b := randomElement(t), randomElement(t)
		var ab, ba Element
		ab.Multiply(a, b)
		ba.Multiply(b, a)
		assertEqual(t, &ab, &ba, "a*b != b*a")
	}
}

func TestMultiplicationAssociates(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		a, b, c := randomElement(t), randomElement(t), randomElement(t)
		var lhs, rhs, tmp Element
		tmp.Multiply(a, b)
		lhs.Multiply(&tmp, c)
		tmp.Multiply(b, c)
		rhs.Multiply(a, &tmp)
		assertEqual(t, &lhs, &rhs, "(a*b)*c != a*(b*c)")
	}
}

func TestMultiplicationDistributesOverAddition(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		a, b, c := randomElement(t), randomElement(t), randomElement(t)
		var lhs, rhs, sum, ab, ac Element
		sum.Add(b, c)
		lhs.Multiply(a, &sum)
		ab.Multiply(a, b)
		ac.Multiply(a, c)
		rhs.Add(&ab, &ac)
		assertEqual(t, &lhs, &rhs, "a*(b+c) != a*b+a*c")
	}
}

func TestAdditiveIdentity(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		a := randomElement(t)
		var sum Element
		sum.Add(a, Zero)
		assertEqual(t, &sum, a, "a+0 != a")
	}
}

func TestMultiplicativeIdentity(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		a := randomElement(t)
		var prod Element
		prod.Multiply(a, One)
		assertEqual(t, &prod, a, "a*1 != a")
	}
}

func TestAdditiveInverse(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		a := randomElement(t)
		var neg, sum Element
		neg.Negate(a)
		sum.Add(a, &neg)
		assertEqual(t, &sum, new(Element).Zero(), "a+(-a) != 0")
	}
}

func TestMultiplicativeInverse(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		a := randomElement(t)
		if a.IsNonzero() == 0 {
			continue
		}
		var inv, prod Element
		inv.Invert(a)
		prod.Multiply(a, &inv)
		assertEqual(t, &prod, new(Element).One(), "a*(1/a) != 1")
	}
}

func TestSquareMatchesSelfMultiply(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		a := randomElement(t)
		var sq, mul Element
		sq.Square(a)
		mul.Multiply(a, a)
		assertEqual(t, &sq, &mul, "a^2 != a*a")
	}
}

func TestSquare2MatchesDoubledSquare(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		a := randomElement(t)
		var sq2, sq, doubled Element
		sq2.Square2(a)
		sq.Square(a)
		doubled.Add(&sq, &sq)
		assertEqual(t, &sq2, &doubled, "Square2(a) != Square(a)+Square(a)")
	}
}

func TestMulSmallMatchesScalarMultiply(t *testing.T) {
	var scalar Element
	scalar.Zero()
	for n := 0; n < a24; n++ {
		scalar.Add(&scalar, One)
	}

	for i := 0; i < propertyIterations; i++ {
		a := randomElement(t)
		var got, want Element
		got.MulSmall(a)
		want.Multiply(a, &scalar)
		assertEqual(t, &got, &want, "MulSmall(a) != a*121666")
	}
}

func TestSubtractIsAddNegate(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		a, b := randomElement(t), randomElement(t)
		var sub, neg, add Element
		sub.Subtract(a, b)
		neg.Negate(b)
		add.Add(a, &neg)
		assertEqual(t, &sub, &add, "a-b != a+(-b)")
	}
}

func TestCondSwapMatchesManualSwap(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		a, b := randomElement(t), randomElement(t)
		origA, origB := *a, *b

		CondSwap(a, b, 1)
		assertEqual(t, a, &origB, "CondSwap(1) failed on a")
		assertEqual(t, b, &origA, "CondSwap(1) failed on b")
	}
}
