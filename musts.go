package ackermann

import (
	"fmt"
	"math/big"
)

// MustNewFromInt64 is like [NewFromInt64] but panics if v is negative.
func MustNewFromInt64(v int64) Natural {
	x, err := NewFromInt64(v)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromInt64(%v) failed: %v", v, err))
	}
	return x
}

// MustNewFromBigInt is like [NewFromBigInt] but panics if the conversion fails.
func MustNewFromBigInt(b *big.Int) Natural {
	x, err := NewFromBigInt(b)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromBigInt(%v) failed: %v", b, err))
	}
	return x
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding naturals.
func MustParse(s string) Natural {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// MustAdd is like [Natural.Add] but panics if computing error.
func (x Natural) MustAdd(y Natural) Natural {
	z, err := x.Add(y)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", y.brief(), err))
	}
	return z
}

// MustSub is like [Natural.Sub] but panics if computing error.
func (x Natural) MustSub(y Natural) Natural {
	z, err := x.Sub(y)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", y.brief(), err))
	}
	return z
}

// MustMul is like [Natural.Mul] but panics if computing error.
func (x Natural) MustMul(y Natural) Natural {
	z, err := x.Mul(y)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", y.brief(), err))
	}
	return z
}

// MustPow is like [Pow] but panics if computing error.
func MustPow(base, exp Natural) Natural {
	z, err := Pow(base, exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v, %v) failed: %v", base.brief(), exp.brief(), err))
	}
	return z
}

// MustHyperOp is like [HyperOp] but panics if computing error.
func MustHyperOp(order, base, exp Natural) Natural {
	z, err := HyperOp(order, base, exp)
	if err != nil {
		panic(fmt.Sprintf("MustHyperOp(%v, %v, %v) failed: %v", order.brief(), base.brief(), exp.brief(), err))
	}
	return z
}

// MustA is like [A] but panics if computing error.
func MustA(m, n Natural) Natural {
	z, err := A(m, n)
	if err != nil {
		panic(fmt.Sprintf("MustA(%v, %v) failed: %v", m.brief(), n.brief(), err))
	}
	return z
}
