package ackermann

import (
	"fmt"
	"math/bits"
)

// Pow returns base raised to the power exp.
// It uses [binary exponentiation], so the number of multiplications
// is proportional to the length of exp in bits, not to its value.
//
// The following special cases are checked in order:
//
//	Pow(0, e) = 0
//	Pow(b, 1) = b
//	Pow(1, e) = 1
//	Pow(b, 0) = 1
//
// In particular, Pow(0, 0) = 0.
//
// Pow returns an error if the power has more than [MaxBits] bits.
//
// [binary exponentiation]: https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func Pow(base, exp Natural) (Natural, error) {
	// Special cases
	switch {
	case base.IsZero(), exp.IsOne():
		return base, nil
	case base.IsOne(), exp.IsZero():
		return one, nil
	}

	// General case
	if err := checkPowLen(base, exp); err != nil {
		return Natural{}, fmt.Errorf("computing [%v^%v]: %w", base.brief(), exp.brief(), err)
	}
	z, err := powFast(base, exp)
	if err != nil {
		z, err = powSlow(base, exp)
		if err != nil {
			return Natural{}, fmt.Errorf("computing [%v^%v]: %w", base.brief(), exp.brief(), err)
		}
	}
	return z, nil
}

// checkPowLen returns an error if base^exp certainly has more than [MaxBits] bits.
// A b-bit base raised to the power exp has at least (b-1)*exp+1 bits.
// checkPowLen assumes that base >= 2.
func checkPowLen(base, exp Natural) error {
	e, ok := exp.Uint64()
	if !ok {
		return fmt.Errorf("the exponent has %v bit(s), but at most 64 are supported for base %v: %w", exp.BitLen(), base.brief(), ErrOverflow)
	}
	hi, lo := bits.Mul64(uint64(base.BitLen()-1), e)
	if hi != 0 || lo >= MaxBits {
		return fmt.Errorf("the result has more than %v bit(s): %w", MaxBits, ErrOverflow)
	}
	return nil
}

// powFast computes base^exp using 256-bit arithmetic.
// powFast assumes that base >= 2 and exp >= 2.
func powFast(base, exp Natural) (Natural, error) {
	if base.wide != nil || exp.wide != nil {
		return Natural{}, errFintOverflow
	}

	b, e := base.fast, exp.fast
	z := fint{1}
	var ok bool

	for e.cmp(fint{1}) > 0 {
		if e.isOdd() {
			z, ok = z.mul(b)
			if !ok {
				return Natural{}, errFintOverflow
			}
		}
		e = e.rsh(1)
		b, ok = b.mul(b)
		if !ok {
			return Natural{}, errFintOverflow
		}
	}

	// The highest bit of the exponent
	z, ok = z.mul(b)
	if !ok {
		return Natural{}, errFintOverflow
	}

	return Natural{fast: z}, nil
}

// powSlow computes base^exp using [big.Int] arithmetic.
// powSlow assumes that base >= 2 and exp >= 2.
func powSlow(base, exp Natural) (Natural, error) {
	b := getBint()
	defer putBint(b)
	b.setBint(base.bint())

	e := getBint()
	defer putBint(e)
	e.setBint(exp.bint())

	z := new(bint)
	z.setFint(fint{1})

	for e.bitLen() > 1 {
		if e.isOdd() {
			z.mul(z, b)
		}
		e.rsh(e, 1)
		// The final power is a multiple of every square of the base.
		if n := 2*b.bitLen() - 1; n > MaxBits {
			return Natural{}, fmt.Errorf("the result has at least %v bit(s), but a %T can have at most %v bit(s): %w", n, Natural{}, MaxBits, ErrOverflow)
		}
		b.mul(b, b)
	}

	// The highest bit of the exponent
	z.mul(z, b)

	return newNaturalFromBint(z)
}

// HyperOp returns the result of the [hyperoperation] of the given order
// applied to base and exp:
//
//	order 0: exp + 1 (successor, base is ignored)
//	order 1: base + exp (addition)
//	order 2: base * exp (multiplication)
//	order 3: base ^ exp (exponentiation, see [Pow])
//	order 4: base ^^ exp (tetration)
//
// For orders greater than 3 the result is 1 if exp is 0, otherwise
// it is the hyperoperation of the previous order applied exp times,
// right-associated, with base as the repeated operand:
//
//	HyperOp(n, b, e) = HyperOp(n-1, b, HyperOp(n, b, e-1))
//	HyperOp(n, b, 1) = b
//	HyperOp(n, b, 0) = 1
//
// The recursion on the order is evaluated on an explicit stack, so the
// goroutine stack does not grow with the order. The repetition on exp is
// a loop, so the running time is proportional to exp at every order:
// callers must bound exp for orders greater than 3.
//
// HyperOp returns an error if any intermediate result has more
// than [MaxBits] bits.
//
// [hyperoperation]: https://en.wikipedia.org/wiki/Hyperoperation#Definition
func HyperOp(order, base, exp Natural) (Natural, error) {
	z, err := hyperOp(order, base, exp)
	if err != nil {
		return Natural{}, fmt.Errorf("computing hyperoperation [%v, %v, %v]: %w", order.brief(), base.brief(), exp.brief(), err)
	}
	return z, nil
}

// hyperFrame is a pending repetition of the hyperoperation of order-1.
type hyperFrame struct {
	order Natural // order of the repeated hyperoperation plus one, at least 4
	left  Natural // remaining number of repetitions
	acc   Natural // result of the repetitions done so far
}

// next records the result of one more repetition.
func (f *hyperFrame) next(z Natural) error {
	left, err := f.left.Pred()
	if err != nil {
		return err
	}
	f.acc, f.left = z, left
	return nil
}

func hyperOp(order, base, exp Natural) (Natural, error) {
	// Orders 0 to 3
	if z, ok, err := hyperLow(order, base, exp); ok {
		return z, err
	}

	// Special cases
	switch {
	case exp.IsZero(), base.IsOne():
		return one, nil
	}

	// General case
	left, err := exp.Pred()
	if err != nil {
		return Natural{}, err
	}
	stack := []hyperFrame{{order: order, left: left, acc: base}}
	for {
		f := &stack[len(stack)-1]

		// Frame completed, pass its result to the caller
		if f.left.IsZero() {
			z := f.acc
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return z, nil
			}
			if err := stack[len(stack)-1].next(z); err != nil {
				return Natural{}, err
			}
			continue
		}

		sub, err := f.order.Pred()
		if err != nil {
			return Natural{}, err
		}

		// Lower order is computed directly
		if z, ok, err := hyperLow(sub, base, f.acc); ok {
			if err != nil {
				return Natural{}, fmt.Errorf("order %v: %w", sub.brief(), err)
			}
			if err := f.next(z); err != nil {
				return Natural{}, err
			}
			continue
		}

		// Lower order with zero exponent
		if f.acc.IsZero() {
			if err := f.next(one); err != nil {
				return Natural{}, err
			}
			continue
		}

		// Lower order is repeated on a new frame
		left, err := f.acc.Pred()
		if err != nil {
			return Natural{}, err
		}
		stack = append(stack, hyperFrame{order: sub, left: left, acc: base})
	}
}

// hyperLow computes the hyperoperations of orders 0 to 3.
// For higher orders ok is false.
func hyperLow(order, base, exp Natural) (z Natural, ok bool, err error) {
	n, ok := order.Uint64()
	if !ok || n > 3 {
		return Natural{}, false, nil
	}
	switch n {
	case 0:
		z, err = exp.Succ()
	case 1:
		z, err = base.Add(exp)
	case 2:
		z, err = base.Mul(exp)
	default:
		z, err = Pow(base, exp)
	}
	return z, true, err
}

// A returns the value of the [Ackermann–Péter function]:
//
//	A(0, n) = n + 1
//	A(m, 0) = A(m-1, 1)
//	A(m, n) = A(m-1, A(m, n-1))
//
// A is evaluated through the hyperoperation of order m:
//
//	A(m, n) = HyperOp(m, 2, n+3) - 3
//
// so the running time is proportional to the number of intermediate
// results, not to the number of recursive calls of the definition above.
// The function grows so fast that only a handful of inputs with m >= 4
// produce results that fit in memory, for example A(4, 2) has 19729
// decimal digits and A(4, 3) does not fit in [MaxBits] bits.
//
// A returns an error if any intermediate result has more than [MaxBits] bits.
//
// [Ackermann–Péter function]: https://en.wikipedia.org/wiki/Ackermann_function#TRS,_based_on_hyperoperators
func A(m, n Natural) (Natural, error) {
	e, err := n.Add(three)
	if err != nil {
		return Natural{}, fmt.Errorf("computing A(%v, %v): %w", m.brief(), n.brief(), err)
	}
	z, err := HyperOp(m, two, e)
	if err != nil {
		return Natural{}, fmt.Errorf("computing A(%v, %v): %w", m.brief(), n.brief(), err)
	}
	// HyperOp(m, 2, e) >= 3 for all e >= 3
	z, err = z.Sub(three)
	if err != nil {
		return Natural{}, fmt.Errorf("computing A(%v, %v): %w", m.brief(), n.brief(), err)
	}
	return z, nil
}
