/*
Package ackermann computes the [Ackermann–Péter function] and the
[hyperoperation] hierarchy exactly, for arbitrary-precision non-negative
integers.

# Representation

[Natural] is an immutable arbitrary-precision non-negative integer.
It is stored in one of two forms:

  - Fast: a 256-bit unsigned integer.
    Values below 2^256 always use this form.
  - Wide: a [big.Int].
    Values of 2^256 or more always use this form.

Every arithmetic operation is carried out in two steps:

 1. The operation is performed using 256-bit arithmetic.
    If no overflow occurs, the result is immediately returned.
    If an overflow does occur, the operation proceeds to step 2.

 2. The operation is repeated using [big.Int] arithmetic.

Step 1 avoids heap allocations for the small and medium values that make up
most of the work of the hyperoperation evaluator, for example every
intermediate result of A(3, n) for n < 253 and of A(4, 1).

Negative integers are not naturals: [NewFromInt64], [NewFromBigInt] and
[Parse] reject them with [ErrNegative].

# Operations

The package provides three functions built on top of each other:

  - [Pow]: exponentiation by squaring.
  - [HyperOp]: the hyperoperation of an arbitrary order.
    Orders 0, 1, 2 and 3 are successor, addition, multiplication and
    exponentiation; order 4 is tetration.
  - [A]: the Ackermann–Péter function, evaluated as
    A(m, n) = HyperOp(m, 2, n+3) - 3.

[HyperOp] recurses on the order and iterates on the exponent, so the number
of steps is bounded by the intermediate results rather than by the number of
calls of the classical two-argument recursion.
The recursion on the order is kept on an explicit stack, so even very large
orders do not grow the goroutine stack.

# Resource limits

The Ackermann function grows faster than any primitive recursive function.
A(4, 2) already has 19729 decimal digits, and A(4, 3) has more digits than
there are atoms in the observable universe.

To turn memory exhaustion into an ordinary error, no natural may have more
than [MaxBits] bits.
Every operation whose result would be longer returns [ErrOverflow].
Exponentiation detects this before doing any multiplication.

The running time of [HyperOp] for orders above 3 is proportional to the
exponent, even when intermediate results stay small, for example when the
base is 0.
Callers must bound the exponent for such inputs.

# Errors

All functions and methods are panic-free and pure.
Errors are returned in the following cases:

  - Negative input.
    Conversions from signed integers and strings return [ErrNegative].

  - Invalid input.
    [Parse] returns [ErrInvalid] for strings that are not base-10 naturals.

  - Overflow.
    Unlike fixed-size integers, there is no "wrap around" for naturals.
    Results longer than [MaxBits] bits produce [ErrOverflow].

  - Underflow.
    [Natural.Sub] returns [ErrUnderflow] if the difference would be negative.

All errors are wrapped with a description of the failed computation,
use [errors.Is] to test for a particular kind.
The Must variants, such as [MustA], panic instead of returning errors.

[Ackermann–Péter function]: https://en.wikipedia.org/wiki/Ackermann_function
[hyperoperation]: https://en.wikipedia.org/wiki/Hyperoperation
[big.Int]: https://pkg.go.dev/math/big#Int
*/
package ackermann
