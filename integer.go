package ackermann

import (
	"math/big"
	"sync"

	"github.com/holiman/uint256"
)

// fint (Fast INTeger) is a wrapper around uint256.Int.
// Limbs are stored in little-endian order.
type fint uint256.Int

// maxFintBits is a maximum length of fint in bits.
const maxFintBits = 256

func (x *fint) u256() *uint256.Int {
	return (*uint256.Int)(x)
}

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	_, overflow := z.u256().AddOverflow(x.u256(), y.u256())
	if overflow {
		return fint{}, false
	}
	return z, true
}

// sub calculates x - y and checks underflow.
func (x fint) sub(y fint) (z fint, ok bool) {
	_, underflow := z.u256().SubOverflow(x.u256(), y.u256())
	if underflow {
		return fint{}, false
	}
	return z, true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	_, overflow := z.u256().MulOverflow(x.u256(), y.u256())
	if overflow {
		return fint{}, false
	}
	return z, true
}

// rsh (Right Shift) calculates ⌊x / 2^shift⌋.
func (x fint) rsh(shift uint) fint {
	var z fint
	z.u256().Rsh(x.u256(), shift)
	return z
}

// bit returns the value of the i-th bit of x.
func (x fint) bit(i int) uint {
	if i < 0 || i >= maxFintBits {
		return 0
	}
	return uint(x[i/64]>>(uint(i)%64)) & 1
}

func (x fint) isOdd() bool {
	return x[0]&1 != 0
}

func (x fint) isZero() bool {
	return x == fint{}
}

func (x fint) isOne() bool {
	return x == fint{1}
}

func (x fint) cmp(y fint) int {
	return x.u256().Cmp(y.u256())
}

// bitLen returns length of x in bits.
// bitLen assumes that 0 has no bits.
func (x fint) bitLen() int {
	return x.u256().BitLen()
}

// uint64 converts x to uint64.
func (x fint) uint64() (uint64, bool) {
	if !x.u256().IsUint64() {
		return 0, false
	}
	return x[0], true
}

func (x fint) string() string {
	return x.u256().Dec()
}

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setFint(x fint) {
	buf := x.u256().Bytes32()
	(*big.Int)(z).SetBytes(buf[:])
}

// setString sets z to the value of s, interpreted in base 10.
func (z *bint) setString(s string) bool {
	_, ok := (*big.Int)(z).SetString(s, 10)
	return ok
}

// fint converts *big.Int to fint.
// If z cannot be represented as fint, ok is false.
// If z is negative, the result is unpredictable.
func (z *bint) fint() (f fint, ok bool) {
	overflow := f.u256().SetFromBig((*big.Int)(z))
	if overflow {
		return fint{}, false
	}
	return f, true
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	(*big.Int)(z).Sub((*big.Int)(x), (*big.Int)(y))
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	// Copying x, y to prevent heap allocations.
	if z == x {
		b := getBint()
		defer putBint(b)
		b.setBint(x)
		x = b
	}
	if z == y {
		b := getBint()
		defer putBint(b)
		b.setBint(y)
		y = b
	}
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// rsh (Right Shift) calculates z = ⌊x / 2^shift⌋.
func (z *bint) rsh(x *bint, shift uint) {
	(*big.Int)(z).Rsh((*big.Int)(x), shift)
}

// bit returns the value of the i-th bit of z.
func (z *bint) bit(i int) uint {
	if i < 0 {
		return 0
	}
	return (*big.Int)(z).Bit(i)
}

func (z *bint) isOdd() bool {
	return z.bit(0) != 0
}

// bitLen returns length of z in bits.
// bitLen assumes that 0 has no bits.
// If z is negative, the result is the length of |z|.
func (z *bint) bitLen() int {
	return (*big.Int)(z).BitLen()
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
