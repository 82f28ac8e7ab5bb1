package ackermann

import (
	"errors"
	"fmt"
	"math/big"
)

// Natural type is a representation of an arbitrary-precision non-negative integer.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A natural is stored in one of two forms:
//
//   - Fast: a 256-bit unsigned integer, used for all values below 2^256.
//   - Wide: a [big.Int], used only for values that do not fit in 256 bits.
//
// The form is chosen by value, so equal naturals always have the same form.
// Values are never modified after construction.
type Natural struct {
	wide *bint // the value, if it does not fit in 256 bits, nil otherwise
	fast fint  // the value, if wide is nil
}

// MaxBits is the maximum length of a natural in bits.
// Operations whose result would be longer return [ErrOverflow].
const MaxBits = 1 << 30

var (
	// ErrNegative is returned when a negative number is converted to a natural.
	ErrNegative = errors.New("negative natural")

	// ErrInvalid is returned when a string is not a natural.
	ErrInvalid = errors.New("invalid natural")

	// ErrOverflow is returned when a result has more than MaxBits bits.
	ErrOverflow = errors.New("natural overflow")

	// ErrUnderflow is returned when a difference would be negative.
	ErrUnderflow = errors.New("natural underflow")

	errFintOverflow = errors.New("fint overflow")
)

var (
	one   = New(1)
	two   = New(2)
	three = New(3)
)

// newNaturalFromBint returns z in the normalized form.
// z must not be modified after the call.
func newNaturalFromBint(z *bint) (Natural, error) {
	if n := z.bitLen(); n > MaxBits {
		return Natural{}, fmt.Errorf("the result has %v bit(s), but a %T can have at most %v bit(s): %w", n, Natural{}, MaxBits, ErrOverflow)
	}
	return normalize(z), nil
}

// normalize returns z in the normalized form without checking its length.
// z must not be negative and must not be modified after the call.
func normalize(z *bint) Natural {
	if f, ok := z.fint(); ok {
		return Natural{fast: f}
	}
	return Natural{wide: z}
}

// New returns a natural equal to v.
func New(v uint64) Natural {
	return Natural{fast: fint{v}}
}

// NewFromInt64 converts an integer to a natural.
// NewFromInt64 returns an error if v is negative.
func NewFromInt64(v int64) (Natural, error) {
	if v < 0 {
		return Natural{}, fmt.Errorf("converting %v: %w", v, ErrNegative)
	}
	return New(uint64(v)), nil
}

// NewFromBigInt converts a [big.Int] to a natural.
// The argument is copied, so later changes to b do not affect the result.
// NewFromBigInt returns an error if b is nil, negative or longer than [MaxBits].
func NewFromBigInt(b *big.Int) (Natural, error) {
	if b == nil {
		return Natural{}, fmt.Errorf("converting nil %T: %w", b, ErrInvalid)
	}
	if b.Sign() < 0 {
		return Natural{}, fmt.Errorf("converting %v: %w", b, ErrNegative)
	}
	z := new(bint)
	z.setBint((*bint)(b))
	return newNaturalFromBint(z)
}

// Parse converts a string to a natural.
// The string must contain base-10 digits only, optionally preceded by '+':
//
//	sign    ::= '+'
//	digits  ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	natural ::= [sign] digits
//
// Parse returns an error if the string is not a valid natural
// or if it represents a negative integer.
func Parse(s string) (Natural, error) {
	digits := s
	if len(digits) > 0 {
		switch digits[0] {
		case '-':
			return Natural{}, fmt.Errorf("parsing %q: %w", s, ErrNegative)
		case '+':
			digits = digits[1:]
		}
	}
	if len(digits) == 0 {
		return Natural{}, fmt.Errorf("parsing %q: no digits: %w", s, ErrInvalid)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Natural{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, digits[i], ErrInvalid)
		}
	}
	z := new(bint)
	if !z.setString(digits) {
		return Natural{}, fmt.Errorf("parsing %q: %w", s, ErrInvalid)
	}
	return newNaturalFromBint(z)
}

// String implements the [fmt.Stringer] interface and returns
// a string representation of the natural in base 10.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Natural) String() string {
	if x.wide != nil {
		return x.wide.string()
	}
	return x.fast.string()
}

// brief returns a short description of x for error messages.
// Naturals that do not fit in 256 bits are described by their length.
func (x Natural) brief() string {
	if x.wide != nil {
		return fmt.Sprintf("<%v-bit natural>", x.wide.bitLen())
	}
	return x.fast.string()
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: 65533
//	%q:        "65533"
//
// The following format flags can be used with all verbs: '+', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Natural) Format(state fmt.State, verb rune) {
	digs := x.String()

	// Arithmetic sign
	rsign := 0
	if state.Flag('+') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(digs) + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		buf = append(buf, '+')
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, digs...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'd':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(ackermann.Natural="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Uint64 returns the natural as uint64.
// If the natural does not fit in uint64, ok is false.
func (x Natural) Uint64() (v uint64, ok bool) {
	if x.wide != nil {
		return 0, false
	}
	return x.fast.uint64()
}

// BigInt returns the natural as a newly allocated [big.Int].
func (x Natural) BigInt() *big.Int {
	z := new(bint)
	if x.wide != nil {
		z.setBint(x.wide)
	} else {
		z.setFint(x.fast)
	}
	return (*big.Int)(z)
}

// bint returns the natural as *bint.
// The result must not be modified.
func (x Natural) bint() *bint {
	if x.wide != nil {
		return x.wide
	}
	z := new(bint)
	z.setFint(x.fast)
	return z
}

// IsZero returns true if x == 0.
func (x Natural) IsZero() bool {
	return x.wide == nil && x.fast.isZero()
}

// IsOne returns true if x == 1.
func (x Natural) IsOne() bool {
	return x.wide == nil && x.fast.isOne()
}

// IsOdd returns true if x is not divisible by 2.
func (x Natural) IsOdd() bool {
	if x.wide != nil {
		return x.wide.isOdd()
	}
	return x.fast.isOdd()
}

// BitLen returns the length of x in bits.
// The bit length of 0 is 0.
func (x Natural) BitLen() int {
	if x.wide != nil {
		return x.wide.bitLen()
	}
	return x.fast.bitLen()
}

// Bit returns the value of the i-th bit of x, that is ⌊x / 2^i⌋ mod 2.
// Bit returns 0 if i is negative.
func (x Natural) Bit(i int) uint {
	if x.wide != nil {
		return x.wide.bit(i)
	}
	return x.fast.bit(i)
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Natural) Cmp(y Natural) int {
	switch {
	case x.wide == nil && y.wide == nil:
		return x.fast.cmp(y.fast)
	case x.wide == nil:
		return -1
	case y.wide == nil:
		return 1
	}
	return x.wide.cmp(y.wide)
}

// Equal returns true if x == y.
func (x Natural) Equal(y Natural) bool {
	return x.Cmp(y) == 0
}

// Add returns the sum of x and y.
//
// Add returns an error if the sum has more than [MaxBits] bits.
func (x Natural) Add(y Natural) (Natural, error) {
	z, err := addFast(x, y)
	if err != nil {
		z, err = addSlow(x, y)
		if err != nil {
			return Natural{}, fmt.Errorf("computing [%v + %v]: %w", x.brief(), y.brief(), err)
		}
	}
	return z, nil
}

func addFast(x, y Natural) (Natural, error) {
	if x.wide != nil || y.wide != nil {
		return Natural{}, errFintOverflow
	}
	z, ok := x.fast.add(y.fast)
	if !ok {
		return Natural{}, errFintOverflow
	}
	return Natural{fast: z}, nil
}

func addSlow(x, y Natural) (Natural, error) {
	z := new(bint)
	z.add(x.bint(), y.bint())
	return newNaturalFromBint(z)
}

// Sub returns the difference of x and y.
//
// Sub returns an error if x < y, since the difference is not a natural.
func (x Natural) Sub(y Natural) (Natural, error) {
	if x.Cmp(y) < 0 {
		return Natural{}, fmt.Errorf("computing [%v - %v]: %w", x.brief(), y.brief(), ErrUnderflow)
	}
	z, err := subFast(x, y)
	if err != nil {
		z = subSlow(x, y)
	}
	return z, nil
}

func subFast(x, y Natural) (Natural, error) {
	if x.wide != nil || y.wide != nil {
		return Natural{}, errFintOverflow
	}
	z, ok := x.fast.sub(y.fast)
	if !ok {
		return Natural{}, errFintOverflow
	}
	return Natural{fast: z}, nil
}

// subSlow assumes that x >= y.
func subSlow(x, y Natural) Natural {
	z := new(bint)
	z.sub(x.bint(), y.bint())
	return normalize(z)
}

// Mul returns the product of x and y.
//
// Mul returns an error if the product has more than [MaxBits] bits.
func (x Natural) Mul(y Natural) (Natural, error) {
	z, err := mulFast(x, y)
	if err != nil {
		z, err = mulSlow(x, y)
		if err != nil {
			return Natural{}, fmt.Errorf("computing [%v * %v]: %w", x.brief(), y.brief(), err)
		}
	}
	return z, nil
}

func mulFast(x, y Natural) (Natural, error) {
	// Special case
	if x.IsZero() || y.IsZero() {
		return Natural{}, nil
	}
	// General case
	if x.wide != nil || y.wide != nil {
		return Natural{}, errFintOverflow
	}
	z, ok := x.fast.mul(y.fast)
	if !ok {
		return Natural{}, errFintOverflow
	}
	return Natural{fast: z}, nil
}

func mulSlow(x, y Natural) (Natural, error) {
	// The product of an a-bit and a b-bit natural has at least a+b-1 bits.
	if n := x.BitLen() + y.BitLen() - 1; n > MaxBits {
		return Natural{}, fmt.Errorf("the result has at least %v bit(s), but a %T can have at most %v bit(s): %w", n, Natural{}, MaxBits, ErrOverflow)
	}
	z := new(bint)
	z.mul(x.bint(), y.bint())
	return newNaturalFromBint(z)
}

// Rsh (Right Shift) returns ⌊x / 2^shift⌋.
func (x Natural) Rsh(shift uint) Natural {
	if x.wide == nil {
		return Natural{fast: x.fast.rsh(shift)}
	}
	z := new(bint)
	z.rsh(x.wide, shift)
	return normalize(z)
}

// Half returns ⌊x / 2⌋.
func (x Natural) Half() Natural {
	return x.Rsh(1)
}

// Succ returns the successor of x, that is x + 1.
//
// Succ returns an error if the successor has more than [MaxBits] bits.
func (x Natural) Succ() (Natural, error) {
	return x.Add(one)
}

// Pred returns the predecessor of x, that is x - 1.
//
// Pred returns an error if x is 0.
func (x Natural) Pred() (Natural, error) {
	return x.Sub(one)
}
