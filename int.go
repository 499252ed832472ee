package bigint

import (
	"fmt"
)

// An Int represents a signed multi-precision integer.
// The zero value for an Int represents the value 0.
//
// Operations always take pointer arguments (*Int) rather
// than Int values, and each unique Int value requires
// its own unique *Int pointer. To "copy" an Int value,
// an existing (or newly allocated) Int must be set to
// a new value using the Int.Set method; shallow copies
// of Ints are not supported and may lead to errors.
//
// Methods of this form
//
//	func (z *Int) Op(x, y *Int) *Int
//
// set z to the result of x Op y and return z; x and y are read but never
// written, so operands may safely be shared between goroutines and with
// the receiver. A nil operand panics with ErrNilOperand.
type Int struct {
	neg bool // sign
	abs nat  // absolute value of the integer
}

// check panics with ErrNilOperand when any operand is nil.
func check(ops ...*Int) {
	for _, x := range ops {
		if x == nil {
			panic(ErrNilOperand)
		}
	}
}

// low64 returns the least significant 64 bits of x.
func low64(x nat) uint64 {
	if len(x) == 0 {
		return 0
	}
	v := uint64(x[0])
	if len(x) > 1 {
		v |= uint64(x[1]) << _W
	}
	return v
}

// low32 returns the least significant 32 bits of x.
func low32(x nat) uint32 {
	if len(x) == 0 {
		return 0
	}
	return uint32(x[0])
}

// New allocates and returns a new Int set to x.
func New(x int64) *Int {
	return new(Int).SetInt64(x)
}

// Sign returns -1, 0, or 1 depending on whether x < 0, x == 0, or x > 0.
func (x *Int) Sign() int {
	check(x)
	if len(x.abs) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	check(z)
	neg := false
	if x < 0 {
		neg = true
		x = -x
	}
	z.abs = z.abs.setUint64(uint64(x))
	z.neg = neg
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	check(z)
	z.abs = z.abs.setUint64(x)
	z.neg = false
	return z
}

// SetInt32 sets z to x and returns z.
func (z *Int) SetInt32(x int32) *Int { return z.SetInt64(int64(x)) }

// SetUint32 sets z to x and returns z.
func (z *Int) SetUint32(x uint32) *Int { return z.SetUint64(uint64(x)) }

// SetDigits sets z from the little-endian magnitude digits and a sign.
// The slice is copied, not retained. A nil slice panics with
// ErrNilOperand; an all-zero magnitude yields the canonical zero
// regardless of neg.
func (z *Int) SetDigits(digits []Word, neg bool) *Int {
	check(z)
	if digits == nil {
		panic(ErrNilOperand)
	}
	z.abs = z.abs.set(nat(digits)).norm()
	z.neg = neg && len(z.abs) > 0
	return z
}

// Digits returns the little-endian magnitude digits of x as a fresh
// slice, or nil if x == 0. The sign is not represented; see Sign.
func (x *Int) Digits() []Word {
	check(x)
	if len(x.abs) == 0 {
		return nil
	}
	d := make([]Word, len(x.abs))
	copy(d, x.abs)
	return d
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	check(z, x)
	if z != x {
		z.abs = z.abs.set(x.abs)
		z.neg = x.neg
	}
	return z
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	check(z, x)
	z.Set(x)
	z.neg = false
	return z
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	check(z, x)
	z.Set(x)
	z.neg = len(z.abs) > 0 && !z.neg // 0 has no sign
	return z
}

// Add sets z to the sum x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	check(z, x, y)
	neg := x.neg
	if x.neg == y.neg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		z.abs = z.abs.add(x.abs, y.abs)
	} else {
		// x + (-y) == x - y == -(y - x)
		// (-x) + y == y - x == -(x - y)
		if x.abs.cmp(y.abs) >= 0 {
			z.abs = z.abs.sub(x.abs, y.abs)
		} else {
			neg = !neg
			z.abs = z.abs.sub(y.abs, x.abs)
		}
	}
	z.neg = len(z.abs) > 0 && neg // 0 has no sign
	return z
}

// Sub sets z to the difference x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	check(z, x, y)
	neg := x.neg
	if x.neg != y.neg {
		// x - (-y) == x + y
		// (-x) - y == -(x + y)
		z.abs = z.abs.add(x.abs, y.abs)
	} else {
		// x - y == x - y == -(y - x)
		// (-x) - (-y) == y - x == -(x - y)
		if x.abs.cmp(y.abs) >= 0 {
			z.abs = z.abs.sub(x.abs, y.abs)
		} else {
			neg = !neg
			z.abs = z.abs.sub(y.abs, x.abs)
		}
	}
	z.neg = len(z.abs) > 0 && neg // 0 has no sign
	return z
}

// Mul sets z to the product x*y and returns z.
// The multiplication strategy is selected automatically from the operand
// lengths; use Config.Mul to force a particular strategy.
func (z *Int) Mul(x, y *Int) *Int {
	return z.mulMode(x, y, MulAuto, nil)
}

func (z *Int) mulMode(x, y *Int, mode MulMode, diag *FFTDiagnostics) *Int {
	check(z, x, y)
	z.abs = z.abs.mulDiag(x.abs, y.abs, mode, diag)
	z.neg = len(z.abs) > 0 && x.neg != y.neg // 0 has no sign
	return z
}

// Quo sets z to the quotient x/y for y != 0 and returns z.
// Quo implements truncated division (like Go); see QuoRem for more
// details. Quo panics with ErrDivisionByZero for y == 0.
func (z *Int) Quo(x, y *Int) *Int {
	return z.quoMode(x, y, DivAuto)
}

func (z *Int) quoMode(x, y *Int, mode DivMode) *Int {
	check(z, x, y)
	z.abs, _ = z.abs.div(nil, x.abs, y.abs, mode)
	z.neg = len(z.abs) > 0 && x.neg != y.neg // 0 has no sign
	return z
}

// Rem sets z to the remainder x%y for y != 0 and returns z.
// Rem implements truncated modulus (like Go); see QuoRem for more
// details. Rem panics with ErrDivisionByZero for y == 0.
func (z *Int) Rem(x, y *Int) *Int {
	return z.remMode(x, y, DivAuto)
}

func (z *Int) remMode(x, y *Int, mode DivMode) *Int {
	check(z, x, y)
	_, z.abs = nat(nil).div(z.abs, x.abs, y.abs, mode)
	z.neg = len(z.abs) > 0 && x.neg // 0 has no sign
	return z
}

// QuoRem sets z to the quotient x/y and r to the remainder x%y
// and returns the pair (z, r) for y != 0. Both values are produced from
// a single division pass. QuoRem panics with ErrDivisionByZero for
// y == 0.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// so that |r| < |y| and r has the sign of x (or is zero).
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	return z.quoRemMode(x, y, r, DivAuto)
}

func (z *Int) quoRemMode(x, y, r *Int, mode DivMode) (*Int, *Int) {
	check(z, x, y, r)
	z.abs, r.abs = z.abs.div(r.abs, x.abs, y.abs, mode)
	z.neg, r.neg = len(z.abs) > 0 && x.neg != y.neg, len(r.abs) > 0 && x.neg // 0 has no sign
	return z, r
}

// Pow sets z to x**n and returns z. Pow(0, 0) is 1.
func (z *Int) Pow(x *Int, n uint64) *Int {
	return z.powMode(x, n, MulAuto)
}

func (z *Int) powMode(x *Int, n uint64, mode MulMode) *Int {
	check(z, x)
	if n == 0 {
		z.abs = z.abs.setWord(1)
		z.neg = false
		return z
	}
	z.abs = z.abs.expNN(x.abs, nat(nil).setUint64(n), mode)
	z.neg = len(z.abs) > 0 && x.neg && n&1 == 1 // 0 has no sign
	return z
}

// Lsh sets z = x << n and returns z.
func (z *Int) Lsh(x *Int, n uint) *Int {
	check(z, x)
	z.abs = z.abs.shl(x.abs, n)
	z.neg = x.neg
	return z
}

// Rsh sets z = x >> n and returns z. The shift is arithmetic: it floors,
// preserving the sign of x.
func (z *Int) Rsh(x *Int, n uint) *Int {
	check(z, x)
	if x.neg {
		// (-x) >> s == ^(x-1) >> s == ^((x-1) >> s) == -(((x-1) >> s) + 1)
		t := z.abs.sub(x.abs, natOne) // no underflow because |x| > 0
		t = t.shr(t, n)
		z.abs = t.add(t, natOne)
		z.neg = true // z cannot be zero if x is negative
		return z
	}
	z.abs = z.abs.shr(x.abs, n)
	z.neg = false
	return z
}

// And sets z = x & y and returns z.
func (z *Int) And(x, y *Int) *Int {
	check(z, x, y)
	if x.neg == y.neg {
		if x.neg {
			// (-x) & (-y) == ^(x-1) & ^(y-1) == ^((x-1) | (y-1)) == -(((x-1) | (y-1)) + 1)
			x1 := nat(nil).sub(x.abs, natOne)
			y1 := nat(nil).sub(y.abs, natOne)
			z.abs = z.abs.add(z.abs.or(x1, y1), natOne)
			z.neg = true // z cannot be zero if x and y are negative
			return z
		}
		// x & y == x & y
		z.abs = z.abs.and(x.abs, y.abs)
		z.neg = false
		return z
	}
	// x.neg != y.neg
	if x.neg {
		x, y = y, x // & is symmetric
	}
	// x & (-y) == x & ^(y-1) == x &^ (y-1)
	y1 := nat(nil).sub(y.abs, natOne)
	z.abs = z.abs.andNot(x.abs, y1)
	z.neg = false
	return z
}

// AndNot sets z = x &^ y and returns z.
func (z *Int) AndNot(x, y *Int) *Int {
	check(z, x, y)
	if x.neg == y.neg {
		if x.neg {
			// (-x) &^ (-y) == ^(x-1) &^ ^(y-1) == ^(x-1) & (y-1) == (y-1) &^ (x-1)
			x1 := nat(nil).sub(x.abs, natOne)
			y1 := nat(nil).sub(y.abs, natOne)
			z.abs = z.abs.andNot(y1, x1)
			z.neg = false
			return z
		}
		// x &^ y == x &^ y
		z.abs = z.abs.andNot(x.abs, y.abs)
		z.neg = false
		return z
	}
	// x.neg != y.neg
	if x.neg {
		// (-x) &^ y == ^(x-1) &^ y == ^(x-1) & ^y == ^((x-1) | y) == -(((x-1) | y) + 1)
		x1 := nat(nil).sub(x.abs, natOne)
		z.abs = z.abs.add(z.abs.or(x1, y.abs), natOne)
		z.neg = true // z cannot be zero if x is negative and y is positive
		return z
	}
	// x &^ (-y) == x &^ ^(y-1) == x & (y-1)
	y1 := nat(nil).sub(y.abs, natOne)
	z.abs = z.abs.and(x.abs, y1)
	z.neg = false
	return z
}

// Or sets z = x | y and returns z.
func (z *Int) Or(x, y *Int) *Int {
	check(z, x, y)
	if x.neg == y.neg {
		if x.neg {
			// (-x) | (-y) == ^(x-1) | ^(y-1) == ^((x-1) & (y-1)) == -(((x-1) & (y-1)) + 1)
			x1 := nat(nil).sub(x.abs, natOne)
			y1 := nat(nil).sub(y.abs, natOne)
			z.abs = z.abs.add(z.abs.and(x1, y1), natOne)
			z.neg = true // z cannot be zero if x and y are negative
			return z
		}
		// x | y == x | y
		z.abs = z.abs.or(x.abs, y.abs)
		z.neg = false
		return z
	}
	// x.neg != y.neg
	if x.neg {
		x, y = y, x // | is symmetric
	}
	// x | (-y) == x | ^(y-1) == ^((y-1) &^ x) == -(((y-1) &^ x) + 1)
	y1 := nat(nil).sub(y.abs, natOne)
	z.abs = z.abs.add(z.abs.andNot(y1, x.abs), natOne)
	z.neg = true // z cannot be zero if one of x or y is negative
	return z
}

// Xor sets z = x ^ y and returns z.
func (z *Int) Xor(x, y *Int) *Int {
	check(z, x, y)
	if x.neg == y.neg {
		if x.neg {
			// (-x) ^ (-y) == ^(x-1) ^ ^(y-1) == (x-1) ^ (y-1)
			x1 := nat(nil).sub(x.abs, natOne)
			y1 := nat(nil).sub(y.abs, natOne)
			z.abs = z.abs.xor(x1, y1)
			z.neg = false
			return z
		}
		// x ^ y == x ^ y
		z.abs = z.abs.xor(x.abs, y.abs)
		z.neg = false
		return z
	}
	// x.neg != y.neg
	if x.neg {
		x, y = y, x // ^ is symmetric
	}
	// x ^ (-y) == x ^ ^(y-1) == ^(x ^ (y-1)) == -((x ^ (y-1)) + 1)
	y1 := nat(nil).sub(y.abs, natOne)
	z.abs = z.abs.add(z.abs.xor(x.abs, y1), natOne)
	z.neg = true // z cannot be zero if only one of x or y is negative
	return z
}

// Not sets z = ^x and returns z.
func (z *Int) Not(x *Int) *Int {
	check(z, x)
	if x.neg {
		// ^(-x) == ^(^(x-1)) == x-1
		z.abs = z.abs.sub(x.abs, natOne)
		z.neg = false
		return z
	}
	// ^x == -x-1 == -(x+1)
	z.abs = z.abs.add(x.abs, natOne)
	z.neg = true // z cannot be zero if x is positive
	return z
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Int) Cmp(y *Int) (r int) {
	check(x, y)
	// x cmp y == x cmp y
	// x cmp (-y) == x
	// (-x) cmp y == y
	// (-x) cmp (-y) == -(x cmp y)
	switch {
	case x == y:
		// nothing to do
	case x.neg == y.neg:
		r = x.abs.cmp(y.abs)
		if x.neg {
			r = -r
		}
	case x.neg:
		r = -1
	default:
		r = 1
	}
	return
}

// CmpAbs compares the absolute values of x and y and returns:
//
//	-1 if |x| <  |y|
//	 0 if |x| == |y|
//	+1 if |x| >  |y|
func (x *Int) CmpAbs(y *Int) int {
	check(x, y)
	return x.abs.cmp(y.abs)
}

// BitLen returns the length of the absolute value of x in bits.
// The bit length of 0 is 0.
func (x *Int) BitLen() int {
	check(x)
	return x.abs.bitLen()
}

// Bit returns the value of the i'th bit of x. That is, it
// returns (x>>i)&1. The bit index i must be >= 0.
func (x *Int) Bit(i int) uint {
	check(x)
	if i == 0 {
		// optimization for common case: odd/even test of x
		if len(x.abs) > 0 {
			return uint(x.abs[0] & 1)
		}
		return 0
	}
	if i < 0 {
		panic("negative bit index")
	}
	if x.neg {
		t := nat(nil).sub(x.abs, natOne)
		return t.bit(uint(i)) ^ 1
	}
	return x.abs.bit(uint(i))
}

// SetBit sets z to x, with x's i'th bit set to b (0 or 1).
// That is, if b is 1 SetBit sets z = x | (1 << i);
// if b is 0 SetBit sets z = x &^ (1 << i). If b is not 0 or 1,
// SetBit will panic.
func (z *Int) SetBit(x *Int, i int, b uint) *Int {
	check(z, x)
	if i < 0 {
		panic("negative bit index")
	}
	if x.neg {
		t := z.abs.sub(x.abs, natOne)
		t = t.setBit(t, uint(i), b^1)
		z.abs = t.add(t, natOne)
		z.neg = len(z.abs) > 0
		return z
	}
	z.abs = z.abs.setBit(x.abs, uint(i), b)
	z.neg = false
	return z
}

// Normalize trims high zero digits from z's magnitude and releases any
// excess buffer capacity. Arithmetic results are always digit-normalized
// already; Normalize additionally gives up the slack capacity the
// operation buffers keep for reuse.
func (z *Int) Normalize() *Int {
	check(z)
	z.abs = z.abs.norm().shrink()
	if len(z.abs) == 0 {
		z.neg = false
	}
	return z
}

// Int64 returns the int64 formed from the low 64 bits of x's magnitude
// with x's sign applied; higher bits are discarded.
func (x *Int) Int64() int64 {
	check(x)
	v := int64(low64(x.abs))
	if x.neg {
		v = -v
	}
	return v
}

// Uint64 returns the uint64 formed from the low 64 bits of x's
// magnitude; the sign and higher bits are discarded.
func (x *Int) Uint64() uint64 {
	check(x)
	return low64(x.abs)
}

// Int32 returns the int32 formed from the low 32 bits of x's magnitude
// with x's sign applied; higher bits are discarded.
func (x *Int) Int32() int32 {
	check(x)
	v := int32(low32(x.abs))
	if x.neg {
		v = -v
	}
	return v
}

// Uint32 returns the uint32 formed from the low 32 bits of x's
// magnitude; the sign and higher bits are discarded.
func (x *Int) Uint32() uint32 {
	check(x)
	return low32(x.abs)
}

// IsInt64 reports whether x can be represented as an int64 without
// truncation.
func (x *Int) IsInt64() bool {
	check(x)
	if len(x.abs) <= 2 {
		v := low64(x.abs)
		return v <= 1<<63-1 || x.neg && v == 1<<63
	}
	return false
}

// IsUint64 reports whether x can be represented as a uint64 without
// truncation.
func (x *Int) IsUint64() bool {
	check(x)
	return !x.neg && len(x.abs) <= 2
}

// SetBytes interprets buf as the bytes of a big-endian unsigned
// integer, sets z to that value, and returns z.
func (z *Int) SetBytes(buf []byte) *Int {
	check(z)
	z.abs = z.abs.setBytes(buf)
	z.neg = false
	return z
}

// Bytes returns the absolute value of x as a big-endian byte slice.
func (x *Int) Bytes() []byte {
	check(x)
	buf := make([]byte, len(x.abs)*_S)
	return buf[x.abs.bytes(buf):]
}

// SetString sets z to the value of s, interpreted in the given base
// using the default alphabet, and returns z. s may carry surrounding
// white space and a leading sign character.
//
// The base must be 0 or between 2 and MaxBase. For base 0 the actual
// base is inferred from the string prefix: "0x" or "0X" selects base 16,
// a leading "0" followed by more digits selects base 8, and base 10
// otherwise. For bases above 36 upper-case letters extend the digit set,
// so parsing is case-sensitive; up to base 36 it is not.
//
// On error z is left unchanged; the error wraps ErrSyntax for malformed
// input and ErrBase for an out-of-range base.
func (z *Int) SetString(s string, base int) (*Int, error) {
	return z.setString(s, base, nil, ConvAuto)
}

// SetStringAlphabet is like SetString but maps characters through
// alpha instead of the default alphabet. The base must be between 2 and
// alpha.Len(); only the first base characters of alpha are digits. A nil
// alphabet fails with ErrAlphabet.
func (z *Int) SetStringAlphabet(s string, base int, alpha *Alphabet) (*Int, error) {
	check(z)
	if alpha == nil {
		return nil, fmt.Errorf("%w: no alphabet", ErrAlphabet)
	}
	if base < 2 || base > alpha.Len() {
		return nil, fmt.Errorf("%w: base %d with a %d-character alphabet", ErrBase, base, alpha.Len())
	}
	return z.setString(s, base, alpha, ConvAuto)
}

func (z *Int) setString(s string, base int, alpha *Alphabet, mode ConvMode) (*Int, error) {
	check(z)
	abs, neg, _, err := parse(s, base, alpha, mode)
	if err != nil {
		return nil, err
	}
	z.abs, z.neg = abs, neg
	return z, nil
}

// String returns the decimal representation of x, as by Text(10).
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}
	return string(x.abs.itoa(x.neg, 10, nil, ConvAuto))
}

// Text returns the representation of x in the given base using the
// default alphabet. The base must be between 2 and MaxBase; digit values
// 10 to 35 use the lower-case letters 'a' to 'z' and higher values the
// upper-case letters. Text panics with ErrBase for an invalid base.
func (x *Int) Text(base int) string {
	if x == nil {
		return "<nil>"
	}
	return string(x.abs.itoa(x.neg, base, nil, ConvAuto))
}

// TextAlphabet returns the representation of x in the given base with
// digits mapped through alpha; zero formats as the alphabet's first
// character. The base must be between 2 and alpha.Len(). TextAlphabet
// panics with ErrAlphabet for a nil alphabet and ErrBase for an invalid
// base.
func (x *Int) TextAlphabet(base int, alpha *Alphabet) string {
	if x == nil {
		return "<nil>"
	}
	if alpha == nil {
		panic(ErrAlphabet)
	}
	return string(x.abs.itoa(x.neg, base, alpha, ConvAuto))
}

// Append appends the text of x in the given base to buf and returns the
// extended buffer, as with Text.
func (x *Int) Append(buf []byte, base int) []byte {
	if x == nil {
		return append(buf, "<nil>"...)
	}
	return append(buf, x.abs.itoa(x.neg, base, nil, ConvAuto)...)
}

// Format implements fmt.Formatter. It accepts the verbs 'b' (binary),
// 'o' (octal with 0 prefix for '#'), 'O' (octal with 0o prefix),
// 'd' (decimal), 'x' and 'X' (hexadecimal), and 's' and 'v' as synonyms
// for 'd'. The flags '+', ' ', '#', '-', '0', a minimum field width, and
// a precision (minimum digit count) are supported as for the built-in
// integer types.
func (x *Int) Format(s fmt.State, ch rune) {
	var base int
	switch ch {
	case 'b':
		base = 2
	case 'o', 'O':
		base = 8
	case 'd', 's', 'v':
		base = 10
	case 'x', 'X':
		base = 16
	default:
		// unknown format
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", ch, x.String())
		return
	}

	if x == nil {
		fmt.Fprint(s, "<nil>")
		return
	}

	// determine sign character
	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case s.Flag('+'): // supersedes ' ' when both specified
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	// determine prefix characters for indicating output base
	prefix := ""
	if s.Flag('#') {
		switch ch {
		case 'b': // binary
			prefix = "0b"
		case 'o': // octal
			prefix = "0"
		case 'x': // hexadecimal
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}
	if ch == 'O' {
		prefix = "0o"
	}

	digs := x.abs.utoa(base, nil, ConvAuto)
	if ch == 'X' {
		// upper-case hex digits
		for i, d := range digs {
			if 'a' <= d && d <= 'z' {
				digs[i] = 'A' + (d - 'a')
			}
		}
	}

	// number of characters for the three classes of number padding
	var left int  // space characters to left of digits for right justification ("%8d")
	var zeros int // zero characters (actually '0') as left-most digits ("%.8d")
	var right int // space characters to right of digits for left justification ("%-8d")

	// determine number padding from precision: the least number of digits to output
	precision, precisionSet := s.Precision()
	if precisionSet {
		switch {
		case len(digs) < precision:
			zeros = precision - len(digs) // count of zero padding
		case len(digs) == 1 && digs[0] == '0' && precision == 0:
			return // print nothing if zero value (x == 0) and zero precision ("." or ".0")
		}
	}

	// determine field width padding from minimum width
	length := len(sign) + len(prefix) + zeros + len(digs)
	if width, widthSet := s.Width(); widthSet && length < width { // pad as specified
		switch d := width - length; {
		case s.Flag('-'):
			// pad on the right with spaces; supersedes '0' when both specified
			right = d
		case s.Flag('0') && !precisionSet:
			// pad with zeros unless precision also specified
			zeros = d
		default:
			// pad on the left with spaces
			left = d
		}
	}

	// print number as [left pad][sign][prefix][zero pad][digits][right pad]
	writeMultiple(s, " ", left)
	fmt.Fprint(s, sign)
	fmt.Fprint(s, prefix)
	writeMultiple(s, "0", zeros)
	s.Write(digs)
	writeMultiple(s, " ", right)
}

// writeMultiple writes text count times to s.
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}
