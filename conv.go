package bigint

import (
	"fmt"
	"math"
	"strings"
	"sync"
)

// digits is the default conversion alphabet: like strconv, digit values
// below 36 parse case-insensitively, while bases above 36 distinguish
// lower and upper case.
const digits = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MaxBase is the largest number base accepted for string conversions
// with the default alphabet.
const MaxBase = 10 + ('z' - 'a' + 1) + ('Z' - 'A' + 1)
const maxBaseSmall = 10 + ('z' - 'a' + 1)

// A ConvMode selects the string-conversion strategy, for parsing and
// formatting alike. The zero value (ConvAuto) switches from the linear
// strategy to divide-and-conquer above a fixed digit count.
type ConvMode uint8

const (
	ConvAuto      ConvMode = iota // select by digit count
	ConvLinear                    // accumulate/emit one word-sized group at a time
	ConvRecursive                 // split the digit string and recurse
)

func (m ConvMode) String() string {
	switch m {
	case ConvAuto:
		return "auto"
	case ConvLinear:
		return "linear"
	case ConvRecursive:
		return "recursive"
	}
	return "unknown"
}

// convRecThreshold is the digit count above which ConvAuto parses
// recursively; convRecLeaf is the leaf size used when recursion is
// forced.
const (
	convRecThreshold = 2048
	convRecLeaf      = 64
)

// An Alphabet is a bijective mapping between characters and digit values
// for string conversion in bases 2 through Len. It is immutable once
// built and safe for concurrent use.
type Alphabet struct {
	chars string
	val   [256]int16 // digit value per character, -1 if absent
}

// NewAlphabet builds an alphabet from chars, where chars[i] is the digit
// character for value i. It returns ErrAlphabet if chars is empty, holds
// fewer than 2 or more than 256 characters, or contains a duplicate.
func NewAlphabet(chars string) (*Alphabet, error) {
	if len(chars) < 2 || len(chars) > 256 {
		return nil, fmt.Errorf("%w: need 2 to 256 characters, got %d", ErrAlphabet, len(chars))
	}
	a := &Alphabet{chars: chars}
	for i := range a.val {
		a.val[i] = -1
	}
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if a.val[c] >= 0 {
			return nil, fmt.Errorf("%w: duplicate character %q", ErrAlphabet, c)
		}
		a.val[c] = int16(i)
	}
	return a, nil
}

// Len returns the number of characters in a, which is also the largest
// base a supports.
func (a *Alphabet) Len() int { return len(a.chars) }

// Chars returns the alphabet's characters in digit-value order.
func (a *Alphabet) Chars() string { return a.chars }

func (a *Alphabet) digit(c byte) int { return int(a.val[c]) }
func (a *Alphabet) char(d Word) byte { return a.chars[d] }

// asciiDigit maps c through the default alphabet for the given base:
// case-insensitive up to base 36, case-sensitive above. It returns a
// value >= base for characters outside the alphabet.
func asciiDigit(c byte, b int) Word {
	switch {
	case '0' <= c && c <= '9':
		return Word(c - '0')
	case 'a' <= c && c <= 'z':
		return Word(c - 'a' + 10)
	case 'A' <= c && c <= 'Z':
		if b <= maxBaseSmall {
			return Word(c - 'A' + 10)
		}
		return Word(c - 'A' + maxBaseSmall)
	}
	return MaxBase + 1
}

// maxPow returns (b**n, n) such that b**n is the largest power of b that
// fits in a Word. In other words, at most n digits in base b fit into one
// Word.
func maxPow(b Word) (p Word, n int) {
	p, n = b, 1
	for max := Word(_M) / b; p <= max; {
		p *= b
		n++
	}
	return
}

// pow returns x**n for n > 0, where n fits the result in a Word.
func pow(x Word, n int) (p Word) {
	p = 1
	for n > 0 {
		if n&1 != 0 {
			p *= x
		}
		x *= x
		n >>= 1
	}
	return
}

// parse converts s into a magnitude and sign.
//
// It trims surrounding white space, then accepts an optional leading '+'
// or '-'. For base 0 the actual base is determined by the prefix: "0x" or
// "0X" selects base 16 and a leading "0" followed by more digits selects
// base 8; otherwise the base is 10. For base != 0 no prefix is
// recognized. The remaining characters map through alpha, or through the
// default alphabet if alpha is nil. The entire remainder must consist of
// digits of the selected base; otherwise parse fails with an error
// wrapping ErrSyntax. An out-of-range base fails with ErrBase, a bad
// alphabet with ErrAlphabet.
func parse(s string, base int, alpha *Alphabet, mode ConvMode) (z nat, neg bool, b int, err error) {
	orig := s
	s = strings.TrimSpace(s)

	if s != "" {
		switch s[0] {
		case '+':
			s = s[1:]
		case '-':
			neg = true
			s = s[1:]
		}
	}
	if s == "" {
		return nil, false, 0, fmt.Errorf("bigint: cannot parse %q: no digits: %w", orig, ErrSyntax)
	}

	// determine actual base
	b = base
	switch {
	case base == 0:
		b = 10
		if s[0] == '0' {
			switch {
			case len(s) >= 2 && (s[1] == 'x' || s[1] == 'X'):
				b = 16
				s = s[2:]
			case len(s) > 1:
				b = 8
				s = s[1:]
			}
		}
	case alpha != nil:
		if base < 2 || base > alpha.Len() {
			return nil, false, 0, fmt.Errorf("%w: base %d with a %d-character alphabet", ErrBase, base, alpha.Len())
		}
	case base < 2 || base > MaxBase:
		return nil, false, 0, fmt.Errorf("%w: %d", ErrBase, base)
	}
	if s == "" {
		return nil, false, 0, fmt.Errorf("bigint: cannot parse %q: no digits after base prefix: %w", orig, ErrSyntax)
	}

	// map characters to digit values
	ds := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		var d Word
		if alpha != nil {
			v := alpha.digit(s[i])
			if v < 0 {
				d = Word(alpha.Len())
			} else {
				d = Word(v)
			}
		} else {
			d = asciiDigit(s[i], b)
		}
		if d >= Word(b) {
			return nil, false, 0, fmt.Errorf("bigint: cannot parse %q: invalid character %q: %w", orig, s[i], ErrSyntax)
		}
		ds[i] = byte(d)
	}

	cut := convRecThreshold
	switch mode {
	case ConvLinear:
		cut = 0
	case ConvRecursive:
		cut = convRecLeaf
	}
	z = scanDigits(ds, Word(b), cut)
	if len(z) == 0 {
		neg = false // 0 has no sign
	}
	return z, neg, b, nil
}

// scanDigits converts the big-endian digit values ds, already validated
// against base b, into a magnitude. Strings longer than cut are split in
// half, the halves converted independently, and the results combined as
// hi·b^(len(lo)) + lo; cut <= 0 disables splitting.
func scanDigits(ds []byte, b Word, cut int) nat {
	if cut <= 0 || len(ds) <= cut {
		return scanDigitsLinear(ds, b)
	}

	half := len(ds) >> 1
	hi := scanDigits(ds[:len(ds)-half], b, cut)
	lo := scanDigits(ds[len(ds)-half:], b, cut)

	bp := nat(nil).expNN(nat{b}, nat(nil).setUint64(uint64(half)), MulAuto)
	z := nat(nil).mul(hi, bp, MulAuto)
	return z.add(z, lo)
}

// scanDigitsLinear collects digits in groups of at most n digits in di
// and then uses mulAddWW for every such group to add them to the result.
func scanDigitsLinear(ds []byte, b Word) nat {
	var z nat
	bb, n := maxPow(b)
	for len(ds) >= n {
		di := Word(0)
		for _, d := range ds[:n] {
			di = di*b + Word(d)
		}
		z = z.mulAddWW(z, bb, di)
		ds = ds[n:]
	}
	if len(ds) > 0 {
		di := Word(0)
		for _, d := range ds {
			di = di*b + Word(d)
		}
		z = z.mulAddWW(z, pow(b, len(ds)), di)
	}
	return z
}

// utoa converts x to an ASCII representation in the given base;
// base must be between 2 and MaxBase (or alpha.Len()), inclusive.
func (x nat) utoa(base int, alpha *Alphabet, mode ConvMode) []byte {
	return x.itoa(false, base, alpha, mode)
}

// itoa is like utoa but it prepends a '-' if neg && x != 0.
func (x nat) itoa(neg bool, base int, alpha *Alphabet, mode ConvMode) []byte {
	if alpha == nil {
		if base < 2 || base > MaxBase {
			panic(ErrBase)
		}
	} else {
		if base < 2 || base > alpha.Len() {
			panic(ErrBase)
		}
	}

	var zeroChar byte = '0'
	if alpha != nil {
		zeroChar = alpha.char(0)
	}

	// x == 0
	if len(x) == 0 {
		return []byte{zeroChar}
	}
	// len(x) > 0

	// allocate buffer for conversion
	i := int(float64(x.bitLen())/math.Log2(float64(base))) + 1 // off by 1 at most
	if neg {
		i++
	}
	s := make([]byte, i)

	b := Word(base)
	bb, ndigits := maxPow(b)

	// construct table of successive squares of bb*leafSize to use in
	// subdivisions; result (table != nil) <=> (len(x) > leafSize > 0)
	var table []divisor
	if mode != ConvLinear {
		table = divisors(len(x), b, ndigits, bb)
	}

	// preserve x, create local copy for use by convertWords
	q := nat(nil).set(x)

	// convert q to string s in base b
	q.convertWords(s, b, ndigits, bb, alpha, table)

	// strip leading zeros
	// (x != 0; thus s must contain at least one non-zero digit
	// and the loop will terminate)
	i = 0
	for s[i] == zeroChar {
		i++
	}

	if neg {
		i--
		s[i] = '-'
	}

	return s[i:]
}

// convertWords writes the digits of q into the low end of s.
//
// The iterative method processes one word-sized block of ndigits output
// digits per division by bb. For large q a divisor table splits q
// recursively into blocks near sqrt(q) first, so the overall cost tracks
// the division engine instead of growing quadratically; each low block is
// left-padded with zero digits to the divisor's fixed digit count.
func (q nat) convertWords(s []byte, b Word, ndigits int, bb Word, alpha *Alphabet, table []divisor) {
	// split larger blocks recursively
	if table != nil {
		// len(q) > leafSize > 0
		var r nat
		index := len(table) - 1
		for len(q) > leafSize {
			// find divisor close to sqrt(q) if possible, but in any case < q
			maxLength := q.bitLen()     // ~= log2 q, or at of least largest possible q of this bit length
			minLength := maxLength >> 1 // ~= log2 sqrt(q)
			for index > 0 && table[index-1].nbits > minLength {
				index-- // desired
			}
			if table[index].nbits >= maxLength && table[index].bbb.cmp(q) >= 0 {
				index--
				if index < 0 {
					panic("internal inconsistency")
				}
			}

			// split q into the two digit number (q'*bbb + r) to form independent subblocks
			q, r = q.div(r, q, table[index].bbb, DivAuto)

			// convert subblocks and collect results in s[:h] and s[h:]
			h := len(s) - table[index].ndigits
			r.convertWords(s[h:], b, ndigits, bb, alpha, table[0:index])
			s = s[:h] // == q.convertWords(s, b, ndigits, bb, alpha, table[0:index+1])
		}
	}

	// having split any large blocks now process the remaining (small) block iteratively
	i := len(s)
	var r Word
	if b == 10 && alpha == nil {
		// hard-coding for 10 here speeds this up by 1.25x (allows for / and % by constants)
		for len(q) > 0 {
			// extract least significant, base bb "digit"
			q, r = q.divW(q, bb)
			for j := 0; j < ndigits && i > 0; j++ {
				i--
				// avoid % computation since r%10 == r - int(r/10)*10;
				// this appears to be faster for large conversions
				t := r / 10
				s[i] = '0' + byte(r-t*10)
				r = t
			}
		}
	} else {
		for len(q) > 0 {
			// extract least significant, base bb "digit"
			q, r = q.divW(q, bb)
			for j := 0; j < ndigits && i > 0; j++ {
				i--
				if alpha != nil {
					s[i] = alpha.char(r % b)
				} else {
					s[i] = digits[r%b]
				}
				r /= b
			}
		}
	}

	// prepend high-order zeros
	zeroChar := byte('0')
	if alpha != nil {
		zeroChar = alpha.char(0)
	}
	for i > 0 { // while need more leading zeros
		i--
		s[i] = zeroChar
	}
}

// leafSize is the number of words below which blocks are converted
// iteratively.
const leafSize = 8

type divisor struct {
	bbb     nat // divisor
	nbits   int // bit length of divisor (discounting leading zeros) ~= log2(bbb)
	ndigits int // digit length of divisor in terms of output base digits
}

var cacheBase10 struct {
	sync.Mutex
	table [64]divisor // cached divisors for base 10
}

// expWW computes x**y
func (z nat) expWW(x, y Word) nat {
	return z.expNN(nat(nil).setWord(x), nat(nil).setWord(y), MulAuto)
}

// construct table of powers of bb*leafSize to use in subdivisions
func divisors(m int, b Word, ndigits int, bb Word) []divisor {
	// only compute table when recursive conversion is enabled and x is large
	if m <= leafSize {
		return nil
	}

	// determine k where (bb**leafSize)**(2**k) >= sqrt(x)
	k := 1
	for words := leafSize; words < m>>1 && k < len(cacheBase10.table); words <<= 1 {
		k++
	}

	// reuse and extend existing table of divisors or create new table as appropriate
	var table []divisor // for b == 10, table overlaps with cacheBase10.table
	if b == 10 {
		cacheBase10.Lock()
		table = cacheBase10.table[0:k] // reuse old table for this conversion
	} else {
		table = make([]divisor, k) // create new table for this conversion
	}

	// extend table
	if table[k-1].ndigits == 0 {
		// add new entries as needed
		var larger nat
		for i := 0; i < k; i++ {
			if table[i].ndigits == 0 {
				if i == 0 {
					table[0].bbb = nat(nil).expWW(bb, leafSize)
					table[0].ndigits = ndigits * leafSize
				} else {
					table[i].bbb = nat(nil).mul(table[i-1].bbb, table[i-1].bbb, MulAuto)
					table[i].ndigits = 2 * table[i-1].ndigits
				}

				// optimization: exploit aggregated extra bits in macro blocks
				larger = nat(nil).set(table[i].bbb)
				for mulAddVWW(larger, larger, b, 0) == 0 {
					table[i].bbb = table[i].bbb.set(larger)
					table[i].ndigits++
				}

				table[i].nbits = table[i].bbb.bitLen()
			}
		}
	}

	if b == 10 {
		cacheBase10.Unlock()
	}

	return table
}
