package bigint

import "fmt"

// A Config bundles the strategy choices for the operations that have
// more than one algorithm: multiplication, division, parsing and
// formatting. It is a plain value; methods receive it by value and
// never modify it, so a Config can be shared freely between goroutines
// and embedded in larger structures. There is no process-wide mutable
// strategy state: the zero Config selects every strategy automatically
// from the operand lengths, and anything else is requested per call.
//
// FFTDiag, when non-nil, receives the rounding-error statistics of
// every transform multiplication issued through this Config.
type Config struct {
	MulMode       MulMode
	DivMode       DivMode
	ParseMode     ConvMode
	FormatMode    ConvMode
	AutoNormalize bool // release excess result capacity after each operation
	FFTDiag       *FFTDiagnostics
}

func (c Config) finish(z *Int) *Int {
	if c.AutoNormalize {
		z.Normalize()
	}
	return z
}

// Mul sets z to the product x*y using c's multiplication strategy and
// returns z.
func (c Config) Mul(z, x, y *Int) *Int {
	return c.finish(z.mulMode(x, y, c.MulMode, c.FFTDiag))
}

// Quo sets z to the truncated quotient x/y using c's division strategy
// and returns z. It panics with ErrDivisionByZero for y == 0.
func (c Config) Quo(z, x, y *Int) *Int {
	return c.finish(z.quoMode(x, y, c.DivMode))
}

// Rem sets z to the remainder x%y using c's division strategy and
// returns z. It panics with ErrDivisionByZero for y == 0.
func (c Config) Rem(z, x, y *Int) *Int {
	return c.finish(z.remMode(x, y, c.DivMode))
}

// QuoRem sets z to the quotient x/y and r to the remainder x%y from a
// single division pass using c's division strategy, and returns (z, r).
// It panics with ErrDivisionByZero for y == 0.
func (c Config) QuoRem(z, x, y, r *Int) (*Int, *Int) {
	q, rem := z.quoRemMode(x, y, r, c.DivMode)
	c.finish(q)
	c.finish(rem)
	return q, rem
}

// Pow sets z to x**n using c's multiplication strategy and returns z.
func (c Config) Pow(z, x *Int, n uint64) *Int {
	return c.finish(z.powMode(x, n, c.MulMode))
}

// Parse sets z to the value of s in the given base using c's parsing
// strategy, as SetString does, and returns z.
func (c Config) Parse(z *Int, s string, base int) (*Int, error) {
	return z.setString(s, base, nil, c.ParseMode)
}

// ParseAlphabet is Parse with digits mapped through alpha, as
// SetStringAlphabet does.
func (c Config) ParseAlphabet(z *Int, s string, base int, alpha *Alphabet) (*Int, error) {
	check(z)
	if alpha == nil {
		return nil, fmt.Errorf("%w: no alphabet", ErrAlphabet)
	}
	if base < 2 || base > alpha.Len() {
		return nil, fmt.Errorf("%w: base %d with a %d-character alphabet", ErrBase, base, alpha.Len())
	}
	return z.setString(s, base, alpha, c.ParseMode)
}

// Text returns the representation of x in the given base using c's
// formatting strategy, as Int.Text does.
func (c Config) Text(x *Int, base int) string {
	if x == nil {
		return "<nil>"
	}
	return string(x.abs.itoa(x.neg, base, nil, c.FormatMode))
}

// TextAlphabet is Text with digits mapped through alpha, as
// Int.TextAlphabet does.
func (c Config) TextAlphabet(x *Int, base int, alpha *Alphabet) string {
	if x == nil {
		return "<nil>"
	}
	if alpha == nil {
		panic(ErrAlphabet)
	}
	return string(x.abs.itoa(x.neg, base, alpha, c.FormatMode))
}
