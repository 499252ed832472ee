// Package context provides error-capturing contexts for Ints.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *bigint.Int
//
// create a new bigint.Int set to the value of x.
//
// Operators that set a receiver z to a function of other integer
// arguments like:
//
//	func (c *Context) UnaryOp(z, x *bigint.Int) *bigint.Int
//	func (c *Context) BinaryOp(z, x, y *bigint.Int) *bigint.Int
//
// set z to the result of z.Op(args), computed with c's strategy
// configuration, and return z.
//
// A Context catches arithmetic error panics such as division by zero
// and nil operands: if an operation panics with one of the package
// bigint error values, the operation silently succeeds with an
// undefined result. Further operations with the context are no-ops
// (they simply return the receiver z) until (*Context).Err is called to
// check for errors. This gives panic-free call chains:
//
//	q := c.Quo(new(bigint.Int), a, b)
//	r := c.Rem(new(bigint.Int), a, b)
//	if err := c.Err(); err != nil {
//		// q and r are undefined
//	}
package context

import (
	"errors"

	"github.com/arvidh/bigint"
)

const handleErrors = true

// A Context is a wrapper around Ints that facilitates management of
// strategy configuration and error handling. The configuration is fixed
// at creation time; only the captured error state is mutable, so a
// Context must not be shared between goroutines.
type Context struct {
	cfg bigint.Config
	err error
}

// New creates a new context carrying the given strategy configuration.
// The zero Config selects every strategy automatically.
func New(cfg bigint.Config) *Context {
	return &Context{cfg: cfg}
}

// Config returns the strategy configuration of c.
func (c *Context) Config() bigint.Config {
	return c.cfg
}

// Err returns the first error encountered since the last call to Err
// and clears the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// capture recovers a package bigint error panic into c's error slot.
// Any other panic value is re-raised.
func (c *Context) capture() {
	if p := recover(); p != nil {
		e, ok := p.(error)
		if !ok || !errors.As(e, &c.err) {
			panic(p)
		}
	}
}

// New returns a new bigint.Int with value 0.
func (c *Context) New() *bigint.Int {
	return new(bigint.Int)
}

// NewInt64 returns a new *bigint.Int set to the value of x.
func (c *Context) NewInt64(x int64) *bigint.Int {
	return bigint.New(x)
}

// NewUint64 returns a new *bigint.Int set to the value of x.
func (c *Context) NewUint64(x uint64) *bigint.Int {
	return c.New().SetUint64(x)
}

// NewString returns a new *bigint.Int set to the value of s, parsed in
// the given base with c's parsing strategy. If parsing fails, the error
// is stored in c's error slot and the result is nil.
func (c *Context) NewString(s string, base int) *bigint.Int {
	if handleErrors && c.err != nil {
		return nil
	}
	z, err := c.cfg.Parse(c.New(), s, base)
	if err != nil {
		c.err = err
		return nil
	}
	return z
}

// Add sets z to the sum x+y and returns z.
func (c *Context) Add(z, x, y *bigint.Int) (r *bigint.Int) {
	if handleErrors {
		if c.err != nil {
			return z
		}
		defer c.capture()
	}
	r = z
	return z.Add(x, y)
}

// Sub sets z to the difference x-y and returns z.
func (c *Context) Sub(z, x, y *bigint.Int) (r *bigint.Int) {
	if handleErrors {
		if c.err != nil {
			return z
		}
		defer c.capture()
	}
	r = z
	return z.Sub(x, y)
}

// Mul sets z to the product x*y and returns z.
func (c *Context) Mul(z, x, y *bigint.Int) (r *bigint.Int) {
	if handleErrors {
		if c.err != nil {
			return z
		}
		defer c.capture()
	}
	r = z
	return c.cfg.Mul(z, x, y)
}

// Quo sets z to the truncated quotient x/y and returns z.
func (c *Context) Quo(z, x, y *bigint.Int) (r *bigint.Int) {
	if handleErrors {
		if c.err != nil {
			return z
		}
		defer c.capture()
	}
	r = z
	return c.cfg.Quo(z, x, y)
}

// Rem sets z to the remainder x%y and returns z.
func (c *Context) Rem(z, x, y *bigint.Int) (r *bigint.Int) {
	if handleErrors {
		if c.err != nil {
			return z
		}
		defer c.capture()
	}
	r = z
	return c.cfg.Rem(z, x, y)
}

// QuoRem sets z to the quotient x/y and rem to the remainder x%y from a
// single division pass, and returns (z, rem).
func (c *Context) QuoRem(z, x, y, rem *bigint.Int) (q, r *bigint.Int) {
	if handleErrors {
		if c.err != nil {
			return z, rem
		}
		defer c.capture()
	}
	q, r = z, rem
	return c.cfg.QuoRem(z, x, y, rem)
}

// Pow sets z to x**n and returns z.
func (c *Context) Pow(z, x *bigint.Int, n uint64) (r *bigint.Int) {
	if handleErrors {
		if c.err != nil {
			return z
		}
		defer c.capture()
	}
	r = z
	return c.cfg.Pow(z, x, n)
}

// Neg sets z to the value of x with its sign negated, and returns z.
func (c *Context) Neg(z, x *bigint.Int) (r *bigint.Int) {
	if handleErrors {
		if c.err != nil {
			return z
		}
		defer c.capture()
	}
	r = z
	return z.Neg(x)
}

// Abs sets z to |x| (the absolute value of x) and returns z.
func (c *Context) Abs(z, x *bigint.Int) (r *bigint.Int) {
	if handleErrors {
		if c.err != nil {
			return z
		}
		defer c.capture()
	}
	r = z
	return z.Abs(x)
}

// Sqrt sets z to the integer square root ⌊√x⌋ and returns z.
func (c *Context) Sqrt(z, x *bigint.Int) (r *bigint.Int) {
	if handleErrors {
		if c.err != nil {
			return z
		}
		defer c.capture()
	}
	r = z
	return z.Sqrt(x)
}

// Lsh sets z = x << n and returns z.
func (c *Context) Lsh(z, x *bigint.Int, n uint) (r *bigint.Int) {
	if handleErrors {
		if c.err != nil {
			return z
		}
		defer c.capture()
	}
	r = z
	return z.Lsh(x, n)
}

// Rsh sets z = x >> n and returns z.
func (c *Context) Rsh(z, x *bigint.Int, n uint) (r *bigint.Int) {
	if handleErrors {
		if c.err != nil {
			return z
		}
		defer c.capture()
	}
	r = z
	return z.Rsh(x, n)
}

// Text returns the representation of x in the given base using c's
// formatting strategy.
func (c *Context) Text(x *bigint.Int, base int) (s string) {
	if handleErrors {
		if c.err != nil {
			return ""
		}
		defer c.capture()
	}
	return c.cfg.Text(x, base)
}
