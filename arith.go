package bigint

import "math/bits"

// A Word represents a single digit (limb) of a multi-precision unsigned
// integer. The magnitude of a number is stored as a little-endian Word
// slice in base 2**32.
type Word uint32

const (
	_S = 4 // word size in bytes

	_W = 32      // word size in bits
	_B = 1 << _W // digit base
	_M = _B - 1  // digit mask
)

const debugBigint = false

// ----------------------------------------------------------------------------
// Elementary operations on words
//
// These operations are used by the vector operations below.

// z1<<_W + z0 = x+y+c, with c == 0 or 1
func addWW(x, y, c Word) (z1, z0 Word) {
	s, carry := bits.Add32(uint32(x), uint32(y), uint32(c))
	return Word(carry), Word(s)
}

// z1<<_W + z0 = x-y-c, with c == 0 or 1
func subWW(x, y, c Word) (z1, z0 Word) {
	d, borrow := bits.Sub32(uint32(x), uint32(y), uint32(c))
	return Word(borrow), Word(d)
}

// z1<<_W + z0 = x*y
func mulWW(x, y Word) (z1, z0 Word) {
	hi, lo := bits.Mul32(uint32(x), uint32(y))
	return Word(hi), Word(lo)
}

// z1<<_W + z0 = x*y + c
func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	hi, lo := bits.Mul32(uint32(x), uint32(y))
	lo, cc := bits.Add32(lo, uint32(c), 0)
	return Word(hi + cc), Word(lo)
}

// q = (u1<<_W + u0 - r)/v, with u1 < v
func divWW(u1, u0, v Word) (q, r Word) {
	if debugBigint && u1 >= v {
		panic("divWW: quotient overflow")
	}
	qq, rr := bits.Div32(uint32(u1), uint32(u0), uint32(v))
	return Word(qq), Word(rr)
}

// nlz returns the number of leading zeros in x.
func nlz(x Word) uint {
	return uint(bits.LeadingZeros32(uint32(x)))
}

// ----------------------------------------------------------------------------
// Vector operations over word slices
//
// All kernels require len(z) <= len(x) (and len(z) <= len(y) where
// applicable) and propagate the carry/borrow across the full length of z.

// The resulting carry c is either 0 or 1.
func addVV(z, x, y []Word) (c Word) {
	for i := range z {
		c, z[i] = addWW(x[i], y[i], c)
	}
	return
}

// The resulting borrow c is either 0 or 1.
func subVV(z, x, y []Word) (c Word) {
	for i := range z {
		c, z[i] = subWW(x[i], y[i], c)
	}
	return
}

func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		c, z[i] = addWW(x[i], c, 0)
	}
	return
}

func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		c, z[i] = subWW(x[i], c, 0)
	}
	return
}

// shlVU sets z to x<<s with 0 < s < _W and returns the bits shifted out.
func shlVU(z, x []Word, s uint) (c Word) {
	if n := len(z); n > 0 {
		ŝ := _W - s
		w1 := x[n-1]
		c = w1 >> ŝ
		for i := n - 1; i > 0; i-- {
			w := w1
			w1 = x[i-1]
			z[i] = w<<s | w1>>ŝ
		}
		z[0] = w1 << s
	}
	return
}

// shrVU sets z to x>>s with 0 < s < _W and returns the bits shifted out.
func shrVU(z, x []Word, s uint) (c Word) {
	if n := len(z); n > 0 {
		ŝ := _W - s
		w1 := x[0]
		c = w1 << ŝ
		for i := 0; i < n-1; i++ {
			w := w1
			w1 = x[i+1]
			z[i] = w>>s | w1<<ŝ
		}
		z[n-1] = w1 >> s
	}
	return
}

// mulAddVWW sets z = x*y + r and returns the final carry.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// addMulVVW sets z += x*y and returns the final carry.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := range z {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		c, z[i] = addWW(z0, c, 0)
		c += z1
	}
	return
}

// divWVW sets z = (xn<<(len(x)*_W) + x) / y and returns the remainder.
// It requires xn < y.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return
}
