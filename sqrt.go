package bigint

// sqrt sets z = ⌊√x⌋.
//
// Starts from an estimate known to be too large and repeats
// z = ⌊(z + ⌊x/z⌋)/2⌋ until it stops getting smaller (Brent and
// Zimmermann, Modern Computer Arithmetic, SqrtInt). If x is one less
// than a perfect square the sequence oscillates between the two
// candidate roots, so the first increase is also the last.
func (z nat) sqrt(x nat) nat {
	if x.cmp(natOne) <= 0 {
		return z.set(x)
	}
	if alias(z, x) {
		z = nil
	}

	var z1, z2 nat
	z1 = z
	z1 = z1.setWord(1)
	z1 = z1.shl(z1, uint(x.bitLen()+1)/2) // must be >= √x
	for {
		z2, _ = z2.div(nil, x, z1, DivAuto)
		z2 = z2.add(z2, z1)
		z2 = z2.shr(z2, 1)
		if z2.cmp(z1) >= 0 {
			return z1.norm()
		}
		z1, z2 = z2, z1
	}
}

// Sqrt sets z to ⌊√x⌋, the largest integer whose square does not exceed
// x, and returns z. It panics with ErrNegSqrt if x is negative.
func (z *Int) Sqrt(x *Int) *Int {
	check(z, x)
	if x.neg {
		panic(ErrNegSqrt)
	}
	z.neg = false
	z.abs = z.abs.sqrt(x.abs)
	return z
}
