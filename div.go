package bigint

// A DivMode selects the division strategy. The zero value (DivAuto)
// selects by divisor length.
type DivMode uint8

const (
	DivAuto    DivMode = iota // select by operand length
	DivClassic                // schoolbook long division, O(m·n)
	DivNewton                 // reciprocal by Newton iteration
)

func (m DivMode) String() string {
	switch m {
	case DivAuto:
		return "auto"
	case DivClassic:
		return "classic"
	case DivNewton:
		return "newton"
	}
	return "unknown"
}

// divNewtonThreshold is the divisor length, in words, above which DivAuto
// switches from schoolbook division to the Newton reciprocal. Like the
// multiplication crossovers it is an empirically tuned starting point.
const divNewtonThreshold = 320

// divRecipBase is the divisor length below which the reciprocal is
// computed by direct division rather than recursively.
const divRecipBase = 16

// div sets q = u/v and r = u%v. It panics with ErrDivisionByZero for a
// zero divisor. q and r use z and z2 as storage if possible.
func (z nat) div(z2, u, v nat, mode DivMode) (q, r nat) {
	if len(v) == 0 {
		panic(ErrDivisionByZero)
	}

	if u.cmp(v) < 0 {
		q = z[:0]
		r = z2.set(u)
		return
	}

	if len(v) == 1 {
		var r2 Word
		q, r2 = z.divW(u, v[0])
		r = z2.setWord(r2)
		return
	}

	q, r = z.divLarge(z2, u, v, mode)
	return
}

// greaterThan reports whether (x1<<_W + x2) > (y1<<_W + y2)
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}

// divLarge sets q = uIn/vIn and r = uIn%vIn for len(vIn) >= 2 and
// len(uIn) >= len(vIn). It uses z and z2 as storage for q and r.
//
// Both strategies share the same normalization: the divisor is scaled
// left so its leading digit has its top bit set (D1 in Knuth's Algorithm
// D), the scaled remainder is produced in u, and the remainder is scaled
// back before returning.
func (z nat) divLarge(z2, uIn, vIn nat, mode DivMode) (q, r nat) {
	n := len(vIn)
	m := len(uIn) - n

	if alias(z, uIn) || alias(z, vIn) {
		z = nil // z is an alias for uIn or vIn - cannot reuse
	}
	q = z.make(m + 1)

	var u nat
	if alias(z2, uIn) || alias(z2, vIn) {
		z2 = nil
	}
	u = z2.make(len(uIn) + 1)

	// D1: scale the divisor so that its most significant digit has the
	// top bit set. vIn may be in use by another operation, so scale into
	// a temporary.
	shift := nlz(vIn[n-1])
	var vp *nat
	v := vIn
	if shift > 0 {
		vp = getNat(n)
		v = *vp
		shlVU(v, vIn, shift)
	}
	u[len(uIn)] = shlVU(u[0:len(uIn)], uIn, shift)

	if mode == DivNewton || mode == DivAuto && n >= divNewtonThreshold {
		divNewtonLoop(q, u, v)
	} else {
		divKnuthLoop(q, u, v)
	}

	if vp != nil {
		putNat(vp)
	}

	q = q.norm()
	if shift > 0 {
		shrVU(u, u, shift)
	}
	r = nat(u).norm()

	return q, r
}

// divKnuthLoop runs steps D2-D7 of Knuth's Algorithm D: estimate each
// quotient digit from the top two digits of the running remainder and the
// top digit of the divisor, then correct the estimate by at most two
// adjustment steps. On entry v is normalized and u holds the scaled
// dividend with one extra digit; on exit u holds the scaled remainder.
func divKnuthLoop(q, u, v nat) {
	n := len(v)
	m := len(u) - 1 - n

	qhatvp := getNat(n + 1)
	qhatv := *qhatvp

	// D2.
	vn1 := v[n-1]
	for j := m; j >= 0; j-- {
		// D3.
		qhat := Word(_M)
		if ujn := u[j+n]; ujn != vn1 {
			var rhat Word
			qhat, rhat = divWW(ujn, u[j+n-1], vn1)

			// x1 | x2 = q̂·v_{n-2}
			vn2 := v[n-2]
			x1, x2 := mulWW(qhat, vn2)
			// test if q̂·v_{n-2} > b·r̂ + u_{j+n-2}
			ujn2 := u[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prevRhat := rhat
				rhat += vn1
				// v[n-1] >= 0, so this tests for overflow.
				if rhat < prevRhat {
					break
				}
				x1, x2 = mulWW(qhat, vn2)
			}
		}

		// D4.
		qhatv[n] = mulAddVWW(qhatv[0:n], v, qhat, 0)

		c := subVV(u[j:j+len(qhatv)], u[j:], qhatv)
		if c != 0 {
			c := addVV(u[j:j+n], u[j:], v)
			u[j+n] += c
			qhat--
		}

		q[j] = qhat
	}

	putNat(qhatvp)
}

// divNewtonLoop divides by blocks of quotient digits using an approximate
// reciprocal of v: each block's quotient estimate is a single
// multiplication by the reciprocal, followed by an exact bounded
// correction pass, so the result never depends on the reciprocal's
// accuracy. On entry v is normalized and u holds the scaled dividend with
// one extra digit; on exit u holds the scaled remainder.
func divNewtonLoop(q, u, v nat) {
	n := len(v)
	m := len(u) - 1 - n // highest quotient digit index

	recp := reciprocal(v)

	// The top n digits of u are the initial running remainder; the scaled
	// dividend is < v·B^(m+1), so the running remainder stays < v.
	var rem nat
	rem = rem.set(nat(u[m+1:]).norm())

	j := m + 1 // quotient digits still to produce
	for j > 0 {
		w := j % n
		if w == 0 {
			w = n
		}
		lo := j - w

		// t = rem·B^w + u[lo:lo+w] < v·B^w
		t := nat(nil).make(len(rem) + w)
		copy(t, u[lo:lo+w])
		copy(t[w:], rem)
		t = t.norm()

		qc, r2 := divNewtonStep(t, v, recp)
		for i := 0; i < w; i++ {
			if i < len(qc) {
				q[lo+i] = qc[i]
			} else {
				q[lo+i] = 0
			}
		}
		rem = r2
		j = lo
	}

	// leave the scaled remainder in u, as divKnuthLoop does
	for i := range u {
		u[i] = 0
	}
	copy(u, rem)
}

// divNewtonStep computes t/v and t%v for t < v·B^len(v) given
// recp ≈ B^(2·len(v))/v.
func divNewtonStep(t, v, recp nat) (q, r nat) {
	n := len(v)

	if t.cmp(v) < 0 {
		return nil, nat(nil).set(t)
	}

	// q̂ = t·recp / B^(2n), off from t/v by at most a few units
	p := nat(nil).mul(t, recp, MulAuto)
	if len(p) <= 2*n {
		q = nil
	} else {
		q = nat(nil).set(p[2*n:])
	}

	e := nat(nil).mul(q, v, MulAuto)
	for e.cmp(t) > 0 {
		q = q.sub(q, natOne)
		e = e.sub(e, v)
	}
	r = nat(nil).sub(t, e)
	for r.cmp(v) >= 0 {
		r = r.sub(r, v)
		q = q.add(q, natOne)
	}
	return q, r
}

// reciprocal returns floor(B^(2n)/v) for a divisor v of length n whose
// top bit is set, so B^n < x <= 2·B^n. Precision doubles at each
// recursion level: the reciprocal of the top half of v seeds a single
// full-width Newton-Raphson step
//
//	x = 2·x0 − v·x0²/B^(2n)
//
// which squares the seed's relative error. The estimate is then snapped
// to the exact floor; without that per-level correction the ulp error
// would compound quadratically across levels, leaving the correction
// loops in divNewtonStep unbounded.
func reciprocal(v nat) nat {
	n := len(v)

	if n <= divRecipBase {
		u := nat(nil).make(2*n + 1)
		for i := range u {
			u[i] = 0
		}
		u[2*n] = 1
		q, _ := nat(nil).div(nil, u, v, DivClassic)
		return q
	}

	h := (n + 1) >> 1
	x := reciprocal(v[n-h:])          // seed: reciprocal of the top h digits
	x = nat(nil).shl(x, uint(n-h)*_W) // lift to full scale

	t := nat(nil).mul(x, x, MulAuto)
	t = t.mul(t, v, MulAuto)
	t = t.shr(t, uint(2*n)*_W)
	x2 := nat(nil).shl(x, 1)
	if x2.cmp(t) >= 0 {
		x = x2.sub(x2, t)
	}

	// snap to floor(B^2n / v); the estimate is off by O(1) ulps
	b2n := nat(nil).shl(natOne, uint(2*n)*_W)
	p := nat(nil).mul(x, v, MulAuto)
	for p.cmp(b2n) > 0 {
		x = x.sub(x, natOne)
		p = p.sub(p, v)
	}
	d := nat(nil).sub(b2n, p)
	for d.cmp(v) >= 0 {
		x = x.add(x, natOne)
		d = d.sub(d, v)
	}
	return x
}
