package bigint

import (
	"math"
	"sync"
)

// The transform strategy represents each operand as a vector of 8-bit
// chunks (4 per Word), evaluates both vectors with a complex FFT,
// multiplies pointwise, transforms back, and rounds every coefficient to
// the nearest integer before propagating carries in base 256.
//
// Exactness requires the accumulated floating-point error per coefficient
// to stay below 0.5. A convolution of L chunks has coefficients bounded by
// L*255² < L·2^16, and the error of a length-L transform is bounded by
// c·log2(L)·2^-53 relative, so the worst absolute error is about
// c·L·log2(L)·2^-37. With c < 8 this stays below 0.5 for all L up to
// fftMaxChunks; operands beyond that bound are multiplied with Karatsuba
// instead (see pickMul). The bound is enforced at compile time by the
// constant below, not by a runtime check.
const (
	fftChunkBits  = 8
	fftChunkMask  = 1<<fftChunkBits - 1
	chunksPerWord = _W / fftChunkBits
	fftMaxChunks  = 1 << 24 // certified safe transform length
)

// fftSafe reports whether a product of n total words stays within the
// certified transform length.
func fftSafe(n int) bool {
	need := n * chunksPerWord
	return need <= fftMaxChunks
}

// FFTDiagnostics is an optional diagnostic channel for the transform
// multiplier. When attached to a Config, it records the largest rounding
// error observed before coefficient rounding, which must stay below 0.5
// for the result to be exact. It is safe for concurrent use; the zero
// value is ready to use.
type FFTDiagnostics struct {
	mu     sync.Mutex
	maxErr float64
	rounds uint64
}

func (d *FFTDiagnostics) record(e float64) {
	d.mu.Lock()
	if e > d.maxErr {
		d.maxErr = e
	}
	d.rounds++
	d.mu.Unlock()
}

// MaxError returns the largest rounding error observed so far.
func (d *FFTDiagnostics) MaxError() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.maxErr
}

// Transforms returns the number of transform multiplications recorded.
func (d *FFTDiagnostics) Transforms() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rounds
}

// Reset clears the recorded statistics.
func (d *FFTDiagnostics) Reset() {
	d.mu.Lock()
	d.maxErr = 0
	d.rounds = 0
	d.mu.Unlock()
}

// fft performs an in-place radix-2 transform of a; len(a) must be a power
// of two. The twiddle factors come from a single precomputed table per
// call, which keeps the numerical error at the c·log2(L)·2^-53 level the
// safe-length bound relies on.
func fft(a []complex128, inverse bool) {
	n := len(a)
	if n < 2 {
		return
	}

	// bit-reversal permutation
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}

	// twiddle table for the largest stage; smaller stages stride through it
	ang := 2 * math.Pi / float64(n)
	if inverse {
		ang = -ang
	}
	root := make([]complex128, n/2)
	for i := range root {
		s, c := math.Sincos(ang * float64(i))
		root[i] = complex(c, s)
	}

	for length := 2; length <= n; length <<= 1 {
		half := length >> 1
		stride := n / length
		for i := 0; i < n; i += length {
			for j := 0; j < half; j++ {
				w := root[j*stride]
				u := a[i+j]
				v := a[i+j+half] * w
				a[i+j] = u + v
				a[i+j+half] = u - v
			}
		}
	}

	if inverse {
		inv := complex(1/float64(n), 0)
		for i := range a {
			a[i] *= inv
		}
	}
}

// fftFill spreads the 8-bit chunks of x over the real parts of a.
func fftFill(a []complex128, x nat) {
	k := 0
	for _, d := range x {
		for j := 0; j < chunksPerWord; j++ {
			a[k] = complex(float64(d&fftChunkMask), 0)
			d >>= fftChunkBits
			k++
		}
	}
}

// mulFFT sets z = x*y using the floating-point transform. Callers
// guarantee len(x) >= len(y) > 1 and fftSafe(len(x)+len(y)).
func (z nat) mulFFT(x, y nat, diag *FFTDiagnostics) nat {
	m := len(x) + len(y)
	need := m * chunksPerWord
	n := 1
	for n < need {
		n <<= 1
	}

	a := make([]complex128, n)
	b := make([]complex128, n)
	fftFill(a, x)
	fftFill(b, y)

	fft(a, false)
	fft(b, false)
	for i := range a {
		a[i] *= b[i]
	}
	fft(a, true)

	// Round every coefficient to the nearest integer and propagate
	// carries in base 2^fftChunkBits. Coefficients are bounded by
	// need·255² < 2^41, so the running carry fits a uint64.
	z = z.make(m)
	for i := range z {
		z[i] = 0
	}
	var c uint64
	var worst float64
	for i := 0; i < need; i++ {
		v := real(a[i])
		r := math.Round(v)
		if e := math.Abs(v - r); e > worst {
			worst = e
		}
		c += uint64(r)
		z[i/chunksPerWord] |= Word(c&fftChunkMask) << (fftChunkBits * uint(i%chunksPerWord))
		c >>= fftChunkBits
	}
	if debugBigint && c != 0 {
		panic("bigint: transform carry overflow")
	}
	if diag != nil {
		diag.record(worst)
	}

	return z.norm()
}
