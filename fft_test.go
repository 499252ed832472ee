package bigint

import (
	"math"
	"math/cmplx"
	"sync"
	"testing"
)

func TestFFTRoundTrip(t *testing.T) {
	for _, n := range []int{2, 8, 64, 1024} {
		a := make([]complex128, n)
		b := make([]complex128, n)
		for i := range a {
			a[i] = complex(float64(rnd.Intn(256)), 0)
			b[i] = a[i]
		}
		fft(b, false)
		fft(b, true)
		for i := range a {
			if d := cmplx.Abs(a[i] - b[i]); d > 1e-6 {
				t.Fatalf("n = %d: coefficient %d off by %g after round trip", n, i, d)
			}
		}
	}
}

func TestFFTSafe(t *testing.T) {
	if !fftSafe(fftMaxChunks / chunksPerWord) {
		t.Error("fftSafe rejects the certified length")
	}
	if fftSafe(fftMaxChunks/chunksPerWord + 1) {
		t.Error("fftSafe accepts beyond the certified length")
	}
}

func TestMulFFTMatchesBasic(t *testing.T) {
	for _, d := range []struct{ m, n int }{
		{2, 2}, {3, 2}, {10, 10}, {100, 37}, {600, 600},
	} {
		x := rndNat(d.m)
		y := rndNat(d.n)
		z := nat(nil).mulFFT(x, y, nil)
		w := nat(nil).make(d.m + d.n)
		basicMul(w, x, y)
		if z.cmp(w.norm()) != 0 {
			t.Fatalf("mulFFT(%d, %d words) differs from basicMul", d.m, d.n)
		}
	}
}

func TestMulFFTWorstCase(t *testing.T) {
	// all-ones operands maximize the convolution coefficients and
	// therefore the rounding error
	for _, n := range []int{50, 500, 2000} {
		x := make(nat, n)
		for i := range x {
			x[i] = _M
		}
		var diag FFTDiagnostics
		z := nat(nil).mulDiag(x, x, MulFFT, &diag)
		ref := mulRef(x, x)
		if bigFromNat(z).Cmp(ref) != 0 {
			t.Fatalf("n = %d: FFT square of all-ones operand is wrong", n)
		}
		if e := diag.MaxError(); e >= 0.5 {
			t.Fatalf("n = %d: rounding error %g reached 0.5", n, e)
		}
	}
}

func TestFFTDiagnostics(t *testing.T) {
	var diag FFTDiagnostics
	cfg := Config{MulMode: MulFFT, FFTDiag: &diag}

	x := new(Int).SetDigits(rndNat(20), false)
	y := new(Int).SetDigits(rndNat(20), true)
	cfg.Mul(new(Int), x, y)

	if diag.Transforms() != 1 {
		t.Fatalf("recorded %d transforms, expected 1", diag.Transforms())
	}
	if e := diag.MaxError(); e >= 0.5 || e < 0 || math.IsNaN(e) {
		t.Fatalf("implausible max error %g", e)
	}

	diag.Reset()
	if diag.Transforms() != 0 || diag.MaxError() != 0 {
		t.Fatal("Reset did not clear the statistics")
	}
}

func TestFFTDiagnosticsConcurrent(t *testing.T) {
	var diag FFTDiagnostics
	cfg := Config{MulMode: MulFFT, FFTDiag: &diag}
	x := new(Int).SetDigits(rndNat(100), false)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				cfg.Mul(new(Int), x, x)
			}
		}()
	}
	wg.Wait()
	if n := diag.Transforms(); n != 100 {
		t.Fatalf("recorded %d transforms, expected 100", n)
	}
}
