package bigint

import (
	"fmt"
	"math/big"
	"strconv"
	"testing"
)

// bigFromInt converts x to a big.Int for use as a reference value.
func bigFromInt(x *Int) *big.Int {
	b := bigFromNat(x.abs)
	if x.neg {
		b.Neg(b)
	}
	return b
}

// rndInt returns a random Int of up to n words.
func rndInt(n int) *Int {
	return new(Int).SetDigits(rndNat(rnd.Intn(n+1)), rnd.Intn(2) == 0)
}

func TestIntSetters(t *testing.T) {
	td := []struct {
		z    *Int
		want string
	}{
		{new(Int), "0"},
		{New(0), "0"},
		{New(42), "42"},
		{New(-42), "-42"},
		{New(-9223372036854775808), "-9223372036854775808"},
		{new(Int).SetUint64(18446744073709551615), "18446744073709551615"},
		{new(Int).SetInt32(-2147483648), "-2147483648"},
		{new(Int).SetUint32(4294967295), "4294967295"},
		{new(Int).SetDigits([]Word{0, 0, 1}, true), "-18446744073709551616"},
		{new(Int).SetDigits([]Word{0, 0}, true), "0"}, // all-zero input canonicalizes
		{new(Int).SetBytes([]byte{1, 0, 0, 0, 0}), "4294967296"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := d.z.String(); got != d.want {
				t.Fatalf("got %s, expected %s", got, d.want)
			}
		})
	}
}

func TestSetDigitsNilPanics(t *testing.T) {
	defer func() {
		if p := recover(); p != ErrNilOperand {
			t.Fatalf("expected ErrNilOperand panic, got %v", p)
		}
	}()
	new(Int).SetDigits(nil, false)
}

func TestNilOperandPanics(t *testing.T) {
	defer func() {
		if p := recover(); p != ErrNilOperand {
			t.Fatalf("expected ErrNilOperand panic, got %v", p)
		}
	}()
	new(Int).Add(New(1), nil)
}

func TestDigitsCopy(t *testing.T) {
	x := New(5)
	d := x.Digits()
	if len(d) != 1 || d[0] != 5 {
		t.Fatalf("Digits(5) = %v", d)
	}
	d[0] = 99 // must not affect x
	if x.Int64() != 5 {
		t.Fatal("Digits aliases the internal buffer")
	}
	if d := New(0).Digits(); d != nil {
		t.Fatalf("Digits(0) = %v, expected nil", d)
	}
}

func TestIntArithRandom(t *testing.T) {
	for i := 0; i < 500; i++ {
		x := rndInt(30)
		y := rndInt(30)
		bx, by := bigFromInt(x), bigFromInt(y)

		if got, want := new(Int).Add(x, y), new(big.Int).Add(bx, by); bigFromInt(got).Cmp(want) != 0 {
			t.Fatalf("%s + %s = %s, expected %s", x, y, got, want)
		}
		if got, want := new(Int).Sub(x, y), new(big.Int).Sub(bx, by); bigFromInt(got).Cmp(want) != 0 {
			t.Fatalf("%s - %s = %s, expected %s", x, y, got, want)
		}
		if got, want := new(Int).Mul(x, y), new(big.Int).Mul(bx, by); bigFromInt(got).Cmp(want) != 0 {
			t.Fatalf("%s * %s = %s, expected %s", x, y, got, want)
		}
		if y.Sign() != 0 {
			q, r := new(Int).QuoRem(x, y, new(Int))
			refQ, refR := new(big.Int).QuoRem(bx, by, new(big.Int))
			if bigFromInt(q).Cmp(refQ) != 0 || bigFromInt(r).Cmp(refR) != 0 {
				t.Fatalf("%s quorem %s = (%s, %s), expected (%s, %s)", x, y, q, r, refQ, refR)
			}
		}
	}
}

func TestQuoRemSigns(t *testing.T) {
	// truncated division: the remainder has the sign of the dividend
	td := []struct {
		x, y, q, r int64
	}{
		{5, 3, 1, 2},
		{-5, 3, -1, -2},
		{5, -3, -1, 2},
		{-5, -3, 1, -2},
		{1, 2, 0, 1},
		{8, 4, 2, 0},
		{-8, 4, -2, 0},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			q, r := new(Int).QuoRem(New(d.x), New(d.y), new(Int))
			if q.Int64() != d.q || r.Int64() != d.r {
				t.Fatalf("%d quorem %d = (%s, %s), expected (%d, %d)", d.x, d.y, q, r, d.q, d.r)
			}
			if q2 := new(Int).Quo(New(d.x), New(d.y)); q2.Int64() != d.q {
				t.Fatalf("Quo = %s, expected %d", q2, d.q)
			}
			if r2 := new(Int).Rem(New(d.x), New(d.y)); r2.Int64() != d.r {
				t.Fatalf("Rem = %s, expected %d", r2, d.r)
			}
		})
	}
}

func TestIntDivByZeroPanics(t *testing.T) {
	defer func() {
		if p := recover(); p != ErrDivisionByZero {
			t.Fatalf("expected ErrDivisionByZero panic, got %v", p)
		}
	}()
	new(Int).Quo(New(7), New(0))
}

func TestPow(t *testing.T) {
	td := []struct {
		x    int64
		n    uint64
		want string
	}{
		{2, 10, "1024"},
		{0, 0, "1"},
		{0, 9, "0"},
		{-1, 1000001, "-1"},
		{-2, 10, "1024"},
		{-2, 11, "-2048"},
		{10, 30, "1000000000000000000000000000000"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := new(Int).Pow(New(d.x), d.n)
			if got := z.String(); got != d.want {
				t.Fatalf("Pow(%d, %d) = %s, expected %s", d.x, d.n, got, d.want)
			}
		})
	}
}

func TestShifts(t *testing.T) {
	for i := 0; i < 300; i++ {
		x := rndInt(10)
		s := uint(rnd.Intn(100))
		bx := bigFromInt(x)

		if got, want := new(Int).Lsh(x, s), new(big.Int).Lsh(bx, s); bigFromInt(got).Cmp(want) != 0 {
			t.Fatalf("%s << %d = %s, expected %s", x, s, got, want)
		}
		if got, want := new(Int).Rsh(x, s), new(big.Int).Rsh(bx, s); bigFromInt(got).Cmp(want) != 0 {
			t.Fatalf("%s >> %d = %s, expected %s", x, s, got, want)
		}
	}
}

func TestBitwise(t *testing.T) {
	for i := 0; i < 300; i++ {
		x := rndInt(8)
		y := rndInt(8)
		bx, by := bigFromInt(x), bigFromInt(y)

		if got, want := new(Int).And(x, y), new(big.Int).And(bx, by); bigFromInt(got).Cmp(want) != 0 {
			t.Fatalf("%s & %s = %s, expected %s", x, y, got, want)
		}
		if got, want := new(Int).Or(x, y), new(big.Int).Or(bx, by); bigFromInt(got).Cmp(want) != 0 {
			t.Fatalf("%s | %s = %s, expected %s", x, y, got, want)
		}
		if got, want := new(Int).Xor(x, y), new(big.Int).Xor(bx, by); bigFromInt(got).Cmp(want) != 0 {
			t.Fatalf("%s ^ %s = %s, expected %s", x, y, got, want)
		}
		if got, want := new(Int).AndNot(x, y), new(big.Int).AndNot(bx, by); bigFromInt(got).Cmp(want) != 0 {
			t.Fatalf("%s &^ %s = %s, expected %s", x, y, got, want)
		}
		if got, want := new(Int).Not(x), new(big.Int).Not(bx); bigFromInt(got).Cmp(want) != 0 {
			t.Fatalf("^%s = %s, expected %s", x, got, want)
		}
	}
}

func TestBitAndSetBit(t *testing.T) {
	for i := 0; i < 200; i++ {
		x := rndInt(5)
		bx := bigFromInt(x)
		j := rnd.Intn(200)
		if got, want := x.Bit(j), bx.Bit(j); got != want {
			t.Fatalf("%s.Bit(%d) = %d, expected %d", x, j, got, want)
		}
		b := uint(rnd.Intn(2))
		if got, want := new(Int).SetBit(x, j, b), new(big.Int).SetBit(bx, j, b); bigFromInt(got).Cmp(want) != 0 {
			t.Fatalf("%s.SetBit(%d, %d) = %s, expected %s", x, j, b, got, want)
		}
	}
}

func TestCmp(t *testing.T) {
	vals := []int64{-100, -1, 0, 1, 2, 100}
	for _, a := range vals {
		for _, b := range vals {
			x, y := New(a), New(b)
			want := 0
			switch {
			case a < b:
				want = -1
			case a > b:
				want = 1
			}
			if got := x.Cmp(y); got != want {
				t.Fatalf("Cmp(%d, %d) = %d, expected %d", a, b, got, want)
			}
			wantAbs := 0
			aa, bb := a, b
			if aa < 0 {
				aa = -aa
			}
			if bb < 0 {
				bb = -bb
			}
			switch {
			case aa < bb:
				wantAbs = -1
			case aa > bb:
				wantAbs = 1
			}
			if got := x.CmpAbs(y); got != wantAbs {
				t.Fatalf("CmpAbs(%d, %d) = %d, expected %d", a, b, got, wantAbs)
			}
		}
	}
}

func TestTruncatingConversions(t *testing.T) {
	// 2^80 + 5
	x, _ := new(Int).SetString("1208925819614629174706181", 10)
	if got := x.Uint64(); got != 5 {
		t.Fatalf("Uint64(2^80+5) = %d, expected 5", got)
	}
	if got := x.Int64(); got != 5 {
		t.Fatalf("Int64(2^80+5) = %d, expected 5", got)
	}
	y := new(Int).Neg(x)
	if got := y.Int64(); got != -5 {
		t.Fatalf("Int64(-(2^80+5)) = %d, expected -5", got)
	}

	z := New(0x1_0000_0007) // 2^32 + 7
	if got := z.Uint32(); got != 7 {
		t.Fatalf("Uint32(2^32+7) = %d, expected 7", got)
	}
	if got := new(Int).Neg(z).Int32(); got != -7 {
		t.Fatalf("Int32(-(2^32+7)) = %d, expected -7", got)
	}

	if !New(42).IsInt64() || !New(-42).IsInt64() {
		t.Fatal("IsInt64(±42) = false")
	}
	if x.IsInt64() || x.IsUint64() {
		t.Fatal("2^80+5 reported as fitting 64 bits")
	}
	if New(-1).IsUint64() {
		t.Fatal("IsUint64(-1) = true")
	}
}

func TestNegAbsSign(t *testing.T) {
	x := New(-7)
	if x.Sign() != -1 || New(7).Sign() != 1 || New(0).Sign() != 0 {
		t.Fatal("Sign is wrong")
	}
	if got := new(Int).Abs(x); got.Int64() != 7 {
		t.Fatalf("Abs(-7) = %s", got)
	}
	if got := new(Int).Neg(x); got.Int64() != 7 {
		t.Fatalf("Neg(-7) = %s", got)
	}
	if got := new(Int).Neg(New(0)); got.Sign() != 0 {
		t.Fatalf("Neg(0) = %s", got)
	}
}

func TestNormalizeReleasesCapacity(t *testing.T) {
	z := new(Int).Lsh(New(1), 10000)
	z.Rsh(z, 10000) // small value, large backing array
	if z.Int64() != 1 {
		t.Fatalf("value corrupted: %s", z)
	}
	if cap(z.abs) == len(z.abs) {
		t.Skip("shift did not keep excess capacity")
	}
	z.Normalize()
	if cap(z.abs) != len(z.abs) {
		t.Fatalf("Normalize left cap %d for len %d", cap(z.abs), len(z.abs))
	}
}

func TestFormat(t *testing.T) {
	x := New(-255)
	td := []struct {
		format string
		want   string
	}{
		{"%d", "-255"},
		{"%x", "-ff"},
		{"%X", "-FF"},
		{"%#x", "-0xff"},
		{"%o", "-377"},
		{"%#o", "-0377"},
		{"%O", "-0o377"},
		{"%b", "-11111111"},
		{"%8d", "    -255"},
		{"%-8d|", "-255    |"},
		{"%08d", "-0000255"},
		{"%.6d", "-000255"},
		{"%s", "-255"},
		{"%v", "-255"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := fmt.Sprintf(d.format, x); got != d.want {
				t.Fatalf("Sprintf(%q, -255) = %q, expected %q", d.format, got, d.want)
			}
		})
	}

	if got := fmt.Sprintf("%+d", New(255)); got != "+255" {
		t.Fatalf("%%+d = %q", got)
	}
}

func TestConfigStrategies(t *testing.T) {
	x := rndInt(100)
	y := rndInt(80)
	ref := new(Int).Mul(x, y)
	for _, cfg := range []Config{
		{MulMode: MulClassic, DivMode: DivClassic},
		{MulMode: MulKaratsuba, DivMode: DivNewton},
		{MulMode: MulFFT, DivMode: DivNewton, AutoNormalize: true},
	} {
		z := cfg.Mul(new(Int), x, y)
		if z.Cmp(ref) != 0 {
			t.Fatalf("Config%+v: Mul mismatch", cfg)
		}
		if y.Sign() != 0 {
			q, r := cfg.QuoRem(new(Int), x, y, new(Int))
			t2 := cfg.Mul(new(Int), q, y)
			t2 = t2.Add(t2, r)
			if t2.Cmp(x) != 0 {
				t.Fatalf("Config%+v: q*y + r != x", cfg)
			}
		}
	}
}

func BenchmarkIntMulAuto1000(b *testing.B) {
	x := new(Int).SetDigits(rndNat(1000), false)
	y := new(Int).SetDigits(rndNat(1000), false)
	z := new(Int)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		z.Mul(x, y)
	}
}
