package bigint

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
	"testing"
)

func TestSetStringPrefixSniffing(t *testing.T) {
	td := []struct {
		in   string
		base int
		want string // decimal
	}{
		{"0", 0, "0"},
		{"00", 0, "0"},
		{"10", 0, "10"},
		{"-10", 0, "-10"},
		{"+10", 0, "10"},
		{"0x10", 0, "16"},
		{"0X10", 0, "16"},
		{"010", 0, "8"},
		{"0xabcdef", 0, "11259375"},
		{"0xABCDEF", 0, "11259375"},
		{"0100000000000", 0, "8589934592"},  // == 0x200000000
		{"020000000000", 0, "2147483648"},   // == 0x80000000
		{"  7 ", 0, "7"},
		{"\t-42\n", 0, "-42"},
		{"ff", 16, "255"},
		{"-0", 0, "0"},
		{"z", 36, "35"},
		{"Z", 62, "61"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z, err := new(Int).SetString(d.in, d.base)
			if err != nil {
				t.Fatalf("SetString(%q, %d): %v", d.in, d.base, err)
			}
			if got := z.String(); got != d.want {
				t.Fatalf("SetString(%q, %d) = %s, expected %s", d.in, d.base, got, d.want)
			}
		})
	}
}

func TestSetStringErrors(t *testing.T) {
	td := []struct {
		in   string
		base int
		err  error
	}{
		{"", 0, ErrSyntax},
		{"   ", 0, ErrSyntax},
		{"-", 0, ErrSyntax},
		{"0x", 0, ErrSyntax},
		{"-123-", 0, ErrSyntax},
		{"12a", 10, ErrSyntax},
		{"08", 0, ErrSyntax}, // 8 is not an octal digit
		{"1 2", 0, ErrSyntax},
		{"10", 1, ErrBase},
		{"10", -2, ErrBase},
		{"10", MaxBase + 1, ErrBase},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if _, err := new(Int).SetString(d.in, d.base); !errors.Is(err, d.err) {
				t.Fatalf("SetString(%q, %d): got %v, expected %v", d.in, d.base, err, d.err)
			}
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	values := []string{
		"0", "1", "-1", "42", "-127", "2147483648",
		"340282366920938463463374607431768211456", // 2^128
		strings.Repeat("987654321", 30),
	}
	for _, v := range values {
		x, err := new(Int).SetString(v, 10)
		if err != nil {
			t.Fatal(err)
		}
		ref, _ := new(big.Int).SetString(v, 10)
		for base := 2; base <= MaxBase; base++ {
			s := x.Text(base)
			if want := ref.Text(base); s != want {
				t.Fatalf("Text(%s, base %d) = %q, expected %q", v, base, s, want)
			}
			y, err := new(Int).SetString(s, base)
			if err != nil {
				t.Fatalf("SetString(%q, %d): %v", s, base, err)
			}
			if y.Cmp(x) != 0 {
				t.Fatalf("round trip failed for %s in base %d", v, base)
			}
		}
	}
}

func TestConvModesAgree(t *testing.T) {
	// a digit count well above convRecThreshold forces the recursive
	// strategy to do real splitting
	digits := strings.Repeat("123456789012345678901234567890", 150)

	linear := Config{ParseMode: ConvLinear, FormatMode: ConvLinear}
	recursive := Config{ParseMode: ConvRecursive, FormatMode: ConvRecursive}

	x, err := linear.Parse(new(Int), digits, 10)
	if err != nil {
		t.Fatal(err)
	}
	y, err := recursive.Parse(new(Int), digits, 10)
	if err != nil {
		t.Fatal(err)
	}
	if x.Cmp(y) != 0 {
		t.Fatal("linear and recursive parse disagree")
	}

	if s1, s2 := linear.Text(x, 10), recursive.Text(x, 10); s1 != s2 {
		t.Fatal("linear and recursive format disagree")
	}
	if s := recursive.Text(x, 10); s != digits {
		t.Fatal("recursive format does not round-trip the input")
	}
}

func TestNewAlphabet(t *testing.T) {
	td := []struct {
		chars string
		err   error
	}{
		{"01", nil},
		{"0123456789ABCDEFGHIJ", nil},
		{"", ErrAlphabet},
		{"0", ErrAlphabet},
		{"0120", ErrAlphabet}, // duplicate
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			a, err := NewAlphabet(d.chars)
			if !errors.Is(err, d.err) {
				t.Fatalf("NewAlphabet(%q): got %v, expected %v", d.chars, err, d.err)
			}
			if err == nil && a.Len() != len(d.chars) {
				t.Fatalf("NewAlphabet(%q).Len() = %d", d.chars, a.Len())
			}
		})
	}
}

func TestTextAlphabet(t *testing.T) {
	a, err := NewAlphabet("0123456789ABCDEFGHIJ")
	if err != nil {
		t.Fatal(err)
	}

	td := []struct {
		x    int64
		base int
		want string
	}{
		{398, 20, "JI"},
		{0, 20, "0"},
		{-398, 20, "-JI"},
		{19, 20, "J"},
		{20, 20, "10"},
		{5, 2, "101"}, // only the first two characters are digits
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := New(d.x).TextAlphabet(d.base, a); got != d.want {
				t.Fatalf("TextAlphabet(%d, %d) = %q, expected %q", d.x, d.base, got, d.want)
			}
		})
	}
}

func TestSetStringAlphabet(t *testing.T) {
	a, err := NewAlphabet("0123456789ABCDEFGHIJ")
	if err != nil {
		t.Fatal(err)
	}

	z, err := new(Int).SetStringAlphabet("JI", 20, a)
	if err != nil {
		t.Fatal(err)
	}
	if got := z.Int64(); got != 398 {
		t.Fatalf("parse JI base 20 = %d, expected 398", got)
	}

	// alphabet parsing is exact: no case folding
	if _, err := new(Int).SetStringAlphabet("ji", 20, a); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax for lower-case digits, got %v", err)
	}
	// digits past the base are rejected
	if _, err := new(Int).SetStringAlphabet("J", 10, a); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax for out-of-base digit, got %v", err)
	}
	if _, err := new(Int).SetStringAlphabet("11", 0, a); !errors.Is(err, ErrBase) {
		t.Fatalf("expected ErrBase for base 0 with custom alphabet, got %v", err)
	}
	if _, err := new(Int).SetStringAlphabet("11", 21, a); !errors.Is(err, ErrBase) {
		t.Fatalf("expected ErrBase for base beyond alphabet, got %v", err)
	}
	if _, err := new(Int).SetStringAlphabet("11", 2, nil); !errors.Is(err, ErrAlphabet) {
		t.Fatalf("expected ErrAlphabet for nil alphabet, got %v", err)
	}
}

func TestAlphabetRoundTrip(t *testing.T) {
	// an alphabet that shares no characters with the default one
	a, err := NewAlphabet("!@#$%^&*()_+{}[]")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		x := new(Int).SetDigits(rndNat(rnd.Intn(10)), rnd.Intn(2) == 0)
		for _, base := range []int{2, 7, 16} {
			s := x.TextAlphabet(base, a)
			y, err := new(Int).SetStringAlphabet(s, base, a)
			if err != nil {
				t.Fatalf("parse %q base %d: %v", s, base, err)
			}
			if y.Cmp(x) != 0 {
				t.Fatalf("alphabet round trip failed: %s -> %q -> %s", x, s, y)
			}
		}
	}
}

func TestTextInvalidBasePanics(t *testing.T) {
	defer func() {
		if p := recover(); p != ErrBase {
			t.Fatalf("expected ErrBase panic, got %v", p)
		}
	}()
	New(1).Text(63)
}

func TestMaxPow(t *testing.T) {
	for b := Word(2); b <= 256; b++ {
		p, n := maxPow(b)
		if pow(b, n) != p {
			t.Fatalf("maxPow(%d): p = %d does not match pow(b, %d)", b, p, n)
		}
		// p is the largest power of b fitting in a Word
		if uint64(p)*uint64(b) <= uint64(_M) {
			t.Fatalf("maxPow(%d) = %d, %d: not maximal", b, p, n)
		}
	}
}

func benchmarkText(b *testing.B, mode ConvMode, words int) {
	cfg := Config{FormatMode: mode}
	x := new(Int).SetDigits(rndNat(words), false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cfg.Text(x, 10)
	}
}

func BenchmarkTextLinear1000(b *testing.B)    { benchmarkText(b, ConvLinear, 1000) }
func BenchmarkTextRecursive1000(b *testing.B) { benchmarkText(b, ConvRecursive, 1000) }
