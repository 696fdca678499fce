package calculator_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/calculator"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{3, "3.0"},
		{-2, "-2.0"},
		{0.5, "0.5"},
		{0.1, "0.1"},
		{1.0 / 3, "0.3333333333333333"},
		{1234.5, "1234.5"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1.5e-10, "1.5e-10"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{-2.5e20, "-2.5e+20"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			if got := calculator.FormatNumber(c.v); got != c.want {
				t.Errorf("FormatNumber(%g): want %q, got %q", c.v, c.want, got)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		s  string
		v  float64
		ok bool
	}{
		{"3", 3, true},
		{"3.0", 3, true},
		{"-2.5", -2.5, true},
		{"+7", 7, true},
		{".5", 0.5, true},
		{"1e-05", 1e-5, true},
		{"1e+16", 1e16, true},
		{"2E3", 2000, true},
		{"1e500", math.Inf(1), true},
		{"-1e500", math.Inf(-1), true},
		{"1e-500", 0, true},
		{"inf", math.Inf(1), true},
		{"-inf", math.Inf(-1), true},
		{"", 0, false},
		{"-", 0, false},
		{"x", 0, false},
		{"e", 0, false},
		{"1e", 0, false},
		{"1.2.3", 0, false},
		{"0x10", 0, false},
		{"Inf", 0, false},
		{"1_000", 0, false},
		{" 3", 0, false},
		{"π", 0, false},
	}
	for _, c := range cases {
		t.Run(c.s, func(t *testing.T) {
			v, ok := calculator.ParseNumber(c.s)
			if ok != c.ok {
				t.Fatalf("ParseNumber(%q) ok is %t, want %t", c.s, ok, c.ok)
			}
			if ok && v != c.v {
				t.Errorf("ParseNumber(%q): want %g, got %g", c.s, c.v, v)
			}
		})
	}
	if v, ok := calculator.ParseNumber("nan"); !ok || !math.IsNaN(v) {
		t.Errorf("ParseNumber(nan) gave %g, %t", v, ok)
	}
	if v, ok := calculator.ParseNumber("-0.0"); !ok || v != 0 || !math.Signbit(v) {
		t.Errorf("ParseNumber(-0.0) gave %g, %t", v, ok)
	}
}

func TestFormatParse(t *testing.T) {
	vals := []float64{
		0, 1, -1, 0.1, 0.2, 0.3, 1.0 / 3, 2.0 / 3, math.Pi, math.E, math.Sqrt2,
		1e-5, 1.23456789e-7, 9.999999999999999e15, 1e16, 123456789012345680,
		math.MaxFloat64, math.SmallestNonzeroFloat64, 5e-324, 2.2250738585072014e-308,
		math.Inf(1), math.Inf(-1),
	}
	for _, v := range vals {
		s := calculator.FormatNumber(v)
		r, ok := calculator.ParseNumber(s)
		if !ok || r != v {
			t.Errorf("%g formatted as %q parsed back as %g, %t", v, s, r, ok)
		}
	}
}

func FuzzFormatParse(f *testing.F) {
	f.Add(0.0)
	f.Add(3.0)
	f.Add(0.1)
	f.Add(1e-300)
	f.Add(1e300)
	f.Fuzz(func(t *testing.T, v float64) {
		s := calculator.FormatNumber(v)
		r, ok := calculator.ParseNumber(s)
		if !ok {
			t.Fatalf("%g formatted as %q didn't parse", v, s)
		}
		if math.IsNaN(v) {
			if !math.IsNaN(r) {
				t.Errorf("NaN formatted as %q parsed as %g", s, r)
			}
			return
		}
		if r != v || math.Signbit(r) != math.Signbit(v) {
			t.Errorf("%g formatted as %q parsed back as %g", v, s, r)
		}
	})
}
