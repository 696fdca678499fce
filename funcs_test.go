package calculator_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/zephyrtronium/calculator"
)

func TestScientific(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"pow", "2 10 xʸ", 1024},
		{"pow-frac", "9 0.5 xʸ", 3},
		{"pow-neg-exp", "2 -2 xʸ", 0.25},
		{"pow-zero-base", "0 3 xʸ", 0},
		{"pow-zero-exp", "5 0 xʸ", 1},
		{"pow-one-exp", "5 1 xʸ", 5},
		{"pow-one-exp-chain", "7 1 xʸ 1 +", 8},
		{"pow-inf-one", "inf 1 xʸ", math.Inf(1)},
		{"pow-neg-int", "-2 2 xʸ", 4},
		{"pow-neg-odd", "-2 3 xʸ", -8},
		{"pow-neg-recip", "-2 -1 xʸ", -0.5},
		{"pow-inf", "inf 2 xʸ", math.Inf(1)},
		{"exp", "1 eˣ", math.E},
		{"exp-zero", "0 eˣ", 1},
		{"exp-big", "1000 eˣ", math.Inf(1)},
		{"exp-small", "-1000 eˣ", 0},
		{"ln", "e ln", 1},
		{"ln-e2", "e e × ln", 2},
		{"ln-zero", "0 ln", math.Inf(-1)},
		{"tan", "0 tan", 0},
		{"square", "3 x²", 9},
		{"recip", "4 1/x", 0.25},
		{"neg", "3 ±", -3},
		{"e", "e", math.E},
		{"defaults", "3 4 +", 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := calculator.New(calculator.Scientific())
			r, ok, err := push(b, c.src)
			if err != nil || !ok {
				t.Fatalf("evaluating %q gave %g, %t, %v", c.src, r, ok, err)
			}
			if !near(r, c.r) {
				t.Errorf("%q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestScientificErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind calculator.ErrorKind
	}{
		{"pow-neg", "-8 0.5 xʸ", calculator.OutOfDomain},
		{"pow-neg-frac", "-2 1.5 xʸ", calculator.OutOfDomain},
		{"ln-neg", "-1 ln", calculator.OutOfDomain},
		{"recip-zero", "0 1/x", calculator.DivisionByZero},
		{"pow-one", "2 xʸ", calculator.NotEnoughOperands},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := calculator.New(calculator.Scientific())
			r, ok, err := push(b, c.src)
			if ok {
				t.Errorf("evaluating %q gave result %g", c.src, r)
			}
			if !errors.Is(err, c.kind) {
				t.Errorf("evaluating %q gave %v, want %v", c.src, err, c.kind)
			}
		})
	}
}

func TestScientificNotDefault(t *testing.T) {
	b := calculator.New()
	for _, s := range []string{"xʸ", "eˣ", "ln", "tan", "x²", "1/x", "±", "e"} {
		if b.Known(s) {
			t.Errorf("%q known without Scientific", s)
		}
	}
}

func TestMonadicNaN(t *testing.T) {
	f := calculator.Monadic(func(out, in *big.Float) *big.Float {
		panic(big.ErrNaN{})
	}, math.Sqrt)
	if r := f(2); !math.IsNaN(r) {
		t.Errorf("ErrNaN panic gave %g, not NaN", r)
	}
	if r := f(math.Inf(1)); !math.IsInf(r, 1) {
		t.Errorf("infinite argument gave %g, not the approximation", r)
	}
}

func TestMonadicPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("non-ErrNaN panic was swallowed")
		}
	}()
	f := calculator.Monadic(func(out, in *big.Float) *big.Float {
		panic("boom")
	}, math.Sqrt)
	f(2)
}

// near reports whether two results agree to within a few ulps.
func near(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	return math.Abs(a-b) <= 1e-15*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
